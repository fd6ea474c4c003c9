package command

import "github.com/rs/zerolog"

// History records executed commands and a cursor marking the most recently
// applied one. entries[:cursor+1] are applied, entries[cursor+1:] form the
// redo tail. History is not safe for concurrent use.
type History struct {
	entries []Command
	cursor  int
	log     zerolog.Logger
}

// NewHistory creates an empty history.
func NewHistory(log zerolog.Logger) *History {
	return &History{
		cursor: -1,
		log:    log.With().Str("component", "history").Logger(),
	}
}

// Execute runs cmd and records it as the newest entry. Any redo tail is
// discarded before cmd is appended.
func (h *History) Execute(cmd Command) {
	cmd.Execute()

	if dropped := len(h.entries) - (h.cursor + 1); dropped > 0 {
		clear(h.entries[h.cursor+1:])
		h.log.Debug().Int("dropped", dropped).Msg("discarding redo tail")
	}

	h.entries = append(h.entries[:h.cursor+1], cmd)
	h.cursor = len(h.entries) - 1

	h.log.Debug().
		Str("command", describe(cmd)).
		Int("cursor", h.cursor).
		Msg("executed")
}

// Undo reverts the most recently applied command. It reports false when there
// is nothing to undo.
func (h *History) Undo() bool {
	if h.cursor < 0 {
		h.log.Debug().Msg("nothing to undo")
		return false
	}

	cmd := h.entries[h.cursor]
	h.cursor--
	cmd.Undo()

	h.log.Debug().
		Str("command", describe(cmd)).
		Int("cursor", h.cursor).
		Msg("undone")
	return true
}

// Redo re-executes the oldest command in the redo tail. It reports false when
// there is nothing to redo.
func (h *History) Redo() bool {
	if h.cursor >= len(h.entries)-1 {
		h.log.Debug().Msg("nothing to redo")
		return false
	}

	h.cursor++
	cmd := h.entries[h.cursor]
	cmd.Execute()

	h.log.Debug().
		Str("command", describe(cmd)).
		Int("cursor", h.cursor).
		Msg("redone")
	return true
}

// Len returns the number of recorded commands, including the redo tail.
func (h *History) Len() int {
	return len(h.entries)
}

// Cursor returns the index of the most recently applied command, or -1.
func (h *History) Cursor() int {
	return h.cursor
}

// CanUndo reports whether Undo would revert a command.
func (h *History) CanUndo() bool {
	return h.cursor >= 0
}

// CanRedo reports whether Redo would re-execute a command.
func (h *History) CanRedo() bool {
	return h.cursor < len(h.entries)-1
}

// UndoDepth returns how many commands can be undone.
func (h *History) UndoDepth() int {
	return h.cursor + 1
}

// RedoDepth returns how many commands can be redone.
func (h *History) RedoDepth() int {
	return len(h.entries) - 1 - h.cursor
}
