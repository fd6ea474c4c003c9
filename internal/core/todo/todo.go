// Package todo defines the todo item record and the pure list
// transformations applied by undoable commands.
package todo

import (
	"slices"
	"strings"
)

// Item is a single todo record. Items are never mutated in place; every change
// produces a new list.
type Item struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// IsBlank reports whether text is empty after trimming whitespace.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// Append returns a new list with item added at the end.
func Append(items []Item, item Item) []Item {
	out := make([]Item, 0, len(items)+1)
	out = append(out, items...)
	return append(out, item)
}

// Toggle returns a new list where the item matching id has its Completed flag
// inverted. All other items keep their order. A missing id yields an unchanged
// copy.
func Toggle(items []Item, id string) []Item {
	out := slices.Clone(items)
	for i := range out {
		if out[i].ID == id {
			out[i].Completed = !out[i].Completed
		}
	}
	return out
}

// Remove returns a new list without the first item matching id. A missing id
// yields an unchanged copy.
func Remove(items []Item, id string) []Item {
	idx := Index(items, id)
	if idx < 0 {
		return slices.Clone(items)
	}

	out := make([]Item, 0, len(items)-1)
	out = append(out, items[:idx]...)
	return append(out, items[idx+1:]...)
}

// Index returns the position of the first item matching id, or -1.
func Index(items []Item, id string) int {
	return slices.IndexFunc(items, func(it Item) bool { return it.ID == id })
}

// Find returns the first item matching id.
func Find(items []Item, id string) (Item, bool) {
	idx := Index(items, id)
	if idx < 0 {
		return Item{}, false
	}
	return items[idx], true
}
