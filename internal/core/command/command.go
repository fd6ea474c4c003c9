// Package command defines the undoable command contract and the linear
// history that executes, undoes, and redoes commands in chronological order.
package command

// Command is a self-contained, reversible state change.
//
// Undo must restore exactly the state that existed immediately before the most
// recent Execute of the same instance. History never calls Undo twice without
// an intervening Execute.
type Command interface {
	Execute()
	Undo()
}

// Describer is optionally implemented by commands that can describe
// themselves for logging.
type Describer interface {
	Description() string
}

// describe returns a log-friendly name for cmd.
func describe(cmd Command) string {
	if d, ok := cmd.(Describer); ok {
		return d.Description()
	}
	return "command"
}
