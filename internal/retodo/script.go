package retodo

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hay-kot/criterio"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Op names a single script operation.
type Op string

const (
	OpAdd    Op = "add"
	OpToggle Op = "toggle"
	OpRemove Op = "remove"
	OpUndo   Op = "undo"
	OpRedo   Op = "redo"
)

// Script is an ordered list of todo operations replayed against a session.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Step holds exactly one operation. Toggle and Remove address items by their
// index in the list at the moment the step runs.
//
// A step may also be written as the bare scalar "undo" or "redo".
type Step struct {
	Add       *string `yaml:"add,omitempty"`
	Completed bool    `yaml:"completed,omitempty"`
	Toggle    *int    `yaml:"toggle,omitempty"`
	Remove    *int    `yaml:"remove,omitempty"`
	Undo      bool    `yaml:"undo,omitempty"`
	Redo      bool    `yaml:"redo,omitempty"`
}

// UnmarshalYAML accepts both mapping and scalar step forms.
func (s *Step) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		switch Op(node.Value) {
		case OpUndo:
			s.Undo = true
			return nil
		case OpRedo:
			s.Redo = true
			return nil
		}
		return fmt.Errorf("line %d: unknown step %q", node.Line, node.Value)
	}

	type plain Step
	if err := node.Decode((*plain)(s)); err != nil {
		return err
	}

	// "add:" with no value is a blank insert, not a missing operation.
	if s.Add == nil && hasNullKey(node, string(OpAdd)) {
		s.Add = new(string)
	}
	return nil
}

func hasNullKey(node *yaml.Node, key string) bool {
	if node.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1].ShortTag() == "!!null"
		}
	}
	return false
}

// Ops returns the operations set on the step.
func (s Step) Ops() []Op {
	var ops []Op
	if s.Add != nil {
		ops = append(ops, OpAdd)
	}
	if s.Toggle != nil {
		ops = append(ops, OpToggle)
	}
	if s.Remove != nil {
		ops = append(ops, OpRemove)
	}
	if s.Undo {
		ops = append(ops, OpUndo)
	}
	if s.Redo {
		ops = append(ops, OpRedo)
	}
	return ops
}

// ParseScript decodes and validates a YAML script.
func ParseScript(r io.Reader) (Script, error) {
	var script Script

	if err := yaml.NewDecoder(r).Decode(&script); err != nil {
		if errors.Is(err, io.EOF) {
			return script, fmt.Errorf("decode script: empty input")
		}
		return script, fmt.Errorf("decode script: %w", err)
	}

	if err := script.Validate(); err != nil {
		return script, err
	}

	return script, nil
}

// Validate checks that every step names exactly one operation and that
// indexes are not negative.
func (s Script) Validate() error {
	if len(s.Steps) == 0 {
		return criterio.NewFieldErrors("steps", fmt.Errorf("array is empty"))
	}

	var errs criterio.FieldErrorsBuilder

	for i, step := range s.Steps {
		field := fmt.Sprintf("steps[%d]", i)

		switch ops := step.Ops(); len(ops) {
		case 0:
			errs = errs.Append(field, fmt.Errorf("no operation set"))
			continue
		case 1:
		default:
			errs = errs.Append(field, fmt.Errorf("multiple operations set: %v", ops))
			continue
		}

		if step.Completed && step.Add == nil {
			errs = errs.Append(field+".completed", fmt.Errorf("only valid with add"))
		}
		if step.Toggle != nil && *step.Toggle < 0 {
			errs = errs.Append(field+".toggle", fmt.Errorf("index must not be negative"))
		}
		if step.Remove != nil && *step.Remove < 0 {
			errs = errs.Append(field+".remove", fmt.Errorf("index must not be negative"))
		}
	}

	return errs.ToError()
}

// Run applies every step to svc in order. Indexes that are out of range at
// the time a step runs produce a recorded no-op.
func (s Script) Run(ctx context.Context, svc *TodoService, log zerolog.Logger) error {
	if err := s.Validate(); err != nil {
		return err
	}

	for i, step := range s.Steps {
		op := step.Ops()[0]
		log.Debug().Ctx(ctx).Int("step", i).Str("op", string(op)).Msg("script step")

		switch op {
		case OpAdd:
			svc.Insert(*step.Add, step.Completed)
		case OpToggle:
			svc.Toggle(idAt(svc, *step.Toggle))
		case OpRemove:
			svc.Remove(idAt(svc, *step.Remove))
		case OpUndo:
			svc.Undo()
		case OpRedo:
			svc.Redo()
		}
	}

	return nil
}

// idAt resolves a list index to an item id. Out of range yields an id that
// matches nothing.
func idAt(svc *TodoService, idx int) string {
	items := svc.state.Todos()
	if idx < 0 || idx >= len(items) {
		return ""
	}
	return items[idx].ID
}
