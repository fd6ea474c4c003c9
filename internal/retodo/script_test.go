package retodo

import (
	"context"
	"strings"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScript(t *testing.T) {
	input := `
steps:
  - add: "Buy milk"
  - add: "Pay rent"
    completed: true
  - toggle: 0
  - remove: 1
  - undo
  - redo: true
`
	script, err := ParseScript(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, script.Steps, 6)

	assert.Equal(t, []Op{OpAdd}, script.Steps[0].Ops())
	assert.True(t, script.Steps[1].Completed)
	assert.Equal(t, 0, *script.Steps[2].Toggle)
	assert.Equal(t, 1, *script.Steps[3].Remove)
	assert.Equal(t, []Op{OpUndo}, script.Steps[4].Ops())
	assert.Equal(t, []Op{OpRedo}, script.Steps[5].Ops())
}

func TestParseScript_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantField string
		wantErr   string
	}{
		{
			name:      "no steps",
			input:     "steps: []",
			wantField: "steps",
			wantErr:   "array is empty",
		},
		{
			name:      "multiple operations",
			input:     "steps:\n  - add: a\n    undo: true",
			wantField: "steps[0]",
			wantErr:   "multiple operations",
		},
		{
			name:      "no operation",
			input:     "steps:\n  - completed: true",
			wantField: "steps[0]",
			wantErr:   "no operation set",
		},
		{
			name:      "negative index",
			input:     "steps:\n  - toggle: -1",
			wantField: "steps[0].toggle",
			wantErr:   "must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScript(strings.NewReader(tt.input))
			require.Error(t, err)

			var fieldErrs criterio.FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			require.Len(t, fieldErrs, 1)
			assert.Equal(t, tt.wantField, fieldErrs[0].Field)
			assert.Contains(t, fieldErrs[0].Err.Error(), tt.wantErr)
		})
	}
}

func TestParseScript_Malformed(t *testing.T) {
	_, err := ParseScript(strings.NewReader("steps:\n  - jump"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown step "jump"`)

	_, err = ParseScript(strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty input")
}

func TestScript_Run(t *testing.T) {
	input := `
steps:
  - add: Command1
  - toggle: 0
  - remove: 0
  - add: Command2
    completed: true
  - toggle: 0
  - undo
  - undo
  - undo
`
	script, err := ParseScript(strings.NewReader(input))
	require.NoError(t, err)

	svc := newTestService(t)
	require.NoError(t, script.Run(context.Background(), svc, zerolog.Nop()))

	items := svc.Todos()
	require.Len(t, items, 1)
	assert.Equal(t, "Command1", items[0].Text)
	assert.True(t, items[0].Completed)
	assert.Equal(t, 3, svc.History().RedoDepth())
}

func TestScript_RunOutOfRangeIndex(t *testing.T) {
	script := Script{Steps: []Step{
		{Add: ptr("only")},
		{Remove: ptr(5)},
	}}

	svc := newTestService(t)
	require.NoError(t, script.Run(context.Background(), svc, zerolog.Nop()))

	assert.Len(t, svc.Todos(), 1)
	assert.Equal(t, 2, svc.History().Len(), "out of range removal is still recorded")
}

func TestScript_NullAddIsBlankInsert(t *testing.T) {
	input := `
steps:
  - add:
  - add: ~
  - add: ""
  - add: kept
  - undo
`
	script, err := ParseScript(strings.NewReader(input))
	require.NoError(t, err)
	for i := range 3 {
		require.NotNil(t, script.Steps[i].Add, "step %d", i)
		assert.Empty(t, *script.Steps[i].Add)
	}

	svc := newTestService(t)
	require.NoError(t, script.Run(context.Background(), svc, zerolog.Nop()))

	assert.Empty(t, svc.Todos())
	assert.Equal(t, 4, svc.History().Len(), "blank inserts are recorded")
	assert.Equal(t, 2, svc.History().Cursor())

	svc.Undo()
	svc.Undo()
	svc.Undo()
	assert.False(t, svc.History().CanUndo())
	assert.Empty(t, svc.Todos())
}

func ptr[T any](v T) *T {
	return &v
}
