package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/retodo/internal/core/config"
	"github.com/colonyops/retodo/internal/core/todo"
	"github.com/colonyops/retodo/internal/retodo"
)

func newTestRoot(t *testing.T) (*cli.Command, *bytes.Buffer) {
	t.Helper()

	cfg := config.DefaultConfig()
	app, err := retodo.NewApp(&cfg, nil, zerolog.Nop())
	require.NoError(t, err)

	var out bytes.Buffer
	flags := &Flags{}
	root := &cli.Command{Name: "retodo", Writer: &out}
	root = NewRunCmd(flags, app).Register(root)
	root = NewDocCmd(flags, app).Register(root)
	return root, &out
}

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "steps.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func decodeLines(t *testing.T, out string) []json.RawMessage {
	t.Helper()
	var lines []json.RawMessage
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		lines = append(lines, json.RawMessage(line))
	}
	return lines
}

func TestRunCmd(t *testing.T) {
	path := writeScript(t, `
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
  - redo
  - redo
  - redo
`)

	root, out := newTestRoot(t)
	require.NoError(t, root.Run(context.Background(), []string{"retodo", "run", "-f", path, "--history"}))

	lines := decodeLines(t, out.String())
	require.Len(t, lines, 2)

	var item todo.Item
	require.NoError(t, json.Unmarshal(lines[0], &item))
	assert.Equal(t, "Command2", item.Text)
	assert.False(t, item.Completed)

	var summary HistorySummary
	require.NoError(t, json.Unmarshal(lines[1], &summary))
	assert.Equal(t, HistorySummary{
		Length:    5,
		Cursor:    4,
		CanUndo:   true,
		CanRedo:   false,
		UndoDepth: 5,
		RedoDepth: 0,
	}, summary)
}

func TestRunCmd_Pretty(t *testing.T) {
	path := writeScript(t, "steps:\n  - add: Command1\n")

	root, out := newTestRoot(t)
	require.NoError(t, root.Run(context.Background(), []string{"retodo", "run", "-f", path, "--pretty", "--history"}))

	assert.Contains(t, out.String(), "{\n  \"id\": ")
	assert.Contains(t, out.String(), "\n  \"text\": \"Command1\",\n")
	assert.Contains(t, out.String(), "\n  \"undo_depth\": 1,\n")
}

func TestRunCmd_InvalidScript(t *testing.T) {
	path := writeScript(t, "steps:\n  - add: a\n    remove: 0\n")

	root, _ := newTestRoot(t)
	err := root.Run(context.Background(), []string{"retodo", "run", "-f", path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse script")
}

func TestDocCmd_Keys(t *testing.T) {
	root, out := newTestRoot(t)
	require.NoError(t, root.Run(context.Background(), []string{"retodo", "doc", "keys", "--raw"}))

	assert.Contains(t, out.String(), "# retodo key bindings")
	assert.Contains(t, out.String(), "| `ctrl+z` | undo |")
}

func TestDocCmd_KeysRendered(t *testing.T) {
	root, out := newTestRoot(t)
	require.NoError(t, root.Run(context.Background(), []string{"retodo", "doc", "keys"}))

	assert.Contains(t, out.String(), "undo")
	assert.NotContains(t, out.String(), "| --- |", "markdown tables are rendered")
}
