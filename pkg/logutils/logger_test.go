package logutils

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/retodo/internal/core/logging"
)

func TestNew_InvalidLevel(t *testing.T) {
	_, _, err := New("loud", "", io.Discard)
	require.Error(t, err)
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "retodo.log")

	logger, closer, err := New("info", path, io.Discard)
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Msg("shown")
	closer()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "shown")
	assert.NotContains(t, string(data), "hidden")
}

func TestNewWithWriter_ContextHook(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(zerolog.DebugLevel, &buf)

	ctx := logging.WithSessionID(context.Background(), "s1")
	logger.Info().Ctx(ctx).Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "s1", entry["session_id"])
	assert.Contains(t, entry, "time")
}

func TestNew_Fallback(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := New("debug", "", &buf)
	require.NoError(t, err)
	defer closer()

	logger.Debug().Msg("to fallback")
	assert.Contains(t, buf.String(), "to fallback")
}

func TestDeferredWriter(t *testing.T) {
	var out bytes.Buffer
	d := NewDeferredWriter(&out)

	_, _ = d.Write([]byte("direct\n"))
	assert.Equal(t, "direct\n", out.String())

	d.Hold()
	_, _ = d.Write([]byte("one\n"))
	_, _ = d.Write([]byte("two\n"))
	assert.Equal(t, "direct\n", out.String(), "held output is buffered")

	require.NoError(t, d.Release())
	assert.Equal(t, "direct\none\ntwo\n", out.String())

	require.NoError(t, d.Release())
	assert.Equal(t, "direct\none\ntwo\n", out.String(), "release with empty buffer writes nothing")
}
