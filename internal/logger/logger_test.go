package logger_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cedar/internal/logger"
)

func TestDisabledIsSilent(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Output: &buf})
	log.Infow("cache miss", "file", "a.cedar")
	log.Debug("debug")
	assert.Empty(t, buf.String())
}

func TestConsole(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Verbose: true, Output: &buf})
	log.Debugw("cache hit", "file", "a.cedar")
	require.NoError(t, log.Sync())

	out := buf.String()
	assert.Contains(t, out, "DEBUG")
	assert.Contains(t, out, "cache hit")
	assert.Contains(t, out, `"file": "a.cedar"`)
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{JSON: true, Output: &buf})
	log.Debug("hidden at info level")
	log.Infow("wrote file", "path", "out.go", "bytes", 120)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "wrote file", entry["msg"])
	assert.Equal(t, "out.go", entry["path"])
	assert.InDelta(t, 120, entry["bytes"], 0)
}
