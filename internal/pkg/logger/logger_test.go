package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entries(t *testing.T, buf *bytes.Buffer) []LogEntry {
	t.Helper()
	var out []LogEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var e LogEntry
		require.NoError(t, json.Unmarshal([]byte(line), &e))
		out = append(out, e)
	}
	return out
}

func TestLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerWithWriter("warn", &buf)

	log.Debug("debug", nil)
	log.Info("info", nil)
	log.Warn("warn", map[string]interface{}{"k": "v"})
	log.Error("error", errors.New("boom"))

	got := entries(t, &buf)
	require.Len(t, got, 2)
	assert.Equal(t, "WARN", got[0].Level)
	assert.Equal(t, "v", got[0].Fields["k"])
	assert.Equal(t, "ERROR", got[1].Level)
	assert.Equal(t, "boom", got[1].Error)
}

func TestLogger_DebugLevelWritesEverything(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerWithWriter("DEBUG", &buf)

	log.Debug("a", nil)
	log.Info("b", map[string]interface{}{"id": "123"})

	got := entries(t, &buf)
	require.Len(t, got, 2)
	assert.Equal(t, "DEBUG", got[0].Level)
	assert.Equal(t, "b", got[1].Message)
	assert.NotEmpty(t, got[1].Timestamp)
}

func TestLogger_UnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerWithWriter("verbose", &buf)

	log.Debug("hidden", nil)
	log.Info("shown", nil)

	got := entries(t, &buf)
	require.Len(t, got, 1)
	assert.Equal(t, "shown", got[0].Message)
}

func TestLogger_FatalExits(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerWithWriter("info", &buf)
	code := -1
	log.exit = func(c int) { code = c }

	log.Fatal("fim", errors.New("porta ocupada"))

	assert.Equal(t, 1, code)
	assert.Equal(t, "FATAL", entries(t, &buf)[0].Level)
}

func TestLogger_UnserializableFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerWithWriter("info", &buf)

	log.Info("canal", map[string]interface{}{"ch": make(chan int)})

	got := entries(t, &buf)
	require.Len(t, got, 1)
	assert.Equal(t, "canal", got[0].Message)
	assert.NotEmpty(t, got[0].Error)
}
