package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"session_id": "abc", "component": "dragdrop"})
	log.Info("element dropped", "element_type", "email", "element_id", 3)

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "element dropped", entry["message"])
	require.Equal(t, "abc", entry["session_id"])
	require.Equal(t, "dragdrop", entry["component"])
	require.Equal(t, "email", entry["element_type"])
	require.EqualValues(t, 3, entry["element_id"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"script": "demo.yaml"})
	log.Error(errors.New("boom"), "replay failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "replay failed", entry["message"])
	require.Equal(t, "demo.yaml", entry["script"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "chatty", Writer: &bytes.Buffer{}})
	require.Error(t, err)
}

func TestLoggerWritesToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "formbuilder.log")
	log, err := New(Options{Level: "debug", File: path})
	require.NoError(t, err)

	log.Debug("drag started", "payload", "email")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "drag started")
}

func TestDerivedLoggerSharesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "formbuilder.log")
	root, err := New(Options{File: path})
	require.NoError(t, err)

	derived := root.WithFields(map[string]any{"script": "contact.yaml"})
	derived.Info("replay finished")
	require.NoError(t, derived.Close())
	require.ErrorIs(t, root.Close(), os.ErrClosed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "contact.yaml")
}

func TestNilAndNopLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var nilLogger *Logger
	require.NotPanics(t, func() {
		nilLogger.Info("ignored")
		nilLogger.Error(errors.New("x"), "ignored")
		require.Nil(t, nilLogger.WithFields(map[string]any{"a": 1}))
		require.NoError(t, nilLogger.Close())
	})

	nop := Nop()
	require.NotPanics(t, func() {
		nop.Warn("ignored", "k", "v")
	})
	require.NoError(t, nop.Close())
}
