package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDisabledDiscards(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Init(Options{Enabled: false, Writer: &out}))
	Info("dropped")
	assert.Zero(t, out.Len())
}

func TestInitWriter(t *testing.T) {
	t.Cleanup(func() { L = Discard() })

	var out bytes.Buffer
	require.NoError(t, Init(Options{Enabled: true, Writer: &out, Level: slog.LevelDebug}))
	Debug("probe", "slot", 3)
	assert.Contains(t, out.String(), "msg=probe")
	assert.Contains(t, out.String(), "slot=3")
}

func TestInitJSON(t *testing.T) {
	t.Cleanup(func() { L = Discard() })

	var out bytes.Buffer
	require.NoError(t, Init(Options{Enabled: true, Writer: &out, JSON: true}))
	Debug("below level")
	Warn("full", "capacity", 7)
	assert.NotContains(t, out.String(), "below level")
	assert.Contains(t, out.String(), `"capacity":7`)
}

func TestInitLogDir(t *testing.T) {
	t.Cleanup(func() { L = Discard() })

	dir := t.TempDir()
	require.NoError(t, Init(Options{Enabled: true, LogDir: dir}))
	Info("to file")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Name(), logPrefix)
}

func TestCleanOldLogs(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	old := filepath.Join(dir, logPrefix+"2024-01-01"+logSuffix)
	fresh := filepath.Join(dir, logPrefix+"2024-02-28"+logSuffix)
	other := filepath.Join(dir, "notes.txt")
	for _, p := range []string{old, fresh, other} {
		require.NoError(t, os.WriteFile(p, []byte("x"), 0644))
	}

	cleanOldLogs(dir, now)

	assert.NoFileExists(t, old)
	assert.FileExists(t, fresh)
	assert.FileExists(t, other)
}

func TestOrDiscard(t *testing.T) {
	assert.NotNil(t, OrDiscard(nil))
	l := slog.Default()
	assert.Same(t, l, OrDiscard(l))
}
