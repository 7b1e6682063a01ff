package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readLines(t *testing.T, p string) []map[string]any {
	t.Helper()
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	var out []map[string]any
	for _, ln := range strings.Split(strings.TrimSpace(string(b)), "\n") {
		if ln == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(ln), &m))
		out = append(out, m)
	}
	return out
}

func TestNewWritesJSONToFile(t *testing.T) {
	dir := t.TempDir()
	log, err := New(ModeInfo, Options{Dir: dir, Filename: "test.log"})
	require.NoError(t, err)

	log.Info("hello")
	log.Debug("hidden")
	_ = log.Sync()

	lines := readLines(t, filepath.Join(dir, "test.log"))
	require.Len(t, lines, 1)
	assert.Equal(t, "hello", lines[0]["message"])
	assert.Equal(t, "info", lines[0]["level"])
	assert.Contains(t, lines[0], "time")
}

func TestNewDebugMode(t *testing.T) {
	dir := t.TempDir()
	log, err := New("DEBUG", Options{Dir: dir})
	require.NoError(t, err)

	log.Debug("visible")
	_ = log.Sync()

	lines := readLines(t, filepath.Join(dir, defaultLogFilename))
	require.Len(t, lines, 1)
	assert.Equal(t, "debug", lines[0]["level"])
}

func TestNewOffDoesNotCreateFile(t *testing.T) {
	dir := t.TempDir()
	log, err := New(ModeOff, Options{Dir: dir})
	require.NoError(t, err)
	log.Info("dropped")

	_, err = os.Stat(filepath.Join(dir, defaultLogFilename))
	assert.True(t, os.IsNotExist(err))
}

func TestNewUnwritableDir(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	_, err := New(ModeInfo, Options{Dir: filepath.Join(blocker, "logs")})
	assert.ErrorContains(t, err, "create log dir")
}

func TestWithSession(t *testing.T) {
	dir := t.TempDir()
	log, err := New(ModeInfo, Options{Dir: dir})
	require.NoError(t, err)

	log, id := WithSession(log)
	log.Info("tagged")
	_ = log.Sync()

	lines := readLines(t, filepath.Join(dir, defaultLogFilename))
	require.Len(t, lines, 1)
	assert.Equal(t, id, lines[0]["session"])
	assert.Len(t, id, 36)
}

func TestDefaultDir(t *testing.T) {
	assert.True(t, strings.HasSuffix(DefaultDir(), filepath.Join("shoplist", "logs")))
}
