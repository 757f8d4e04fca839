package global

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWriter(t *testing.T, maxSize int64, maxLogs int) *rollingFileWriter {
	t.Helper()

	w, err := NewRollingFileWriter(filepath.Join(t.TempDir(), "logs"), "test")
	require.NoError(t, err)
	w.maxSize = maxSize
	w.maxLogs = maxLogs

	return w
}

func readLog(t *testing.T, path string) string {
	t.Helper()

	contents, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(contents)
}

func TestWriterAppends(t *testing.T) {
	w := newTestWriter(t, 1000, 3)

	_, err := w.Write([]byte("one\n"))
	require.NoError(t, err)
	_, err = w.Write([]byte("two\n"))
	require.NoError(t, err)

	assert.Equal(t, "one\ntwo\n", readLog(t, w.getFullFilePath()))
}

func TestWriterRotates(t *testing.T) {
	w := newTestWriter(t, 4, 3)

	for _, line := range []string{"aaaa", "bbbb", "cccc", "dddd"} {
		_, err := w.Write([]byte(line))
		require.NoError(t, err)
	}

	assert.Equal(t, "dddd", readLog(t, w.getFullFilePath()))
	assert.Equal(t, "cccc", readLog(t, w.indexedLog(1)))
	assert.Equal(t, "bbbb", readLog(t, w.indexedLog(2)))
	assert.NoFileExists(t, w.indexedLog(3))
}

func TestWriterRemovesBrokenArchives(t *testing.T) {
	w := newTestWriter(t, 1, 3)
	broken := filepath.Join(w.FileDirectory, "test-abc.log")
	require.NoError(t, os.WriteFile(broken, []byte("?"), 0644))

	_, err := w.Write([]byte("a"))
	require.NoError(t, err)
	_, err = w.Write([]byte("b"))
	require.NoError(t, err)

	assert.NoFileExists(t, broken)
	assert.Equal(t, "a", readLog(t, w.indexedLog(1)))
}

func TestLogIndex(t *testing.T) {
	index, ok := logIndex("pokemon-term", "/tmp/pokemon-term-12.log")
	assert.True(t, ok)
	assert.Equal(t, 12, index)

	for _, bad := range []string{"pokemon-term-x.log", "pokemon-term-0.log", "other-1.log"} {
		_, ok := logIndex("pokemon-term", bad)
		assert.False(t, ok, bad)
	}
}
