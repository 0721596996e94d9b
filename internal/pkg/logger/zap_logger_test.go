package logger

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZapLoggerWritesJSONLinesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l := NewZapLogger(path, true)

	l.Debug("message", "debug lines stay on console", nil)
	l.Info("message", "message stored", map[string]interface{}{"message_id": "abc"})
	l.Error("message", "insert failed", map[string]interface{}{"error": "boom"})

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	var entries []map[string]interface{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		entries = append(entries, entry)
	}
	require.NoError(t, scanner.Err())
	require.Len(t, entries, 2)

	assert.Equal(t, "INFO", entries[0]["level"])
	assert.Equal(t, "message stored", entries[0]["message"])
	assert.Equal(t, "message", entries[0]["module"])
	assert.Equal(t, map[string]interface{}{"message_id": "abc"}, entries[0]["details"])

	assert.Equal(t, "ERROR", entries[1]["level"])
	assert.Equal(t, "boom", entries[1]["error_ref"])
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	l.Info("any", "ignored", nil)
	assert.NoError(t, l.Sync())
}
