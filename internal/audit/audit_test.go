package audit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntry() Entry {
	return Entry{
		Timestamp:  time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC),
		Action:     "add",
		Details:    "payment $250.00 on 2025-05-30",
		EntryID:    "e1",
		CommitHash: "abc1234",
	}
}

func TestAppendAndRead(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Append(dir, []Entry{sampleEntry()}))

	second := sampleEntry()
	second.Action = "init"
	second.EntryID = ""
	require.NoError(t, Append(dir, []Entry{second}))

	got, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, sampleEntry(), got[0])
	assert.Equal(t, "init", got[1].Action)
	assert.Empty(t, got[1].EntryID)
}

func TestAppend_WritesHeaderOnce(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Append(dir, []Entry{sampleEntry()}))
	require.NoError(t, Append(dir, []Entry{sampleEntry()}))

	data, err := os.ReadFile(filepath.Join(dir, logFile))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), Header))
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUnmarshalEntry_BadTimestamp(t *testing.T) {
	_, err := UnmarshalEntry([]string{"yesterday", "add", "", "", ""})
	assert.Error(t, err)
}
