package history

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeHistoryFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestReadConcatenatesAllFiles(t *testing.T) {
	dir := t.TempDir()
	writeHistoryFile(t, dir, "2026-01.txt", "alice@x.com bob@x.com\ncarol@x.com dan@x.com\n")
	writeHistoryFile(t, dir, "2026-02.txt", "alice@x.com carol@x.com\n")

	store := NewStore(dir, nil, nil)
	groups, err := store.Read()
	require.NoError(t, err)
	require.Len(t, groups, 3)

	assert.Equal(t, []string{"alice@x.com", "bob@x.com"}, groups[0].Members)
	assert.Equal(t, 1, groups[0].Line)
	assert.Equal(t, []string{"alice@x.com", "carol@x.com"}, groups[2].Members)
	assert.Contains(t, groups[2].Source, "2026-02.txt")
}

func TestReadSkipsHiddenFilesAndBlankLines(t *testing.T) {
	dir := t.TempDir()
	writeHistoryFile(t, dir, ".DS_Store", "junk junk\n")
	writeHistoryFile(t, dir, "groups.txt", "\na@x.com b@x.com\n\n")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive"), 0o755))

	groups, err := NewStore(dir, nil, nil).Read()
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, 2, groups[0].Line)
}

func TestReadMissingDirectoryIsEmptyHistory(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nope"), nil, nil)
	groups, err := store.Read()
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestIncludeExcludePatterns(t *testing.T) {
	dir := t.TempDir()
	writeHistoryFile(t, dir, "groups_2026.txt", "a@x.com b@x.com\n")
	writeHistoryFile(t, dir, "notes.md", "c@x.com d@x.com\n")
	writeHistoryFile(t, dir, "groups_draft.txt", "e@x.com f@x.com\n")

	store := NewStore(dir, []string{"*.txt"}, []string{"*draft*"})
	files, err := store.Files()
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Contains(t, files[0], "groups_2026.txt")
}

func TestInvalidPatternSurfacesError(t *testing.T) {
	dir := t.TempDir()
	writeHistoryFile(t, dir, "groups.txt", "a@x.com b@x.com\n")

	_, err := NewStore(dir, []string{"[bad"}, nil).Files()
	assert.Error(t, err)
}

func TestAppendAndReadBack(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "past-groups")
	store := NewStore(dir, nil, nil)

	path, err := store.Append("groups_new.txt", [][]string{
		{"a@x.com", "b@x.com"},
		{"c@x.com", "d@x.com", "e@x.com"},
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "groups_new.txt"), path)

	groups, err := store.Read()
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, []string{"c@x.com", "d@x.com", "e@x.com"}, groups[1].Members)
}

func TestAppendRefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, nil, nil)

	_, err := store.Append("groups.txt", [][]string{{"a@x.com", "b@x.com"}})
	require.NoError(t, err)

	_, err = store.Append("groups.txt", [][]string{{"c@x.com", "d@x.com"}})
	assert.Error(t, err)
}
