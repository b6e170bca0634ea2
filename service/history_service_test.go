package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/groupmix/groupmix/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryServiceRead(t *testing.T) {
	dir := t.TempDir()
	content := "alice@x.com bob@x.com\ncarol@x.com dan@x.com\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "groups.txt"), []byte(content), 0o644))

	svc := NewHistoryService()
	past, err := svc.Read(dir, nil, nil)
	require.NoError(t, err)
	require.Len(t, past, 2)
	assert.Equal(t, []string{"alice@x.com", "bob@x.com"}, past[0].Members)
	assert.Contains(t, past[0].Source, "groups.txt")
}

func TestHistoryServiceReadMissingDir(t *testing.T) {
	svc := NewHistoryService()
	past, err := svc.Read(filepath.Join(t.TempDir(), "absent"), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, past)
}

func TestHistoryServiceReadBadPattern(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "groups.txt"), []byte("a@x.com b@x.com\n"), 0o644))

	svc := NewHistoryService()
	_, err := svc.Read(dir, []string{"[oops"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrCodeHistoryError)
}

func TestHistoryServiceAppend(t *testing.T) {
	dir := t.TempDir()
	groups := []domain.Group{
		{Members: []domain.Member{{Email: "a@x.com"}, {Email: "b@x.com"}}},
		{Members: []domain.Member{{Email: "c@x.com"}}},
	}

	svc := NewHistoryService()
	path, err := svc.Append(dir, "groups_test.txt", groups)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "groups_test.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com b@x.com\nc@x.com\n", string(data))
}

func TestHistoryServiceAppendDefaultName(t *testing.T) {
	dir := t.TempDir()
	svc := NewHistoryService()

	path, err := svc.Append(dir, "", []domain.Group{
		{Members: []domain.Member{{Email: "a@x.com"}, {Email: "b@x.com"}}},
	})
	require.NoError(t, err)
	assert.Contains(t, filepath.Base(path), "groups_")
	assert.Contains(t, path, ".txt")
}

func TestHistoryServiceAppendExistingFileFails(t *testing.T) {
	dir := t.TempDir()
	svc := NewHistoryService()
	groups := []domain.Group{{Members: []domain.Member{{Email: "a@x.com"}}}}

	_, err := svc.Append(dir, "groups.txt", groups)
	require.NoError(t, err)

	_, err = svc.Append(dir, "groups.txt", groups)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrCodeHistoryError)
}
