package app

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/groupmix/groupmix/domain"
	"github.com/groupmix/groupmix/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildPairsUseCase(t *testing.T) *PairsUseCase {
	t.Helper()
	uc, err := NewPairsUseCaseBuilder().
		WithService(service.NewPairsService()).
		WithRosterLoader(service.NewRosterLoader()).
		WithHistoryReader(service.NewHistoryService()).
		WithFormatter(service.NewPairsFormatter()).
		Build()
	require.NoError(t, err)
	return uc
}

func TestPairsUseCaseExecute(t *testing.T) {
	dir := t.TempDir()
	rosterPath := filepath.Join(dir, "names.txt")
	require.NoError(t, os.WriteFile(rosterPath,
		[]byte("alice@x.com,Alice\nbob@x.com,Bob\n"), 0o644))

	historyDir := filepath.Join(dir, "past-groups")
	require.NoError(t, os.MkdirAll(historyDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(historyDir, "groups.txt"),
		[]byte("alice@x.com bob@x.com\nalice@x.com bob@x.com\n"), 0o644))

	var out strings.Builder
	req := domain.PairsRequest{
		RosterPath:   rosterPath,
		HistoryDir:   historyDir,
		OutputFormat: domain.OutputFormatJSON,
		OutputWriter: &out,
	}

	require.NoError(t, buildPairsUseCase(t).Execute(context.Background(), req))

	var resp domain.PairsResponse
	require.NoError(t, json.Unmarshal([]byte(out.String()), &resp))
	require.Len(t, resp.Pairs, 1)
	assert.Equal(t, 2, resp.Pairs[0].Count)
}

func TestPairsUseCaseValidation(t *testing.T) {
	err := buildPairsUseCase(t).Execute(context.Background(), domain.PairsRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrCodeInvalidConfiguration)
}

func TestPairsUseCaseBuilderMissingDeps(t *testing.T) {
	_, err := NewPairsUseCaseBuilder().Build()
	assert.Error(t, err)
}
