package mcp_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/groupmix/groupmix/domain"
	"github.com/groupmix/groupmix/mcp"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFixtures(t *testing.T) (rosterPath, historyDir string) {
	t.Helper()
	dir := t.TempDir()
	rosterPath = filepath.Join(dir, "names.txt")
	require.NoError(t, os.WriteFile(rosterPath,
		[]byte("alice@x.com,Alice\nbob@x.com,Bob\ncarol@x.com,Carol\ndan@x.com,Dan\n"), 0o644))

	historyDir = filepath.Join(dir, "past-groups")
	require.NoError(t, os.MkdirAll(historyDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(historyDir, "groups_old.txt"),
		[]byte("alice@x.com bob@x.com\ncarol@x.com dan@x.com\n"), 0o644))
	return rosterPath, historyDir
}

func callTool(
	t *testing.T,
	handlerFunc func(*mcp.HandlerSet, context.Context, mcplib.CallToolRequest) (*mcplib.CallToolResult, error),
	arguments interface{},
) *mcplib.CallToolResult {
	t.Helper()
	h := mcp.NewHandlerSet(mcp.NewDependencies(nil, ""))

	req := mcplib.CallToolRequest{
		Params: mcplib.CallToolParams{
			Arguments: arguments,
		},
	}

	res, err := handlerFunc(h, context.Background(), req)
	require.NoError(t, err)
	return res
}

func resultText(t *testing.T, res *mcplib.CallToolResult) string {
	t.Helper()
	require.Greater(t, len(res.Content), 0)
	tc, ok := mcplib.AsTextContent(res.Content[0])
	require.True(t, ok)
	return tc.Text
}

func TestHandleGenerateGroups(t *testing.T) {
	rosterPath, historyDir := setupFixtures(t)

	res := callTool(t, (*mcp.HandlerSet).HandleGenerateGroups, map[string]interface{}{
		"roster":     rosterPath,
		"history":    historyDir,
		"group_size": float64(2),
		"seed":       float64(7),
	})
	require.False(t, res.IsError)

	var resp domain.MixResponse
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &resp))
	assert.Len(t, resp.Groups, 2)
	assert.Equal(t, 4, resp.Summary.Participants)
	assert.Equal(t, 2, resp.Summary.PastGroups)

	// Tools do not save unless asked to.
	entries, err := os.ReadDir(historyDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestHandleGenerateGroupsSave(t *testing.T) {
	rosterPath, historyDir := setupFixtures(t)

	res := callTool(t, (*mcp.HandlerSet).HandleGenerateGroups, map[string]interface{}{
		"roster":      rosterPath,
		"history":     historyDir,
		"group_size":  float64(2),
		"seed":        float64(7),
		"save":        true,
		"output_name": "groups_new.txt",
	})
	require.False(t, res.IsError)

	var resp domain.MixResponse
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &resp))
	assert.True(t, strings.HasSuffix(resp.SavedTo, "groups_new.txt"))

	_, err := os.Stat(filepath.Join(historyDir, "groups_new.txt"))
	assert.NoError(t, err)
}

func TestHandleGenerateGroupsMissingRoster(t *testing.T) {
	res := callTool(t, (*mcp.HandlerSet).HandleGenerateGroups, map[string]interface{}{
		"roster": filepath.Join(t.TempDir(), "names.txt"),
	})
	require.True(t, res.IsError)
	assert.True(t, strings.HasPrefix(resultText(t, res), "roster file does not exist"))
}

func TestHandlePairStats(t *testing.T) {
	rosterPath, historyDir := setupFixtures(t)

	res := callTool(t, (*mcp.HandlerSet).HandlePairStats, map[string]interface{}{
		"roster":  rosterPath,
		"history": historyDir,
	})
	require.False(t, res.IsError)

	var resp domain.PairsResponse
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &resp))
	require.Len(t, resp.Pairs, 2)
	assert.Equal(t, 1, resp.Pairs[0].Count)
	assert.Equal(t, 4, resp.Summary.Participants)
}

func TestHandlePairStatsInvalidSort(t *testing.T) {
	rosterPath, historyDir := setupFixtures(t)

	res := callTool(t, (*mcp.HandlerSet).HandlePairStats, map[string]interface{}{
		"roster":  rosterPath,
		"history": historyDir,
		"sort":    "height",
	})
	require.True(t, res.IsError)
	assert.True(t, strings.HasPrefix(resultText(t, res), "invalid sort order"))
}

func TestHandleListHistory(t *testing.T) {
	_, historyDir := setupFixtures(t)

	res := callTool(t, (*mcp.HandlerSet).HandleListHistory, map[string]interface{}{
		"history": historyDir,
	})
	require.False(t, res.IsError)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &result))
	assert.Equal(t, float64(2), result["past_groups"])

	files, ok := result["files"].([]interface{})
	require.True(t, ok)
	require.Len(t, files, 1)
	file := files[0].(map[string]interface{})
	assert.Equal(t, "groups_old.txt", file["file"])
	assert.Equal(t, float64(2), file["groups"])
}

func TestHandleListHistoryEmptyDir(t *testing.T) {
	res := callTool(t, (*mcp.HandlerSet).HandleListHistory, map[string]interface{}{
		"history": filepath.Join(t.TempDir(), "nothing-here"),
	})
	require.False(t, res.IsError)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &result))
	assert.Equal(t, float64(0), result["past_groups"])
}
