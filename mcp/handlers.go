package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/groupmix/groupmix/domain"
	"github.com/groupmix/groupmix/service"
	"github.com/mark3labs/mcp-go/mcp"
)

// HandlerSet exposes MCP tool handlers with shared dependencies.
type HandlerSet struct {
	deps *Dependencies
}

// NewHandlerSet constructs a handler set.
func NewHandlerSet(deps *Dependencies) *HandlerSet {
	if deps == nil {
		deps = NewDependencies(nil, "")
	}
	return &HandlerSet{deps: deps}
}

// HandleGenerateGroups handles the generate_groups tool
func (h *HandlerSet) HandleGenerateGroups(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		args = map[string]interface{}{}
	}

	cfg := h.deps.Config()
	req := domain.MixRequest{
		RosterPath:      cfg.Roster.Path,
		HistoryDir:      cfg.History.Directory,
		IncludePatterns: cfg.History.IncludePatterns,
		ExcludePatterns: cfg.History.ExcludePatterns,
		GroupSize:       cfg.Grouping.GroupSize,
		Attempts:        cfg.Grouping.Attempts,
		MaxRepeat:       cfg.Grouping.MaxRepeat,
		Seed:            cfg.Grouping.Seed,
		OutputFormat:    domain.OutputFormatJSON,
		ShowGreeting:    cfg.Output.Greeting,
		ConfigPath:      h.deps.ConfigPath(),

		// Tools only mutate the history when asked to.
		DryRun: true,
	}

	if roster, ok := args["roster"].(string); ok && roster != "" {
		req.RosterPath = roster
	}
	if history, ok := args["history"].(string); ok && history != "" {
		req.HistoryDir = history
	}
	if groupSize, ok := args["group_size"].(float64); ok {
		req.GroupSize = int(groupSize)
	}
	if attempts, ok := args["attempts"].(float64); ok {
		req.Attempts = int(attempts)
	}
	if seed, ok := args["seed"].(float64); ok {
		req.Seed = int64(seed)
	}
	if save, ok := args["save"].(bool); ok && save {
		req.DryRun = false
	}
	if name, ok := args["output_name"].(string); ok {
		req.OutputName = name
	}

	if _, err := os.Stat(req.RosterPath); os.IsNotExist(err) {
		return mcp.NewToolResultError(fmt.Sprintf("roster file does not exist: %s", req.RosterPath)), nil
	}

	useCase, err := h.deps.BuildMixUseCase()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to create grouping pipeline: %v", err)), nil
	}

	var buf strings.Builder
	req.OutputWriter = &buf

	if err := useCase.Execute(ctx, req); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("grouping failed: %v", err)), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}

// HandlePairStats handles the pair_stats tool
func (h *HandlerSet) HandlePairStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		args = map[string]interface{}{}
	}

	cfg := h.deps.Config()
	req := domain.PairsRequest{
		RosterPath:      cfg.Roster.Path,
		HistoryDir:      cfg.History.Directory,
		IncludePatterns: cfg.History.IncludePatterns,
		ExcludePatterns: cfg.History.ExcludePatterns,
		MinCount:        1,
		SortBy:          domain.SortCriteria(cfg.Output.SortBy),
		OutputFormat:    domain.OutputFormatJSON,
		ConfigPath:      h.deps.ConfigPath(),
	}

	if roster, ok := args["roster"].(string); ok && roster != "" {
		req.RosterPath = roster
	}
	if history, ok := args["history"].(string); ok && history != "" {
		req.HistoryDir = history
	}
	if minCount, ok := args["min_count"].(float64); ok {
		req.MinCount = int(minCount)
	}
	if sortBy, ok := args["sort"].(string); ok && sortBy != "" {
		switch domain.SortCriteria(sortBy) {
		case domain.SortByCount, domain.SortByName:
			req.SortBy = domain.SortCriteria(sortBy)
		default:
			return mcp.NewToolResultError(fmt.Sprintf("invalid sort order: %s (valid: count, name)", sortBy)), nil
		}
	}

	if _, err := os.Stat(req.RosterPath); os.IsNotExist(err) {
		return mcp.NewToolResultError(fmt.Sprintf("roster file does not exist: %s", req.RosterPath)), nil
	}

	useCase, err := h.deps.BuildPairsUseCase()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to create pair report pipeline: %v", err)), nil
	}

	var buf strings.Builder
	req.OutputWriter = &buf

	if err := useCase.Execute(ctx, req); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("pair report failed: %v", err)), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}

// HandleListHistory handles the list_history tool
func (h *HandlerSet) HandleListHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		args = map[string]interface{}{}
	}

	cfg := h.deps.Config()
	historyDir := cfg.History.Directory
	if dir, ok := args["history"].(string); ok && dir != "" {
		historyDir = dir
	}

	past, err := service.NewHistoryService().Read(historyDir, cfg.History.IncludePatterns, cfg.History.ExcludePatterns)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read history: %v", err)), nil
	}

	type fileSummary struct {
		File   string `json:"file"`
		Groups int    `json:"groups"`
		People int    `json:"people"`
	}

	byFile := map[string]*fileSummary{}
	order := []string{}
	for _, grouping := range past {
		fs := byFile[grouping.Source]
		if fs == nil {
			fs = &fileSummary{File: filepath.Base(grouping.Source)}
			byFile[grouping.Source] = fs
			order = append(order, grouping.Source)
		}
		fs.Groups++
		fs.People += len(grouping.Members)
	}

	files := make([]fileSummary, 0, len(order))
	for _, name := range order {
		files = append(files, *byFile[name])
	}

	jsonData, err := json.Marshal(map[string]interface{}{
		"history_dir": historyDir,
		"files":       files,
		"past_groups": len(past),
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
