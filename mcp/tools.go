package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all groupmix MCP tools with the server
func RegisterTools(s *server.MCPServer) {
	RegisterToolsWith(s, NewHandlerSet(nil))
}

// RegisterToolsWith registers the tools backed by a specific handler set.
func RegisterToolsWith(s *server.MCPServer, h *HandlerSet) {
	// Tool 1: generate_groups - Generate a low-overlap grouping
	s.AddTool(mcp.NewTool("generate_groups",
		mcp.WithDescription("Partition the roster into groups that overlap as little as possible with past groups. Returns the grouping as JSON. Does not save to the history unless 'save' is true."),
		mcp.WithString("roster",
			mcp.Description("Roster file of email,name pairs (default: configured roster)")),
		mcp.WithString("history",
			mcp.Description("Directory of past groupings (default: configured history)")),
		mcp.WithNumber("group_size",
			mcp.Description("Target number of people per group (default: configured, 4)")),
		mcp.WithNumber("attempts",
			mcp.Description("Randomized restarts of the grouping search (default: configured, 100)")),
		mcp.WithNumber("seed",
			mcp.Description("Random seed, 0 = derive from current time (default: 0)")),
		mcp.WithBoolean("save",
			mcp.Description("Append the grouping to the history directory (default: false)")),
		mcp.WithString("output_name",
			mcp.Description("History file name when saving (default: timestamped)")),
	), h.HandleGenerateGroups)

	// Tool 2: pair_stats - Pair co-occurrence report
	s.AddTool(mcp.NewTool("pair_stats",
		mcp.WithDescription("Report how many past groups each pair of roster members has shared, as JSON"),
		mcp.WithString("roster",
			mcp.Description("Roster file of email,name pairs (default: configured roster)")),
		mcp.WithString("history",
			mcp.Description("Directory of past groupings (default: configured history)")),
		mcp.WithNumber("min_count",
			mcp.Description("Only include pairs that met at least this many times (default: 1)")),
		mcp.WithString("sort",
			mcp.Description("Sort order: count, name (default: count)")),
	), h.HandlePairStats)

	// Tool 3: list_history - Summarize the history directory
	s.AddTool(mcp.NewTool("list_history",
		mcp.WithDescription("List the recorded history files with their group counts, as JSON"),
		mcp.WithString("history",
			mcp.Description("Directory of past groupings (default: configured history)")),
	), h.HandleListHistory)
}
