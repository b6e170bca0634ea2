package domain

import (
	"context"
	"io"
)

// PairCount is one historical pair with its co-occurrence count.
type PairCount struct {
	A     string `json:"a" yaml:"a"`
	B     string `json:"b" yaml:"b"`
	Count int    `json:"count" yaml:"count"`
}

// PairsRequest describes a pair co-occurrence report over the history.
type PairsRequest struct {
	// Input files
	RosterPath string
	HistoryDir string

	// History file selection
	IncludePatterns []string
	ExcludePatterns []string

	// Resolved inputs, filled by the use case
	Members []Member
	History []PastGrouping

	// MinCount filters out pairs below this count (default 1)
	MinCount int

	// Sorting: count (descending, then name) or name
	SortBy SortCriteria

	// Output configuration
	OutputFormat OutputFormat
	OutputWriter io.Writer
	OutputPath   string

	// ConfigPath is an explicit configuration file path
	ConfigPath string
}

// PairsSummary aggregates the co-occurrence report.
type PairsSummary struct {
	Participants int `json:"participants" yaml:"participants"`
	PastGroups   int `json:"past_groups" yaml:"past_groups"`

	// TrackedPairs counts distinct pairs with at least one co-occurrence
	TrackedPairs int `json:"tracked_pairs" yaml:"tracked_pairs"`

	// MaxCount is the highest co-occurrence of any pair
	MaxCount int `json:"max_count" yaml:"max_count"`
}

// PairsResponse is the complete pair co-occurrence report.
type PairsResponse struct {
	Pairs   []PairCount  `json:"pairs" yaml:"pairs"`
	Summary PairsSummary `json:"summary" yaml:"summary"`

	// Metadata
	GeneratedAt string `json:"generated_at" yaml:"generated_at"`
	Version     string `json:"version" yaml:"version"`
}

// PairsService computes pair co-occurrence reports
type PairsService interface {
	Report(ctx context.Context, req PairsRequest) (*PairsResponse, error)
}

// PairsOutputFormatter renders a PairsResponse
type PairsOutputFormatter interface {
	Format(response *PairsResponse, format OutputFormat) (string, error)
	Write(response *PairsResponse, format OutputFormat, writer io.Writer) error
}
