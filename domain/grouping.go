package domain

import (
	"context"
	"io"
)

// Member is one roster entry: an opaque email identifier plus the display
// name used for greetings.
type Member struct {
	Email string `json:"email" yaml:"email"`
	Name  string `json:"name" yaml:"name"`
}

// Group is one generated group.
type Group struct {
	// Members in display order (sorted by email)
	Members []Member `json:"members" yaml:"members"`

	// Greeting is the email salutation for this group
	// ("Hi Alice, Bob, and Carol,")
	Greeting string `json:"greeting,omitempty" yaml:"greeting,omitempty"`

	// RepeatPairs counts member pairs in this group that were grouped
	// together at least once before
	RepeatPairs int `json:"repeat_pairs" yaml:"repeat_pairs"`

	// OverlapScore is the summed historical co-occurrence over this
	// group's pairs
	OverlapScore int `json:"overlap_score" yaml:"overlap_score"`
}

// Emails returns the group's member emails.
func (g Group) Emails() []string {
	emails := make([]string, len(g.Members))
	for i, m := range g.Members {
		emails[i] = m.Email
	}
	return emails
}

// PastGrouping is a historical group restricted to raw emails; display
// names of past members may no longer be known.
type PastGrouping struct {
	Members []string
	Source  string
	Line    int
}

// MixRequest describes one group generation run.
type MixRequest struct {
	// Input files
	RosterPath string
	HistoryDir string

	// History file selection (doublestar globs on file names)
	IncludePatterns []string
	ExcludePatterns []string

	// Resolved inputs; the use case fills these after loading the files
	// above, mirroring how commands pass paths and use cases pass data
	Members []Member
	History []PastGrouping

	// Grouping parameters
	GroupSize int
	Attempts  int
	MaxRepeat int

	// Seed fixes the random source; 0 derives a seed from the current time
	Seed int64

	// Output configuration
	OutputFormat OutputFormat
	OutputWriter io.Writer
	OutputPath   string
	ShowGreeting bool

	// OutputName names the history file the grouping is appended to;
	// empty means a timestamped default
	OutputName string

	// DryRun skips appending the result to the history store
	DryRun bool

	// ConfigPath is an explicit configuration file path
	ConfigPath string

	// ExplicitFlags records which CLI flags were set, for config merging
	ExplicitFlags map[string]bool
}

// MixSummary aggregates statistics over a generated grouping.
type MixSummary struct {
	Participants int `json:"participants" yaml:"participants"`
	GroupCount   int `json:"group_count" yaml:"group_count"`
	GroupSize    int `json:"group_size" yaml:"group_size"`

	// PastGroups is how many historical groups informed the overlap counts
	PastGroups int `json:"past_groups" yaml:"past_groups"`

	// RepeatPairs counts generated pairs that already occurred in history
	RepeatPairs int `json:"repeat_pairs" yaml:"repeat_pairs"`

	// OverlapScore is the total historical co-occurrence over all
	// generated in-group pairs; 0 means nobody is regrouped with anybody
	OverlapScore int `json:"overlap_score" yaml:"overlap_score"`

	// Attempts is how many greedy passes the search ran before settling
	Attempts int `json:"attempts" yaml:"attempts"`

	// Seed is the seed that produced this grouping (reported so a run
	// started from a time-derived seed can be replayed)
	Seed int64 `json:"seed" yaml:"seed"`
}

// MixResponse is the complete result of a group generation run.
type MixResponse struct {
	Groups  []Group    `json:"groups" yaml:"groups"`
	Summary MixSummary `json:"summary" yaml:"summary"`

	// Warnings carries non-fatal findings, e.g. a group exceeding the
	// max-repeat overlap with a past group
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`

	// SavedTo is the history file the grouping was appended to, empty on
	// dry runs
	SavedTo string `json:"saved_to,omitempty" yaml:"saved_to,omitempty"`

	// Metadata
	GeneratedAt string `json:"generated_at" yaml:"generated_at"`
	Version     string `json:"version" yaml:"version"`
}

// GroupingService defines the core business logic for group generation
type GroupingService interface {
	// Mix partitions the request's members into groups minimizing
	// repeated co-occurrence with the request's history
	Mix(ctx context.Context, req MixRequest) (*MixResponse, error)
}

// RosterLoader loads the participant roster
type RosterLoader interface {
	// Load reads "email,name" entries from the given file
	Load(path string) ([]Member, error)
}

// HistoryReader yields previously persisted groupings
type HistoryReader interface {
	// Read returns all past groups under dir that match the patterns
	Read(dir string, includePatterns, excludePatterns []string) ([]PastGrouping, error)
}

// HistoryWriter appends newly generated groupings to the history store
type HistoryWriter interface {
	// Append persists the groups under dir as a new file and returns its
	// path; name may be empty for a timestamped default
	Append(dir, name string, groups []Group) (string, error)
}

// MixOutputFormatter renders a MixResponse
type MixOutputFormatter interface {
	// Format formats the response according to the specified format
	Format(response *MixResponse, format OutputFormat) (string, error)

	// Write writes the formatted output to the writer
	Write(response *MixResponse, format OutputFormat, writer io.Writer) error
}
