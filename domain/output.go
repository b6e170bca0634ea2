package domain

import (
	"io"
)

// OutputFormat represents the supported output formats
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
	OutputFormatCSV  OutputFormat = "csv"
)

// ParseOutputFormat validates a format string from flags or config.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case OutputFormatText, OutputFormatJSON, OutputFormatYAML, OutputFormatCSV:
		return OutputFormat(s), nil
	default:
		return "", NewUnsupportedFormatError(s)
	}
}

// SortCriteria represents the criteria for sorting pair reports
type SortCriteria string

const (
	SortByCount SortCriteria = "count"
	SortByName  SortCriteria = "name"
)

// ReportWriter abstracts writing formatted reports to a destination.
//
// Implementations live in the service layer. If outputPath is non-empty
// the report goes to that file (created or truncated) and a status line is
// emitted; otherwise the provided writer receives the output directly.
type ReportWriter interface {
	Write(writer io.Writer, outputPath string, format OutputFormat, writeFunc func(io.Writer) error) error
}

// ProgressManager manages progress reporting for the grouping search
type ProgressManager interface {
	// Initialize sets up progress tracking with the maximum value
	Initialize(maxValue int)

	// Start starts the progress bar
	Start()

	// Update updates the progress
	Update(processed, total int)

	// Complete marks the progress as completed
	Complete(success bool)

	// SetWriter sets the output writer for progress bars
	SetWriter(writer io.Writer)

	// IsInteractive returns true if progress bars should be shown
	IsInteractive() bool

	// Close cleans up any resources
	Close()
}
