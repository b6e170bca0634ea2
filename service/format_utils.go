package service

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/groupmix/groupmix/domain"
	"gopkg.in/yaml.v3"
)

// EncodeJSON returns an indented JSON string for the given value.
func EncodeJSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", domain.NewOutputError("failed to marshal JSON", err)
	}
	return string(data), nil
}

// EncodeYAML returns a YAML string for the given value.
func EncodeYAML(v interface{}) (string, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", domain.NewOutputError("failed to marshal YAML", err)
	}
	return string(data), nil
}

// Standard formatting constants
const (
	HeaderWidth = 40
	LabelWidth  = 22
)

// FormatUtils provides shared formatting utilities
type FormatUtils struct{}

// NewFormatUtils creates a new format utilities instance
func NewFormatUtils() *FormatUtils {
	return &FormatUtils{}
}

// FormatMainHeader creates a standardized main header
func (f *FormatUtils) FormatMainHeader(title string) string {
	var builder strings.Builder
	builder.WriteString(title + "\n")
	builder.WriteString(strings.Repeat("=", HeaderWidth) + "\n\n")
	return builder.String()
}

// FormatSectionHeader creates a standardized section header
func (f *FormatUtils) FormatSectionHeader(title string) string {
	var builder strings.Builder
	builder.WriteString(strings.ToUpper(title) + "\n")
	builder.WriteString(strings.Repeat("-", len(title)) + "\n")
	return builder.String()
}

// FormatLabel creates a consistently formatted label with right alignment
func (f *FormatUtils) FormatLabel(label string, value interface{}) string {
	padding := LabelWidth - len(label)
	if padding < 1 {
		padding = 1
	}
	return fmt.Sprintf("%s:%s%v\n", label, strings.Repeat(" ", padding), value)
}

// FormatWarningsSection renders warnings with a section header
func (f *FormatUtils) FormatWarningsSection(warnings []string) string {
	var builder strings.Builder
	builder.WriteString(f.FormatSectionHeader("Warnings"))
	for _, warning := range warnings {
		builder.WriteString("  ! " + warning + "\n")
	}
	builder.WriteString("\n")
	return builder.String()
}

// writeString writes a formatted string to the writer, wrapping failures
// as output errors.
func writeString(w io.Writer, output string) error {
	if _, err := w.Write([]byte(output)); err != nil {
		return domain.NewOutputError("failed to write output", err)
	}
	return nil
}
