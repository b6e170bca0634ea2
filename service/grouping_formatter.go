package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/groupmix/groupmix/domain"
)

// GroupingFormatterImpl implements the MixOutputFormatter interface
type GroupingFormatterImpl struct{}

// NewGroupingFormatter creates a new grouping output formatter
func NewGroupingFormatter() *GroupingFormatterImpl {
	return &GroupingFormatterImpl{}
}

// Format formats the grouping response according to the specified format
func (f *GroupingFormatterImpl) Format(response *domain.MixResponse, format domain.OutputFormat) (string, error) {
	switch format {
	case domain.OutputFormatText:
		return f.formatText(response)
	case domain.OutputFormatJSON:
		return EncodeJSON(response)
	case domain.OutputFormatYAML:
		return EncodeYAML(response)
	case domain.OutputFormatCSV:
		return f.formatCSV(response)
	default:
		return "", domain.NewUnsupportedFormatError(string(format))
	}
}

// Write writes the formatted output to the writer
func (f *GroupingFormatterImpl) Write(response *domain.MixResponse, format domain.OutputFormat, writer io.Writer) error {
	output, err := f.Format(response, format)
	if err != nil {
		return err
	}
	return writeString(writer, output)
}

// formatText renders the groups the way the grouping emails are sent:
// the email line first, then the greeting when enabled.
func (f *GroupingFormatterImpl) formatText(response *domain.MixResponse) (string, error) {
	var builder strings.Builder
	utils := NewFormatUtils()

	builder.WriteString(utils.FormatMainHeader("New Groups"))

	for _, group := range response.Groups {
		builder.WriteString(strings.Join(group.Emails(), " ") + "\n")
		if group.Greeting != "" {
			builder.WriteString(group.Greeting + "\n")
		}
		builder.WriteString("\n")
	}

	builder.WriteString(utils.FormatSectionHeader("Summary"))
	builder.WriteString(utils.FormatLabel("Participants", response.Summary.Participants))
	builder.WriteString(utils.FormatLabel("Groups", response.Summary.GroupCount))
	builder.WriteString(utils.FormatLabel("Past groups", response.Summary.PastGroups))
	builder.WriteString(utils.FormatLabel("Repeat pairs", response.Summary.RepeatPairs))
	builder.WriteString(utils.FormatLabel("Overlap score", response.Summary.OverlapScore))
	builder.WriteString(utils.FormatLabel("Attempts", response.Summary.Attempts))
	builder.WriteString(utils.FormatLabel("Seed", response.Summary.Seed))
	builder.WriteString("\n")

	if len(response.Warnings) > 0 {
		builder.WriteString(utils.FormatWarningsSection(response.Warnings))
	}

	if response.SavedTo != "" {
		builder.WriteString(fmt.Sprintf("Grouping saved to %s\n", response.SavedTo))
	}

	return builder.String(), nil
}

// formatCSV renders one row per member: group index, email, name.
func (f *GroupingFormatterImpl) formatCSV(response *domain.MixResponse) (string, error) {
	var builder strings.Builder
	w := csv.NewWriter(&builder)

	if err := w.Write([]string{"group", "email", "name"}); err != nil {
		return "", domain.NewOutputError("failed to write CSV header", err)
	}
	for i, group := range response.Groups {
		for _, member := range group.Members {
			record := []string{strconv.Itoa(i + 1), member.Email, member.Name}
			if err := w.Write(record); err != nil {
				return "", domain.NewOutputError("failed to write CSV record", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", domain.NewOutputError("failed to flush CSV output", err)
	}
	return builder.String(), nil
}
