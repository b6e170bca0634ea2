package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/groupmix/groupmix/domain"
)

// PairsFormatterImpl implements the PairsOutputFormatter interface
type PairsFormatterImpl struct{}

// NewPairsFormatter creates a new pairs output formatter
func NewPairsFormatter() *PairsFormatterImpl {
	return &PairsFormatterImpl{}
}

// Format formats the pair report according to the specified format
func (f *PairsFormatterImpl) Format(response *domain.PairsResponse, format domain.OutputFormat) (string, error) {
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
func (f *PairsFormatterImpl) Write(response *domain.PairsResponse, format domain.OutputFormat, writer io.Writer) error {
	output, err := f.Format(response, format)
	if err != nil {
		return err
	}
	return writeString(writer, output)
}

func (f *PairsFormatterImpl) formatText(response *domain.PairsResponse) (string, error) {
	var builder strings.Builder
	utils := NewFormatUtils()

	builder.WriteString(utils.FormatMainHeader("Pair Co-occurrence Report"))

	builder.WriteString(utils.FormatLabel("Participants", response.Summary.Participants))
	builder.WriteString(utils.FormatLabel("Past groups", response.Summary.PastGroups))
	builder.WriteString(utils.FormatLabel("Tracked pairs", response.Summary.TrackedPairs))
	builder.WriteString(utils.FormatLabel("Max count", response.Summary.MaxCount))
	builder.WriteString("\n")

	if len(response.Pairs) == 0 {
		builder.WriteString("No pair has been grouped together yet.\n")
		return builder.String(), nil
	}

	builder.WriteString(utils.FormatSectionHeader("Pairs"))
	for _, pair := range response.Pairs {
		builder.WriteString(fmt.Sprintf("%4d  %s / %s\n", pair.Count, pair.A, pair.B))
	}

	return builder.String(), nil
}

func (f *PairsFormatterImpl) formatCSV(response *domain.PairsResponse) (string, error) {
	var builder strings.Builder
	w := csv.NewWriter(&builder)

	if err := w.Write([]string{"a", "b", "count"}); err != nil {
		return "", domain.NewOutputError("failed to write CSV header", err)
	}
	for _, pair := range response.Pairs {
		if err := w.Write([]string{pair.A, pair.B, strconv.Itoa(pair.Count)}); err != nil {
			return "", domain.NewOutputError("failed to write CSV record", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", domain.NewOutputError("failed to flush CSV output", err)
	}
	return builder.String(), nil
}
