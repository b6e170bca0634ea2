package app

import (
	"context"
	"fmt"
	"io"

	"github.com/groupmix/groupmix/domain"
	svc "github.com/groupmix/groupmix/service"
)

// MixUseCase orchestrates the group generation workflow: load the roster,
// read past groupings, run the search, render the result, and append it
// to the history store.
type MixUseCase struct {
	service       domain.GroupingService
	rosterLoader  domain.RosterLoader
	historyReader domain.HistoryReader
	historyWriter domain.HistoryWriter
	formatter     domain.MixOutputFormatter
	output        domain.ReportWriter
}

// NewMixUseCase creates a new group generation use case
func NewMixUseCase(
	service domain.GroupingService,
	rosterLoader domain.RosterLoader,
	historyReader domain.HistoryReader,
	historyWriter domain.HistoryWriter,
	formatter domain.MixOutputFormatter,
) *MixUseCase {
	return &MixUseCase{
		service:       service,
		rosterLoader:  rosterLoader,
		historyReader: historyReader,
		historyWriter: historyWriter,
		formatter:     formatter,
		output:        svc.NewFileOutputWriter(nil),
	}
}

// Execute generates a grouping and writes the formatted output
func (uc *MixUseCase) Execute(ctx context.Context, req domain.MixRequest) error {
	if err := uc.validateRequest(req); err != nil {
		return domain.NewInvalidConfigurationError("invalid request", err)
	}

	members, err := uc.rosterLoader.Load(req.RosterPath)
	if err != nil {
		return err
	}
	req.Members = members

	past, err := uc.historyReader.Read(req.HistoryDir, req.IncludePatterns, req.ExcludePatterns)
	if err != nil {
		return err
	}
	req.History = past

	response, err := uc.service.Mix(ctx, req)
	if err != nil {
		return err
	}

	// Persist before rendering so text output can report the saved path.
	if !req.DryRun {
		savedTo, err := uc.historyWriter.Append(req.HistoryDir, req.OutputName, response.Groups)
		if err != nil {
			return err
		}
		response.SavedTo = savedTo
	}

	var out io.Writer
	if req.OutputPath == "" {
		out = req.OutputWriter
	}
	if err := uc.output.Write(out, req.OutputPath, req.OutputFormat, func(w io.Writer) error {
		return uc.formatter.Write(response, req.OutputFormat, w)
	}); err != nil {
		return domain.NewOutputError("failed to write output", err)
	}
	return nil
}

func (uc *MixUseCase) validateRequest(req domain.MixRequest) error {
	if req.RosterPath == "" {
		return fmt.Errorf("no roster path specified")
	}
	if req.HistoryDir == "" {
		return fmt.Errorf("no history directory specified")
	}
	if req.OutputWriter == nil && req.OutputPath == "" {
		return fmt.Errorf("output writer or output path is required")
	}
	return nil
}

// MixUseCaseBuilder provides a fluent builder for MixUseCase
type MixUseCaseBuilder struct {
	service       domain.GroupingService
	rosterLoader  domain.RosterLoader
	historyReader domain.HistoryReader
	historyWriter domain.HistoryWriter
	formatter     domain.MixOutputFormatter
	output        domain.ReportWriter
}

func NewMixUseCaseBuilder() *MixUseCaseBuilder { return &MixUseCaseBuilder{} }

func (b *MixUseCaseBuilder) WithService(s domain.GroupingService) *MixUseCaseBuilder {
	b.service = s
	return b
}

func (b *MixUseCaseBuilder) WithRosterLoader(rl domain.RosterLoader) *MixUseCaseBuilder {
	b.rosterLoader = rl
	return b
}

func (b *MixUseCaseBuilder) WithHistoryReader(hr domain.HistoryReader) *MixUseCaseBuilder {
	b.historyReader = hr
	return b
}

func (b *MixUseCaseBuilder) WithHistoryWriter(hw domain.HistoryWriter) *MixUseCaseBuilder {
	b.historyWriter = hw
	return b
}

func (b *MixUseCaseBuilder) WithFormatter(f domain.MixOutputFormatter) *MixUseCaseBuilder {
	b.formatter = f
	return b
}

func (b *MixUseCaseBuilder) WithOutputWriter(w domain.ReportWriter) *MixUseCaseBuilder {
	b.output = w
	return b
}

func (b *MixUseCaseBuilder) Build() (*MixUseCase, error) {
	if b.service == nil || b.rosterLoader == nil || b.historyReader == nil ||
		b.historyWriter == nil || b.formatter == nil {
		return nil, fmt.Errorf("missing required dependencies")
	}
	uc := &MixUseCase{
		service:       b.service,
		rosterLoader:  b.rosterLoader,
		historyReader: b.historyReader,
		historyWriter: b.historyWriter,
		formatter:     b.formatter,
		output:        b.output,
	}
	if uc.output == nil {
		uc.output = svc.NewFileOutputWriter(nil)
	}
	return uc, nil
}
