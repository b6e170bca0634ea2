package app

import (
	"context"
	"fmt"
	"io"

	"github.com/groupmix/groupmix/domain"
	svc "github.com/groupmix/groupmix/service"
)

// PairsUseCase orchestrates the pair co-occurrence report workflow
type PairsUseCase struct {
	service       domain.PairsService
	rosterLoader  domain.RosterLoader
	historyReader domain.HistoryReader
	formatter     domain.PairsOutputFormatter
	output        domain.ReportWriter
}

// NewPairsUseCase creates a new pair report use case
func NewPairsUseCase(
	service domain.PairsService,
	rosterLoader domain.RosterLoader,
	historyReader domain.HistoryReader,
	formatter domain.PairsOutputFormatter,
) *PairsUseCase {
	return &PairsUseCase{
		service:       service,
		rosterLoader:  rosterLoader,
		historyReader: historyReader,
		formatter:     formatter,
		output:        svc.NewFileOutputWriter(nil),
	}
}

// Execute computes the pair report and writes the formatted output
func (uc *PairsUseCase) Execute(ctx context.Context, req domain.PairsRequest) error {
	if req.RosterPath == "" {
		return domain.NewInvalidConfigurationError("no roster path specified", nil)
	}
	if req.HistoryDir == "" {
		return domain.NewInvalidConfigurationError("no history directory specified", nil)
	}
	if req.OutputWriter == nil && req.OutputPath == "" {
		return domain.NewInvalidConfigurationError("output writer or output path is required", nil)
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

	response, err := uc.service.Report(ctx, req)
	if err != nil {
		return err
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

// PairsUseCaseBuilder provides a fluent builder for PairsUseCase
type PairsUseCaseBuilder struct {
	service       domain.PairsService
	rosterLoader  domain.RosterLoader
	historyReader domain.HistoryReader
	formatter     domain.PairsOutputFormatter
	output        domain.ReportWriter
}

func NewPairsUseCaseBuilder() *PairsUseCaseBuilder { return &PairsUseCaseBuilder{} }

func (b *PairsUseCaseBuilder) WithService(s domain.PairsService) *PairsUseCaseBuilder {
	b.service = s
	return b
}

func (b *PairsUseCaseBuilder) WithRosterLoader(rl domain.RosterLoader) *PairsUseCaseBuilder {
	b.rosterLoader = rl
	return b
}

func (b *PairsUseCaseBuilder) WithHistoryReader(hr domain.HistoryReader) *PairsUseCaseBuilder {
	b.historyReader = hr
	return b
}

func (b *PairsUseCaseBuilder) WithFormatter(f domain.PairsOutputFormatter) *PairsUseCaseBuilder {
	b.formatter = f
	return b
}

func (b *PairsUseCaseBuilder) WithOutputWriter(w domain.ReportWriter) *PairsUseCaseBuilder {
	b.output = w
	return b
}

func (b *PairsUseCaseBuilder) Build() (*PairsUseCase, error) {
	if b.service == nil || b.rosterLoader == nil || b.historyReader == nil || b.formatter == nil {
		return nil, fmt.Errorf("missing required dependencies")
	}
	uc := &PairsUseCase{
		service:       b.service,
		rosterLoader:  b.rosterLoader,
		historyReader: b.historyReader,
		formatter:     b.formatter,
		output:        b.output,
	}
	if uc.output == nil {
		uc.output = svc.NewFileOutputWriter(nil)
	}
	return uc, nil
}
