package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nao1215/sentinel/internal/analysis"
	"github.com/nao1215/sentinel/internal/model"
	"github.com/nao1215/sentinel/internal/precheck"
	"github.com/nao1215/sentinel/internal/report"
	"github.com/nao1215/sentinel/internal/token"
)

// ReadStep reads the selected file and counts its tokens.
type ReadStep struct {
	counter *token.Counter
}

// NewReadStep creates a ReadStep.
func NewReadStep(counter *token.Counter) *ReadStep {
	return &ReadStep{counter: counter}
}

// Name returns the step name.
func (s *ReadStep) Name() string {
	return "read"
}

// Do fills Content and Tokens. Non-UTF-8 files fail with token.ErrNotText.
func (s *ReadStep) Do(_ context.Context, a *model.Analysis) error {
	count, err := s.counter.CountFile(a.FilePath)
	if err != nil {
		return err
	}
	a.Content = count.Content
	a.Tokens = count.Tokens
	return nil
}

// PrecheckStep runs the local pattern checks on the file content.
type PrecheckStep struct {
	scanner *precheck.Scanner
}

// NewPrecheckStep creates a PrecheckStep.
func NewPrecheckStep(scanner *precheck.Scanner) *PrecheckStep {
	return &PrecheckStep{scanner: scanner}
}

// Name returns the step name.
func (s *PrecheckStep) Name() string {
	return "precheck"
}

// Do fills Findings.
func (s *PrecheckStep) Do(ctx context.Context, a *model.Analysis) error {
	findings, err := s.scanner.Scan(ctx, a.Content)
	if err != nil {
		return err
	}
	a.Findings = findings
	return nil
}

// AnalyzeStep sends the file content to the analysis service.
type AnalyzeStep struct {
	analyzer analysis.Analyzer
	model    string
	timeout  time.Duration
	logger   *slog.Logger
}

// AnalyzeStepOption configures an AnalyzeStep.
type AnalyzeStepOption func(*AnalyzeStep)

// WithAnalyzeTimeout bounds the analysis call. Zero means no extra bound.
func WithAnalyzeTimeout(d time.Duration) AnalyzeStepOption {
	return func(s *AnalyzeStep) {
		s.timeout = d
	}
}

// WithAnalyzeLogger sets a custom logger.
func WithAnalyzeLogger(logger *slog.Logger) AnalyzeStepOption {
	return func(s *AnalyzeStep) {
		s.logger = logger
	}
}

// NewAnalyzeStep creates an AnalyzeStep. modelName is recorded in the
// analysis for the report and history.
func NewAnalyzeStep(analyzer analysis.Analyzer, modelName string, opts ...AnalyzeStepOption) *AnalyzeStep {
	s := &AnalyzeStep{
		analyzer: analyzer,
		model:    modelName,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *AnalyzeStep) Name() string {
	return "analyze"
}

// Do fills Model and Verdict.
func (s *AnalyzeStep) Do(ctx context.Context, a *model.Analysis) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	s.logger.Debug("analyzing file", "file", a.FileName, "file_type", a.FileType, "tokens", a.Tokens)

	verdict, err := s.analyzer.Analyze(ctx, a.Content, a.FileType)
	if err != nil {
		return fmt.Errorf("analysis of %s failed: %w", a.FileName, err)
	}
	a.Model = s.model
	a.Verdict = verdict
	return nil
}

// ReportStep saves the verdict as the file's report.
type ReportStep struct {
	writer *report.Writer
}

// NewReportStep creates a ReportStep.
func NewReportStep(writer *report.Writer) *ReportStep {
	return &ReportStep{writer: writer}
}

// Name returns the step name.
func (s *ReportStep) Name() string {
	return "report"
}

// Do fills ReportPath.
func (s *ReportStep) Do(_ context.Context, a *model.Analysis) error {
	path, err := s.writer.SaveAnalysis(a)
	if err != nil {
		return err
	}
	a.ReportPath = path
	return nil
}

// HistoryRecorder stores completed analyses.
type HistoryRecorder interface {
	InsertAnalysis(ctx context.Context, entry *model.HistoryEntry) (int64, error)
}

// HistoryStep records the finished analysis. The report is already on disk
// at this point, so a recording failure is logged and not returned.
type HistoryStep struct {
	recorder HistoryRecorder
	logger   *slog.Logger
}

// NewHistoryStep creates a HistoryStep. A nil logger uses slog.Default().
func NewHistoryStep(recorder HistoryRecorder, logger *slog.Logger) *HistoryStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &HistoryStep{recorder: recorder, logger: logger}
}

// Name returns the step name.
func (s *HistoryStep) Name() string {
	return "history"
}

// Do appends a history entry.
func (s *HistoryStep) Do(ctx context.Context, a *model.Analysis) error {
	if _, err := s.recorder.InsertAnalysis(ctx, model.HistoryEntryFrom(a)); err != nil {
		s.logger.Warn("failed to record analysis history", "file", a.FileName, "session", a.SessionID, "error", err)
	}
	return nil
}

// Deps are the components of the default analysis cycle.
type Deps struct {
	Counter  *token.Counter
	Analyzer analysis.Analyzer
	Model    string
	Writer   *report.Writer

	// Prechecks is optional; nil skips the local checks.
	Prechecks *precheck.Scanner

	// History is optional; nil skips the history step.
	History HistoryRecorder

	// AnalysisTimeout bounds the analysis call; zero means no extra bound.
	AnalysisTimeout time.Duration
}

// DefaultPipeline builds read → precheck → analyze → report → history.
func DefaultPipeline(deps Deps, opts ...Option) *Pipeline {
	p := New(opts...)
	p.AddStep(NewReadStep(deps.Counter))
	if deps.Prechecks != nil {
		p.AddStep(NewPrecheckStep(deps.Prechecks))
	}
	p.AddSteps(
		NewAnalyzeStep(deps.Analyzer, deps.Model,
			WithAnalyzeTimeout(deps.AnalysisTimeout),
			WithAnalyzeLogger(p.logger),
		),
		NewReportStep(deps.Writer),
	)
	if deps.History != nil {
		p.AddStep(NewHistoryStep(deps.History, p.logger))
	}
	return p
}
