package pipeline

import (
	"context"
	"log/slog"

	"github.com/nao1215/sentinel/internal/model"
)

// Step is one stage of the analysis cycle.
type Step interface {
	// Do executes the step. Returning an error stops the pipeline.
	Do(ctx context.Context, a *model.Analysis) error

	// Name returns the step's name for logging.
	Name() string
}

// Pipeline executes steps in order.
type Pipeline struct {
	steps  []Step
	logger *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates an empty Pipeline.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps: make([]Step, 0),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// AddStep appends a step.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends steps in the given order.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs every step on a. Cancellation is checked between steps;
// a running step is expected to honor ctx itself.
func (p *Pipeline) Execute(ctx context.Context, a *model.Analysis) error {
	for _, step := range p.steps {
		if err := ctx.Err(); err != nil {
			p.logger.Warn("pipeline cancelled", "step", step.Name(), "reason", err)
			return err
		}

		p.logger.Debug("executing step", "step", step.Name(), "session", a.SessionID, "file", a.FileName)

		if err := step.Do(ctx, a); err != nil {
			p.logger.Debug("step failed", "step", step.Name(), "file", a.FileName, "error", err)
			return err
		}
		a.PerformedSteps = append(a.PerformedSteps, step.Name())
	}
	return nil
}

// StepCount returns the number of steps.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the step names in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
