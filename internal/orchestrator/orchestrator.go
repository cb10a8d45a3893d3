package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/nao1215/sentinel/internal/analysis"
	"github.com/nao1215/sentinel/internal/console"
	"github.com/nao1215/sentinel/internal/grabber"
	"github.com/nao1215/sentinel/internal/model"
	"github.com/nao1215/sentinel/internal/session"
)

// Grabber fetches a page and its assets into a directory.
type Grabber interface {
	Grab(ctx context.Context, pageURL, dir string) (*grabber.Result, error)
}

// Ranker orders session files by token count.
type Ranker interface {
	Rank(dir string, names []string) ([]model.FileEntry, error)
}

// Runner executes the analysis cycle for one file.
type Runner interface {
	Execute(ctx context.Context, a *model.Analysis) error
}

// Deps are the components the loop drives.
type Deps struct {
	Store    *session.Store
	Grabber  Grabber
	Ranker   Ranker
	Pipeline Runner
	Terminal *console.Terminal
}

// Orchestrator runs the interactive loop.
type Orchestrator struct {
	store    *session.Store
	grabber  Grabber
	ranker   Ranker
	pipeline Runner
	term     *console.Terminal
	logger   *slog.Logger
	state    State
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// New creates an Orchestrator.
func New(deps Deps, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		store:    deps.Store,
		grabber:  deps.Grabber,
		ranker:   deps.Ranker,
		pipeline: deps.Pipeline,
		term:     deps.Terminal,
		logger:   slog.Default(),
		state:    AwaitingEntryPoint,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run executes the loop until the operator quits or input ends. It returns
// nil on a normal exit, ctx.Err() on cancellation, and any error that is
// not an operator mistake.
func (o *Orchestrator) Run(ctx context.Context) error {
	if err := o.store.EnsureRoot(); err != nil {
		return err
	}
	o.term.Banner()

	for {
		o.enter(AwaitingEntryPoint)

		id, nav, err := o.awaitEntryPoint(ctx)
		if err != nil {
			return err
		}
		switch nav {
		case NavQuit:
			return nil
		case NavBack, NavNew:
			continue
		}

		nav, err = o.sessionActive(ctx, id)
		if err != nil {
			return err
		}
		if nav == NavQuit {
			return nil
		}
	}
}

func (o *Orchestrator) enter(s State) {
	if o.state != s {
		o.logger.Debug("state transition", "from", o.state.String(), "to", s.String())
	}
	o.state = s
}

// prompt reads one line. End of input is reported as a quit request.
func (o *Orchestrator) prompt(ctx context.Context, message string) (Input, error) {
	type result struct {
		line string
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		line, err := o.term.Prompt(message)
		ch <- result{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		// The reader goroutine stays blocked on the terminal; do not prompt
		// the same Terminal again after a cancellation.
		return Input{}, ctx.Err()
	case r := <-ch:
		if errors.Is(r.err, io.EOF) {
			return Input{Kind: InputQuit}, nil
		}
		if r.err != nil {
			return Input{}, fmt.Errorf("failed to read input: %w", r.err)
		}
		return ParseInput(r.line), nil
	}
}

// awaitEntryPoint returns the chosen session with NavContinue, or another
// navigation when no session was entered.
func (o *Orchestrator) awaitEntryPoint(ctx context.Context) (string, Navigation, error) {
	in, err := o.prompt(ctx, promptEntry)
	if err != nil {
		return "", NavQuit, err
	}

	switch in.Kind {
	case InputQuit:
		return "", NavQuit, nil
	case InputResume:
		return o.pickSession(ctx)
	default:
		return o.openURL(ctx, in.Raw)
	}
}

func (o *Orchestrator) pickSession(ctx context.Context) (string, Navigation, error) {
	sessions, err := o.store.ListSessions()
	if err != nil {
		return "", NavQuit, err
	}
	if len(sessions) == 0 {
		o.term.Error(msgNoSessions)
		return "", NavBack, nil
	}

	o.term.Sessions(sessions)
	in, err := o.prompt(ctx, promptSession)
	if err != nil {
		return "", NavQuit, err
	}

	switch {
	case in.Kind == InputQuit:
		return "", NavQuit, nil
	case in.InRange(len(sessions)):
		id := sessions[in.Index-1]
		o.logger.Debug("session resumed", "session", id)
		return id, NavContinue, nil
	case in.Kind == InputIndex:
		o.term.Error(msgInvalidSelection)
	default:
		o.term.Error(msgNotANumber)
	}
	return "", NavBack, nil
}

// openURL fetches rawURL into its session directory. A failed fetch is
// reported and leads back to the entry prompt.
func (o *Orchestrator) openURL(ctx context.Context, rawURL string) (string, Navigation, error) {
	id, err := session.DirectoryName(rawURL)
	if err != nil {
		o.term.Error(fmt.Sprintf("An error occurred while downloading resources: %v", err))
		return "", NavBack, nil
	}
	pageURL := session.EnsureScheme(rawURL)
	// Different URLs can share an id; the existing directory is reused.
	reused := o.store.Exists(id)

	o.term.Status(msgDownloading)
	result, err := o.grabber.Grab(ctx, pageURL, o.store.Dir(id))
	if err != nil {
		if ctx.Err() != nil {
			return "", NavQuit, ctx.Err()
		}
		o.logger.Debug("page fetch failed", "url", pageURL, "error", err)
		o.term.Error(fmt.Sprintf("An error occurred while downloading resources: %v", err))
		return "", NavBack, nil
	}

	o.term.Info("Downloaded HTML: " + grabber.IndexFileName)
	for _, asset := range result.Assets {
		if asset.Err != nil {
			o.term.Warn(fmt.Sprintf("Error downloading %s from %s: %v", asset.Kind, asset.URL, asset.Err))
			continue
		}
		o.term.Info(fmt.Sprintf("Downloaded %s: %s", asset.Kind, filepath.Base(asset.Path)))
	}
	o.term.Success(msgDownloadComplete)

	o.logger.Debug("session opened", "session", id, "reused", reused, "url", result.PageURL,
		"title", result.Title, "saved", len(result.Saved()), "failed", len(result.Failed()))
	return id, NavContinue, nil
}

// sessionActive lists and ranks the session files until the operator leaves.
func (o *Orchestrator) sessionActive(ctx context.Context, id string) (Navigation, error) {
	for {
		o.enter(SessionActive)

		names, err := o.store.ListFiles(id)
		if err != nil {
			return NavQuit, err
		}
		entries, err := o.ranker.Rank(o.store.Dir(id), names)
		if err != nil {
			return NavQuit, err
		}
		o.term.Files(entries)

		in, err := o.prompt(ctx, promptFile)
		if err != nil {
			return NavQuit, err
		}

		switch {
		case in.Kind == InputBack:
			return NavBack, nil
		case in.Kind == InputNew:
			return NavNew, nil
		case in.Kind == InputQuit:
			return NavQuit, nil
		case in.InRange(len(entries)):
			nav, err := o.analyze(ctx, id, entries[in.Index-1])
			if err != nil {
				return NavQuit, err
			}
			if nav != NavContinue {
				return nav, nil
			}
		case in.Kind == InputIndex:
			o.term.Error(msgInvalidSelection)
		default:
			o.term.Error(msgInvalidFileInput)
		}
	}
}

// analyze runs the pipeline on one file, shows the verdict and asks what
// to do next.
func (o *Orchestrator) analyze(ctx context.Context, id string, entry model.FileEntry) (Navigation, error) {
	o.enter(Analyzing)

	a := model.NewAnalysis(id, entry.Name, filepath.Join(o.store.Dir(id), entry.Name), analysis.FileType(entry.Name))

	o.term.Status(msgAnalyzing)
	if err := o.pipeline.Execute(ctx, a); err != nil {
		return NavQuit, err
	}

	o.term.Verdict(a.Verdict)
	if n := len(a.Findings); n > 0 {
		o.term.Warn(fmt.Sprintf(msgLocalFindings, n))
	}
	o.term.Success("Report saved as " + a.ReportPath)

	for {
		in, err := o.prompt(ctx, promptNext)
		if err != nil {
			return NavQuit, err
		}
		switch in.Kind {
		case InputContinue:
			return NavContinue, nil
		case InputBack:
			return NavBack, nil
		case InputNew:
			return NavNew, nil
		case InputQuit:
			return NavQuit, nil
		default:
			o.term.Error(msgInvalidNext)
		}
	}
}
