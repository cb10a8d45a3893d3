package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/sentinel/internal/analysis"
	"github.com/nao1215/sentinel/internal/config"
	"github.com/nao1215/sentinel/internal/console"
	"github.com/nao1215/sentinel/internal/database"
	"github.com/nao1215/sentinel/internal/grabber"
	"github.com/nao1215/sentinel/internal/log"
	"github.com/nao1215/sentinel/internal/orchestrator"
	"github.com/nao1215/sentinel/internal/pipeline"
	"github.com/nao1215/sentinel/internal/precheck"
	"github.com/nao1215/sentinel/internal/report"
	"github.com/nao1215/sentinel/internal/session"
	"github.com/nao1215/sentinel/internal/token"
)

// NewRootCmd creates the root command. Without a subcommand it starts the
// interactive loop.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sentinel",
		Short: "Fetch a website's static assets and review them for security issues",
		Long: `sentinel fetches a website's HTML, CSS and JavaScript into a session
directory under ./sites, lists the files ranked by token count and sends the
file you pick to an OpenAI-compatible model for a security review. Each
verdict is saved as sites/<session>/reports/<file>_<type>_report.md.

Enter a URL to start a new session or 'r' to resume one. The API key is read
from the environment variable named by api_key_env (OPENAI_API_KEY by default).

Examples:
  # Start the interactive loop
  sentinel

  # Keep sessions elsewhere and use another model
  sentinel --sites-dir ~/audits --model gpt-4o

  # Route every request through a SOCKS5 proxy
  sentinel --proxy 127.0.0.1:9050`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          runRootCmd,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "", "Configuration file path")
	cmd.PersistentFlags().String("db-dir", "", "History database directory (default: XDG data directory)")

	cmd.Flags().StringP("sites-dir", "s", config.DefaultSitesDir, "Sessions root directory")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout, "Timeout for each page and asset request")
	cmd.Flags().Duration("analysis-timeout", config.DefaultAnalysisTimeout, "Timeout for each analysis request")
	cmd.Flags().StringP("model", "m", config.DefaultModel, "Model used for analysis")
	cmd.Flags().String("api-base-url", config.DefaultAPIBaseURL, "OpenAI-compatible API base URL")
	cmd.Flags().StringP("proxy", "x", "", "SOCKS5 proxy address (host:port) for all requests")
	cmd.Flags().Bool("no-history", false, "Do not record analyses in the history database")
	cmd.Flags().Bool("no-local-checks", false, "Skip the local secret and PII checks before analysis")
	cmd.Flags().Bool("plain", false, "Disable colors and Markdown styling")
	cmd.Flags().Int("wrap", console.DefaultWordWrap, "Wrap width for rendered verdicts")

	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runRootCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	plain, err := cmd.Flags().GetBool("plain")
	if err != nil {
		return err
	}

	logger := log.NewSecureLogger(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	wrap, err := cmd.Flags().GetInt("wrap")
	if err != nil {
		return err
	}

	term := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), console.WithPlain(plain), console.WithWordWrap(wrap))

	err = runInteractive(ctx, cfg, term, logger)
	if errors.Is(err, context.Canceled) {
		logger.Debug("interrupted")
		return nil
	}
	return err
}

// runInteractive wires the components from cfg and runs the loop.
func runInteractive(ctx context.Context, cfg *config.Config, term *console.Terminal, logger *slog.Logger) error {
	fetchClient, err := grabber.NewHTTPClient(cfg.Timeout, cfg.ProxyAddress)
	if err != nil {
		return err
	}
	apiClient, err := grabber.NewHTTPClient(cfg.AnalysisTimeout, cfg.ProxyAddress)
	if err != nil {
		return err
	}

	counter, err := token.NewCounter(cfg.Encoding)
	if err != nil {
		return err
	}

	store := session.NewStore(cfg.SitesDir)

	analyzer := analysis.NewOpenAIClient(analysis.OpenAIConfig{
		APIKey:  os.Getenv(cfg.APIKeyEnv),
		BaseURL: cfg.APIBaseURL,
		Model:   cfg.Model,
		Timeout: cfg.AnalysisTimeout,
	}, analysis.WithHTTPClient(apiClient), analysis.WithLogger(logger))

	deps := pipeline.Deps{
		Counter:         counter,
		Analyzer:        analyzer,
		Model:           analyzer.Model(),
		Writer:          report.NewWriter(store),
		AnalysisTimeout: cfg.AnalysisTimeout,
	}
	if cfg.LocalChecks {
		deps.Prechecks = precheck.NewScanner()
	}
	if cfg.History {
		db, err := database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			logger.Warn("analysis history disabled", "dir", cfg.DBDir, "error", err)
		} else {
			defer db.Close()
			deps.History = db
		}
	}

	logger.Debug("starting interactive loop",
		"sites_dir", cfg.SitesDir,
		"model", cfg.Model,
		"api_base_url", cfg.APIBaseURL,
		"api_key_env", cfg.APIKeyEnv,
		"proxy", cfg.ProxyAddress,
	)

	orch := orchestrator.New(orchestrator.Deps{
		Store: store,
		Grabber: grabber.NewGrabber(fetchClient,
			grabber.WithMaxBodySize(cfg.EffectiveMaxBodySize()),
			grabber.WithLogger(logger),
		),
		Ranker:   counter,
		Pipeline: pipeline.DefaultPipeline(deps, pipeline.WithLogger(logger)),
		Terminal: term,
	}, orchestrator.WithLogger(logger))

	return orch.Run(ctx)
}
