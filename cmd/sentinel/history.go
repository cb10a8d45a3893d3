package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/nao1215/sentinel/internal/database"
	"github.com/nao1215/sentinel/internal/model"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded analyses",
		Long: `History lists the analyses recorded in the history database, newest first.

The history is informational only. Sessions are always resumed from the
sites directory, so deleting the database loses nothing you need.

Examples:
  # Show the last 20 analyses
  sentinel history

  # Show every analysis of one session
  sentinel history --session example_com --limit 0

  # List the sessions that have recorded analyses
  sentinel history --sessions

  # Machine-readable output
  sentinel history --json`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().StringP("session", "S", "", "Only show analyses of this session")
	cmd.Flags().IntP("limit", "n", 20, "Maximum number of entries (0 for all)")
	cmd.Flags().BoolP("json", "j", false, "Output as JSON")
	cmd.Flags().Bool("sessions", false, "List sessions with recorded analyses instead of entries")
	cmd.MarkFlagsMutuallyExclusive("sessions", "session")

	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyDBDirFlag(cmd, cfg); err != nil {
		return err
	}

	sessionID, err := cmd.Flags().GetString("session")
	if err != nil {
		return err
	}
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	onlySessions, err := cmd.Flags().GetBool("sessions")
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.DBDir, database.Options{CreateIfNotExists: false})
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	if onlySessions {
		return printHistorySessions(cmd, db, asJSON)
	}

	entries := make([]*model.HistoryEntry, 0)
	if db != nil {
		entries, err = db.ListAnalyses(cmd.Context(), sessionID, limit)
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, "No analyses recorded.")
		return nil
	}

	fmt.Fprintln(out, historyTable(entries).Render())
	return nil
}

func historyTable(entries []*model.HistoryEntry) *table.Table {
	header := lipgloss.NewStyle().Bold(true).PaddingRight(2)
	cell := lipgloss.NewStyle().PaddingRight(2)

	tbl := table.New().
		Headers("ID", "TIME", "SESSION", "FILE", "TYPE", "TOKENS", "MODEL", "REPORT").
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderHeader(true).
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	for _, e := range entries {
		tbl.Row(
			strconv.FormatInt(e.ID, 10),
			e.AnalyzedAt.Local().Format("2006-01-02 15:04"),
			e.SessionID,
			e.FileName,
			e.FileType,
			strconv.Itoa(e.Tokens),
			e.Model,
			e.ReportPath,
		)
	}
	return tbl
}

// printHistorySessions prints the sessions that have recorded analyses. A
// nil db means nothing has been recorded yet.
func printHistorySessions(cmd *cobra.Command, db *database.HistoryDB, asJSON bool) error {
	sessions := make([]string, 0)
	if db != nil {
		var err error
		if sessions, err = db.ListSessions(cmd.Context()); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(sessions)
	}
	if len(sessions) == 0 {
		fmt.Fprintln(out, "No analyses recorded.")
		return nil
	}
	for _, s := range sessions {
		fmt.Fprintln(out, s)
	}
	return nil
}
