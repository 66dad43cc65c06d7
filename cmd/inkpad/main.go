package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"inkpad/internal/config"
	"inkpad/internal/logging"
	"inkpad/internal/storage/boltdb"
	"inkpad/internal/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// app bundles the opened stores and process config shared by all commands.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	records  *sqlite.Storage
	settings *boltdb.Storage
}

// open loads config and opens both stores. Migrations run here, at open
// time, before any command logic touches the tables.
func (a *app) open(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logging.New(cfg.LogLevel, cfg.LogFile)

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	records, err := sqlite.New(ctx, cfg.RecordDBPath())
	if err != nil {
		return fmt.Errorf("failed to open record store: %w", err)
	}
	a.records = records

	settings, err := boltdb.New(ctx, cfg.SettingsDBPath())
	if err != nil {
		records.Close()
		return fmt.Errorf("failed to open settings store: %w", err)
	}
	a.settings = settings

	return nil
}

func (a *app) close() {
	if a.settings != nil {
		if err := a.settings.Close(); err != nil {
			a.logger.Error("failed to close settings store", "error", err)
		}
	}
	if a.records != nil {
		if err := a.records.Close(); err != nil {
			a.logger.Error("failed to close record store", "error", err)
		}
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "inkpad",
		Short:         "Local-first notes with portable backups",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newVersionCmd(),
		newNotebookCmd(a),
		newNoteCmd(a),
		newSettingsCmd(a),
		newBackupCmd(a),
	)

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("inkpad %s (built %s, commit %s)\n", Version, BuildDate, GitCommit)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
