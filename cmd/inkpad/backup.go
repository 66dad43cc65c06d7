package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"inkpad/internal/backup"
)

func newBackupCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Create, import and restore backup archives",
	}

	cmd.AddCommand(
		newBackupCreateCmd(a),
		newBackupImportCmd(a),
		newBackupRestoreCmd(a),
	)

	return cmd
}

func newBackupCreateCmd(a *app) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "create <dest-dir>",
		Short: "Snapshot all local state into an archive in dest-dir",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(cmd.Context()); err != nil {
				return err
			}
			defer a.close()

			policy := backup.AttachmentsLenient
			if strict {
				policy = backup.AttachmentsStrict
			}

			builder := backup.NewBuilder(a.records, a.settings, a.cfg.BackgroundsDir(), policy, a.logger)
			path, err := builder.CreateBackup(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Backup written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict-attachments", false, "abort instead of skipping unreadable background images")

	return cmd
}

func newBackupImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Copy an archive into private staging for later restore",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(cmd.Context()); err != nil {
				return err
			}
			defer a.close()

			importer := backup.NewImporter(a.cfg.StagingDir(), a.logger)
			staged, err := importer.ImportBackup(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Imported to %s\n", staged)
			return nil
		},
	}
}

func newBackupRestoreCmd(a *app) *cobra.Command {
	var strategyName string
	var yes bool

	cmd := &cobra.Command{
		Use:   "restore <path>",
		Short: "Restore an archive into the live store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, err := backup.ParseStrategy(strategyName)
			if err != nil {
				return err
			}

			// Overwrite erases everything; on a terminal, make the user say so
			if strategy == backup.StrategyOverwrite && !yes {
				ok, err := confirmOnTerminal("This will erase all current notebooks and notes. Continue? [y/N]: ")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println("Aborted.")
					return nil
				}
			}

			if err := a.open(cmd.Context()); err != nil {
				return err
			}
			defer a.close()

			restorer := backup.NewRestorer(a.records, a.settings, a.cfg.BackgroundsDir(), a.logger)
			report, err := restorer.RestoreBackup(cmd.Context(), args[0], strategy)
			if err != nil {
				return err
			}

			fmt.Printf("Restored: %d notebooks added, %d updated; %d notes added, %d updated\n",
				report.NotebooksAdded, report.NotebooksUpdated,
				report.NotesAdded, report.NotesUpdated)
			return nil
		},
	}

	cmd.Flags().StringVar(&strategyName, "strategy", string(backup.DefaultStrategy), "conflict strategy: overwrite, merge or skip")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

// confirmOnTerminal prompts when stdin is a TTY. Non-interactive runs
// (scripts, pipes) proceed without a prompt; they can pass --yes explicitly
// for clarity.
func confirmOnTerminal(prompt string) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return true, nil
	}

	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
