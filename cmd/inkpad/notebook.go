package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"inkpad/internal/models"
	"inkpad/internal/notes"
)

func newNotebookCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notebook",
		Short: "Manage notebooks",
	}

	cmd.AddCommand(
		newNotebookCreateCmd(a),
		newNotebookListCmd(a),
		newNotebookRenameCmd(a),
		newNotebookBackgroundCmd(a),
		newNotebookDeleteCmd(a),
	)

	return cmd
}

func (a *app) notesService() *notes.Service {
	return notes.NewService(a.records, a.cfg.BackgroundsDir(), a.logger)
}

func newNotebookCreateCmd(a *app) *cobra.Command {
	var color, asset string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a notebook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(cmd.Context()); err != nil {
				return err
			}
			defer a.close()

			bg := models.ColorBackground("#ffffff")
			switch {
			case asset != "":
				bg = models.AssetBackground(asset)
			case color != "":
				bg = models.ColorBackground(color)
			}

			nb, err := a.notesService().CreateNotebook(cmd.Context(), args[0], bg)
			if err != nil {
				return err
			}

			fmt.Printf("Created notebook %d: %s\n", nb.ID, nb.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "", "hex background color, e.g. #1e88e5")
	cmd.Flags().StringVar(&asset, "asset", "", "bundled background asset id")

	return cmd
}

func newNotebookListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List notebooks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(cmd.Context()); err != nil {
				return err
			}
			defer a.close()

			notebooks, err := a.notesService().ListNotebooks(cmd.Context())
			if err != nil {
				return err
			}

			if len(notebooks) == 0 {
				fmt.Println("No notebooks.")
				return nil
			}

			for _, nb := range notebooks {
				fmt.Printf("%d\t%s\t%s\n", nb.ID, nb.Name, nb.Background)
			}
			return nil
		},
	}
}

func newNotebookRenameCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a notebook",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := a.open(cmd.Context()); err != nil {
				return err
			}
			defer a.close()

			return a.notesService().RenameNotebook(cmd.Context(), id, args[1])
		},
	}
}

func newNotebookBackgroundCmd(a *app) *cobra.Command {
	var color, asset, image string

	cmd := &cobra.Command{
		Use:   "background <id>",
		Short: "Set a notebook background (color, asset or image file)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := a.open(cmd.Context()); err != nil {
				return err
			}
			defer a.close()

			svc := a.notesService()
			switch {
			case color != "":
				return svc.SetNotebookColor(cmd.Context(), id, color)
			case asset != "":
				return svc.SetNotebookAsset(cmd.Context(), id, asset)
			case image != "":
				return svc.SetNotebookImage(cmd.Context(), id, image)
			default:
				return fmt.Errorf("one of --color, --asset or --image is required")
			}
		},
	}

	cmd.Flags().StringVar(&color, "color", "", "hex background color")
	cmd.Flags().StringVar(&asset, "asset", "", "bundled background asset id")
	cmd.Flags().StringVar(&image, "image", "", "path to an image file to copy in")
	cmd.MarkFlagsMutuallyExclusive("color", "asset", "image")

	return cmd
}

func newNotebookDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a notebook (its notes become uncategorized)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := a.open(cmd.Context()); err != nil {
				return err
			}
			defer a.close()

			return a.notesService().DeleteNotebook(cmd.Context(), id)
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
