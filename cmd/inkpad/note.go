package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNoteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage notes",
	}

	cmd.AddCommand(
		newNoteCreateCmd(a),
		newNoteListCmd(a),
		newNoteShowCmd(a),
		newNoteEditCmd(a),
		newNoteMoveCmd(a),
		newNoteDeleteCmd(a),
	)

	return cmd
}

func newNoteCreateCmd(a *app) *cobra.Command {
	var content string
	var notebookID int64

	cmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Create a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(cmd.Context()); err != nil {
				return err
			}
			defer a.close()

			var nbRef *int64
			if cmd.Flags().Changed("notebook") {
				nbRef = &notebookID
			}

			n, err := a.notesService().CreateNote(cmd.Context(), args[0], content, nbRef)
			if err != nil {
				return err
			}

			fmt.Printf("Created note %d: %s\n", n.ID, n.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "note content")
	cmd.Flags().Int64Var(&notebookID, "notebook", 0, "notebook id to file the note under")

	return cmd
}

func newNoteListCmd(a *app) *cobra.Command {
	var notebookID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(cmd.Context()); err != nil {
				return err
			}
			defer a.close()

			var nbRef *int64
			if cmd.Flags().Changed("notebook") {
				nbRef = &notebookID
			}

			list, err := a.notesService().ListNotes(cmd.Context(), nbRef)
			if err != nil {
				return err
			}

			if len(list) == 0 {
				fmt.Println("No notes.")
				return nil
			}

			for _, n := range list {
				where := "-"
				if n.NotebookID != nil {
					where = fmt.Sprintf("%d", *n.NotebookID)
				}
				fmt.Printf("%d\t%s\t(notebook %s)\n", n.ID, n.Title, where)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&notebookID, "notebook", 0, "only notes of this notebook")

	return cmd
}

func newNoteShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a note",
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

			n, err := a.notesService().GetNote(cmd.Context(), id)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n\n%s\n", n.Title, n.Content)
			return nil
		},
	}
}

func newNoteEditCmd(a *app) *cobra.Command {
	var title, content string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a note's title and content",
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
			n, err := svc.GetNote(cmd.Context(), id)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("title") {
				title = n.Title
			}
			if !cmd.Flags().Changed("content") {
				content = n.Content
			}

			return svc.EditNote(cmd.Context(), id, title, content)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&content, "content", "", "new content")

	return cmd
}

func newNoteMoveCmd(a *app) *cobra.Command {
	var notebookID int64
	var uncategorize bool

	cmd := &cobra.Command{
		Use:   "move <id>",
		Short: "Move a note into a notebook, or out with --uncategorize",
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

			var nbRef *int64
			if !uncategorize {
				if !cmd.Flags().Changed("notebook") {
					return fmt.Errorf("either --notebook or --uncategorize is required")
				}
				nbRef = &notebookID
			}

			return a.notesService().MoveNote(cmd.Context(), id, nbRef)
		},
	}

	cmd.Flags().Int64Var(&notebookID, "notebook", 0, "target notebook id")
	cmd.Flags().BoolVar(&uncategorize, "uncategorize", false, "remove the note from its notebook")
	cmd.MarkFlagsMutuallyExclusive("notebook", "uncategorize")

	return cmd
}

func newNoteDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a note",
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

			return a.notesService().DeleteNote(cmd.Context(), id)
		},
	}
}
