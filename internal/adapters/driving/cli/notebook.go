package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var notebookCmd = &cobra.Command{
	Use:   "notebook",
	Short: "Manage notebooks",
	Long:  `Create, list, and rename notebooks.`,
}

var notebookNewCmd = &cobra.Command{
	Use:   "new [title]",
	Short: "Create a new notebook",
	Args:  cobra.ExactArgs(1),
	RunE:  runNotebookNew,
}

var notebookListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notebooks",
	Args:  cobra.NoArgs,
	RunE:  runNotebookList,
}

var notebookRenameCmd = &cobra.Command{
	Use:   "rename [notebook-id] [new-title]",
	Short: "Rename a notebook",
	Args:  cobra.ExactArgs(2),
	RunE:  runNotebookRename,
}

func init() {
	notebookCmd.AddCommand(notebookNewCmd)
	notebookCmd.AddCommand(notebookListCmd)
	notebookCmd.AddCommand(notebookRenameCmd)
	rootCmd.AddCommand(notebookCmd)
}

func runNotebookNew(cmd *cobra.Command, args []string) error {
	if notebookService == nil {
		return errors.New("notebook service not configured")
	}

	notebook, err := notebookService.Create(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to create notebook: %w", err)
	}

	cmd.Printf("Created notebook %s\n", notebook.ID)
	cmd.Printf("  Title: %s\n", notebook.Title)
	return nil
}

func runNotebookList(cmd *cobra.Command, _ []string) error {
	if notebookService == nil {
		return errors.New("notebook service not configured")
	}

	notebooks, err := notebookService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list notebooks: %w", err)
	}

	if len(notebooks) == 0 {
		cmd.Println("No notebooks yet. Create one with: tome notebook new <title>")
		return nil
	}

	cmd.Println("Notebooks:")
	cmd.Println()
	for i := range notebooks {
		cmd.Printf("  %s\n", notebooks[i].ID)
		cmd.Printf("    Title:   %s\n", notebooks[i].Title)
		cmd.Printf("    Sources: %d\n", len(notebooks[i].Sources))
		cmd.Printf("    Updated: %s\n", notebooks[i].UpdatedAt.Format("2006-01-02 15:04:05"))
		cmd.Println()
	}

	cmd.Printf("Total: %d notebooks\n", len(notebooks))
	return nil
}

func runNotebookRename(cmd *cobra.Command, args []string) error {
	if notebookService == nil {
		return errors.New("notebook service not configured")
	}

	notebook, err := notebookService.Rename(cmd.Context(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("failed to rename notebook: %w", err)
	}

	cmd.Printf("Notebook %s renamed to %q.\n", notebook.ID, notebook.Title)
	return nil
}
