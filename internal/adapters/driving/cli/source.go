package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomestack/tome/internal/core/domain"
)

var sourceCmd = &cobra.Command{
	Use:   "source",
	Short: "Manage sources within a notebook",
	Long:  `List, remove, or retitle the sources of a notebook.`,
}

var sourceListCmd = &cobra.Command{
	Use:   "list [notebook-id]",
	Short: "List sources in a notebook",
	Args:  cobra.ExactArgs(1),
	RunE:  runSourceList,
}

var sourceRemoveCmd = &cobra.Command{
	Use:   "remove [notebook-id] [source-id]",
	Short: "Remove a source from a notebook",
	Args:  cobra.ExactArgs(2),
	RunE:  runSourceRemove,
}

var sourceRetitleCmd = &cobra.Command{
	Use:   "retitle [notebook-id] [source-id] [new-title]",
	Short: "Change a source's title",
	Args:  cobra.ExactArgs(3),
	RunE:  runSourceRetitle,
}

var sourceShowCmd = &cobra.Command{
	Use:   "show [notebook-id] [source-id]",
	Short: "Print a source's content",
	Args:  cobra.ExactArgs(2),
	RunE:  runSourceShow,
}

func init() {
	sourceCmd.AddCommand(sourceListCmd)
	sourceCmd.AddCommand(sourceRemoveCmd)
	sourceCmd.AddCommand(sourceRetitleCmd)
	sourceCmd.AddCommand(sourceShowCmd)
	rootCmd.AddCommand(sourceCmd)
}

func runSourceList(cmd *cobra.Command, args []string) error {
	if notebookService == nil {
		return errors.New("notebook service not configured")
	}

	notebook, err := notebookService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get notebook: %w", err)
	}

	if len(notebook.Sources) == 0 {
		cmd.Printf("No sources in notebook %q.\n", notebook.Title)
		return nil
	}

	cmd.Printf("Sources in %q:\n\n", notebook.Title)
	printSourceList(cmd, notebook.Sources)

	cmd.Printf("Total: %d sources\n", len(notebook.Sources))
	return nil
}

func runSourceRemove(cmd *cobra.Command, args []string) error {
	if notebookService == nil {
		return errors.New("notebook service not configured")
	}

	if err := notebookService.RemoveSource(cmd.Context(), args[0], args[1]); err != nil {
		return fmt.Errorf("failed to remove source: %w", err)
	}

	cmd.Printf("Source %s removed.\n", args[1])
	return nil
}

func runSourceRetitle(cmd *cobra.Command, args []string) error {
	if notebookService == nil {
		return errors.New("notebook service not configured")
	}

	if err := notebookService.EditSourceTitle(cmd.Context(), args[0], args[1], args[2]); err != nil {
		return fmt.Errorf("failed to retitle source: %w", err)
	}

	cmd.Printf("Source %s retitled to %q.\n", args[1], args[2])
	return nil
}

func runSourceShow(cmd *cobra.Command, args []string) error {
	if notebookService == nil {
		return errors.New("notebook service not configured")
	}

	notebook, err := notebookService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get notebook: %w", err)
	}

	source := notebook.FindSource(args[1])
	if source == nil {
		return fmt.Errorf("source %s not found in notebook %s", args[1], args[0])
	}

	cmd.Println(source.Content)
	return nil
}

// printSourceList renders sources in the shared list format.
func printSourceList(cmd *cobra.Command, sources []domain.Source) {
	for i := range sources {
		cmd.Printf("  %s\n", sources[i].ID)
		cmd.Printf("    Type:  %s\n", sources[i].Type.Label())
		cmd.Printf("    Title: %s\n", sources[i].Title)
		switch meta := sources[i].Metadata.(type) {
		case domain.WebMetadata:
			cmd.Printf("    URL:   %s\n", meta.OriginalURL)
		case domain.FileMetadata:
			cmd.Printf("    File:  %s (%d bytes)\n", meta.Filename, meta.Size)
		}
		cmd.Println()
	}
}
