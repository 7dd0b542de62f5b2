package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var filterCmd = &cobra.Command{
	Use:   "filter [notebook-id] [query]",
	Short: "Filter a notebook's sources",
	Long: `Shows the sources whose title or content contains the query,
case-insensitively. An empty query shows all sources.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runFilter,
}

func init() {
	rootCmd.AddCommand(filterCmd)
}

func runFilter(cmd *cobra.Command, args []string) error {
	if notebookService == nil {
		return errors.New("notebook service not configured")
	}

	query := ""
	if len(args) == 2 {
		query = args[1]
	}

	sources, err := notebookService.FilterSources(cmd.Context(), args[0], query)
	if err != nil {
		return fmt.Errorf("failed to filter sources: %w", err)
	}

	if len(sources) == 0 {
		cmd.Println("No matching sources.")
		return nil
	}

	cmd.Println("Matching sources:")
	cmd.Println()
	printSourceList(cmd, sources)

	cmd.Printf("Total: %d sources\n", len(sources))
	return nil
}
