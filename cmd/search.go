package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lowkeylabs/applenotes-mcp/internal/notes"
	"github.com/lowkeylabs/applenotes-mcp/internal/ui"
)

var (
	searchLimit  int
	searchFolder string
	searchIn     string
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search notes",
	Long: `Search notes by text. A query starting with "#" matches notes carrying
that hashtag instead.`,
	Example: `  applenotes-mcp search groceries
  applenotes-mcp search "#work"
  applenotes-mcp search meeting --in name --folder Work`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result := svc.SearchNotes(cmd.Context(), args[0], searchLimit, searchIn, searchFolder)

		if jsonOutput {
			return ui.FormatJSON(os.Stdout, result)
		}

		if result.Error != "" {
			fmt.Fprintln(os.Stderr, "Error:", result.Error)
			os.Exit(2)
		}
		if len(result.Notes) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			return nil
		}
		ui.FormatRefList(cmd.OutOrStdout(), result.Notes)
		return nil
	},
}

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", notes.DefaultSearch, "maximum number of results")
	searchCmd.Flags().StringVar(&searchFolder, "folder", "", "restrict to a folder")
	searchCmd.Flags().StringVar(&searchIn, "in", "body", "where to match: body or name")
	rootCmd.AddCommand(searchCmd)
}
