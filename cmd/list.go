package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lowkeylabs/applenotes-mcp/internal/notes"
	"github.com/lowkeylabs/applenotes-mcp/internal/ui"
)

var (
	listLimit  int
	listFolder string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes",
	Long:  "List recent notes as title/ID pairs, most recently modified first.",
	Example: `  applenotes-mcp list
  applenotes-mcp list --folder Work --limit 20
  applenotes-mcp list --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		refs := svc.ListNotes(cmd.Context(), listLimit, listFolder)

		if jsonOutput {
			return ui.FormatJSON(os.Stdout, refs)
		}
		ui.FormatRefList(cmd.OutOrStdout(), refs)
		return nil
	},
}

func init() {
	listCmd.Flags().IntVar(&listLimit, "limit", notes.DefaultList, "maximum number of notes")
	listCmd.Flags().StringVar(&listFolder, "folder", "", "restrict to a folder")
	rootCmd.AddCommand(listCmd)
}
