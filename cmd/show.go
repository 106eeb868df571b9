package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lowkeylabs/applenotes-mcp/internal/notes"
	"github.com/lowkeylabs/applenotes-mcp/internal/ui"
)

var showCmd = &cobra.Command{
	Use:   "show [id...]",
	Short: "Show notes",
	Long: `Display full note content and metadata for one or more note IDs.
With no ID and an interactive terminal, a picker over recent notes opens.`,
	Example: `  applenotes-mcp show 2436
  applenotes-mcp show 2436 2437 --json
  applenotes-mcp show`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := args
		if len(ids) == 0 {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("no note ID given")
			}
			refs := svc.ListNotes(cmd.Context(), notes.DefaultList, "")
			picked, err := ui.PickNote(refs)
			if err != nil {
				return err
			}
			if picked == nil {
				return nil
			}
			ids = []string{picked.ID}
		}

		result := svc.GetNotes(cmd.Context(), ids)

		if jsonOutput {
			return ui.FormatJSON(os.Stdout, result)
		}

		for i, n := range result.Notes {
			if i > 0 {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			ui.FormatNoteFull(cmd.OutOrStdout(), n)
		}
		for _, id := range result.NotFound {
			fmt.Fprintf(os.Stderr, "Error: note %s not found\n", id)
		}
		if len(result.NotFound) > 0 {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
