package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lowkeylabs/applenotes-mcp/internal/ui"
)

var createFolder string

var createCmd = &cobra.Command{
	Use:   "create <title> [body...]",
	Short: "Create a note",
	Long: `Create a note in Apple Notes. The body is Markdown.

If body arguments are provided, they are used directly.
If "-" is provided as the body, it is read from stdin.`,
	Example: `  applenotes-mcp create "Groceries" "- milk\n- eggs"
  echo "# Agenda" | applenotes-mcp create "Meeting Notes" -
  applenotes-mcp create "Plan" --folder Work`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := args[0]

		var body string
		switch {
		case len(args) == 2 && args[1] == "-":
			// Read from stdin
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error reading stdin:", err)
				os.Exit(2)
			}
			body = string(data)

		case len(args) > 1:
			// Inline body
			body = strings.Join(args[1:], " ")
		}

		result := svc.CreateNote(cmd.Context(), title, body, createFolder)

		if jsonOutput {
			return ui.FormatJSON(os.Stdout, result)
		}

		if !result.Success {
			fmt.Fprintln(os.Stderr, "Error:", result.Error)
			os.Exit(1)
		}
		ui.FormatCreated(cmd.OutOrStdout(), *result.Note)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createFolder, "folder", "", "folder to create the note in")
	rootCmd.AddCommand(createCmd)
}
