package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lowkeylabs/applenotes-mcp/internal/ui"
)

var foldersCmd = &cobra.Command{
	Use:   "folders",
	Short: "List folders",
	Long:  "List the folder names known to Apple Notes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		folders, err := svc.Folders(cmd.Context())
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(2)
		}

		if jsonOutput {
			return ui.FormatJSON(os.Stdout, folders)
		}
		ui.FormatFolders(cmd.OutOrStdout(), folders)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(foldersCmd)
}
