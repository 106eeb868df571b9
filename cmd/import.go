package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/spf13/cobra"
)

var importFolder string

// importFrontMatter is the optional YAML header of an imported Markdown file.
type importFrontMatter struct {
	Title  string `yaml:"title"`
	Folder string `yaml:"folder"`
}

var importCmd = &cobra.Command{
	Use:   "import <dir>",
	Short: "Import Markdown files as notes",
	Long: `Import every .md file under a directory into Apple Notes.

A YAML front-matter block may set the note title and target folder;
otherwise the filename (without extension) becomes the title.`,
	Example: `  applenotes-mcp import ~/exported-notes
  applenotes-mcp import ./vault --folder Imported`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := args[0]

		var imported, failed int
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".md") {
				return nil
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			var fm importFrontMatter
			body, err := frontmatter.Parse(strings.NewReader(string(data)), &fm)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Skipping %s: bad front-matter: %v\n", path, err)
				failed++
				return nil
			}

			title := fm.Title
			if title == "" {
				title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			}
			folder := fm.Folder
			if importFolder != "" {
				folder = importFolder
			}

			result := svc.CreateNote(cmd.Context(), title, string(body), folder)
			if !result.Success {
				fmt.Fprintf(os.Stderr, "Failed %s: %s\n", path, result.Error)
				failed++
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s as %q (%s)\n", path, result.Note.Name, result.Note.ID)
			imported++
			return nil
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d notes, %d failed\n", imported, failed)
		if failed > 0 {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importFolder, "folder", "", "override target folder for all files")
	rootCmd.AddCommand(importCmd)
}
