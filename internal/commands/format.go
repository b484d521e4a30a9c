package commands

import (
	"fmt"

	ioutils "github.com/handiism/lyricsdb/internal/io"
	"github.com/spf13/cobra"
)

var (
	outputPath string
	backup     bool
)

var formatCmd = &cobra.Command{
	Use:   "format [catalog]",
	Short: "Rewrite a catalog in canonical layout",
	Long: `Loads a catalog and writes it back with tracks in number order and
consistent indentation. Lyrics are kept verbatim.

Example:
  lyricsdb format lyrics.xml --backup
  lyricsdb format lyrics.xml -o clean.xml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFormat,
}

func init() {
	formatCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write to this file instead of rewriting in place")
	formatCmd.Flags().BoolVarP(&backup, "backup", "b", false, "Copy an existing destination to <file>.bak first")

	RootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	path := catalogPath(args)
	c, err := loadCatalog(path)
	if err != nil {
		return err
	}

	dest := path
	if outputPath != "" {
		dest = outputPath
	}

	w := cmd.OutOrStdout()
	if backup && ioutils.FileExists(dest) {
		bak, err := ioutils.BackupFile(dest)
		if err != nil {
			return fmt.Errorf("backing up %s: %w", dest, err)
		}
		if verbose {
			fmt.Fprintln(w, dimStyle.Render("  backup: "+bak))
		}
	}

	if err := c.Save(dest); err != nil {
		return fmt.Errorf("writing %s: %w", dest, err)
	}

	fmt.Fprintln(w, successStyle.Render("✓ formatted "+dest))
	return nil
}
