package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var strict bool

var checkCmd = &cobra.Command{
	Use:   "check [catalog]",
	Short: "Validate a catalog and report its statistics",
	Long: `Loads a catalog, failing on the first schema violation, then reports
counts and every album whose declared track count differs from the tracks it
holds.

Example:
  lyricsdb check lyrics.xml
  lyricsdb check --strict`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&strict, "strict", false, "Treat track count mismatches as errors")

	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := catalogPath(args)
	c, err := loadCatalog(path)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	stats := c.Stats()
	fmt.Fprintln(w, successStyle.Render("✓ "+path+" is valid"))
	fmt.Fprintf(w, "  artists: %d\n  albums:  %d\n  tracks:  %d (%d with lyrics)\n",
		stats.Artists, stats.Albums, stats.Tracks, stats.WithLyrics)

	for _, m := range stats.Mismatches {
		fmt.Fprintln(w, warningStyle.Render(fmt.Sprintf("! %s / %s declares %d tracks, holds %d",
			m.Artist, m.Album, m.Declared, m.Actual)))
	}

	if strict && len(stats.Mismatches) > 0 {
		return fmt.Errorf("%d album(s) with mismatched track counts", len(stats.Mismatches))
	}
	return nil
}
