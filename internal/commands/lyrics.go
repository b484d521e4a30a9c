package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var lyricsCmd = &cobra.Command{
	Use:   "lyrics <artist> <album> <track>",
	Short: "Print the lyrics of one track",
	Example: `  lyricsdb lyrics "David Bowie" Low "Breaking Glass"
  lyricsdb -f lyrics.xml lyrics Eno "Another Green World" "St. Elmo's Fire"`,
	Args: cobra.ExactArgs(3),
	RunE: runLyrics,
}

func init() {
	RootCmd.AddCommand(lyricsCmd)
}

func runLyrics(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog(catalogPath(nil))
	if err != nil {
		return err
	}

	artist, album, track, ok := c.Find(args[0], args[1], args[2])
	switch {
	case artist == nil:
		return fmt.Errorf("artist %q not found", args[0])
	case album == nil:
		return fmt.Errorf("album %q not found for %s", args[1], artist.Name)
	case !ok:
		return fmt.Errorf("track %q not found on %s", args[2], album.Title)
	}

	if !track.HasLyrics() {
		fmt.Fprintln(cmd.ErrOrStderr(), dimStyle.Render("(no lyrics)"))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), track.Lyrics)
	return nil
}
