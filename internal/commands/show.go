package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/handiism/lyricsdb/internal/catalog"
	"github.com/spf13/cobra"
)

var showLyrics bool

var showCmd = &cobra.Command{
	Use:   "show [catalog]",
	Short: "Print the artists, albums and tracks of a catalog",
	Long: `Loads a catalog and prints it as a tree. Tracks carrying lyrics are
marked with ♪.

Example:
  lyricsdb show lyrics.xml
  lyricsdb show --lyrics`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVarP(&showLyrics, "lyrics", "l", false, "Print lyrics under each track")

	RootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog(catalogPath(args))
	if err != nil {
		return err
	}
	printTree(cmd.OutOrStdout(), c, showLyrics)
	return nil
}

func printTree(w io.Writer, c *catalog.Catalog, withLyrics bool) {
	if c.Len() == 0 {
		fmt.Fprintln(w, dimStyle.Render("(empty catalog)"))
		return
	}

	for _, artist := range c.Artists {
		fmt.Fprintln(w, headingStyle.Render(artist.Name))
		for _, album := range artist.Albums {
			fmt.Fprintf(w, "  %s (%d tracks)\n", album.Title, album.TrackCount)
			for _, track := range album.Tracks {
				mark := ""
				if track.HasLyrics() {
					mark = " ♪"
				}
				fmt.Fprintf(w, "    %3d. %s%s\n", track.Number, track.Title, mark)
				if withLyrics && track.HasLyrics() {
					for _, line := range strings.Split(track.Lyrics, "\n") {
						fmt.Fprintln(w, dimStyle.Render("         "+line))
					}
				}
			}
		}
	}
}
