package commands

import (
	"fmt"

	"github.com/handiism/lyricsdb/internal/audio"
	ioutils "github.com/handiism/lyricsdb/internal/io"
	"github.com/handiism/lyricsdb/internal/model"
	"github.com/spf13/cobra"
)

var (
	playlistFormat string
	dryRun         bool
)

var playlistCmd = &cobra.Command{
	Use:   "playlist [catalog]",
	Short: "Write an M3U or PLS playlist into every album folder",
	Long: `Writes one playlist per album listing its tracks in number order.
Albums without tracks are skipped.

Example:
  lyricsdb playlist lyrics.xml --format pls
  lyricsdb playlist --music "/srv/music/{artist}/{album}" --dry-run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlaylist,
}

func init() {
	addMusicFlag(playlistCmd)
	playlistCmd.Flags().StringVar(&playlistFormat, "format", "", "Playlist format: m3u or pls (default from settings)")
	playlistCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Print playlist paths without writing")

	RootCmd.AddCommand(playlistCmd)
}

func runPlaylist(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog(catalogPath(args))
	if err != nil {
		return err
	}

	applyMusicFlag()
	if playlistFormat != "" {
		settings.PlaylistFormat = playlistFormat
	}

	paths := settings.ToPathConfig()
	creator := audio.NewPlaylistCreator(paths.PlaylistFormat, settings.M3UExtended, settings.ToTrackConfig())

	w := cmd.OutOrStdout()
	written := 0
	for _, artist := range c.Artists {
		for _, album := range artist.Albums {
			if len(album.Tracks) == 0 {
				continue
			}
			path := paths.PlaylistPath(artist, album)
			if dryRun {
				fmt.Fprintln(w, path)
				continue
			}
			if err := writePlaylist(creator, path, artist, album); err != nil {
				return err
			}
			written++
			if verbose {
				fmt.Fprintln(w, dimStyle.Render("  "+path))
			}
		}
	}

	if !dryRun {
		fmt.Fprintln(w, successStyle.Render(fmt.Sprintf("✓ wrote %d playlist(s)", written)))
	}
	return nil
}

func writePlaylist(creator *audio.PlaylistCreator, path string, artist *model.Artist, album *model.Album) error {
	content := creator.CreatePlaylist(artist, album)
	if err := ioutils.WriteFile(path, []byte(content)); err != nil {
		return fmt.Errorf("writing playlist %s: %w", path, err)
	}
	return nil
}
