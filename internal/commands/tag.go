package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/handiism/lyricsdb/internal/tagging"
	"github.com/spf13/cobra"
)

var (
	musicPath  string
	workers    int
	keepLyrics bool
)

var tagCmd = &cobra.Command{
	Use:   "tag [catalog]",
	Short: "Embed catalog lyrics into the MP3 files of a music library",
	Long: `Walks the catalog and writes each track's lyrics, title, number, album
and artist into the ID3 tag of its audio file. Files are located with the
music_path and file_name_format settings; missing files are reported and
skipped.

Example:
  lyricsdb tag lyrics.xml --music "~/Music/{artist}/{album}"
  lyricsdb tag -w 8 --keep-lyrics -v`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTag,
}

func init() {
	addMusicFlag(tagCmd)
	tagCmd.Flags().IntVarP(&workers, "workers", "w", 0, "Concurrent files to tag (default from settings)")
	tagCmd.Flags().BoolVar(&keepLyrics, "keep-lyrics", false, "Leave lyrics already present in a file untouched")

	RootCmd.AddCommand(tagCmd)
}

func addMusicFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&musicPath, "music", "m", "", "Album folder template using {artist} and {album}")
}

func applyMusicFlag() {
	if musicPath != "" {
		settings.MusicPath = musicPath
	}
}

func runTag(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog(catalogPath(args))
	if err != nil {
		return err
	}

	applyMusicFlag()
	if workers > 0 {
		settings.MaxConcurrentTagging = workers
	}
	if keepLyrics {
		settings.OverwriteLyrics = false
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			fmt.Fprintln(cmd.ErrOrStderr(), "\nInterrupted, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	manager := tagging.NewManager(settings, progressPrinter(cmd.OutOrStdout()))
	summary, err := manager.TagCatalog(ctx, c)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("tagging cancelled after %d track(s)", summary.Total())
		}
		return err
	}

	if summary.Failed > 0 {
		return fmt.Errorf("%d track(s) could not be tagged", summary.Failed)
	}
	return nil
}
