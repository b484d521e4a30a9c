package commands

import (
	"github.com/handiism/lyricsdb/internal/catalog"
	ioutils "github.com/handiism/lyricsdb/internal/io"
	"github.com/handiism/lyricsdb/internal/tui"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse [catalog]",
	Short: "Browse and edit a catalog interactively",
	Long: `Opens the catalog in a terminal browser. A catalog that does not exist
yet starts empty and is created on the first save.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func init() {
	RootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	c, err := openOrCreate(catalogPath(args))
	if err != nil {
		return err
	}
	return tui.Run(c)
}

func openOrCreate(path string) (*catalog.Catalog, error) {
	if !ioutils.FileExists(path) {
		c := catalog.New()
		c.SetPath(path)
		return c, nil
	}
	return loadCatalog(path)
}
