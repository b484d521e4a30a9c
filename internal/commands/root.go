package commands

import (
	"fmt"

	"github.com/handiism/lyricsdb/internal/config"
	"github.com/spf13/cobra"
)

// Version is the lyricsdb release, overridable at link time.
var Version = "0.1.0"

var (
	configPath  string
	catalogFlag string
	verbose     bool

	settings *config.Settings
)

// RootCmd is the root command for lyricsdb
var RootCmd = &cobra.Command{
	Use:   "lyricsdb",
	Short: "lyricsdb - XML lyrics catalog tool",
	Long: `lyricsdb loads, validates and rewrites XML lyrics catalogs
(database > artist > album > track) and applies them to a music library.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configPath == "" {
			settings = config.DefaultSettings()
			return nil
		}
		s, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		settings = s
		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a JSON or YAML settings file")
	RootCmd.PersistentFlags().StringVarP(&catalogFlag, "catalog", "f", "", "Catalog file (overrides catalog_path from settings)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show verbose output")

	RootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lyricsdb v%s\n", Version)
		},
	})
}
