// Package config provides configuration management for lyricsdb.
//
// This package handles:
//   - Loading and saving settings from JSON or YAML files
//   - Default configuration values
//   - Conversion to the model and audio configuration types
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Music under ~/Music/{artist}/{album}
//	// Files named "{tracknum} {title}.mp3"
//	// Four files tagged concurrently
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/lyricsdb.yaml")
//	// A missing file yields the defaults.
//
// Files ending in .yaml or .yml are decoded as YAML; anything else as JSON.
package config
