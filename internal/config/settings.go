package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/handiism/lyricsdb/internal/audio"
	ioutils "github.com/handiism/lyricsdb/internal/io"
	"github.com/handiism/lyricsdb/internal/model"
	"gopkg.in/yaml.v3"
)

// Settings holds all configuration options.
type Settings struct {
	// Catalog used when a command is given no path.
	CatalogPath string `json:"catalog_path" yaml:"catalog_path"`

	// Music library layout
	MusicPath              string `json:"music_path" yaml:"music_path"`
	FileNameFormat         string `json:"file_name_format" yaml:"file_name_format"`
	PlaylistFileNameFormat string `json:"playlist_file_name_format" yaml:"playlist_file_name_format"`
	PlaylistFormat         string `json:"playlist_format" yaml:"playlist_format"` // m3u, pls
	M3UExtended            bool   `json:"m3u_extended" yaml:"m3u_extended"`

	// Tagging
	MaxConcurrentTagging int    `json:"max_concurrent_tagging" yaml:"max_concurrent_tagging"`
	ModifyTags           bool   `json:"modify_tags" yaml:"modify_tags"`
	OverwriteLyrics      bool   `json:"overwrite_lyrics" yaml:"overwrite_lyrics"`
	LyricsLanguage       string `json:"lyrics_language" yaml:"lyrics_language"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	return &Settings{
		CatalogPath: filepath.Join(homeDir, ".lyricsdb", "lyrics.xml"),

		MusicPath:              filepath.Join(homeDir, "Music", "{artist}", "{album}"),
		FileNameFormat:         "{tracknum} {title}.mp3",
		PlaylistFileNameFormat: "{album}",
		PlaylistFormat:         "m3u",
		M3UExtended:            true,

		MaxConcurrentTagging: 4,
		ModifyTags:           true,
		OverwriteLyrics:      true,
		LyricsLanguage:       "eng",
	}
}

// Load reads settings from a JSON or YAML file. Values absent from the file
// keep their defaults; a missing file yields DefaultSettings.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if isYAML(path) {
		err = yaml.Unmarshal(data, settings)
	} else {
		err = json.Unmarshal(data, settings)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to path, as YAML or JSON depending on the extension.
func (s *Settings) Save(path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(s)
	} else {
		data, err = json.MarshalIndent(s, "", "  ")
	}
	if err != nil {
		return err
	}

	return ioutils.WriteFile(path, data)
}

// Validate rejects settings no command can work with.
func (s *Settings) Validate() error {
	if s.MaxConcurrentTagging < 1 {
		return fmt.Errorf("max_concurrent_tagging must be at least 1, got %d", s.MaxConcurrentTagging)
	}
	if len(s.LyricsLanguage) != 3 {
		return fmt.Errorf("lyrics_language must be a three-letter ISO 639-2 code, got %q", s.LyricsLanguage)
	}
	return nil
}

// ToPathConfig converts settings to PathConfig.
func (s *Settings) ToPathConfig() *model.PathConfig {
	return &model.PathConfig{
		MusicPath:              s.MusicPath,
		PlaylistFileNameFormat: s.PlaylistFileNameFormat,
		PlaylistFormat:         model.ParsePlaylistFormat(s.PlaylistFormat),
	}
}

// ToTrackConfig converts settings to TrackConfig.
func (s *Settings) ToTrackConfig() *model.TrackConfig {
	return &model.TrackConfig{
		FileNameFormat: s.FileNameFormat,
	}
}

// ToTagConfig converts settings to the tagger configuration.
func (s *Settings) ToTagConfig() *audio.TagConfig {
	cfg := audio.DefaultTagConfig()
	cfg.ModifyTags = s.ModifyTags
	cfg.Language = s.LyricsLanguage
	if !s.OverwriteLyrics {
		cfg.Lyrics = audio.TagKeepExisting
	}
	return cfg
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
