package model

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"
)

// PathConfig describes where an album's audio files live on disk.
//
// Example configuration:
//
//	cfg := &PathConfig{
//	    MusicPath:              "/home/user/Music/{artist}/{album}",
//	    PlaylistFileNameFormat: "{album}",
//	    PlaylistFormat:         PlaylistFormatM3U,
//	}
type PathConfig struct {
	// MusicPath is the folder template of an album.
	// Example: "/music/{artist}/{album}"
	MusicPath string

	// PlaylistFileNameFormat is the filename template for playlists (without extension).
	PlaylistFileNameFormat string

	// PlaylistFormat determines the playlist file type and extension.
	PlaylistFormat PlaylistFormat
}

// TrackConfig describes the file name of a track inside its album folder.
//
//	cfg := &TrackConfig{FileNameFormat: "{tracknum} {title}.mp3"}
//	// "01 Speed of Life.mp3"
type TrackConfig struct {
	// FileNameFormat is the template for track filenames, extension included.
	FileNameFormat string
}

// PlaylistFormat represents supported playlist file formats.
type PlaylistFormat int

const (
	// PlaylistFormatM3U creates .m3u playlist files.
	PlaylistFormatM3U PlaylistFormat = iota

	// PlaylistFormatPLS creates .pls playlist files.
	PlaylistFormatPLS
)

// ParsePlaylistFormat maps a settings value ("m3u", "pls") to a PlaylistFormat.
// Unknown values fall back to M3U.
func ParsePlaylistFormat(s string) PlaylistFormat {
	if strings.EqualFold(s, "pls") {
		return PlaylistFormatPLS
	}
	return PlaylistFormatM3U
}

// Extension returns the file extension for the playlist format, including the dot.
func (pf PlaylistFormat) Extension() string {
	if pf == PlaylistFormatPLS {
		return ".pls"
	}
	return ".m3u"
}

// AlbumDir computes the folder holding the album's audio files.
func (cfg *PathConfig) AlbumDir(artist *Artist, album *Album) string {
	path := cfg.MusicPath
	path = strings.ReplaceAll(path, "{artist}", sanitizeFileName(artist.Name))
	path = strings.ReplaceAll(path, "{album}", sanitizeFileName(album.Title))

	// Windows MAX_PATH for folders
	if len(path) >= 248 {
		path = truncateUTF8(path, 247)
	}

	return path
}

// PlaylistPath computes the playlist file path for an album.
func (cfg *PathConfig) PlaylistPath(artist *Artist, album *Album) string {
	dir := cfg.AlbumDir(artist, album)
	fileName := cfg.PlaylistFileNameFormat
	fileName = strings.ReplaceAll(fileName, "{album}", album.Title)
	fileName = strings.ReplaceAll(fileName, "{artist}", artist.Name)
	fileName = sanitizeFileName(fileName)
	if fileName == "" {
		fileName = sanitizeFileName(album.Title)
	}

	ext := cfg.PlaylistFormat.Extension()
	return truncatePath(dir, fileName, ext)
}

// TrackFileName computes the file name of a track, without folder.
func (cfg *TrackConfig) TrackFileName(artist *Artist, album *Album, track *Track) string {
	fileName := cfg.FileNameFormat
	fileName = strings.ReplaceAll(fileName, "{tracknum}", fmt.Sprintf("%02d", track.Number))
	fileName = strings.ReplaceAll(fileName, "{title}", track.Title)
	fileName = strings.ReplaceAll(fileName, "{album}", album.Title)
	fileName = strings.ReplaceAll(fileName, "{artist}", artist.Name)
	return sanitizeFileName(fileName)
}

// TrackPath computes the full path of a track's audio file inside dir.
func (cfg *TrackConfig) TrackPath(dir string, artist *Artist, album *Album, track *Track) string {
	fileName := cfg.TrackFileName(artist, album, track)
	ext := filepath.Ext(fileName)
	return truncatePath(dir, strings.TrimSuffix(fileName, ext), ext)
}

// truncatePath joins dir and name+ext, shortening name when the result would
// exceed the Windows MAX_PATH limit for files.
func truncatePath(dir, name, ext string) string {
	path := filepath.Join(dir, name+ext)
	if len(path) >= 260 {
		maxLen := 259 - len(filepath.Join(dir, ext))
		if maxLen > 0 && maxLen < len(name) {
			path = filepath.Join(dir, truncateUTF8(name, maxLen)+ext)
		}
	}
	return path
}

// truncateUTF8 cuts s to at most n bytes without splitting a rune.
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

var (
	invalidFileChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots     = regexp.MustCompile(`\.+$`)
	whitespaceRuns   = regexp.MustCompile(`\s+`)
)

// sanitizeFileName removes or replaces characters that are invalid in file/folder names.
//
//	sanitizeFileName("Song: Part 1/2") // Returns "Song_ Part 1_2"
func sanitizeFileName(name string) string {
	name = invalidFileChars.ReplaceAllString(name, "_")
	name = trailingDots.ReplaceAllString(name, "")
	name = whitespaceRuns.ReplaceAllString(name, " ")
	return strings.TrimRight(name, " ")
}
