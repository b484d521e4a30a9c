package audio

import (
	"fmt"
	"strings"

	"github.com/handiism/lyricsdb/internal/model"
)

// PlaylistCreator renders the playlist of one album.
//
// Track entries are file names relative to the album folder, so the playlist
// is meant to be written next to the tracks:
//
//	creator := NewPlaylistCreator(model.PlaylistFormatM3U, true, trackCfg)
//	content := creator.CreatePlaylist(artist, album)
//
//	// #EXTM3U
//	// #EXTINF:-1,Bowie - Speed of Life
//	// 01 Speed of Life.mp3
type PlaylistCreator struct {
	format   model.PlaylistFormat
	extended bool // For M3U: include EXTINF lines
	tracks   *model.TrackConfig
}

// NewPlaylistCreator creates a new PlaylistCreator. extended only affects M3U.
func NewPlaylistCreator(format model.PlaylistFormat, extended bool, tracks *model.TrackConfig) *PlaylistCreator {
	return &PlaylistCreator{
		format:   format,
		extended: extended,
		tracks:   tracks,
	}
}

// CreatePlaylist generates playlist content for an album, in track order.
func (p *PlaylistCreator) CreatePlaylist(artist *model.Artist, album *model.Album) string {
	if p.format == model.PlaylistFormatPLS {
		return p.createPLS(artist, album)
	}
	return p.createM3U(artist, album)
}

// createM3U generates an M3U playlist. The catalog carries no durations, so
// extended entries use -1 (unknown).
func (p *PlaylistCreator) createM3U(artist *model.Artist, album *model.Album) string {
	var sb strings.Builder

	if p.extended {
		sb.WriteString("#EXTM3U\n")
	}

	for _, track := range album.Tracks {
		if p.extended {
			fmt.Fprintf(&sb, "#EXTINF:-1,%s - %s\n", artist.Name, track.Title)
		}
		sb.WriteString(p.tracks.TrackFileName(artist, album, track) + "\n")
	}

	return sb.String()
}

// createPLS generates a PLS playlist:
//
//	[playlist]
//	File1=01 Speed of Life.mp3
//	Title1=Speed of Life
//	Length1=-1
//	NumberOfEntries=1
//	Version=2
func (p *PlaylistCreator) createPLS(artist *model.Artist, album *model.Album) string {
	var sb strings.Builder

	sb.WriteString("[playlist]\n")

	for i, track := range album.Tracks {
		idx := i + 1
		fmt.Fprintf(&sb, "File%d=%s\n", idx, p.tracks.TrackFileName(artist, album, track))
		fmt.Fprintf(&sb, "Title%d=%s\n", idx, track.Title)
		fmt.Fprintf(&sb, "Length%d=-1\n", idx)
	}

	fmt.Fprintf(&sb, "NumberOfEntries=%d\n", len(album.Tracks))
	sb.WriteString("Version=2\n")

	return sb.String()
}
