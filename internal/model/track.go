package model

import "sort"

// Track is a single song of an album.
type Track struct {
	// Title identifies the track.
	Title string

	// Lyrics is the verbatim text of the song. Empty when none is known.
	Lyrics string

	// Number orders tracks within an album. Duplicates and gaps are allowed.
	Number uint8
}

// NewTrack returns a track with no title, no lyrics and number 0.
func NewTrack() *Track {
	return &Track{}
}

// Equal reports whether both tracks have the same title.
func (t *Track) Equal(other *Track) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.Title == other.Title
}

// HasLyrics reports whether the track carries any lyrics text.
func (t *Track) HasLyrics() bool {
	return t.Lyrics != ""
}

// SortTracks orders tracks ascending by Number. Tracks sharing a number keep
// their relative order.
func SortTracks(tracks []*Track) {
	sort.SliceStable(tracks, func(i, j int) bool {
		return tracks[i].Number < tracks[j].Number
	})
}
