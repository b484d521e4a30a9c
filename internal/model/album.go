package model

// Album is a release of an artist.
//
// TrackCount is the count declared by the source document. It is not derived
// from Tracks and may differ from len(Tracks); serializing an album writes the
// declared value back unchanged.
type Album struct {
	// Title identifies the album.
	Title string

	// TrackCount is the declared number of tracks.
	TrackCount uint8

	// Tracks ordered by track number.
	Tracks []*Track
}

// NewAlbum returns an album with no title and no tracks.
func NewAlbum() *Album {
	return &Album{}
}

// Equal reports whether both albums have the same title.
func (a *Album) Equal(other *Album) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.Title == other.Title
}

// Track returns the first track with the given title.
func (a *Album) Track(title string) (*Track, bool) {
	for _, track := range a.Tracks {
		if track.Title == title {
			return track, true
		}
	}
	return nil, false
}

// CountMismatch reports whether the declared track count differs from the
// number of tracks actually present.
func (a *Album) CountMismatch() bool {
	return int(a.TrackCount) != len(a.Tracks)
}
