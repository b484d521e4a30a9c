package catalog

import "github.com/handiism/lyricsdb/internal/model"

// Catalog is an ordered collection of artists loaded from, or saved to, a
// lyrics database document.
//
// A Catalog is owned by one caller at a time; it is not safe for concurrent
// mutation.
type Catalog struct {
	// Artists in document order.
	Artists []*model.Artist

	path string
}

// New returns an empty catalog with no provenance.
func New() *Catalog {
	return &Catalog{}
}

// Path returns the file the catalog was loaded from or last saved to.
// It is empty for catalogs that were never backed by a file.
func (c *Catalog) Path() string {
	return c.path
}

// SetPath records the file later Save calls default to.
func (c *Catalog) SetPath(path string) {
	c.path = path
}

// Clear drops every artist. The recorded path is kept.
func (c *Catalog) Clear() {
	c.Artists = nil
}

// Len returns the number of artists.
func (c *Catalog) Len() int {
	return len(c.Artists)
}

// Artist returns the first artist with the given name.
func (c *Catalog) Artist(name string) (*model.Artist, bool) {
	for _, artist := range c.Artists {
		if artist.Name == name {
			return artist, true
		}
	}
	return nil, false
}

// AddArtist appends a new artist with the given name and returns it.
func (c *Catalog) AddArtist(name string) *model.Artist {
	artist := model.NewArtist()
	artist.Name = name
	c.Artists = append(c.Artists, artist)
	return artist
}

// Find resolves an artist, album and track by name. Empty album or track
// names stop the lookup at the previous level.
func (c *Catalog) Find(artistName, albumTitle, trackTitle string) (*model.Artist, *model.Album, *model.Track, bool) {
	artist, ok := c.Artist(artistName)
	if !ok {
		return nil, nil, nil, false
	}
	if albumTitle == "" {
		return artist, nil, nil, true
	}
	album, ok := artist.Album(albumTitle)
	if !ok {
		return artist, nil, nil, false
	}
	if trackTitle == "" {
		return artist, album, nil, true
	}
	track, ok := album.Track(trackTitle)
	return artist, album, track, ok
}

// Mismatch names an album whose declared track count differs from the
// number of tracks it holds.
type Mismatch struct {
	Artist   string
	Album    string
	Declared uint8
	Actual   int
}

// Stats summarizes a catalog.
type Stats struct {
	Artists    int
	Albums     int
	Tracks     int
	WithLyrics int
	Mismatches []Mismatch
}

// Stats counts the catalog's entities and collects declared-count mismatches
// in document order.
func (c *Catalog) Stats() Stats {
	var s Stats
	s.Artists = len(c.Artists)
	for _, artist := range c.Artists {
		s.Albums += len(artist.Albums)
		for _, album := range artist.Albums {
			s.Tracks += len(album.Tracks)
			for _, track := range album.Tracks {
				if track.HasLyrics() {
					s.WithLyrics++
				}
			}
			if album.CountMismatch() {
				s.Mismatches = append(s.Mismatches, Mismatch{
					Artist:   artist.Name,
					Album:    album.Title,
					Declared: album.TrackCount,
					Actual:   len(album.Tracks),
				})
			}
		}
	}
	return s
}
