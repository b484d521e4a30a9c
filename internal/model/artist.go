package model

// Artist is the top level of a catalog.
type Artist struct {
	// Name identifies the artist. It is never empty after a successful load.
	Name string

	// Albums in document order.
	Albums []*Album
}

// NewArtist returns an artist with no name and no albums.
func NewArtist() *Artist {
	return &Artist{}
}

// Equal reports whether both artists have the same name.
func (a *Artist) Equal(other *Artist) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.Name == other.Name
}

// String returns the artist name.
func (a *Artist) String() string {
	return a.Name
}

// Album returns the first album with the given title.
func (a *Artist) Album(title string) (*Album, bool) {
	for _, album := range a.Albums {
		if album.Title == title {
			return album, true
		}
	}
	return nil, false
}
