package catalog

import (
	"io"
	"os"
	"strconv"

	"github.com/beevik/etree"
	"github.com/handiism/lyricsdb/internal/model"
)

// Load reads and validates the catalog stored at path. The file is closed
// before Load returns, whatever the outcome.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioError(err)
	}
	defer f.Close()

	c, err := Read(f)
	if err != nil {
		return nil, err
	}
	c.path = path
	return c, nil
}

// Read reads all of r and validates it as a catalog document.
func Read(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ioError(err)
	}
	return Parse(data)
}

// Parse validates data as a catalog document and builds the catalog.
//
// Validation stops at the first violation; attributes are checked in
// document order so the first offending one is reported.
func Parse(data []byte) (*Catalog, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.PreserveDuplicateAttrs = true
	if err := doc.ReadFromBytes(data); err != nil {
		// The byte source could not be read as a document.
		return nil, ioError(err)
	}

	root := doc.Root()
	if root == nil {
		return nil, &Error{Kind: KindEmptyDocument}
	}
	if root.FullTag() != tagDatabase {
		return nil, invalidTag(root.FullTag())
	}

	c := New()
	for _, child := range root.ChildElements() {
		artist, err := decodeArtist(child)
		if err != nil {
			return nil, err
		}
		c.Artists = append(c.Artists, artist)
	}
	return c, nil
}

func decodeArtist(e *etree.Element) (*model.Artist, error) {
	tag := e.FullTag()
	if tag != tagArtist {
		return nil, invalidTag(tag)
	}
	if len(e.Attr) == 0 {
		return nil, missingAttribute(attrName, tag)
	}

	artist := model.NewArtist()
	seen := make(map[string]bool, len(e.Attr))
	for _, attr := range e.Attr {
		key := attr.FullKey()
		if seen[key] {
			return nil, invalidAttribute(key, tag)
		}
		seen[key] = true
		if key != attrName || attr.Value == "" {
			err := invalidAttribute(key, tag)
			err.Value = attr.Value
			return nil, err
		}
		artist.Name = attr.Value
	}

	for _, child := range e.ChildElements() {
		album, err := decodeAlbum(child)
		if err != nil {
			return nil, err
		}
		artist.Albums = append(artist.Albums, album)
	}
	return artist, nil
}

func decodeAlbum(e *etree.Element) (*model.Album, error) {
	tag := e.FullTag()
	if tag != tagAlbum {
		return nil, invalidTag(tag)
	}

	album := model.NewAlbum()
	seen := make(map[string]bool, len(e.Attr))
	for _, attr := range e.Attr {
		key := attr.FullKey()
		if seen[key] {
			return nil, invalidAttribute(key, tag)
		}
		seen[key] = true

		switch key {
		case attrTitle:
			album.Title = attr.Value
		case attrTracks:
			n, err := parseByte(key, tag, attr.Value)
			if err != nil {
				return nil, err
			}
			album.TrackCount = n
		default:
			return nil, invalidAttribute(key, tag)
		}
	}

	tracks := make([]*model.Track, 0, len(e.Child))
	for _, child := range e.ChildElements() {
		track, err := decodeTrack(child)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, track)
	}
	model.SortTracks(tracks)
	album.Tracks = tracks
	return album, nil
}

func decodeTrack(e *etree.Element) (*model.Track, error) {
	tag := e.FullTag()
	if tag != tagTrack {
		return nil, invalidTag(tag)
	}

	track := model.NewTrack()
	seen := make(map[string]bool, len(e.Attr))
	for _, attr := range e.Attr {
		key := attr.FullKey()
		if seen[key] {
			return nil, invalidAttribute(key, tag)
		}
		seen[key] = true

		switch key {
		case attrName:
			track.Title = attr.Value
		case attrNum:
			n, err := parseByte(key, tag, attr.Value)
			if err != nil {
				return nil, err
			}
			track.Number = n
		default:
			return nil, invalidAttribute(key, tag)
		}
	}

	// Tracks are leaves.
	if children := e.ChildElements(); len(children) > 0 {
		return nil, invalidTag(children[0].FullTag())
	}

	track.Lyrics = e.Text()
	return track, nil
}

// parseByte converts a base-10 attribute value in 0..255.
func parseByte(attr, tag, value string) (uint8, error) {
	n, err := strconv.ParseUint(value, 10, 8)
	if err != nil {
		return 0, &Error{
			Kind:      KindInvalidAttribute,
			Tag:       tag,
			Attribute: attr,
			Value:     value,
			Err:       err,
		}
	}
	return uint8(n), nil
}
