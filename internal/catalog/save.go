package catalog

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	ioutils "github.com/handiism/lyricsdb/internal/io"
)

const indentUnit = "  "

// Save writes the catalog to path, or to the catalog's own path when path is
// empty. A successful save records path as the catalog's provenance.
func (c *Catalog) Save(path string) error {
	if path == "" {
		path = c.path
	}
	if path == "" {
		return ioError(errors.New("no destination path"))
	}

	data, err := c.document().WriteToBytes()
	if err != nil {
		return ioError(err)
	}
	if err := ioutils.WriteFile(path, data); err != nil {
		return ioError(err)
	}

	c.path = path
	return nil
}

// WriteTo writes the catalog document to w.
func (c *Catalog) WriteTo(w io.Writer) (int64, error) {
	n, err := c.document().WriteTo(w)
	if err != nil {
		return n, ioError(err)
	}
	return n, nil
}

// document mirrors the catalog as a tree. Indentation is inserted only
// between elements so track text is written verbatim. Carriage returns, and
// tabs and newlines inside attribute values, are written as character
// references so a reader does not normalize them away.
func (c *Catalog) document() *etree.Document {
	doc := etree.NewDocument()
	doc.WriteSettings.CanonicalText = true
	doc.WriteSettings.CanonicalAttrVal = true
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateText("\n")

	root := doc.CreateElement(tagDatabase)
	for _, artist := range c.Artists {
		indent(root, 1)
		artistElem := root.CreateElement(tagArtist)
		artistElem.CreateAttr(attrName, artist.Name)

		for _, album := range artist.Albums {
			indent(artistElem, 2)
			albumElem := artistElem.CreateElement(tagAlbum)
			albumElem.CreateAttr(attrTitle, album.Title)
			albumElem.CreateAttr(attrTracks, strconv.Itoa(int(album.TrackCount)))

			for _, track := range album.Tracks {
				indent(albumElem, 3)
				trackElem := albumElem.CreateElement(tagTrack)
				trackElem.CreateAttr(attrNum, strconv.Itoa(int(track.Number)))
				trackElem.CreateAttr(attrName, track.Title)
				if track.Lyrics != "" {
					trackElem.SetText(track.Lyrics)
				}
			}
			if len(album.Tracks) > 0 {
				indent(albumElem, 2)
			}
		}
		if len(artist.Albums) > 0 {
			indent(artistElem, 1)
		}
	}
	if len(c.Artists) > 0 {
		indent(root, 0)
	}
	doc.CreateText("\n")

	return doc
}

func indent(e *etree.Element, depth int) {
	e.CreateText("\n" + strings.Repeat(indentUnit, depth))
}
