package audio

import (
	"strconv"

	"github.com/bogem/id3v2"
	"github.com/handiism/lyricsdb/internal/model"
)

// TagEditAction defines how to handle individual ID3 tags.
type TagEditAction int

const (
	// TagEmpty clears the tag value.
	TagEmpty TagEditAction = iota

	// TagModify updates the tag with the value from the catalog.
	TagModify

	// TagDoNotModify leaves the existing tag value unchanged.
	TagDoNotModify

	// TagKeepExisting writes the catalog value only when the file has none.
	TagKeepExisting
)

// TagConfig holds tagging configuration for each ID3 field.
type TagConfig struct {
	// ModifyTags is a master switch. If false, SaveTags leaves files untouched.
	ModifyTags bool

	// Artist controls the TPE1 (Lead artist) frame.
	Artist TagEditAction

	// Album controls the TALB (Album title) frame.
	Album TagEditAction

	// TrackTitle controls the TIT2 (Title) frame.
	TrackTitle TagEditAction

	// TrackNumber controls the TRCK (Track number) frame.
	TrackNumber TagEditAction

	// Lyrics controls the USLT (Unsynchronised lyrics) frame.
	Lyrics TagEditAction

	// Language is the ISO 639-2 code stored with the lyrics.
	Language string
}

// DefaultTagConfig modifies every supported frame and stores lyrics as English.
func DefaultTagConfig() *TagConfig {
	return &TagConfig{
		ModifyTags:  true,
		Artist:      TagModify,
		Album:       TagModify,
		TrackTitle:  TagModify,
		TrackNumber: TagModify,
		Lyrics:      TagModify,
		Language:    "eng",
	}
}

// Tagger writes ID3 tags to MP3 files.
type Tagger struct {
	config *TagConfig
}

// NewTagger creates a new Tagger with the given configuration.
//
// If config is nil, DefaultTagConfig() is used.
func NewTagger(config *TagConfig) *Tagger {
	if config == nil {
		config = DefaultTagConfig()
	}
	return &Tagger{config: config}
}

// SaveTags writes the catalog data of track into the MP3 file at path.
// It reports whether the file was written.
func (t *Tagger) SaveTags(path string, artist *model.Artist, album *model.Album, track *model.Track) (bool, error) {
	if !t.config.ModifyTags {
		return false, nil
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return false, err
	}
	defer tag.Close()

	t.updateTextTags(tag, artist, album, track)
	t.updateLyrics(tag, track)

	if err := tag.Save(); err != nil {
		return false, err
	}
	return true, nil
}

// ReadLyrics returns the first unsynchronised lyrics frame of the MP3 file at
// path, or an empty string when it has none.
func ReadLyrics(path string) (string, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return "", err
	}
	defer tag.Close()

	return lyricsOf(tag), nil
}

func lyricsOf(tag *id3v2.Tag) string {
	for _, f := range tag.GetFrames(lyricsFrameID(tag)) {
		if uslf, ok := f.(id3v2.UnsynchronisedLyricsFrame); ok {
			return uslf.Lyrics
		}
	}
	return ""
}

func lyricsFrameID(tag *id3v2.Tag) string {
	return tag.CommonID("Unsynchronised lyrics/text transcription")
}

// updateTextTags updates text frames based on configuration.
func (t *Tagger) updateTextTags(tag *id3v2.Tag, artist *model.Artist, album *model.Album, track *model.Track) {
	switch t.config.Artist {
	case TagEmpty:
		tag.SetArtist("")
	case TagModify:
		tag.SetArtist(artist.Name)
	case TagKeepExisting:
		if tag.Artist() == "" {
			tag.SetArtist(artist.Name)
		}
	}

	switch t.config.Album {
	case TagEmpty:
		tag.SetAlbum("")
	case TagModify:
		tag.SetAlbum(album.Title)
	case TagKeepExisting:
		if tag.Album() == "" {
			tag.SetAlbum(album.Title)
		}
	}

	switch t.config.TrackTitle {
	case TagEmpty:
		tag.SetTitle("")
	case TagModify:
		tag.SetTitle(track.Title)
	case TagKeepExisting:
		if tag.Title() == "" {
			tag.SetTitle(track.Title)
		}
	}

	switch t.config.TrackNumber {
	case TagEmpty:
		tag.DeleteFrames("TRCK")
	case TagModify:
		tag.AddTextFrame("TRCK", id3v2.EncodingUTF8, strconv.Itoa(int(track.Number)))
	case TagKeepExisting:
		if len(tag.GetFrames("TRCK")) == 0 {
			tag.AddTextFrame("TRCK", id3v2.EncodingUTF8, strconv.Itoa(int(track.Number)))
		}
	}
}

// updateLyrics replaces the USLT frame with the track's lyrics. Tracks
// without lyrics never clear a file's existing lyrics unless TagEmpty is set.
func (t *Tagger) updateLyrics(tag *id3v2.Tag, track *model.Track) {
	id := lyricsFrameID(tag)

	switch t.config.Lyrics {
	case TagEmpty:
		tag.DeleteFrames(id)
		return
	case TagDoNotModify:
		return
	case TagKeepExisting:
		if lyricsOf(tag) != "" {
			return
		}
	}

	if !track.HasLyrics() {
		return
	}

	tag.DeleteFrames(id)
	tag.AddUnsynchronisedLyricsFrame(id3v2.UnsynchronisedLyricsFrame{
		Encoding:          id3v2.EncodingUTF8,
		Language:          t.config.Language,
		ContentDescriptor: "",
		Lyrics:            track.Lyrics,
	})
}
