package catalog

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/handiism/lyricsdb/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteToLayout(t *testing.T) {
	c, err := Parse([]byte(bowieLow))
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = c.WriteTo(&buf)
	require.NoError(t, err)

	want := `<?xml version="1.0" encoding="UTF-8"?>
<database>
  <artist name="Bowie">
    <album title="Low" tracks="2">
      <track num="1" name="Speed of Life">...</track>
      <track num="2" name="Breaking Glass">...</track>
    </album>
  </artist>
</database>
`
	assert.Equal(t, want, buf.String())
}

func TestRoundTripFixture(t *testing.T) {
	original, err := Load(filepath.Join("testdata", "bowie.xml"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.xml")
	require.NoError(t, original.Save(path))
	assert.Equal(t, path, original.Path())

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, original.Artists, reloaded.Artists)

	// Declared counts survive even where they disagree with the track list.
	heroes := reloaded.Artists[0].Albums[1]
	assert.Equal(t, uint8(10), heroes.TrackCount)
	assert.Len(t, heroes.Tracks, 1)
}

func TestRoundTripVerbatimLyrics(t *testing.T) {
	c := New()
	artist := c.AddArtist("Tom & Jerry's <Band>")
	album := model.NewAlbum()
	album.Title = `"Quoted" Album`
	album.TrackCount = 3
	album.Tracks = []*model.Track{
		{Title: "a", Number: 1, Lyrics: "line one\n  indented line\n\nlast & <least>"},
		{Title: "b", Number: 1, Lyrics: ""},
		{Title: "c", Number: 7, Lyrics: "\ttabbed\n"},
		{Title: "d\r\ne", Number: 9, Lyrics: "verse\rchorus\r\nbridge"},
	}
	artist.Albums = append(artist.Albums, album)

	var buf bytes.Buffer
	_, err := c.WriteTo(&buf)
	require.NoError(t, err)

	reloaded, err := Parse(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, c.Artists, reloaded.Artists)
	assert.Equal(t, "verse\rchorus\r\nbridge", reloaded.Artists[0].Albums[0].Tracks[3].Lyrics)

	// Reloading already sorted output is idempotent.
	var again bytes.Buffer
	_, err = reloaded.WriteTo(&again)
	require.NoError(t, err)
	assert.Equal(t, buf.String(), again.String())
}

func TestRoundTripCarriageReturnReferences(t *testing.T) {
	doc := `<database><artist name="a&#10;b&#9;c&#13;d"><album title="T" tracks="1">` +
		`<track num="1" name="S">verse&#13;chorus</track></album></artist></database>`
	c, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, "a\nb\tc\rd", c.Artists[0].Name)

	var buf bytes.Buffer
	_, err = c.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `name="a&#xA;b&#x9;c&#xD;d"`)

	reloaded, err := Parse(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "a\nb\tc\rd", reloaded.Artists[0].Name)
	assert.Equal(t, "verse\rchorus", reloaded.Artists[0].Albums[0].Tracks[0].Lyrics)
}

func TestWriteEmptyCatalog(t *testing.T) {
	var buf bytes.Buffer
	_, err := New().WriteTo(&buf)
	require.NoError(t, err)

	c, err := Parse(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestSaveDefaultsToLoadedPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lyrics.xml")
	require.NoError(t, os.WriteFile(path, []byte(bowieLow), 0644))

	c, err := Load(path)
	require.NoError(t, err)

	c.Artists[0].Albums[0].Title = "Low (Remastered)"
	require.NoError(t, c.Save(""))

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Low (Remastered)", reloaded.Artists[0].Albums[0].Title)
}

func TestSaveWithoutPath(t *testing.T) {
	err := New().Save("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIO))
}

func TestSaveUnwritableDestination(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	c, err := Parse([]byte(bowieLow))
	require.NoError(t, err)

	err = c.Save(filepath.Join(blocker, "nested", "out.xml"))
	require.Error(t, err)
	assert.Equal(t, KindIO, KindOf(err))
	assert.Empty(t, c.Path())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("pipe closed")
}

func TestWriteToFailure(t *testing.T) {
	c, err := Parse([]byte(bowieLow))
	require.NoError(t, err)

	_, err = c.WriteTo(failingWriter{})
	require.Error(t, err)
	assert.Equal(t, KindIO, KindOf(err))
}
