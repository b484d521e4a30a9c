package tui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/handiism/lyricsdb/internal/catalog"
	"github.com/handiism/lyricsdb/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCatalog() *catalog.Catalog {
	c := catalog.New()
	bowie := c.AddArtist("David Bowie")
	low := &model.Album{Title: "Low", TrackCount: 2, Tracks: []*model.Track{
		{Title: "Speed of Life", Number: 1},
		{Title: "Breaking Glass", Number: 2, Lyrics: "Baby, I've been\nbreaking glass"},
	}}
	bowie.Albums = append(bowie.Albums, low)
	c.AddArtist("Brian Eno")
	return c
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestNavigateToLyrics(t *testing.T) {
	m := NewModel(sampleCatalog())
	assert.Equal(t, LevelArtists, m.level)
	assert.Equal(t, []string{"David Bowie", "Brian Eno"}, m.items())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, LevelTracks, m.level)
	assert.Equal(t, "", m.lyricsText)

	m = send(t, m, runes("j"))
	assert.Equal(t, "Baby, I've been\nbreaking glass", m.lyricsText)
	assert.Contains(t, m.View(), "Low")

	// Cursor stops at the last track.
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.cursor)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, LevelAlbums, m.level)
	assert.Equal(t, 0, m.cursor)
	assert.Equal(t, "", m.lyricsText)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, LevelArtists, m.level)
}

func TestDescendIntoEmptyArtist(t *testing.T) {
	m := NewModel(sampleCatalog())
	m = send(t, m, runes("j"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, LevelAlbums, m.level)
	assert.Empty(t, m.items())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, LevelAlbums, m.level)
	assert.Contains(t, m.View(), "(empty)")
}

func TestFailedLoadKeepsCatalog(t *testing.T) {
	c := sampleCatalog()
	m := NewModel(c)

	m = send(t, m, LoadedMsg{Path: "broken.xml", Err: errors.New("empty document")})
	assert.Same(t, c, m.Catalog())
	status, failed := m.Status()
	assert.True(t, failed)
	assert.Equal(t, "empty document", status)
}

func TestOpenMissingFile(t *testing.T) {
	msg := loadCatalog(filepath.Join(t.TempDir(), "nope.xml"))()
	loaded, ok := msg.(LoadedMsg)
	require.True(t, ok)
	require.Error(t, loaded.Err)
	assert.Contains(t, loaded.Err.Error(), "does not exist")
	assert.Nil(t, loaded.Catalog)
}

func TestOpenReplacesCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lyrics.xml")
	require.NoError(t, os.WriteFile(path, []byte(`<database><artist name="Kraftwerk"/></database>`), 0o644))

	m := NewModel(sampleCatalog())
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, loadCatalog(path)())

	assert.Equal(t, LevelArtists, m.level)
	assert.Equal(t, []string{"Kraftwerk"}, m.items())
	assert.Equal(t, path, m.Catalog().Path())
	_, failed := m.Status()
	assert.False(t, failed)
}

func TestAddArtist(t *testing.T) {
	m := NewModel(catalog.New())
	m = send(t, m, runes("a"))
	assert.Equal(t, StatePrompt, m.state)

	m = typeText(t, m, "Can")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, StateBrowse, m.state)
	assert.Equal(t, []string{"Can"}, m.items())
	assert.Equal(t, 0, m.cursor)
}

func TestAddArtistRequiresName(t *testing.T) {
	m := NewModel(catalog.New())
	m = send(t, m, runes("a"), tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 0, m.Catalog().Len())
	_, failed := m.Status()
	assert.True(t, failed)
}

func TestRenameTrack(t *testing.T) {
	m := NewModel(sampleCatalog())
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEnter}, runes("r"))
	assert.Equal(t, "Speed of Life", m.input.Value())

	m.input.SetValue("")
	m = typeText(t, m, "Warszawa")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	_, _, track, ok := m.Catalog().Find("David Bowie", "Low", "Warszawa")
	require.True(t, ok)
	assert.Equal(t, uint8(1), track.Number)
}

func TestRenameArtistRejectsEmpty(t *testing.T) {
	m := NewModel(sampleCatalog())
	m = send(t, m, runes("r"))
	m.input.SetValue("")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "David Bowie", m.Catalog().Artists[0].Name)
	_, failed := m.Status()
	assert.True(t, failed)
}

func TestPromptCancel(t *testing.T) {
	m := NewModel(sampleCatalog())
	m = send(t, m, runes("a"))
	m = typeText(t, m, "Neu!")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, StateBrowse, m.state)
	assert.Equal(t, 2, m.Catalog().Len())
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xml")
	m := NewModel(sampleCatalog())

	// Without a path the save asks for one.
	m = send(t, m, runes("s"))
	require.Equal(t, StatePrompt, m.state)
	m = typeText(t, m, path)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	_, failed := m.Status()
	assert.False(t, failed)
	assert.Equal(t, path, m.Catalog().Path())

	saved, err := catalog.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, saved.Len())
}
