// Package tui provides a Bubble Tea browser for lyrics catalogs.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/lyricsdb/internal/catalog"
	ioutils "github.com/handiism/lyricsdb/internal/io"
	"github.com/handiism/lyricsdb/internal/model"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(0, 1)
)

// State represents the current UI state.
type State int

const (
	StateBrowse State = iota
	StatePrompt
)

// Level is the catalog depth being listed.
type Level int

const (
	LevelArtists Level = iota
	LevelAlbums
	LevelTracks
)

type promptKind int

const (
	promptOpen promptKind = iota
	promptSaveAs
	promptAddArtist
	promptRename
)

// Model is the Bubble Tea model for the catalog browser.
type Model struct {
	state   State
	catalog *catalog.Catalog

	level  Level
	artist int // index of the opened artist, valid from LevelAlbums
	album  int // index of the opened album, valid at LevelTracks
	cursor int

	prompt     promptKind
	input      textinput.Model
	lyrics     viewport.Model
	lyricsText string

	status string
	failed bool

	width  int
	height int
}

// NewModel creates a browser over c. A nil catalog starts empty.
func NewModel(c *catalog.Catalog) Model {
	if c == nil {
		c = catalog.New()
	}

	ti := textinput.New()
	ti.CharLimit = 500
	ti.Width = 60

	m := Model{
		state:   StateBrowse,
		catalog: c,
		input:   ti,
		lyrics:  viewport.New(50, 15),
	}
	m.refreshLyrics()
	return m
}

// Catalog returns the catalog being browsed.
func (m Model) Catalog() *catalog.Catalog {
	return m.catalog
}

// Status returns the last status line and whether it reports a failure.
func (m Model) Status() (string, bool) {
	return m.status, m.failed
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Message types
type (
	// LoadedMsg is sent when an open request finishes.
	LoadedMsg struct {
		Path    string
		Catalog *catalog.Catalog
		Err     error
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.lyrics.Width = max(msg.Width/2-4, 20)
		m.lyrics.Height = max(msg.Height-10, 5)
		return m, nil

	case LoadedMsg:
		if msg.Err != nil {
			// The previous catalog stays in place.
			m.setError(msg.Err)
			return m, nil
		}
		m.catalog = msg.Catalog
		m.level, m.artist, m.album, m.cursor = LevelArtists, 0, 0, 0
		m.refreshLyrics()
		m.setStatus(fmt.Sprintf("Loaded %s (%d artists)", msg.Path, m.catalog.Len()))
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.state == StatePrompt {
			return m.updatePrompt(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.refreshLyrics()
		}

	case "down", "j":
		if m.cursor < len(m.items())-1 {
			m.cursor++
			m.refreshLyrics()
		}

	case "enter", "right", "l":
		m.descend()

	case "esc", "left", "h", "backspace":
		m.ascend()

	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.lyrics, cmd = m.lyrics.Update(msg)
		return m, cmd

	case "o":
		cmd := m.startPrompt(promptOpen, "Open catalog: ", m.catalog.Path())
		return m, cmd

	case "s":
		if m.catalog.Path() == "" {
			cmd := m.startPrompt(promptSaveAs, "Save as: ", "")
			return m, cmd
		}
		m.save("")

	case "a":
		cmd := m.startPrompt(promptAddArtist, "Artist name: ", "")
		return m, cmd

	case "r":
		if name, ok := m.selectedName(); ok {
			cmd := m.startPrompt(promptRename, "Rename to: ", name)
			return m, cmd
		}
	}

	return m, nil
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.endPrompt()
		return m, nil

	case "enter":
		value := strings.TrimSpace(m.input.Value())
		kind := m.prompt
		m.endPrompt()
		return m.submit(kind, value)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit(kind promptKind, value string) (tea.Model, tea.Cmd) {
	switch kind {
	case promptOpen:
		if value == "" {
			return m, nil
		}
		m.setStatus(fmt.Sprintf("Loading %s...", value))
		return m, loadCatalog(value)

	case promptSaveAs:
		if value == "" {
			return m, nil
		}
		m.save(value)

	case promptAddArtist:
		if value == "" {
			m.setError(fmt.Errorf("artist name cannot be empty"))
			return m, nil
		}
		m.catalog.AddArtist(value)
		m.level, m.cursor = LevelArtists, m.catalog.Len()-1
		m.refreshLyrics()
		m.setStatus(fmt.Sprintf("Added artist %s", value))

	case promptRename:
		if err := m.rename(value); err != nil {
			m.setError(err)
			return m, nil
		}
		m.setStatus(fmt.Sprintf("Renamed to %s", value))
	}

	return m, nil
}

func (m *Model) startPrompt(kind promptKind, prompt, value string) tea.Cmd {
	m.state = StatePrompt
	m.prompt = kind
	m.input.Prompt = prompt
	m.input.SetValue(value)
	m.input.CursorEnd()
	return tea.Batch(m.input.Focus(), textinput.Blink)
}

func (m *Model) endPrompt() {
	m.state = StateBrowse
	m.input.Blur()
	m.input.SetValue("")
}

// save writes the catalog synchronously; the browser is its only owner.
func (m *Model) save(path string) {
	if err := m.catalog.Save(path); err != nil {
		m.setError(err)
		return
	}
	m.setStatus(fmt.Sprintf("Saved %s", m.catalog.Path()))
}

func loadCatalog(path string) tea.Cmd {
	return func() tea.Msg {
		if !ioutils.FileExists(path) {
			return LoadedMsg{Path: path, Err: fmt.Errorf("file %s does not exist", path)}
		}
		c, err := catalog.Load(path)
		return LoadedMsg{Path: path, Catalog: c, Err: err}
	}
}

func (m *Model) setStatus(s string) {
	m.status, m.failed = s, false
}

func (m *Model) setError(err error) {
	m.status, m.failed = err.Error(), true
}

func (m *Model) descend() {
	if m.level == LevelTracks || len(m.items()) == 0 {
		return
	}
	switch m.level {
	case LevelArtists:
		m.artist = m.cursor
		m.level = LevelAlbums
	case LevelAlbums:
		m.album = m.cursor
		m.level = LevelTracks
	}
	m.cursor = 0
	m.refreshLyrics()
}

func (m *Model) ascend() {
	switch m.level {
	case LevelTracks:
		m.level, m.cursor = LevelAlbums, m.album
	case LevelAlbums:
		m.level, m.cursor = LevelArtists, m.artist
	}
	m.refreshLyrics()
}

func (m Model) currentArtist() *model.Artist {
	return m.catalog.Artists[m.artist]
}

func (m Model) currentAlbum() *model.Album {
	return m.currentArtist().Albums[m.album]
}

// selectedTrack returns the highlighted track at LevelTracks.
func (m Model) selectedTrack() (*model.Track, bool) {
	if m.level != LevelTracks {
		return nil, false
	}
	tracks := m.currentAlbum().Tracks
	if m.cursor >= len(tracks) {
		return nil, false
	}
	return tracks[m.cursor], true
}

func (m Model) items() []string {
	var items []string
	switch m.level {
	case LevelArtists:
		for _, artist := range m.catalog.Artists {
			items = append(items, artist.Name)
		}
	case LevelAlbums:
		for _, album := range m.currentArtist().Albums {
			items = append(items, fmt.Sprintf("%s (%d)", album.Title, album.TrackCount))
		}
	case LevelTracks:
		for _, track := range m.currentAlbum().Tracks {
			items = append(items, fmt.Sprintf("%3d  %s", track.Number, track.Title))
		}
	}
	return items
}

func (m Model) selectedName() (string, bool) {
	if len(m.items()) == 0 {
		return "", false
	}
	switch m.level {
	case LevelArtists:
		return m.catalog.Artists[m.cursor].Name, true
	case LevelAlbums:
		return m.currentArtist().Albums[m.cursor].Title, true
	default:
		return m.currentAlbum().Tracks[m.cursor].Title, true
	}
}

func (m *Model) rename(value string) error {
	if _, ok := m.selectedName(); !ok {
		return fmt.Errorf("nothing selected")
	}
	switch m.level {
	case LevelArtists:
		if value == "" {
			return fmt.Errorf("artist name cannot be empty")
		}
		m.catalog.Artists[m.cursor].Name = value
	case LevelAlbums:
		m.currentArtist().Albums[m.cursor].Title = value
	case LevelTracks:
		m.currentAlbum().Tracks[m.cursor].Title = value
	}
	return nil
}

func (m *Model) refreshLyrics() {
	m.lyricsText = ""
	if track, ok := m.selectedTrack(); ok {
		m.lyricsText = track.Lyrics
	}
	if m.lyricsText == "" {
		m.lyrics.SetContent(dimStyle.Render("(no lyrics)"))
	} else {
		m.lyrics.SetContent(m.lyricsText)
	}
	m.lyrics.GotoTop()
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("♪ lyricsdb"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(m.breadcrumb()))
	b.WriteString("\n\n")

	list := boxStyle.Render(m.renderList())
	if m.level == LevelTracks {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, boxStyle.Render(m.lyrics.View())))
	} else {
		b.WriteString(list)
	}
	b.WriteString("\n")

	if m.state == StatePrompt {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	if m.status != "" {
		if m.failed {
			b.WriteString(errorStyle.Render("✗ " + m.status))
		} else {
			b.WriteString(successStyle.Render("✓ " + m.status))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) breadcrumb() string {
	path := m.catalog.Path()
	if path == "" {
		path = "(unsaved catalog)"
	}
	parts := []string{path}
	if m.level >= LevelAlbums {
		parts = append(parts, m.currentArtist().Name)
	}
	if m.level == LevelTracks {
		parts = append(parts, m.currentAlbum().Title)
	}
	return strings.Join(parts, " › ")
}

func (m Model) renderList() string {
	items := m.items()
	if len(items) == 0 {
		return dimStyle.Render("(empty)")
	}

	var b strings.Builder
	for i, item := range items {
		if item == "" {
			item = "(unnamed)"
		}
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("› " + item))
		} else {
			b.WriteString("  " + item)
		}
		if i < len(items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) getHelpText() string {
	if m.state == StatePrompt {
		return "enter: confirm • esc: cancel"
	}
	return "↑/↓: move • enter: open • esc: back • o: open file • s: save • a: add artist • r: rename • q: quit"
}

// Run starts the browser on c.
func Run(c *catalog.Catalog) error {
	p := tea.NewProgram(NewModel(c), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
