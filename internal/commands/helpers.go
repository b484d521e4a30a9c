package commands

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/lyricsdb/internal/catalog"
	"github.com/handiism/lyricsdb/internal/tagging"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ECDC4"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#95E1A3"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F8B500"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C757D"))
)

// catalogPath picks the positional argument, then --catalog, then settings.
func catalogPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if catalogFlag != "" {
		return catalogFlag
	}
	return settings.CatalogPath
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	c, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return c, nil
}

// progressPrinter renders tagging events on w. It is safe for concurrent use.
func progressPrinter(w io.Writer) func(tagging.ProgressEvent) {
	var mu sync.Mutex
	return func(event tagging.ProgressEvent) {
		if event.Level == tagging.LevelVerbose && !verbose {
			return
		}

		var line string
		switch event.Level {
		case tagging.LevelError:
			line = errorStyle.Render("✗ " + event.Message)
		case tagging.LevelWarning:
			line = warningStyle.Render("! " + event.Message)
		case tagging.LevelSuccess:
			line = successStyle.Render("✓ " + event.Message)
		case tagging.LevelInfo:
			line = "• " + event.Message
		default:
			line = dimStyle.Render("  " + event.Message)
		}

		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintln(w, line)
	}
}
