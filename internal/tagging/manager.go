package tagging

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"github.com/handiism/lyricsdb/internal/audio"
	"github.com/handiism/lyricsdb/internal/catalog"
	"github.com/handiism/lyricsdb/internal/config"
	ioutils "github.com/handiism/lyricsdb/internal/io"
	"github.com/handiism/lyricsdb/internal/model"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a tagging progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Summary counts the outcome of a tagging run.
type Summary struct {
	Tagged  int32
	Missing int32
	Failed  int32
	Skipped int32
}

// Total returns the number of tracks visited.
func (s Summary) Total() int32 {
	return s.Tagged + s.Missing + s.Failed + s.Skipped
}

// Manager coordinates tagging of a music library from a catalog.
type Manager struct {
	settings *config.Settings
	paths    *model.PathConfig
	tracks   *model.TrackConfig
	tagger   *audio.Tagger

	tagged  int32
	missing int32
	failed  int32
	skipped int32

	onProgress func(ProgressEvent)
}

// NewManager creates a new tagging Manager. onProgress may be called from
// several goroutines at once.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		settings:   settings,
		paths:      settings.ToPathConfig(),
		tracks:     settings.ToTrackConfig(),
		tagger:     audio.NewTagger(settings.ToTagConfig()),
		onProgress: onProgress,
	}
}

type job struct {
	path   string
	artist *model.Artist
	album  *model.Album
	track  *model.Track
}

// TagCatalog tags every track of c whose file exists. Individual file
// failures are reported as events and counted; only cancellation aborts the
// run with an error. Counters start from zero on every call.
func (m *Manager) TagCatalog(ctx context.Context, c *catalog.Catalog) (Summary, error) {
	m.resetCounters()
	jobs := m.plan(c)
	m.progress(ProgressEvent{Message: fmt.Sprintf("Tagging %d track(s) from %d artist(s)", len(jobs), c.Len()), Level: LevelInfo})

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.settings.MaxConcurrentTagging)

	for _, j := range jobs {
		if gctx.Err() != nil {
			break
		}
		j := j
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			m.tagTrack(j)
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	summary := m.Summary()
	level := LevelSuccess
	if summary.Failed > 0 || summary.Missing > 0 {
		level = LevelWarning
	}
	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Tagged %d, missing %d, failed %d, skipped %d", summary.Tagged, summary.Missing, summary.Failed, summary.Skipped),
		Level:   level,
	})

	return summary, err
}

func (m *Manager) resetCounters() {
	atomic.StoreInt32(&m.tagged, 0)
	atomic.StoreInt32(&m.missing, 0)
	atomic.StoreInt32(&m.failed, 0)
	atomic.StoreInt32(&m.skipped, 0)
}

// Summary returns the counters of the current or last run.
func (m *Manager) Summary() Summary {
	return Summary{
		Tagged:  atomic.LoadInt32(&m.tagged),
		Missing: atomic.LoadInt32(&m.missing),
		Failed:  atomic.LoadInt32(&m.failed),
		Skipped: atomic.LoadInt32(&m.skipped),
	}
}

// TrackPath returns where the audio file of track is expected on disk.
func (m *Manager) TrackPath(artist *model.Artist, album *model.Album, track *model.Track) string {
	return m.tracks.TrackPath(m.paths.AlbumDir(artist, album), artist, album, track)
}

func (m *Manager) plan(c *catalog.Catalog) []job {
	var jobs []job
	for _, artist := range c.Artists {
		for _, album := range artist.Albums {
			for _, track := range album.Tracks {
				jobs = append(jobs, job{
					path:   m.TrackPath(artist, album, track),
					artist: artist,
					album:  album,
					track:  track,
				})
			}
		}
	}
	return jobs
}

func (m *Manager) tagTrack(j job) {
	name := filepath.Base(j.path)

	if !ioutils.FileExists(j.path) {
		atomic.AddInt32(&m.missing, 1)
		m.progress(ProgressEvent{Message: fmt.Sprintf("Missing file: %s", j.path), Level: LevelWarning})
		return
	}

	written, err := m.tagger.SaveTags(j.path, j.artist, j.album, j.track)
	if err != nil {
		atomic.AddInt32(&m.failed, 1)
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error tagging %s: %v", name, err), Level: LevelError})
		return
	}
	if !written {
		atomic.AddInt32(&m.skipped, 1)
		m.progress(ProgressEvent{Message: fmt.Sprintf("Skipped: %s", name), Level: LevelVerbose})
		return
	}

	atomic.AddInt32(&m.tagged, 1)
	m.progress(ProgressEvent{Message: fmt.Sprintf("Tagged: %s", name), Level: LevelVerbose})
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
