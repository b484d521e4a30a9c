package model

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"normal-file.mp3", "normal-file.mp3"},
		{"file:with:colons.mp3", "file_with_colons.mp3"},
		{"file<with>brackets.mp3", "file_with_brackets.mp3"},
		{"file/with\\slashes.mp3", "file_with_slashes.mp3"},
		{"file?with*wildcards.mp3", "file_with_wildcards.mp3"},
		{"trailing dots...", "trailing dots"},
		{"multiple   spaces", "multiple spaces"},
		{"trailing spaces   ", "trailing spaces"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := sanitizeFileName(tt.input)
			if got != tt.want {
				t.Errorf("sanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEquality(t *testing.T) {
	a := &Artist{Name: "Bowie", Albums: []*Album{{Title: "Low"}}}
	b := &Artist{Name: "Bowie"}
	if !a.Equal(b) {
		t.Error("artists with the same name should be equal")
	}
	if a.Equal(&Artist{Name: "Eno"}) {
		t.Error("artists with different names should not be equal")
	}

	low := &Album{Title: "Low", TrackCount: 11}
	if !low.Equal(&Album{Title: "Low", TrackCount: 2}) {
		t.Error("albums compare by title only")
	}

	track := &Track{Title: "Sound and Vision", Number: 3}
	if !track.Equal(&Track{Title: "Sound and Vision", Number: 9, Lyrics: "x"}) {
		t.Error("tracks compare by title only")
	}

	var nilTrack *Track
	if nilTrack.Equal(track) {
		t.Error("nil track should not equal a track")
	}
}

func TestArtist_String(t *testing.T) {
	if got := (&Artist{Name: "Bowie"}).String(); got != "Bowie" {
		t.Errorf("String() = %q, want %q", got, "Bowie")
	}
}

func TestNewConstructors(t *testing.T) {
	if a := NewArtist(); a.Name != "" || len(a.Albums) != 0 {
		t.Errorf("NewArtist() = %+v, want empty", a)
	}
	if a := NewAlbum(); a.Title != "" || a.TrackCount != 0 || len(a.Tracks) != 0 {
		t.Errorf("NewAlbum() = %+v, want empty", a)
	}
	if tr := NewTrack(); tr.Title != "" || tr.Lyrics != "" || tr.Number != 0 {
		t.Errorf("NewTrack() = %+v, want empty", tr)
	}
}

func TestSortTracks_Stable(t *testing.T) {
	tracks := []*Track{
		{Title: "c", Number: 2},
		{Title: "a", Number: 1},
		{Title: "d", Number: 2},
		{Title: "b", Number: 1},
		{Title: "zero", Number: 0},
	}

	SortTracks(tracks)

	want := []string{"zero", "a", "b", "c", "d"}
	for i, track := range tracks {
		if track.Title != want[i] {
			t.Errorf("tracks[%d] = %q, want %q", i, track.Title, want[i])
		}
	}
}

func TestAlbum_CountMismatch(t *testing.T) {
	album := &Album{Title: "Low", TrackCount: 2, Tracks: []*Track{{Title: "Speed of Life"}}}
	if !album.CountMismatch() {
		t.Error("CountMismatch() should be true when declared count differs")
	}
	album.Tracks = append(album.Tracks, &Track{Title: "Breaking Glass"})
	if album.CountMismatch() {
		t.Error("CountMismatch() should be false when counts agree")
	}
}

func TestLookup(t *testing.T) {
	artist := &Artist{Name: "Bowie", Albums: []*Album{
		{Title: "Low", Tracks: []*Track{{Title: "Speed of Life", Number: 1}}},
	}}

	album, ok := artist.Album("Low")
	if !ok {
		t.Fatal("Album(\"Low\") not found")
	}
	if _, ok := album.Track("Speed of Life"); !ok {
		t.Error("Track(\"Speed of Life\") not found")
	}
	if _, ok := artist.Album("Heroes"); ok {
		t.Error("Album(\"Heroes\") should not be found")
	}
}

func TestPathConfig_AlbumDir(t *testing.T) {
	cfg := &PathConfig{MusicPath: "/music/{artist}/{album}"}
	artist := &Artist{Name: "AC/DC"}
	album := &Album{Title: "Back in Black"}

	if got, want := cfg.AlbumDir(artist, album), "/music/AC_DC/Back in Black"; got != want {
		t.Errorf("AlbumDir() = %q, want %q", got, want)
	}
}

func TestTrackConfig_TrackPath(t *testing.T) {
	cfg := &TrackConfig{FileNameFormat: "{tracknum} {title}.mp3"}
	artist := &Artist{Name: "Bowie"}
	album := &Album{Title: "Low"}
	track := &Track{Title: "Speed of Life", Number: 1}

	if got, want := cfg.TrackPath("/music/Bowie/Low", artist, album, track), "/music/Bowie/Low/01 Speed of Life.mp3"; got != want {
		t.Errorf("TrackPath() = %q, want %q", got, want)
	}
}

func TestTruncateUTF8(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"short", 10, "short"},
		{"abcdef", 3, "abc"},
		{"aé", 2, "a"},
		{"aéb", 3, "aé"},
		{"日本", 4, "日"},
		{"日本", 2, ""},
	}

	for _, tt := range tests {
		if got := truncateUTF8(tt.input, tt.n); got != tt.want {
			t.Errorf("truncateUTF8(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}

func TestLongPathsStayValidUTF8(t *testing.T) {
	cfg := &PathConfig{MusicPath: "/m/AB/{album}"}
	artist := &Artist{Name: "AB"}
	album := &Album{Title: strings.Repeat("é", 200)}

	dir := cfg.AlbumDir(artist, album)
	if !utf8.ValidString(dir) || len(dir) > 247 {
		t.Errorf("AlbumDir() = %d bytes, valid UTF-8 %v", len(dir), utf8.ValidString(dir))
	}

	tracks := &TrackConfig{FileNameFormat: "{tracknum} {title}.mp3"}
	track := &Track{Title: strings.Repeat("é", 300), Number: 1}
	path := tracks.TrackPath("/m", artist, album, track)
	if !utf8.ValidString(path) || len(path) >= 260 {
		t.Errorf("TrackPath() = %d bytes, valid UTF-8 %v", len(path), utf8.ValidString(path))
	}
	if !strings.HasSuffix(path, ".mp3") {
		t.Errorf("TrackPath() = %q, want .mp3 suffix", path)
	}
}

func TestPathConfig_PlaylistPath(t *testing.T) {
	cfg := &PathConfig{
		MusicPath:              "/music/{artist}/{album}",
		PlaylistFileNameFormat: "{artist} - {album}",
		PlaylistFormat:         PlaylistFormatPLS,
	}
	got := cfg.PlaylistPath(&Artist{Name: "Bowie"}, &Album{Title: "Low"})
	if want := "/music/Bowie/Low/Bowie - Low.pls"; got != want {
		t.Errorf("PlaylistPath() = %q, want %q", got, want)
	}
}

func TestPlaylistFormat_Extension(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"m3u", ".m3u"},
		{"pls", ".pls"},
		{"PLS", ".pls"},
		{"wpl", ".m3u"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParsePlaylistFormat(tt.input).Extension(); got != tt.want {
				t.Errorf("ParsePlaylistFormat(%q).Extension() = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
