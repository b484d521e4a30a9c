// Package audio writes catalog data into audio files and playlists.
//
// # ID3 Tagging
//
// Use the Tagger to embed a track's lyrics and names into its MP3 file:
//
//	tagger := audio.NewTagger(audio.DefaultTagConfig())
//	err := tagger.SaveTags("/music/Bowie/Low/01 Speed of Life.mp3", artist, album, track)
//
// Lyrics go into an unsynchronised lyrics (USLT) frame.
//
// # Playlist Generation
//
//	creator := audio.NewPlaylistCreator(model.PlaylistFormatM3U, true, trackCfg)
//	content := creator.CreatePlaylist(artist, album)
//
// Supported formats: M3U (with optional extended info) and PLS.
package audio
