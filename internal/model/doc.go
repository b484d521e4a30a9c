// Package model defines the catalog entities used throughout lyricsdb.
//
// Ownership is strictly top-down: an Artist owns its Albums, an Album owns its
// Tracks, and no entity points back at its parent.
//
// # Entities
//
//	artist := model.NewArtist()
//	artist.Name = "Bowie"
//
//	album := model.NewAlbum()
//	album.Title = "Low"
//	album.TrackCount = 11
//	artist.Albums = append(artist.Albums, album)
//
// Equality is keyed on the identity field of each entity: Artist by Name,
// Album by Title, Track by Title.
//
// # Music Layout
//
// PathConfig and TrackConfig describe where the audio files of a catalog live
// on disk, using placeholders:
//
//	cfg := &model.PathConfig{MusicPath: "/music/{artist}/{album}"}
//	dir := cfg.AlbumDir(artist, album) // "/music/Bowie/Low"
//
// Available placeholders: {artist}, {album}, {title}, {tracknum}
package model
