// Package tagging embeds a catalog's lyrics into the audio files of a music
// library.
//
// # Manager
//
// The Manager walks the catalog and, for every track:
//
//  1. Computes the track's file path from the music layout settings
//  2. Skips tracks whose file is missing
//  3. Writes ID3 tags (lyrics, title, track number, album, artist)
//
// # Basic Usage
//
//	manager := tagging.NewManager(settings, func(event tagging.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	summary, err := manager.TagCatalog(ctx, c)
//
// # Concurrency
//
// Files are tagged in parallel, bounded by settings.MaxConcurrentTagging.
// The catalog is only read while tagging.
package tagging
