// Package ioutils provides the file system helpers used by lyricsdb.
//
//	// Write a catalog, creating missing folders
//	err := ioutils.WriteFile("/data/lyrics.xml", data)
//
//	// Keep a copy before overwriting
//	err := ioutils.BackupFile("/data/lyrics.xml")
//
//	// Check that an audio file is there before tagging it
//	if ioutils.FileExists(track.Path) { ... }
package ioutils
