// Package commands implements the lyricsdb command line.
package commands
