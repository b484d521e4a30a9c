package main

import (
	"os"

	"github.com/handiism/lyricsdb/internal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
