package main

import (
	"os"
	"path/filepath"
	"strings"
)

// mapPath expands a leading "~/" to the home directory and a leading "./"
// to the directory of the executable.
func mapPath(path string) string {
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, rest)
	}
	if rest, ok := strings.CutPrefix(path, "./"); ok {
		exePath, err := os.Executable()
		if err != nil {
			return path
		}
		return filepath.Join(filepath.Dir(exePath), rest)
	}
	return path
}
