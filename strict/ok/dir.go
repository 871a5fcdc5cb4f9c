package ok

import (
	"os"
	"path/filepath"

	"github.com/LerianStudio/lib-strict/strict"
)

// ReadDir returns the entry names of a directory, sorted.
func ReadDir(name string) ([]string, error) {
	entries, err := os.ReadDir(name)
	if err != nil {
		return nil, strict.NewUnexpectedFailure("ReadDir", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	return names, nil
}

// Glob returns the paths matching pattern. No match is not a failure; a
// malformed pattern is.
func Glob(pattern string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, strict.NewUnexpectedFailure("Glob", err)
	}

	if matches == nil {
		matches = []string{}
	}

	return matches, nil
}
