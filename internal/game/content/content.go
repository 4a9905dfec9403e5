// Package content holds the shared error taxonomy and file discovery helpers
// for the YAML catalogs that feed the combat engine.
package content

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNotFound reports a missing catalog file, directory, or entry.
	ErrNotFound = errors.New("content not found")
	// ErrMalformed reports a catalog record that failed to parse or validate.
	ErrMalformed = errors.New("malformed content")
)

// NotFound wraps ErrNotFound with a description.
func NotFound(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// Malformed wraps ErrMalformed with a description.
func Malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformed, fmt.Sprintf(format, args...))
}

// YAMLFiles returns the *.yaml and *.yml files directly under dir in
// lexicographic order.
//
// Postcondition: returns ErrNotFound when dir cannot be read.
func YAMLFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, NotFound("reading directory %q: %v", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext == ".yaml" || ext == ".yml" {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// DecodeFile reads path and unmarshals its YAML into out.
//
// Postcondition: returns ErrNotFound when the file is missing and ErrMalformed
// when it does not parse.
func DecodeFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return NotFound("reading %q: %v", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return Malformed("parsing %q: %v", path, err)
	}
	return nil
}
