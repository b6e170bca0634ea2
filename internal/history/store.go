// Package history reads and appends the past-groups directory.
//
// Each file in the directory records one or more groups, one group per
// line, as space-separated emails. Splitting the history across several
// files is purely organizational: reading concatenates every matching
// file, so behavior is identical to a single combined file.
package history

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultIncludePatterns matches every regular file; hidden files are
// always skipped.
var DefaultIncludePatterns = []string{"*"}

// PastGroup is a single historical group together with where it was
// recorded.
type PastGroup struct {
	Members []string
	Source  string
	Line    int
}

// Store reads and writes groupings under a history directory.
type Store struct {
	dir             string
	includePatterns []string
	excludePatterns []string
}

// NewStore creates a store over the given directory. Patterns are
// doublestar globs matched against file names; empty includes default to
// DefaultIncludePatterns.
func NewStore(dir string, includePatterns, excludePatterns []string) *Store {
	if len(includePatterns) == 0 {
		includePatterns = DefaultIncludePatterns
	}
	return &Store{
		dir:             dir,
		includePatterns: includePatterns,
		excludePatterns: excludePatterns,
	}
}

// Dir returns the history directory path.
func (s *Store) Dir() string {
	return s.dir
}

// Files lists the history files that pass the include/exclude patterns,
// sorted by name. A missing directory is treated as empty history.
func (s *Store) Files() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		ok, err := s.matches(entry.Name())
		if err != nil {
			return nil, err
		}
		if ok {
			files = append(files, filepath.Join(s.dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

func (s *Store) matches(name string) (bool, error) {
	included := false
	for _, pattern := range s.includePatterns {
		ok, err := doublestar.Match(pattern, name)
		if err != nil {
			return false, fmt.Errorf("invalid include pattern %q: %w", pattern, err)
		}
		if ok {
			included = true
			break
		}
	}
	if !included {
		return false, nil
	}
	for _, pattern := range s.excludePatterns {
		ok, err := doublestar.Match(pattern, name)
		if err != nil {
			return false, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		if ok {
			return false, nil
		}
	}
	return true, nil
}

// Read returns every past group recorded in the history directory.
func (s *Store) Read() ([]PastGroup, error) {
	files, err := s.Files()
	if err != nil {
		return nil, err
	}

	var groups []PastGroup
	for _, path := range files {
		fileGroups, err := readFile(path)
		if err != nil {
			return nil, err
		}
		groups = append(groups, fileGroups...)
	}
	return groups, nil
}

func readFile(path string) ([]PastGroup, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var groups []PastGroup
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		members := strings.Fields(scanner.Text())
		if len(members) == 0 {
			continue
		}
		groups = append(groups, PastGroup{Members: members, Source: path, Line: lineNo})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return groups, nil
}

// Append writes a new grouping file into the history directory and
// returns its path. The file must not already exist; overwriting recorded
// history would silently change future overlap scores.
func (s *Store) Append(name string, groups [][]string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, group := range groups {
		if _, err := w.WriteString(strings.Join(group, " ") + "\n"); err != nil {
			return "", err
		}
	}
	if err := w.Flush(); err != nil {
		return "", err
	}
	return path, nil
}
