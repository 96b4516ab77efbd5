// Package puzzles provides puzzle loading for the puzzle game mode.
// This package depends on core but core does not depend on puzzles.
package puzzles

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/puzzles/formats"
)

//go:embed builtin/*.json
var builtinFS embed.FS

// LoadBuiltin returns the puzzles shipped with the binary, sorted by
// name. Builtin files are validated at load like any other file; an
// error here means a broken build.
func LoadBuiltin() ([]*core.Puzzle, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, fmt.Errorf("reading builtin puzzles: %w", err)
	}

	var list []*core.Puzzle
	for _, entry := range entries {
		data, err := builtinFS.ReadFile("builtin/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("reading builtin puzzle %s: %w", entry.Name(), err)
		}
		p, err := parseAndValidate(data, strings.ToLower(filepath.Ext(entry.Name())))
		if err != nil {
			return nil, fmt.Errorf("builtin puzzle %s: %w", entry.Name(), err)
		}
		list = append(list, p)
	}

	sortByName(list)
	return list, nil
}

// Loader loads puzzle files from a directory tree.
type Loader struct {
	Root string
}

// NewLoader creates a loader rooted at the given directory.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads every puzzle file under the root.
// Loading fails fast: a file that does not parse or validate aborts the
// whole load with an error naming the file, rather than shipping a
// silently truncated list. Results are sorted by name.
func (l *Loader) LoadAll() ([]*core.Puzzle, error) {
	var list []*core.Puzzle

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		p, err := l.LoadFile(path)
		if err != nil {
			return err
		}
		list = append(list, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading puzzles from %s: %w", l.Root, err)
	}

	sortByName(list)
	return list, nil
}

// LoadFile loads and validates a single puzzle file.
func (l *Loader) LoadFile(path string) (*core.Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	p, err := parseAndValidate(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return nil, fmt.Errorf("puzzle file %s: %w", path, err)
	}
	return p, nil
}

// LoadByName loads a specific puzzle by its name field.
func (l *Loader) LoadByName(name string) (*core.Puzzle, error) {
	list, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("puzzle not found: %s", name)
}

// ListNames returns all puzzle names in sorted order.
func (l *Loader) ListNames() ([]string, error) {
	list, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(list))
	for i, p := range list {
		names[i] = p.Name
	}
	return names, nil
}

func sortByName(list []*core.Puzzle) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseAndValidate routes to the correct parser and runs structural
// validation so no invalid puzzle ever reaches the simulation.
func parseAndValidate(data []byte, ext string) (*core.Puzzle, error) {
	var p *core.Puzzle
	var err error
	switch ext {
	case ".json":
		p, err = formats.ParseJSON(data)
	case ".yaml", ".yml":
		p, err = formats.ParseYAML(data)
	default:
		return nil, fmt.Errorf("unsupported extension: %s", ext)
	}
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
