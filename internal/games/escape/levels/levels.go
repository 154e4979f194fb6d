// Package levels bundles the playable boards and the sources that feed
// them to the simulation. The package depends on sim but sim does not
// depend on levels.
package levels

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilt-escape/internal/games/escape/sim"
)

//go:embed maps/*.map
var bundledFS embed.FS

// Bundled returns the built-in campaign rotation. Board names are the
// file names without the .map extension, in sorted order.
func Bundled() sim.Source {
	return packSource{}
}

type packSource struct{}

func (packSource) Names() []string {
	entries, err := bundledFS.ReadDir("maps")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".map"))
	}
	return names
}

func (packSource) Load(name string) ([]byte, error) {
	data, err := bundledFS.ReadFile("maps/" + name + ".map")
	if err != nil {
		return nil, fmt.Errorf("bundled level %s: %w", name, err)
	}
	return data, nil
}

// Dir serves .map files from a directory tree, scanned once at
// construction and rotated in sorted name order.
type Dir struct {
	names []string
	paths map[string]string
}

// NewDir recursively scans root for .map files. Unreadable entries and
// duplicate board names are skipped with a log line; an empty scan is an
// error.
func NewDir(root string, logger *log.Logger) (*Dir, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	d := &Dir{paths: make(map[string]string)}
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			logger.Warn("skipping unreadable entry", "path", path, "error", walkErr)
			return nil
		}
		if entry.IsDir() || strings.ToLower(filepath.Ext(path)) != ".map" {
			return nil
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if prev, dup := d.paths[name]; dup {
			logger.Warn("skipping duplicate board name", "name", name, "kept", prev, "skipped", path)
			return nil
		}
		d.paths[name] = path
		d.names = append(d.names, name)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning levels in %s: %w", root, err)
	}
	if len(d.names) == 0 {
		return nil, fmt.Errorf("no .map files in %s", root)
	}
	sort.Strings(d.names)
	return d, nil
}

// Names returns the board names in rotation order.
func (d *Dir) Names() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

// Load reads one board's file.
func (d *Dir) Load(name string) ([]byte, error) {
	path, ok := d.paths[name]
	if !ok {
		return nil, fmt.Errorf("unknown level: %s", name)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading level %s: %w", path, err)
	}
	return data, nil
}

// Single restricts a source to one named board; the rotation then loops
// that board forever.
func Single(src sim.Source, name string) (sim.Source, error) {
	for _, n := range src.Names() {
		if n == name {
			return single{src: src, name: name}, nil
		}
	}
	return nil, fmt.Errorf("unknown level: %s", name)
}

type single struct {
	src  sim.Source
	name string
}

func (s single) Names() []string { return []string{s.name} }

func (s single) Load(name string) ([]byte, error) { return s.src.Load(name) }
