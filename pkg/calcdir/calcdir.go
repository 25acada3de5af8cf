// Package calcdir encapsulates path knowledge for the .moodcalc/ settings
// directory. It provides a Dir value object with accessors for the config
// file and helpers to bootstrap the directory from scratch.
package calcdir

import (
	"os"
	"path/filepath"
)

// Dir is a value object that resolves paths within a .moodcalc/ directory.
type Dir struct {
	root string
}

// New creates a Dir rooted at the given path. The path is converted to an
// absolute path. No I/O is performed; use EnsureStructure to create the
// directory layout.
func New(root string) Dir {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}

	return Dir{root: abs}
}

// Root returns the absolute path to the .moodcalc/ directory.
func (d Dir) Root() string { return d.root }

// ConfigPath returns the path to the main config file.
func (d Dir) ConfigPath() string { return filepath.Join(d.root, "config.yaml") }

// Exists reports whether the .moodcalc/ root directory exists on disk.
func (d Dir) Exists() bool {
	info, err := os.Stat(d.root)

	return err == nil && info.IsDir()
}
