package calcdir

import (
	"fmt"
	"os"
)

// EnsureStructure creates the .moodcalc/ root directory if it is missing.
// It is safe to call multiple times.
func EnsureStructure(d Dir) error {
	if err := os.MkdirAll(d.Root(), 0o750); err != nil {
		return fmt.Errorf("calcdir: create root: %w", err)
	}

	return nil
}

// BootstrapWithConfig creates the directory structure and writes the given
// config YAML. An existing config file is never overwritten.
func BootstrapWithConfig(d Dir, configYAML []byte) error {
	if err := EnsureStructure(d); err != nil {
		return err
	}

	if _, err := os.Stat(d.ConfigPath()); err == nil {
		return fmt.Errorf("calcdir: config already exists at %s", d.ConfigPath())
	}

	if err := os.WriteFile(d.ConfigPath(), configYAML, 0o600); err != nil {
		return fmt.Errorf("calcdir: write config: %w", err)
	}

	return nil
}
