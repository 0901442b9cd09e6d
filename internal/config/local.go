package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LocalConfigFileName is the per-repository config file at the work tree root.
const LocalConfigFileName = ".gx.toml"

// LocalConfig holds per-repo overrides from .gx.toml.
// Pointer fields and empty strings mean "not set" (inherit from global).
type LocalConfig struct {
	Remote string    `toml:"remote"`
	Sync   LocalSync `toml:"sync"`
	Log    LogConfig `toml:"log"`
}

// LocalSync holds local sync overrides
type LocalSync struct {
	All   *bool `toml:"all"`
	Prune *bool `toml:"prune"`
}

// LoadLocal reads .gx.toml from the given work tree root.
// Returns nil (no error) if the file doesn't exist.
func LoadLocal(root string) (*LocalConfig, error) {
	path := filepath.Join(root, LocalConfigFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read local config %s: %w", path, err)
	}

	var local LocalConfig
	md, err := toml.Decode(string(data), &local)
	if err != nil {
		return nil, fmt.Errorf("failed to parse local config %s: %w", path, err)
	}
	if err := checkUndecoded(md, path); err != nil {
		return nil, err
	}
	if local.Remote != "" {
		if err := validateName(local.Remote, "remote"); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return &local, nil
}
