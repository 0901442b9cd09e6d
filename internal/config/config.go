package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// SyncConfig holds defaults for "gx sync"
type SyncConfig struct {
	All   bool `toml:"all"`
	Prune bool `toml:"prune"`
}

// LogConfig holds the pretty formats of the log operations
type LogConfig struct {
	GraphFormat  string `toml:"graph_format"`
	BranchFormat string `toml:"branch_format"`
}

// InstallConfig controls "gx install"
type InstallConfig struct {
	Dir    string `toml:"dir"`
	Prefix string `toml:"prefix"`
}

// DebugConfig configures the optional debug log file
type DebugConfig struct {
	LogFile    string `toml:"log_file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
}

// Config holds the gx configuration
type Config struct {
	Remote  string        `toml:"remote"`
	Sync    SyncConfig    `toml:"sync"`
	Log     LogConfig     `toml:"log"`
	Install InstallConfig `toml:"install"`
	Debug   DebugConfig   `toml:"debug"`
}

// Default log formats
const (
	DefaultGraphFormat  = "%C(auto)%h%d %s %C(dim)%an, %ar%C(reset)"
	DefaultBranchFormat = "%C(auto)%h %s %C(dim)%an, %ar%C(reset)"
)

// Default returns the default configuration
func Default() Config {
	return Config{
		Remote: "origin",
		Log: LogConfig{
			GraphFormat:  DefaultGraphFormat,
			BranchFormat: DefaultBranchFormat,
		},
		Install: InstallConfig{
			Dir: "gx",
		},
		Debug: DebugConfig{
			MaxSizeMB:  5,
			MaxBackups: 3,
		},
	}
}

type ctxKey struct{}

// WithConfig attaches a config to the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext retrieves the config from context.
// Returns the defaults if none is attached.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok {
		return cfg
	}
	cfg := Default()
	return &cfg
}

// configPath returns the path to the global config file
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gx", "config.toml"), nil
}

// Load reads config from ~/.config/gx/config.toml and applies env overrides.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads the global config from path.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}
	if err == nil {
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return Default(), fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		if err := checkUndecoded(md, path); err != nil {
			return Default(), err
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return Default(), err
	}
	if err := cfg.validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}

	if cfg.Debug.LogFile != "" {
		expanded, err := expandPath(cfg.Debug.LogFile)
		if err != nil {
			return Default(), fmt.Errorf("expand debug.log_file: %w", err)
		}
		cfg.Debug.LogFile = expanded
	}

	return cfg, nil
}

// applyEnvOverrides applies GX_* environment variables.
func applyEnvOverrides(cfg *Config) error {
	if remote := os.Getenv("GX_REMOTE"); remote != "" {
		if err := validateName(remote, "GX_REMOTE"); err != nil {
			return err
		}
		cfg.Remote = remote
	}
	return nil
}

func (c *Config) validate() error {
	if err := validateName(c.Remote, "remote"); err != nil {
		return err
	}
	if err := validateName(c.Install.Dir, "install.dir"); err != nil {
		return err
	}
	if strings.ContainsAny(c.Install.Prefix, " \t/\\\"'") {
		return fmt.Errorf("install.prefix must not contain whitespace, quotes or slashes, got: %q", c.Install.Prefix)
	}
	if err := ValidatePath(c.Debug.LogFile, "debug.log_file"); err != nil {
		return err
	}
	if c.Debug.MaxSizeMB < 0 || c.Debug.MaxBackups < 0 {
		return fmt.Errorf("debug.max_size_mb and debug.max_backups must not be negative")
	}
	return nil
}

// validateName checks a single path segment such as a remote name.
func validateName(value, field string) error {
	if value == "" {
		return fmt.Errorf("%s must not be empty", field)
	}
	if strings.ContainsAny(value, " \t\n/\\") || value == "." || value == ".." {
		return fmt.Errorf("%s must be a single name without whitespace or slashes, got: %q", field, value)
	}
	return nil
}

// checkUndecoded rejects unknown keys so typos don't go unnoticed.
func checkUndecoded(md toml.MetaData, path string) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}
	sort.Strings(keys)
	return fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
}

// ValidatePath checks that the path is absolute or starts with ~
// Returns error if path is relative (like "." or "..")
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil // Empty is allowed (means not configured)
	}
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) (string, error) {
	if path == "~" {
		return os.UserHomeDir()
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}
