package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Mavwarf/appicon/internal/paths"
)

const (
	DefaultRoot     = "."
	DefaultFont     = "arial.ttf"
	DefaultFontSize = 180
)

// Storage backends for the run history.
const (
	StorageFile   = "file"
	StorageSQLite = "sqlite"
)

// Resolution is one output variant: a resource directory label and the
// edge length of the icons written into it.
type Resolution struct {
	Label string `json:"label"`
	Size  int    `json:"size"`
}

// DefaultResolutions returns the Android launcher densities, smallest
// first. Each call returns a fresh slice.
func DefaultResolutions() []Resolution {
	return []Resolution{
		{"mipmap-mdpi", 48},
		{"mipmap-hdpi", 72},
		{"mipmap-xhdpi", 96},
		{"mipmap-xxhdpi", 144},
		{"mipmap-xxxhdpi", 192},
	}
}

// Config holds everything a run can be tuned with. The zero file (no
// config at all) reproduces the defaults above.
type Config struct {
	Root        string       `json:"root,omitempty"`
	Font        string       `json:"font,omitempty"`
	FontSize    float64      `json:"font_size,omitempty"`
	Resolutions []Resolution `json:"resolutions,omitempty"`
	Log         bool         `json:"log,omitempty"`
	Storage     string       `json:"storage,omitempty"` // "file" | "sqlite"
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Root:        DefaultRoot,
		Font:        DefaultFont,
		FontSize:    DefaultFontSize,
		Resolutions: DefaultResolutions(),
		Storage:     StorageFile,
	}
}

// UnmarshalJSON sets defaults then decodes the JSON structure.
// Go's json.Unmarshal merges into existing struct fields, so only
// values present in JSON override the defaults. A "resolutions" list
// replaces the default table entirely.
func (c *Config) UnmarshalJSON(data []byte) error {
	*c = Default()
	type Alias Config
	return json.Unmarshal(data, (*Alias)(c))
}

// Load finds and parses the config file. It tries, in order:
//  1. explicitPath (if non-empty; it must exist)
//  2. appicon-config.json in root
//  3. appicon-config.json in DataDir()
//
// When none exists the defaults are returned with an empty path.
func Load(explicitPath, root string) (Config, string, error) {
	if explicitPath != "" {
		cfg, err := readConfig(explicitPath)
		return cfg, explicitPath, err
	}
	if root == "" {
		root = DefaultRoot
	}
	for _, p := range []string{
		filepath.Join(root, paths.ConfigFileName),
		filepath.Join(paths.DataDir(), paths.ConfigFileName),
	} {
		if _, err := os.Stat(p); err == nil {
			cfg, err := readConfig(p)
			return cfg, p, err
		}
	}
	return Default(), "", nil
}

// Validate checks the settings a run depends on.
func Validate(cfg Config) error {
	if cfg.FontSize <= 0 {
		return fmt.Errorf("font_size must be positive, got %g", cfg.FontSize)
	}
	switch cfg.Storage {
	case StorageFile, StorageSQLite:
	default:
		return fmt.Errorf("unknown storage %q (want %q or %q)", cfg.Storage, StorageFile, StorageSQLite)
	}
	return ValidateResolutions(cfg.Resolutions)
}

// ValidateResolutions rejects an empty table, blank or path-like labels,
// non-positive sizes and duplicate labels.
func ValidateResolutions(res []Resolution) error {
	if len(res) == 0 {
		return fmt.Errorf("no resolutions configured")
	}
	seen := make(map[string]bool, len(res))
	for i, r := range res {
		switch {
		case strings.TrimSpace(r.Label) == "":
			return fmt.Errorf("resolution %d: empty label", i)
		case strings.ContainsAny(r.Label, `/\`) || r.Label == "." || r.Label == "..":
			return fmt.Errorf("resolution %q: label must be a single directory name", r.Label)
		case r.Size <= 0:
			return fmt.Errorf("resolution %q: size must be positive, got %d", r.Label, r.Size)
		case seen[r.Label]:
			return fmt.Errorf("resolution %q: duplicate label", r.Label)
		}
		seen[r.Label] = true
	}
	return nil
}

func readConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
