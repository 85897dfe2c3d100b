package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader loads level descriptors from JSON files using the fs.FS
// interface, so levels can come from disk or an embedded filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a new level loader from a filesystem path.
func NewLoader(basePath string) *Loader {
	return &Loader{fsys: os.DirFS(basePath)}
}

// NewFSLoader creates a new level loader from fs.FS.
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadLevel loads the descriptor for the given 1-based level number.
func (l *Loader) LoadLevel(n int) (*LevelConfig, error) {
	path := fmt.Sprintf("level%d.json", n)
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level %d: %w", n, err)
	}

	var cfg LevelConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse level %d: %w", n, err)
	}

	return &cfg, nil
}

// HasLevel reports whether a descriptor exists for the given level
// number, without parsing it.
func (l *Loader) HasLevel(n int) bool {
	path := fmt.Sprintf("level%d.json", n)
	_, err := fs.Stat(l.fsys, path)
	return err == nil
}

// LoadTuning reads gameplay constants from a YAML file, layered over
// the built-in defaults. An empty path returns the defaults unchanged.
func LoadTuning(path string) (*Tuning, error) {
	cfg := DefaultTuning()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse tuning %s: %w", path, err)
	}

	return cfg, nil
}
