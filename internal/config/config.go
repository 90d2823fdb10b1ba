// Package config loads the window manager configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultDir is relative to the home directory.
const DefaultDir = ".config/cwm"

const DefaultFile = "cwmrc"

type Driver interface {
	Exists() (bool, error)
	Read() (Config, error)
}

func NewStore(driver Driver) Store {
	return Store{
		driver: driver,
	}
}

type Store struct {
	driver Driver
}

// GetConfig reads the configuration. A missing file gives the defaults.
func (p *Store) GetConfig() (Config, error) {
	return p.driver.Read()
}

// Exists reports whether the configuration file is present.
func (p *Store) Exists() (bool, error) {
	return p.driver.Exists()
}

// NewProvider creates the directory of filePath and returns a store reading it.
// Files ending in .yaml or .yml are YAML, everything else is key=value lines.
func NewProvider(filePath string) (Store, error) {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return Store{}, fmt.Errorf("create config directory: %w", err)
	}

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return NewStore(NewYAML(filePath)), nil
	default:
		return NewStore(NewKeyValue(filePath)), nil
	}
}

// DefaultPath returns $HOME/.config/cwm/cwmrc.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultDir, DefaultFile), nil
}
