package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

type StorageConfig struct {
	DataDir string `yaml:"dir"`
}

// Dir is the directory holding the user registry and every per-user
// store. Defaults to the XDG data home so flat files don't litter the
// working directory.
func (s *StorageConfig) Dir() string {
	if s.DataDir == "" {
		return filepath.Join(xdg.DataHome, "expense-tracker")
	}
	return s.DataDir
}
