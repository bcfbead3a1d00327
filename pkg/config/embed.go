package config

import (
	_ "embed"
	"fmt"
	"os"
)

//go:embed tuning.yaml
var defaultTuning []byte

// DefaultDocument returns the embedded tuning document.
func DefaultDocument() []byte {
	return append([]byte(nil), defaultTuning...)
}

// Load returns the embedded tuning with the file at path laid over it.
// An empty path yields the defaults.
func Load(path string) (Tuning, error) {
	t := Default()
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("config: load %s: %w", path, err)
	}
	out, err := Overlay(t, data)
	if err != nil {
		return t, fmt.Errorf("config: %s: %w", path, err)
	}
	return out, nil
}
