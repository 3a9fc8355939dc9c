package project

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/yeutterg/compound-miter-calculator/internal/model"
)

// DefaultPresetsPath returns the default file path for custom presets.
func DefaultPresetsPath() string {
	return filepath.Join(DefaultConfigDir(), "presets.json")
}

// SavePresets saves custom presets to a JSON file.
func SavePresets(path string, presets []model.Preset) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(presets, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadPresets loads custom presets from a JSON file.
// Returns an empty slice if the file does not exist.
func LoadPresets(path string) ([]model.Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Preset{}, nil
		}
		return nil, err
	}

	var presets []model.Preset
	if err := json.Unmarshal(data, &presets); err != nil {
		return nil, err
	}

	// Loaded presets are user data, never built-ins
	for i := range presets {
		presets[i].BuiltIn = false
	}
	return presets, nil
}

// ExportPreset exports a single preset to a JSON file for sharing.
func ExportPreset(path string, preset model.Preset) error {
	preset.BuiltIn = false
	data, err := json.MarshalIndent(preset, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ImportPreset imports a single preset from a JSON file.
func ImportPreset(path string) (model.Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Preset{}, err
	}

	var preset model.Preset
	if err := json.Unmarshal(data, &preset); err != nil {
		return model.Preset{}, err
	}

	preset.BuiltIn = false
	if preset.Name == "" {
		return model.Preset{}, errors.New("imported preset has no name")
	}
	if err := preset.Spec.Validate(); err != nil {
		return model.Preset{}, err
	}
	return preset, nil
}
