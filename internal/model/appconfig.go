package model

import "github.com/yeutterg/compound-miter-calculator/internal/units"

// AppConfig holds application-wide preferences persisted between sessions.
type AppConfig struct {
	UnitSystem units.System `json:"unit_system"` // "imperial" or "metric"
	LastSpec   VesselSpec   `json:"last_spec"`   // Restored on next launch
	Theme      string       `json:"theme"`       // "light", "dark", "system"

	RecentExports []string `json:"recent_exports"` // Paths of recently written files
}

// DefaultAppConfig returns the preferences used before any have been saved.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		UnitSystem:    units.Metric,
		LastSpec:      DefaultVesselSpec(),
		Theme:         "system",
		RecentExports: []string{},
	}
}

// RememberExport prepends a path to the recent-exports list, dropping
// duplicates and keeping at most ten entries.
func (c *AppConfig) RememberExport(path string) {
	recent := []string{path}
	for _, p := range c.RecentExports {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > 10 {
		recent = recent[:10]
	}
	c.RecentExports = recent
}
