package model

import "github.com/google/uuid"

// Preset is a named, saved vessel specification.
type Preset struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Spec    VesselSpec `json:"spec"`
	BuiltIn bool       `json:"-"` // Built-ins are compiled in, never persisted
}

// NewPreset creates a custom preset with a fresh short ID.
func NewPreset(name string, spec VesselSpec) Preset {
	return Preset{
		ID:   uuid.New().String()[:8],
		Name: name,
		Spec: spec,
	}
}

// BuiltInPresets are the starting points offered in the Presets menu.
var BuiltInPresets = []Preset{
	{
		ID:      "hex-planter",
		Name:    "Hex Planter",
		BuiltIn: true,
		Spec: VesselSpec{
			Sides: 6, SideAngle: 75,
			HeightMm: 250, DiameterMm: 300, ThicknessMm: 18,
			DrainageHeadroom: true,
		},
	},
	{
		ID:      "octagon-bucket",
		Name:    "Octagon Bucket",
		BuiltIn: true,
		Spec: VesselSpec{
			Sides: 8, SideAngle: 80,
			HeightMm: 300, DiameterMm: 280, ThicknessMm: 12,
		},
	},
	{
		ID:      "square-tray",
		Name:    "Square Serving Tray",
		BuiltIn: true,
		Spec: VesselSpec{
			Sides: 4, SideAngle: 45,
			HeightMm: 60, DiameterMm: 350, ThicknessMm: 10,
		},
	},
}

// FindPreset looks a preset up by ID.
func FindPreset(presets []Preset, id string) (Preset, bool) {
	for _, p := range presets {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}
