// Package model defines the value types shared by the UI, persistence, and
// export layers. All calculation lives in internal/engine; this package only
// carries inputs to it and bundles its outputs.
package model

import "fmt"

// VesselSpec holds the user inputs describing one tapered polygon vessel.
// Dimensions are stored in the millimeter base regardless of the display
// unit system.
type VesselSpec struct {
	Sides       int     `json:"sides"`        // Polygon side count, 3-60
	SideAngle   float64 `json:"side_angle"`   // Wall angle from horizontal in degrees, 90 = vertical
	HeightMm    float64 `json:"height_mm"`    // Vertical height
	DiameterMm  float64 `json:"diameter_mm"`  // Nominal base diameter at the wall centerline
	ThicknessMm float64 `json:"thickness_mm"` // Stock thickness

	IncludeWaste     bool `json:"include_waste"`     // Add the 10% material allowance
	DrainageHeadroom bool `json:"drainage_headroom"` // Reserve 10% capacity for drainage
}

// DefaultVesselSpec returns the spec shown on first launch: a hexagonal
// planter in 18mm stock.
func DefaultVesselSpec() VesselSpec {
	return VesselSpec{
		Sides:       6,
		SideAngle:   75,
		HeightMm:    250,
		DiameterMm:  300,
		ThicknessMm: 18,
	}
}

// Validate checks the physical dimensions. The side count and angle bounds
// are the engine's domain and are enforced there.
func (v VesselSpec) Validate() error {
	if v.HeightMm < 0 {
		return fmt.Errorf("height must be non-negative, got %g mm", v.HeightMm)
	}
	if v.DiameterMm < 0 {
		return fmt.Errorf("diameter must be non-negative, got %g mm", v.DiameterMm)
	}
	if v.ThicknessMm < 0 {
		return fmt.Errorf("thickness must be non-negative, got %g mm", v.ThicknessMm)
	}
	return nil
}
