package model

import (
	"github.com/yeutterg/compound-miter-calculator/internal/engine"
)

// Summary bundles every derived quantity for one vessel spec, ready for
// display or export. It is recomputed from scratch whenever an input
// changes; the formulas are O(1), so there is nothing worth caching.
type Summary struct {
	Angles engine.AngleResult `json:"angles"`

	StockWidthMm  float64 `json:"stock_width_mm"`  // Minimum rip width per side piece
	PieceLengthMm float64 `json:"piece_length_mm"` // Slant length per side piece

	FlatsMm  float64 `json:"flats_mm"` // Outer distance across flats; meaningless when HasFlats is false
	HasFlats bool    `json:"has_flats"`

	Metrics engine.Metrics `json:"metrics"`

	VolumeMm3 float64 `json:"volume_mm3"` // Interior capacity, drainage headroom applied

	BoardFeet   float64 `json:"board_feet"`
	CubicMeters float64 `json:"cubic_meters"`
}

// Summarize recomputes all derived quantities for a spec. It fails only on
// out-of-domain angle inputs; degenerate dimensions flow through as the
// engine's zero/absent sentinels.
func Summarize(spec VesselSpec) (Summary, error) {
	angles, err := engine.CalculateAngles(spec.Sides, spec.SideAngle)
	if err != nil {
		return Summary{}, err
	}

	width := engine.StockWidth(spec.DiameterMm, spec.Sides, spec.SideAngle)
	flats, hasFlats := engine.DistanceAcrossFlats(spec.DiameterMm, spec.Sides, spec.ThicknessMm)

	volume := engine.InteriorVolume(spec.DiameterMm, spec.HeightMm, spec.Sides, spec.SideAngle, spec.ThicknessMm)
	volume = engine.ApplyDrainageReduction(volume, spec.DrainageHeadroom)

	return Summary{
		Angles:        angles,
		StockWidthMm:  width,
		PieceLengthMm: engine.PieceLength(spec.HeightMm, spec.SideAngle),
		FlatsMm:       flats,
		HasFlats:      hasFlats,
		Metrics:       engine.VesselMetrics(spec.DiameterMm, spec.HeightMm, spec.ThicknessMm, spec.SideAngle),
		VolumeMm3:     volume,
		BoardFeet:     engine.BoardFeet(spec.HeightMm, width, spec.ThicknessMm, spec.Sides, spec.SideAngle, spec.IncludeWaste),
		CubicMeters:   engine.CubicMeters(spec.HeightMm, width, spec.ThicknessMm, spec.Sides, spec.SideAngle, spec.IncludeWaste),
	}, nil
}
