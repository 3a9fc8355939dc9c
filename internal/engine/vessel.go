package engine

import "math"

// Metrics holds the derived radial dimensions of a vessel. All values are
// millimeters and clamped at zero; inner radii never exceed their outer
// counterparts.
//
// The diameter passed in is the nominal diameter measured at the wall
// centerline of the base: walls extend one thickness outward for the outer
// radii and one thickness inward for the interior cavity.
type Metrics struct {
	OuterBottomRadius float64 `json:"outer_bottom_radius"` // mm
	OuterTopRadius    float64 `json:"outer_top_radius"`    // mm
	InnerBottomRadius float64 `json:"inner_bottom_radius"` // mm
	InnerTopRadius    float64 `json:"inner_top_radius"`    // mm
	WallThickness     float64 `json:"wall_thickness"`      // mm
}

// VesselMetrics derives the four radii describing the vessel's taper. With
// sideAngle below 90 the walls lean inward and the top radii shrink by the
// height's horizontal projection.
func VesselMetrics(diameterMm, heightMm, thicknessMm, sideAngle float64) Metrics {
	taper := heightMm * math.Tan((90-sideAngle)*math.Pi/180)
	outerBottom := diameterMm/2 + thicknessMm
	innerBottom := diameterMm/2 - thicknessMm

	return Metrics{
		OuterBottomRadius: clampZero(outerBottom),
		OuterTopRadius:    clampZero(outerBottom - taper),
		InnerBottomRadius: clampZero(innerBottom),
		InnerTopRadius:    clampZero(innerBottom - taper),
		WallThickness:     thicknessMm,
	}
}

func clampZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
