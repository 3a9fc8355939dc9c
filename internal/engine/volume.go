package engine

import "math"

// polygonArea returns the area of a regular polygon with the given
// vertex-to-vertex diameter, in square millimeters.
func polygonArea(diameterMm float64, numberOfSides int) float64 {
	r := diameterMm / 2
	return float64(numberOfSides) * r * r * math.Sin(2*math.Pi/float64(numberOfSides)) / 2
}

// InteriorVolume returns the interior capacity of the vessel in cubic
// millimeters, using the frustum formula between the interior base and top
// cross-sections. A true compound-angle polygon frustum is not exactly
// self-similar at every height, but the deviation is negligible at
// woodworking proportions.
//
// Degenerate inputs produce sentinel results rather than errors: material
// thicker than half the diameter leaves no cavity and returns 0, and a taper
// that closes before full height falls back to the cone formula.
func InteriorVolume(diameterMm, heightMm float64, numberOfSides int, sideAngle, thicknessMm float64) float64 {
	interiorBase := diameterMm - 2*thicknessMm
	if interiorBase <= 0 {
		return 0
	}

	diameterReduction := 2 * heightMm * math.Tan((90-sideAngle)*math.Pi/180)
	interiorTop := interiorBase - diameterReduction

	baseArea := polygonArea(interiorBase, numberOfSides)
	if interiorTop <= 0 {
		// Tapers to a point below the rim.
		return baseArea * heightMm / 3
	}

	topArea := polygonArea(interiorTop, numberOfSides)
	return heightMm / 3 * (baseArea + topArea + math.Sqrt(baseArea*topArea))
}

// ApplyDrainageReduction reserves 10% of capacity as drainage headroom for
// planter-style vessels. With apply false the volume passes through
// unchanged.
func ApplyDrainageReduction(volumeMm3 float64, apply bool) float64 {
	if apply {
		return volumeMm3 * 0.9
	}
	return volumeMm3
}
