// Package engine implements the compound-miter calculation core: the saw
// angle solver plus the stock, volume, and material estimators built around
// it. Every function is a pure closed-form mapping from inputs to outputs;
// there is no state anywhere in the package, so concurrent callers need no
// coordination.
//
// All lengths are millimeters and all angles are degrees unless a name says
// otherwise.
package engine

import (
	"errors"
	"fmt"
	"math"
)

// Input domain for the angle solver. Violations are hard errors, never
// clamped.
const (
	MinSides = 3
	MaxSides = 60

	MinSideAngle = 1.0
	MaxSideAngle = 90.0
)

// ErrInvalidGeometry reports an input outside the solver's domain.
var ErrInvalidGeometry = errors.New("invalid geometry")

// AngleResult holds the saw settings for one vessel. All values are degrees
// rounded to one decimal place.
type AngleResult struct {
	BladeTilt            float64 `json:"blade_tilt"`             // Bevel tilt measured from flat/horizontal
	BladeTiltComplement  float64 `json:"blade_tilt_complement"`  // 90 - BladeTilt, for saws referenced from vertical
	MiterGauge           float64 `json:"miter_gauge"`            // Gauge rotation, 90 = straight through
	MiterGaugeComplement float64 `json:"miter_gauge_complement"` // 90 - MiterGauge, rotation from square
	TrimAngle            float64 `json:"trim_angle"`             // Top/bottom edge trim; equals the side angle
	InteriorAngle        float64 `json:"interior_angle"`         // Interior angle of the polygon cross-section
	MiterAngle           float64 `json:"miter_angle"`            // Half the polygon corner angle
}

// CalculateAngles solves the compound-miter setup for a regular polygon
// vessel: numberOfSides is the polygon side count and sideAngle is the wall
// angle from horizontal (90 = vertical walls).
//
// At sideAngle = 90 the miter gauge degenerates to a straight-through 90
// setting; that is the expected result for vertical walls, not an error.
func CalculateAngles(numberOfSides int, sideAngle float64) (AngleResult, error) {
	if numberOfSides < MinSides || numberOfSides > MaxSides {
		return AngleResult{}, fmt.Errorf("%w: number of sides must be between %d and %d, got %d",
			ErrInvalidGeometry, MinSides, MaxSides, numberOfSides)
	}
	if sideAngle < MinSideAngle || sideAngle > MaxSideAngle {
		return AngleResult{}, fmt.Errorf("%w: side angle must be between %g and %g degrees, got %g",
			ErrInvalidGeometry, MinSideAngle, MaxSideAngle, sideAngle)
	}

	interior := float64(numberOfSides-2) * 180 / float64(numberOfSides)
	miter := (180 - interior) / 2

	miterRad := miter * math.Pi / 180
	sideRad := sideAngle * math.Pi / 180

	// Blade tilt measured from flat. The atan(tan*sin) formulation found in
	// some older charts is wrong; asin(sin*sin) matches the reference tables.
	tilt := math.Asin(math.Sin(miterRad)*math.Sin(sideRad)) * 180 / math.Pi

	// The gauge complement is the directly derivable quantity; the gauge
	// setting itself is read from square.
	gaugeComp := math.Atan(math.Cos(sideRad)*math.Tan(miterRad)) * 180 / math.Pi

	// Round the primary value of each pair first and derive the other from
	// it, so each pair sums to exactly 90.0 at one decimal. Rounding both
	// independently breaks the sum by 0.1 for some inputs.
	tiltRounded := round1(tilt)
	gaugeCompRounded := round1(gaugeComp)
	interiorRounded := round1(interior)

	return AngleResult{
		BladeTilt:            tiltRounded,
		BladeTiltComplement:  round1(90 - tiltRounded),
		MiterGauge:           round1(90 - gaugeCompRounded),
		MiterGaugeComplement: gaugeCompRounded,
		TrimAngle:            round1(sideAngle),
		InteriorAngle:        interiorRounded,
		MiterAngle:           round1((180 - interiorRounded) / 2),
	}, nil
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
