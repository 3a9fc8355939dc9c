package engine

import "math"

// StockWidth returns the minimum rip width of stock needed for one side
// piece, accounting for the polygon segment angle and the width expansion
// introduced by the bevel.
//
// The width grows without bound as sideAngle approaches 90 (vertical walls
// have no horizontal projection to rip from); at exactly 90 the IEEE cosine
// is a hair above zero and the result is a huge finite value. The engine
// does not clamp this -- presenting it sensibly is the caller's concern.
func StockWidth(diameterMm float64, numberOfSides int, sideAngle float64) float64 {
	segment := math.Sin(math.Pi / float64(numberOfSides))
	return diameterMm * segment / math.Cos(sideAngle*math.Pi/180)
}

// HasParallelSides reports whether a regular polygon with the given side
// count has parallel opposite faces. Only even-sided polygons do.
func HasParallelSides(numberOfSides int) bool {
	return numberOfSides%2 == 0
}

// DistanceAcrossFlats returns the outer clearance between two parallel faces
// of the vessel, wall thickness included -- the measurement that decides
// whether the piece fits through a planer or drum sander opening.
//
// ok is false for odd side counts: without parallel opposite faces the
// measurement is geometrically undefined. That is a valid no-answer, not an
// error.
func DistanceAcrossFlats(diameterMm float64, numberOfSides int, thicknessMm float64) (mm float64, ok bool) {
	if !HasParallelSides(numberOfSides) {
		return 0, false
	}
	outerDiameter := diameterMm + 2*thicknessMm
	return outerDiameter * math.Cos(math.Pi/float64(numberOfSides)), true
}
