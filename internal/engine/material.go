package engine

import "math"

const (
	mmPerInch = 25.4

	// 1 board foot = 12" x 12" x 1" = 144 cubic inches.
	cubicInchesPerBoardFoot = 144

	// Flat 10% allowance for kerf, squaring, and mistakes.
	wasteFactor = 1.1
)

// PieceLength returns the slant length of one side piece in millimeters: the
// hypotenuse given the vessel's vertical height and the wall's angle from
// horizontal.
func PieceLength(heightMm, sideAngle float64) float64 {
	return heightMm / math.Sin(sideAngle*math.Pi/180)
}

// BoardFeet estimates the stock needed to cut all side pieces, in board
// feet. includeWaste adds the flat 10% allowance.
func BoardFeet(heightMm, stockWidthMm, thicknessMm float64, numberOfSides int, sideAngle float64, includeWaste bool) float64 {
	lengthIn := PieceLength(heightMm, sideAngle) / mmPerInch
	widthIn := stockWidthMm / mmPerInch
	thicknessIn := thicknessMm / mmPerInch

	bf := lengthIn * widthIn * thicknessIn * float64(numberOfSides) / cubicInchesPerBoardFoot
	if includeWaste {
		bf *= wasteFactor
	}
	return bf
}

// CubicMeters is the metric counterpart of BoardFeet. It uses the same
// piece-length derivation so the two estimates always describe the same
// pieces, only in different units.
func CubicMeters(heightMm, stockWidthMm, thicknessMm float64, numberOfSides int, sideAngle float64, includeWaste bool) float64 {
	mm3 := PieceLength(heightMm, sideAngle) * stockWidthMm * thicknessMm * float64(numberOfSides)
	m3 := mm3 / 1e9
	if includeWaste {
		m3 *= wasteFactor
	}
	return m3
}
