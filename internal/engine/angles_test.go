package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateAngles_SquareAt70(t *testing.T) {
	res, err := CalculateAngles(4, 70)
	require.NoError(t, err)

	assert.InDelta(t, 41.6, res.BladeTilt, 1e-9)
	assert.InDelta(t, 48.4, res.BladeTiltComplement, 1e-9)
	assert.InDelta(t, 71.1, res.MiterGauge, 1e-9)
	assert.InDelta(t, 18.9, res.MiterGaugeComplement, 1e-9)
	assert.InDelta(t, 70.0, res.TrimAngle, 1e-9)
	assert.InDelta(t, 90.0, res.InteriorAngle, 1e-9)
	assert.InDelta(t, 45.0, res.MiterAngle, 1e-9)
}

func TestCalculateAngles_TriangleAt45(t *testing.T) {
	res, err := CalculateAngles(3, 45)
	require.NoError(t, err)

	assert.InDelta(t, 60.0, res.MiterAngle, 1e-9)
	assert.InDelta(t, 37.8, res.BladeTilt, 1e-9) // asin(sin60 * sin45) = 37.76
	assert.InDelta(t, 39.2, res.MiterGauge, 1e-9)
}

func TestCalculateAngles_VerticalWallsDegenerate(t *testing.T) {
	// Vertical walls: the gauge reads straight through at 90, blade tilt is
	// the plain miter bevel.
	res, err := CalculateAngles(6, 90)
	require.NoError(t, err)

	assert.InDelta(t, 30.0, res.BladeTilt, 1e-9) // asin(sin30 * sin90) = 30 exactly
	assert.InDelta(t, 0.0, res.MiterGaugeComplement, 1e-9)
	assert.InDelta(t, 90.0, res.MiterGauge, 1e-9)
}

func TestCalculateAngles_InteriorAngleFormula(t *testing.T) {
	cases := []struct {
		sides    int
		interior float64
	}{
		{3, 60},
		{4, 90},
		{6, 120},
		{8, 135},
		{60, 174},
	}
	for _, tc := range cases {
		res, err := CalculateAngles(tc.sides, 45)
		require.NoError(t, err)
		assert.InDelta(t, tc.interior, res.InteriorAngle, 1e-9, "sides=%d", tc.sides)
		assert.InDelta(t, (180-tc.interior)/2, res.MiterAngle, 0.05, "sides=%d", tc.sides)
	}
}

func TestCalculateAngles_ComplementPairsSumToNinety(t *testing.T) {
	sides := []int{3, 4, 5, 6, 8, 10, 12, 20, 30, 60}
	angles := []float64{1, 10, 20, 30, 45, 60, 75, 85, 90}

	for _, n := range sides {
		for _, a := range angles {
			res, err := CalculateAngles(n, a)
			require.NoError(t, err, "sides=%d angle=%g", n, a)

			assert.InDelta(t, 90.0, res.BladeTilt+res.BladeTiltComplement, 1e-9,
				"blade pair, sides=%d angle=%g", n, a)
			assert.InDelta(t, 90.0, res.MiterGauge+res.MiterGaugeComplement, 1e-9,
				"gauge pair, sides=%d angle=%g", n, a)
			assert.InDelta(t, a, res.TrimAngle, 1e-9, "trim, sides=%d angle=%g", n, a)
		}
	}
}

func TestCalculateAngles_AllFieldsFiniteInRange(t *testing.T) {
	sides := []int{3, 4, 5, 6, 8, 10, 12, 20, 30, 60}
	angles := []float64{1, 10, 20, 30, 45, 60, 75, 85, 90}

	for _, n := range sides {
		for _, a := range angles {
			res, err := CalculateAngles(n, a)
			require.NoError(t, err)

			fields := []float64{
				res.BladeTilt, res.BladeTiltComplement,
				res.MiterGauge, res.MiterGaugeComplement,
				res.TrimAngle, res.MiterAngle,
			}
			for i, v := range fields {
				assert.False(t, math.IsNaN(v) || math.IsInf(v, 0),
					"field %d not finite, sides=%d angle=%g", i, n, a)
				assert.GreaterOrEqual(t, v, 0.0, "field %d, sides=%d angle=%g", i, n, a)
				assert.LessOrEqual(t, v, 90.0, "field %d, sides=%d angle=%g", i, n, a)
			}
			assert.False(t, math.IsNaN(res.InteriorAngle))
			assert.LessOrEqual(t, res.InteriorAngle, 180.0)
		}
	}
}

func TestCalculateAngles_RejectsOutOfRangeSides(t *testing.T) {
	for _, n := range []int{2, 61, 0, -3} {
		_, err := CalculateAngles(n, 45)
		require.Error(t, err, "sides=%d", n)
		assert.ErrorIs(t, err, ErrInvalidGeometry)
		assert.Contains(t, err.Error(), "between 3 and 60")
	}
}

func TestCalculateAngles_RejectsOutOfRangeSideAngle(t *testing.T) {
	for _, a := range []float64{0, 91, -10, 180} {
		_, err := CalculateAngles(4, a)
		require.Error(t, err, "angle=%g", a)
		assert.ErrorIs(t, err, ErrInvalidGeometry)
		assert.Contains(t, err.Error(), "between 1 and 90 degrees")
	}
}
