package engine

import (
	"math"
	"testing"
)

func TestVesselMetricsTaperedWalls(t *testing.T) {
	m := VesselMetrics(300, 200, 18, 75)

	if m.OuterBottomRadius != 150+18 {
		t.Errorf("outer bottom radius: got %f", m.OuterBottomRadius)
	}
	if m.InnerBottomRadius != 150-18 {
		t.Errorf("inner bottom radius: got %f", m.InnerBottomRadius)
	}
	if m.OuterTopRadius >= m.OuterBottomRadius {
		t.Error("sloped walls must shrink the top radius")
	}
	if m.InnerTopRadius > m.InnerBottomRadius {
		t.Error("inner top radius must not exceed inner bottom radius")
	}
	if m.InnerBottomRadius > m.OuterBottomRadius || m.InnerTopRadius > m.OuterTopRadius {
		t.Error("inner radii must not exceed outer radii")
	}
	if m.WallThickness != 18 {
		t.Errorf("wall thickness: got %f", m.WallThickness)
	}
}

func TestVesselMetricsVerticalWalls(t *testing.T) {
	m := VesselMetrics(300, 200, 18, 90)
	if math.Abs(m.OuterTopRadius-m.OuterBottomRadius) > 1e-9 {
		t.Errorf("vertical walls should not taper: %f vs %f", m.OuterTopRadius, m.OuterBottomRadius)
	}
}

func TestVesselMetricsClampedAtZero(t *testing.T) {
	// Extreme taper collapses the top radii to zero rather than going
	// negative.
	m := VesselMetrics(100, 1000, 10, 30)
	if m.OuterTopRadius != 0 || m.InnerTopRadius != 0 {
		t.Errorf("expected clamped top radii, got %f and %f", m.OuterTopRadius, m.InnerTopRadius)
	}
	// Over-thick walls likewise clamp the inner radius.
	m = VesselMetrics(100, 100, 80, 85)
	if m.InnerBottomRadius != 0 {
		t.Errorf("expected zero inner radius, got %f", m.InnerBottomRadius)
	}
}
