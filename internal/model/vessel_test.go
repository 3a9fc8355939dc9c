package model

import (
	"strings"
	"testing"
)

func TestDefaultVesselSpecIsValid(t *testing.T) {
	spec := DefaultVesselSpec()
	if err := spec.Validate(); err != nil {
		t.Fatalf("default spec should validate: %v", err)
	}
	if _, err := Summarize(spec); err != nil {
		t.Fatalf("default spec should summarize: %v", err)
	}
}

func TestValidateRejectsNegativeDimensions(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*VesselSpec)
		want   string
	}{
		{"height", func(v *VesselSpec) { v.HeightMm = -1 }, "height"},
		{"diameter", func(v *VesselSpec) { v.DiameterMm = -10 }, "diameter"},
		{"thickness", func(v *VesselSpec) { v.ThicknessMm = -0.5 }, "thickness"},
	}
	for _, tc := range cases {
		spec := DefaultVesselSpec()
		tc.mutate(&spec)
		err := spec.Validate()
		if err == nil {
			t.Errorf("%s: expected an error", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%s: error %q should name the field", tc.name, err)
		}
	}
}

func TestValidateAllowsZeroDimensions(t *testing.T) {
	// Zero dimensions are degenerate but not invalid; the engine returns
	// sentinel results for them.
	spec := VesselSpec{Sides: 6, SideAngle: 75}
	if err := spec.Validate(); err != nil {
		t.Fatalf("zero dimensions should validate: %v", err)
	}
}
