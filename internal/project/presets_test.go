package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/yeutterg/compound-miter-calculator/internal/model"
)

func samplePresets() []model.Preset {
	return []model.Preset{
		model.NewPreset("Tall Hex Planter", model.VesselSpec{
			Sides: 6, SideAngle: 80, HeightMm: 400, DiameterMm: 280, ThicknessMm: 18,
			DrainageHeadroom: true,
		}),
		model.NewPreset("Shallow Bowl", model.VesselSpec{
			Sides: 12, SideAngle: 30, HeightMm: 80, DiameterMm: 300, ThicknessMm: 12,
		}),
	}
}

func TestSaveAndLoadPresets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.json")
	presets := samplePresets()

	if err := SavePresets(path, presets); err != nil {
		t.Fatalf("SavePresets failed: %v", err)
	}

	loaded, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("LoadPresets failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 presets, got %d", len(loaded))
	}
	if loaded[0].Name != "Tall Hex Planter" {
		t.Errorf("unexpected name %q", loaded[0].Name)
	}
	if loaded[0].Spec.Sides != 6 || loaded[0].Spec.SideAngle != 80 {
		t.Errorf("spec not preserved: %+v", loaded[0].Spec)
	}
	for _, p := range loaded {
		if p.BuiltIn {
			t.Errorf("%s: loaded presets must not be built-in", p.Name)
		}
	}
}

func TestLoadPresetsMissingFile(t *testing.T) {
	presets, err := LoadPresets(filepath.Join(t.TempDir(), "none.json"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if len(presets) != 0 {
		t.Errorf("expected empty slice, got %d", len(presets))
	}
}

func TestExportAndImportPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shared.json")
	original := samplePresets()[0]

	if err := ExportPreset(path, original); err != nil {
		t.Fatalf("ExportPreset failed: %v", err)
	}

	imported, err := ImportPreset(path)
	if err != nil {
		t.Fatalf("ImportPreset failed: %v", err)
	}
	if imported.Name != original.Name {
		t.Errorf("expected %q, got %q", original.Name, imported.Name)
	}
	if imported.Spec != original.Spec {
		t.Errorf("spec not preserved: %+v", imported.Spec)
	}
}

func TestImportPresetRejectsUnnamed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anon.json")
	if err := os.WriteFile(path, []byte(`{"id":"x","spec":{"sides":6,"side_angle":75}}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ImportPreset(path); err == nil {
		t.Error("expected an error for a preset with no name")
	}
}

func TestImportPresetRejectsInvalidSpec(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	data := `{"id":"x","name":"Bad","spec":{"sides":6,"side_angle":75,"height_mm":-5}}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ImportPreset(path); err == nil {
		t.Error("expected an error for negative dimensions")
	}
}
