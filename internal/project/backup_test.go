package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/yeutterg/compound-miter-calculator/internal/model"
	"github.com/yeutterg/compound-miter-calculator/internal/units"
)

func TestExportAndImportAllData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup", "all.json")

	cfg := model.DefaultAppConfig()
	cfg.UnitSystem = units.Imperial
	presets := samplePresets()

	if err := ExportAllData(path, cfg, presets); err != nil {
		t.Fatalf("ExportAllData failed: %v", err)
	}

	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("ImportAllData failed: %v", err)
	}
	if backup.Version == "" {
		t.Error("expected a version field")
	}
	if backup.CreatedAt == "" {
		t.Error("expected a creation timestamp")
	}
	if backup.Config.UnitSystem != units.Imperial {
		t.Errorf("config not preserved: %s", backup.Config.UnitSystem)
	}
	if len(backup.Presets) != 2 {
		t.Errorf("expected 2 presets, got %d", len(backup.Presets))
	}
}

func TestImportAllDataMissingVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"config":{}}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ImportAllData(path); err == nil {
		t.Error("expected an error for a backup without a version")
	}
}

func TestImportAllDataNormalizesNilSlices(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minimal.json")
	if err := os.WriteFile(path, []byte(`{"version":"1.0.0","config":{}}`), 0644); err != nil {
		t.Fatal(err)
	}
	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatal(err)
	}
	if backup.Presets == nil || backup.Config.RecentExports == nil {
		t.Error("nil slices should be normalized to empty")
	}
}
