package model

import (
	"testing"

	"github.com/yeutterg/compound-miter-calculator/internal/units"
)

func TestDefaultAppConfig(t *testing.T) {
	cfg := DefaultAppConfig()
	if cfg.UnitSystem != units.Metric {
		t.Errorf("expected metric default, got %s", cfg.UnitSystem)
	}
	if cfg.Theme != "system" {
		t.Errorf("expected system theme, got %s", cfg.Theme)
	}
	if cfg.RecentExports == nil {
		t.Error("RecentExports should never be nil")
	}
	if cfg.LastSpec != DefaultVesselSpec() {
		t.Error("last spec should start at the default vessel")
	}
}

func TestRememberExport(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.RememberExport("/tmp/a.pdf")
	cfg.RememberExport("/tmp/b.pdf")
	cfg.RememberExport("/tmp/a.pdf") // re-export moves to front, no duplicate

	if len(cfg.RecentExports) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(cfg.RecentExports))
	}
	if cfg.RecentExports[0] != "/tmp/a.pdf" {
		t.Errorf("most recent export should be first, got %q", cfg.RecentExports[0])
	}
}

func TestRememberExportCapsAtTen(t *testing.T) {
	cfg := DefaultAppConfig()
	for i := 0; i < 15; i++ {
		cfg.RememberExport(string(rune('a'+i)) + ".pdf")
	}
	if len(cfg.RecentExports) != 10 {
		t.Errorf("expected cap of 10, got %d", len(cfg.RecentExports))
	}
}
