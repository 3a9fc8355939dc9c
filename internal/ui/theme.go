// Package ui provides the Compound Miter Calculator application UI.
//
// This file defines a custom compact Fyne theme for a dense workshop layout.

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// MiterTheme wraps the default Fyne theme with compact sizing overrides
// so the angle readouts and input panels fit a small shop laptop screen.
type MiterTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
}

// NewMiterTheme creates a new MiterTheme with the system default variant.
func NewMiterTheme() *MiterTheme {
	return &MiterTheme{
		base:    theme.DefaultTheme(),
		variant: 0, // system default
	}
}

// NewMiterThemeWithVariant creates a MiterTheme with a specific light/dark variant.
func NewMiterThemeWithVariant(variant fyne.ThemeVariant) *MiterTheme {
	return &MiterTheme{
		base:    theme.DefaultTheme(),
		variant: variant,
	}
}

// SetVariant updates the theme variant (light/dark/system).
func (t *MiterTheme) SetVariant(variant fyne.ThemeVariant) {
	t.variant = variant
}

// Color delegates to the base theme with the stored variant.
func (t *MiterTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return t.base.Color(name, t.variant)
}

// Font delegates to the base theme.
func (t *MiterTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon delegates to the base theme.
func (t *MiterTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns compact sizing overrides for a dense layout.
func (t *MiterTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 12
	case theme.SizeNameCaptionText:
		return 9
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameInlineIcon:
		return 16
	default:
		return t.base.Size(name)
	}
}
