package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/yeutterg/compound-miter-calculator/internal/export"
	"github.com/yeutterg/compound-miter-calculator/internal/model"
	"github.com/yeutterg/compound-miter-calculator/internal/project"
	"github.com/yeutterg/compound-miter-calculator/internal/ui/widgets"
	"github.com/yeutterg/compound-miter-calculator/internal/units"
)

// App holds all application state and UI references.
type App struct {
	window  fyne.Window
	config  model.AppConfig
	spec    model.VesselSpec
	presets []model.Preset
	history *History
	tabs    *container.AppTabs

	// UI references for dynamic updates
	sidesSlider    *widget.Slider
	sidesValue     *widget.Label
	angleSlider    *widget.Slider
	angleValue     *widget.Label
	heightEntry    *widget.Entry
	diameterEntry  *widget.Entry
	thicknessEntry *widget.Entry
	wasteCheck     *widget.Check
	drainageCheck  *widget.Check

	vesselCanvas      *widgets.VesselCanvas
	sawContainer      *fyne.Container
	stockContainer    *fyne.Container
	capacityContainer *fyne.Container
	errorLabel        *widget.Label
}

func NewApp(window fyne.Window) *App {
	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		config = model.DefaultAppConfig()
	}
	presets, err := project.LoadPresets(project.DefaultPresetsPath())
	if err != nil {
		presets = nil
	}

	return &App{
		window:  window,
		config:  config,
		spec:    config.LastSpec,
		presets: presets,
		history: NewHistory(),
	}
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Export Setup Sheet (PDF)...", func() {
			a.exportSetupSheet()
		}),
		fyne.NewMenuItem("Export Angle Chart (Excel)...", func() {
			a.exportAngleChart()
		}),
		fyne.NewMenuItem("Export Cutting Template (DXF)...", func() {
			a.exportTemplate()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Backup All Data...", func() {
			a.exportBackup()
		}),
		fyne.NewMenuItem("Restore from Backup...", func() {
			a.importBackup()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", func() {
			a.undo()
		}),
		fyne.NewMenuItem("Redo", func() {
			a.redo()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Reset to Defaults", func() {
			a.pushHistory("Reset")
			a.applySpec(model.DefaultVesselSpec())
		}),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Metric Units", func() {
			a.setUnitSystem(units.Metric)
		}),
		fyne.NewMenuItem("Imperial Units", func() {
			a.setUnitSystem(units.Imperial)
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	mainMenu := fyne.NewMainMenu(
		fileMenu,
		editMenu,
		viewMenu,
		a.buildPresetsMenu(),
		helpMenu,
	)
	a.window.SetMainMenu(mainMenu)

	a.window.SetCloseIntercept(func() {
		a.saveConfig()
		a.window.Close()
	})
}

func (a *App) buildPresetsMenu() *fyne.Menu {
	var items []*fyne.MenuItem
	for _, p := range model.BuiltInPresets {
		preset := p // capture
		items = append(items, fyne.NewMenuItem(preset.Name, func() {
			a.pushHistory("Apply Preset")
			a.applySpec(preset.Spec)
		}))
	}
	if len(a.presets) > 0 {
		items = append(items, fyne.NewMenuItemSeparator())
		for _, p := range a.presets {
			preset := p
			items = append(items, fyne.NewMenuItem(preset.Name, func() {
				a.pushHistory("Apply Preset")
				a.applySpec(preset.Spec)
			}))
		}
	}
	items = append(items,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Save Current as Preset...", func() {
			a.showSavePresetDialog()
		}),
		fyne.NewMenuItem("Export Preset File...", func() {
			a.exportPresetFile()
		}),
		fyne.NewMenuItem("Import Preset File...", func() {
			a.importPresetFile()
		}),
	)
	return fyne.NewMenu("Presets", items...)
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About Compound Miter Calculator",
		"Compound Miter Calculator\n\n"+
			"Table saw blade tilt and miter gauge angles for\n"+
			"multi-sided tapered vessels, with capacity and\n"+
			"material estimates.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	vesselTab := container.NewTabItem("Vessel", a.buildVesselPanel())
	sawTab := container.NewTabItem("Saw Setup", a.buildSawPanel())
	capacityTab := container.NewTabItem("Capacity & Material", a.buildCapacityPanel())

	a.tabs = container.NewAppTabs(vesselTab, sawTab, capacityTab)
	a.tabs.SetTabLocation(container.TabLocationTop)

	a.recompute()
	return a.tabs
}

// ─── Vessel Panel ──────────────────────────────────────────

func (a *App) buildVesselPanel() fyne.CanvasObject {
	a.sidesValue = widget.NewLabel(fmt.Sprintf("%d", a.spec.Sides))
	a.sidesSlider = widget.NewSlider(3, 60)
	a.sidesSlider.Step = 1
	a.sidesSlider.Value = float64(a.spec.Sides)
	a.sidesSlider.OnChanged = func(v float64) {
		n := int(v)
		if n == a.spec.Sides {
			return
		}
		a.pushHistory("Change Sides")
		a.spec.Sides = n
		a.sidesValue.SetText(fmt.Sprintf("%d", n))
		a.recompute()
	}

	a.angleValue = widget.NewLabel(fmt.Sprintf("%.1f°", a.spec.SideAngle))
	a.angleSlider = widget.NewSlider(1, 90)
	a.angleSlider.Step = 0.5
	a.angleSlider.Value = a.spec.SideAngle
	a.angleSlider.OnChanged = func(v float64) {
		if v == a.spec.SideAngle {
			return
		}
		a.pushHistory("Change Side Angle")
		a.spec.SideAngle = v
		a.angleValue.SetText(fmt.Sprintf("%.1f°", v))
		a.recompute()
	}

	a.heightEntry = a.lengthEntry(&a.spec.HeightMm, "Change Height")
	a.diameterEntry = a.lengthEntry(&a.spec.DiameterMm, "Change Diameter")
	a.thicknessEntry = a.lengthEntry(&a.spec.ThicknessMm, "Change Thickness")

	a.wasteCheck = widget.NewCheck("Include 10% waste in material estimates", func(b bool) {
		a.pushHistory("Toggle Waste")
		a.spec.IncludeWaste = b
		a.recompute()
	})
	a.wasteCheck.Checked = a.spec.IncludeWaste

	a.drainageCheck = widget.NewCheck("Reserve drainage headroom (planters)", func(b bool) {
		a.pushHistory("Toggle Drainage")
		a.spec.DrainageHeadroom = b
		a.recompute()
	})
	a.drainageCheck.Checked = a.spec.DrainageHeadroom

	unit := a.lengthUnit()
	inputs := widget.NewCard("Vessel", "", container.NewVBox(
		container.NewGridWithColumns(3,
			widget.NewLabel("Number of Sides"), a.sidesSlider, a.sidesValue,
			widget.NewLabel("Side Angle"), a.angleSlider, a.angleValue,
		),
		container.NewGridWithColumns(2,
			widget.NewLabel(fmt.Sprintf("Height (%s)", unit.Label())), a.heightEntry,
			widget.NewLabel(fmt.Sprintf("Diameter (%s)", unit.Label())), a.diameterEntry,
			widget.NewLabel(fmt.Sprintf("Wall Thickness (%s)", unit.Label())), a.thicknessEntry,
		),
		a.wasteCheck,
		a.drainageCheck,
	))

	sum, _ := model.Summarize(a.spec)
	a.vesselCanvas = widgets.NewVesselCanvas(a.spec.Sides, a.spec.HeightMm, sum.Metrics, 560, 280)
	preview := widget.NewCard("Preview", "", a.vesselCanvas)

	a.errorLabel = widget.NewLabel("")
	a.errorLabel.Importance = widget.DangerImportance

	return container.NewVScroll(container.NewVBox(inputs, a.errorLabel, preview))
}

// lengthEntry creates an entry bound to a millimeter field, displayed in
// the configured unit system.
func (a *App) lengthEntry(mm *float64, label string) *widget.Entry {
	unit := a.lengthUnit()
	e := widget.NewEntry()
	e.SetText(fmt.Sprintf("%.1f", units.FromBaseLength(*mm, unit)))
	e.OnChanged = func(text string) {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil || v < 0 {
			return
		}
		a.pushHistory(label)
		*mm = units.ToBaseLength(v, unit)
		a.recompute()
	}
	return e
}

func (a *App) lengthUnit() units.LengthUnit {
	return units.LengthForSystem(a.config.UnitSystem)
}

// ─── Saw Setup Panel ───────────────────────────────────────

func (a *App) buildSawPanel() fyne.CanvasObject {
	a.sawContainer = container.NewVBox()
	a.stockContainer = container.NewVBox()
	return container.NewVScroll(container.NewVBox(
		widget.NewCard("Saw Settings", "", a.sawContainer),
		widget.NewCard("Stock & Clearance", "", a.stockContainer),
	))
}

// ─── Capacity Panel ────────────────────────────────────────

func (a *App) buildCapacityPanel() fyne.CanvasObject {
	a.capacityContainer = container.NewVBox()
	return container.NewVScroll(
		widget.NewCard("Capacity & Material", "", a.capacityContainer),
	)
}

// ─── Recompute ─────────────────────────────────────────────

// recompute re-derives every readout from the current spec.
func (a *App) recompute() {
	sum, err := model.Summarize(a.spec)
	if err != nil {
		if a.errorLabel != nil {
			a.errorLabel.SetText(err.Error())
		}
		return
	}
	if a.errorLabel != nil {
		a.errorLabel.SetText("")
	}

	if a.vesselCanvas != nil {
		a.vesselCanvas.SetVessel(a.spec.Sides, a.spec.HeightMm, sum.Metrics)
	}
	if a.sawContainer != nil {
		a.refreshSawReadouts(sum)
	}
	if a.capacityContainer != nil {
		a.refreshCapacityReadouts(sum)
	}
}

func (a *App) refreshSawReadouts(sum model.Summary) {
	a.sawContainer.RemoveAll()
	ang := sum.Angles
	a.sawContainer.Add(container.NewGridWithColumns(2,
		widget.NewLabel("Blade Tilt"), a.boldValue(fmt.Sprintf("%.1f°", ang.BladeTilt)),
		widget.NewLabel("Blade Tilt from Vertical"), widget.NewLabel(fmt.Sprintf("%.1f°", ang.BladeTiltComplement)),
		widget.NewLabel("Miter Gauge"), a.boldValue(fmt.Sprintf("%.1f°", ang.MiterGauge)),
		widget.NewLabel("Miter Gauge Complement"), widget.NewLabel(fmt.Sprintf("%.1f°", ang.MiterGaugeComplement)),
		widget.NewLabel("Top/Bottom Trim Angle"), widget.NewLabel(fmt.Sprintf("%.1f°", ang.TrimAngle)),
		widget.NewLabel("Polygon Interior Angle"), widget.NewLabel(fmt.Sprintf("%.1f°", ang.InteriorAngle)),
		widget.NewLabel("Joint Miter Angle"), widget.NewLabel(fmt.Sprintf("%.1f°", ang.MiterAngle)),
	))
	a.sawContainer.Refresh()

	a.stockContainer.RemoveAll()
	unit := a.lengthUnit()
	flats := "n/a (odd side count)"
	if sum.HasFlats {
		flats = a.formatLength(sum.FlatsMm, unit)
	}
	a.stockContainer.Add(container.NewGridWithColumns(2,
		widget.NewLabel("Minimum Stock Width"), a.boldValue(a.formatLength(sum.StockWidthMm, unit)),
		widget.NewLabel("Piece Length"), widget.NewLabel(a.formatLength(sum.PieceLengthMm, unit)),
		widget.NewLabel("Distance Across Flats"), widget.NewLabel(flats),
	))
	a.stockContainer.Refresh()
}

func (a *App) refreshCapacityReadouts(sum model.Summary) {
	a.capacityContainer.RemoveAll()

	volUnit := units.SmartVolumeUnit(sum.VolumeMm3, a.config.UnitSystem)
	volume := fmt.Sprintf("%.2f %s", units.ConvertVolume(sum.VolumeMm3, volUnit), volUnit.Label())

	var material string
	if a.config.UnitSystem == units.Imperial {
		material = fmt.Sprintf("%.2f board feet", sum.BoardFeet)
	} else {
		material = fmt.Sprintf("%.4f m³", sum.CubicMeters)
	}

	rows := container.NewGridWithColumns(2,
		widget.NewLabel("Interior Capacity"), a.boldValue(volume),
		widget.NewLabel("Material Needed"), a.boldValue(material),
	)
	a.capacityContainer.Add(rows)
	if a.spec.IncludeWaste {
		a.capacityContainer.Add(widget.NewLabel("Material includes a 10% waste allowance."))
	}
	if a.spec.DrainageHeadroom {
		a.capacityContainer.Add(widget.NewLabel("Capacity reduced 10% for drainage headroom."))
	}
	a.capacityContainer.Refresh()
}

func (a *App) boldValue(text string) *widget.Label {
	return widget.NewLabelWithStyle(text, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
}

func (a *App) formatLength(mm float64, unit units.LengthUnit) string {
	return fmt.Sprintf("%.1f %s", units.FromBaseLength(mm, unit), unit.Label())
}

// ─── History ───────────────────────────────────────────────

func (a *App) pushHistory(label string) {
	a.history.Push(MakeSnapshot(a.spec, label))
}

func (a *App) undo() {
	snap, ok := a.history.Undo(MakeSnapshot(a.spec, "current"))
	if !ok {
		return
	}
	a.applySpec(snap.Spec)
}

func (a *App) redo() {
	snap, ok := a.history.Redo(MakeSnapshot(a.spec, "current"))
	if !ok {
		return
	}
	a.applySpec(snap.Spec)
}

// applySpec replaces the current spec and pushes it into every input widget.
func (a *App) applySpec(spec model.VesselSpec) {
	a.spec = spec
	unit := a.lengthUnit()

	a.sidesSlider.Value = float64(spec.Sides)
	a.sidesSlider.Refresh()
	a.sidesValue.SetText(fmt.Sprintf("%d", spec.Sides))

	a.angleSlider.Value = spec.SideAngle
	a.angleSlider.Refresh()
	a.angleValue.SetText(fmt.Sprintf("%.1f°", spec.SideAngle))

	// SetText fires OnChanged; the handlers see an unchanged mm value and
	// push a redundant snapshot, so silence them during the sync.
	a.setEntrySilently(a.heightEntry, units.FromBaseLength(spec.HeightMm, unit))
	a.setEntrySilently(a.diameterEntry, units.FromBaseLength(spec.DiameterMm, unit))
	a.setEntrySilently(a.thicknessEntry, units.FromBaseLength(spec.ThicknessMm, unit))

	a.wasteCheck.SetChecked(spec.IncludeWaste)
	a.drainageCheck.SetChecked(spec.DrainageHeadroom)

	a.recompute()
}

func (a *App) setEntrySilently(e *widget.Entry, value float64) {
	saved := e.OnChanged
	e.OnChanged = nil
	e.SetText(fmt.Sprintf("%.1f", value))
	e.OnChanged = saved
}

// ─── Unit System ───────────────────────────────────────────

func (a *App) setUnitSystem(system units.System) {
	if a.config.UnitSystem == system {
		return
	}
	a.config.UnitSystem = system
	// Rebuild so entry labels and values pick up the new unit.
	a.window.SetContent(a.Build())
	a.applySpec(a.spec)
}

// ─── Exports ───────────────────────────────────────────────

func (a *App) exportSetupSheet() {
	sum, err := model.Summarize(a.spec)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.saveWithDialog("setup-sheet.pdf", func(path string) error {
		return export.ExportSetupSheet(path, a.spec, sum, a.config.UnitSystem)
	})
}

func (a *App) exportAngleChart() {
	a.saveWithDialog("angle-chart.xlsx", func(path string) error {
		return export.ExportAngleChart(path, a.spec.SideAngle)
	})
}

func (a *App) exportTemplate() {
	sum, err := model.Summarize(a.spec)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.saveWithDialog("cutting-template.dxf", func(path string) error {
		return export.ExportTemplate(path, a.spec, sum)
	})
}

func (a *App) saveWithDialog(defaultName string, write func(path string) error) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := write(path); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.config.RememberExport(path)
		a.saveConfig()
		dialog.ShowInformation("Export Complete",
			fmt.Sprintf("Saved to %s", path), a.window)
	}, a.window)
	d.SetFileName(defaultName)
	d.Show()
}

func (a *App) exportBackup() {
	a.saveWithDialog("compound-miter-backup.json", func(path string) error {
		return project.ExportAllData(path, a.config, a.presets)
	})
}

func (a *App) importBackup() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		data, err := project.ImportAllData(reader.URI().Path())
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.config = data.Config
		a.presets = data.Presets
		a.saveConfig()
		if err := project.SavePresets(project.DefaultPresetsPath(), a.presets); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.SetupMenus()
		a.window.SetContent(a.Build())
		a.applySpec(a.config.LastSpec)
	}, a.window)
	d.Show()
}

// ─── Presets & Config ──────────────────────────────────────

func (a *App) exportPresetFile() {
	preset := model.NewPreset("Current Vessel", a.spec)
	a.saveWithDialog("vessel-preset.json", func(path string) error {
		return project.ExportPreset(path, preset)
	})
}

func (a *App) importPresetFile() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		preset, err := project.ImportPreset(reader.URI().Path())
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.presets = append(a.presets, preset)
		if err := project.SavePresets(project.DefaultPresetsPath(), a.presets); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.SetupMenus()
		a.pushHistory("Apply Preset")
		a.applySpec(preset.Spec)
	}, a.window)
	d.Show()
}

func (a *App) showSavePresetDialog() {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Preset name")

	form := dialog.NewForm("Save Preset", "Save", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
		},
		func(ok bool) {
			if !ok || nameEntry.Text == "" {
				return
			}
			a.presets = append(a.presets, model.NewPreset(nameEntry.Text, a.spec))
			if err := project.SavePresets(project.DefaultPresetsPath(), a.presets); err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			a.SetupMenus() // Rebuild the Presets menu with the new entry
		},
		a.window,
	)
	form.Resize(fyne.NewSize(350, 150))
	form.Show()
}

func (a *App) saveConfig() {
	a.config.LastSpec = a.spec
	if err := project.SaveAppConfig(project.DefaultConfigPath(), a.config); err != nil {
		fmt.Printf("saving config: %v\n", err)
	}
}
