// Package export writes the calculator's results to shareable file
// formats: a printable saw-setup card (PDF), an angle reference workbook
// (XLSX), and a full-size template drawing (DXF).
package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/yeutterg/compound-miter-calculator/internal/model"
	"github.com/yeutterg/compound-miter-calculator/internal/units"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 18.0
	marginRight  = 18.0
	marginTop    = 18.0
	marginBottom = 15.0
	contentWidth = pageWidth - marginLeft - marginRight

	qrSize = 32.0 // QR code size in mm
)

// ExportSetupSheet writes a one-page saw-setup card for the given vessel:
// the inputs, both saw settings with their complements, the stock and
// clearance measurements, and the capacity/material estimates. A QR code in
// the corner encodes the spec as JSON so the settings can be pulled up on a
// phone at the saw.
func ExportSetupSheet(path string, spec model.VesselSpec, sum model.Summary, system units.System) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(contentWidth-qrSize, 10, "Compound Miter Setup Sheet", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(90, 90, 90)
	pdf.SetXY(marginLeft, marginTop+10)
	subtitle := fmt.Sprintf("%d-sided vessel, %.1f\xb0 walls", spec.Sides, spec.SideAngle)
	pdf.CellFormat(contentWidth-qrSize, 6, subtitle, "", 0, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	if err := drawSpecQR(pdf, spec, pageWidth-marginRight-qrSize, marginTop); err != nil {
		return err
	}

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+qrSize+4, pageWidth-marginRight, marginTop+qrSize+4)

	y := marginTop + qrSize + 10
	lengthUnit := units.LengthForSystem(system)

	y = drawSection(pdf, y, "Vessel", []row{
		{"Number of Sides", fmt.Sprintf("%d", spec.Sides)},
		{"Side Angle", formatDegrees(spec.SideAngle)},
		{"Height", formatLength(spec.HeightMm, lengthUnit)},
		{"Diameter", formatLength(spec.DiameterMm, lengthUnit)},
		{"Material Thickness", formatLength(spec.ThicknessMm, lengthUnit)},
	})

	y = drawSection(pdf, y, "Saw Settings", []row{
		{"Blade Tilt", formatDegrees(sum.Angles.BladeTilt)},
		{"Blade Tilt Complement", formatDegrees(sum.Angles.BladeTiltComplement)},
		{"Miter Gauge", formatDegrees(sum.Angles.MiterGauge)},
		{"Miter Gauge Complement", formatDegrees(sum.Angles.MiterGaugeComplement)},
		{"Top/Bottom Trim Angle", formatDegrees(sum.Angles.TrimAngle)},
	})

	stockRows := []row{
		{"Minimum Stock Width", formatLength(sum.StockWidthMm, lengthUnit)},
		{"Piece Length", formatLength(sum.PieceLengthMm, lengthUnit)},
	}
	if sum.HasFlats {
		stockRows = append(stockRows, row{"Distance Across Flats", formatLength(sum.FlatsMm, lengthUnit)})
	} else {
		stockRows = append(stockRows, row{"Distance Across Flats", "n/a (odd side count)"})
	}
	y = drawSection(pdf, y, "Stock & Clearance", stockRows)

	volumeUnit := units.SmartVolumeUnit(sum.VolumeMm3, system)
	materialRows := []row{
		{"Interior Capacity", fmt.Sprintf("%.2f %s", units.ConvertVolume(sum.VolumeMm3, volumeUnit), volumeUnit.Label())},
	}
	if system == units.Imperial {
		materialRows = append(materialRows, row{"Material Required", fmt.Sprintf("%.2f board feet", sum.BoardFeet)})
	} else {
		materialRows = append(materialRows, row{"Material Required", fmt.Sprintf("%.4f m\xb3", sum.CubicMeters)})
	}
	if spec.IncludeWaste {
		materialRows = append(materialRows, row{"Waste Allowance", "10% included"})
	}
	if spec.DrainageHeadroom {
		materialRows = append(materialRows, row{"Drainage Headroom", "10% capacity reserved"})
	}
	drawSection(pdf, y, "Capacity & Material", materialRows)

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(contentWidth, 4, "Generated by Compound Miter Calculator", "", 0, "C", false, 0, "")

	return pdf.OutputFileAndClose(path)
}

// row is one label/value line in a setup sheet section.
type row struct {
	label string
	value string
}

// drawSection renders a titled block of label/value rows and returns the y
// position below it.
func drawSection(pdf *fpdf.Fpdf, y float64, title string, rows []row) float64 {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(contentWidth, 7, title, "", 0, "L", false, 0, "")
	y += 9

	for i, r := range rows {
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetXY(marginLeft+4, y)
		pdf.CellFormat(70, 6.5, r.label, "", 0, "L", true, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(contentWidth-74, 6.5, r.value, "", 0, "L", true, 0, "")
		y += 6.5
	}
	return y + 6
}

// drawSpecQR encodes the spec as JSON into a QR code and places it at the
// given position.
func drawSpecQR(pdf *fpdf.Fpdf, spec model.VesselSpec, x, y float64) error {
	data, err := json.Marshal(spec)
	if err != nil {
		return fmt.Errorf("failed to marshal spec: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(data), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_spec_%d_%g", spec.Sides, spec.SideAngle)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	pdf.ImageOptions(imgName, x, y, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	return nil
}

func formatDegrees(v float64) string {
	return fmt.Sprintf("%.1f\xb0", v)
}

func formatLength(mm float64, unit units.LengthUnit) string {
	return fmt.Sprintf("%.2f %s", units.FromBaseLength(mm, unit), unit.Label())
}
