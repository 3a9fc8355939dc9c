package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/yeutterg/compound-miter-calculator/internal/engine"
)

// ExportAngleChart writes a reference workbook with the saw settings for
// every side count from 3 to 60 at the given side angle -- a printable chart
// to pin up next to the saw.
func ExportAngleChart(path string, sideAngle float64) error {
	if sideAngle < engine.MinSideAngle || sideAngle > engine.MaxSideAngle {
		return fmt.Errorf("cannot chart side angle %g: %w", sideAngle, engine.ErrInvalidGeometry)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Angle Chart"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{
		"Sides", "Interior Angle", "Miter Angle",
		"Blade Tilt", "Blade Tilt Compl.",
		"Miter Gauge", "Miter Gauge Compl.",
	}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for n := engine.MinSides; n <= engine.MaxSides; n++ {
		res, err := engine.CalculateAngles(n, sideAngle)
		if err != nil {
			return err
		}
		values := []interface{}{
			n, res.InteriorAngle, res.MiterAngle,
			res.BladeTilt, res.BladeTiltComplement,
			res.MiterGauge, res.MiterGaugeComplement,
		}
		rowNum := n - engine.MinSides + 2
		for i, v := range values {
			cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		f.SetCellStyle(sheet, "A1", "G1", style)
	}
	f.SetColWidth(sheet, "A", "G", 18)

	// Note which side angle the chart was computed for.
	f.SetCellValue(sheet, "I1", "Side Angle")
	f.SetCellValue(sheet, "I2", sideAngle)

	return f.SaveAs(path)
}
