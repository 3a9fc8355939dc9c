package export

import (
	"math"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"

	"github.com/yeutterg/compound-miter-calculator/internal/model"
)

// ExportTemplate writes a DXF drawing of the vessel in millimeters: the
// cross-section polygons (outer and interior, at both base and rim) centered
// at the origin, and one side-piece outline laid flat beside them for
// printing a full-size cutting template.
func ExportTemplate(path string, spec model.VesselSpec, sum model.Summary) error {
	d := dxf.NewDrawing()

	if _, err := d.AddLayer("CROSS_SECTION", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return err
	}
	drawPolygon(d, 0, 0, sum.Metrics.OuterBottomRadius, spec.Sides)
	drawPolygon(d, 0, 0, sum.Metrics.OuterTopRadius, spec.Sides)
	if sum.Metrics.InnerBottomRadius > 0 {
		drawPolygon(d, 0, 0, sum.Metrics.InnerBottomRadius, spec.Sides)
	}
	if sum.Metrics.InnerTopRadius > 0 {
		drawPolygon(d, 0, 0, sum.Metrics.InnerTopRadius, spec.Sides)
	}

	if _, err := d.AddLayer("SIDE_PIECE", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return err
	}
	drawSidePiece(d, spec, sum)

	return d.SaveAs(path)
}

// drawPolygon draws a regular polygon as line segments. A zero radius
// collapses to a point and is skipped.
func drawPolygon(d *drawing.Drawing, cx, cy, radius float64, sides int) {
	if radius <= 0 || sides < 3 {
		return
	}
	for i := 0; i < sides; i++ {
		a1 := 2 * math.Pi * float64(i) / float64(sides)
		a2 := 2 * math.Pi * float64(i+1) / float64(sides)
		d.Line(
			cx+radius*math.Cos(a1), cy+radius*math.Sin(a1), 0,
			cx+radius*math.Cos(a2), cy+radius*math.Sin(a2), 0,
		)
	}
}

// drawSidePiece draws the trapezoid outline of one side piece laid flat:
// base edge at the bottom, rim edge at the top, slant length between them.
// The compound bevel along the slanted edges is a cut property, not a
// template dimension, so the outline alone is the full template.
func drawSidePiece(d *drawing.Drawing, spec model.VesselSpec, sum model.Summary) {
	segment := math.Sin(math.Pi / float64(spec.Sides))
	bottomW := 2 * sum.Metrics.OuterBottomRadius * segment
	topW := 2 * sum.Metrics.OuterTopRadius * segment
	length := sum.PieceLengthMm

	if bottomW <= 0 || length <= 0 {
		return
	}

	// Offset the template clear of the cross-section.
	x0 := sum.Metrics.OuterBottomRadius*2 + 50

	corners := [][2]float64{
		{x0 - bottomW/2, 0},
		{x0 + bottomW/2, 0},
		{x0 + topW/2, length},
		{x0 - topW/2, length},
	}
	for i := range corners {
		next := corners[(i+1)%len(corners)]
		d.Line(corners[i][0], corners[i][1], 0, next[0], next[1], 0)
	}
}
