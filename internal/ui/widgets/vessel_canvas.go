package widgets

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/yeutterg/compound-miter-calculator/internal/engine"
)

var (
	outlineColor = color.NRGBA{R: 121, G: 85, B: 72, A: 255}  // brown
	cavityColor  = color.NRGBA{R: 33, G: 150, B: 243, A: 255} // blue
	taperColor   = color.NRGBA{R: 158, G: 158, B: 158, A: 255}
)

// VesselCanvas renders a top-view cross section and a side elevation of
// the vessel described by the current metrics.
type VesselCanvas struct {
	widget.BaseWidget
	sides     int
	heightMm  float64
	metrics   engine.Metrics
	maxWidth  float32
	maxHeight float32
}

func NewVesselCanvas(sides int, heightMm float64, metrics engine.Metrics, maxW, maxH float32) *VesselCanvas {
	vc := &VesselCanvas{
		sides:     sides,
		heightMm:  heightMm,
		metrics:   metrics,
		maxWidth:  maxW,
		maxHeight: maxH,
	}
	vc.ExtendBaseWidget(vc)
	return vc
}

// SetVessel updates the geometry and redraws.
func (vc *VesselCanvas) SetVessel(sides int, heightMm float64, metrics engine.Metrics) {
	vc.sides = sides
	vc.heightMm = heightMm
	vc.metrics = metrics
	vc.Refresh()
}

func (vc *VesselCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newVesselCanvasRenderer(vc)
}

type vesselCanvasRenderer struct {
	vc      *VesselCanvas
	objects []fyne.CanvasObject
}

func newVesselCanvasRenderer(vc *VesselCanvas) *vesselCanvasRenderer {
	r := &vesselCanvasRenderer{vc: vc}
	r.rebuild()
	return r
}

func (r *vesselCanvasRenderer) rebuild() {
	r.objects = nil

	m := r.vc.metrics
	if r.vc.sides < 3 || m.OuterBottomRadius <= 0 {
		return
	}

	// The top view and elevation sit side by side, each in half the width.
	paneW := r.vc.maxWidth / 2
	paneH := r.vc.maxHeight

	// Top view: concentric polygons at bottom and top of the walls.
	maxR := m.OuterBottomRadius
	scale := float32(math.Min(float64(paneW), float64(paneH))) / float32(2*maxR) * 0.9
	cx := paneW / 2
	cy := paneH / 2

	r.addPolygon(cx, cy, float32(m.OuterBottomRadius)*scale, outlineColor, 2)
	r.addPolygon(cx, cy, float32(m.OuterTopRadius)*scale, taperColor, 1)
	if m.InnerBottomRadius > 0 {
		r.addPolygon(cx, cy, float32(m.InnerBottomRadius)*scale, cavityColor, 1)
	}
	if m.InnerTopRadius > 0 {
		r.addPolygon(cx, cy, float32(m.InnerTopRadius)*scale, cavityColor, 1)
	}

	// Side elevation: a trapezoid from bottom width to top width.
	r.addElevation(paneW, paneH)
}

// addPolygon appends a closed regular polygon as line segments.
func (r *vesselCanvasRenderer) addPolygon(cx, cy, radius float32, col color.NRGBA, strokeWidth float32) {
	if radius <= 0 {
		return
	}
	n := r.vc.sides
	step := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		a1 := step * float64(i)
		a2 := step * float64(i+1)
		line := canvas.NewLine(col)
		line.StrokeWidth = strokeWidth
		line.Position1 = fyne.NewPos(cx+radius*float32(math.Cos(a1)), cy+radius*float32(math.Sin(a1)))
		line.Position2 = fyne.NewPos(cx+radius*float32(math.Cos(a2)), cy+radius*float32(math.Sin(a2)))
		r.objects = append(r.objects, line)
	}
}

// addElevation draws the vessel profile seen from the side, in the right pane.
func (r *vesselCanvasRenderer) addElevation(paneW, paneH float32) {
	m := r.vc.metrics
	h := r.vc.heightMm
	if h <= 0 {
		return
	}

	widest := 2 * m.OuterBottomRadius
	scaleX := float64(paneW) * 0.8 / widest
	scaleY := float64(paneH) * 0.8 / h
	scale := float32(math.Min(scaleX, scaleY))

	cx := paneW + paneW/2
	bottomY := paneH - (paneH-float32(h)*scale)/2
	topY := bottomY - float32(h)*scale

	bl := fyne.NewPos(cx-float32(m.OuterBottomRadius)*scale, bottomY)
	br := fyne.NewPos(cx+float32(m.OuterBottomRadius)*scale, bottomY)
	tl := fyne.NewPos(cx-float32(m.OuterTopRadius)*scale, topY)
	tr := fyne.NewPos(cx+float32(m.OuterTopRadius)*scale, topY)

	for _, seg := range [][2]fyne.Position{{bl, br}, {bl, tl}, {br, tr}, {tl, tr}} {
		line := canvas.NewLine(outlineColor)
		line.StrokeWidth = 2
		line.Position1 = seg[0]
		line.Position2 = seg[1]
		r.objects = append(r.objects, line)
	}

	// Interior cavity walls, dashed look approximated with a thinner stroke.
	if m.InnerBottomRadius > 0 {
		ibl := fyne.NewPos(cx-float32(m.InnerBottomRadius)*scale, bottomY)
		ibr := fyne.NewPos(cx+float32(m.InnerBottomRadius)*scale, bottomY)
		itl := fyne.NewPos(cx-float32(m.InnerTopRadius)*scale, topY)
		itr := fyne.NewPos(cx+float32(m.InnerTopRadius)*scale, topY)
		for _, seg := range [][2]fyne.Position{{ibl, itl}, {ibr, itr}} {
			line := canvas.NewLine(cavityColor)
			line.StrokeWidth = 1
			line.Position1 = seg[0]
			line.Position2 = seg[1]
			r.objects = append(r.objects, line)
		}
	}
}

func (r *vesselCanvasRenderer) Layout(size fyne.Size)        {}
func (r *vesselCanvasRenderer) Refresh()                     { r.rebuild() }
func (r *vesselCanvasRenderer) Destroy()                     {}
func (r *vesselCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *vesselCanvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(r.vc.maxWidth, r.vc.maxHeight)
}
