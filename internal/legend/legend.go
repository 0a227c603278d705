// Package legend rasterizes a color-ramp legend: a stepped gradient bar with
// optional out-of-range triangles, value ticks and a title.
package legend

import (
	"image/color"

	"github.com/kiesman99/tiledebug/internal/logger"
)

// Tick marks a value along the bar. Pos is a column offset in [0, Size).
type Tick struct {
	Pos   int
	Label string
}

// ColorLegend describes a color ramp as produced by a styling source.
// Colors holds Size packed colors, one per bar column.
type ColorLegend struct {
	Size         int
	Colors       []uint32
	ShowBelowMin bool
	ShowAboveMax bool
	Units        string
	Ticks        []Tick
}

func (l *ColorLegend) color(i int) (uint32, bool) {
	if i < 0 || i >= len(l.Colors) {
		return 0, false
	}
	return l.Colors[i], true
}

// Options sets the legend canvas size and title.
type Options struct {
	Width  int
	Height int
	Title  string
}

// Label is a text run placed by Draw, baseline-anchored at (X, Y).
type Label struct {
	Text string
	X, Y int
	Size float64
}

// bar origin on the canvas
const (
	originX = 0
	originY = 2
)

const (
	tickFontSize  = 8
	titleFontSize = 12
)

var (
	background  = Pack(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	tickColor   = color.NRGBA{A: 0xff}
	borderColor = Pack(color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff})
)

// Metrics returns the bar height and the triangle leg length for a canvas height.
func Metrics(height int) (halfHeight, trSize int) {
	halfHeight = (16 + height) >> 2
	trSize = halfHeight >> 1
	return halfHeight, trSize
}

// Draw resizes dst to opts.Width x opts.Height and repaints it with legend l.
// It returns the text runs it placed. Nothing is drawn when dst or l is nil.
//
// The canvas must be at least 2*trSize+Size wide; narrower canvases get
// overlapping or truncated geometry.
func Draw(dst *Surface, l *ColorLegend, opts Options) []Label {
	if dst == nil || l == nil {
		return nil
	}

	dst.Resize(opts.Width, opts.Height)
	w, h := dst.Width(), dst.Height()
	halfHeight, trSize := Metrics(h)

	dst.Fill(background)

	if l.ShowBelowMin {
		if c, ok := l.color(0); ok {
			drawTriangle(dst, c, trSize, func(x int) int { return originX + x })
		}
	}

	if _, ok := l.color(0); ok {
		for x := 0; x < l.Size; x++ {
			c, ok := l.color(x)
			if !ok {
				continue
			}
			for y := 0; y < halfHeight; y++ {
				dst.put(originX+x+trSize+(y+originY+1)*w, c)
			}
		}
	}

	if l.ShowAboveMax {
		if c, ok := l.color(l.Size - 1); ok {
			right := originX + 2*trSize + l.Size - 1
			drawTriangle(dst, c, trSize, func(x int) int { return right - x })
		}
	}

	labels := make([]Label, 0, len(l.Ticks)+1)

	tickFace := newFace(tickFontSize)
	defer tickFace.Close()
	tick := Pack(tickColor)
	for _, t := range l.Ticks {
		x := t.Pos + trSize + originX + 1
		for y := originY + 3; y <= halfHeight; y++ {
			dst.put(x+y*w, tick)
		}
		drawText(dst, tickFace, t.Label, x, halfHeight+11, tickColor)
		labels = append(labels, Label{Text: t.Label, X: x, Y: halfHeight + 11, Size: tickFontSize})
	}

	titleFace := newFace(titleFontSize)
	defer titleFace.Close()
	if opts.Title != "" {
		drawText(dst, titleFace, opts.Title, 13, h-5, tickColor)
		labels = append(labels, Label{Text: opts.Title, X: 13, Y: h - 5, Size: titleFontSize})
	}

	drawBorder(dst, borderColor)

	logger.Logger().Debug("legend drawn",
		"width", w,
		"height", h,
		"size", l.Size,
		"ticks", len(l.Ticks),
	)

	return labels
}

// drawTriangle fills an out-of-range indicator of leg length trSize. Column
// col(x) holds 2x pixels centred on the bar's midline, so the triangle narrows
// to a point as x approaches 0.
func drawTriangle(dst *Surface, c uint32, trSize int, col func(x int) int) {
	w := dst.Width()
	for x := 0; x < trSize; x++ {
		cx := col(x)
		for y := trSize; y < trSize+x; y++ {
			dst.put((originY+y+1)*w+cx, c)
			dst.put((originY+2*trSize-y)*w+cx, c)
		}
	}
}

// drawBorder strokes a 1px rectangle inset by 1px from the canvas edge.
func drawBorder(dst *Surface, c uint32) {
	w, h := dst.Width(), dst.Height()
	if w < 3 || h < 3 {
		return
	}
	for x := 1; x <= w-2; x++ {
		dst.setPixel(x, 1, c)
		dst.setPixel(x, h-2, c)
	}
	for y := 1; y <= h-2; y++ {
		dst.setPixel(1, y, c)
		dst.setPixel(w-2, y, c)
	}
}
