package layout

import (
	"math"

	"fall-calibrate.klederson.com/internal/calibration"
)

// minSpan keeps a degenerate layout (both sensors on one axis) drawable.
const minSpan = 1.0

// Bounds is the plotted area in meters.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// BoundsOf returns the smallest area holding the origin and every point.
// Each span is at least minSpan meters.
func BoundsOf(points ...calibration.Point) Bounds {
	b := Bounds{}
	for _, p := range points {
		b.MinX = math.Min(b.MinX, p.X)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}
	if b.SpanX() < minSpan {
		b.MaxX = b.MinX + minSpan
	}
	if b.SpanY() < minSpan {
		b.MaxY = b.MinY + minSpan
	}
	return b
}

func (b Bounds) SpanX() float64 { return b.MaxX - b.MinX }
func (b Bounds) SpanY() float64 { return b.MaxY - b.MinY }

// Scale returns how many columns one meter takes so that the bounds fit in
// cols x rows cells, accounting for terminal aspect ratio.
func Scale(b Bounds, cols, rows int, aspect float64) float64 {
	sx := float64(cols-1) / b.SpanX()
	sy := float64(rows-1) / (b.SpanY() * aspect)
	s := math.Min(sx, sy)
	if math.IsNaN(s) || math.IsInf(s, 0) || s < 0 {
		return 0
	}
	return s
}

// MetersToCells converts an offset in meters to a cell index, clamped to
// [0, cells).
func MetersToCells(offset, scale float64, cells int) int {
	v := math.Round(offset * scale)
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > float64(cells-1) {
		return cells - 1
	}
	return int(v)
}
