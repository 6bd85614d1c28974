package layout

import (
	"strings"

	"fall-calibrate.klederson.com/internal/calibration"
	"fall-calibrate.klederson.com/internal/config"
	"fall-calibrate.klederson.com/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Cell is a grid position, row 0 at the top.
type Cell struct {
	Col, Row int
}

// Plan is the placement of the origin and both sensors on a grid.
type Plan struct {
	Width   int
	Height  int
	Origin  Cell
	Sensor1 Cell
	Sensor2 Cell
}

// NewPlan places the origin and sensors on a width x height grid, keeping
// config.PreviewMargin empty cells on each side. X grows to the right and
// Y grows upwards.
func NewPlan(width, height int, sensors calibration.SensorPositions) Plan {
	m := config.PreviewMargin
	cols := width - 2*m
	rows := height - 2*m

	b := BoundsOf(sensors.Sensor1, sensors.Sensor2)
	scale := Scale(b, cols, rows, config.AspectRatio)

	place := func(p calibration.Point) Cell {
		col := MetersToCells(p.X-b.MinX, scale, cols)
		row := MetersToCells(p.Y-b.MinY, scale*config.AspectRatio, rows)
		return Cell{Col: m + col, Row: height - 1 - m - row}
	}

	return Plan{
		Width:   width,
		Height:  height,
		Origin:  place(calibration.Point{}),
		Sensor1: place(sensors.Sensor1),
		Sensor2: place(sensors.Sensor2),
	}
}

// Render produces the top-down plan as a styled string, or "" when the
// grid is too small to be readable.
func Render(s ui.Styles, width, height int, sensors calibration.SensorPositions) string {
	if width < 10 || height < 5 {
		return ""
	}

	p := NewPlan(width, height, sensors)

	var sb strings.Builder
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			sb.WriteString(renderCell(s, p, Cell{Col: col, Row: row}))
		}
		if row < height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func renderCell(s ui.Styles, p Plan, c Cell) string {
	switch {
	case c == p.Sensor1 && c == p.Sensor2:
		return s.Sensor1.Render("*")
	case c == p.Sensor1:
		return s.Sensor1.Render("1")
	case c == p.Sensor2:
		return s.Sensor2.Render("2")
	case c == p.Origin:
		return s.Origin.Render("+")
	case c.Row == p.Origin.Row:
		return s.Axis.Render("-")
	case c.Col == p.Origin.Col:
		return s.Axis.Render("|")
	}
	return s.Grid.Render(".")
}

// RenderLegend produces the legend line under the plan.
func RenderLegend(s ui.Styles, width int) string {
	legend := s.Sensor1.Render("1 Sensor 1") + "  " +
		s.Sensor2.Render("2 Sensor 2") + "  " +
		s.Origin.Render("+ Origin (0,0)")

	pad := (width - lipgloss.Width(legend)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + legend
}
