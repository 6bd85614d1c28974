package layout

import (
	"bytes"
	"strings"
	"testing"

	"fall-calibrate.klederson.com/internal/calibration"
	"fall-calibrate.klederson.com/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainStyles() ui.Styles {
	return ui.StylesFor(&bytes.Buffer{})
}

func TestBoundsOf_IncludesOrigin(t *testing.T) {
	b := BoundsOf(calibration.Point{X: 2, Y: 3}, calibration.Point{X: 4, Y: 1})
	assert.Equal(t, Bounds{MinX: 0, MaxX: 4, MinY: 0, MaxY: 3}, b)

	b = BoundsOf(calibration.Point{X: -2, Y: -1})
	assert.Equal(t, Bounds{MinX: -2, MaxX: 0, MinY: -1, MaxY: 0}, b)
}

func TestBoundsOf_Degenerate(t *testing.T) {
	b := BoundsOf(calibration.Point{X: 3, Y: 0}, calibration.Point{X: 0, Y: 0})
	assert.Equal(t, 3.0, b.SpanX())
	assert.Equal(t, 1.0, b.SpanY())
}

func TestMetersToCells_Clamps(t *testing.T) {
	assert.Equal(t, 0, MetersToCells(-1, 10, 20))
	assert.Equal(t, 19, MetersToCells(5, 10, 20))
	assert.Equal(t, 15, MetersToCells(1.5, 10, 20))
}

func TestNewPlan_DefaultSensors(t *testing.T) {
	p := NewPlan(40, 12, calibration.Defaults().Sensors)

	// Origin sits at the bottom-left of the plotted area
	assert.Equal(t, Cell{Col: 1, Row: 10}, p.Origin)
	assert.Equal(t, p.Origin.Col, p.Sensor1.Col)
	assert.Less(t, p.Sensor1.Row, p.Origin.Row)
	assert.Equal(t, p.Sensor1.Row, p.Sensor2.Row)
	assert.Greater(t, p.Sensor2.Col, p.Sensor1.Col)
}

func TestNewPlan_StaysInside(t *testing.T) {
	cases := []calibration.SensorPositions{
		calibration.Defaults().Sensors,
		{Sensor1: calibration.Point{X: -5, Y: 8}, Sensor2: calibration.Point{X: 12, Y: -3}},
		{Sensor1: calibration.Point{X: 1e9, Y: 1e9}, Sensor2: calibration.Point{X: -1e9, Y: 0}},
		{},
	}
	for _, sensors := range cases {
		p := NewPlan(30, 10, sensors)
		for _, c := range []Cell{p.Origin, p.Sensor1, p.Sensor2} {
			assert.GreaterOrEqual(t, c.Col, 0)
			assert.Less(t, c.Col, 30)
			assert.GreaterOrEqual(t, c.Row, 0)
			assert.Less(t, c.Row, 10)
		}
	}
}

func TestRender_Markers(t *testing.T) {
	out := Render(plainStyles(), 40, 12, calibration.Defaults().Sensors)
	require.NotEmpty(t, out)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 12)
	for _, l := range lines {
		assert.Len(t, l, 40)
	}
	assert.Equal(t, 1, strings.Count(out, "1"))
	assert.Equal(t, 1, strings.Count(out, "2"))
	assert.Equal(t, 1, strings.Count(out, "+"))
}

func TestRender_Coincident(t *testing.T) {
	p := calibration.Point{X: 1, Y: 1}
	out := Render(plainStyles(), 20, 8, calibration.SensorPositions{Sensor1: p, Sensor2: p})
	assert.Contains(t, out, "*")
	assert.NotContains(t, out, "1")
}

func TestRender_TooSmall(t *testing.T) {
	assert.Empty(t, Render(plainStyles(), 8, 3, calibration.Defaults().Sensors))
}

func TestRenderLegend(t *testing.T) {
	legend := RenderLegend(plainStyles(), 60)
	assert.Contains(t, legend, "1 Sensor 1")
	assert.Contains(t, legend, "+ Origin (0,0)")
	assert.True(t, strings.HasPrefix(legend, " "))
}
