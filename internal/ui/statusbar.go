package ui

import (
	"fmt"

	"fall-calibrate.klederson.com/internal/calibration"
)

// RenderSummary renders the one-line sensor summary printed under the
// layout preview.
func RenderSummary(s Styles, sensors calibration.SensorPositions) string {
	p1 := fmt.Sprintf(" (%.2f, %.2f)m  ", sensors.Sensor1.X, sensors.Sensor1.Y)
	p2 := fmt.Sprintf(" (%.2f, %.2f)m  Baseline: %.2fm", sensors.Sensor2.X, sensors.Sensor2.Y, sensors.Baseline())

	return s.Sensor1.Render("[1]") + s.Summary.Render(p1) +
		s.Sensor2.Render("[2]") + s.Summary.Render(p2)
}
