package calibration

import (
	"math"

	"fall-calibrate.klederson.com/internal/config"
)

// Point is a sensor position in meters.
type Point struct {
	X float64
	Y float64
}

// SensorPositions holds the two radar modules. There are always exactly two.
type SensorPositions struct {
	Sensor1 Point
	Sensor2 Point
}

// Baseline returns the distance between the two sensors in meters.
func (s SensorPositions) Baseline() float64 {
	return math.Hypot(s.Sensor2.X-s.Sensor1.X, s.Sensor2.Y-s.Sensor1.Y)
}

// FallDetectionThresholds configures the fall detector.
type FallDetectionThresholds struct {
	FallTransitionMaxMs        int
	LyingConfirmationDurationS int
}

// WatchdogThresholds configures the slave module watchdog.
type WatchdogThresholds struct {
	WatchdogCheckIntervalS int
	SlaveModuleTimeoutS    int
}

// Calibration is the assembled configuration consumed by the renderers.
// It is passed by value and never mutated after Assemble.
type Calibration struct {
	Sensors  SensorPositions
	Fall     FallDetectionThresholds
	Watchdog WatchdogThresholds
}

// Assemble groups collected field values into a Calibration.
func Assemble(s1x, s1y, s2x, s2y float64, fallMs, lyingS, checkS, timeoutS int) Calibration {
	return Calibration{
		Sensors: SensorPositions{
			Sensor1: Point{X: s1x, Y: s1y},
			Sensor2: Point{X: s2x, Y: s2y},
		},
		Fall: FallDetectionThresholds{
			FallTransitionMaxMs:        fallMs,
			LyingConfirmationDurationS: lyingS,
		},
		Watchdog: WatchdogThresholds{
			WatchdogCheckIntervalS: checkS,
			SlaveModuleTimeoutS:    timeoutS,
		},
	}
}

// Defaults returns the calibration an operator gets by accepting every prompt.
func Defaults() Calibration {
	return Assemble(
		config.DefaultSensor1X, config.DefaultSensor1Y,
		config.DefaultSensor2X, config.DefaultSensor2Y,
		config.DefaultFallTransitionMaxMs, config.DefaultLyingConfirmationDurationS,
		config.DefaultWatchdogCheckIntervalS, config.DefaultSlaveModuleTimeoutS,
	)
}
