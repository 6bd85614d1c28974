package snippet

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fall-calibrate.klederson.com/internal/calibration"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for structured formats other than json/yaml.
var ErrUnknownFormat = errors.New("snippet: unknown format")

// Format selects the structured document encoding.
type Format string

const (
	FormatNone Format = "none"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name from the command line. An empty name
// means no structured output.
func ParseFormat(raw string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(raw))); f {
	case "", FormatNone:
		return FormatNone, nil
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (want none, json or yaml)", ErrUnknownFormat, raw)
	}
}

// Meters is a coordinate that always encodes as a real number, so 3 is
// written as 3.0 and never mistaken for an integer field.
type Meters float64

func (m Meters) String() string {
	s := strconv.FormatFloat(float64(m), 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func (m Meters) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m Meters) MarshalYAML() (interface{}, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: m.String()}, nil
}

// PointDoc mirrors calibration.Point.
type PointDoc struct {
	X Meters `json:"x" yaml:"x"`
	Y Meters `json:"y" yaml:"y"`
}

// SensorPositionsDoc mirrors calibration.SensorPositions.
type SensorPositionsDoc struct {
	Sensor1 PointDoc `json:"sensor1" yaml:"sensor1"`
	Sensor2 PointDoc `json:"sensor2" yaml:"sensor2"`
}

// FallDetectionDoc mirrors calibration.FallDetectionThresholds.
type FallDetectionDoc struct {
	FallTransitionMaxMs        int `json:"fall_transition_max_ms" yaml:"fall_transition_max_ms"`
	LyingConfirmationDurationS int `json:"lying_confirmation_duration_s" yaml:"lying_confirmation_duration_s"`
}

// WatchdogDoc mirrors calibration.WatchdogThresholds.
type WatchdogDoc struct {
	WatchdogCheckIntervalS int `json:"watchdog_check_interval_s" yaml:"watchdog_check_interval_s"`
	SlaveModuleTimeoutS    int `json:"slave_module_timeout_s" yaml:"slave_module_timeout_s"`
}

// Doc is the structured form of a calibration. Field order is the output
// order.
type Doc struct {
	SensorPositions         SensorPositionsDoc `json:"sensor_positions" yaml:"sensor_positions"`
	FallDetectionThresholds FallDetectionDoc   `json:"fall_detection_thresholds" yaml:"fall_detection_thresholds"`
	WatchdogThresholds      WatchdogDoc        `json:"watchdog_thresholds" yaml:"watchdog_thresholds"`
}

// NewDocument maps a calibration onto its document form.
func NewDocument(cal calibration.Calibration) Doc {
	return Doc{
		SensorPositions: SensorPositionsDoc{
			Sensor1: PointDoc{X: Meters(cal.Sensors.Sensor1.X), Y: Meters(cal.Sensors.Sensor1.Y)},
			Sensor2: PointDoc{X: Meters(cal.Sensors.Sensor2.X), Y: Meters(cal.Sensors.Sensor2.Y)},
		},
		FallDetectionThresholds: FallDetectionDoc{
			FallTransitionMaxMs:        cal.Fall.FallTransitionMaxMs,
			LyingConfirmationDurationS: cal.Fall.LyingConfirmationDurationS,
		},
		WatchdogThresholds: WatchdogDoc{
			WatchdogCheckIntervalS: cal.Watchdog.WatchdogCheckIntervalS,
			SlaveModuleTimeoutS:    cal.Watchdog.SlaveModuleTimeoutS,
		},
	}
}

// Document encodes cal in the requested format. JSON is indented by two
// spaces; both encodings end with a newline.
func Document(cal calibration.Calibration, format Format) ([]byte, error) {
	doc := NewDocument(cal)

	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("snippet: encode json: %w", err)
		}
		return append(out, '\n'), nil

	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("snippet: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("snippet: encode yaml: %w", err)
		}
		return buf.Bytes(), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
