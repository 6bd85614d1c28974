package snippet

import (
	"fmt"
	"io"
	"strings"

	"fall-calibrate.klederson.com/internal/calibration"
	"fall-calibrate.klederson.com/internal/config"
)

// C renders the firmware snippets as plain text. The output depends only on
// cal; equal inputs give byte-identical text.
func C(cal calibration.Calibration) string {
	var sb strings.Builder

	sb.WriteString("--- Generated C Code Snippets ---\n")
	fmt.Fprintf(&sb, "Copy these snippets into `%s` as indicated.\n", config.TargetFile)

	fmt.Fprintf(&sb, "\n// 1. For the `%s` function in %s:\n", config.TargetFunction, config.TargetFile)
	sb.WriteString("//    (replace the existing values or add them if they are missing)\n")
	writeFloatConst(&sb, config.SymbolSensor1X, cal.Sensors.Sensor1.X)
	writeFloatConst(&sb, config.SymbolSensor1Y, cal.Sensors.Sensor1.Y)
	writeFloatConst(&sb, config.SymbolSensor2X, cal.Sensors.Sensor2.X)
	writeFloatConst(&sb, config.SymbolSensor2Y, cal.Sensors.Sensor2.Y)
	sb.WriteString("// Make sure these constants are used by the triangulation logic.\n")

	fmt.Fprintf(&sb, "\n// 2. For the global definitions (top of %s):\n", config.TargetFile)
	writeDefine(&sb, config.SymbolFallTransitionMaxMs, cal.Fall.FallTransitionMaxMs)
	writeDefine(&sb, config.SymbolLyingConfirmationDuration, cal.Fall.LyingConfirmationDurationS)

	fmt.Fprintf(&sb, "\n// 3. For the global definitions (top of %s):\n", config.TargetFile)
	writeDefine(&sb, config.SymbolWatchdogCheckInterval, cal.Watchdog.WatchdogCheckIntervalS)
	writeDefine(&sb, config.SymbolSlaveModuleTimeout, cal.Watchdog.SlaveModuleTimeoutS)

	sb.WriteString("\n--- End of Code Snippets ---\n")
	sb.WriteString("\nIMPORTANT: after copying these values, rebuild and reflash the master firmware.\n")

	return sb.String()
}

// WriteC writes the C snippets to w.
func WriteC(w io.Writer, cal calibration.Calibration) error {
	_, err := io.WriteString(w, C(cal))
	return err
}

// FloatLiteral formats a coordinate as a single-precision C literal with
// two decimals (3 -> "3.00f").
func FloatLiteral(v float64) string {
	return fmt.Sprintf("%.2ff", v)
}

func writeFloatConst(sb *strings.Builder, name string, v float64) {
	fmt.Fprintf(sb, "static const float %s = %s;\n", name, FloatLiteral(v))
}

func writeDefine(sb *strings.Builder, name string, v int) {
	fmt.Fprintf(sb, "#define %s %d\n", name, v)
}
