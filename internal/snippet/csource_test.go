package snippet

import (
	"bytes"
	"strings"
	"testing"

	"fall-calibrate.klederson.com/internal/calibration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultSnippet = "--- Generated C Code Snippets ---\n" +
	"Copy these snippets into `master_firmware/main/main.c` as indicated.\n" +
	"\n" +
	"// 1. For the `calculate_xy_position` function in master_firmware/main/main.c:\n" +
	"//    (replace the existing values or add them if they are missing)\n" +
	"static const float SENSOR1_X = 0.00f;\n" +
	"static const float SENSOR1_Y = 0.50f;\n" +
	"static const float SENSOR2_X = 3.00f;\n" +
	"static const float SENSOR2_Y = 0.50f;\n" +
	"// Make sure these constants are used by the triangulation logic.\n" +
	"\n" +
	"// 2. For the global definitions (top of master_firmware/main/main.c):\n" +
	"#define FALL_TRANSITION_MAX_MS 1000\n" +
	"#define LYING_CONFIRMATION_DURATION_S 20\n" +
	"\n" +
	"// 3. For the global definitions (top of master_firmware/main/main.c):\n" +
	"#define WATCHDOG_CHECK_INTERVAL_S 2\n" +
	"#define SLAVE_MODULE_TIMEOUT_S 5\n" +
	"\n" +
	"--- End of Code Snippets ---\n" +
	"\n" +
	"IMPORTANT: after copying these values, rebuild and reflash the master firmware.\n"

func TestC_Defaults(t *testing.T) {
	assert.Equal(t, defaultSnippet, C(calibration.Defaults()))
}

func TestC_Deterministic(t *testing.T) {
	cal := calibration.Assemble(1.234, -0.5, 7, 2.999, 750, 12, 1, 9)
	first := C(cal)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, C(cal))
	}
}

func TestC_Values(t *testing.T) {
	cal := calibration.Assemble(1.234, -0.5, 7, 2.999, 750, 12, 1, 9)
	out := C(cal)

	for _, line := range []string{
		"static const float SENSOR1_X = 1.23f;",
		"static const float SENSOR1_Y = -0.50f;",
		"static const float SENSOR2_X = 7.00f;",
		"static const float SENSOR2_Y = 3.00f;",
		"#define FALL_TRANSITION_MAX_MS 750",
		"#define LYING_CONFIRMATION_DURATION_S 12",
		"#define WATCHDOG_CHECK_INTERVAL_S 1",
		"#define SLAVE_MODULE_TIMEOUT_S 9",
	} {
		assert.Contains(t, out, line+"\n")
	}
}

func TestC_Order(t *testing.T) {
	out := C(calibration.Defaults())
	order := []string{
		"SENSOR1_X", "SENSOR1_Y", "SENSOR2_X", "SENSOR2_Y",
		"FALL_TRANSITION_MAX_MS", "LYING_CONFIRMATION_DURATION_S",
		"WATCHDOG_CHECK_INTERVAL_S", "SLAVE_MODULE_TIMEOUT_S",
		"rebuild and reflash",
	}
	last := -1
	for _, sym := range order {
		idx := strings.Index(out, sym)
		require.Greater(t, idx, last, "%s out of order", sym)
		last = idx
	}
}

func TestFloatLiteral(t *testing.T) {
	cases := map[float64]string{
		3:       "3.00f",
		0:       "0.00f",
		0.5:     "0.50f",
		-1.2:    "-1.20f",
		10.0049: "10.00f",
		2.675:   "2.67f", // binary 2.67499999...
		123.456: "123.46f",
	}
	for in, want := range cases {
		assert.Equal(t, want, FloatLiteral(in), "FloatLiteral(%v)", in)
	}
}

func TestWriteC(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteC(&buf, calibration.Defaults()))
	assert.Equal(t, defaultSnippet, buf.String())
}
