package app

// Operator-facing prompt labels, one per field.
const (
	labelSensor1X = "Sensor 1 X position"
	labelSensor1Y = "Sensor 1 Y position"
	labelSensor2X = "Sensor 2 X position"
	labelSensor2Y = "Sensor 2 Y position"

	labelFallTransition    = "Max fall transition time (standing to lying) in ms"
	labelLyingConfirmation = "Time lying down before a fall is confirmed, in seconds"

	labelWatchdogInterval = "Watchdog check interval in seconds"
	labelSlaveTimeout     = "Timeout before a slave module is considered offline, in seconds"
)

const (
	sectionSensors  = "Sensor Position Configuration"
	sectionFall     = "Fall Detection Thresholds"
	sectionWatchdog = "Slave Module Watchdog Thresholds"
)
