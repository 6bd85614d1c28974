package config

const (
	// Sensor defaults in meters, (0,0) is the room corner used as origin
	DefaultSensor1X = 0.0
	DefaultSensor1Y = 0.5
	DefaultSensor2X = 3.0
	DefaultSensor2Y = 0.5

	// Fall detection defaults
	DefaultFallTransitionMaxMs        = 1000 // Max standing-to-lying transition for a fall
	DefaultLyingConfirmationDurationS = 20   // Time spent lying before the fall is confirmed

	// Slave module watchdog defaults
	DefaultWatchdogCheckIntervalS = 2 // How often the master checks module heartbeats
	DefaultSlaveModuleTimeoutS    = 5 // Silence before a module is considered offline

	// Firmware symbols, must match master_firmware/main/main.c verbatim
	SymbolSensor1X                  = "SENSOR1_X"
	SymbolSensor1Y                  = "SENSOR1_Y"
	SymbolSensor2X                  = "SENSOR2_X"
	SymbolSensor2Y                  = "SENSOR2_Y"
	SymbolFallTransitionMaxMs       = "FALL_TRANSITION_MAX_MS"
	SymbolLyingConfirmationDuration = "LYING_CONFIRMATION_DURATION_S"
	SymbolWatchdogCheckInterval     = "WATCHDOG_CHECK_INTERVAL_S"
	SymbolSlaveModuleTimeout        = "SLAVE_MODULE_TIMEOUT_S"

	// Snippet destination
	TargetFile     = "master_firmware/main/main.c"
	TargetFunction = "calculate_xy_position"

	// Layout preview
	PreviewWidth  = 48  // Grid columns
	PreviewHeight = 16  // Grid rows
	AspectRatio   = 0.5 // Terminal char aspect correction (chars are ~2:1 tall)
	PreviewMargin = 1   // Empty cells kept around the plotted area

	// App
	AppName    = "FALL-CALIBRATE"
	AppVersion = "1.0"
)
