package app

import (
	"context"
	"fmt"
	"io"

	"fall-calibrate.klederson.com/internal/calibration"
	"fall-calibrate.klederson.com/internal/config"
	"fall-calibrate.klederson.com/internal/layout"
	"fall-calibrate.klederson.com/internal/prompt"
	"fall-calibrate.klederson.com/internal/snippet"
	"fall-calibrate.klederson.com/internal/ui"
	"go.uber.org/zap"
)

// Options selects the optional outputs. The C snippets are always printed.
type Options struct {
	Structured snippet.Format // FormatNone skips the structured document
	Preview    bool           // print the sensor layout preview
	Width      int            // title bar width, zero means config.PreviewWidth
}

// App runs one collect, assemble and render pass.
type App struct {
	collector *prompt.Collector
	out       io.Writer
	styles    ui.Styles
	logger    *zap.Logger
	opts      Options
}

// New creates an App reading answers through driver and writing banners and
// snippets to out.
func New(driver prompt.Driver, out io.Writer, logger *zap.Logger, opts Options) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Structured == "" {
		opts.Structured = snippet.FormatNone
	}
	if opts.Width <= 0 {
		opts.Width = config.PreviewWidth
	}
	return &App{
		collector: prompt.NewCollector(driver, prompt.WithLogger(logger)),
		out:       out,
		styles:    ui.StylesFor(out),
		logger:    logger,
		opts:      opts,
	}
}

// Run collects every field, then renders. It fails only when the operator
// aborts or the terminal breaks; bad answers fall back to defaults.
func (a *App) Run(ctx context.Context) (calibration.Calibration, error) {
	a.printf("%s\n", ui.RenderTitleBar(a.styles, a.opts.Width))
	a.printf("This tool generates configuration values for your firmware.\n")
	a.printf("%s\n", a.styles.Hint.Render("Answer the following questions. Press Enter to keep the default value."))

	cal, err := a.Collect(ctx)
	if err != nil {
		return cal, err
	}
	a.logger.Debug("calibration assembled", zap.Float64("baseline_m", cal.Sensors.Baseline()))

	if err := a.Render(cal); err != nil {
		return cal, err
	}

	a.printf("\nCalibration complete.\n")
	a.printf("%s\n", a.styles.Hint.Render("Remember to transfer the generated C snippets into your firmware manually."))
	return cal, nil
}

// Collect prompts for the eight fields in firmware order and assembles them.
func (a *App) Collect(ctx context.Context) (calibration.Calibration, error) {
	var (
		s1x, s1y, s2x, s2y               float64
		fallMs, lyingS, checkS, timeoutS int
	)

	steps := []func() error{
		a.section(sectionSensors, "Enter the (x, y) coordinates in meters for each sensor."),
		a.floatField(ctx, &s1x, labelSensor1X, config.DefaultSensor1X),
		a.floatField(ctx, &s1y, labelSensor1Y, config.DefaultSensor1Y),
		a.floatField(ctx, &s2x, labelSensor2X, config.DefaultSensor2X),
		a.floatField(ctx, &s2y, labelSensor2Y, config.DefaultSensor2Y),

		a.section(sectionFall, ""),
		a.intField(ctx, &fallMs, labelFallTransition, config.DefaultFallTransitionMaxMs),
		a.intField(ctx, &lyingS, labelLyingConfirmation, config.DefaultLyingConfirmationDurationS),

		a.section(sectionWatchdog, ""),
		a.intField(ctx, &checkS, labelWatchdogInterval, config.DefaultWatchdogCheckIntervalS),
		a.intField(ctx, &timeoutS, labelSlaveTimeout, config.DefaultSlaveModuleTimeoutS),
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return calibration.Calibration{}, err
		}
	}

	return calibration.Assemble(s1x, s1y, s2x, s2y, fallMs, lyingS, checkS, timeoutS), nil
}

// Render writes the C snippets, then the optional document and preview.
func (a *App) Render(cal calibration.Calibration) error {
	a.printf("\n")
	if err := snippet.WriteC(a.out, cal); err != nil {
		return fmt.Errorf("write snippets: %w", err)
	}

	if a.opts.Structured != snippet.FormatNone {
		doc, err := snippet.Document(cal, a.opts.Structured)
		if err != nil {
			return err
		}
		name := formatName(a.opts.Structured)
		a.printf("\n%s\n", ui.RenderSection(a.styles, fmt.Sprintf("Alternative %s Configuration (for reference)", name)))
		a.printf("If the firmware could read its configuration from a %s file, it could look like this:\n", name)
		if _, err := a.out.Write(doc); err != nil {
			return fmt.Errorf("write document: %w", err)
		}
		a.printf("%s\n", ui.RenderSection(a.styles, fmt.Sprintf("End of %s Configuration", name)))
	}

	if a.opts.Preview {
		w, h := config.PreviewWidth, config.PreviewHeight
		plan := layout.Render(a.styles, w, h, cal.Sensors)
		content := plan + "\n" + layout.RenderLegend(a.styles, w)
		a.printf("\n%s\n", ui.RenderPanel(a.styles, "SENSOR LAYOUT", content, ui.RenderSummary(a.styles, cal.Sensors)))
	}
	return nil
}

func (a *App) section(title, hint string) func() error {
	return func() error {
		a.printf("\n%s\n", ui.RenderSection(a.styles, title))
		if hint != "" {
			a.printf("%s\n", a.styles.Hint.Render(hint))
		}
		return nil
	}
}

func (a *App) floatField(ctx context.Context, dst *float64, label string, def float64) func() error {
	return func() error {
		v, err := a.collector.Float(ctx, label, def)
		*dst = v
		return err
	}
}

func (a *App) intField(ctx context.Context, dst *int, label string, def int) func() error {
	return func() error {
		v, err := a.collector.Int(ctx, label, def)
		*dst = v
		return err
	}
}

func (a *App) printf(format string, args ...any) {
	// Banner output is best effort; write errors surface on the next prompt
	_, _ = fmt.Fprintf(a.out, format, args...)
}

func formatName(f snippet.Format) string {
	switch f {
	case snippet.FormatYAML:
		return "YAML"
	default:
		return "JSON"
	}
}
