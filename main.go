package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"fall-calibrate.klederson.com/internal/app"
	"fall-calibrate.klederson.com/internal/prompt"
	"fall-calibrate.klederson.com/internal/snippet"
	"fall-calibrate.klederson.com/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	flagStructured string
	flagPrompt     string
	flagPreview    bool
	flagVerbose    bool

	logger *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fall-calibrate",
		Short: "Fall-detection calibration - generate firmware constants interactively",
		Long: `fall-calibrate asks for the radar sensor positions, the fall detection
thresholds and the slave module watchdog thresholds, then prints C snippets
to paste into master_firmware/main/main.c.

Press Enter at any prompt to keep the default. Invalid answers fall back to
the default with a notice. Nothing is written to disk and no hardware is
contacted.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: initLogger,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: run,
	}

	rootCmd.Flags().StringVar(&flagStructured, "structured", "none", "Also print a structured document: none, json or yaml")
	rootCmd.Flags().StringVar(&flagPrompt, "prompt", "auto", "Prompt driver: auto, tea, survey or line")
	rootCmd.Flags().BoolVar(&flagPreview, "preview", false, "Print a top-down preview of the sensor layout")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging on stderr")

	return rootCmd
}

func initLogger(cmd *cobra.Command, args []string) error {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if flagVerbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	format, err := snippet.ParseFormat(flagStructured)
	if err != nil {
		return err
	}
	mode, err := prompt.ParseMode(flagPrompt)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	driver := prompt.NewDriver(mode, cmd.InOrStdin(), out, ui.StylesFor(out))
	logger.Debug("starting calibration",
		zap.String("prompt", string(mode)),
		zap.String("structured", string(format)),
		zap.Bool("preview", flagPreview))

	_, err = app.New(driver, out, logger, app.Options{
		Structured: format,
		Preview:    flagPreview,
	}).Run(ctx)
	if errors.Is(err, prompt.ErrAborted) || errors.Is(err, context.Canceled) {
		fmt.Fprintln(cmd.ErrOrStderr(), "\nCalibration aborted, nothing generated.")
	}
	return err
}
