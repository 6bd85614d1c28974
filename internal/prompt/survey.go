package prompt

import (
	"context"
	"errors"
	"fmt"
	"os"

	"fall-calibrate.klederson.com/internal/ui"
	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// SurveyDriver prompts through survey. Survey fills in the default on an
// empty answer; the displayed default parses back to the same value, so the
// collector sees no difference.
type SurveyDriver struct {
	in     terminal.FileReader
	out    terminal.FileWriter
	styles ui.Styles
}

// NewSurveyDriver creates a survey driver on the process terminal.
func NewSurveyDriver(styles ui.Styles) *SurveyDriver {
	return &SurveyDriver{
		in:     os.Stdin,
		out:    os.Stdout,
		styles: styles,
	}
}

func (d *SurveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	q := &survey.Input{
		Message: cfg.Message,
		Default: cfg.Default,
	}
	if err := survey.AskOne(q, &out, survey.WithStdio(d.in, d.out, os.Stderr)); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (d *SurveyDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.out, d.styles.Notice.Render(msg))
	return err
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
