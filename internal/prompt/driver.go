package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrAborted signals the operator aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrUnknownMode is returned by ParseMode for unsupported driver names.
	ErrUnknownMode = errors.New("prompt: unknown mode")
)

// InputConfig configures a single line prompt.
type InputConfig struct {
	Message string
	Default string // display form of the field default
}

// Label returns the prompt text shown before the operator's answer.
func (c InputConfig) Label() string {
	return fmt.Sprintf("%s (default: %s): ", c.Message, c.Default)
}

// Driver abstracts the terminal front-end so collection can be tested
// without a real terminal. Input returns the raw answer; an empty string
// means the operator accepted the default.
type Driver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Info(ctx context.Context, msg string) error
}

// Mode selects a Driver implementation.
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeTea    Mode = "tea"
	ModeSurvey Mode = "survey"
	ModeLine   Mode = "line"
)

// ParseMode validates a driver name from the command line.
func ParseMode(raw string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(raw))); m {
	case "":
		return ModeAuto, nil
	case ModeAuto, ModeTea, ModeSurvey, ModeLine:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q (want auto, tea, survey or line)", ErrUnknownMode, raw)
	}
}
