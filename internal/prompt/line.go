package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// LineDriver reads answers line by line from any reader. It is used when
// stdin is not a terminal and by tests.
type LineDriver struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLineDriver creates a line driver writing prompts to out.
func NewLineDriver(in io.Reader, out io.Writer) *LineDriver {
	return &LineDriver{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Input writes the prompt and blocks until one line is read. End of input
// counts as an empty answer.
func (d *LineDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := io.WriteString(d.out, cfg.Label()); err != nil {
		return "", err
	}

	line, err := d.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if errors.Is(err, io.EOF) {
		// keep the transcript readable when input is piped without a trailing newline
		fmt.Fprintln(d.out)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Info prints a notice on its own line.
func (d *LineDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.out, msg)
	return err
}
