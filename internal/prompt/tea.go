package prompt

import (
	"context"
	"fmt"
	"io"

	"fall-calibrate.klederson.com/internal/ui"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TeaDriver runs one small Bubble Tea program per field.
type TeaDriver struct {
	in     io.Reader // nil means the terminal
	out    io.Writer
	styles ui.Styles
}

// NewTeaDriver creates a Bubble Tea driver. Pass a nil reader to read from
// the controlling terminal.
func NewTeaDriver(in io.Reader, out io.Writer, styles ui.Styles) *TeaDriver {
	return &TeaDriver{
		in:     in,
		out:    out,
		styles: styles,
	}
}

func (d *TeaDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	opts := []tea.ProgramOption{
		tea.WithOutput(d.out),
		tea.WithContext(ctx),
	}
	if d.in != nil {
		opts = append(opts, tea.WithInput(d.in))
	}

	final, err := tea.NewProgram(newInputModel(cfg, d.styles), opts...).Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", err
	}

	m, ok := final.(inputModel)
	if !ok {
		return "", fmt.Errorf("prompt: unexpected model %T", final)
	}
	if m.aborted {
		return "", ErrAborted
	}
	return m.input.Value(), nil
}

func (d *TeaDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.out, d.styles.Notice.Render(msg))
	return err
}

// inputModel is a single-line answer with the default as placeholder.
type inputModel struct {
	input   textinput.Model
	done    bool
	aborted bool
}

func newInputModel(cfg InputConfig, styles ui.Styles) inputModel {
	ti := textinput.New()
	ti.Prompt = cfg.Label()
	ti.PromptStyle = styles.Prompt
	ti.Placeholder = cfg.Default
	ti.PlaceholderStyle = styles.Placeholder
	ti.CharLimit = 64
	ti.Focus()
	return inputModel{input: ti}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done || m.aborted {
		// Leave the answered prompt in the scrollback without cursor or placeholder
		return m.input.Prompt + m.input.Value() + "\n"
	}
	return m.input.View()
}
