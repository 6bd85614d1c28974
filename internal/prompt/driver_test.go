package prompt

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"fall-calibrate.klederson.com/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineDriver_ReadsLines(t *testing.T) {
	var out bytes.Buffer
	d := NewLineDriver(strings.NewReader("42\r\n\nlast"), &out)
	ctx := context.Background()
	cfg := InputConfig{Message: "Value", Default: "1"}

	got, err := d.Input(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, "42", got)

	got, err = d.Input(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, "", got)

	got, err = d.Input(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, "last", got)

	// Exhausted input behaves like an empty answer
	got, err = d.Input(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, "", got)

	assert.Equal(t, 4, strings.Count(out.String(), "Value (default: 1): "))
}

func TestLineDriver_Info(t *testing.T) {
	var out bytes.Buffer
	d := NewLineDriver(strings.NewReader(""), &out)
	require.NoError(t, d.Info(context.Background(), "hello"))
	assert.Equal(t, "hello\n", out.String())
}

func TestLineDriver_CanceledContext(t *testing.T) {
	d := NewLineDriver(strings.NewReader("1\n"), &bytes.Buffer{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := d.Input(ctx, InputConfig{Message: "X"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInputModel_TypeAndSubmit(t *testing.T) {
	styles := ui.StylesFor(&bytes.Buffer{})
	var m tea.Model = newInputModel(InputConfig{Message: "Timeout", Default: "5"}, styles)

	for _, r := range "12" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	im := m.(inputModel)
	assert.True(t, im.done)
	assert.False(t, im.aborted)
	assert.Equal(t, "12", im.input.Value())
	assert.Equal(t, "Timeout (default: 5): 12\n", im.View())
}

func TestInputModel_EmptySubmitKeepsDefault(t *testing.T) {
	styles := ui.StylesFor(&bytes.Buffer{})
	var m tea.Model = newInputModel(InputConfig{Message: "X", Default: "0.5"}, styles)

	assert.Contains(t, m.View(), "X (default: 0.5): ")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	im := m.(inputModel)
	assert.True(t, im.done)
	assert.Equal(t, "", im.input.Value())
}

func TestInputModel_Abort(t *testing.T) {
	styles := ui.StylesFor(&bytes.Buffer{})
	for _, key := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		var m tea.Model = newInputModel(InputConfig{Message: "X", Default: "1"}, styles)
		m, cmd := m.Update(tea.KeyMsg{Type: key})
		require.NotNil(t, cmd)
		assert.True(t, m.(inputModel).aborted)
	}
}

func TestTeaDriver_Info(t *testing.T) {
	var out bytes.Buffer
	d := NewTeaDriver(nil, &out, ui.StylesFor(&out))
	require.NoError(t, d.Info(context.Background(), "Invalid input. Using default value: 2"))
	assert.Equal(t, "Invalid input. Using default value: 2\n", out.String())
}

func TestNewDriver_ExplicitModes(t *testing.T) {
	styles := ui.StylesFor(&bytes.Buffer{})

	assert.IsType(t, &LineDriver{}, NewDriver(ModeLine, nil, &bytes.Buffer{}, styles))
	assert.IsType(t, &TeaDriver{}, NewDriver(ModeTea, nil, &bytes.Buffer{}, styles))
	assert.IsType(t, &SurveyDriver{}, NewDriver(ModeSurvey, nil, &bytes.Buffer{}, styles))
	// A nil file is never a terminal
	assert.IsType(t, &LineDriver{}, NewDriver(ModeAuto, nil, &bytes.Buffer{}, styles))
}
