package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Matrix color palette
var (
	ColorMatrixGreen = lipgloss.Color("#00FF41")
	ColorGreen       = lipgloss.Color("#00CC33")
	ColorMidGreen    = lipgloss.Color("#008F11")
	ColorDimGreen    = lipgloss.Color("#004A0A")
	ColorSensor1     = lipgloss.Color("#00FFAA")
	ColorSensor2     = lipgloss.Color("#FFCC00")
	ColorBorderNorm  = lipgloss.Color("#00AA22")
	ColorWarning     = lipgloss.Color("#FFAA00")
	ColorBarBackdrop = lipgloss.Color("#002200")
)

// Styles is the set of styles used for prompts, banners and the layout
// preview. Styles are bound to one lipgloss renderer so that output to a
// pipe or buffer carries no escape sequences.
type Styles struct {
	TitleBar    lipgloss.Style
	Section     lipgloss.Style
	Hint        lipgloss.Style
	Prompt      lipgloss.Style
	Placeholder lipgloss.Style
	Notice      lipgloss.Style
	Panel       lipgloss.Style
	PanelTitle  lipgloss.Style
	Axis        lipgloss.Style
	Grid        lipgloss.Style
	Origin      lipgloss.Style
	Sensor1     lipgloss.Style
	Sensor2     lipgloss.Style
	Summary     lipgloss.Style
}

// NewStyles builds the palette for the given renderer.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		TitleBar: r.NewStyle().
			Background(ColorBarBackdrop).
			Foreground(ColorMatrixGreen).
			Bold(true),

		Section: r.NewStyle().
			Foreground(ColorMatrixGreen).
			Bold(true),

		Hint: r.NewStyle().
			Foreground(ColorMidGreen),

		Prompt: r.NewStyle().
			Foreground(ColorGreen),

		Placeholder: r.NewStyle().
			Foreground(ColorDimGreen),

		Notice: r.NewStyle().
			Foreground(ColorWarning).
			Bold(true),

		Panel: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorderNorm),

		PanelTitle: r.NewStyle().
			Foreground(ColorMatrixGreen).
			Bold(true),

		Axis: r.NewStyle().
			Foreground(ColorMidGreen),

		Grid: r.NewStyle().
			Foreground(ColorDimGreen),

		Origin: r.NewStyle().
			Foreground(ColorMatrixGreen).
			Bold(true),

		Sensor1: r.NewStyle().
			Foreground(ColorSensor1).
			Bold(true),

		Sensor2: r.NewStyle().
			Foreground(ColorSensor2).
			Bold(true),

		Summary: r.NewStyle().
			Foreground(ColorGreen),
	}
}

// StylesFor returns styles for output written to w.
func StylesFor(w io.Writer) Styles {
	return NewStyles(lipgloss.NewRenderer(w))
}
