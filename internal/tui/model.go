// Package tui hosts the picker in a terminal: the widget is drawn with half-block cells and
// mouse input is translated into pointer events.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/huewheel/internal/colour"
	"github.com/jmylchreest/huewheel/internal/picker"
	"github.com/jmylchreest/huewheel/internal/widget"
)

// Layout of the rows below the widget.
const (
	swatchWidth = 4
	swatchGap   = 1
	// ReservedRows is the number of terminal rows used by everything except the widget.
	ReservedRows = 8
)

type field int

const (
	focusNone field = iota
	focusHex
	focusRGB
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8A8A8A"))
	fieldStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0"))
	focusStyle = lipgloss.NewStyle().Reverse(true)
	modeStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
)

// Model is the bubbletea model wrapping a picker.
type Model struct {
	picker *picker.Picker
	focus  field

	lastCommit string
	quitting   bool
}

// NewModel creates a picker from opts. opts.OnColorChange still receives every commit.
func NewModel(opts picker.Options) (*Model, error) {
	m := &Model{}
	onColor := opts.OnColorChange
	opts.OnColorChange = func(hex string) {
		m.lastCommit = hex
		if onColor != nil {
			onColor(hex)
		}
	}

	p, err := picker.New(opts)
	if err != nil {
		return nil, err
	}
	m.picker = p
	return m, nil
}

// FitSize shrinks a width x height widget to fit a terminal of cols x rows cells.
func FitSize(cols, rows, width, height int) (int, int) {
	return min(width, cols), min(height, 2*(rows-ReservedRows))
}

// Run shows the picker until the user quits and returns the committed colour.
func Run(ctx context.Context, opts picker.Options) (string, error) {
	m, err := NewModel(opts)
	if err != nil {
		return "", err
	}

	prog := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := prog.Run(); err != nil {
		return "", fmt.Errorf("failed to run picker: %w", err)
	}
	return m.Color(), nil
}

// Color returns the picker's committed colour.
func (m *Model) Color() string {
	return m.picker.Color()
}

// Picker returns the wrapped picker.
func (m *Model) Picker() *picker.Picker {
	return m.picker
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) widgetRows() int {
	return (m.picker.Geometry().Height + 1) / 2
}

// cellCentre maps a terminal cell to the widget pixel at its centre.
func cellCentre(x, y int) (float64, float64) {
	return float64(x) + 0.5, float64(2*y) + 1
}

// swatchAt returns the swatch index under cell (x, y), if any.
func (m *Model) swatchAt(x, y int) (int, bool) {
	row := y - m.widgetRows() - 1
	rows := len(colour.Swatches()) / colour.SwatchesPerRow
	if row < 0 || row >= rows || x < 0 {
		return 0, false
	}
	col := x / (swatchWidth + swatchGap)
	if x%(swatchWidth+swatchGap) >= swatchWidth || col >= colour.SwatchesPerRow {
		return 0, false
	}
	return row*colour.SwatchesPerRow + col, true
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if i, ok := m.swatchAt(msg.X, msg.Y); ok {
			m.picker.Handle(picker.SwatchSelect{Index: i})
			return
		}
		if msg.X < m.picker.Geometry().Width && msg.Y < m.widgetRows() {
			x, y := cellCentre(msg.X, msg.Y)
			m.picker.Handle(picker.PointerDown{X: x, Y: y})
		}
	case tea.MouseActionMotion:
		if m.picker.ListensForMove() {
			x, y := cellCentre(msg.X, msg.Y)
			m.picker.Handle(picker.PointerMove{X: x, Y: y})
		}
	case tea.MouseActionRelease:
		m.picker.Handle(picker.PointerUp{})
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return tea.Quit
	case "tab":
		m.focus = (m.focus + 1) % 3
		return nil
	case "esc", "enter":
		m.focus = focusNone
		return nil
	}

	if m.focus != focusNone {
		m.edit(msg)
		return nil
	}

	modes := widget.Modes()
	switch key := msg.String(); key {
	case "q":
		m.quitting = true
		return tea.Quit
	case "m":
		i := (indexOf(modes, m.picker.Mode()) + 1) % len(modes)
		m.picker.Handle(picker.ModeSwitch{Mode: modes[i]})
	case "1", "2", "3":
		m.picker.Handle(picker.ModeSwitch{Mode: modes[key[0]-'1']})
	}
	return nil
}

// edit applies a key to the focused text field and hands the result to the picker.
func (m *Model) edit(msg tea.KeyMsg) {
	st := m.picker.State()
	text := st.HexText
	if m.focus == focusRGB {
		text = st.RGBText
	}

	switch msg.Type {
	case tea.KeyBackspace:
		r := []rune(text)
		if len(r) == 0 {
			return
		}
		text = string(r[:len(r)-1])
	case tea.KeySpace:
		text += " "
	case tea.KeyRunes:
		text += string(msg.Runes)
	default:
		return
	}

	if m.focus == focusHex {
		m.picker.Handle(picker.HexInput{Text: text})
	} else {
		m.picker.Handle(picker.RGBInput{Text: text})
	}
}

func indexOf(modes []widget.Mode, m widget.Mode) int {
	for i, x := range modes {
		if x == m {
			return i
		}
	}
	return 0
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	st := m.picker.State()
	var b strings.Builder

	b.WriteString(RenderHalfBlocks(m.picker.Image(), PanelBackground))
	b.WriteString("\n\n")

	for i, c := range colour.Swatches() {
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render(strings.Repeat(" ", swatchWidth)))
		if (i+1)%colour.SwatchesPerRow == 0 {
			b.WriteString("\n")
		} else {
			b.WriteString(strings.Repeat(" ", swatchGap))
		}
	}
	b.WriteString("\n")

	chip := lipgloss.NewStyle().
		Background(lipgloss.Color(st.Hex())).
		Foreground(lipgloss.Color(colour.ReadableOn(st.Color).Hex())).
		Render(" " + st.Hex() + " ")

	b.WriteString(labelStyle.Render("hex ") + m.fieldView(st.HexText, focusHex) + "  ")
	b.WriteString(labelStyle.Render("rgb ") + m.fieldView(st.RGBText, focusRGB) + "  ")
	b.WriteString(chip + "\n")

	b.WriteString(labelStyle.Render("mode ") + modeStyle.Render(st.Mode.Label()))
	if m.lastCommit != "" {
		b.WriteString(labelStyle.Render("  last commit ") + m.lastCommit)
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("m/1/2/3 mode  tab edit  esc done  q quit"))

	return b.String()
}

func (m *Model) fieldView(text string, f field) string {
	if m.focus == f {
		return focusStyle.Render(text + " ")
	}
	return fieldStyle.Render(text)
}
