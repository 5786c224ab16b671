package tui

import (
	"image"
	"image/color"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/huewheel/internal/colour"
	"github.com/jmylchreest/huewheel/internal/picker"
	"github.com/jmylchreest/huewheel/internal/widget"
)

func newModel(t *testing.T, hex string) (*Model, *[]string) {
	t.Helper()
	var commits []string
	m, err := NewModel(picker.Options{
		Color:         hex,
		OnColorChange: func(h string) { commits = append(commits, h) },
	})
	require.NoError(t, err)
	return m, &commits
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestMouseDragOnRing(t *testing.T) {
	m, commits := newModel(t, "#FF0000")

	// Bottom of the ring: pixel (99.5, 137).
	m.Update(press(99, 68))
	assert.Equal(t, picker.DraggingHue, m.Picker().State().Drag)
	require.Len(t, *commits, 1)
	assert.Equal(t, m.Color(), (*commits)[0])
	assert.Equal(t, m.lastCommit, m.Color())
	assert.True(t, strings.HasPrefix(m.Color(), "#00F"), m.Color())

	m.Update(tea.MouseMsg{X: 170, Y: 37, Action: tea.MouseActionMotion})
	assert.Len(t, *commits, 2, "drag moves the hue")

	m.Update(tea.MouseMsg{X: 170, Y: 37, Action: tea.MouseActionRelease})
	assert.Equal(t, picker.Idle, m.Picker().State().Drag)

	m.Update(tea.MouseMsg{X: 99, Y: 68, Action: tea.MouseActionMotion})
	assert.Len(t, *commits, 2, "motion without a drag is ignored")
}

func TestMouseIgnoresOtherButtons(t *testing.T) {
	m, commits := newModel(t, "#FF0000")
	m.Update(tea.MouseMsg{X: 99, Y: 68, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	assert.Empty(t, *commits)
	assert.Equal(t, picker.Idle, m.Picker().State().Drag)
}

func TestMousePressBesideWidgetIsIgnored(t *testing.T) {
	m, commits := newModel(t, "#FF0000")
	w := m.Picker().Geometry().Width

	for _, x := range []int{w, w + 50} {
		m.Update(press(x, 10))
		assert.Empty(t, *commits, "x=%d", x)
		assert.Equal(t, picker.Idle, m.Picker().State().Drag, "x=%d", x)
	}
	assert.Equal(t, "#FF0000", m.Color())

	m.Update(press(w-1, 37))
	assert.Equal(t, picker.DraggingHue, m.Picker().State().Drag, "last column still belongs to the widget")
}

func TestSwatchClick(t *testing.T) {
	m, commits := newModel(t, "#FF0000")
	rows := m.widgetRows()

	// Second row, third swatch.
	m.Update(press(2*(swatchWidth+swatchGap), rows+2))
	assert.Equal(t, []string{"#0000FF"}, *commits)

	// The gap between swatches does nothing.
	m.Update(press(swatchWidth, rows+2))
	assert.Len(t, *commits, 1)

	i, ok := m.swatchAt(0, rows+1)
	assert.True(t, ok)
	assert.Equal(t, 0, i)
	_, ok = m.swatchAt(0, rows+4)
	assert.False(t, ok)
}

func TestModeKeys(t *testing.T) {
	m, commits := newModel(t, "#336699")

	m.Update(runes("2"))
	assert.Equal(t, widget.ModeHSL, m.Picker().Mode())
	m.Update(runes("m"))
	assert.Equal(t, widget.ModeOKLCH, m.Picker().Mode())
	m.Update(runes("m"))
	assert.Equal(t, widget.ModeHSV, m.Picker().Mode())
	m.Update(runes("3"))
	assert.Equal(t, widget.ModeOKLCH, m.Picker().Mode())

	assert.Empty(t, *commits, "mode switches never commit")
	assert.Equal(t, "#336699", m.Color())
}

func TestHexFieldEditing(t *testing.T) {
	m, commits := newModel(t, "#FF0000")

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusHex, m.focus)

	for i := 0; i < 6; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	}
	assert.Equal(t, "#", m.Picker().State().HexText)

	_, cmd := m.Update(runes("q"))
	assert.Nil(t, cmd, "q types into a focused field")
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})

	for _, r := range "00ff00" {
		m.Update(runes(string(r)))
	}
	assert.Equal(t, []string{"#00FF00"}, *commits)
	st := m.Picker().State()
	assert.Equal(t, "#00ff00", st.HexText)
	assert.Equal(t, "0, 255, 0", st.RGBText)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, focusNone, m.focus)
}

func TestRGBFieldEditing(t *testing.T) {
	m, commits := newModel(t, "#000000")

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, focusRGB, m.focus)

	for i := 0; i < len("0, 0, 0"); i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	}
	m.Update(runes("1,"))
	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m.Update(runes("2, 3"))

	assert.Equal(t, "1, 2, 3", m.Picker().State().RGBText)
	assert.Equal(t, []string{"#010203"}, *commits)
}

func TestQuit(t *testing.T) {
	m, _ := newModel(t, "#FF0000")
	assert.NotEmpty(t, m.View())

	_, cmd := m.Update(runes("q"))
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())

	m, _ = newModel(t, "#FF0000")
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.NotNil(t, cmd, "ctrl+c quits even while editing")
}

func TestView(t *testing.T) {
	m, _ := newModel(t, "#FF0000")
	view := m.View()

	lines := strings.Split(view, "\n")
	assert.Len(t, lines, m.widgetRows()+ReservedRows)
	assert.Contains(t, view, "▀")
	assert.Contains(t, view, "HSV")
	assert.Contains(t, view, "#FF0000")
	assert.Contains(t, view, "255, 0, 0")
}

func TestFitSize(t *testing.T) {
	w, h := FitSize(80, 24, 200, 150)
	assert.Equal(t, 80, w)
	assert.Equal(t, 32, h)

	w, h = FitSize(300, 100, 200, 150)
	assert.Equal(t, 200, w)
	assert.Equal(t, 150, h)
}

func TestRenderHalfBlocks(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 3))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})

	out := RenderHalfBlocks(img, PanelBackground)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, 4, strings.Count(out, halfBlock))
}

func TestBlend(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 255, A: 0})

	bg := colour.RGB(30, 30, 30)
	assert.Equal(t, "#FFFFFF", blend(img, 0, 0, bg).Hex())
	assert.Equal(t, bg.Hex(), blend(img, 1, 0, bg).Hex())
	assert.Equal(t, bg.Hex(), blend(img, 0, 5, bg).Hex())
}
