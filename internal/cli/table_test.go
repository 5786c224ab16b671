package cli

import (
	"strings"
	"testing"

	"github.com/jmylchreest/huewheel/internal/colour"
)

func TestTableAddRow(t *testing.T) {
	table := NewTable("Name", "Hex")

	table.AddRow("red", "#FF0000")
	table.AddRow("short")
	table.AddRow("long", "#00FF00", "extra")

	if len(table.rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(table.rows))
	}
	for i, row := range table.rows {
		if len(row) != 2 {
			t.Errorf("row %d has %d cells, want 2", i, len(row))
		}
	}
	if table.rows[1][1] != "" {
		t.Errorf("Expected empty string for padded column, got %q", table.rows[1][1])
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable("Space", "Value")
	table.AddRow("hex", "#FF0000")
	table.AddRow("oklrch", "L 0.568")

	want := "Space   Value\n" +
		"------  -------\n" +
		"hex     #FF0000\n" +
		"oklrch  L 0.568\n"
	if got := table.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestTableRenderIgnoresANSIWidth(t *testing.T) {
	defer func(prev bool) { colour.DisableColourOutput = prev }(colour.DisableColourOutput)
	colour.DisableColourOutput = false

	table := NewTable("Swatch", "Hex")
	table.AddRow(colour.ColourPreview(colour.RGB(255, 0, 0), 4), "#FF0000")

	lines := strings.Split(table.Render(), "\n")
	if !strings.HasPrefix(lines[1], "------  ---") {
		t.Errorf("separator %q should size the swatch column to its header", lines[1])
	}
	if !strings.HasSuffix(lines[2], "\033[0m    #FF0000") {
		t.Errorf("row %q should pad the preview by its visible width", lines[2])
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if got := NewTable().Render(); got != "" {
		t.Errorf("Render() = %q, want empty", got)
	}
}
