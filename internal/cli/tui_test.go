package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/geosvg/pkg/geo"
	"github.com/matzehuels/geosvg/pkg/style"
)

func testRows(t *testing.T) []memberRow {
	t.Helper()
	gc := geo.GeometryCollection[float64]{
		geo.Point[float64]{Coord: geo.Coord[float64]{X: 1, Y: 2}},
		geo.LineString[float64]{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}},
		geo.GeometryCollection[float64]{},
	}
	return memberRows(gc, style.Style{})
}

func TestMemberRows(t *testing.T) {
	rows := testRows(t)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	tests := []struct {
		kind     string
		vertices int
		bounds   string
	}{
		{"Point", 1, "0 1 2 2"},
		{"LineString", 3, "-1 -1 4 3"},
		{"GeometryCollection", 0, "empty"},
	}
	for i, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			r := rows[i]
			if r.Index != i || r.Kind != tt.kind || r.Vertices != tt.vertices {
				t.Errorf("row = {%d %s %d}, want {%d %s %d}", r.Index, r.Kind, r.Vertices, i, tt.kind, tt.vertices)
			}
			if got := formatBounds(r.Bounds); got != tt.bounds {
				t.Errorf("bounds = %q, want %q", got, tt.bounds)
			}
		})
	}
	if !strings.HasPrefix(rows[0].Fragment, "<circle") {
		t.Errorf("point fragment = %q", rows[0].Fragment)
	}
}

func TestInspectModelMove(t *testing.T) {
	m := newInspectModel("test", testRows(t))
	m.Height = 2

	tests := []struct {
		name       string
		delta      int
		wantCursor int
		wantOffset int
	}{
		{"up at top stays", -1, 0, 0},
		{"down", 1, 1, 0},
		{"down scrolls", 1, 2, 1},
		{"past end clamps", 5, 2, 1},
		{"back to top", -10, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m = m.move(tt.delta)
			if m.Cursor != tt.wantCursor || m.Offset != tt.wantOffset {
				t.Errorf("cursor/offset = %d/%d, want %d/%d", m.Cursor, m.Offset, tt.wantCursor, tt.wantOffset)
			}
		})
	}
}

func TestInspectModelUpdate(t *testing.T) {
	var model tea.Model = newInspectModel("roads.wkt", testRows(t))

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnd})
	m := model.(inspectModel)
	if m.Cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.Cursor)
	}

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if model.(inspectModel).Detail {
		t.Error("enter should toggle the preview off")
	}

	model, _ = model.Update(tea.WindowSizeMsg{Width: 120, Height: 16})
	m = model.(inspectModel)
	if m.Width != 120 || m.Height != 5 {
		t.Errorf("size = %dx%d, want 120x5", m.Width, m.Height)
	}

	if _, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}); cmd == nil {
		t.Error("q should quit")
	}
}

func TestInspectModelView(t *testing.T) {
	m := newInspectModel("roads.wkt", testRows(t)).move(1)
	view := m.View()
	for _, want := range []string{"roads.wkt", "LineString", "[2/3]", "view box"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	empty := newInspectModel("empty", nil).View()
	if !strings.Contains(empty, "no geometries") {
		t.Errorf("empty view = %q", empty)
	}
}
