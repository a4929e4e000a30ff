package render

import (
	"math"
	"strings"
	"testing"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/catv/pkg/catv"
)

func TestViewSize(t *testing.T) {
	tests := []struct {
		name         string
		view         MatrixView
		wantW, wantH int
	}{
		{"matrix3", Matrix3View(catv.Identity3()), 33, 3},
		{"matrix4", Matrix4View(catv.Identity4()), 44, 4},
		{"vector3", Vector3View(catv.V3(1, 2, 3)), 33, 1},
		{"vector4", Vector4View(catv.V4(1, 2, 3, 4)), 44, 1},
		{"empty", MatrixView{}, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, h := tc.view.Size()
			if w != tc.wantW || h != tc.wantH {
				t.Errorf("Size = (%d, %d), want (%d, %d)", w, h, tc.wantW, tc.wantH)
			}
		})
	}
}

func TestTableMatrix4(t *testing.T) {
	m := catv.Matrix4{
		{1, 2, 3, 4},
		{2, 4, 6, 7},
		{9, 11, 11, 12},
		{13, 14, 15, 16},
	}
	lines := strings.Split(Table(Matrix4View(m)), "\n")
	want := []string{
		"         1          2          3          4",
		"         2          4          6          7",
		"         9         11         11         12",
		"        13         14         15         16",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), strings.Join(lines, "\n"))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestTableMatchesString(t *testing.T) {
	m := catv.M3FromRows(catv.V3(1, -2, 0.5), catv.V3(0, 4, 6), catv.V3(9, 11, -11))
	lines := strings.Split(m.String(), "\n")
	table := strings.Split(Table(Matrix3View(m)), "\n")
	for i := range lines {
		if strings.TrimRight(lines[i], " ") != table[i] {
			t.Errorf("row %d: Table %q, String %q", i, table[i], lines[i])
		}
	}
}

func TestTableVector(t *testing.T) {
	got := Table(Vector4View(catv.Point4(1, 2, 3)))
	want := "         1          2          3          1"
	if got != want {
		t.Errorf("Table = %q, want %q", got, want)
	}
}

func TestStyledTable(t *testing.T) {
	plain := Table(Matrix3View(catv.Identity3()))
	styled := StyledTable(Matrix3View(catv.Identity3()))
	if !strings.Contains(styled, "\x1b[") {
		t.Error("styled table has no escape sequences for zero entries")
	}
	if plain == styled {
		t.Error("styled and plain tables should differ")
	}
}

func TestEntryStyle(t *testing.T) {
	if s := entryStyle(float32(math.NaN())); s.Fg != ColorRed || s.Attrs&uv.AttrBold == 0 {
		t.Errorf("NaN style = %+v, want bold red", s)
	}
	if s := entryStyle(0); s.Fg != nil {
		t.Errorf("zero style fg = %v, want none", s.Fg)
	}
	if s := entryStyle(-1); s.Fg != ColorYellow {
		t.Errorf("negative style fg = %v, want yellow", s.Fg)
	}
	if s := entryStyle(3); !s.IsZero() {
		t.Errorf("positive style = %+v, want zero", s)
	}
}

func TestDrawClipsToArea(t *testing.T) {
	view := Matrix4View(catv.Identity4())
	got := drawArea(view, 21, 2)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "         1          0" {
		t.Errorf("clipped row = %q", lines[0])
	}
}

func drawArea(v MatrixView, w, h int) string {
	buf := uv.NewScreenBuffer(w, h)
	v.Draw(buf, buf.Bounds())
	return buf.String()
}
