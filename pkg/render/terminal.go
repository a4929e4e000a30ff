// Package render draws catv vectors and matrices as fixed-width text tables
// on ultraviolet screens.
package render

import (
	"image/color"
	"math"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/catv/pkg/catv"
)

// CellWidth is the number of columns each entry is right-aligned in. Every
// entry is followed by one separating space.
const CellWidth = catv.EntryWidth

// Colors for entry styling.
var (
	ColorRed    = color.RGBA{255, 0, 0, 255}
	ColorYellow = color.RGBA{255, 255, 0, 255}
)

// MatrixView is a grid of values drawn as a table, one row per line.
type MatrixView struct {
	Rows [][]float32
}

var _ uv.Drawable = MatrixView{}

// Matrix3View returns a view of a 3x3 matrix.
func Matrix3View(m catv.Matrix3) MatrixView {
	rows := make([][]float32, 3)
	for i := range rows {
		rows[i] = []float32{m[i][0], m[i][1], m[i][2]}
	}
	return MatrixView{Rows: rows}
}

// Matrix4View returns a view of a 4x4 matrix.
func Matrix4View(m catv.Matrix4) MatrixView {
	rows := make([][]float32, 4)
	for i := range rows {
		rows[i] = []float32{m[i][0], m[i][1], m[i][2], m[i][3]}
	}
	return MatrixView{Rows: rows}
}

// Vector3View returns a single-row view of v.
func Vector3View(v catv.Vector3) MatrixView {
	return MatrixView{Rows: [][]float32{{v.X, v.Y, v.Z}}}
}

// Vector4View returns a single-row view of v.
func Vector4View(v catv.Vector4) MatrixView {
	return MatrixView{Rows: [][]float32{{v.X, v.Y, v.Z, v.W}}}
}

// Size returns the number of terminal columns and rows the view occupies.
func (v MatrixView) Size() (width, height int) {
	cols := 0
	for _, row := range v.Rows {
		cols = max(cols, len(row))
	}
	return cols * (CellWidth + 1), len(v.Rows)
}

// Draw writes the table into area, clipping anything outside it.
func (v MatrixView) Draw(scr uv.Screen, area uv.Rectangle) {
	for r, row := range v.Rows {
		y := area.Min.Y + r
		if y >= area.Max.Y {
			return
		}
		for c, val := range row {
			x0 := area.Min.X + c*(CellWidth+1)
			style := entryStyle(val)
			for k, ch := range catv.FormatEntry(val) {
				x := x0 + k
				if x >= area.Max.X {
					break
				}
				cell := &uv.Cell{
					Content: string(ch),
					Width:   1,
				}
				if ch != ' ' {
					cell.Style = style
				}
				scr.SetCell(x, y, cell)
			}
		}
	}
}

// Table renders the view as plain text. Each line ends at its last entry;
// the separating space after it is trimmed, unlike Matrix3.String and
// Matrix4.String.
func Table(v MatrixView) string {
	return draw(v).String()
}

// StyledTable renders the view with ANSI styling: zero entries are faint,
// negative entries yellow and non-finite entries bold red.
func StyledTable(v MatrixView) string {
	return draw(v).Render()
}

func draw(v MatrixView) uv.ScreenBuffer {
	w, h := v.Size()
	buf := uv.NewScreenBuffer(w, h)
	v.Draw(buf, buf.Bounds())
	return buf
}

func entryStyle(v float32) uv.Style {
	f := float64(v)
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return uv.Style{Fg: ColorRed, Attrs: uv.AttrBold}
	case v == 0:
		return uv.Style{Attrs: uv.AttrFaint}
	case v < 0:
		return uv.Style{Fg: ColorYellow}
	}
	return uv.Style{}
}
