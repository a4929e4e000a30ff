package catv

import "strings"

// CofactorEpsilon is the magnitude below which a minor's determinant is
// treated as exactly zero by Cofactor.
const CofactorEpsilon = 1e-6

// Matrix4 is a 4x4 matrix stored in row-major order, addressed m[row][col].
//
// For an affine transform:
// | Xx Yx Zx Tx |   X,Y,Z = basis vectors (rotation/scale)
// | Xy Yy Zy Ty |   T = translation
// | Xz Yz Zz Tz |
// | 0  0  0  1  |
type Matrix4 [4][4]float32

// Identity4 returns the 4x4 identity matrix.
func Identity4() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// M4FromM3 embeds m in the upper-left 3x3 block. The last row and column
// are (0, 0, 0, 1).
func M4FromM3(m Matrix3) Matrix4 {
	return Matrix4{
		{m[0][0], m[0][1], m[0][2], 0},
		{m[1][0], m[1][1], m[1][2], 0},
		{m[2][0], m[2][1], m[2][2], 0},
		{0, 0, 0, 1},
	}
}

// M4FromRows builds a matrix whose rows are a, b, c and d.
func M4FromRows(a, b, c, d Vector4) Matrix4 {
	return Matrix4{
		{a.X, a.Y, a.Z, a.W},
		{b.X, b.Y, b.Z, b.W},
		{c.X, c.Y, c.Z, c.W},
		{d.X, d.Y, d.Z, d.W},
	}
}

// At returns the element at (row, col). Indices are not validated.
func (m Matrix4) At(row, col int) float32 {
	return m[row][col]
}

// Lookup returns the element at (row, col) and whether the indices were in
// range.
func (m Matrix4) Lookup(row, col int) (float32, bool) {
	if row < 0 || row >= 4 || col < 0 || col >= 4 {
		return 0, false
	}
	return m[row][col], true
}

// Set sets the element at (row, col).
func (m *Matrix4) Set(row, col int, val float32) {
	m[row][col] = val
}

// Row returns row i as a vector.
func (m Matrix4) Row(i int) Vector4 {
	return Vector4{m[i][0], m[i][1], m[i][2], m[i][3]}
}

// Col returns column j as a vector.
func (m Matrix4) Col(j int) Vector4 {
	return Vector4{m[0][j], m[1][j], m[2][j], m[3][j]}
}

// Add returns the element-wise sum a + b.
func (a Matrix4) Add(b Matrix4) Matrix4 {
	var m Matrix4
	for i := range 4 {
		for j := range 4 {
			m[i][j] = a[i][j] + b[i][j]
		}
	}
	return m
}

// Sub returns the element-wise difference a - b.
func (a Matrix4) Sub(b Matrix4) Matrix4 {
	var m Matrix4
	for i := range 4 {
		for j := range 4 {
			m[i][j] = a[i][j] - b[i][j]
		}
	}
	return m
}

// Scale multiplies every element by s.
func (m Matrix4) Scale(s float32) Matrix4 {
	var r Matrix4
	for i := range 4 {
		for j := range 4 {
			r[i][j] = m[i][j] * s
		}
	}
	return r
}

// Div divides every element by s. Division by zero is not trapped.
func (m Matrix4) Div(s float32) Matrix4 {
	var r Matrix4
	for i := range 4 {
		for j := range 4 {
			r[i][j] = m[i][j] / s
		}
	}
	return r
}

// Mul multiplies two matrices: a * b.
//
//nolint:st1016 // a*b naming convention is clearer for matrix multiplication
func (a Matrix4) Mul(b Matrix4) Matrix4 {
	var m Matrix4
	for i := range 4 {
		for j := range 4 {
			var sum float32
			for k := range 4 {
				sum += a[i][k] * b[k][j]
			}
			m[i][j] = sum
		}
	}
	return m
}

// MulVec4 returns the matrix-vector product m * v.
func (m Matrix4) MulVec4(v Vector4) Vector4 {
	return Vector4{
		m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z + m[0][3]*v.W,
		m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z + m[1][3]*v.W,
		m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z + m[2][3]*v.W,
		m[3][0]*v.X + m[3][1]*v.Y + m[3][2]*v.Z + m[3][3]*v.W,
	}
}

// Transpose returns the transposed matrix.
func (m Matrix4) Transpose() Matrix4 {
	return Matrix4{
		{m[0][0], m[1][0], m[2][0], m[3][0]},
		{m[0][1], m[1][1], m[2][1], m[3][1]},
		{m[0][2], m[1][2], m[2][2], m[3][2]},
		{m[0][3], m[1][3], m[2][3], m[3][3]},
	}
}

// SwapRows exchanges rows r1 and r2 in place. Indices are not validated.
func (m *Matrix4) SwapRows(r1, r2 int) {
	m[r1], m[r2] = m[r2], m[r1]
}

// Minor returns the 3x3 matrix left after deleting row i and column j.
func (m Matrix4) Minor(i, j int) Matrix3 {
	var r Matrix3
	ri := 0
	for row := range 4 {
		if row == i {
			continue
		}
		ci := 0
		for col := range 4 {
			if col == j {
				continue
			}
			r[ri][ci] = m[row][col]
			ci++
		}
		ri++
	}
	return r
}

// Determinant expands along the first row into four 3x3 minors.
func (m Matrix4) Determinant() float32 {
	return m[0][0]*m.Minor(0, 0).Determinant() -
		m[0][1]*m.Minor(0, 1).Determinant() +
		m[0][2]*m.Minor(0, 2).Determinant() -
		m[0][3]*m.Minor(0, 3).Determinant()
}

// Cofactor returns the matrix of signed minors. Entries whose minor
// determinant is smaller in magnitude than CofactorEpsilon are exactly 0.
func (m Matrix4) Cofactor() Matrix4 {
	var c Matrix4
	for i := range 4 {
		for j := range 4 {
			d := m.Minor(i, j).Determinant()
			if abs(d) < CofactorEpsilon {
				continue
			}
			if (i+j)%2 == 1 {
				d = -d
			}
			c[i][j] = d
		}
	}
	return c
}

// Inverse returns the inverse by Cramer's rule: Cofactor()ᵀ / det(m).
// When the determinant is exactly zero it returns the zero matrix and
// ErrSingular.
func (m Matrix4) Inverse() (Matrix4, error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix4{}, ErrSingular
	}
	return m.Cofactor().Transpose().Scale(1 / det), nil
}

// Lerp interpolates element-wise between a and b by t.
func (a Matrix4) Lerp(b Matrix4, t float32) Matrix4 {
	return a.Add(b.Sub(a).Scale(t))
}

// ApproxEqual reports whether every element of a is within eps of b.
func (a Matrix4) ApproxEqual(b Matrix4, eps float32) bool {
	for i := range 4 {
		for j := range 4 {
			if !near(a[i][j], b[i][j], eps) {
				return false
			}
		}
	}
	return true
}

// IsFinite reports whether no element is NaN or infinite.
func (m Matrix4) IsFinite() bool {
	for i := range 4 {
		for j := range 4 {
			if !finite(m[i][j]) {
				return false
			}
		}
	}
	return true
}

// String formats the matrix as a fixed-width table, one row per line.
func (m Matrix4) String() string {
	var b strings.Builder
	for i := range 4 {
		if i > 0 {
			b.WriteByte('\n')
		}
		writeRow(&b, m[i][:])
	}
	return b.String()
}
