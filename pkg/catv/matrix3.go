package catv

import "strings"

// Matrix3 is a 3x3 matrix stored in row-major order.
//
// m[row][col] addresses a single element:
// | m[0][0] m[0][1] m[0][2] |
// | m[1][0] m[1][1] m[1][2] |
// | m[2][0] m[2][1] m[2][2] |
//
// The zero value is the zero matrix. A [3][3]float32 converts directly with
// Matrix3(arr).
type Matrix3 [3][3]float32

// Identity3 returns the 3x3 identity matrix.
func Identity3() Matrix3 {
	return Matrix3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// M3FromRows builds a matrix whose rows are a, b and c.
func M3FromRows(a, b, c Vector3) Matrix3 {
	return Matrix3{
		{a.X, a.Y, a.Z},
		{b.X, b.Y, b.Z},
		{c.X, c.Y, c.Z},
	}
}

// At returns the element at (row, col). Indices are not validated.
func (m Matrix3) At(row, col int) float32 {
	return m[row][col]
}

// Lookup returns the element at (row, col) and whether the indices were in
// range.
func (m Matrix3) Lookup(row, col int) (float32, bool) {
	if row < 0 || row >= 3 || col < 0 || col >= 3 {
		return 0, false
	}
	return m[row][col], true
}

// Set sets the element at (row, col).
func (m *Matrix3) Set(row, col int, val float32) {
	m[row][col] = val
}

// Row returns row i as a vector.
func (m Matrix3) Row(i int) Vector3 {
	return Vector3{m[i][0], m[i][1], m[i][2]}
}

// Col returns column j as a vector.
func (m Matrix3) Col(j int) Vector3 {
	return Vector3{m[0][j], m[1][j], m[2][j]}
}

// Add returns the element-wise sum a + b.
func (a Matrix3) Add(b Matrix3) Matrix3 {
	var m Matrix3
	for i := range 3 {
		for j := range 3 {
			m[i][j] = a[i][j] + b[i][j]
		}
	}
	return m
}

// Sub returns the element-wise difference a - b.
func (a Matrix3) Sub(b Matrix3) Matrix3 {
	var m Matrix3
	for i := range 3 {
		for j := range 3 {
			m[i][j] = a[i][j] - b[i][j]
		}
	}
	return m
}

// Scale multiplies every element by s.
func (m Matrix3) Scale(s float32) Matrix3 {
	var r Matrix3
	for i := range 3 {
		for j := range 3 {
			r[i][j] = m[i][j] * s
		}
	}
	return r
}

// Div divides every element by s. Division by zero is not trapped.
func (m Matrix3) Div(s float32) Matrix3 {
	var r Matrix3
	for i := range 3 {
		for j := range 3 {
			r[i][j] = m[i][j] / s
		}
	}
	return r
}

// Mul multiplies two matrices: a * b.
//
//nolint:st1016 // a*b naming convention is clearer for matrix multiplication
func (a Matrix3) Mul(b Matrix3) Matrix3 {
	var m Matrix3
	for i := range 3 {
		for j := range 3 {
			var sum float32
			for k := range 3 {
				sum += a[i][k] * b[k][j]
			}
			m[i][j] = sum
		}
	}
	return m
}

// MulVec3 returns the matrix-vector product m * v.
func (m Matrix3) MulVec3(v Vector3) Vector3 {
	return Vector3{
		m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Transpose returns the transposed matrix.
func (m Matrix3) Transpose() Matrix3 {
	return Matrix3{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

// SwapRows exchanges rows r1 and r2 in place. Indices are not validated.
func (m *Matrix3) SwapRows(r1, r2 int) {
	m[r1], m[r2] = m[r2], m[r1]
}

// Determinant returns the determinant, expanded along the first row.
func (m Matrix3) Determinant() float32 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inverse returns the inverse by Cramer's rule: adj(m) / det(m).
// When the determinant is exactly zero it returns the zero matrix and
// ErrSingular.
func (m Matrix3) Inverse() (Matrix3, error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix3{}, ErrSingular
	}

	var inv Matrix3
	inv[0][0] = (m[1][1]*m[2][2] - m[1][2]*m[2][1]) / det
	inv[0][1] = (m[0][2]*m[2][1] - m[0][1]*m[2][2]) / det
	inv[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) / det

	inv[1][0] = (m[1][2]*m[2][0] - m[1][0]*m[2][2]) / det
	inv[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) / det
	inv[1][2] = (m[0][2]*m[1][0] - m[0][0]*m[1][2]) / det

	inv[2][0] = (m[1][0]*m[2][1] - m[1][1]*m[2][0]) / det
	inv[2][1] = (m[0][1]*m[2][0] - m[0][0]*m[2][1]) / det
	inv[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) / det

	return inv, nil
}

// Lerp interpolates element-wise between a and b by t.
func (a Matrix3) Lerp(b Matrix3, t float32) Matrix3 {
	return a.Add(b.Sub(a).Scale(t))
}

// ApproxEqual reports whether every element of a is within eps of b.
func (a Matrix3) ApproxEqual(b Matrix3, eps float32) bool {
	for i := range 3 {
		for j := range 3 {
			if !near(a[i][j], b[i][j], eps) {
				return false
			}
		}
	}
	return true
}

// IsFinite reports whether no element is NaN or infinite.
func (m Matrix3) IsFinite() bool {
	for i := range 3 {
		for j := range 3 {
			if !finite(m[i][j]) {
				return false
			}
		}
	}
	return true
}

// String formats the matrix as a fixed-width table, one row per line.
func (m Matrix3) String() string {
	var b strings.Builder
	for i := range 3 {
		if i > 0 {
			b.WriteByte('\n')
		}
		writeRow(&b, m[i][:])
	}
	return b.String()
}
