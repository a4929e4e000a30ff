package catv

import "errors"

// ErrSingular is returned by Inverse when the determinant is exactly zero.
var ErrSingular = errors.New("catv: matrix is singular")
