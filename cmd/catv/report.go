package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/taigrr/catv/internal/config"
	"github.com/taigrr/catv/pkg/catv"
	"github.com/taigrr/catv/pkg/motion"
	"github.com/taigrr/catv/pkg/render"
	"github.com/taigrr/catv/pkg/scene"
)

// reporter writes calculation results as text. The first write error is
// kept in err and later writes are skipped.
type reporter struct {
	w      io.Writer
	styled bool
	ease   int
	fps    int
	log    *log.Logger
	err    error
}

func (r *reporter) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

func (r *reporter) table(title string, v render.MatrixView) {
	s := render.Table(v)
	if r.styled {
		s = render.StyledTable(v)
	}
	r.printf("%s:\n%s\n", title, s)
}

func (r *reporter) config(cfg *config.Config) {
	for _, e := range cfg.Matrices {
		if m, ok := e.Matrix3(); ok {
			r.matrix3(e.Name, m)
		} else if m, ok := e.Matrix4(); ok {
			r.matrix4(e.Name, m)
		}
	}
	for _, e := range cfg.Vectors {
		if v, ok := e.Vector3(); ok {
			r.vector3(e.Name, v)
		} else if v, ok := e.Vector4(); ok {
			r.vector4(e.Name, v)
		}
	}
}

func (r *reporter) matrix3(name string, m catv.Matrix3) {
	r.printf("== %s (3x3) ==\n", name)
	r.table("matrix", render.Matrix3View(m))
	r.table("transpose", render.Matrix3View(m.Transpose()))
	r.printf("determinant: %g\n", m.Determinant())

	inv, err := m.Inverse()
	r.inverse(name, err, func() { r.table("inverse", render.Matrix3View(inv)) })
	r.blend(name, catv.M4FromM3(m))
	r.printf("\n")
}

func (r *reporter) matrix4(name string, m catv.Matrix4) {
	r.printf("== %s (4x4) ==\n", name)
	r.table("matrix", render.Matrix4View(m))
	r.table("transpose", render.Matrix4View(m.Transpose()))
	r.printf("determinant: %g\n", m.Determinant())
	r.table("cofactor", render.Matrix4View(m.Cofactor()))

	inv, err := m.Inverse()
	r.inverse(name, err, func() { r.table("inverse", render.Matrix4View(inv)) })
	r.blend(name, m)
	r.printf("\n")
}

func (r *reporter) inverse(name string, err error, print func()) {
	switch {
	case errors.Is(err, catv.ErrSingular):
		r.log.Warn("matrix has no inverse", "name", name)
		r.printf("inverse: singular\n")
	case err != nil:
		r.log.Error("inverse failed", "name", name, "err", err)
		r.printf("inverse: %v\n", err)
	default:
		print()
	}
}

// blend prints the frame halfway through a spring blend from identity to m.
func (r *reporter) blend(name string, m catv.Matrix4) {
	if r.ease <= 0 {
		return
	}
	fps := r.fps
	if fps <= 0 {
		fps = 60
	}
	frames := motion.Matrix4Frames(catv.Identity4(), m, fps, r.ease)
	mid := len(frames) / 2
	r.log.Debug("blend", "name", name, "frames", len(frames), "fps", fps)
	r.table(fmt.Sprintf("ease frame %d/%d", mid+1, len(frames)), render.Matrix4View(frames[mid]))
}

func (r *reporter) vector3(name string, v catv.Vector3) {
	r.printf("== %s (vec3) ==\n", name)
	r.table("vector", render.Vector3View(v))
	r.printf("length: %g\n", v.Length())
	r.table("normalized", render.Vector3View(v.Normalize()))
	r.printf("\n")
}

func (r *reporter) vector4(name string, v catv.Vector4) {
	r.printf("== %s (vec4) ==\n", name)
	r.table("vector", render.Vector4View(v))
	r.printf("length: %g\n", v.Length())
	r.table("normalized", render.Vector4View(v.Normalize()))
	r.printf("\n")
}

func (r *reporter) scene(ts []scene.Transform) {
	for _, t := range ts {
		name := t.Name
		if name == "" {
			name = fmt.Sprintf("node %d", t.Node)
		}
		r.printf("== %s (parent %d) ==\n", name, t.Parent)
		r.table("world", render.Matrix4View(t.World))
		if t.Singular {
			r.log.Warn("world transform has no inverse", "node", t.Node)
			r.printf("inverse: singular\n\n")
			continue
		}
		r.table("inverse", render.Matrix4View(t.Inverse))
		r.printf("\n")
	}
}
