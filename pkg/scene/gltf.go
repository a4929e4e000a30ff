// Package scene reads node transforms from glTF 2.0 documents into catv
// matrices.
package scene

import (
	"errors"
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/taigrr/catv/pkg/catv"
)

var (
	// ErrCycle is returned when the node hierarchy loops back on itself.
	ErrCycle = errors.New("scene: node hierarchy has a cycle")

	// ErrNodeIndex is returned when a scene or node references a missing node.
	ErrNodeIndex = errors.New("scene: node index out of range")
)

// Transform is the resolved transform of one node.
type Transform struct {
	Node   int    // Index into the document's node list
	Name   string // Node name, may be empty
	Parent int    // Parent node index, -1 for roots

	Local catv.Matrix4 // Node transform relative to its parent
	World catv.Matrix4 // Parent world * Local

	// Inverse of World from InverseTransform. Zero when World is singular.
	Inverse  catv.Matrix4
	Singular bool
}

// Load opens a .gltf or .glb file and resolves all node transforms.
func Load(path string) ([]Transform, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	ts, err := WorldTransforms(doc)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	return ts, nil
}

// WorldTransforms walks the node hierarchy depth-first from the scene roots
// and returns one Transform per reachable node. Documents without scenes use
// every node that is nobody's child as a root.
func WorldTransforms(doc *gltf.Document) ([]Transform, error) {
	w := walker{
		doc:   doc,
		state: make([]visit, len(doc.Nodes)),
	}

	roots, err := rootNodes(doc)
	if err != nil {
		return nil, err
	}
	for _, r := range roots {
		if err := w.visit(r, -1, catv.Identity4()); err != nil {
			return nil, err
		}
	}

	// Without scenes, nodes left unvisited can only be part of a cycle.
	if len(doc.Scenes) == 0 {
		for i := range doc.Nodes {
			if w.state[i] == unvisited {
				if err := w.visit(i, -1, catv.Identity4()); err != nil {
					return nil, err
				}
			}
		}
	}

	return w.out, nil
}

type visit uint8

const (
	unvisited visit = iota
	inProgress
	done
)

type walker struct {
	doc   *gltf.Document
	state []visit
	out   []Transform
}

func (w *walker) visit(idx, parent int, parentWorld catv.Matrix4) error {
	if idx < 0 || idx >= len(w.doc.Nodes) {
		return fmt.Errorf("node %d: %w", idx, ErrNodeIndex)
	}
	switch w.state[idx] {
	case inProgress:
		return fmt.Errorf("node %d: %w", idx, ErrCycle)
	case done:
		return nil
	}
	w.state[idx] = inProgress

	n := w.doc.Nodes[idx]
	local := NodeMatrix(n)
	world := parentWorld.Mul(local)
	inv, err := InverseTransform(world)
	w.out = append(w.out, Transform{
		Node:     idx,
		Name:     n.Name,
		Parent:   parent,
		Local:    local,
		World:    world,
		Inverse:  inv,
		Singular: errors.Is(err, catv.ErrSingular),
	})

	for _, c := range n.Children {
		if err := w.visit(c, idx, world); err != nil {
			return err
		}
	}
	w.state[idx] = done
	return nil
}

// InverseTransform inverts m. An affine m (last row 0, 0, 0, 1) is inverted
// through its upper 3x3 block R and translation t as [R⁻¹ | -R⁻¹t], so no
// entry is dropped when the 3x3 minors of a small-scale node fall below
// catv.CofactorEpsilon. Any other matrix goes through Matrix4.Inverse.
func InverseTransform(m catv.Matrix4) (catv.Matrix4, error) {
	if m.Row(3) != catv.V4(0, 0, 0, 1) {
		return m.Inverse()
	}
	rinv, err := m.Minor(3, 3).Inverse()
	if err != nil {
		return catv.Matrix4{}, err
	}
	t := catv.Zero3().Sub(rinv.MulVec3(catv.V3(m[0][3], m[1][3], m[2][3])))
	inv := catv.M4FromM3(rinv)
	inv[0][3], inv[1][3], inv[2][3] = t.X, t.Y, t.Z
	return inv, nil
}

func rootNodes(doc *gltf.Document) ([]int, error) {
	if len(doc.Scenes) > 0 {
		var roots []int
		seen := make(map[int]bool)
		for si, s := range doc.Scenes {
			for _, n := range s.Nodes {
				if n < 0 || n >= len(doc.Nodes) {
					return nil, fmt.Errorf("scene %d root %d: %w", si, n, ErrNodeIndex)
				}
				if !seen[n] {
					seen[n] = true
					roots = append(roots, n)
				}
			}
		}
		return roots, nil
	}

	child := make([]bool, len(doc.Nodes))
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			if c >= 0 && c < len(child) {
				child[c] = true
			}
		}
	}
	var roots []int
	for i, isChild := range child {
		if !isChild {
			roots = append(roots, i)
		}
	}
	return roots, nil
}

// NodeMatrix returns the local transform of n. An explicit matrix is used
// when present; otherwise the transform is composed as T * R * S. Zero
// rotation or scale (as in a Node built in code) reads as the glTF default.
func NodeMatrix(n *gltf.Node) catv.Matrix4 {
	if m := n.MatrixOrDefault(); m != gltf.DefaultMatrix {
		return fromColumnMajor(m)
	}
	return composeTRS(n.TranslationOrDefault(), n.RotationOrDefault(), n.ScaleOrDefault())
}

// fromColumnMajor converts glTF's column-major layout to row-major.
func fromColumnMajor(a [16]float64) catv.Matrix4 {
	var m catv.Matrix4
	for col := range 4 {
		for row := range 4 {
			m[row][col] = float32(a[col*4+row])
		}
	}
	return m
}

func composeTRS(t [3]float64, q [4]float64, s [3]float64) catv.Matrix4 {
	x, y, z, w := q[0], q[1], q[2], q[3]
	r := [3][3]float64{
		{1 - 2*(y*y+z*z), 2 * (x*y - z*w), 2 * (x*z + y*w)},
		{2 * (x*y + z*w), 1 - 2*(x*x+z*z), 2 * (y*z - x*w)},
		{2 * (x*z - y*w), 2 * (y*z + x*w), 1 - 2*(x*x+y*y)},
	}

	var m catv.Matrix4
	for i := range 3 {
		for j := range 3 {
			m[i][j] = float32(r[i][j] * s[j])
		}
		m[i][3] = float32(t[i])
	}
	m[3][3] = 1
	return m
}
