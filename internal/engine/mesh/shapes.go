// Package mesh generates and draws the primitive shapes the scene is
// assembled from. Generation is pure CPU work; upload happens separately
// so shape data stays testable without a GL context.
package mesh

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Stride is the number of floats per vertex: position, normal, uv.
const Stride = 8

// Data holds generated geometry before upload. Vertices are interleaved
// position (3), normal (3), uv (2).
type Data struct {
	Vertices []float32
	Indices  []uint32
	Min      mgl32.Vec3
	Max      mgl32.Vec3
}

// VertexCount returns the number of vertices in the buffer.
func (d Data) VertexCount() int { return len(d.Vertices) / Stride }

func appendVertex(v []float32, px, py, pz, nx, ny, nz, u, w float32) []float32 {
	return append(v, px, py, pz, nx, ny, nz, u, w)
}

// Plane generates a unit ground plane spanning [-1,1] on X and Z at Y=0,
// facing +Y.
func Plane() Data {
	var verts []float32
	verts = appendVertex(verts, -1, 0, -1, 0, 1, 0, 0, 0)
	verts = appendVertex(verts, 1, 0, -1, 0, 1, 0, 1, 0)
	verts = appendVertex(verts, 1, 0, 1, 0, 1, 0, 1, 1)
	verts = appendVertex(verts, -1, 0, 1, 0, 1, 0, 0, 1)

	return Data{
		Vertices: verts,
		Indices:  []uint32{0, 2, 1, 0, 3, 2},
		Min:      mgl32.Vec3{-1, 0, -1},
		Max:      mgl32.Vec3{1, 0, 1},
	}
}

// Box generates a unit cube centered at the origin with edge length 1.
func Box() Data {
	type face struct {
		normal mgl32.Vec3
		right  mgl32.Vec3
		up     mgl32.Vec3
	}
	faces := []face{
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
	}

	var verts []float32
	var indices []uint32

	for fi, f := range faces {
		center := f.normal.Mul(0.5)
		corners := [4]mgl32.Vec3{
			center.Sub(f.right.Mul(0.5)).Sub(f.up.Mul(0.5)),
			center.Add(f.right.Mul(0.5)).Sub(f.up.Mul(0.5)),
			center.Add(f.right.Mul(0.5)).Add(f.up.Mul(0.5)),
			center.Sub(f.right.Mul(0.5)).Add(f.up.Mul(0.5)),
		}
		uvs := [4][2]float32{{0, 1}, {1, 1}, {1, 0}, {0, 0}}

		base := uint32(fi * 4)
		for ci, c := range corners {
			verts = appendVertex(verts,
				c.X(), c.Y(), c.Z(),
				f.normal.X(), f.normal.Y(), f.normal.Z(),
				uvs[ci][0], uvs[ci][1])
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	return Data{
		Vertices: verts,
		Indices:  indices,
		Min:      mgl32.Vec3{-0.5, -0.5, -0.5},
		Max:      mgl32.Vec3{0.5, 0.5, 0.5},
	}
}

// Cylinder generates a capped cylinder of radius 1 and height 1 with its
// base on the XZ plane at Y=0.
func Cylinder(segments int) Data {
	if segments < 3 {
		segments = 3
	}

	var verts []float32
	var indices []uint32

	// Side: duplicate seam vertex for clean UV wrap.
	for i := 0; i <= segments; i++ {
		a := 2 * math32.Pi * float32(i) / float32(segments)
		c, s := math32.Cos(a), math32.Sin(a)
		u := float32(i) / float32(segments)

		verts = appendVertex(verts, c, 0, s, c, 0, s, u, 1)
		verts = appendVertex(verts, c, 1, s, c, 0, s, u, 0)
	}
	for i := 0; i < segments; i++ {
		b := uint32(i * 2)
		indices = append(indices, b, b+1, b+2, b+2, b+1, b+3)
	}

	// Caps: center vertex plus rim fan.
	capStart := uint32(len(verts) / Stride)
	verts = appendVertex(verts, 0, 1, 0, 0, 1, 0, 0.5, 0.5)
	for i := 0; i <= segments; i++ {
		a := 2 * math32.Pi * float32(i) / float32(segments)
		c, s := math32.Cos(a), math32.Sin(a)
		verts = appendVertex(verts, c, 1, s, 0, 1, 0, 0.5+0.5*c, 0.5+0.5*s)
	}
	for i := 0; i < segments; i++ {
		indices = append(indices, capStart, capStart+1+uint32(i)+1, capStart+1+uint32(i))
	}

	baseStart := uint32(len(verts) / Stride)
	verts = appendVertex(verts, 0, 0, 0, 0, -1, 0, 0.5, 0.5)
	for i := 0; i <= segments; i++ {
		a := 2 * math32.Pi * float32(i) / float32(segments)
		c, s := math32.Cos(a), math32.Sin(a)
		verts = appendVertex(verts, c, 0, s, 0, -1, 0, 0.5+0.5*c, 0.5+0.5*s)
	}
	for i := 0; i < segments; i++ {
		indices = append(indices, baseStart, baseStart+1+uint32(i), baseStart+1+uint32(i)+1)
	}

	return Data{
		Vertices: verts,
		Indices:  indices,
		Min:      mgl32.Vec3{-1, 0, -1},
		Max:      mgl32.Vec3{1, 1, 1},
	}
}

// Cone generates a cone of base radius 1 and height 1 with its base on
// the XZ plane at Y=0 and apex at (0,1,0).
func Cone(segments int) Data {
	if segments < 3 {
		segments = 3
	}

	var verts []float32
	var indices []uint32

	// Slant normal: for unit radius and height the surface tilts 45
	// degrees, normalized per segment direction.
	ny := float32(1) / math32.Sqrt(2)
	nr := ny

	// One apex vertex per segment so slant normals stay per-face smooth.
	for i := 0; i <= segments; i++ {
		a := 2 * math32.Pi * float32(i) / float32(segments)
		c, s := math32.Cos(a), math32.Sin(a)
		u := float32(i) / float32(segments)

		verts = appendVertex(verts, c, 0, s, c*nr, ny, s*nr, u, 1)
		verts = appendVertex(verts, 0, 1, 0, c*nr, ny, s*nr, u, 0)
	}
	for i := 0; i < segments; i++ {
		b := uint32(i * 2)
		indices = append(indices, b, b+1, b+2)
	}

	// Base cap.
	baseStart := uint32(len(verts) / Stride)
	verts = appendVertex(verts, 0, 0, 0, 0, -1, 0, 0.5, 0.5)
	for i := 0; i <= segments; i++ {
		a := 2 * math32.Pi * float32(i) / float32(segments)
		c, s := math32.Cos(a), math32.Sin(a)
		verts = appendVertex(verts, c, 0, s, 0, -1, 0, 0.5+0.5*c, 0.5+0.5*s)
	}
	for i := 0; i < segments; i++ {
		indices = append(indices, baseStart, baseStart+1+uint32(i), baseStart+1+uint32(i)+1)
	}

	return Data{
		Vertices: verts,
		Indices:  indices,
		Min:      mgl32.Vec3{-1, 0, -1},
		Max:      mgl32.Vec3{1, 1, 1},
	}
}

// Sphere generates a unit sphere centered at the origin using a
// latitude/longitude grid.
func Sphere(stacks, sectors int) Data {
	if stacks < 2 {
		stacks = 2
	}
	if sectors < 3 {
		sectors = 3
	}

	var verts []float32
	var indices []uint32

	for i := 0; i <= stacks; i++ {
		phi := math32.Pi/2 - math32.Pi*float32(i)/float32(stacks)
		y := math32.Sin(phi)
		r := math32.Cos(phi)

		for j := 0; j <= sectors; j++ {
			theta := 2 * math32.Pi * float32(j) / float32(sectors)
			x := r * math32.Cos(theta)
			z := r * math32.Sin(theta)

			u := float32(j) / float32(sectors)
			w := float32(i) / float32(stacks)
			verts = appendVertex(verts, x, y, z, x, y, z, u, w)
		}
	}

	cols := uint32(sectors + 1)
	for i := 0; i < stacks; i++ {
		for j := 0; j < sectors; j++ {
			a := uint32(i)*cols + uint32(j)
			b := a + cols
			if i != 0 {
				indices = append(indices, a, a+1, b)
			}
			if i != stacks-1 {
				indices = append(indices, a+1, b+1, b)
			}
		}
	}

	return Data{
		Vertices: verts,
		Indices:  indices,
		Min:      mgl32.Vec3{-1, -1, -1},
		Max:      mgl32.Vec3{1, 1, 1},
	}
}
