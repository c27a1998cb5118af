// Package scene builds and renders the night campsite: the fire, the
// tent, the backpack, the pine tree and the moon over them.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/hollowpine/campsite/internal/engine/mesh"
	"github.com/hollowpine/campsite/internal/engine/picking"
)

// Kind selects which primitive mesh an object is drawn with.
type Kind int

const (
	KindPlane Kind = iota
	KindBox
	KindCylinder
	KindCone
	KindSphere
)

// Object is a single placed primitive. Rotation is Euler degrees
// applied in Y, X, Z order.
type Object struct {
	Name     string
	Kind     Kind
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3
	Color    mgl32.Vec4
	Texture  string // texture tag, empty for untextured

	// Emissive objects skip lighting; Flame additionally enables the
	// vertex wobble and gradient. FlameSeed desynchronizes wobble
	// between flames. Additive objects blend additively (moon glow).
	Emissive  bool
	Flame     bool
	FlameSeed float32
	Additive  bool

	// PickGroup is the selectable object this primitive belongs to,
	// or picking.NoObject for unpickable scenery.
	PickGroup int
}

// ModelMatrix returns the object's local-to-world transform.
func (o Object) ModelMatrix() mgl32.Mat4 {
	m := mgl32.Translate3D(o.Position[0], o.Position[1], o.Position[2])
	if o.Rotation[1] != 0 {
		m = m.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(o.Rotation[1])))
	}
	if o.Rotation[0] != 0 {
		m = m.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(o.Rotation[0])))
	}
	if o.Rotation[2] != 0 {
		m = m.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(o.Rotation[2])))
	}
	return m.Mul4(mgl32.Scale3D(o.Scale[0], o.Scale[1], o.Scale[2]))
}

// LocalBounds returns the untransformed bounds of the object's mesh.
func (o Object) LocalBounds() picking.AABB {
	var d mesh.Data
	switch o.Kind {
	case KindPlane:
		d = mesh.Data{Min: mgl32.Vec3{-1, 0, -1}, Max: mgl32.Vec3{1, 0, 1}}
	case KindBox:
		d = mesh.Data{Min: mgl32.Vec3{-0.5, -0.5, -0.5}, Max: mgl32.Vec3{0.5, 0.5, 0.5}}
	case KindCylinder, KindCone:
		d = mesh.Data{Min: mgl32.Vec3{-1, 0, -1}, Max: mgl32.Vec3{1, 1, 1}}
	default:
		d = mesh.Data{Min: mgl32.Vec3{-1, -1, -1}, Max: mgl32.Vec3{1, 1, 1}}
	}
	return picking.AABB{Min: d.Min, Max: d.Max}
}

// WorldBounds returns the axis-aligned bounds of the transformed
// object, computed from the eight corners of the local bounds so
// rotation is accounted for.
func (o Object) WorldBounds() picking.AABB {
	local := o.LocalBounds()
	model := o.ModelMatrix()

	var out picking.AABB
	first := true
	for i := 0; i < 8; i++ {
		corner := mgl32.Vec3{
			choose(i&1 == 0, local.Min[0], local.Max[0]),
			choose(i&2 == 0, local.Min[1], local.Max[1]),
			choose(i&4 == 0, local.Min[2], local.Max[2]),
		}
		world := mgl32.TransformCoordinate(corner, model)
		if first {
			out = picking.AABB{Min: world, Max: world}
			first = false
			continue
		}
		for axis := 0; axis < 3; axis++ {
			if world[axis] < out.Min[axis] {
				out.Min[axis] = world[axis]
			}
			if world[axis] > out.Max[axis] {
				out.Max[axis] = world[axis]
			}
		}
	}
	return out
}

func choose(cond bool, a, b float32) float32 {
	if cond {
		return a
	}
	return b
}
