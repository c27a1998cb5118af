// Package picking implements ray casting against scene object bounds.
package picking

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon below which a ray direction component is treated as parallel
// to the matching slab planes.
const parallelEps = 1e-6

// Ray is a world-space ray. Dir must be normalized by the caller; a
// non-unit direction only rescales t, it does not change hit decisions.
type Ray struct {
	Origin mgl32.Vec3
	Dir    mgl32.Vec3
}

// AABB is an axis-aligned bounding box. Min must be componentwise <= Max.
// A zero-volume box (Min == Max) is valid and testable.
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// NewAABB builds an AABB from two corners, swapping components as needed
// so negative scales cannot produce an inverted box.
func NewAABB(min, max mgl32.Vec3) AABB {
	for i := 0; i < 3; i++ {
		if min[i] > max[i] {
			min[i], max[i] = max[i], min[i]
		}
	}
	return AABB{Min: min, Max: max}
}

// TransformAABB scales then translates a local-space box into world space.
func TransformAABB(local AABB, position, scale mgl32.Vec3) AABB {
	return NewAABB(
		mgl32.Vec3{
			local.Min[0]*scale[0] + position[0],
			local.Min[1]*scale[1] + position[1],
			local.Min[2]*scale[2] + position[2],
		},
		mgl32.Vec3{
			local.Max[0]*scale[0] + position[0],
			local.Max[1]*scale[1] + position[1],
			local.Max[2]*scale[2] + position[2],
		},
	)
}

// Contains reports whether p lies inside the box, faces included.
func (b AABB) Contains(p mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// Center returns the box midpoint.
func (b AABB) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Union returns the smallest box enclosing both boxes.
func (b AABB) Union(other AABB) AABB {
	out := b
	for i := 0; i < 3; i++ {
		if other.Min[i] < out.Min[i] {
			out.Min[i] = other.Min[i]
		}
		if other.Max[i] > out.Max[i] {
			out.Max[i] = other.Max[i]
		}
	}
	return out
}

// IntersectAABB tests the ray against a box using the slab method and
// returns the parametric distance to the nearest crossed boundary.
//
// Policy notes, kept deliberately:
//   - an origin inside the box is an immediate hit at t = 0, so the
//     cursor ray can select the object the camera sits inside of;
//   - a box the ray has started to exit but not fully passed still
//     counts, at the exit face (tMax), when the entry t is negative;
//   - a box entirely behind the origin misses.
//
// On hit, t is always >= 0.
func (r Ray) IntersectAABB(box AABB) (t float32, hit bool) {
	if box.Contains(r.Origin) {
		return 0, true
	}

	tMin := float32(0)
	tMax := float32(gomath.MaxFloat32)

	for axis := 0; axis < 3; axis++ {
		d := r.Dir[axis]
		if d < parallelEps && d > -parallelEps {
			// Parallel to this slab pair: no t can bring the ray
			// inside, so the origin must already be within range.
			if r.Origin[axis] < box.Min[axis] || r.Origin[axis] > box.Max[axis] {
				return 0, false
			}
			continue
		}

		invDir := 1 / d
		t0 := (box.Min[axis] - r.Origin[axis]) * invDir
		t1 := (box.Max[axis] - r.Origin[axis]) * invDir
		if invDir < 0 {
			t0, t1 = t1, t0
		}

		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMin > tMax {
			return 0, false
		}
	}

	if tMin >= 0 {
		return tMin, true
	}
	if tMax >= 0 {
		// Exit face of a box straddling the origin.
		return tMax, true
	}
	return 0, false
}

// ScreenRay converts a pixel coordinate into a world-space ray by
// unprojecting the near and far NDC points through the inverse of the
// view-projection matrix. Works for both perspective and orthographic
// projections.
func ScreenRay(screenX, screenY, viewportW, viewportH float32, invViewProj mgl32.Mat4) Ray {
	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH // pixel Y grows downward

	near := invViewProj.Mul4x1(mgl32.Vec4{ndcX, ndcY, -1, 1})
	far := invViewProj.Mul4x1(mgl32.Vec4{ndcX, ndcY, 1, 1})

	if near.W() != 0 {
		near = near.Mul(1 / near.W())
	}
	if far.W() != 0 {
		far = far.Mul(1 / far.W())
	}

	origin := near.Vec3()
	dir := far.Vec3().Sub(origin)
	if l := dir.Len(); l > 0 {
		dir = dir.Mul(1 / l)
	}

	return Ray{Origin: origin, Dir: dir}
}
