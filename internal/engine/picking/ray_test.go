package picking

import (
	gomath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func box(minX, minY, minZ, maxX, maxY, maxZ float32) AABB {
	return AABB{
		Min: mgl32.Vec3{minX, minY, minZ},
		Max: mgl32.Vec3{maxX, maxY, maxZ},
	}
}

func TestIntersectAABBFrontalHit(t *testing.T) {
	// Ray fired down +Z from two units in front of the box face at z=-1.
	r := Ray{Origin: mgl32.Vec3{0, 1, -2}, Dir: mgl32.Vec3{0, 0, 1}}
	b := box(-1, 0, -1, 1, 2, 1)

	tNear, hit := r.IntersectAABB(b)
	require.True(t, hit)
	assert.Equal(t, float32(1.0), tNear)
}

func TestIntersectAABBMiss(t *testing.T) {
	// Points away from the box along +X; the box sits at unreachable
	// coordinates for this direction.
	r := Ray{Origin: mgl32.Vec3{10, 10, 10}, Dir: mgl32.Vec3{1, 0, 0}}
	b := box(-1, 0, -1, 1, 2, 1)

	_, hit := r.IntersectAABB(b)
	assert.False(t, hit)
}

func TestIntersectAABBOriginInside(t *testing.T) {
	cases := []struct {
		name   string
		origin mgl32.Vec3
		dir    mgl32.Vec3
		box    AABB
	}{
		{"center", mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1}, box(-1, 0, -1, 1, 2, 1)},
		{"on min face", mgl32.Vec3{-1, 0, -1}, mgl32.Vec3{1, 0, 0}, box(-1, 0, -1, 1, 2, 1)},
		{"on max face", mgl32.Vec3{1, 2, 1}, mgl32.Vec3{0, -1, 0}, box(-1, 0, -1, 1, 2, 1)},
		{"pointing outward", mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, -1}, box(-1, 0, -1, 1, 2, 1)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tNear, hit := Ray{Origin: tc.origin, Dir: tc.dir}.IntersectAABB(tc.box)
			require.True(t, hit)
			assert.Equal(t, float32(0), tNear)
		})
	}
}

func TestIntersectAABBParallelOutsideSlab(t *testing.T) {
	b := box(-1, 0, -1, 1, 2, 1)

	cases := []struct {
		name   string
		origin mgl32.Vec3
		dir    mgl32.Vec3
	}{
		// Direction is ~0 on one axis while the origin lies outside that
		// axis range; must miss regardless of the other axes.
		{"above, moving in z", mgl32.Vec3{0, 5, -5}, mgl32.Vec3{0, 0, 1}},
		{"left, moving in z", mgl32.Vec3{-3, 1, -5}, mgl32.Vec3{0, 0, 1}},
		{"behind, moving in x", mgl32.Vec3{-5, 1, 4}, mgl32.Vec3{1, 0, 0}},
		{"near-zero component", mgl32.Vec3{0, 5, -5}, mgl32.Vec3{0, 1e-7, 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, hit := Ray{Origin: tc.origin, Dir: tc.dir}.IntersectAABB(b)
			assert.False(t, hit)
		})
	}
}

func TestIntersectAABBFullyBehindOrigin(t *testing.T) {
	// Whole box behind the ray along its forward direction.
	r := Ray{Origin: mgl32.Vec3{0, 1, 5}, Dir: mgl32.Vec3{0, 0, 1}}
	b := box(-1, 0, -1, 1, 2, 1)

	_, hit := r.IntersectAABB(b)
	assert.False(t, hit)
}

func TestIntersectAABBExitFacePolicy(t *testing.T) {
	// Deliberate permissive policy: a box the ray has started to exit but
	// not fully passed still counts. With the origin-inside short circuit
	// this surfaces as an immediate hit at t = 0, not at the exit face.
	r := Ray{Origin: mgl32.Vec3{0, 1, 0.5}, Dir: mgl32.Vec3{0, 0, 1}}
	b := box(-1, 0, -1, 1, 2, 1)

	tNear, hit := r.IntersectAABB(b)
	require.True(t, hit)
	assert.Equal(t, float32(0), tNear)
}

func TestIntersectAABBDegenerateBox(t *testing.T) {
	point := box(0.5, 0.5, 0.5, 0.5, 0.5, 0.5)

	tNear, hit := Ray{Origin: mgl32.Vec3{0.5, 0.5, 0}, Dir: mgl32.Vec3{0, 0, 1}}.IntersectAABB(point)
	require.True(t, hit)
	assert.Equal(t, float32(0.5), tNear)

	_, hit = Ray{Origin: mgl32.Vec3{0.6, 0.5, 0}, Dir: mgl32.Vec3{0, 0, 1}}.IntersectAABB(point)
	assert.False(t, hit)
}

func TestIntersectAABBGrowthMonotonic(t *testing.T) {
	// Enlarging a box symmetrically around a ray that already hits it
	// must never turn the hit into a miss.
	r := Ray{Origin: mgl32.Vec3{0, 1, -2}, Dir: mgl32.Vec3{0, 0, 1}}
	b := box(-1, 0, -1, 1, 2, 1)

	prevT := float32(gomath.MaxFloat32)
	for i := 0; i < 8; i++ {
		tNear, hit := r.IntersectAABB(b)
		require.True(t, hit, "grow step %d", i)
		assert.LessOrEqual(t, tNear, prevT, "tNear may only shrink as the box grows")
		prevT = tNear

		grow := mgl32.Vec3{0.5, 0.5, 0.5}
		b.Min = b.Min.Sub(grow)
		b.Max = b.Max.Add(grow)
	}
}

func TestIntersectAABBDiagonal(t *testing.T) {
	dir := mgl32.Vec3{1, 1, 1}.Normalize()
	r := Ray{Origin: mgl32.Vec3{-2, -2, -2}, Dir: dir}
	b := box(-1, -1, -1, 1, 1, 1)

	tNear, hit := r.IntersectAABB(b)
	require.True(t, hit)
	// Entry at the (-1,-1,-1) corner, sqrt(3) away.
	assert.InDelta(t, 1.7320508, tNear, 1e-4)
}

func TestIntersectAABBInvertedBoxMisses(t *testing.T) {
	// A malformed min>max box produces an inverted slab interval and
	// falls out of the loop as a miss, no special casing.
	r := Ray{Origin: mgl32.Vec3{0, 1, -2}, Dir: mgl32.Vec3{0, 0, 1}}
	b := AABB{Min: mgl32.Vec3{1, 2, 1}, Max: mgl32.Vec3{-1, 0, -1}}

	_, hit := r.IntersectAABB(b)
	assert.False(t, hit)
}

func TestNewAABBSwapsInvertedAxes(t *testing.T) {
	b := NewAABB(mgl32.Vec3{1, -2, 3}, mgl32.Vec3{-1, 2, -3})
	assert.Equal(t, mgl32.Vec3{-1, -2, -3}, b.Min)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, b.Max)
}

func TestTransformAABB(t *testing.T) {
	local := box(-0.5, 0, -0.5, 0.5, 1, 0.5)
	world := TransformAABB(local, mgl32.Vec3{10, 0, -4}, mgl32.Vec3{2, 3, 2})

	assert.Equal(t, mgl32.Vec3{9, 0, -5}, world.Min)
	assert.Equal(t, mgl32.Vec3{11, 3, -3}, world.Max)
}

func TestScreenRayCenterMatchesViewDirection(t *testing.T) {
	eye := mgl32.Vec3{0, 5, 12}
	center := mgl32.Vec3{0, 1, 0}

	proj := mgl32.Perspective(mgl32.DegToRad(60), 16.0/9.0, 0.1, 100)
	view := mgl32.LookAtV(eye, center, mgl32.Vec3{0, 1, 0})
	inv := proj.Mul4(view).Inv()

	r := ScreenRay(640, 360, 1280, 720, inv)

	want := center.Sub(eye).Normalize()
	assert.InDelta(t, want.X(), r.Dir.X(), 1e-3)
	assert.InDelta(t, want.Y(), r.Dir.Y(), 1e-3)
	assert.InDelta(t, want.Z(), r.Dir.Z(), 1e-3)
	assert.InDelta(t, 1.0, r.Dir.Len(), 1e-4)
}
