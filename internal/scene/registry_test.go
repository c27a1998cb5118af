package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowpine/campsite/internal/engine/picking"
)

func rayTowards(origin, target mgl32.Vec3) picking.Ray {
	return picking.Ray{Origin: origin, Dir: target.Sub(origin).Normalize()}
}

func TestRegistryCandidatesOrdered(t *testing.T) {
	reg := NewRegistry(BuildObjects())
	cands := reg.Candidates()

	require.Len(t, cands, len(PickNames))
	for i, c := range cands {
		assert.Equal(t, i, c.ID, "candidates must come out in group-ID order")
	}
}

func TestRegistryBoundsLookup(t *testing.T) {
	reg := NewRegistry(BuildObjects())

	_, ok := reg.Bounds(PickBackpack)
	assert.True(t, ok)
	_, ok = reg.Bounds(99)
	assert.False(t, ok)
}

func TestRegistrySkipsScenery(t *testing.T) {
	objs := []Object{
		{Name: "rock", Kind: KindSphere, Scale: mgl32.Vec3{1, 1, 1}, PickGroup: unpickable},
		{Name: "crate", Kind: KindBox, Scale: mgl32.Vec3{1, 1, 1}, PickGroup: 0},
	}
	reg := NewRegistry(objs)
	require.Len(t, reg.Candidates(), 1)
	assert.Equal(t, 0, reg.Candidates()[0].ID)
}

func TestPickCampfireFromCampPosition(t *testing.T) {
	reg := NewRegistry(BuildObjects())

	// Looking down at the fire pit from the default camera spot.
	ray := rayTowards(mgl32.Vec3{0, 5, 12}, mgl32.Vec3{0, 1, 0})
	assert.Equal(t, PickCampfire, picking.Pick(ray, reg))
}

func TestPickTent(t *testing.T) {
	reg := NewRegistry(BuildObjects())

	ray := rayTowards(mgl32.Vec3{0, 5, 12}, mgl32.Vec3{-7, 3, -6})
	assert.Equal(t, PickTent, picking.Pick(ray, reg))
}

func TestPickBackpack(t *testing.T) {
	reg := NewRegistry(BuildObjects())

	// From close by, so the ray cannot clip the campfire bounds first.
	ray := rayTowards(mgl32.Vec3{-5.5, 2, 5}, mgl32.Vec3{-5.5, 1.2, 1})
	assert.Equal(t, PickBackpack, picking.Pick(ray, reg))
}

func TestPickSkyMisses(t *testing.T) {
	reg := NewRegistry(BuildObjects())

	ray := picking.Ray{Origin: mgl32.Vec3{0, 5, 12}, Dir: mgl32.Vec3{0, 1, 0}}
	assert.Equal(t, picking.NoObject, picking.Pick(ray, reg))
}

func TestPickFromInsideCampfireBounds(t *testing.T) {
	reg := NewRegistry(BuildObjects())

	// A ray starting inside the campfire bounds selects it immediately.
	ray := picking.Ray{Origin: mgl32.Vec3{0, 1, 0}, Dir: mgl32.Vec3{0, 0, 1}}
	assert.Equal(t, PickCampfire, picking.Pick(ray, reg))
}
