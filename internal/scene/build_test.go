package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowpine/campsite/internal/engine/picking"
)

func TestBuildObjectsDeterministic(t *testing.T) {
	a := BuildObjects()
	b := BuildObjects()
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i], b[i], "object %d (%s) changed between builds", i, a[i].Name)
	}
}

func TestBuildObjectsHasAllGroups(t *testing.T) {
	objs := BuildObjects()

	groups := map[int]int{}
	for _, o := range objs {
		if o.PickGroup != picking.NoObject {
			groups[o.PickGroup]++
		}
	}

	for id := PickCampfire; id <= PickLantern; id++ {
		assert.Greater(t, groups[id], 0, "group %s has no members", Name(id))
	}
}

func TestBuildObjectsAboveGround(t *testing.T) {
	for _, o := range BuildObjects() {
		if o.Name == "ground" || o.Name == "tent stake" {
			continue
		}
		wb := o.WorldBounds()
		assert.GreaterOrEqual(t, wb.Max[1], float32(0), "%s entirely below ground", o.Name)
	}
}

func TestBuildObjectsValidScales(t *testing.T) {
	for _, o := range BuildObjects() {
		for axis := 0; axis < 3; axis++ {
			assert.Greater(t, o.Scale[axis], float32(0), "%s has non-positive scale", o.Name)
		}
	}
}

func TestFlamesAreEmissiveAdditive(t *testing.T) {
	found := 0
	for _, o := range BuildObjects() {
		if !o.Flame {
			continue
		}
		found++
		assert.True(t, o.Emissive, "flame must be emissive")
		assert.True(t, o.Additive, "flame must blend additively")
		assert.Equal(t, PickCampfire, o.PickGroup)
	}
	assert.Equal(t, flameCount, found)
}

func TestCampfireBoundsCoverFirePit(t *testing.T) {
	reg := NewRegistry(BuildObjects())
	bounds, ok := reg.Bounds(PickCampfire)
	require.True(t, ok)

	assert.True(t, bounds.Contains(mgl32.Vec3{0, 1, 0}), "fire center not inside campfire bounds")
	assert.Less(t, bounds.Min[0], float32(-1))
	assert.Greater(t, bounds.Max[0], float32(1))
}

func TestTentBoundsNearPlacement(t *testing.T) {
	reg := NewRegistry(BuildObjects())
	bounds, ok := reg.Bounds(PickTent)
	require.True(t, ok)

	center := bounds.Center()
	assert.InDelta(t, -7, center[0], 1.5)
	assert.InDelta(t, -6, center[2], 1.5)
	assert.Greater(t, bounds.Max[1], float32(7), "tent should be tall")
}

func TestMoonIsNotPickable(t *testing.T) {
	for _, o := range BuildObjects() {
		if o.Name == "moon" {
			assert.Equal(t, picking.NoObject, o.PickGroup)
			assert.True(t, o.Emissive)
			return
		}
	}
	t.Fatal("no moon in scene")
}

func TestNameLookup(t *testing.T) {
	assert.Equal(t, "campfire", Name(PickCampfire))
	assert.Equal(t, "lantern", Name(PickLantern))
	assert.Equal(t, "none", Name(picking.NoObject))
	assert.Equal(t, "none", Name(len(PickNames)))
}
