package picking

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Representative campsite bounds: campfire, backpack, log, tent, ground item.
func campCandidates() []Candidate {
	return []Candidate{
		{ID: 0, Bounds: box(-1, 0, -1, 1, 2, 1)},
		{ID: 1, Bounds: box(2, 0, -0.5, 3, 1.5, 0.5)},
		{ID: 2, Bounds: box(-2, 0, 1, -1.5, 0.5, 2)},
		{ID: 3, Bounds: box(0, 0, 2, 0.5, 1, 2.5)},
		{ID: 4, Bounds: box(-0.5, 0, -2, 0.5, 0.3, -1.5)},
	}
}

func TestPickNearestEmpty(t *testing.T) {
	r := Ray{Origin: mgl32.Vec3{0, 1, -2}, Dir: mgl32.Vec3{0, 0, 1}}
	assert.Equal(t, NoObject, PickNearest(r, nil))
	assert.Equal(t, NoObject, PickNearest(r, []Candidate{}))
}

func TestPickNearestSingleHit(t *testing.T) {
	r := Ray{Origin: mgl32.Vec3{0, 1, -2}, Dir: mgl32.Vec3{0, 0, 1}}
	assert.Equal(t, 0, PickNearest(r, campCandidates()))
}

func TestPickNearestAllMiss(t *testing.T) {
	r := Ray{Origin: mgl32.Vec3{10, 10, 10}, Dir: mgl32.Vec3{1, 0, 0}}
	assert.Equal(t, NoObject, PickNearest(r, campCandidates()))
}

func TestPickNearestPrefersCloserOverEarlier(t *testing.T) {
	// Fired down -Z through both the tent column (ID 3, z in [2, 2.5])
	// and the campfire (ID 0, z in [-1, 1]). The tent is nearer even
	// though the campfire comes first in the list.
	r := Ray{Origin: mgl32.Vec3{0.25, 0.5, 5}, Dir: mgl32.Vec3{0, 0, -1}}
	assert.Equal(t, 3, PickNearest(r, campCandidates()))
}

func TestPickNearestOrderIndependentForDistinctDistances(t *testing.T) {
	r := Ray{Origin: mgl32.Vec3{0.25, 0.5, 5}, Dir: mgl32.Vec3{0, 0, -1}}

	forward := campCandidates()
	reversed := make([]Candidate, 0, len(forward))
	for i := len(forward) - 1; i >= 0; i-- {
		reversed = append(reversed, forward[i])
	}

	assert.Equal(t, PickNearest(r, forward), PickNearest(r, reversed))
}

func TestPickNearestTieBreakFirstWins(t *testing.T) {
	// Both boxes share the near face at z = 1, so tNear is exactly 1
	// for each; the earlier entry must win.
	shallow := Candidate{ID: 7, Bounds: box(-1, 0, 1, 1, 1, 2)}
	deep := Candidate{ID: 8, Bounds: box(-1, 0, 1, 1, 1, 3)}
	r := Ray{Origin: mgl32.Vec3{0, 0.5, 0}, Dir: mgl32.Vec3{0, 0, 1}}

	assert.Equal(t, 7, PickNearest(r, []Candidate{shallow, deep}))
	assert.Equal(t, 8, PickNearest(r, []Candidate{deep, shallow}))
}

func TestPickNearestOriginInsideWins(t *testing.T) {
	// Standing inside the campfire bounds: t = 0 beats everything else.
	r := Ray{Origin: mgl32.Vec3{0, 1, 0}, Dir: mgl32.Vec3{0, 0, 1}}
	assert.Equal(t, 0, PickNearest(r, campCandidates()))
}

type fixedProvider []Candidate

func (p fixedProvider) Candidates() []Candidate { return p }

func TestPickThroughProvider(t *testing.T) {
	r := Ray{Origin: mgl32.Vec3{0.25, 0.5, 5}, Dir: mgl32.Vec3{0, 0, -1}}
	assert.Equal(t, 3, Pick(r, fixedProvider(campCandidates())))
}

func TestPickNearestManyDistances(t *testing.T) {
	// A line of boxes along +Z; nearest must win no matter where it sits
	// in the list.
	var cands []Candidate
	for i := 0; i < 10; i++ {
		z := float32(20 - i) // IDs in order of decreasing distance
		cands = append(cands, Candidate{
			ID:     i,
			Bounds: box(-1, -1, z, 1, 1, z+0.5),
		})
	}

	r := Ray{Origin: mgl32.Vec3{0, 0, 0}, Dir: mgl32.Vec3{0, 0, 1}}
	got := PickNearest(r, cands)
	require.Equal(t, 9, got, "last candidate is the closest box")
}
