package picking

// NoObject is returned by PickNearest when the ray hits nothing.
const NoObject = -1

// Candidate pairs a pickable object's identifier with its current
// world-space bounds.
type Candidate struct {
	ID     int
	Bounds AABB
}

// BoundsProvider supplies the ordered candidate set for a pick. The scene
// owns object placement and hands out a fresh view every call; the picker
// never caches or recomputes bounds.
type BoundsProvider interface {
	Candidates() []Candidate
}

// PickNearest returns the ID of the candidate with the smallest hit
// distance, or NoObject if the ray misses everything.
//
// Candidates are tested in order with a strict < comparison against the
// best distance seen so far, so an exact tie goes to the earlier entry.
//
// This is a naive O(n) scan, fine for the tens of objects a campsite
// holds. A uniform-grid broad phase (objects binned into cells, 3D-DDA
// walk along the ray, same reduction over the pruned subset) could slot
// in behind the same signature if the scene ever grows past that.
func PickNearest(r Ray, candidates []Candidate) int {
	closestID := NoObject
	closestT := float32(0)

	for _, c := range candidates {
		t, hit := r.IntersectAABB(c.Bounds)
		if !hit {
			continue
		}
		if closestID == NoObject || t < closestT {
			closestID = c.ID
			closestT = t
		}
	}

	return closestID
}

// Pick runs PickNearest against a provider's current candidate set.
func Pick(r Ray, provider BoundsProvider) int {
	return PickNearest(r, provider.Candidates())
}
