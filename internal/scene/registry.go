package scene

import (
	"github.com/hollowpine/campsite/internal/engine/picking"
)

const unpickable = picking.NoObject

// Registry aggregates the scene's selectable objects into one world
// AABB per pick group. It implements picking.BoundsProvider.
type Registry struct {
	candidates []picking.Candidate
}

// NewRegistry builds the registry from placed objects. Each pick
// group's bounds are the union of its members' world bounds;
// candidates come out ordered by group ID.
func NewRegistry(objects []Object) *Registry {
	maxID := -1
	for _, o := range objects {
		if o.PickGroup > maxID {
			maxID = o.PickGroup
		}
	}

	bounds := make([]picking.AABB, maxID+1)
	seen := make([]bool, maxID+1)
	for _, o := range objects {
		if o.PickGroup == unpickable {
			continue
		}
		wb := o.WorldBounds()
		if !seen[o.PickGroup] {
			bounds[o.PickGroup] = wb
			seen[o.PickGroup] = true
			continue
		}
		bounds[o.PickGroup] = bounds[o.PickGroup].Union(wb)
	}

	r := &Registry{}
	for id, ok := range seen {
		if !ok {
			continue
		}
		r.candidates = append(r.candidates, picking.Candidate{ID: id, Bounds: bounds[id]})
	}
	return r
}

// Candidates returns the pickable objects in group-ID order.
func (r *Registry) Candidates() []picking.Candidate {
	return r.candidates
}

// Bounds returns the world AABB for a pick group, and whether the
// group exists.
func (r *Registry) Bounds(id int) (picking.AABB, bool) {
	for _, c := range r.candidates {
		if c.ID == id {
			return c.Bounds, true
		}
	}
	return picking.AABB{}, false
}

// Name returns the display name for a pick group.
func Name(id int) string {
	if id < 0 || id >= len(PickNames) {
		return "none"
	}
	return PickNames[id]
}
