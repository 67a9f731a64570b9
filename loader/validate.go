package loader

import (
	"fmt"

	"github.com/pixil98/go-errors"

	"github.com/mseward/wick/engine/world"
	"github.com/mseward/wick/types"
)

// validate checks referential integrity of a compiled world: the start
// location exists, parents and exits point at real entities of the
// right kind, lock keys exist, and the containment graph is acyclic.
// All problems are reported at once.
func validate(w *world.World) error {
	el := errors.NewErrorList()

	if loc := w.Get(w.Game.Start); loc == nil || loc.Kind != types.KindLocation {
		el.Add(fmt.Errorf("start location %q does not exist", w.Game.Start))
	}

	for id, e := range w.Entities {
		switch e.Parent.Kind {
		case types.ParentLocation:
			if p := w.Get(e.Parent.ID); p == nil || p.Kind != types.KindLocation {
				el.Add(fmt.Errorf("entity %q placed in unknown location %q", id, e.Parent.ID))
			}
		case types.ParentItem:
			if p := w.Get(e.Parent.ID); p == nil || p.Kind != types.KindItem {
				el.Add(fmt.Errorf("entity %q placed in unknown item %q", id, e.Parent.ID))
			}
		}

		if e.Kind == types.KindLocation {
			for dir, dest := range w.Exits(id) {
				if d := w.Get(dest); d == nil || d.Kind != types.KindLocation {
					el.Add(fmt.Errorf("location %q exit %s leads to unknown location %q", id, dir, dest))
				}
			}
		}

		if key := w.Relation(id, types.AttrKey); key != "" {
			if k := w.Get(key); k == nil || k.Kind != types.KindItem {
				el.Add(fmt.Errorf("entity %q names unknown key %q", id, key))
			}
		}
	}

	el.Add(validateAcyclic(w))

	return el.Err()
}

// validateAcyclic rejects containment cycles: every item's parent
// chain must terminate at a location, the player, or nowhere.
func validateAcyclic(w *world.World) error {
	for id := range w.Entities {
		seen := map[types.EntityID]bool{}
		cur := id
		for {
			if seen[cur] {
				return fmt.Errorf("containment cycle through entity %q", id)
			}
			seen[cur] = true
			p := w.ParentOf(cur)
			if p.Kind != types.ParentItem {
				break
			}
			cur = p.ID
		}
	}
	return nil
}
