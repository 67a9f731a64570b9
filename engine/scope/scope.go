// Package scope answers what entities can be seen, reached, and
// referenced from a viewpoint. All functions are pure queries over a
// world snapshot.
package scope

import (
	"sort"

	"github.com/mseward/wick/engine/world"
	"github.com/mseward/wick/types"
)

// Visible reports whether the entity can be perceived from the given
// location: its parent chain roots at that location (or at the player,
// who stands in it), every container ancestor is open or transparent,
// and the location has light.
func Visible(w *world.World, id, from types.EntityID) bool {
	if !IsLit(w, from) {
		return false
	}
	if id == from {
		return true
	}
	if w.Root(id) != from {
		return false
	}
	return chainOpen(w, id, false)
}

// Reachable reports whether the entity can be manipulated from the
// location. Stricter than Visible: a closed transparent container lets
// you see its contents but not touch them.
func Reachable(w *world.World, id, from types.EntityID) bool {
	if !Visible(w, id, from) {
		return false
	}
	return chainOpen(w, id, true)
}

// chainOpen walks container ancestors. When strict is false a closed
// but transparent container still passes (sight); when strict it does
// not (touch).
func chainOpen(w *world.World, id types.EntityID, strict bool) bool {
	p := w.ParentOf(id)
	for p.Kind == types.ParentItem {
		c := p.ID
		if w.Flag(c, types.FlagContainer) && !w.Flag(c, types.FlagOpen) {
			if strict || !w.Flag(c, types.FlagTransparent) {
				return false
			}
		}
		p = w.ParentOf(c)
	}
	return true
}

// IsLit reports whether a location has light: inherent light, or a
// burning light source present in the location or carried by the
// player (including sources inside open or transparent containers).
func IsLit(w *world.World, loc types.EntityID) bool {
	if w.Flag(loc, types.FlagLight) {
		return true
	}
	for id, e := range w.Entities {
		if e.Kind != types.KindItem || !w.Flag(id, types.FlagLit) {
			continue
		}
		// A carried light goes where the player goes.
		if !w.Held(id) && w.Root(id) != loc {
			continue
		}
		if chainOpen(w, id, false) {
			return true
		}
	}
	return false
}

// InScope returns the entities referenceable for parsing from the
// player's position: everything visible in the location plus
// everything carried (carried things are referenceable in the dark).
// Sorted for deterministic disambiguation output.
func InScope(w *world.World) []types.EntityID {
	loc := w.PlayerLocation()
	seen := map[types.EntityID]bool{}
	var out []types.EntityID

	add := func(id types.EntityID) {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}

	for id, e := range w.Entities {
		if e.Kind != types.KindItem {
			continue
		}
		if w.Held(id) || Visible(w, id, loc) {
			add(id)
		}
	}
	add(loc)
	add(w.PlayerID)

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ReachableItems returns the reachable items at the player's position,
// carried items included. This is the candidate set for ALL expansion.
func ReachableItems(w *world.World) []types.EntityID {
	loc := w.PlayerLocation()
	var out []types.EntityID
	for id, e := range w.Entities {
		if e.Kind != types.KindItem {
			continue
		}
		if w.Held(id) || Reachable(w, id, loc) {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
