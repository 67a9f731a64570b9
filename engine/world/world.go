// Package world holds the entity model: a flat arena of entities keyed
// by ID, with parent references forming the containment forest. All
// mutation goes through the store; this package only reads.
package world

import (
	"sort"

	"github.com/mseward/wick/types"
)

// Entity is one world object: an item, a location, or the player.
// Attributes live in an open property map; Parent is kept as a struct
// field because the containment forest is walked constantly.
type Entity struct {
	ID     types.EntityID
	Kind   types.Kind
	Parent types.Parent
	Props  map[string]any
}

// World is the complete entity model plus the engine-level bookkeeping
// tables that StateChanges can target.
type World struct {
	Game     types.GameDef
	Entities map[types.EntityID]*Entity
	PlayerID types.EntityID
	Pronouns map[string][]types.EntityID
	Turn     int
}

// New creates an empty world with the player entity installed.
func New(game types.GameDef) *World {
	w := &World{
		Game:     game,
		Entities: map[types.EntityID]*Entity{},
		Pronouns: map[string][]types.EntityID{},
		PlayerID: "player",
	}
	w.Entities[w.PlayerID] = &Entity{
		ID:     w.PlayerID,
		Kind:   types.KindPlayer,
		Parent: types.InLocation(game.Start),
		Props:  map[string]any{types.AttrName: "yourself"},
	}
	return w
}

// Add installs an entity. Existing entities with the same ID are
// replaced; the loader validates uniqueness before building.
func (w *World) Add(e *Entity) {
	if e.Props == nil {
		e.Props = map[string]any{}
	}
	w.Entities[e.ID] = e
}

// Get returns the entity for an ID, or nil.
func (w *World) Get(id types.EntityID) *Entity {
	return w.Entities[id]
}

// Player returns the player entity.
func (w *World) Player() *Entity {
	return w.Entities[w.PlayerID]
}

// PlayerLocation returns the ID of the location the player stands in.
func (w *World) PlayerLocation() types.EntityID {
	return w.Player().Parent.ID
}

// Flag returns a boolean attribute. Unset flags are false.
func (w *World) Flag(id types.EntityID, key string) bool {
	e := w.Entities[id]
	if e == nil {
		return false
	}
	v, _ := e.Props[key].(bool)
	return v
}

// Str returns a string attribute, or "" if unset.
func (w *World) Str(id types.EntityID, key string) string {
	e := w.Entities[id]
	if e == nil {
		return ""
	}
	s, _ := e.Props[key].(string)
	return s
}

// StrSet returns a string-set attribute (synonyms, adjectives).
func (w *World) StrSet(id types.EntityID, key string) []string {
	e := w.Entities[id]
	if e == nil {
		return nil
	}
	switch v := e.Props[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, x := range v {
			if s, ok := x.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Int returns a numeric attribute, or 0 if unset. Lua-loaded numbers
// arrive as float64 and are truncated.
func (w *World) Int(id types.EntityID, key string) int {
	e := w.Entities[id]
	if e == nil {
		return 0
	}
	switch v := e.Props[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

// Relation returns an entity-reference attribute (e.g. a lock's key).
func (w *World) Relation(id types.EntityID, key string) types.EntityID {
	e := w.Entities[id]
	if e == nil {
		return ""
	}
	switch v := e.Props[key].(type) {
	case types.EntityID:
		return v
	case string:
		return types.EntityID(v)
	}
	return ""
}

// Name returns the display name of an entity, falling back to its ID.
func (w *World) Name(id types.EntityID) string {
	if n := w.Str(id, types.AttrName); n != "" {
		return n
	}
	return string(id)
}

// ParentOf returns an entity's owning reference.
func (w *World) ParentOf(id types.EntityID) types.Parent {
	e := w.Entities[id]
	if e == nil {
		return types.Nowhere
	}
	return e.Parent
}

// Children returns the IDs of entities whose parent is the given item
// or location, sorted for deterministic output.
func (w *World) Children(parent types.Parent) []types.EntityID {
	var out []types.EntityID
	for id, e := range w.Entities {
		if e.Parent == parent {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Contents returns the children of an item or location by ID.
func (w *World) Contents(id types.EntityID) []types.EntityID {
	e := w.Entities[id]
	if e == nil {
		return nil
	}
	switch e.Kind {
	case types.KindLocation:
		return w.Children(types.InLocation(id))
	case types.KindPlayer:
		return w.Children(types.HeldByPlayer)
	default:
		return w.Children(types.InItem(id))
	}
}

// Carried returns the IDs of items held by the player.
func (w *World) Carried() []types.EntityID {
	return w.Children(types.HeldByPlayer)
}

// Exits returns a location's direction → destination map.
func (w *World) Exits(id types.EntityID) map[string]types.EntityID {
	e := w.Entities[id]
	if e == nil {
		return nil
	}
	switch v := e.Props[types.AttrExits].(type) {
	case map[string]types.EntityID:
		return v
	case map[string]string:
		out := make(map[string]types.EntityID, len(v))
		for dir, dest := range v {
			out[dir] = types.EntityID(dest)
		}
		return out
	case map[string]any:
		out := make(map[string]types.EntityID, len(v))
		for dir, dest := range v {
			if s, ok := dest.(string); ok {
				out[dir] = types.EntityID(s)
			}
		}
		return out
	}
	return nil
}

// Topics returns an animate entity's topic → response map.
func (w *World) Topics(id types.EntityID) map[string]string {
	e := w.Entities[id]
	if e == nil {
		return nil
	}
	switch v := e.Props[types.AttrTopics].(type) {
	case map[string]string:
		return v
	case map[string]any:
		out := make(map[string]string, len(v))
		for topic, reply := range v {
			if s, ok := reply.(string); ok {
				out[topic] = s
			}
		}
		return out
	}
	return nil
}

// Held reports whether the player carries the entity, directly or
// inside something carried.
func (w *World) Held(id types.EntityID) bool {
	for hop := 0; hop < maxDepth; hop++ {
		e := w.Entities[id]
		if e == nil {
			return false
		}
		switch e.Parent.Kind {
		case types.ParentPlayer:
			return true
		case types.ParentItem:
			id = e.Parent.ID
		default:
			return false
		}
	}
	return false
}

// Contains reports whether inner sits anywhere inside outer,
// transitively through item parents.
func (w *World) Contains(outer, inner types.EntityID) bool {
	for hop := 0; hop < maxDepth; hop++ {
		e := w.Entities[inner]
		if e == nil || e.Parent.Kind != types.ParentItem {
			return false
		}
		if e.Parent.ID == outer {
			return true
		}
		inner = e.Parent.ID
	}
	return false
}

// Root walks the parent chain to the rooting location (or the player's
// location when the chain ends at the player). Returns "" for entities
// that are nowhere.
func (w *World) Root(id types.EntityID) types.EntityID {
	for hop := 0; hop < maxDepth; hop++ {
		e := w.Entities[id]
		if e == nil {
			return ""
		}
		switch e.Parent.Kind {
		case types.ParentLocation:
			return e.Parent.ID
		case types.ParentPlayer:
			return w.PlayerLocation()
		case types.ParentItem:
			id = e.Parent.ID
		default:
			return ""
		}
	}
	return ""
}

// maxDepth bounds parent-chain walks. The loader rejects cycles, but a
// bound keeps a corrupted save from hanging the engine.
const maxDepth = 64
