// Package store is the single source of mutation truth. Every world
// mutation is an atomic StateChange applied here, and every applied
// change is appended to an immutable history.
package store

import (
	"reflect"

	"github.com/mseward/wick/engine/world"
	"github.com/mseward/wick/types"
)

// Store owns the current world snapshot and the append-only change
// history. One engine instance owns one store; turns run sequentially,
// so no locking happens here.
type Store struct {
	world      *world.World
	history    []types.StateChange
	mismatches []types.StateChange
}

// New creates a store around a freshly built world.
func New(w *world.World) *Store {
	return &Store{world: w}
}

// World returns the current snapshot. Callers treat it as read-only;
// mutation goes through Apply.
func (s *Store) World() *world.World {
	return s.world
}

// Apply applies each change in order: a direct write to the targeted
// attribute, then an append to history. There is no rollback of partial
// batches — handlers compute a fully formed change list before calling
// Apply ("compute then commit").
func (s *Store) Apply(changes []types.StateChange) {
	for _, c := range changes {
		s.applyOne(c)
		s.history = append(s.history, c)
	}
}

func (s *Store) applyOne(c types.StateChange) {
	if c.Entity == types.GlobalID {
		s.applyGlobal(c)
		return
	}

	e := s.world.Get(c.Entity)
	if e == nil {
		s.mismatches = append(s.mismatches, c)
		return
	}

	if c.Attribute == types.AttrParent {
		if c.Old != nil && !reflect.DeepEqual(e.Parent, c.Old) {
			s.mismatches = append(s.mismatches, c)
		}
		if p, ok := c.New.(types.Parent); ok {
			e.Parent = p
		}
		return
	}

	cur, present := e.Props[c.Attribute]
	if c.Old != nil && (!present || !reflect.DeepEqual(cur, c.Old)) {
		s.mismatches = append(s.mismatches, c)
	}
	if c.New == nil {
		delete(e.Props, c.Attribute)
		return
	}
	e.Props[c.Attribute] = c.New
}

// applyGlobal handles bookkeeping changes addressed to the global
// pseudo-entity (currently only the pronoun table).
func (s *Store) applyGlobal(c types.StateChange) {
	refs, ok := c.New.([]types.EntityID)
	if !ok {
		s.mismatches = append(s.mismatches, c)
		return
	}
	s.world.Pronouns[c.Attribute] = refs
}

// History returns the ordered sequence of every applied change since
// engine start. The returned slice is shared; callers must not modify.
func (s *Store) History() []types.StateChange {
	return s.history
}

// Len returns the number of applied changes.
func (s *Store) Len() int {
	return len(s.history)
}

// Since returns the changes applied at or after index n. Handlers and
// the trace display use it to show "what this turn did".
func (s *Store) Since(n int) []types.StateChange {
	if n < 0 || n > len(s.history) {
		return nil
	}
	return s.history[n:]
}

// Mismatched returns changes whose Old precondition did not hold at
// apply time, or that targeted a missing entity. These indicate handler
// bugs; the changes are applied anyway and surfaced here for tests and
// the trace display.
func (s *Store) Mismatched() []types.StateChange {
	return s.mismatches
}

// Replay rebuilds history onto a fresh world. Used by tests and debug
// tooling to verify that history fully describes the current state.
func Replay(w *world.World, history []types.StateChange) *Store {
	s := New(w)
	s.Apply(history)
	return s
}
