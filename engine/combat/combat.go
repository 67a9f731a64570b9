// Package combat is the melee resolver consumed by hostile-target
// handlers. Dispatch treats it as a black box: given attacker and
// defender, it returns narration plus the state changes to apply. Its
// randomization is deterministic per seed so transcripts replay.
package combat

import (
	"fmt"

	"github.com/mseward/wick/engine/world"
	"github.com/mseward/wick/types"
)

// Resolver is the collaborator interface handlers call.
type Resolver interface {
	Resolve(w *world.World, attacker, defender types.EntityID) (string, []types.StateChange)
}

// Melee is the default resolver: one exchange per call, damage
// max(1, 1d6 + strength - toughness).
type Melee struct {
	rng *RNG
}

// NewMelee creates a resolver with a seeded RNG.
func NewMelee(seed int64) *Melee {
	return &Melee{rng: NewRNG(seed)}
}

// RestoreMelee re-creates a resolver with its RNG advanced to a saved
// position.
func RestoreMelee(seed, position int64) *Melee {
	return &Melee{rng: RestoreRNG(seed, position)}
}

// RNG exposes the resolver's random source for save/restore.
func (m *Melee) RNG() *RNG {
	return m.rng
}

// Resolve runs one melee exchange. The defender loses hit points; at
// zero it is removed from play. The defender is marked fighting so
// later turns know the fight is on.
func (m *Melee) Resolve(w *world.World, attacker, defender types.EntityID) (string, []types.StateChange) {
	name := w.Name(defender)
	dmg := m.damage(w, attacker, defender)
	hp := w.Int(defender, "hp") - dmg

	changes := []types.StateChange{
		{Entity: defender, Attribute: "hp", Old: w.Int(defender, "hp"), New: hp},
	}
	if !w.Flag(defender, types.FlagFighting) {
		changes = append(changes, types.StateChange{
			Entity: defender, Attribute: types.FlagFighting, New: true,
		})
	}

	if hp <= 0 {
		changes = append(changes, types.StateChange{
			Entity: defender, Attribute: types.AttrParent,
			Old: w.ParentOf(defender), New: types.Nowhere,
		})
		return fmt.Sprintf("The %s collapses and is no more.", name), changes
	}

	return fmt.Sprintf("You strike the %s. It staggers but fights on.", name), changes
}

func (m *Melee) damage(w *world.World, attacker, defender types.EntityID) int {
	dmg := m.rng.Roll(6) + w.Int(attacker, "strength") - w.Int(defender, "toughness")
	if dmg < 1 {
		dmg = 1
	}
	return dmg
}
