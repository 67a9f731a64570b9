package verbs

import (
	"github.com/mseward/wick/engine/dispatch"
	"github.com/mseward/wick/types"
)

// Lock and Unlock turn a lock with its matching key. The key relation
// lives on the lockable entity; "unlock chest" without naming the key
// uses it implicitly when carried.

type Lock struct{}

func (h *Lock) Verb() string               { return "lock" }
func (h *Lock) Synonyms() []string         { return nil }
func (h *Lock) Syntax() []types.SyntaxRule { return objectWith("with") }
func (h *Lock) RequiresLight() bool        { return true }
func (h *Lock) MultiObject() bool          { return false }

func (h *Lock) Validate(ctx *dispatch.Context) error {
	if err := validateKeyUse(ctx); err != nil {
		return err
	}
	w := ctx.World
	id := ctx.Object.ID
	if w.Flag(id, types.FlagLocked) {
		return dispatch.Failf("%s is already locked.", capitalize(ctx.Name()))
	}
	if w.Flag(id, types.FlagOpen) {
		return dispatch.Fail("You'll have to close it first.")
	}
	return nil
}

func (h *Lock) Process(ctx *dispatch.Context) dispatch.Result {
	changes := []types.StateChange{
		{Entity: ctx.Object.ID, Attribute: types.FlagLocked, Old: false, New: true},
	}
	changes = append(changes, touch(ctx, ctx.Object.ID)...)
	return dispatch.Result{
		Message: "You lock " + ctx.Name() + ".",
		Changes: changes,
	}
}

type Unlock struct{}

func (h *Unlock) Verb() string               { return "unlock" }
func (h *Unlock) Synonyms() []string         { return nil }
func (h *Unlock) Syntax() []types.SyntaxRule { return objectWith("with") }
func (h *Unlock) RequiresLight() bool        { return true }
func (h *Unlock) MultiObject() bool          { return false }

func (h *Unlock) Validate(ctx *dispatch.Context) error {
	if err := validateKeyUse(ctx); err != nil {
		return err
	}
	if !ctx.World.Flag(ctx.Object.ID, types.FlagLocked) {
		return dispatch.Failf("%s isn't locked.", capitalize(ctx.Name()))
	}
	return nil
}

func (h *Unlock) Process(ctx *dispatch.Context) dispatch.Result {
	changes := []types.StateChange{
		{Entity: ctx.Object.ID, Attribute: types.FlagLocked, Old: true, New: false},
	}
	changes = append(changes, touch(ctx, ctx.Object.ID)...)
	return dispatch.Result{
		Message: "The key turns with a satisfying click.",
		Changes: changes,
	}
}

// validateKeyUse covers the shared lock/unlock preconditions: a
// reachable lockable object and the right key in hand.
func validateKeyUse(ctx *dispatch.Context) error {
	if r := ctx.RequireReachable(); r != nil {
		return r
	}
	w := ctx.World
	key := w.Relation(ctx.Object.ID, types.AttrKey)
	if key == "" {
		return dispatch.Fail("That doesn't seem to have a lock.")
	}
	if ctx.Command.Indirect != nil {
		if !ctx.Command.Indirect.Resolved() || ctx.Command.Indirect.ID != key {
			return dispatch.Fail("That doesn't fit the lock.")
		}
	}
	if !w.Held(key) {
		return dispatch.Fail("You have nothing to do that with.")
	}
	return nil
}
