package verbs

import (
	"github.com/mseward/wick/engine/dispatch"
	"github.com/mseward/wick/types"
)

// Drop puts carried things down in the current location. Worn things
// come off as they fall.
type Drop struct{}

func (h *Drop) Verb() string               { return "drop" }
func (h *Drop) Synonyms() []string         { return []string{"discard", "put down"} }
func (h *Drop) Syntax() []types.SyntaxRule { return objectOnly }
func (h *Drop) RequiresLight() bool        { return false }
func (h *Drop) MultiObject() bool          { return true }

func (h *Drop) Validate(ctx *dispatch.Context) error {
	if r := ctx.RequireResolved(); r != nil {
		return r
	}
	if !ctx.World.Held(ctx.Object.ID) {
		return dispatch.Fail("You aren't carrying that.")
	}
	return nil
}

func (h *Drop) Process(ctx *dispatch.Context) dispatch.Result {
	w := ctx.World
	id := ctx.Object.ID
	changes := []types.StateChange{
		{
			Entity:    id,
			Attribute: types.AttrParent,
			Old:       w.ParentOf(id),
			New:       types.InLocation(w.PlayerLocation()),
		},
	}
	if w.Flag(id, types.FlagWorn) {
		changes = append(changes, types.StateChange{
			Entity: id, Attribute: types.FlagWorn, Old: true, New: false,
		})
	}
	return dispatch.Result{
		Message: "You drop " + ctx.Name() + ".",
		Changes: changes,
	}
}

// IncludeInAll limits "drop all" to things directly in hand.
func (h *Drop) IncludeInAll(ctx *dispatch.Context, id types.EntityID) bool {
	return ctx.World.ParentOf(id) == types.HeldByPlayer
}

func (h *Drop) MultiMessage(names []string) string {
	return "You drop " + theJoin(names) + "."
}
