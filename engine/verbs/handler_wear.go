package verbs

import (
	"github.com/mseward/wick/engine/dispatch"
	"github.com/mseward/wick/types"
)

// Wear puts on carried wearables.
type Wear struct{}

func (h *Wear) Verb() string               { return "wear" }
func (h *Wear) Synonyms() []string         { return []string{"don", "put on"} }
func (h *Wear) Syntax() []types.SyntaxRule { return objectOnly }
func (h *Wear) RequiresLight() bool        { return false }
func (h *Wear) MultiObject() bool          { return true }

func (h *Wear) Validate(ctx *dispatch.Context) error {
	if r := ctx.RequireResolved(); r != nil {
		return r
	}
	w := ctx.World
	id := ctx.Object.ID
	if !w.Flag(id, types.FlagWearable) {
		return dispatch.Fail("You can't wear that.")
	}
	if !w.Held(id) {
		return dispatch.Fail("You aren't holding that.")
	}
	if w.Flag(id, types.FlagWorn) {
		return dispatch.Fail("You're already wearing that.")
	}
	return nil
}

func (h *Wear) Process(ctx *dispatch.Context) dispatch.Result {
	changes := []types.StateChange{
		{Entity: ctx.Object.ID, Attribute: types.FlagWorn, Old: false, New: true},
	}
	changes = append(changes, touch(ctx, ctx.Object.ID)...)
	return dispatch.Result{
		Message: "You put on " + ctx.Name() + ".",
		Changes: changes,
	}
}

// IncludeInAll limits "wear all" to carried wearables not yet worn.
func (h *Wear) IncludeInAll(ctx *dispatch.Context, id types.EntityID) bool {
	w := ctx.World
	return w.Flag(id, types.FlagWearable) && w.Held(id) && !w.Flag(id, types.FlagWorn)
}

func (h *Wear) MultiMessage(names []string) string {
	return "You put on " + theJoin(names) + "."
}
