package verbs

import (
	"github.com/mseward/wick/engine/dispatch"
	"github.com/mseward/wick/types"
)

// Take picks things up. Supports "take all" and explicit lists.
type Take struct{}

func (h *Take) Verb() string               { return "take" }
func (h *Take) Synonyms() []string         { return []string{"get", "grab", "pick up"} }
func (h *Take) Syntax() []types.SyntaxRule { return objectOnly }
func (h *Take) RequiresLight() bool        { return true }
func (h *Take) MultiObject() bool          { return true }

func (h *Take) Validate(ctx *dispatch.Context) error {
	if r := ctx.RequireReachable(); r != nil {
		return r
	}
	w := ctx.World
	id := ctx.Object.ID
	if w.Held(id) {
		return dispatch.Fail("You already have that.")
	}
	if w.Flag(id, types.FlagAnimate) {
		return dispatch.Failf("%s would hardly appreciate that.", capitalize(ctx.Name()))
	}
	if !w.Flag(id, types.FlagTakeable) {
		return dispatch.Fail("You can't take that.")
	}
	return nil
}

func (h *Take) Process(ctx *dispatch.Context) dispatch.Result {
	id := ctx.Object.ID
	changes := []types.StateChange{
		{
			Entity:    id,
			Attribute: types.AttrParent,
			Old:       ctx.World.ParentOf(id),
			New:       types.HeldByPlayer,
		},
	}
	changes = append(changes, touch(ctx, id)...)
	return dispatch.Result{
		Message: "You take " + ctx.Name() + ".",
		Changes: changes,
	}
}

// IncludeInAll limits "take all" to loose takeable things.
func (h *Take) IncludeInAll(ctx *dispatch.Context, id types.EntityID) bool {
	w := ctx.World
	return w.Flag(id, types.FlagTakeable) && !w.Held(id) && !w.Flag(id, types.FlagAnimate)
}

// MultiMessage merges successes of a list or ALL command.
func (h *Take) MultiMessage(names []string) string {
	return "You take " + theJoin(names) + "."
}
