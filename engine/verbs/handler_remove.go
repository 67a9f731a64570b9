package verbs

import (
	"github.com/mseward/wick/engine/dispatch"
	"github.com/mseward/wick/types"
)

// Remove takes off worn clothing. "remove all" affects only what is
// actually worn.
type Remove struct{}

func (h *Remove) Verb() string               { return "remove" }
func (h *Remove) Synonyms() []string         { return []string{"doff", "take off"} }
func (h *Remove) Syntax() []types.SyntaxRule { return objectOnly }
func (h *Remove) RequiresLight() bool        { return false }
func (h *Remove) MultiObject() bool          { return true }

func (h *Remove) Validate(ctx *dispatch.Context) error {
	if r := ctx.RequireResolved(); r != nil {
		return r
	}
	if !ctx.World.Flag(ctx.Object.ID, types.FlagWorn) {
		return dispatch.Fail("You aren't wearing that.")
	}
	return nil
}

func (h *Remove) Process(ctx *dispatch.Context) dispatch.Result {
	return dispatch.Result{
		Message: "You take off " + ctx.Name() + ".",
		Changes: []types.StateChange{
			{Entity: ctx.Object.ID, Attribute: types.FlagWorn, Old: true, New: false},
		},
	}
}

// IncludeInAll limits "remove all" to what is worn.
func (h *Remove) IncludeInAll(ctx *dispatch.Context, id types.EntityID) bool {
	return ctx.World.Flag(id, types.FlagWorn)
}

func (h *Remove) MultiMessage(names []string) string {
	return "You take off " + theJoin(names) + "."
}
