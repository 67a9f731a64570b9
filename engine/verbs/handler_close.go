package verbs

import (
	"github.com/mseward/wick/engine/dispatch"
	"github.com/mseward/wick/types"
)

// Close shuts openable things.
type Close struct{}

func (h *Close) Verb() string               { return "close" }
func (h *Close) Synonyms() []string         { return []string{"shut"} }
func (h *Close) Syntax() []types.SyntaxRule { return objectOnly }
func (h *Close) RequiresLight() bool        { return true }
func (h *Close) MultiObject() bool          { return false }

func (h *Close) Validate(ctx *dispatch.Context) error {
	if r := ctx.RequireReachable(); r != nil {
		return r
	}
	w := ctx.World
	id := ctx.Object.ID
	if !w.Flag(id, types.FlagOpenable) {
		return dispatch.Fail("You can't close that.")
	}
	if !w.Flag(id, types.FlagOpen) {
		return dispatch.Failf("%s is already closed.", capitalize(ctx.Name()))
	}
	return nil
}

func (h *Close) Process(ctx *dispatch.Context) dispatch.Result {
	changes := []types.StateChange{
		{Entity: ctx.Object.ID, Attribute: types.FlagOpen, Old: true, New: false},
	}
	changes = append(changes, touch(ctx, ctx.Object.ID)...)
	return dispatch.Result{
		Message: "You close " + ctx.Name() + ".",
		Changes: changes,
	}
}
