package verbs

import (
	"github.com/mseward/wick/engine/dispatch"
	"github.com/mseward/wick/types"
)

// Open opens openable things. Opening a container announces what it
// reveals.
type Open struct{}

func (h *Open) Verb() string               { return "open" }
func (h *Open) Synonyms() []string         { return nil }
func (h *Open) Syntax() []types.SyntaxRule { return objectOnly }
func (h *Open) RequiresLight() bool        { return true }
func (h *Open) MultiObject() bool          { return false }

func (h *Open) Validate(ctx *dispatch.Context) error {
	if r := ctx.RequireReachable(); r != nil {
		return r
	}
	w := ctx.World
	id := ctx.Object.ID
	if !w.Flag(id, types.FlagOpenable) {
		return dispatch.Fail("You can't open that.")
	}
	if w.Flag(id, types.FlagLocked) {
		return dispatch.Failf("%s is locked.", capitalize(ctx.Name()))
	}
	if w.Flag(id, types.FlagOpen) {
		return dispatch.Failf("%s is already open.", capitalize(ctx.Name()))
	}
	return nil
}

func (h *Open) Process(ctx *dispatch.Context) dispatch.Result {
	w := ctx.World
	id := ctx.Object.ID

	changes := []types.StateChange{
		{Entity: id, Attribute: types.FlagOpen, Old: false, New: true},
	}
	changes = append(changes, touch(ctx, id)...)

	msg := "You open " + ctx.Name() + "."
	if w.Flag(id, types.FlagContainer) {
		var inside []string
		for _, c := range w.Contents(id) {
			inside = append(inside, indefinite(w.Name(c)))
		}
		if len(inside) > 0 {
			msg = "As " + ctx.Name() + " opens, it reveals " + joinAnd(inside) + " within."
		}
	}

	return dispatch.Result{Message: msg, Changes: changes}
}
