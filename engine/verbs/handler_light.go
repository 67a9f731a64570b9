package verbs

import (
	"github.com/mseward/wick/engine/dispatch"
	"github.com/mseward/wick/types"
)

// Light and Extinguish toggle light sources. Lighting works in the
// dark — fumbling for the lamp is the whole point.

type Light struct{}

func (h *Light) Verb() string               { return "light" }
func (h *Light) Synonyms() []string         { return []string{"turn on", "switch on"} }
func (h *Light) Syntax() []types.SyntaxRule { return objectOnly }
func (h *Light) RequiresLight() bool        { return false }
func (h *Light) MultiObject() bool          { return false }

func (h *Light) Validate(ctx *dispatch.Context) error {
	if r := ctx.RequireResolved(); r != nil {
		return r
	}
	w := ctx.World
	id := ctx.Object.ID
	if !w.Flag(id, types.FlagLightSource) {
		return dispatch.Fail("You can't light that.")
	}
	if w.Flag(id, types.FlagLit) {
		return dispatch.Fail("It's already lit.")
	}
	return nil
}

func (h *Light) Process(ctx *dispatch.Context) dispatch.Result {
	changes := []types.StateChange{
		{Entity: ctx.Object.ID, Attribute: types.FlagLit, Old: false, New: true},
	}
	changes = append(changes, touch(ctx, ctx.Object.ID)...)
	return dispatch.Result{
		Message: capitalize(ctx.Name()) + " is now lit.",
		Changes: changes,
	}
}

type Extinguish struct{}

func (h *Extinguish) Verb() string { return "extinguish" }
func (h *Extinguish) Synonyms() []string {
	return []string{"douse", "turn off", "switch off"}
}
func (h *Extinguish) Syntax() []types.SyntaxRule { return objectOnly }
func (h *Extinguish) RequiresLight() bool        { return false }
func (h *Extinguish) MultiObject() bool          { return false }

func (h *Extinguish) Validate(ctx *dispatch.Context) error {
	if r := ctx.RequireResolved(); r != nil {
		return r
	}
	w := ctx.World
	id := ctx.Object.ID
	if !w.Flag(id, types.FlagLightSource) {
		return dispatch.Fail("You can't extinguish that.")
	}
	if !w.Flag(id, types.FlagLit) {
		return dispatch.Fail("It isn't lit.")
	}
	return nil
}

func (h *Extinguish) Process(ctx *dispatch.Context) dispatch.Result {
	return dispatch.Result{
		Message: capitalize(ctx.Name()) + " is now dark.",
		Changes: []types.StateChange{
			{Entity: ctx.Object.ID, Attribute: types.FlagLit, Old: true, New: false},
		},
	}
}
