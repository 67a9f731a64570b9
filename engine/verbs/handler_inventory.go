package verbs

import (
	"github.com/mseward/wick/engine/dispatch"
	"github.com/mseward/wick/types"
)

// Inventory lists what the player carries and wears.
type Inventory struct{}

func (h *Inventory) Verb() string               { return "inventory" }
func (h *Inventory) Synonyms() []string         { return []string{"i", "inv"} }
func (h *Inventory) Syntax() []types.SyntaxRule { return bareOnly }
func (h *Inventory) RequiresLight() bool        { return false }
func (h *Inventory) MultiObject() bool          { return false }

func (h *Inventory) Validate(ctx *dispatch.Context) error { return nil }

func (h *Inventory) Process(ctx *dispatch.Context) dispatch.Result {
	w := ctx.World
	carried := w.Carried()
	if len(carried) == 0 {
		return dispatch.Result{Message: "You are carrying nothing."}
	}
	var names []string
	for _, id := range carried {
		name := indefinite(w.Name(id))
		if w.Flag(id, types.FlagWorn) {
			name += " (being worn)"
		}
		names = append(names, name)
	}
	return dispatch.Result{Message: "You are carrying " + joinAnd(names) + "."}
}
