package verbs

import (
	"github.com/mseward/wick/engine/dispatch"
	"github.com/mseward/wick/types"
)

// Go moves the player through a location exit. The direction arrives
// as an unresolved object reference; directions are vocabulary, not
// entities.
type Go struct{}

func (h *Go) Verb() string               { return "go" }
func (h *Go) Synonyms() []string         { return []string{"walk", "run", "head", "travel"} }
func (h *Go) Syntax() []types.SyntaxRule { return objectOnly }
func (h *Go) RequiresLight() bool        { return false }
func (h *Go) MultiObject() bool          { return false }

func (h *Go) Validate(ctx *dispatch.Context) error {
	dir := ctx.Object.Name
	if dir == "" {
		return dispatch.Fail("Go where?")
	}
	exits := ctx.World.Exits(ctx.World.PlayerLocation())
	if _, ok := exits[dir]; !ok {
		return dispatch.Fail("You can't go that way.")
	}
	return nil
}

func (h *Go) Process(ctx *dispatch.Context) dispatch.Result {
	w := ctx.World
	from := w.PlayerLocation()
	dest := w.Exits(from)[ctx.Object.Name]

	return dispatch.Result{
		Message: Describe(w, dest),
		Changes: []types.StateChange{
			{
				Entity:    w.PlayerID,
				Attribute: types.AttrParent,
				Old:       types.InLocation(from),
				New:       types.InLocation(dest),
			},
		},
	}
}
