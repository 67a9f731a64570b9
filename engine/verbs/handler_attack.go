package verbs

import (
	"github.com/mseward/wick/engine/dispatch"
	"github.com/mseward/wick/types"
)

// Attack hands a hostile target to the combat resolver. The resolver
// is a black box: whatever narration and changes it returns are
// applied as-is.
type Attack struct{}

func (h *Attack) Verb() string               { return "attack" }
func (h *Attack) Synonyms() []string         { return []string{"kill", "hit", "fight", "strike"} }
func (h *Attack) Syntax() []types.SyntaxRule { return objectOnly }
func (h *Attack) RequiresLight() bool        { return true }
func (h *Attack) MultiObject() bool          { return false }

func (h *Attack) Validate(ctx *dispatch.Context) error {
	if r := ctx.RequireReachable(); r != nil {
		return r
	}
	w := ctx.World
	id := ctx.Object.ID
	if !w.Flag(id, types.FlagAnimate) {
		return dispatch.Failf("Attacking %s would accomplish nothing.", ctx.Name())
	}
	if !w.Flag(id, types.FlagHostile) {
		return dispatch.Failf("%s has done nothing to deserve that.", capitalize(ctx.Name()))
	}
	return nil
}

func (h *Attack) Process(ctx *dispatch.Context) dispatch.Result {
	msg, changes := ctx.Combat.Resolve(ctx.World, ctx.World.PlayerID, ctx.Object.ID)
	return dispatch.Result{Message: msg, Changes: changes}
}
