package verbs

import (
	"github.com/mseward/wick/engine/dispatch"
	"github.com/mseward/wick/types"
)

// Read reports an object's written text.
type Read struct{}

func (h *Read) Verb() string               { return "read" }
func (h *Read) Synonyms() []string         { return nil }
func (h *Read) Syntax() []types.SyntaxRule { return objectOnly }
func (h *Read) RequiresLight() bool        { return true }
func (h *Read) MultiObject() bool          { return false }

func (h *Read) Validate(ctx *dispatch.Context) error {
	if r := ctx.RequireReachable(); r != nil {
		return r
	}
	if ctx.World.Str(ctx.Object.ID, types.AttrText) == "" {
		return dispatch.Fail("There's nothing written on that.")
	}
	return nil
}

func (h *Read) Process(ctx *dispatch.Context) dispatch.Result {
	return dispatch.Result{
		Message: ctx.World.Str(ctx.Object.ID, types.AttrText),
		Changes: touch(ctx, ctx.Object.ID),
	}
}
