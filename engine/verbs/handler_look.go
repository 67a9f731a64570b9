package verbs

import (
	"github.com/mseward/wick/engine/dispatch"
	"github.com/mseward/wick/types"
)

// Look describes the player's location. Darkness is reported by
// Describe itself rather than the central light gate, so LOOK in a
// dark room says what the dark looks like instead of refusing.
type Look struct{}

func (h *Look) Verb() string               { return "look" }
func (h *Look) Synonyms() []string         { return []string{"l"} }
func (h *Look) Syntax() []types.SyntaxRule { return bareOnly }
func (h *Look) RequiresLight() bool        { return false }
func (h *Look) MultiObject() bool          { return false }

func (h *Look) Validate(ctx *dispatch.Context) error { return nil }

func (h *Look) Process(ctx *dispatch.Context) dispatch.Result {
	return dispatch.Result{
		Message: Describe(ctx.World, ctx.World.PlayerLocation()),
	}
}
