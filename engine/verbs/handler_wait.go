package verbs

import (
	"github.com/mseward/wick/engine/dispatch"
	"github.com/mseward/wick/types"
)

// Wait lets a turn pass.
type Wait struct{}

func (h *Wait) Verb() string               { return "wait" }
func (h *Wait) Synonyms() []string         { return []string{"z"} }
func (h *Wait) Syntax() []types.SyntaxRule { return bareOnly }
func (h *Wait) RequiresLight() bool        { return false }
func (h *Wait) MultiObject() bool          { return false }

func (h *Wait) Validate(ctx *dispatch.Context) error { return nil }

func (h *Wait) Process(ctx *dispatch.Context) dispatch.Result {
	return dispatch.Result{Message: "Time passes."}
}
