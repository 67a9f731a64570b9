package verbs

import (
	"github.com/mseward/wick/engine/dispatch"
	"github.com/mseward/wick/types"
)

// Examine reports an object's description. "look at", "look in" and
// friends route here through the verb table.
type Examine struct{}

func (h *Examine) Verb() string { return "examine" }
func (h *Examine) Synonyms() []string {
	return []string{"x", "inspect", "look at", "look in"}
}
func (h *Examine) Syntax() []types.SyntaxRule { return objectOnly }
func (h *Examine) RequiresLight() bool        { return true }
func (h *Examine) MultiObject() bool          { return false }

func (h *Examine) Validate(ctx *dispatch.Context) error {
	if r := ctx.RequireResolved(); r != nil {
		return r
	}
	return nil
}

func (h *Examine) Process(ctx *dispatch.Context) dispatch.Result {
	w := ctx.World
	id := ctx.Object.ID

	msg := w.Str(id, types.AttrDescription)
	if msg == "" {
		msg = "You see nothing special about " + ctx.Name() + "."
	}

	// Open containers show their contents alongside the description.
	if w.Flag(id, types.FlagContainer) && (w.Flag(id, types.FlagOpen) || w.Flag(id, types.FlagTransparent)) {
		var inside []string
		for _, c := range w.Contents(id) {
			inside = append(inside, indefinite(w.Name(c)))
		}
		if len(inside) > 0 {
			msg += "\n" + capitalize(ctx.Name()) + " contains " + joinAnd(inside) + "."
		}
	}

	return dispatch.Result{Message: msg, Changes: touch(ctx, id)}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
