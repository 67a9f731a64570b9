package verbs

import (
	"github.com/mseward/wick/engine/dispatch"
	"github.com/mseward/wick/types"
)

// Put moves a carried thing into an open container or onto a surface.
type Put struct{}

func (h *Put) Verb() string       { return "put" }
func (h *Put) Synonyms() []string { return []string{"insert", "place"} }
func (h *Put) Syntax() []types.SyntaxRule {
	return []types.SyntaxRule{
		{DirectObject: true, Prep: "in", IndirectObject: true},
		{DirectObject: true, Prep: "on", IndirectObject: true},
	}
}
func (h *Put) RequiresLight() bool { return true }
func (h *Put) MultiObject() bool   { return true }

func (h *Put) Validate(ctx *dispatch.Context) error {
	if r := ctx.RequireResolved(); r != nil {
		return r
	}
	w := ctx.World
	if !w.Held(ctx.Object.ID) {
		return dispatch.Fail("You aren't holding that.")
	}

	ind := ctx.Command.Indirect
	if ind == nil || !ind.Resolved() {
		return dispatch.Fail(dispatch.MsgNotHere)
	}
	if ctx.Object.ID == ind.ID || w.Contains(ctx.Object.ID, ind.ID) {
		return dispatch.Fail("It can't contain itself.")
	}
	switch ctx.Command.Prep {
	case "in":
		if !w.Flag(ind.ID, types.FlagContainer) {
			return dispatch.Fail("That can't hold things.")
		}
		if !w.Flag(ind.ID, types.FlagOpen) {
			return dispatch.Failf("The %s is closed.", w.Name(ind.ID))
		}
	case "on":
		if !w.Flag(ind.ID, types.FlagSurface) {
			return dispatch.Fail("You can't put things on that.")
		}
	}
	return nil
}

func (h *Put) Process(ctx *dispatch.Context) dispatch.Result {
	w := ctx.World
	ind := ctx.Command.Indirect
	changes := []types.StateChange{
		{
			Entity:    ctx.Object.ID,
			Attribute: types.AttrParent,
			Old:       w.ParentOf(ctx.Object.ID),
			New:       types.InItem(ind.ID),
		},
	}
	changes = append(changes, touch(ctx, ctx.Object.ID)...)

	where := "in"
	if ctx.Command.Prep == "on" {
		where = "on"
	}
	return dispatch.Result{
		Message: "You put " + ctx.Name() + " " + where + " the " + w.Name(ind.ID) + ".",
		Changes: changes,
	}
}

func (h *Put) MultiMessage(names []string) string {
	return "You put away " + theJoin(names) + "."
}
