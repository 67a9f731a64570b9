package verbs

import (
	"sort"
	"strings"

	"github.com/mseward/wick/engine/scope"
	"github.com/mseward/wick/engine/world"
	"github.com/mseward/wick/types"
)

// Describe renders the standard location report: name, description,
// visible loose items, and exits. Used by LOOK and by GO on arrival.
func Describe(w *world.World, loc types.EntityID) string {
	if !scope.IsLit(w, loc) {
		return "It is pitch dark, and you can't see a thing."
	}

	var out []string
	out = append(out, w.Name(loc))
	if desc := w.Str(loc, types.AttrDescription); desc != "" {
		out = append(out, desc)
	}

	var here []string
	for _, id := range w.Contents(loc) {
		e := w.Get(id)
		if e == nil || e.Kind != types.KindItem {
			continue
		}
		here = append(here, indefinite(w.Name(id)))
	}
	if len(here) > 0 {
		out = append(out, "You can see "+joinAnd(here)+" here.")
	}

	exits := w.Exits(loc)
	if len(exits) > 0 {
		dirs := make([]string, 0, len(exits))
		for dir := range exits {
			dirs = append(dirs, dir)
		}
		sort.Strings(dirs)
		out = append(out, "Exits: "+strings.Join(dirs, ", ")+".")
	}

	return strings.Join(out, "\n")
}
