// Package verbs is the built-in verb catalog: one handler per file,
// each implementing the dispatch two-phase protocol. Flavor text that
// varies per game belongs in world definitions; what lives here is the
// mechanics and the engine's stock responses.
package verbs

import (
	"strings"

	"github.com/mseward/wick/engine/dispatch"
	"github.com/mseward/wick/types"
)

// Common syntax shapes.
var (
	bareOnly   = []types.SyntaxRule{{}}
	objectOnly = []types.SyntaxRule{{DirectObject: true}}
)

func objectWith(preps ...string) []types.SyntaxRule {
	var rules []types.SyntaxRule
	for _, p := range preps {
		rules = append(rules, types.SyntaxRule{DirectObject: true, Prep: p, IndirectObject: true})
	}
	return append(rules, types.SyntaxRule{DirectObject: true})
}

// All returns the stock catalog in registration order.
func All() []dispatch.Handler {
	return []dispatch.Handler{
		&Look{},
		&Examine{},
		&Inventory{},
		&Wait{},
		&Go{},
		&Take{},
		&Drop{},
		&Open{},
		&Close{},
		&Lock{},
		&Unlock{},
		&Wear{},
		&Remove{},
		&Read{},
		&Light{},
		&Extinguish{},
		&Ask{},
		&Attack{},
		&Put{},
	}
}

// joinAnd renders "a", "a and b", "a, b and c".
func joinAnd(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}

// theJoin renders "the boots and the cloak".
func theJoin(names []string) string {
	withArticle := make([]string, len(names))
	for i, n := range names {
		withArticle[i] = "the " + n
	}
	return joinAnd(withArticle)
}

// indefinite prefixes a name with "a"/"an".
func indefinite(name string) string {
	if name == "" {
		return name
	}
	switch name[0] {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return "an " + name
	}
	return "a " + name
}

// touch produces the touched change for an entity the first time the
// player disturbs it.
func touch(ctx *dispatch.Context, id types.EntityID) []types.StateChange {
	if ctx.World.Flag(id, types.FlagTouched) {
		return nil
	}
	return []types.StateChange{{Entity: id, Attribute: types.FlagTouched, New: true}}
}
