package loader

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/mseward/wick/types"
)

// rawEntity holds a definition table before compilation.
type rawEntity struct {
	id      string
	kind    types.Kind
	animate bool
	table   *lua.LTable
}

// registerAPI registers the world-definition constructors as Lua
// globals. Constructors are curried: Location("id") returns a function
// that takes the definition table, giving the DSL its
// `Location "id" { ... }` shape.
func registerAPI(L *lua.LState, coll *collector) {
	// Game { title = "...", start = "...", ... }
	L.SetGlobal("Game", L.NewFunction(func(L *lua.LState) int {
		coll.game = L.CheckTable(1)
		return 0
	}))

	L.SetGlobal("Location", curried(L, func(id string, tbl *lua.LTable) {
		coll.entities = append(coll.entities, rawEntity{id: id, kind: types.KindLocation, table: tbl})
	}))

	L.SetGlobal("Item", curried(L, func(id string, tbl *lua.LTable) {
		coll.entities = append(coll.entities, rawEntity{id: id, kind: types.KindItem, table: tbl})
	}))

	// NPC is an animate item: askable, attackable, not takeable.
	L.SetGlobal("NPC", curried(L, func(id string, tbl *lua.LTable) {
		coll.entities = append(coll.entities, rawEntity{id: id, kind: types.KindItem, animate: true, table: tbl})
	}))
}

func curried(L *lua.LState, build func(id string, tbl *lua.LTable)) *lua.LFunction {
	return L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			build(id, L.CheckTable(1))
			return 0
		}))
		return 1
	})
}
