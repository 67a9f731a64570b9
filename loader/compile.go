package loader

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/mseward/wick/engine/world"
	"github.com/mseward/wick/types"
)

// compile converts the collected Lua tables into a world. Placement
// keys (location / container / carried) become the parent reference;
// everything else lands in the property map as-is.
func compile(coll *collector) (*world.World, error) {
	if coll.game == nil {
		return nil, fmt.Errorf("no Game block defined")
	}

	game := types.GameDef{
		Title:   getString(coll.game, "title"),
		Author:  getString(coll.game, "author"),
		Version: getString(coll.game, "version"),
		Start:   types.EntityID(getString(coll.game, "start")),
		Intro:   getString(coll.game, "intro"),
	}
	if game.Start == "" {
		return nil, fmt.Errorf("Game block missing start location")
	}

	w := world.New(game)

	seen := map[string]bool{}
	for _, raw := range coll.entities {
		if seen[raw.id] {
			return nil, fmt.Errorf("entity %q defined twice", raw.id)
		}
		seen[raw.id] = true

		parent, props, err := splitPlacement(raw)
		if err != nil {
			return nil, err
		}
		if raw.animate {
			props[types.FlagAnimate] = true
		}
		w.Add(&world.Entity{
			ID:     types.EntityID(raw.id),
			Kind:   raw.kind,
			Parent: parent,
			Props:  props,
		})
	}

	return w, nil
}

// splitPlacement extracts the parent reference from a definition table
// and converts the remaining fields to Go values.
func splitPlacement(raw rawEntity) (types.Parent, map[string]any, error) {
	props := map[string]any{}
	parent := types.Nowhere // locations stay rootless; items may be placed

	var convErr error
	raw.table.ForEach(func(k, v lua.LValue) {
		key, ok := k.(lua.LString)
		if !ok {
			convErr = fmt.Errorf("entity %q: non-string key %v", raw.id, k)
			return
		}
		switch string(key) {
		case "location":
			parent = types.InLocation(types.EntityID(lua.LVAsString(v)))
		case "container":
			// A string places the entity inside another item; a
			// boolean marks the entity itself as a container.
			if s, ok := v.(lua.LString); ok {
				parent = types.InItem(types.EntityID(s))
			} else {
				props[types.FlagContainer] = lua.LVAsBool(v)
			}
		case "carried":
			if lua.LVAsBool(v) {
				parent = types.HeldByPlayer
			}
		default:
			props[string(key)] = toGo(v)
		}
	})
	if convErr != nil {
		return parent, nil, convErr
	}
	return parent, props, nil
}

// toGo converts a Lua value to the property representation: booleans,
// float64 numbers, strings, []string for array tables, and
// map[string]string for record tables.
func toGo(v lua.LValue) any {
	switch lv := v.(type) {
	case lua.LBool:
		return bool(lv)
	case lua.LNumber:
		return float64(lv)
	case lua.LString:
		return string(lv)
	case *lua.LTable:
		if lv.Len() > 0 {
			var list []string
			for i := 1; i <= lv.Len(); i++ {
				list = append(list, lua.LVAsString(lv.RawGetInt(i)))
			}
			return list
		}
		rec := map[string]string{}
		lv.ForEach(func(k, val lua.LValue) {
			if ks, ok := k.(lua.LString); ok {
				rec[string(ks)] = lua.LVAsString(val)
			}
		})
		return rec
	}
	return nil
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	if s, ok := tbl.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return ""
}
