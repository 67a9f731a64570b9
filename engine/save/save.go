// Package save implements JSON serialization and deserialization of a
// world snapshot. The change history rides along for debugging; replay
// correctness is guaranteed by the snapshot, not the history.
package save

import (
	"encoding/json"

	"github.com/mseward/wick/engine/world"
	"github.com/mseward/wick/types"
)

// SavedEntity is the JSON form of one entity.
type SavedEntity struct {
	Kind       types.Kind     `json:"kind"`
	ParentKind int            `json:"parent_kind"`
	ParentID   types.EntityID `json:"parent_id,omitempty"`
	Props      map[string]any `json:"props,omitempty"`
}

// SaveData is the JSON-serializable save format.
type SaveData struct {
	Version    string                         `json:"version"`
	Game       string                         `json:"game"`
	Turn       int                            `json:"turn"`
	Entities   map[types.EntityID]SavedEntity `json:"entities"`
	Pronouns   map[string][]types.EntityID    `json:"pronouns,omitempty"`
	History    []types.StateChange            `json:"history,omitempty"`
	CombatSeed int64                          `json:"combat_seed"`
	CombatPos  int64                          `json:"combat_pos"`
}

// Save serializes a world (and optionally the change history) to JSON.
func Save(w *world.World, history []types.StateChange, combatSeed, combatPos int64) ([]byte, error) {
	data := SaveData{
		Version:    w.Game.Version,
		Game:       w.Game.Title,
		Turn:       w.Turn,
		Entities:   map[types.EntityID]SavedEntity{},
		Pronouns:   w.Pronouns,
		History:    history,
		CombatSeed: combatSeed,
		CombatPos:  combatPos,
	}
	for id, e := range w.Entities {
		data.Entities[id] = SavedEntity{
			Kind:       e.Kind,
			ParentKind: int(e.Parent.Kind),
			ParentID:   e.Parent.ID,
			Props:      e.Props,
		}
	}
	return json.MarshalIndent(data, "", "  ")
}

// Load deserializes JSON bytes into SaveData.
func Load(data []byte) (*SaveData, error) {
	var sd SaveData
	if err := json.Unmarshal(data, &sd); err != nil {
		return nil, err
	}
	if sd.Entities == nil {
		sd.Entities = map[types.EntityID]SavedEntity{}
	}
	if sd.Pronouns == nil {
		sd.Pronouns = map[string][]types.EntityID{}
	}
	return &sd, nil
}

// ApplySave replaces a world's entity state with the saved snapshot.
// Game metadata stays whatever the loaded definitions say.
func ApplySave(w *world.World, sd *SaveData) {
	w.Entities = map[types.EntityID]*world.Entity{}
	for id, se := range sd.Entities {
		props := se.Props
		if props == nil {
			props = map[string]any{}
		}
		w.Entities[id] = &world.Entity{
			ID:     id,
			Kind:   se.Kind,
			Parent: types.Parent{Kind: types.ParentKind(se.ParentKind), ID: se.ParentID},
			Props:  props,
		}
	}
	w.Pronouns = sd.Pronouns
	w.Turn = sd.Turn
}
