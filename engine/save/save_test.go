package save

import (
	"testing"

	"github.com/mseward/wick/engine/world"
	"github.com/mseward/wick/types"
)

func testWorld() *world.World {
	w := world.New(types.GameDef{Title: "Test Game", Version: "1.0", Start: "hall"})
	w.Add(&world.Entity{ID: "hall", Kind: types.KindLocation, Props: map[string]any{
		types.FlagLight: true,
	}})
	w.Add(&world.Entity{ID: "lamp", Kind: types.KindItem, Parent: types.HeldByPlayer, Props: map[string]any{
		types.AttrName: "lamp",
		types.FlagLit:  true,
	}})
	w.Add(&world.Entity{ID: "coin", Kind: types.KindItem, Parent: types.InLocation("hall"), Props: map[string]any{
		types.AttrName: "coin",
	}})
	w.Turn = 12
	w.Pronouns[types.PronounIt] = []types.EntityID{"lamp"}
	return w
}

func TestSaveLoad_Roundtrip(t *testing.T) {
	w := testWorld()
	history := []types.StateChange{
		{Entity: "lamp", Attribute: types.FlagLit, Old: false, New: true},
	}

	data, err := Save(w, history, 42, 7)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	sd, err := Load(data)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if sd.Game != "Test Game" || sd.Version != "1.0" {
		t.Errorf("expected game metadata, got %q %q", sd.Game, sd.Version)
	}
	if sd.Turn != 12 {
		t.Errorf("expected turn 12, got %d", sd.Turn)
	}
	if sd.CombatSeed != 42 || sd.CombatPos != 7 {
		t.Errorf("expected combat RNG state, got seed %d pos %d", sd.CombatSeed, sd.CombatPos)
	}
	if len(sd.History) != 1 {
		t.Errorf("expected history carried, got %v", sd.History)
	}
}

func TestApplySave_RestoresWorld(t *testing.T) {
	w := testWorld()
	data, err := Save(w, nil, 1, 0)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	sd, err := Load(data)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	fresh := world.New(types.GameDef{Title: "Test Game", Version: "1.0", Start: "hall"})
	ApplySave(fresh, sd)

	if fresh.Turn != 12 {
		t.Errorf("expected turn restored, got %d", fresh.Turn)
	}
	if !fresh.Held("lamp") {
		t.Error("expected lamp held after restore")
	}
	if !fresh.Flag("lamp", types.FlagLit) {
		t.Error("expected lamp lit after restore")
	}
	if fresh.ParentOf("coin") != types.InLocation("hall") {
		t.Errorf("expected coin in hall, got %+v", fresh.ParentOf("coin"))
	}
	if refs := fresh.Pronouns[types.PronounIt]; len(refs) != 1 || refs[0] != "lamp" {
		t.Errorf("expected pronoun restored, got %v", refs)
	}
	if fresh.PlayerLocation() != "hall" {
		t.Errorf("expected player in hall, got %q", fresh.PlayerLocation())
	}
}

func TestLoad_RejectsGarbage(t *testing.T) {
	if _, err := Load([]byte("not json")); err == nil {
		t.Error("expected error for malformed save")
	}
}

func TestLoad_EmptyObjectGetsDefaults(t *testing.T) {
	sd, err := Load([]byte("{}"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if sd.Entities == nil || sd.Pronouns == nil {
		t.Error("expected non-nil maps for empty save")
	}
}
