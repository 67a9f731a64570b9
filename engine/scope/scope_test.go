package scope

import (
	"testing"

	"github.com/mseward/wick/engine/world"
	"github.com/mseward/wick/types"
)

// testWorld builds a lit hall and a dark cellar. The hall holds a
// closed glass case with a gem inside, a closed crate with a coin
// inside, and a lantern; the player carries a sack.
func testWorld() *world.World {
	w := world.New(types.GameDef{Title: "Test", Start: "hall"})

	w.Add(&world.Entity{ID: "hall", Kind: types.KindLocation, Props: map[string]any{
		types.FlagLight: true,
	}})
	w.Add(&world.Entity{ID: "cellar", Kind: types.KindLocation, Props: map[string]any{}})

	w.Add(&world.Entity{ID: "case", Kind: types.KindItem, Parent: types.InLocation("hall"), Props: map[string]any{
		types.FlagContainer:   true,
		types.FlagTransparent: true,
	}})
	w.Add(&world.Entity{ID: "gem", Kind: types.KindItem, Parent: types.InItem("case"), Props: map[string]any{}})

	w.Add(&world.Entity{ID: "crate", Kind: types.KindItem, Parent: types.InLocation("hall"), Props: map[string]any{
		types.FlagContainer: true,
	}})
	w.Add(&world.Entity{ID: "coin", Kind: types.KindItem, Parent: types.InItem("crate"), Props: map[string]any{}})

	w.Add(&world.Entity{ID: "lantern", Kind: types.KindItem, Parent: types.InLocation("hall"), Props: map[string]any{
		types.FlagLightSource: true,
	}})
	w.Add(&world.Entity{ID: "sack", Kind: types.KindItem, Parent: types.HeldByPlayer, Props: map[string]any{}})

	return w
}

func TestVisible_LooseItem(t *testing.T) {
	w := testWorld()
	if !Visible(w, "crate", "hall") {
		t.Error("expected crate visible in hall")
	}
	if Visible(w, "crate", "cellar") {
		t.Error("expected crate not visible from cellar")
	}
}

func TestVisible_ClosedOpaqueContainerHidesContents(t *testing.T) {
	w := testWorld()
	if Visible(w, "coin", "hall") {
		t.Error("expected coin hidden inside closed crate")
	}
	w.Get("crate").Props[types.FlagOpen] = true
	if !Visible(w, "coin", "hall") {
		t.Error("expected coin visible once crate is open")
	}
}

func TestVisible_TransparentContainerShowsContents(t *testing.T) {
	w := testWorld()
	if !Visible(w, "gem", "hall") {
		t.Error("expected gem visible through glass case")
	}
}

func TestReachable_TransparentContainerBlocksTouch(t *testing.T) {
	w := testWorld()
	if Reachable(w, "gem", "hall") {
		t.Error("expected gem unreachable inside closed case")
	}
	w.Get("case").Props[types.FlagOpen] = true
	if !Reachable(w, "gem", "hall") {
		t.Error("expected gem reachable once case is open")
	}
}

func TestVisible_DarknessHidesEverything(t *testing.T) {
	w := testWorld()
	w.Add(&world.Entity{ID: "rock", Kind: types.KindItem, Parent: types.InLocation("cellar"), Props: map[string]any{}})
	if Visible(w, "rock", "cellar") {
		t.Error("expected nothing visible in the dark")
	}
}

func TestIsLit_InherentLight(t *testing.T) {
	w := testWorld()
	if !IsLit(w, "hall") {
		t.Error("expected hall lit")
	}
	if IsLit(w, "cellar") {
		t.Error("expected cellar dark")
	}
}

func TestIsLit_BurningSourceInLocation(t *testing.T) {
	w := testWorld()
	w.Get("lantern").Parent = types.InLocation("cellar")
	if IsLit(w, "cellar") {
		t.Error("expected unlit lantern to give no light")
	}
	w.Get("lantern").Props[types.FlagLit] = true
	if !IsLit(w, "cellar") {
		t.Error("expected burning lantern to light the cellar")
	}
}

func TestIsLit_CarriedSourceFollowsPlayer(t *testing.T) {
	w := testWorld()
	w.Get("lantern").Parent = types.HeldByPlayer
	w.Get("lantern").Props[types.FlagLit] = true
	w.Player().Parent = types.InLocation("cellar")
	if !IsLit(w, "cellar") {
		t.Error("expected carried burning lantern to light the cellar")
	}
}

func TestIsLit_SourceInClosedContainerGivesNoLight(t *testing.T) {
	w := testWorld()
	w.Get("lantern").Parent = types.InItem("crate")
	w.Get("lantern").Props[types.FlagLit] = true
	w.Get("hall").Props[types.FlagLight] = false
	if IsLit(w, "hall") {
		t.Error("expected light inside closed opaque crate to be contained")
	}
	w.Get("crate").Props[types.FlagOpen] = true
	if !IsLit(w, "hall") {
		t.Error("expected light from open crate")
	}
}

func TestInScope_IncludesCarriedInDark(t *testing.T) {
	w := testWorld()
	w.Player().Parent = types.InLocation("cellar")
	ids := InScope(w)

	want := map[types.EntityID]bool{"sack": false, "cellar": false, "player": false}
	for _, id := range ids {
		if _, ok := want[id]; ok {
			want[id] = true
		} else {
			t.Errorf("unexpected entity in dark scope: %q", id)
		}
	}
	for id, seen := range want {
		if !seen {
			t.Errorf("expected %q in scope", id)
		}
	}
}

func TestInScope_Sorted(t *testing.T) {
	w := testWorld()
	ids := InScope(w)
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("expected sorted scope, got %v", ids)
		}
	}
}

func TestReachableItems_ExcludesClosedContents(t *testing.T) {
	w := testWorld()
	ids := ReachableItems(w)
	for _, id := range ids {
		if id == "coin" || id == "gem" {
			t.Errorf("expected %q excluded from reachable set", id)
		}
	}

	found := false
	for _, id := range ids {
		if id == "sack" {
			found = true
		}
	}
	if !found {
		t.Error("expected carried sack in reachable set")
	}
}
