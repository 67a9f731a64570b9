package verbs

import (
	"strings"
	"testing"

	"github.com/mseward/wick/engine/combat"
	"github.com/mseward/wick/engine/convo"
	"github.com/mseward/wick/engine/dispatch"
	"github.com/mseward/wick/engine/store"
	"github.com/mseward/wick/engine/world"
	"github.com/mseward/wick/types"
)

// testWorld builds the catalog's reference scenario: a lit hall with
// a wooden chest (leaflet inside), a lantern, an old wizard, and a
// hostile rat in a dark cellar below. The player wears boots and a
// cloak.
func testWorld() *world.World {
	w := world.New(types.GameDef{Title: "Test", Start: "hall"})

	w.Add(&world.Entity{ID: "hall", Kind: types.KindLocation, Props: map[string]any{
		types.AttrName:        "Hall",
		types.AttrDescription: "A dusty hall.",
		types.FlagLight:       true,
		types.AttrExits:       map[string]string{"down": "cellar"},
	}})
	w.Add(&world.Entity{ID: "cellar", Kind: types.KindLocation, Props: map[string]any{
		types.AttrName:        "Cellar",
		types.AttrDescription: "A damp cellar.",
		types.AttrExits:       map[string]string{"up": "hall"},
	}})

	w.Add(&world.Entity{ID: "chest", Kind: types.KindItem, Parent: types.InLocation("hall"), Props: map[string]any{
		types.AttrName:      "wooden chest",
		types.AttrSynonyms:  []string{"chest"},
		types.FlagContainer: true,
		types.FlagOpenable:  true,
		types.AttrKey:       "iron_key",
	}})
	w.Add(&world.Entity{ID: "leaflet", Kind: types.KindItem, Parent: types.InItem("chest"), Props: map[string]any{
		types.AttrName:     "leaflet",
		types.FlagTakeable: true,
		types.AttrText:     "WELCOME TO THE HALL.",
	}})
	w.Add(&world.Entity{ID: "iron_key", Kind: types.KindItem, Parent: types.InLocation("hall"), Props: map[string]any{
		types.AttrName:     "iron key",
		types.AttrSynonyms: []string{"key"},
		types.FlagTakeable: true,
	}})
	w.Add(&world.Entity{ID: "lantern", Kind: types.KindItem, Parent: types.InLocation("hall"), Props: map[string]any{
		types.AttrName:        "brass lantern",
		types.FlagTakeable:    true,
		types.FlagLightSource: true,
	}})
	w.Add(&world.Entity{ID: "boots", Kind: types.KindItem, Parent: types.HeldByPlayer, Props: map[string]any{
		types.AttrName:     "boots",
		types.FlagTakeable: true,
		types.FlagWearable: true,
		types.FlagWorn:     true,
	}})
	w.Add(&world.Entity{ID: "cloak", Kind: types.KindItem, Parent: types.HeldByPlayer, Props: map[string]any{
		types.AttrName:     "cloak",
		types.FlagTakeable: true,
		types.FlagWearable: true,
		types.FlagWorn:     true,
	}})
	w.Add(&world.Entity{ID: "wizard", Kind: types.KindItem, Parent: types.InLocation("hall"), Props: map[string]any{
		types.AttrName:    "old wizard",
		types.FlagAnimate: true,
		types.AttrTopics: map[string]string{
			"treasure": "\"Gone, all of it. Spent on hats.\"",
		},
	}})
	w.Add(&world.Entity{ID: "rat", Kind: types.KindItem, Parent: types.InLocation("cellar"), Props: map[string]any{
		types.AttrName:    "grim rat",
		types.FlagAnimate: true,
		types.FlagHostile: true,
		"hp":              1,
	}})

	return w
}

type fixture struct {
	env *dispatch.Env
	d   *dispatch.Dispatcher
}

func newFixture() *fixture {
	d := dispatch.New()
	d.MustRegister(All()...)
	return &fixture{
		env: &dispatch.Env{
			Store:  store.New(testWorld()),
			Convo:  convo.New(),
			Combat: combat.NewMelee(1),
		},
		d: d,
	}
}

func (f *fixture) world() *world.World { return f.env.Store.World() }

func (f *fixture) exec(verb string, objs ...types.EntityID) []string {
	cmd := types.Command{Verb: verb}
	for _, id := range objs {
		cmd.Objects = append(cmd.Objects, types.ObjectRef{ID: id, Name: f.world().Name(id)})
	}
	return f.d.Execute(cmd, f.env)
}

func contains(out []string, substr string) bool {
	for _, line := range out {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

func TestLook_DescribesLocation(t *testing.T) {
	f := newFixture()
	out := f.exec("look")
	joined := strings.Join(out, "\n")
	if !strings.Contains(joined, "A dusty hall.") {
		t.Errorf("expected description, got %v", out)
	}
	if !strings.Contains(joined, "Exits: down.") {
		t.Errorf("expected exits line, got %v", out)
	}
	if !strings.Contains(joined, "a wooden chest") {
		t.Errorf("expected visible item listing, got %v", out)
	}
}

func TestLook_InTheDark(t *testing.T) {
	f := newFixture()
	f.world().Player().Parent = types.InLocation("cellar")
	out := f.exec("look")
	if !contains(out, "pitch dark") {
		t.Errorf("expected darkness line, got %v", out)
	}
}

func TestOpen_ChestRevealsContents(t *testing.T) {
	f := newFixture()
	out := f.exec("open", "chest")

	if len(out) != 1 || out[0] != "As the wooden chest opens, it reveals a leaflet within." {
		t.Errorf("unexpected open narration %v", out)
	}
	w := f.world()
	if !w.Flag("chest", types.FlagOpen) {
		t.Error("expected chest open")
	}
	if !w.Flag("chest", types.FlagTouched) {
		t.Error("expected chest touched")
	}

	history := f.env.Store.History()
	var open, touched bool
	for _, c := range history {
		if c.Entity != "chest" {
			continue
		}
		switch c.Attribute {
		case types.FlagOpen:
			open = c.Old == false && c.New == true
		case types.FlagTouched:
			touched = c.New == true
		}
	}
	if !open || !touched {
		t.Errorf("expected open and touched changes in history, got %v", history)
	}
}

func TestOpen_LockedChest(t *testing.T) {
	f := newFixture()
	f.world().Get("chest").Props[types.FlagLocked] = true
	out := f.exec("open", "chest")
	if !contains(out, "locked") {
		t.Errorf("expected locked refusal, got %v", out)
	}
	if f.env.Store.Len() != 0 {
		t.Error("expected no state change on refusal")
	}
}

func TestClose_ThenAlreadyClosed(t *testing.T) {
	f := newFixture()
	f.exec("open", "chest")
	out := f.exec("close", "chest")
	if !contains(out, "You close the wooden chest.") {
		t.Errorf("expected close message, got %v", out)
	}
	out = f.exec("close", "chest")
	if !contains(out, "already closed") {
		t.Errorf("expected already-closed refusal, got %v", out)
	}
}

func TestTake_FromClosedChestFails(t *testing.T) {
	f := newFixture()
	out := f.exec("take", "leaflet")
	if !contains(out, "can't reach") {
		t.Errorf("expected reach failure, got %v", out)
	}
}

func TestTake_FromOpenChest(t *testing.T) {
	f := newFixture()
	f.exec("open", "chest")
	out := f.exec("take", "leaflet")
	if !contains(out, "You take the leaflet.") {
		t.Errorf("expected take message, got %v", out)
	}
	if !f.world().Held("leaflet") {
		t.Error("expected leaflet held")
	}
}

func TestTake_Animate(t *testing.T) {
	f := newFixture()
	out := f.exec("take", "wizard")
	if !contains(out, "would hardly appreciate that") {
		t.Errorf("expected animate refusal, got %v", out)
	}
}

func TestTakeAll_SkipsFixturesAndPeople(t *testing.T) {
	f := newFixture()
	out := f.d.Execute(types.Command{Verb: "take", All: true}, f.env)
	joined := strings.Join(out, "\n")
	if !strings.Contains(joined, "You take the iron key and the brass lantern.") {
		t.Errorf("expected merged take-all message, got %v", out)
	}
	if strings.Contains(joined, "wizard") || strings.Contains(joined, "chest") {
		t.Errorf("expected wizard and chest excluded, got %v", out)
	}
}

func TestDrop_RemovesWornFlag(t *testing.T) {
	f := newFixture()
	out := f.exec("drop", "cloak")
	if !contains(out, "You drop the cloak.") {
		t.Errorf("expected drop message, got %v", out)
	}
	w := f.world()
	if w.Held("cloak") {
		t.Error("expected cloak dropped")
	}
	if w.Flag("cloak", types.FlagWorn) {
		t.Error("expected worn flag cleared on drop")
	}
}

func TestRemoveAll_MergedMessage(t *testing.T) {
	f := newFixture()
	out := f.d.Execute(types.Command{Verb: "remove", All: true}, f.env)
	if len(out) != 1 || out[0] != "You take off the boots and the cloak." {
		t.Errorf("expected merged remove-all message, got %v", out)
	}
	w := f.world()
	if w.Flag("boots", types.FlagWorn) || w.Flag("cloak", types.FlagWorn) {
		t.Error("expected both garments off")
	}
}

func TestWear_RequiresHolding(t *testing.T) {
	f := newFixture()
	f.exec("remove", "cloak")
	out := f.exec("wear", "cloak")
	if !contains(out, "You put on the cloak.") {
		t.Errorf("expected wear message, got %v", out)
	}
	out = f.exec("wear", "lantern")
	if !contains(out, "You can't wear that.") {
		t.Errorf("expected wearable refusal, got %v", out)
	}
}

func TestGo_MovesAndDescribes(t *testing.T) {
	f := newFixture()
	f.exec("light", "lantern")
	f.exec("take", "lantern")
	out := f.d.Execute(types.Command{Verb: "go", Objects: []types.ObjectRef{{Name: "down"}}}, f.env)

	if f.world().PlayerLocation() != "cellar" {
		t.Errorf("expected player in cellar, got %q", f.world().PlayerLocation())
	}
	if !contains(out, "A damp cellar.") {
		t.Errorf("expected destination description, got %v", out)
	}
}

func TestGo_BadDirection(t *testing.T) {
	f := newFixture()
	out := f.d.Execute(types.Command{Verb: "go", Objects: []types.ObjectRef{{Name: "north"}}}, f.env)
	if !contains(out, "You can't go that way.") {
		t.Errorf("expected refusal, got %v", out)
	}
	if f.world().PlayerLocation() != "hall" {
		t.Error("expected player unmoved")
	}
}

func TestDarkness_GatesSightVerbs(t *testing.T) {
	f := newFixture()
	f.world().Player().Parent = types.InLocation("cellar")
	out := f.exec("examine", "boots")
	if len(out) != 1 || out[0] != dispatch.MsgDarkness {
		t.Errorf("expected darkness gate, got %v", out)
	}
}

func TestLight_WorksInTheDark(t *testing.T) {
	f := newFixture()
	f.exec("take", "lantern")
	f.world().Player().Parent = types.InLocation("cellar")

	out := f.exec("light", "lantern")
	if !contains(out, "is now lit") {
		t.Errorf("expected light message, got %v", out)
	}

	out = f.exec("look")
	if !contains(out, "A damp cellar.") {
		t.Errorf("expected cellar visible by lantern light, got %v", out)
	}
}

func TestExtinguish_RestoresDark(t *testing.T) {
	f := newFixture()
	f.exec("light", "lantern")
	out := f.exec("extinguish", "lantern")
	if !contains(out, "is now dark") {
		t.Errorf("expected extinguish message, got %v", out)
	}
	out = f.exec("extinguish", "lantern")
	if !contains(out, "It isn't lit.") {
		t.Errorf("expected unlit refusal, got %v", out)
	}
}

func TestRead_Leaflet(t *testing.T) {
	f := newFixture()
	f.exec("open", "chest")
	out := f.exec("read", "leaflet")
	if !contains(out, "WELCOME TO THE HALL.") {
		t.Errorf("expected leaflet text, got %v", out)
	}
}

func TestRead_NothingWritten(t *testing.T) {
	f := newFixture()
	out := f.exec("read", "lantern")
	if !contains(out, "nothing written") {
		t.Errorf("expected refusal, got %v", out)
	}
}

func TestExamine_OpenContainerListsContents(t *testing.T) {
	f := newFixture()
	f.exec("open", "chest")
	out := f.exec("examine", "chest")
	if !contains(out, "The wooden chest contains a leaflet.") {
		t.Errorf("expected contents listing, got %v", out)
	}
}

func TestInventory_AnnotatesWorn(t *testing.T) {
	f := newFixture()
	out := f.exec("inventory")
	if !contains(out, "(being worn)") {
		t.Errorf("expected worn annotation, got %v", out)
	}
}

func TestInventory_Empty(t *testing.T) {
	f := newFixture()
	f.exec("drop", "boots")
	f.exec("drop", "cloak")
	out := f.exec("inventory")
	if !contains(out, "You are carrying nothing.") {
		t.Errorf("expected empty message, got %v", out)
	}
}

func TestWait_PassesTime(t *testing.T) {
	f := newFixture()
	out := f.exec("wait")
	if len(out) != 1 || out[0] != "Time passes." {
		t.Errorf("expected wait message, got %v", out)
	}
}

func TestUnlock_NeedsKeyInHand(t *testing.T) {
	f := newFixture()
	f.world().Get("chest").Props[types.FlagLocked] = true

	out := f.exec("unlock", "chest")
	if !contains(out, "You have nothing to do that with.") {
		t.Errorf("expected missing-key refusal, got %v", out)
	}

	f.exec("take", "iron_key")
	out = f.exec("unlock", "chest")
	if !contains(out, "The key turns with a satisfying click.") {
		t.Errorf("expected unlock message, got %v", out)
	}
	if f.world().Flag("chest", types.FlagLocked) {
		t.Error("expected chest unlocked")
	}
}

func TestUnlock_WrongExplicitKey(t *testing.T) {
	f := newFixture()
	f.world().Get("chest").Props[types.FlagLocked] = true
	f.exec("take", "lantern")

	cmd := types.Command{
		Verb:     "unlock",
		Prep:     "with",
		Objects:  []types.ObjectRef{{ID: "chest", Name: "chest"}},
		Indirect: &types.ObjectRef{ID: "lantern", Name: "lantern"},
	}
	out := f.d.Execute(cmd, f.env)
	if !contains(out, "That doesn't fit the lock.") {
		t.Errorf("expected wrong-key refusal, got %v", out)
	}
}

func TestLock_RequiresClosed(t *testing.T) {
	f := newFixture()
	f.exec("take", "iron_key")
	f.exec("open", "chest")
	out := f.exec("lock", "chest")
	if !contains(out, "You'll have to close it first.") {
		t.Errorf("expected close-first refusal, got %v", out)
	}
	f.exec("close", "chest")
	out = f.exec("lock", "chest")
	if !contains(out, "You lock the wooden chest.") {
		t.Errorf("expected lock message, got %v", out)
	}
}

func TestAsk_WithoutTopicAsksForOne(t *testing.T) {
	f := newFixture()
	out := f.exec("ask", "wizard")
	if len(out) != 1 || out[0] != "What do you want to ask the old wizard about?" {
		t.Errorf("expected topic prompt, got %v", out)
	}
	if f.env.Convo.Pending() != convo.Topic {
		t.Error("expected pending topic question")
	}
}

func TestAsk_KnownTopic(t *testing.T) {
	f := newFixture()
	cmd := types.Command{
		Verb:     "ask",
		Prep:     "about",
		Objects:  []types.ObjectRef{{ID: "wizard", Name: "wizard"}},
		Indirect: &types.ObjectRef{Name: "treasure"},
	}
	out := f.d.Execute(cmd, f.env)
	if !contains(out, "Spent on hats.") {
		t.Errorf("expected topic reply, got %v", out)
	}
}

func TestAsk_UnknownTopic(t *testing.T) {
	f := newFixture()
	cmd := types.Command{
		Verb:     "ask",
		Objects:  []types.ObjectRef{{ID: "wizard", Name: "wizard"}},
		Indirect: &types.ObjectRef{Name: "weather"},
	}
	out := f.d.Execute(cmd, f.env)
	if !contains(out, "has nothing to say about that") {
		t.Errorf("expected unknown-topic reply, got %v", out)
	}
}

func TestAsk_Inanimate(t *testing.T) {
	f := newFixture()
	out := f.exec("ask", "chest")
	if !contains(out, "won't get you far") {
		t.Errorf("expected inanimate refusal, got %v", out)
	}
}

func TestAttack_HostileDies(t *testing.T) {
	f := newFixture()
	f.exec("light", "lantern")
	f.exec("take", "lantern")
	f.world().Player().Parent = types.InLocation("cellar")

	out := f.exec("attack", "rat")
	if !contains(out, "The grim rat collapses and is no more.") {
		t.Errorf("expected kill narration, got %v", out)
	}
	if f.world().ParentOf("rat") != types.Nowhere {
		t.Error("expected rat removed from play")
	}
}

func TestAttack_Friendly(t *testing.T) {
	f := newFixture()
	out := f.exec("attack", "wizard")
	if !contains(out, "has done nothing to deserve that") {
		t.Errorf("expected friendly refusal, got %v", out)
	}
}

func TestPut_InOpenContainer(t *testing.T) {
	f := newFixture()
	f.exec("take", "iron_key")
	f.exec("open", "chest")

	cmd := types.Command{
		Verb:     "put",
		Prep:     "in",
		Objects:  []types.ObjectRef{{ID: "iron_key", Name: "key"}},
		Indirect: &types.ObjectRef{ID: "chest", Name: "chest"},
	}
	out := f.d.Execute(cmd, f.env)
	if !contains(out, "You put the iron key in the wooden chest.") {
		t.Errorf("expected put message, got %v", out)
	}
	if f.world().ParentOf("iron_key") != types.InItem("chest") {
		t.Error("expected key inside chest")
	}
}

func TestPut_ClosedContainerRefuses(t *testing.T) {
	f := newFixture()
	f.exec("take", "iron_key")
	cmd := types.Command{
		Verb:     "put",
		Prep:     "in",
		Objects:  []types.ObjectRef{{ID: "iron_key", Name: "key"}},
		Indirect: &types.ObjectRef{ID: "chest", Name: "chest"},
	}
	out := f.d.Execute(cmd, f.env)
	if !contains(out, "The wooden chest is closed.") {
		t.Errorf("expected closed refusal, got %v", out)
	}
}

func TestPut_IntoOwnContents_Refuses(t *testing.T) {
	f := newFixture()
	w := f.world()
	w.Add(&world.Entity{ID: "sack", Kind: types.KindItem, Parent: types.HeldByPlayer, Props: map[string]any{
		types.AttrName:      "sack",
		types.FlagTakeable:  true,
		types.FlagContainer: true,
		types.FlagOpen:      true,
	}})
	w.Add(&world.Entity{ID: "box", Kind: types.KindItem, Parent: types.InItem("sack"), Props: map[string]any{
		types.AttrName:      "box",
		types.FlagTakeable:  true,
		types.FlagContainer: true,
		types.FlagOpen:      true,
	}})

	cmd := types.Command{
		Verb:     "put",
		Prep:     "in",
		Objects:  []types.ObjectRef{{ID: "sack", Name: "sack"}},
		Indirect: &types.ObjectRef{ID: "box", Name: "box"},
	}
	out := f.d.Execute(cmd, f.env)
	if !contains(out, "It can't contain itself.") {
		t.Errorf("expected containment refusal, got %v", out)
	}
	if f.world().ParentOf("sack") != types.HeldByPlayer {
		t.Errorf("expected sack still held, got %v", f.world().ParentOf("sack"))
	}
	if f.world().ParentOf("box") != types.InItem("sack") {
		t.Errorf("expected box still in sack, got %v", f.world().ParentOf("box"))
	}
}

func TestValidate_RepeatableWithoutMutation(t *testing.T) {
	f := newFixture()
	w := f.world()

	cases := []struct {
		h   dispatch.Handler
		obj types.EntityID
	}{
		{&Open{}, "chest"},
		{&Take{}, "iron_key"},
		{&Take{}, "boots"},
	}
	for _, tc := range cases {
		ctx := &dispatch.Context{
			World:   w,
			Convo:   f.env.Convo,
			Command: types.Command{Verb: tc.h.Verb()},
			Object:  types.ObjectRef{ID: tc.obj, Name: w.Name(tc.obj)},
		}
		first := tc.h.Validate(ctx)
		second := tc.h.Validate(ctx)
		if (first == nil) != (second == nil) {
			t.Errorf("%s %s: validate outcomes differ, %v then %v", tc.h.Verb(), tc.obj, first, second)
			continue
		}
		if first != nil && first.Error() != second.Error() {
			t.Errorf("%s %s: validate messages differ, %q then %q", tc.h.Verb(), tc.obj, first, second)
		}
	}
	if f.env.Store.Len() != 0 {
		t.Errorf("expected untouched history after validate, got %d changes", f.env.Store.Len())
	}
}

func TestVerbTable_SynonymsExact(t *testing.T) {
	f := newFixture()
	verbs := f.d.Verbs()

	got := verbs.SynonymsOf("take")
	want := []string{"get", "grab", "pick up", "take"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected %v, got %v", want, got)
			break
		}
	}
}

func TestJoinAnd(t *testing.T) {
	if got := joinAnd([]string{"a cloak"}); got != "a cloak" {
		t.Errorf("got %q", got)
	}
	if got := joinAnd([]string{"a cloak", "a hat"}); got != "a cloak and a hat" {
		t.Errorf("got %q", got)
	}
	if got := joinAnd([]string{"a", "b", "c"}); got != "a, b and c" {
		t.Errorf("got %q", got)
	}
}

func TestIndefinite(t *testing.T) {
	if got := indefinite("old wizard"); got != "an old wizard" {
		t.Errorf("got %q", got)
	}
	if got := indefinite("leaflet"); got != "a leaflet" {
		t.Errorf("got %q", got)
	}
}
