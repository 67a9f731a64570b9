// Package types defines the shared data structures for the Wick engine.
// This package contains only type definitions — no logic, no methods
// beyond trivial accessors.
package types

// EntityID is the stable symbolic identifier of a world entity.
type EntityID string

// GlobalID is the pseudo-entity targeted by engine-level bookkeeping
// changes such as pronoun table updates.
const GlobalID EntityID = ".global"

// Kind classifies an entity.
type Kind string

const (
	KindItem     Kind = "item"
	KindLocation Kind = "location"
	KindPlayer   Kind = "player"
)

// ParentKind says what sort of thing an entity is contained by.
type ParentKind int

const (
	ParentNowhere ParentKind = iota
	ParentLocation
	ParentItem
	ParentPlayer
)

// Parent is an entity's owning reference. The containment graph is a
// forest: every item is in exactly one location, item, the player's
// hands, or nowhere.
type Parent struct {
	Kind ParentKind
	ID   EntityID // empty for ParentNowhere and ParentPlayer
}

// Nowhere is the parent of entities removed from play.
var Nowhere = Parent{Kind: ParentNowhere}

// HeldByPlayer marks an entity carried by the player.
var HeldByPlayer = Parent{Kind: ParentPlayer}

// InLocation returns a parent reference placing an entity in a location.
func InLocation(id EntityID) Parent { return Parent{Kind: ParentLocation, ID: id} }

// InItem returns a parent reference placing an entity inside (or on) an item.
func InItem(id EntityID) Parent { return Parent{Kind: ParentItem, ID: id} }

// StateChange is one atomic attribute mutation. It is the sole unit of
// world mutation: every observable effect of a turn is an ordered list
// of these records.
//
// Old is an optional precondition. A nil Old means "unchecked". When Old
// is supplied and does not match the attribute's current value at apply
// time, the store records the mismatch but still applies the change —
// the precondition is a test/debug contract, not a runtime guard.
type StateChange struct {
	Entity    EntityID
	Attribute string
	Old       any
	New       any
}

// ObjectRef is a noun phrase bound to a command slot. ID is empty when
// the phrase matched nothing in scope; the surface text is kept so the
// handler can report the failure.
type ObjectRef struct {
	ID   EntityID
	Name string
}

// Resolved reports whether the reference matched an entity.
func (r ObjectRef) Resolved() bool { return r.ID != "" }

// Command is the structured form of one player utterance.
type Command struct {
	Verb     string // canonical verb ID
	Objects  []ObjectRef
	Indirect *ObjectRef
	Prep     string
	All      bool // Objects came from ALL expansion, not an explicit list
	Raw      string
}

// SyntaxRule is one ordered pattern a verb accepts. The zero value is
// the bare-verb pattern (WAIT, BRIEF). A rule with DirectObject set and
// a Prep plus IndirectObject matches e.g. "unlock door with key".
type SyntaxRule struct {
	DirectObject   bool
	Prep           string // preposition introducing the indirect object
	IndirectObject bool
}

// Result is the output of a single engine step.
type Result struct {
	Output  []string
	Changes []StateChange
}

// GameDef holds game metadata from the world definition.
type GameDef struct {
	Title   string
	Author  string
	Version string
	Start   EntityID
	Intro   string
}

// Common attribute keys. Attributes are stored as an open map so world
// definitions can carry game-specific keys; these are the ones the
// engine itself reads and writes.
const (
	AttrName        = "name"
	AttrDescription = "description"
	AttrText        = "text" // readable text (READ verb)
	AttrSynonyms    = "synonyms"
	AttrAdjectives  = "adjectives"
	AttrParent      = "parent"
	AttrExits       = "exits" // locations: direction → location ID
	AttrTopics      = "topics"
	AttrKey         = "key" // lock key relation

	FlagOpen        = "open"
	FlagOpenable    = "openable"
	FlagLocked      = "locked"
	FlagLit         = "lit"         // a light source currently burning
	FlagLightSource = "lightsource" // can be lit/extinguished
	FlagLight       = "light"       // locations: inherently lit
	FlagTouched     = "touched"
	FlagWorn        = "worn"
	FlagWearable    = "wearable"
	FlagTakeable    = "takeable"
	FlagContainer   = "container"
	FlagSurface     = "surface"
	FlagTransparent = "transparent"
	FlagAnimate     = "animate"
	FlagHostile     = "hostile"
	FlagFighting    = "fighting"
)

// PronounIt and PronounThem key the pronoun table, which lives on the
// global pseudo-entity and is updated through ordinary StateChanges.
const (
	PronounIt   = "pronoun:it"
	PronounThem = "pronoun:them"
)
