// Package dispatch routes commands to verb handlers and runs the
// two-phase validate/process protocol. Validate is read-only and may
// fail with a player-facing response; process computes narration and a
// StateChange batch which dispatch applies through the store. A failed
// validate leaves the change history untouched.
package dispatch

import (
	"fmt"
	"strings"

	"github.com/mseward/wick/engine/convo"
	"github.com/mseward/wick/engine/parser"
	"github.com/mseward/wick/engine/scope"
	"github.com/mseward/wick/engine/store"
	"github.com/mseward/wick/engine/world"
	"github.com/mseward/wick/types"
)

// Messages shared across all handlers, so failure modes read the same
// everywhere.
const (
	MsgDarkness  = "It is pitch dark, and you can't see a thing."
	MsgNotHere   = "Any such thing lurks beyond your reach."
	MsgNoReach   = "You can't reach %s from here."
	MsgNoMulti   = "You can't use multiple objects with that verb."
	MsgNothingTo = "There is nothing to %s here."
)

// Response is a precondition failure thrown from Validate. It is
// rendered verbatim to the player; the turn ends with no mutation.
type Response struct {
	Text string
}

func (r *Response) Error() string { return r.Text }

// Fail builds a Response.
func Fail(text string) *Response { return &Response{Text: text} }

// Failf builds a formatted Response.
func Failf(format string, args ...any) *Response {
	return &Response{Text: fmt.Sprintf(format, args...)}
}

// Result is what process returns: narration plus the change batch.
// Process itself never mutates the store.
type Result struct {
	Message string
	Changes []types.StateChange
}

// Context carries everything a handler may consult for one object of
// one command.
type Context struct {
	World   *world.World
	Convo   *convo.Manager
	Combat  Combat
	Command types.Command
	Object  types.ObjectRef // current direct object; zero for bare verbs
}

// Combat is the external melee collaborator, opaque to dispatch.
type Combat interface {
	Resolve(w *world.World, attacker, defender types.EntityID) (string, []types.StateChange)
}

// RequireResolved fails when the current object matched nothing in
// scope.
func (c *Context) RequireResolved() *Response {
	if !c.Object.Resolved() {
		return Fail(MsgNotHere)
	}
	return nil
}

// RequireReachable fails when the object is unresolved or cannot be
// manipulated from the player's position.
func (c *Context) RequireReachable() *Response {
	if r := c.RequireResolved(); r != nil {
		return r
	}
	if c.Object.ID == c.World.PlayerID || c.World.Held(c.Object.ID) {
		return nil
	}
	if !scope.Reachable(c.World, c.Object.ID, c.World.PlayerLocation()) {
		return Failf(MsgNoReach, c.Name())
	}
	return nil
}

// Name returns the display name of the current object, article
// included: "the brass lantern". For unresolved objects it falls back
// to the typed phrase.
func (c *Context) Name() string {
	if !c.Object.Resolved() {
		return "the " + c.Object.Name
	}
	return "the " + c.World.Name(c.Object.ID)
}

// Handler is the per-verb protocol. Exactly one handler is registered
// per canonical verb; startup asserts synonym disjointness.
type Handler interface {
	Verb() string
	Synonyms() []string
	Syntax() []types.SyntaxRule
	RequiresLight() bool
	MultiObject() bool
	Validate(*Context) error
	Process(*Context) Result
}

// AllFilter narrows ALL expansion to the objects a verb applies to.
// Handlers that support "take all" style commands implement it.
type AllFilter interface {
	IncludeInAll(ctx *Context, id types.EntityID) bool
}

// MultiMessager merges the successes of a multi-object command into one
// shared message ("You take off the boots and the cloak.").
type MultiMessager interface {
	MultiMessage(names []string) string
}

// Dispatcher holds the handler registry and its derived verb table.
type Dispatcher struct {
	handlers map[string]Handler
	verbs    *parser.Verbs
}

// New creates an empty dispatcher.
func New() *Dispatcher {
	return &Dispatcher{
		handlers: map[string]Handler{},
		verbs:    parser.NewVerbs(),
	}
}

// Register installs a handler and its verb-table entry. Errors on
// duplicate verbs or colliding synonyms so wiring bugs surface at
// startup, not at call time.
func (d *Dispatcher) Register(h Handler) error {
	verb := h.Verb()
	if _, ok := d.handlers[verb]; ok {
		return fmt.Errorf("handler for verb %q registered twice", verb)
	}
	spec := parser.VerbSpec{
		Verb:   verb,
		Syntax: h.Syntax(),
		Multi:  h.MultiObject(),
	}
	if err := d.verbs.Register(spec, h.Synonyms()...); err != nil {
		return err
	}
	d.handlers[verb] = h
	return nil
}

// MustRegister is Register for the startup path.
func (d *Dispatcher) MustRegister(hs ...Handler) {
	for _, h := range hs {
		if err := d.Register(h); err != nil {
			panic(err)
		}
	}
}

// Verbs exposes the derived verb table for the parser.
func (d *Dispatcher) Verbs() *parser.Verbs {
	return d.verbs
}

// Env is the mutable engine state a dispatch call operates on.
type Env struct {
	Store  *store.Store
	Convo  *convo.Manager
	Combat Combat
}

// Execute runs one command through the light gate, validate, process,
// and apply. It returns the narration lines for the turn.
func (d *Dispatcher) Execute(cmd types.Command, env *Env) []string {
	h, ok := d.handlers[cmd.Verb]
	if !ok {
		return []string{fmt.Sprintf("I don't know how to %s.", cmd.Verb)}
	}
	w := env.Store.World()

	// Darkness is checked once, centrally, before any validation, so
	// every light-requiring verb fails the same way.
	if h.RequiresLight() && !scope.IsLit(w, w.PlayerLocation()) {
		return []string{MsgDarkness}
	}

	objects := cmd.Objects
	if (cmd.All || len(objects) > 1) && !h.MultiObject() {
		return []string{MsgNoMulti}
	}
	if cmd.All {
		objects = d.expandAll(h, cmd, env)
		if len(objects) == 0 {
			return []string{fmt.Sprintf(MsgNothingTo, cmd.Verb)}
		}
	}

	if len(objects) == 0 {
		// Bare verb (WAIT, LOOK, INVENTORY).
		ctx := &Context{World: w, Convo: env.Convo, Combat: env.Combat, Command: cmd}
		if err := h.Validate(ctx); err != nil {
			return []string{err.Error()}
		}
		res := h.Process(ctx)
		env.Store.Apply(res.Changes)
		return lines(res.Message)
	}

	var out []string
	var okIDs []types.EntityID
	var okNames []string
	var okMsgs []string

	for _, obj := range objects {
		ctx := &Context{World: w, Convo: env.Convo, Combat: env.Combat, Command: cmd, Object: obj}
		if err := h.Validate(ctx); err != nil {
			if cmd.All {
				continue // ALL expansion skips inapplicable members silently
			}
			if len(objects) > 1 {
				out = append(out, fmt.Sprintf("%s: %s", ctx.Name(), err.Error()))
			} else {
				out = append(out, err.Error())
			}
			continue
		}
		res := h.Process(ctx)
		env.Store.Apply(res.Changes)
		okIDs = append(okIDs, obj.ID)
		okNames = append(okNames, w.Name(obj.ID))
		okMsgs = append(okMsgs, res.Message)
	}

	if len(okIDs) > 0 {
		if mm, ok := h.(MultiMessager); ok && (cmd.All || len(objects) > 1) {
			out = append(out, mm.MultiMessage(okNames))
		} else {
			for _, msg := range okMsgs {
				out = append(out, lines(msg)...)
			}
		}
		env.Store.Apply(pronounChanges(cmd, okIDs))
	}

	return out
}

// expandAll substitutes every reachable item the verb applies to.
func (d *Dispatcher) expandAll(h Handler, cmd types.Command, env *Env) []types.ObjectRef {
	filter, ok := h.(AllFilter)
	if !ok {
		return nil
	}
	w := env.Store.World()
	var out []types.ObjectRef
	for _, id := range scope.ReachableItems(w) {
		ctx := &Context{World: w, Convo: env.Convo, Combat: env.Combat, Command: cmd,
			Object: types.ObjectRef{ID: id, Name: w.Name(id)}}
		if filter.IncludeInAll(ctx, id) {
			out = append(out, ctx.Object)
		}
	}
	return out
}

// pronounChanges records what "it" and "them" now refer to. A sole
// direct object binds "it"; multiple successes bind "them". Unresolved
// objects (directions, topics) never bind a pronoun.
func pronounChanges(cmd types.Command, okIDs []types.EntityID) []types.StateChange {
	var refs []types.EntityID
	for _, id := range okIDs {
		if id != "" {
			refs = append(refs, id)
		}
	}
	if len(refs) == 1 && !cmd.All && len(cmd.Objects) == 1 {
		return []types.StateChange{
			{Entity: types.GlobalID, Attribute: types.PronounIt, New: refs},
		}
	}
	if len(refs) > 1 {
		return []types.StateChange{
			{Entity: types.GlobalID, Attribute: types.PronounThem, New: refs},
		}
	}
	return nil
}

func lines(msg string) []string {
	if msg == "" {
		return nil
	}
	return strings.Split(msg, "\n")
}
