// Package engine wires the parser, scope, store, conversation state,
// and action dispatch into a single Step() per player turn. One Engine
// instance owns all mutable state; turns run strictly sequentially.
package engine

import (
	"fmt"
	"strings"

	"github.com/mseward/wick/engine/combat"
	"github.com/mseward/wick/engine/convo"
	"github.com/mseward/wick/engine/dispatch"
	"github.com/mseward/wick/engine/parser"
	"github.com/mseward/wick/engine/store"
	"github.com/mseward/wick/engine/verbs"
	"github.com/mseward/wick/engine/world"
	"github.com/mseward/wick/types"
)

// Engine holds one game in play.
type Engine struct {
	store      *store.Store
	convo      *convo.Manager
	melee      *combat.Melee
	dispatcher *dispatch.Dispatcher
	parser     *parser.Parser
}

// New creates an engine over a built world with the stock verb
// catalog. The combat seed is fixed so transcripts replay; use
// NewWithSeed to vary it.
func New(w *world.World) *Engine {
	return NewWithSeed(w, 1)
}

// NewWithSeed creates an engine with a specific combat RNG seed.
func NewWithSeed(w *world.World, seed int64) *Engine {
	d := dispatch.New()
	d.MustRegister(verbs.All()...)
	return &Engine{
		store:      store.New(w),
		convo:      convo.New(),
		melee:      combat.NewMelee(seed),
		dispatcher: d,
		parser:     parser.New(d.Verbs()),
	}
}

// Store exposes the state store (history inspection, tests, saves).
func (e *Engine) Store() *store.Store { return e.store }

// World returns the current snapshot.
func (e *Engine) World() *world.World { return e.store.World() }

// Convo exposes the conversation manager.
func (e *Engine) Convo() *convo.Manager { return e.convo }

// Combat exposes the melee resolver (save/restore needs its RNG).
func (e *Engine) Combat() *combat.Melee { return e.melee }

// RestoreCombat re-creates the combat RNG at a saved position.
func (e *Engine) RestoreCombat(seed, position int64) {
	e.melee = combat.RestoreMelee(seed, position)
}

// Step processes one player command and returns the result. The
// pending question, if any, sees the input before the parser does.
func (e *Engine) Step(input string) (result types.Result) {
	mark := e.store.Len()

	defer func() {
		result.Changes = append(result.Changes, e.store.Since(mark)...)
		e.store.World().Turn++
	}()

	if strings.TrimSpace(input) == "" {
		result.Output = append(result.Output, "What do you want to do?")
		return result
	}

	env := &dispatch.Env{Store: e.store, Convo: e.convo, Combat: e.melee}

	if res := e.convo.Offer(input); res.Outcome != convo.Pass {
		switch res.Outcome {
		case convo.Reply:
			result.Output = append(result.Output, res.Message)
		case convo.Redispatch:
			result.Output = append(result.Output, e.dispatcher.Execute(*res.Command, env)...)
		}
		return result
	}

	cmd, dis, err := e.parser.Parse(input, e.store.World())
	if err != nil {
		result.Output = append(result.Output, err.Error())
		return result
	}
	if dis != nil {
		result.Output = append(result.Output, e.askWhich(dis))
		return result
	}

	result.Output = append(result.Output, e.dispatcher.Execute(*cmd, env)...)
	return result
}

// askWhich turns a disambiguation request into a pending yes/no
// question proposing the first candidate. "yes" dispatches the
// clarified command; "no" leaves the player to try again.
func (e *Engine) askWhich(dis *parser.Disambiguation) string {
	candidate := dis.Candidates[0]
	proposed := dis.Command
	ref := types.ObjectRef{ID: candidate, Name: dis.Noun}
	if dis.Indirect {
		proposed.Indirect = &ref
	} else {
		proposed.Objects = append(proposed.Objects, ref)
	}

	prompt := fmt.Sprintf("Did you mean the %s?", e.World().Name(candidate))
	return e.convo.AskYesNo(prompt, &proposed, "What would you like to do next?")
}
