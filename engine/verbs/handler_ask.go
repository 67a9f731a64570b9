package verbs

import (
	"strings"

	"github.com/mseward/wick/engine/dispatch"
	"github.com/mseward/wick/types"
)

// Ask queries a character about a topic. "ask wizard" without a topic
// installs a pending topic question; the next input — whatever it is —
// becomes the topic and the command is completed and re-dispatched.
type Ask struct{}

func (h *Ask) Verb() string               { return "ask" }
func (h *Ask) Synonyms() []string         { return []string{"question", "quiz"} }
func (h *Ask) Syntax() []types.SyntaxRule { return objectWith("about") }
func (h *Ask) RequiresLight() bool        { return false }
func (h *Ask) MultiObject() bool          { return false }

func (h *Ask) Validate(ctx *dispatch.Context) error {
	if r := ctx.RequireResolved(); r != nil {
		return r
	}
	if !ctx.World.Flag(ctx.Object.ID, types.FlagAnimate) {
		return dispatch.Failf("Talking to %s won't get you far.", ctx.Name())
	}
	return nil
}

func (h *Ask) Process(ctx *dispatch.Context) dispatch.Result {
	w := ctx.World
	id := ctx.Object.ID

	if ctx.Command.Indirect == nil {
		prompt := "What do you want to ask " + ctx.Name() + " about?"
		ctx.Convo.AskTopic(prompt, ctx.Command)
		return dispatch.Result{Message: prompt}
	}

	topic := strings.ToLower(ctx.Command.Indirect.Name)
	if reply, ok := lookupTopic(w.Topics(id), topic); ok {
		return dispatch.Result{Message: reply, Changes: touch(ctx, id)}
	}
	return dispatch.Result{
		Message: capitalize(ctx.Name()) + " has nothing to say about that.",
	}
}

// lookupTopic matches the cleaned topic phrase against the topic keys,
// whole phrase first, then any single word of the phrase.
func lookupTopic(topics map[string]string, phrase string) (string, bool) {
	if topics == nil {
		return "", false
	}
	if reply, ok := topics[phrase]; ok {
		return reply, true
	}
	for _, word := range strings.Fields(phrase) {
		if reply, ok := topics[word]; ok {
			return reply, true
		}
	}
	return "", false
}
