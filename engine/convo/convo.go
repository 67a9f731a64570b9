// Package convo tracks the single pending question a turn can leave
// open: a yes/no confirmation or a missing topic. It is a one-slot
// state machine, not a stack — a later question silently supersedes an
// earlier unanswered one.
package convo

import (
	"strings"

	"github.com/mseward/wick/types"
)

// Kind is the pending-question state.
type Kind int

const (
	None Kind = iota
	YesNo
	Topic
)

var yesWords = map[string]bool{
	"yes": true, "y": true, "sure": true, "ok": true,
	"yep": true, "yeah": true, "aye": true,
}

var noWords = map[string]bool{
	"no": true, "n": true, "nope": true, "nah": true,
	"never": true, "negative": true,
}

// question is the single pending slot.
type question struct {
	kind       Kind
	prompt     string
	yesCommand *types.Command
	noMessage  string
	source     types.Command
}

// Manager owns the pending-question slot for one engine instance.
type Manager struct {
	pending *question
}

// New creates a manager with no pending question.
func New() *Manager {
	return &Manager{}
}

// Pending returns the kind of the outstanding question, or None.
func (m *Manager) Pending() Kind {
	if m.pending == nil {
		return None
	}
	return m.pending.kind
}

// Clear drops any pending question.
func (m *Manager) Clear() {
	m.pending = nil
}

// AskYesNo installs a yes/no question and returns the prompt to
// render. On "yes" the command (if any) is re-dispatched; on "no" the
// noMessage is rendered.
func (m *Manager) AskYesNo(prompt string, yesCommand *types.Command, noMessage string) string {
	m.pending = &question{
		kind:       YesNo,
		prompt:     prompt,
		yesCommand: yesCommand,
		noMessage:  noMessage,
	}
	return prompt
}

// AskTopic installs a topic-fill question for a command missing its
// topic slot and returns the prompt to render. The next turn's entire
// input becomes the topic.
func (m *Manager) AskTopic(prompt string, source types.Command) string {
	m.pending = &question{
		kind:   Topic,
		prompt: prompt,
		source: source,
	}
	return prompt
}

// Outcome says what the engine should do with an offered input.
type Outcome int

const (
	// Pass: no pending question consumed the input; run the normal
	// parser path. Any pending question has been cleared.
	Pass Outcome = iota
	// Redispatch: run Resolution.Command through dispatch.
	Redispatch
	// Reply: render Resolution.Message and end the turn.
	Reply
)

// Resolution is the result of offering input to the manager.
type Resolution struct {
	Outcome Outcome
	Command *types.Command
	Message string
}

// Offer gives raw player input to the pending question before the
// parser sees it. Whatever happens, the slot is cleared: questions are
// never re-asked.
func (m *Manager) Offer(input string) Resolution {
	q := m.pending
	if q == nil {
		return Resolution{Outcome: Pass}
	}
	m.pending = nil

	switch q.kind {
	case YesNo:
		word := strings.ToLower(strings.TrimSpace(input))
		switch {
		case yesWords[word]:
			if q.yesCommand != nil {
				return Resolution{Outcome: Redispatch, Command: q.yesCommand}
			}
			return Resolution{Outcome: Reply, Message: "Very well."}
		case noWords[word]:
			return Resolution{Outcome: Reply, Message: q.noMessage}
		default:
			// Superseding command: silent cancellation.
			return Resolution{Outcome: Pass}
		}

	case Topic:
		topic := cleanTopic(input)
		if topic == "" {
			return Resolution{Outcome: Pass}
		}
		cmd := q.source
		cmd.Indirect = &types.ObjectRef{Name: topic}
		return Resolution{Outcome: Redispatch, Command: &cmd}
	}

	return Resolution{Outcome: Pass}
}

// cleanTopic normalizes a free-text topic answer: lowercased, leading
// "about" and articles dropped.
func cleanTopic(input string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(input)))
	if len(words) > 0 && words[0] == "about" {
		words = words[1:]
	}
	var out []string
	for _, wd := range words {
		if wd == "the" || wd == "a" || wd == "an" {
			continue
		}
		out = append(out, wd)
	}
	return strings.Join(out, " ")
}
