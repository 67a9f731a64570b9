// Package parser turns raw player text into structured commands
// against the verb table. Intentionally dumb: no NLP, just syntax-rule
// matching over a fixed vocabulary.
package parser

import (
	"fmt"
	"strings"

	"github.com/mseward/wick/engine/scope"
	"github.com/mseward/wick/engine/world"
	"github.com/mseward/wick/types"
)

// Disambiguation is returned when a noun phrase matched more than one
// entity in scope. The engine turns it into a clarifying question.
type Disambiguation struct {
	Command    types.Command // command built so far, ambiguous slot unfilled
	Noun       string
	Candidates []types.EntityID
	Indirect   bool // the ambiguous slot is the indirect object
}

// UnknownVerbError reports a leading word not in the verb table.
type UnknownVerbError struct {
	Word string
}

func (e *UnknownVerbError) Error() string {
	return fmt.Sprintf("I don't know the word %q.", e.Word)
}

// SyntaxError reports tokens that fit none of a verb's syntax rules.
type SyntaxError struct {
	Verb string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("I don't understand how to %s that.", e.Verb)
}

// PronounError reports a pronoun with no referent.
type PronounError struct {
	Word string
}

func (e *PronounError) Error() string {
	return fmt.Sprintf("It's not clear what %q refers to.", e.Word)
}

var directionExpansions = map[string]string{
	"n": "north", "s": "south", "e": "east", "w": "west",
	"ne": "northeast", "nw": "northwest",
	"se": "southeast", "sw": "southwest",
	"u": "up", "d": "down",
}

var directionNames = map[string]bool{
	"north": true, "south": true, "east": true, "west": true,
	"northeast": true, "northwest": true, "southeast": true, "southwest": true,
	"up": true, "down": true,
}

var articles = map[string]bool{
	"the": true, "a": true, "an": true,
}

var allWords = map[string]bool{
	"all": true, "everything": true,
}

// Parser matches input against a verb table and resolves noun phrases
// through the scope of a world snapshot.
type Parser struct {
	verbs *Verbs
}

// New creates a parser over a verb table.
func New(verbs *Verbs) *Parser {
	return &Parser{verbs: verbs}
}

// Parse converts raw input into a command. Exactly one of the three
// returns is non-zero: a command, a disambiguation request, or an
// error. Noun phrases that match nothing in scope are not errors; they
// pass through unresolved for the handler to report.
func (p *Parser) Parse(input string, w *world.World) (*types.Command, *Disambiguation, error) {
	raw := strings.TrimSpace(input)
	words := strings.Fields(strings.ToLower(raw))
	if len(words) == 0 {
		return nil, nil, &UnknownVerbError{Word: raw}
	}

	// Bare direction: "n", "southwest" → go <direction>.
	if len(words) == 1 {
		if dir, ok := directionExpansions[words[0]]; ok {
			words = []string{"go", dir}
		} else if directionNames[words[0]] {
			words = []string{"go", words[0]}
		}
	}

	// Verb lookup, two-word surface forms first ("turn on", "pick up").
	var spec *VerbSpec
	rest := words
	if len(words) >= 2 {
		if sp, ok := p.verbs.Lookup(words[0] + " " + words[1]); ok {
			spec = sp
			rest = words[2:]
		}
	}
	if spec == nil {
		sp, ok := p.verbs.Lookup(words[0])
		if !ok {
			return nil, nil, &UnknownVerbError{Word: words[0]}
		}
		spec = sp
		rest = words[1:]
	}

	rest = stripArticles(rest)

	rule, direct, indirect, ok := p.matchSyntax(spec, rest)
	if !ok {
		return nil, nil, &SyntaxError{Verb: spec.Verb}
	}

	cmd := &types.Command{
		Verb: spec.Verb,
		Prep: rule.Prep,
		Raw:  raw,
	}

	if rule.DirectObject {
		phrases := splitConjunctions(direct)
		if len(phrases) == 1 && allWords[phrases[0]] {
			cmd.All = true
		} else {
			for _, phrase := range phrases {
				refs, dis, err := p.resolvePhrase(phrase, w)
				if err != nil {
					return nil, nil, err
				}
				if dis != nil {
					dis.Command = *cmd
					return nil, dis, nil
				}
				cmd.Objects = append(cmd.Objects, refs...)
			}
		}
	}

	if rule.IndirectObject {
		refs, dis, err := p.resolvePhrase(strings.Join(indirect, " "), w)
		if err != nil {
			return nil, nil, err
		}
		if dis != nil {
			dis.Command = *cmd
			dis.Indirect = true
			return nil, dis, nil
		}
		cmd.Indirect = &refs[0]
	}

	return cmd, nil, nil
}

// matchSyntax finds the first rule whose preposition tokens align with
// the input, binding the token spans for the object slots.
func (p *Parser) matchSyntax(spec *VerbSpec, rest []string) (types.SyntaxRule, []string, []string, bool) {
	preps := p.verbs.Prepositions()
	prepAt := -1
	for i, wd := range rest {
		if preps[wd] {
			prepAt = i
			break
		}
	}

	for _, rule := range spec.Syntax {
		switch {
		case !rule.DirectObject:
			// Zero-object verbs accept no trailing tokens.
			if len(rest) == 0 {
				return rule, nil, nil, true
			}
		case rule.Prep == "":
			if len(rest) > 0 && prepAt == -1 {
				return rule, rest, nil, true
			}
		default:
			if prepAt > 0 && rest[prepAt] == rule.Prep && prepAt < len(rest)-1 {
				return rule, rest[:prepAt], rest[prepAt+1:], true
			}
		}
	}
	return types.SyntaxRule{}, nil, nil, false
}

// resolvePhrase resolves one noun phrase to object references.
// Pronouns expand through the pronoun table; anything else is matched
// against the vocabulary of entities in scope.
func (p *Parser) resolvePhrase(phrase string, w *world.World) ([]types.ObjectRef, *Disambiguation, error) {
	phrase = strings.TrimSpace(phrase)

	if key, ok := pronounKey(phrase); ok {
		refs := w.Pronouns[key]
		if len(refs) == 0 {
			return nil, nil, &PronounError{Word: phrase}
		}
		out := make([]types.ObjectRef, len(refs))
		for i, id := range refs {
			out[i] = types.ObjectRef{ID: id, Name: phrase}
		}
		return out, nil, nil
	}

	words := strings.Fields(phrase)
	var matches []types.EntityID
	for _, id := range scope.InScope(w) {
		if matchesVocabulary(w, id, words) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return []types.ObjectRef{{Name: phrase}}, nil, nil
	case 1:
		return []types.ObjectRef{{ID: matches[0], Name: phrase}}, nil, nil
	default:
		return nil, &Disambiguation{Noun: phrase, Candidates: matches}, nil
	}
}

func pronounKey(phrase string) (string, bool) {
	switch phrase {
	case "it":
		return types.PronounIt, true
	case "them":
		return types.PronounThem, true
	}
	return "", false
}

func stripArticles(words []string) []string {
	out := make([]string, 0, len(words))
	for _, wd := range words {
		if !articles[wd] {
			out = append(out, wd)
		}
	}
	return out
}

// splitConjunctions splits a direct-object span on "and" and commas
// into separate noun phrases.
func splitConjunctions(words []string) []string {
	var phrases []string
	var cur []string
	flush := func() {
		if len(cur) > 0 {
			phrases = append(phrases, strings.Join(cur, " "))
			cur = nil
		}
	}
	for _, wd := range words {
		wd = strings.Trim(wd, ",")
		if wd == "and" || wd == "" {
			flush()
			continue
		}
		cur = append(cur, wd)
	}
	flush()
	return phrases
}
