package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mseward/wick/types"
)

// VerbSpec describes one canonical verb for the parser: the syntax
// rules it accepts, in match order, and whether it takes multiple
// direct objects.
type VerbSpec struct {
	Verb   string
	Syntax []types.SyntaxRule
	Multi  bool
}

// Verbs is the verb table: canonical verb IDs plus the synonym map
// every surface form resolves through. Synonym sets are disjoint;
// Register reports collisions so startup can fail loudly instead of
// silently shadowing a verb.
type Verbs struct {
	specs    map[string]*VerbSpec
	synonyms map[string]string
}

// NewVerbs creates an empty verb table.
func NewVerbs() *Verbs {
	return &Verbs{
		specs:    map[string]*VerbSpec{},
		synonyms: map[string]string{},
	}
}

// Register installs a verb and its surface forms. The canonical verb ID
// is always registered as a surface form of itself. Multi-word forms
// ("turn on", "pick up") are allowed and matched before single words.
func (v *Verbs) Register(spec VerbSpec, synonyms ...string) error {
	if spec.Verb == "" {
		return fmt.Errorf("verb spec has empty verb")
	}
	if _, ok := v.specs[spec.Verb]; ok {
		return fmt.Errorf("verb %q registered twice", spec.Verb)
	}
	sp := spec
	v.specs[spec.Verb] = &sp

	for _, syn := range append([]string{spec.Verb}, synonyms...) {
		syn = strings.ToLower(strings.TrimSpace(syn))
		if prev, ok := v.synonyms[syn]; ok {
			if prev == spec.Verb {
				continue
			}
			return fmt.Errorf("synonym %q already bound to verb %q", syn, prev)
		}
		v.synonyms[syn] = spec.Verb
	}
	return nil
}

// Lookup resolves a surface form to its verb spec.
func (v *Verbs) Lookup(word string) (*VerbSpec, bool) {
	verb, ok := v.synonyms[word]
	if !ok {
		return nil, false
	}
	return v.specs[verb], true
}

// Spec returns the VerbSpec for a canonical verb ID.
func (v *Verbs) Spec(verb string) (*VerbSpec, bool) {
	sp, ok := v.specs[verb]
	return sp, ok
}

// SynonymsOf returns the surface forms bound to a canonical verb,
// sorted. Tests assert exact synonym sets with this.
func (v *Verbs) SynonymsOf(verb string) []string {
	var out []string
	for syn, canon := range v.synonyms {
		if canon == verb {
			out = append(out, syn)
		}
	}
	sort.Strings(out)
	return out
}

// Prepositions returns every preposition any registered rule uses.
// The tokenizer uses this set to split object slots.
func (v *Verbs) Prepositions() map[string]bool {
	out := map[string]bool{}
	for _, sp := range v.specs {
		for _, r := range sp.Syntax {
			if r.Prep != "" {
				out[r.Prep] = true
			}
		}
	}
	return out
}
