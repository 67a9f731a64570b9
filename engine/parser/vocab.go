package parser

import (
	"strings"

	"github.com/mseward/wick/engine/world"
	"github.com/mseward/wick/types"
)

// matchesVocabulary reports whether a noun phrase refers to the entity.
// The final word must be a noun for the entity (last word of its name,
// a synonym, or its ID); every preceding word must be a modifier (an
// adjective or an earlier word of its name). "brass lantern", "lantern"
// and "brass" + synonym "lamp" all match a brass lantern.
func matchesVocabulary(w *world.World, id types.EntityID, words []string) bool {
	if len(words) == 0 {
		return false
	}
	noun := words[len(words)-1]
	if !isNoun(w, id, noun) {
		return false
	}
	for _, wd := range words[:len(words)-1] {
		if !isModifier(w, id, wd) {
			return false
		}
	}
	return true
}

func isNoun(w *world.World, id types.EntityID, word string) bool {
	name := strings.ToLower(w.Name(id))
	nameWords := strings.Fields(name)
	if len(nameWords) > 0 && nameWords[len(nameWords)-1] == word {
		return true
	}
	for _, syn := range w.StrSet(id, types.AttrSynonyms) {
		if strings.ToLower(syn) == word {
			return true
		}
	}
	return strings.ToLower(string(id)) == word
}

func isModifier(w *world.World, id types.EntityID, word string) bool {
	for _, adj := range w.StrSet(id, types.AttrAdjectives) {
		if strings.ToLower(adj) == word {
			return true
		}
	}
	nameWords := strings.Fields(strings.ToLower(w.Name(id)))
	for i := 0; i+1 < len(nameWords); i++ {
		if nameWords[i] == word {
			return true
		}
	}
	return false
}
