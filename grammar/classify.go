// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2025 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package grammar

import (
	"strings"

	"github.com/czcorpus/cnc-gokit/collections"
	"github.com/czcorpus/satzgen/lexicon"
)

// dativePluralNouns disambiguates "den ..." phrases: the plural dative
// article looks like the masculine accusative one, so plural heads must
// be listed here explicitly. The list only needs to cover nouns used in
// the curated argument pools.
var dativePluralNouns = []string{
	"Eltern",
	"Freunden",
	"Gästen",
	"Geschwistern",
	"Kindern",
	"Kollegen",
	"Leuten",
	"Nachbarn",
	"Schülern",
	"Studenten",
}

var accusativeArticles = []string{"den", "die", "das", "ein", "eine", "einen"}

// ClassifyPhrase assigns a grammatical case to a curated object phrase
// by inspecting its article and head noun. The heuristic is closed-world:
// it covers exactly the article patterns the catalog author uses, and a
// phrase matching none of them satisfies no case requirement. It must
// not be extended into general morphological case detection - argument
// pools are curated, not synthesized.
func ClassifyPhrase(phrase string) (lexicon.Case, bool) {
	words := strings.Fields(phrase)
	if len(words) == 0 {
		return "", false
	}
	article := words[0]
	head := words[len(words)-1]
	if article == "dem" {
		return lexicon.CaseDativ, true
	}
	if article == "den" && collections.SliceContains(dativePluralNouns, head) {
		return lexicon.CaseDativ, true
	}
	if collections.SliceContains(accusativeArticles, article) {
		return lexicon.CaseAkkusativ, true
	}
	return "", false
}

// FilterByCase returns the phrases classified as the given case,
// preserving their order.
func FilterByCase(phrases []string, c lexicon.Case) []string {
	var ans []string
	for _, p := range phrases {
		if pc, ok := ClassifyPhrase(p); ok && pc == c {
			ans = append(ans, p)
		}
	}
	return ans
}
