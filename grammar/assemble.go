// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2025 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package grammar

import (
	"strings"
	"unicode"

	"github.com/czcorpus/satzgen/lexicon"
)

// BuildMainClause renders a main clause in verb-second word order:
// subject, conjugated verb, then reflexive pronoun, objects,
// prepositional phrases, time expressions and - for separable verbs -
// the detached prefix in clause-final position. All argument strings
// arrive pre-formatted from the catalog; no case marking happens here.
func BuildMainClause(
	person Person,
	verb *lexicon.Verb,
	conjugated string,
	objects []string,
	prepPhrases []string,
	timeExprs []string,
) string {
	parts := make([]string, 0, 3+len(objects)+len(prepPhrases)+len(timeExprs))
	parts = append(parts, capitalizeSubject(person.Surface()), conjugated)
	if verb.Reflexive {
		parts = append(parts, person.ReflexivePronoun())
	}
	parts = append(parts, objects...)
	parts = append(parts, prepPhrases...)
	parts = append(parts, timeExprs...)
	if verb.Separable && verb.Prefix != "" {
		parts = append(parts, verb.Prefix)
	}
	return strings.Join(parts, " ")
}

// capitalizeSubject upper-cases the first letter of subjects spelled
// all-lowercase by convention; "Sie" passes through unchanged.
func capitalizeSubject(subject string) string {
	if subject == "" || subject != strings.ToLower(subject) {
		return subject
	}
	runes := []rune(subject)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
