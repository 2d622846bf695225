// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2025 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package grammar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/czcorpus/satzgen/lexicon"
)

var ErrEmptyStem = errors.New("verb has an empty stem")

// presentEndings is the regular Präsens ending table.
var presentEndings = map[Person]string{
	PersonIch:       "e",
	PersonDu:        "st",
	PersonEr:        "t",
	PersonSie:       "t",
	PersonEs:        "t",
	PersonWir:       "en",
	PersonIhr:       "t",
	PersonSieFormal: "en",
	PersonSiePlural: "en",
}

// linkedEndings applies to stems ending in an unstressed -er/-el
// syllable (kümmern, sammeln). The stem keeps its schwa and the
// plural -en endings reduce to -n.
var linkedEndings = map[Person]string{
	PersonIch:       "e",
	PersonDu:        "st",
	PersonEr:        "t",
	PersonSie:       "t",
	PersonEs:        "t",
	PersonWir:       "n",
	PersonIhr:       "t",
	PersonSieFormal: "n",
	PersonSiePlural: "n",
}

// irregularForms lists complete surface forms of fully irregular verbs
// (copula, modals, wissen) for the persons where the stem itself
// deviates. Other persons of these verbs either conjugate regularly or
// carry their own irregular_present entries in the catalog.
var irregularForms = map[string]map[Person]string{
	"sein":   {PersonDu: "bist", PersonEr: "ist", PersonSie: "ist", PersonEs: "ist"},
	"haben":  {PersonDu: "hast", PersonEr: "hat", PersonSie: "hat", PersonEs: "hat"},
	"werden": {PersonDu: "wirst", PersonEr: "wird", PersonSie: "wird", PersonEs: "wird"},
	"wissen": {PersonDu: "weißt", PersonEr: "weiß", PersonSie: "weiß", PersonEs: "weiß"},
	"mögen":  {PersonDu: "magst", PersonEr: "mag", PersonSie: "mag", PersonEs: "mag"},
	"können": {PersonDu: "kannst", PersonEr: "kann", PersonSie: "kann", PersonEs: "kann"},
	"müssen": {PersonDu: "musst", PersonEr: "muss", PersonSie: "muss", PersonEs: "muss"},
	"sollen": {PersonDu: "sollst", PersonEr: "soll", PersonSie: "soll", PersonEs: "soll"},
	"wollen": {PersonDu: "willst", PersonEr: "will", PersonSie: "will", PersonEs: "will"},
	"dürfen": {PersonDu: "darfst", PersonEr: "darf", PersonSie: "darf", PersonEs: "darf"},
}

// conjRule is a single unit of the conjugation resolution chain.
// Apply reports whether the rule covers the (verb, person) combination
// and if so, which surface form it yields.
type conjRule interface {
	Apply(verb *lexicon.Verb, person Person) (string, bool)
}

// overrideRule resolves explicit per-person forms from the catalog.
// It has absolute priority over any other rule.
type overrideRule struct{}

func (r overrideRule) Apply(verb *lexicon.Verb, person Person) (string, bool) {
	if len(verb.IrregularPresent) == 0 {
		return "", false
	}
	form, ok := verb.IrregularPresent[string(person)]
	return form, ok
}

// irregularTableRule resolves forms of the fixed irregular verbs.
type irregularTableRule struct{}

func (r irregularTableRule) Apply(verb *lexicon.Verb, person Person) (string, bool) {
	forms, ok := irregularForms[verb.Infinitive]
	if !ok {
		return "", false
	}
	form, ok := forms[person]
	return form, ok
}

// linkingVowelRule resolves stems ending in an unstressed -er/-el
// syllable. Stems in -ier/-iel carry stress on the cluster and fall
// through to the regular rule.
type linkingVowelRule struct{}

func (r linkingVowelRule) Apply(verb *lexicon.Verb, person Person) (string, bool) {
	stem := baseStem(verb)
	if strings.HasSuffix(stem, "ier") || strings.HasSuffix(stem, "iel") {
		return "", false
	}
	if !strings.HasSuffix(stem, "er") && !strings.HasSuffix(stem, "el") {
		return "", false
	}
	return stem + linkedEndings[person], true
}

// regularRule terminates the chain: stem plus the regular ending, with
// the 2nd person singular ending degraded to -t after a sibilant.
type regularRule struct{}

func (r regularRule) Apply(verb *lexicon.Verb, person Person) (string, bool) {
	stem := baseStem(verb)
	ending := presentEndings[person]
	if person == PersonDu && hasSibilantCoda(stem) {
		ending = "t"
	}
	return stem + ending, true
}

var conjChain = []conjRule{
	overrideRule{},
	irregularTableRule{},
	linkingVowelRule{},
	regularRule{},
}

func baseStem(verb *lexicon.Verb) string {
	return strings.TrimPrefix(strings.TrimSpace(verb.Stem), "sich ")
}

func hasSibilantCoda(stem string) bool {
	for _, suff := range []string{"s", "ß", "z", "x"} {
		if strings.HasSuffix(stem, suff) {
			return true
		}
	}
	return false
}

// Conjugate produces the Präsens surface form of a verb for the given
// person. The resolution walks a fixed chain of rules, first match
// wins. An unknown person or an empty stem is a catalog defect and
// yields an error, never a silently defaulted form.
func Conjugate(verb *lexicon.Verb, person Person) (string, error) {
	if err := person.Validate(); err != nil {
		return "", fmt.Errorf("cannot conjugate %s: %w", verb.Infinitive, err)
	}
	if baseStem(verb) == "" {
		return "", fmt.Errorf("cannot conjugate %s: %w", verb.Infinitive, ErrEmptyStem)
	}
	for _, rule := range conjChain {
		if form, ok := rule.Apply(verb, person); ok {
			return form, nil
		}
	}
	// the regular rule applies to any valid person
	return "", fmt.Errorf("cannot conjugate %s: no rule applies", verb.Infinitive)
}
