// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2025 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package exercise

import (
	"fmt"
	"math/rand"

	"github.com/czcorpus/cnc-gokit/collections"
	"github.com/czcorpus/satzgen/grammar"
	"github.com/czcorpus/satzgen/lexicon"
	"github.com/google/uuid"
)

// passesDataGates re-checks the sentence generator's requirements
// against the verb's literal argument pools. A verb passing these gates
// is guaranteed to yield a solvable instance from the pattern, so a
// later solution derivation cannot fail.
func passesDataGates(pattern *TemplatePattern, verb *lexicon.Verb) bool {
	if verb.IsFrozen() {
		return false
	}
	if verb.Impersonal && !collections.SliceContains(pattern.Subjects, string(grammar.PersonEs)) {
		return false
	}
	needsObject := pattern.Components.RequiresObject ||
		verb.Valency != "" ||
		len(verb.RequiredObjects) > 0
	if needsObject && len(verb.AllowedObjects) == 0 {
		return false
	}
	for _, reqCase := range verb.RequiredObjects {
		if len(grammar.FilterByCase(verb.AllowedObjects, reqCase)) == 0 {
			return false
		}
	}
	needsPrepPhrase := pattern.Components.RequiresPrepositionalObject || verb.Preposition != ""
	if needsPrepPhrase && len(verb.AllowedPrepositionalObjects) == 0 {
		return false
	}
	return true
}

// prepositionHint formats the preposition hint with the case its
// complement takes. Verbs which do not declare the preposition's case
// fall back to their valency and finally to the bare preposition.
func prepositionHint(verb *lexicon.Verb) string {
	switch {
	case verb.PrepositionCase != "":
		return fmt.Sprintf("%s (%s)", verb.Preposition, verb.PrepositionCase.Label())
	case verb.Valency != "":
		return fmt.Sprintf("%s (%s)", verb.Preposition, verb.Valency.Label())
	}
	return verb.Preposition
}

// GenerateInstance builds one concrete exercise from a pattern and a
// verb. The subject argument fixes the subject; an empty value samples
// it uniformly from the pattern's candidates. Returns nil whenever the
// verb cannot satisfy the pattern's or its own declared requirements,
// which the caller treats as "try another pattern".
func GenerateInstance(
	rng *rand.Rand,
	pattern *TemplatePattern,
	verb *lexicon.Verb,
	subject string,
) *Instance {
	if !passesDataGates(pattern, verb) {
		return nil
	}
	if verb.Impersonal {
		subject = string(grammar.PersonEs)

	} else if subject == "" {
		subject = pattern.Subjects[rng.Intn(len(pattern.Subjects))]
	}

	var objects []string
	for _, reqCase := range verb.RequiredObjects {
		pool := grammar.FilterByCase(verb.AllowedObjects, reqCase)
		objects = append(objects, pool[rng.Intn(len(pool))])
	}
	if len(objects) == 0 &&
		(pattern.Components.RequiresObject || verb.Valency != "") &&
		len(verb.AllowedObjects) > 0 {
		objects = append(objects, verb.AllowedObjects[rng.Intn(len(verb.AllowedObjects))])
	}

	var prepPhrases []string
	if (pattern.Components.RequiresPrepositionalObject || verb.Preposition != "") &&
		len(verb.AllowedPrepositionalObjects) > 0 {
		phrase := verb.AllowedPrepositionalObjects[rng.Intn(len(verb.AllowedPrepositionalObjects))]
		prepPhrases = append(prepPhrases, phrase)
	}

	hints := make([]string, 0, len(pattern.Hints)+len(objects))
	for _, slot := range pattern.Hints {
		switch slot {
		case HintSubject:
			hints = append(hints, subject)
		case HintReflexive:
			if verb.Reflexive {
				hints = append(hints, "sich")
			}
		case HintPreposition:
			if verb.Preposition != "" {
				hints = append(hints, prepositionHint(verb))
			}
		case HintObject:
			hints = append(hints, objects...)
		case HintPrepositionalObject:
			hints = append(hints, prepPhrases...)
		}
	}

	return &Instance{
		ID:                   uuid.New().String(),
		TemplateID:           pattern.ID,
		Level:                pattern.Level,
		Description:          pattern.Description,
		Verb:                 verb,
		Subject:              subject,
		Hints:                hints,
		Objects:              objects,
		PrepositionalPhrases: prepPhrases,
	}
}

// FindCompatiblePatterns filters patterns to those declared for the
// level and matching the verb's properties.
func FindCompatiblePatterns(
	verb *lexicon.Verb,
	level string,
	patterns []*TemplatePattern,
) []*TemplatePattern {
	compatible := make([]*TemplatePattern, 0, len(patterns))
	for _, pattern := range patterns {
		if pattern.Level == level && pattern.Matches(verb) {
			compatible = append(compatible, pattern)
		}
	}
	return compatible
}

// GenerateForVerb produces an exercise for the verb at the given level.
// Compatible patterns are tried in random order until one yields an
// instance; nil means no pattern could provide one.
func GenerateForVerb(
	rng *rand.Rand,
	verb *lexicon.Verb,
	level string,
	patterns []*TemplatePattern,
	subject string,
) *Instance {
	compatible := FindCompatiblePatterns(verb, level, patterns)
	if len(compatible) == 0 {
		return nil
	}
	rng.Shuffle(len(compatible), func(i, j int) {
		compatible[i], compatible[j] = compatible[j], compatible[i]
	})
	for _, pattern := range compatible {
		if inst := GenerateInstance(rng, pattern, verb, subject); inst != nil {
			return inst
		}
	}
	return nil
}

// CanGenerate tests whether at least one pattern can instantiate an
// exercise for the verb at the level. It never consumes randomness, so
// selection filters may call it freely without disturbing sampling.
func CanGenerate(verb *lexicon.Verb, level string, patterns []*TemplatePattern) bool {
	for _, pattern := range patterns {
		if pattern.Level == level && pattern.Matches(verb) && passesDataGates(pattern, verb) {
			return true
		}
	}
	return false
}
