// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2025 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package grammar

import (
	"errors"
	"fmt"

	"github.com/czcorpus/satzgen/lexicon"
)

// Gate errors raised by GenerateSentence. Each names the declared verb
// requirement the supplied arguments failed to meet. Callers treat them
// as catalog/programming defects, not as user-recoverable conditions.
var (
	ErrFrozenVerb          = errors.New("frozen verb is excluded from free generation")
	ErrImpersonalSubject   = errors.New("impersonal verb requires the subject \"es\"")
	ErrMissingObject       = errors.New("verb valency requires at least one object")
	ErrMissingPrepPhrase   = errors.New("verb requires a prepositional phrase")
	ErrMissingRequiredCase = errors.New("required object case is not represented")
)

// GenerateSentence is the only validated path from verb plus arguments
// to a sentence. It checks the verb's declared requirements in a fixed
// gate order and only then conjugates and assembles; nothing is ever
// silently corrected or invented. The subject is the raw person key as
// stored in template catalogs.
func GenerateSentence(
	subject string,
	verb *lexicon.Verb,
	objects []string,
	prepPhrases []string,
	timeExprs []string,
) (string, error) {
	if verb.IsFrozen() {
		return "", fmt.Errorf("cannot generate sentence for %s: %w", verb.Infinitive, ErrFrozenVerb)
	}
	if verb.Impersonal && subject != string(PersonEs) {
		return "", fmt.Errorf(
			"cannot generate sentence for %s with subject %q: %w",
			verb.Infinitive, subject, ErrImpersonalSubject)
	}
	if verb.Valency != "" && len(objects) == 0 {
		return "", fmt.Errorf(
			"cannot generate sentence for %s (%s): %w",
			verb.Infinitive, verb.Valency.Label(), ErrMissingObject)
	}
	if verb.Preposition != "" && len(prepPhrases) == 0 {
		return "", fmt.Errorf(
			"cannot generate sentence for %s (%s): %w",
			verb.Infinitive, verb.Preposition, ErrMissingPrepPhrase)
	}
	for _, reqCase := range verb.RequiredObjects {
		if len(FilterByCase(objects, reqCase)) == 0 {
			return "", fmt.Errorf(
				"cannot generate sentence for %s: %w: %s",
				verb.Infinitive, ErrMissingRequiredCase, reqCase.Label())
		}
	}
	person, err := ParsePerson(subject)
	if err != nil {
		return "", fmt.Errorf("cannot generate sentence for %s: %w", verb.Infinitive, err)
	}
	conjugated, err := Conjugate(verb, person)
	if err != nil {
		return "", err
	}
	return BuildMainClause(person, verb, conjugated, objects, prepPhrases, timeExprs), nil
}
