// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2025 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package grammar

import (
	"testing"

	"github.com/czcorpus/satzgen/lexicon"
	"github.com/stretchr/testify/assert"
)

func gebenFixture() *lexicon.Verb {
	return &lexicon.Verb{
		Infinitive:      "geben",
		Stem:            "geb",
		Valency:         lexicon.CaseAkkusativ,
		RequiredObjects: []lexicon.Case{lexicon.CaseDativ, lexicon.CaseAkkusativ},
		IrregularPresent: map[string]string{
			"du": "gibst", "er": "gibt", "sie": "gibt", "es": "gibt",
		},
		AllowedObjects: []string{"dem Freund", "der Mutter", "ein Buch", "einen Stift"},
		Auxiliary:      lexicon.AuxiliaryHaben,
		Levels:         []string{"A2"},
	}
}

func TestGenerateSentenceSimple(t *testing.T) {
	verb := regularVerb("machen", "mach")
	ans, err := GenerateSentence("ich", verb, []string{"die Hausaufgaben"}, nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, "Ich mache die Hausaufgaben", ans)
}

func TestGenerateSentenceFrozenAlwaysFails(t *testing.T) {
	verb := regularVerb("gefallen", "gefall")
	verb.GenerationMode = lexicon.GenerationModeFrozen
	verb.Valency = lexicon.CaseDativ
	_, err := GenerateSentence("es", verb, []string{"mir"}, nil, nil)
	assert.ErrorIs(t, err, ErrFrozenVerb)
	_, err = GenerateSentence("ich", verb, nil, nil, nil)
	assert.ErrorIs(t, err, ErrFrozenVerb)
}

func TestGenerateSentenceImpersonalRejectsOtherSubjects(t *testing.T) {
	verb := regularVerb("passieren", "passier")
	verb.Impersonal = true
	verb.Valency = lexicon.CaseDativ
	verb.Auxiliary = lexicon.AuxiliarySein
	_, err := GenerateSentence("du", verb, []string{"mir"}, nil, nil)
	assert.ErrorIs(t, err, ErrImpersonalSubject)
}

func TestGenerateSentenceImpersonalWithEs(t *testing.T) {
	verb := regularVerb("passieren", "passier")
	verb.Impersonal = true
	verb.Valency = lexicon.CaseDativ
	verb.Auxiliary = lexicon.AuxiliarySein
	ans, err := GenerateSentence("es", verb, []string{"mir"}, nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, "Es passiert mir", ans)
}

func TestGenerateSentenceValencyGate(t *testing.T) {
	verb := regularVerb("brauchen", "brauch")
	verb.Valency = lexicon.CaseAkkusativ
	_, err := GenerateSentence("ich", verb, nil, nil, nil)
	assert.ErrorIs(t, err, ErrMissingObject)
}

func TestGenerateSentencePrepositionGate(t *testing.T) {
	verb := regularVerb("sich freuen", "freu")
	verb.Reflexive = true
	verb.Preposition = "auf"
	verb.PrepositionCase = lexicon.CaseAkkusativ
	_, err := GenerateSentence("ich", verb, nil, nil, nil)
	assert.ErrorIs(t, err, ErrMissingPrepPhrase)
}

func TestGenerateSentencePrepositionSatisfied(t *testing.T) {
	verb := regularVerb("sich freuen", "freu")
	verb.Reflexive = true
	verb.Preposition = "auf"
	verb.PrepositionCase = lexicon.CaseAkkusativ
	ans, err := GenerateSentence("ich", verb, nil, []string{"auf das Wochenende"}, nil)
	assert.NoError(t, err)
	assert.Equal(t, "Ich freue mich auf das Wochenende", ans)
}

func TestGenerateSentenceRequiredObjectsBothPresent(t *testing.T) {
	ans, err := GenerateSentence("ich", gebenFixture(), []string{"dem Freund", "ein Buch"}, nil, nil)
	assert.NoError(t, err)
	assert.Contains(t, ans, "dem Freund")
	assert.Contains(t, ans, "ein Buch")
	assert.Equal(t, "Ich gebe dem Freund ein Buch", ans)
}

func TestGenerateSentenceRequiredObjectsMissingAccusative(t *testing.T) {
	_, err := GenerateSentence("ich", gebenFixture(), []string{"dem Freund"}, nil, nil)
	assert.ErrorIs(t, err, ErrMissingRequiredCase)
	assert.Contains(t, err.Error(), "Akkusativ")
}

func TestGenerateSentenceRequiredObjectsMissingDative(t *testing.T) {
	_, err := GenerateSentence("ich", gebenFixture(), []string{"ein Buch"}, nil, nil)
	assert.ErrorIs(t, err, ErrMissingRequiredCase)
	assert.Contains(t, err.Error(), "Dativ")
}

func TestGenerateSentenceUnknownSubjectPropagates(t *testing.T) {
	verb := regularVerb("machen", "mach")
	_, err := GenerateSentence("man", verb, []string{"die Hausaufgaben"}, nil, nil)
	assert.ErrorIs(t, err, ErrUnknownPerson)
}

func TestGenerateSentenceSeparableVerb(t *testing.T) {
	verb := regularVerb("aufstehen", "steh")
	verb.Separable = true
	verb.Prefix = "auf"
	verb.Auxiliary = lexicon.AuxiliarySein
	ans, err := GenerateSentence("wir", verb, nil, nil, []string{"um acht Uhr"})
	assert.NoError(t, err)
	assert.Equal(t, "Wir stehen um acht Uhr auf", ans)
}

func TestGenerateSentenceDeterministic(t *testing.T) {
	verb := gebenFixture()
	first, err := GenerateSentence("ich", verb, []string{"dem Freund", "ein Buch"}, nil, nil)
	assert.NoError(t, err)
	second, err := GenerateSentence("ich", verb, []string{"dem Freund", "ein Buch"}, nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}
