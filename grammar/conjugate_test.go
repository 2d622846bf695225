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

func regularVerb(infinitive, stem string) *lexicon.Verb {
	return &lexicon.Verb{
		Infinitive: infinitive,
		Stem:       stem,
		Auxiliary:  lexicon.AuxiliaryHaben,
		Levels:     []string{"A2"},
	}
}

// ---------------- explicit irregular_present overrides ----------------

func TestConjugateEssenDu(t *testing.T) {
	verb := regularVerb("essen", "ess")
	verb.IrregularPresent = map[string]string{"du": "isst", "er": "isst", "sie": "isst", "es": "isst"}
	ans, err := Conjugate(verb, PersonDu)
	assert.NoError(t, err)
	assert.Equal(t, "isst", ans)
}

func TestConjugateEssenEr(t *testing.T) {
	verb := regularVerb("essen", "ess")
	verb.IrregularPresent = map[string]string{"du": "isst", "er": "isst", "sie": "isst", "es": "isst"}
	ans, err := Conjugate(verb, PersonEr)
	assert.NoError(t, err)
	assert.Equal(t, "isst", ans)
}

func TestConjugateEssenWirIsRegular(t *testing.T) {
	verb := regularVerb("essen", "ess")
	verb.IrregularPresent = map[string]string{"du": "isst", "er": "isst", "sie": "isst", "es": "isst"}
	ans, err := Conjugate(verb, PersonWir)
	assert.NoError(t, err)
	assert.Equal(t, "essen", ans)
}

func TestConjugateEinladenDu(t *testing.T) {
	verb := regularVerb("einladen", "lad")
	verb.Separable = true
	verb.Prefix = "ein"
	verb.IrregularPresent = map[string]string{"du": "lädst", "er": "lädt", "sie": "lädt", "es": "lädt"}
	ans, err := Conjugate(verb, PersonDu)
	assert.NoError(t, err)
	assert.Equal(t, "lädst", ans)
}

func TestConjugateEinladenEr(t *testing.T) {
	verb := regularVerb("einladen", "lad")
	verb.Separable = true
	verb.Prefix = "ein"
	verb.IrregularPresent = map[string]string{"du": "lädst", "er": "lädt", "sie": "lädt", "es": "lädt"}
	ans, err := Conjugate(verb, PersonEr)
	assert.NoError(t, err)
	assert.Equal(t, "lädt", ans)
}

func TestConjugateWartenEpentheticOverrides(t *testing.T) {
	verb := regularVerb("warten", "wart")
	verb.IrregularPresent = map[string]string{
		"du": "wartest", "er": "wartet", "sie": "wartet", "es": "wartet", "ihr": "wartet",
	}
	ans, err := Conjugate(verb, PersonDu)
	assert.NoError(t, err)
	assert.Equal(t, "wartest", ans)
	ans, err = Conjugate(verb, PersonEr)
	assert.NoError(t, err)
	assert.Equal(t, "wartet", ans)
	ans, err = Conjugate(verb, PersonWir)
	assert.NoError(t, err)
	assert.Equal(t, "warten", ans)
}

func TestConjugateOverrideBeatsIrregularTable(t *testing.T) {
	verb := regularVerb("sein", "sei")
	verb.IrregularPresent = map[string]string{"du": "bist-x"}
	ans, err := Conjugate(verb, PersonDu)
	assert.NoError(t, err)
	assert.Equal(t, "bist-x", ans)
}

// ---------------- fixed irregular verb table ----------------

func TestConjugateSeinDu(t *testing.T) {
	ans, err := Conjugate(regularVerb("sein", "sei"), PersonDu)
	assert.NoError(t, err)
	assert.Equal(t, "bist", ans)
}

func TestConjugateSeinEs(t *testing.T) {
	ans, err := Conjugate(regularVerb("sein", "sei"), PersonEs)
	assert.NoError(t, err)
	assert.Equal(t, "ist", ans)
}

func TestConjugateKoennenDu(t *testing.T) {
	ans, err := Conjugate(regularVerb("können", "könn"), PersonDu)
	assert.NoError(t, err)
	assert.Equal(t, "kannst", ans)
}

func TestConjugateMuessenEr(t *testing.T) {
	ans, err := Conjugate(regularVerb("müssen", "müss"), PersonEr)
	assert.NoError(t, err)
	assert.Equal(t, "muss", ans)
}

func TestConjugateWollenDu(t *testing.T) {
	ans, err := Conjugate(regularVerb("wollen", "woll"), PersonDu)
	assert.NoError(t, err)
	assert.Equal(t, "willst", ans)
}

func TestConjugateWissenDu(t *testing.T) {
	ans, err := Conjugate(regularVerb("wissen", "wiss"), PersonDu)
	assert.NoError(t, err)
	assert.Equal(t, "weißt", ans)
}

func TestConjugateKoennenWirIsRegular(t *testing.T) {
	ans, err := Conjugate(regularVerb("können", "könn"), PersonWir)
	assert.NoError(t, err)
	assert.Equal(t, "können", ans)
}

// ---------------- linking vowel stems ----------------

func TestConjugateKuemmernIch(t *testing.T) {
	verb := regularVerb("sich kümmern", "kümmer")
	verb.Reflexive = true
	ans, err := Conjugate(verb, PersonIch)
	assert.NoError(t, err)
	assert.Equal(t, "kümmere", ans)
}

func TestConjugateKuemmernDu(t *testing.T) {
	verb := regularVerb("sich kümmern", "kümmer")
	verb.Reflexive = true
	ans, err := Conjugate(verb, PersonDu)
	assert.NoError(t, err)
	assert.Equal(t, "kümmerst", ans)
}

func TestConjugateKuemmernWir(t *testing.T) {
	verb := regularVerb("sich kümmern", "kümmer")
	verb.Reflexive = true
	ans, err := Conjugate(verb, PersonWir)
	assert.NoError(t, err)
	assert.Equal(t, "kümmern", ans)
}

func TestConjugateKuemmernIhr(t *testing.T) {
	verb := regularVerb("sich kümmern", "kümmer")
	verb.Reflexive = true
	ans, err := Conjugate(verb, PersonIhr)
	assert.NoError(t, err)
	assert.Equal(t, "kümmert", ans)
}

func TestConjugateErinnernIch(t *testing.T) {
	verb := regularVerb("sich erinnern", "erinner")
	verb.Reflexive = true
	ans, err := Conjugate(verb, PersonIch)
	assert.NoError(t, err)
	assert.Equal(t, "erinnere", ans)
}

func TestConjugateErinnernDu(t *testing.T) {
	verb := regularVerb("sich erinnern", "erinner")
	verb.Reflexive = true
	ans, err := Conjugate(verb, PersonDu)
	assert.NoError(t, err)
	assert.Equal(t, "erinnerst", ans)
}

func TestConjugateSammelnSiePlural(t *testing.T) {
	ans, err := Conjugate(regularVerb("sammeln", "sammel"), PersonSiePlural)
	assert.NoError(t, err)
	assert.Equal(t, "sammeln", ans)
}

func TestConjugateStudierenNotLinked(t *testing.T) {
	// -ieren stems stress the cluster and stay regular
	ans, err := Conjugate(regularVerb("studieren", "studier"), PersonWir)
	assert.NoError(t, err)
	assert.Equal(t, "studieren", ans)
	ans, err = Conjugate(regularVerb("studieren", "studier"), PersonIch)
	assert.NoError(t, err)
	assert.Equal(t, "studiere", ans)
}

func TestConjugateSpielenNotLinked(t *testing.T) {
	ans, err := Conjugate(regularVerb("spielen", "spiel"), PersonWir)
	assert.NoError(t, err)
	assert.Equal(t, "spielen", ans)
}

// ---------------- regular verbs ----------------

func TestConjugateMachenIch(t *testing.T) {
	ans, err := Conjugate(regularVerb("machen", "mach"), PersonIch)
	assert.NoError(t, err)
	assert.Equal(t, "mache", ans)
}

func TestConjugateMachenDu(t *testing.T) {
	ans, err := Conjugate(regularVerb("machen", "mach"), PersonDu)
	assert.NoError(t, err)
	assert.Equal(t, "machst", ans)
}

func TestConjugateGehenEr(t *testing.T) {
	ans, err := Conjugate(regularVerb("gehen", "geh"), PersonEr)
	assert.NoError(t, err)
	assert.Equal(t, "geht", ans)
}

func TestConjugateGehenSieFormal(t *testing.T) {
	ans, err := Conjugate(regularVerb("gehen", "geh"), PersonSieFormal)
	assert.NoError(t, err)
	assert.Equal(t, "gehen", ans)
}

func TestConjugateAllPersonsRegular(t *testing.T) {
	expected := map[Person]string{
		PersonIch:       "lerne",
		PersonDu:        "lernst",
		PersonEr:        "lernt",
		PersonSie:       "lernt",
		PersonEs:        "lernt",
		PersonWir:       "lernen",
		PersonIhr:       "lernt",
		PersonSieFormal: "lernen",
		PersonSiePlural: "lernen",
	}
	for _, p := range Persons {
		ans, err := Conjugate(regularVerb("lernen", "lern"), p)
		assert.NoError(t, err)
		assert.Equal(t, expected[p], ans)
	}
}

// ---------------- sibilant repair ----------------

func TestConjugateHeissenDu(t *testing.T) {
	ans, err := Conjugate(regularVerb("heißen", "heiß"), PersonDu)
	assert.NoError(t, err)
	assert.Equal(t, "heißt", ans)
}

func TestConjugateTanzenDu(t *testing.T) {
	ans, err := Conjugate(regularVerb("tanzen", "tanz"), PersonDu)
	assert.NoError(t, err)
	assert.Equal(t, "tanzt", ans)
}

func TestConjugateReisenDu(t *testing.T) {
	ans, err := Conjugate(regularVerb("reisen", "reis"), PersonDu)
	assert.NoError(t, err)
	assert.Equal(t, "reist", ans)
}

func TestConjugateTanzenIhrKeepsEnding(t *testing.T) {
	ans, err := Conjugate(regularVerb("tanzen", "tanz"), PersonIhr)
	assert.NoError(t, err)
	assert.Equal(t, "tanzt", ans)
}

// ---------------- separable verbs ----------------

func TestConjugateAufstehenEr(t *testing.T) {
	verb := regularVerb("aufstehen", "steh")
	verb.Separable = true
	verb.Prefix = "auf"
	ans, err := Conjugate(verb, PersonEr)
	assert.NoError(t, err)
	assert.Equal(t, "steht", ans)
}

func TestConjugateAnkommenIch(t *testing.T) {
	verb := regularVerb("ankommen", "komm")
	verb.Separable = true
	verb.Prefix = "an"
	ans, err := Conjugate(verb, PersonIch)
	assert.NoError(t, err)
	assert.Equal(t, "komme", ans)
}

func TestConjugateAnziehenDu(t *testing.T) {
	verb := regularVerb("sich anziehen", "zieh")
	verb.Separable = true
	verb.Prefix = "an"
	verb.Reflexive = true
	ans, err := Conjugate(verb, PersonDu)
	assert.NoError(t, err)
	assert.Equal(t, "ziehst", ans)
}

// ---------------- data integrity failures ----------------

func TestConjugateUnknownPerson(t *testing.T) {
	_, err := Conjugate(regularVerb("machen", "mach"), Person("man"))
	assert.ErrorIs(t, err, ErrUnknownPerson)
}

func TestConjugateEmptyStem(t *testing.T) {
	_, err := Conjugate(regularVerb("machen", ""), PersonIch)
	assert.ErrorIs(t, err, ErrEmptyStem)
}

func TestConjugateReflexiveParticleStrippedFromStem(t *testing.T) {
	verb := regularVerb("sich freuen", "sich freu")
	verb.Reflexive = true
	ans, err := Conjugate(verb, PersonIch)
	assert.NoError(t, err)
	assert.Equal(t, "freue", ans)
}
