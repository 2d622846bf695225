// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2025 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMainClauseSimple(t *testing.T) {
	verb := regularVerb("machen", "mach")
	ans := BuildMainClause(PersonIch, verb, "mache", []string{"die Hausaufgaben"}, nil, nil)
	assert.Equal(t, "Ich mache die Hausaufgaben", ans)
}

func TestBuildMainClauseSeparablePrefixLast(t *testing.T) {
	verb := regularVerb("aufstehen", "steh")
	verb.Separable = true
	verb.Prefix = "auf"
	ans := BuildMainClause(PersonEr, verb, "steht", nil, nil, []string{"um sieben Uhr"})
	assert.Equal(t, "Er steht um sieben Uhr auf", ans)
}

func TestBuildMainClauseReflexive(t *testing.T) {
	verb := regularVerb("sich freuen", "freu")
	verb.Reflexive = true
	ans := BuildMainClause(PersonIch, verb, "freue", nil, []string{"auf das Wochenende"}, nil)
	assert.Equal(t, "Ich freue mich auf das Wochenende", ans)
}

func TestBuildMainClauseReflexiveAndSeparable(t *testing.T) {
	verb := regularVerb("sich anziehen", "zieh")
	verb.Reflexive = true
	verb.Separable = true
	verb.Prefix = "an"
	ans := BuildMainClause(PersonDu, verb, "ziehst", nil, nil, nil)
	assert.Equal(t, "Du ziehst dich an", ans)
}

func TestBuildMainClauseConstituentOrder(t *testing.T) {
	verb := regularVerb("kaufen", "kauf")
	ans := BuildMainClause(
		PersonIch,
		verb,
		"kaufe",
		[]string{"den Kuchen"},
		[]string{"in der Bäckerei"},
		[]string{"am Samstag"},
	)
	assert.Equal(t, "Ich kaufe den Kuchen in der Bäckerei am Samstag", ans)
}

func TestBuildMainClauseReflexiveBeforeOtherConstituents(t *testing.T) {
	verb := regularVerb("sich treffen", "treff")
	verb.Reflexive = true
	ans := BuildMainClause(
		PersonWir,
		verb,
		"treffen",
		nil,
		[]string{"mit dem Lehrer"},
		[]string{"am Montag"},
	)
	assert.Equal(t, "Wir treffen uns mit dem Lehrer am Montag", ans)
}

func TestBuildMainClauseFormalSieKeepsSpelling(t *testing.T) {
	verb := regularVerb("gehen", "geh")
	ans := BuildMainClause(PersonSieFormal, verb, "gehen", nil, []string{"ins Kino"}, nil)
	assert.Equal(t, "Sie gehen ins Kino", ans)
}

func TestBuildMainClausePluralSieSurfacesAsSie(t *testing.T) {
	verb := regularVerb("lernen", "lern")
	ans := BuildMainClause(PersonSiePlural, verb, "lernen", []string{"die Vokabeln"}, nil, nil)
	assert.Equal(t, "Sie lernen die Vokabeln", ans)
}

func TestBuildMainClauseDitransitiveOrder(t *testing.T) {
	verb := regularVerb("geben", "geb")
	ans := BuildMainClause(PersonIch, verb, "gebe", []string{"dem Freund", "ein Buch"}, nil, nil)
	assert.Equal(t, "Ich gebe dem Freund ein Buch", ans)
}

func TestBuildMainClausePrefixIgnoredWhenNotSeparable(t *testing.T) {
	verb := regularVerb("gehören", "gehör")
	verb.Prefix = "ge"
	ans := BuildMainClause(PersonEs, verb, "gehört", []string{"mir"}, nil, nil)
	assert.Equal(t, "Es gehört mir", ans)
}

func TestCapitalizeSubject(t *testing.T) {
	assert.Equal(t, "Ich", capitalizeSubject("ich"))
	assert.Equal(t, "Sie", capitalizeSubject("sie"))
	assert.Equal(t, "Sie", capitalizeSubject("Sie"))
	assert.Equal(t, "Es", capitalizeSubject("es"))
}
