// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2025 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func catVerb(infinitive, stem string, levels ...string) *Verb {
	return &Verb{
		Infinitive: infinitive,
		Stem:       stem,
		Auxiliary:  AuxiliaryHaben,
		Levels:     levels,
	}
}

func TestNewCatalogIndexesByInfinitive(t *testing.T) {
	catalog, err := NewCatalog([]*Verb{
		catVerb("machen", "mach", "A1"),
		catVerb("lernen", "lern", "A1", "A2"),
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, catalog.Size())
	verb, ok := catalog.Get("lernen")
	assert.True(t, ok)
	assert.Equal(t, "lern", verb.Stem)
	assert.True(t, catalog.Contains("machen"))
	assert.False(t, catalog.Contains("schlafen"))
}

func TestNewCatalogRejectsDuplicates(t *testing.T) {
	_, err := NewCatalog([]*Verb{
		catVerb("machen", "mach", "A1"),
		catVerb("machen", "mach", "A2"),
	})
	assert.ErrorContains(t, err, "duplicate")
}

func TestNewCatalogRejectsInvalidEntries(t *testing.T) {
	_, err := NewCatalog([]*Verb{
		{Infinitive: "kaputt", Levels: []string{"A1"}},
	})
	assert.Error(t, err)
}

func TestCatalogByLevel(t *testing.T) {
	catalog, err := NewCatalog([]*Verb{
		catVerb("machen", "mach", "A1", "A2"),
		catVerb("lernen", "lern", "A1"),
		catVerb("verstehen", "versteh", "B1"),
	})
	assert.NoError(t, err)
	a1 := catalog.ByLevel("A1")
	assert.Len(t, a1, 2)
	b1 := catalog.ByLevel("B1")
	assert.Len(t, b1, 1)
	assert.Equal(t, "verstehen", b1[0].Infinitive)
	assert.Empty(t, catalog.ByLevel("C1"))
}

func TestCatalogFrozen(t *testing.T) {
	gefallen := catVerb("gefallen", "gefall", "A2")
	gefallen.GenerationMode = GenerationModeFrozen
	catalog, err := NewCatalog([]*Verb{
		catVerb("machen", "mach", "A1"),
		gefallen,
	})
	assert.NoError(t, err)
	frozen := catalog.Frozen()
	assert.Len(t, frozen, 1)
	assert.Equal(t, "gefallen", frozen[0].Infinitive)
}

func TestCatalogInfinitivesGermanCollation(t *testing.T) {
	catalog, err := NewCatalog([]*Verb{
		catVerb("essen", "ess", "A1"),
		catVerb("ärgern", "ärger", "A2"),
		catVerb("anrufen", "ruf", "A1"),
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"anrufen", "ärgern", "essen"}, catalog.Infinitives())
}
