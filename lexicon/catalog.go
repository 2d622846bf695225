// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2025 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package lexicon

import (
	"fmt"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Catalog is an immutable collection of verb entries indexed by
// infinitive. The insertion order of entries is preserved so listing
// operations are deterministic.
type Catalog struct {
	verbs []*Verb
	index map[string]*Verb
}

func (cat *Catalog) Size() int {
	return len(cat.verbs)
}

func (cat *Catalog) Get(infinitive string) (*Verb, bool) {
	verb, ok := cat.index[infinitive]
	return verb, ok
}

func (cat *Catalog) Contains(infinitive string) bool {
	_, ok := cat.index[infinitive]
	return ok
}

// Verbs returns all the entries in their original order. The returned
// slice is shared and must not be modified by the caller.
func (cat *Catalog) Verbs() []*Verb {
	return cat.verbs
}

func (cat *Catalog) ByLevel(level string) []*Verb {
	ans := make([]*Verb, 0, len(cat.verbs))
	for _, verb := range cat.verbs {
		if verb.HasLevel(level) {
			ans = append(ans, verb)
		}
	}
	return ans
}

func (cat *Catalog) Frozen() []*Verb {
	ans := make([]*Verb, 0, 5)
	for _, verb := range cat.verbs {
		if verb.IsFrozen() {
			ans = append(ans, verb)
		}
	}
	return ans
}

// Infinitives lists all the infinitives sorted using German collation
// rules so umlauted entries end up where a learner expects them.
func (cat *Catalog) Infinitives() []string {
	ans := make([]string, len(cat.verbs))
	for i, verb := range cat.verbs {
		ans[i] = verb.Infinitive
	}
	collate.New(language.German).SortStrings(ans)
	return ans
}

func NewCatalog(verbs []*Verb) (*Catalog, error) {
	ans := &Catalog{
		verbs: verbs,
		index: make(map[string]*Verb, len(verbs)),
	}
	for _, verb := range verbs {
		if err := verb.Validate(); err != nil {
			return nil, fmt.Errorf("invalid verb entry: %w", err)
		}
		if _, ok := ans.index[verb.Infinitive]; ok {
			return nil, fmt.Errorf("duplicate verb entry %s", verb.Infinitive)
		}
		ans.index[verb.Infinitive] = verb
	}
	return ans, nil
}
