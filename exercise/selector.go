// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2025 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package exercise

import (
	"math/rand"

	"github.com/czcorpus/cnc-gokit/collections"
	"github.com/czcorpus/satzgen/lexicon"
)

// Selection is the result of a verb pick, remembering whether the verb
// came from outside the learner's active practice list.
type Selection struct {
	Verb          *lexicon.Verb
	FromWiderPool bool
}

// SelectVerb picks a verb for the next exercise. Only verbs of the
// requested level for which at least one template can produce an
// instance take part. The active list is preferred with probability
// activeWeight; with useWiderPool disabled the remaining verbs are
// never consulted, even when the active list yields nothing.
func SelectVerb(
	rng *rand.Rand,
	verbs []*lexicon.Verb,
	activeInfinitives []string,
	level string,
	useWiderPool bool,
	activeWeight float64,
	patterns []*TemplatePattern,
) (Selection, bool) {
	var active, wider []*lexicon.Verb
	for _, verb := range verbs {
		if !verb.HasLevel(level) || !CanGenerate(verb, level, patterns) {
			continue
		}
		if collections.SliceContains(activeInfinitives, verb.Infinitive) {
			active = append(active, verb)
		} else {
			wider = append(wider, verb)
		}
	}

	if !useWiderPool {
		if len(active) == 0 {
			return Selection{}, false
		}
		return Selection{Verb: active[rng.Intn(len(active))]}, true
	}

	sample := rng.Float64()
	if len(active) > 0 && sample < activeWeight {
		return Selection{Verb: active[rng.Intn(len(active))]}, true
	}
	if len(wider) > 0 {
		return Selection{
			Verb:          wider[rng.Intn(len(wider))],
			FromWiderPool: true,
		}, true
	}
	if len(active) > 0 {
		return Selection{Verb: active[rng.Intn(len(active))]}, true
	}
	return Selection{}, false
}
