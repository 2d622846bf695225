// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2025 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package exercise

import (
	"github.com/czcorpus/satzgen/grammar"
	"github.com/czcorpus/satzgen/lexicon"
)

// Instance is one concrete exercise: a verb, a fixed subject and
// sampled arguments, plus learner-facing hints. It stores everything
// needed to derive its solution so the solution can be recomputed any
// time, always with the same result.
type Instance struct {
	ID          string `json:"id"`
	TemplateID  string `json:"templateId"`
	Level       string `json:"level"`
	Description string `json:"description,omitempty"`

	Verb    *lexicon.Verb `json:"verb"`
	Subject string        `json:"subject"`
	Hints   []string      `json:"hints"`

	Objects              []string `json:"objects,omitempty"`
	PrepositionalPhrases []string `json:"prepositionalPhrases,omitempty"`
	TimeExpressions      []string `json:"timeExpressions,omitempty"`

	// FromWiderPool marks exercises whose verb came from outside the
	// learner's active practice list.
	FromWiderPool bool `json:"fromWiderPool,omitempty"`
}

// Solution derives the correct sentence from the stored arguments.
func (inst *Instance) Solution() (string, error) {
	return grammar.GenerateSentence(
		inst.Subject, inst.Verb, inst.Objects, inst.PrepositionalPhrases, inst.TimeExpressions)
}
