// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2025 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package lexicon

import (
	"fmt"

	"github.com/czcorpus/cnc-gokit/collections"
)

const (
	// GenerationModeFrozen marks verbs excluded from free sentence
	// generation. Such verbs are presented via their fixed_examples only.
	GenerationModeFrozen = "frozen"

	AuxiliaryHaben = "haben"
	AuxiliarySein  = "sein"
)

// Case is a grammatical case an object argument may bear. Only the two
// cases relevant for verb valency in this application are covered.
type Case string

const (
	CaseAkkusativ Case = "akk"
	CaseDativ     Case = "dat"
)

func (c Case) Validate() error {
	if c != CaseAkkusativ && c != CaseDativ {
		return fmt.Errorf("unknown grammatical case: %s", c)
	}
	return nil
}

// Label provides the full German name of the case as used
// in exercise hints.
func (c Case) Label() string {
	switch c {
	case CaseAkkusativ:
		return "Akkusativ"
	case CaseDativ:
		return "Dativ"
	}
	return string(c)
}

// Verb describes one German verb and all its grammatical properties
// the generator relies on. Records are loaded once from a catalog and
// must be treated as read-only afterwards.
//
// Argument pools (AllowedObjects, AllowedPrepositionalObjects) contain
// pre-written, case-marked phrases curated by the catalog author. The
// generator only ever samples from these pools - a missing pool means
// the respective sentence part cannot be generated, it is never invented.
type Verb struct {

	// Infinitive is the unique identifier of the verb. Reflexive verbs
	// carry their particle as part of the name (e.g. "sich freuen").
	Infinitive string `json:"infinitive"`

	// Stem is the base used by regular conjugation (without any
	// separable prefix or reflexive particle).
	Stem string `json:"stem"`

	Separable bool   `json:"separable"`
	Prefix    string `json:"prefix,omitempty"`
	Reflexive bool   `json:"reflexive"`

	// Preposition is a governed preposition. If set, the verb requires
	// a prepositional phrase argument.
	Preposition string `json:"preposition,omitempty"`

	// PrepositionCase is the case the governed preposition assigns
	// within this verb's complement. It must be stored per verb - the
	// two-way prepositions (an, auf, über, vor) differ between verbs.
	PrepositionCase Case `json:"preposition_case,omitempty"`

	// Valency, if set, requires at least one plain object argument
	// of the given case.
	Valency Case `json:"valency,omitempty"`

	// RequiredObjects lists cases which must all be satisfiable at
	// once (ditransitive verbs like "geben").
	RequiredObjects []Case `json:"required_objects,omitempty"`

	// Impersonal verbs accept "es" as their only legal subject.
	Impersonal bool `json:"impersonal,omitempty"`

	GenerationMode string `json:"generation_mode,omitempty"`

	// IrregularPresent maps a grammatical person to an explicit surface
	// form, taking absolute priority over any conjugation rule.
	IrregularPresent map[string]string `json:"irregular_present,omitempty"`

	AllowedObjects              []string `json:"allowed_objects,omitempty"`
	AllowedPrepositionalObjects []string `json:"allowed_prepositional_objects,omitempty"`

	Levels         []string `json:"levels"`
	EnglishMeaning string   `json:"english_meaning,omitempty"`

	// PartizipII and Auxiliary are carried for display and catalog
	// auditing. The generator itself covers the present tense only.
	PartizipII string `json:"partizip_ii,omitempty"`
	Auxiliary  string `json:"auxiliary,omitempty"`
	Modal      bool   `json:"modal,omitempty"`

	// FixedExamples are pre-authored sentences illustrating verbs
	// locked out of free generation.
	FixedExamples []string `json:"fixed_examples,omitempty"`
}

// IsFrozen tests whether the verb is locked out of free
// sentence generation.
func (v *Verb) IsFrozen() bool {
	return v.GenerationMode == GenerationModeFrozen
}

func (v *Verb) HasLevel(level string) bool {
	return collections.SliceContains(v.Levels, level)
}

// Validate checks basic record integrity. Deeper, generation-level
// auditing is performed by the validation package.
func (v *Verb) Validate() error {
	if v.Infinitive == "" {
		return fmt.Errorf("verb record without infinitive")
	}
	if v.Stem == "" {
		return fmt.Errorf("verb %s: empty stem", v.Infinitive)
	}
	if len(v.Levels) == 0 {
		return fmt.Errorf("verb %s: no levels defined", v.Infinitive)
	}
	if v.Valency != "" {
		if err := v.Valency.Validate(); err != nil {
			return fmt.Errorf("verb %s: %w", v.Infinitive, err)
		}
	}
	if v.PrepositionCase != "" {
		if err := v.PrepositionCase.Validate(); err != nil {
			return fmt.Errorf("verb %s: %w", v.Infinitive, err)
		}
		if v.Preposition == "" {
			return fmt.Errorf("verb %s: preposition_case without preposition", v.Infinitive)
		}
	}
	for _, c := range v.RequiredObjects {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("verb %s: %w", v.Infinitive, err)
		}
	}
	if v.Auxiliary != "" && v.Auxiliary != AuxiliaryHaben && v.Auxiliary != AuxiliarySein {
		return fmt.Errorf("verb %s: unknown auxiliary %s", v.Infinitive, v.Auxiliary)
	}
	return nil
}
