// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2025 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package exercise

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/czcorpus/satzgen/grammar"
	"github.com/czcorpus/satzgen/lexicon"
)

// Recognized hint slot keys. A pattern may list any subset of them in
// any order; unrecognized keys are ignored.
const (
	HintSubject             = "subject"
	HintReflexive           = "reflexive"
	HintPreposition         = "preposition"
	HintObject              = "object"
	HintPrepositionalObject = "prepositional_object"
)

// PatternRequirements describes which verbs a template pattern accepts.
// A nil field is a wildcard, a set field must match the verb's
// respective property exactly.
type PatternRequirements struct {
	Reflexive   *bool         `json:"reflexive,omitempty"`
	Separable   *bool         `json:"separable,omitempty"`
	Preposition *bool         `json:"preposition,omitempty"`
	Valency     *lexicon.Case `json:"valency,omitempty"`
}

type PatternComponents struct {
	RequiresObject              bool `json:"requires_object"`
	RequiresPrepositionalObject bool `json:"requires_prepositional_object"`
}

// TemplatePattern is an abstract exercise recipe. It does not name any
// concrete verb - it matches verbs by their grammatical properties and
// is instantiated with verb-specific argument pools.
type TemplatePattern struct {
	ID           string              `json:"id"`
	Level        string              `json:"level"`
	Description  string              `json:"description"`
	Requirements PatternRequirements `json:"requirements"`
	Subjects     []string            `json:"subjects"`

	// Hints lists hint slot keys in the order the hints should be
	// presented to the learner.
	Hints []string `json:"hints"`

	Components PatternComponents `json:"components"`
}

// Matches tests the pattern's requirements field by field against the
// verb's properties. The preposition requirement is a has/has-not test,
// not a match on a concrete preposition.
func (tp *TemplatePattern) Matches(verb *lexicon.Verb) bool {
	req := tp.Requirements
	if req.Reflexive != nil && *req.Reflexive != verb.Reflexive {
		return false
	}
	if req.Separable != nil && *req.Separable != verb.Separable {
		return false
	}
	if req.Preposition != nil && *req.Preposition != (verb.Preposition != "") {
		return false
	}
	if req.Valency != nil && *req.Valency != verb.Valency {
		return false
	}
	return true
}

func (tp *TemplatePattern) Validate() error {
	if tp.ID == "" {
		return fmt.Errorf("template pattern without id")
	}
	if tp.Level == "" {
		return fmt.Errorf("template pattern %s: missing level", tp.ID)
	}
	if len(tp.Subjects) == 0 {
		return fmt.Errorf("template pattern %s: no candidate subjects", tp.ID)
	}
	for _, subj := range tp.Subjects {
		if _, err := grammar.ParsePerson(subj); err != nil {
			return fmt.Errorf("template pattern %s: %w", tp.ID, err)
		}
	}
	if tp.Requirements.Valency != nil && *tp.Requirements.Valency != "" {
		if err := tp.Requirements.Valency.Validate(); err != nil {
			return fmt.Errorf("template pattern %s: %w", tp.ID, err)
		}
	}
	return nil
}

// LoadTemplatePatterns reads a template catalog file containing a plain
// JSON array of patterns.
func LoadTemplatePatterns(path string) ([]*TemplatePattern, error) {
	isFile, err := fs.IsFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to test templates file %s: %w", path, err)
	}
	if !isFile {
		return nil, fmt.Errorf("templates file %s not found", path)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates file %s: %w", path, err)
	}
	var patterns []*TemplatePattern
	if err := sonic.Unmarshal(raw, &patterns); err != nil {
		return nil, fmt.Errorf("failed to decode templates file %s: %w", path, err)
	}
	ids := make(map[string]bool, len(patterns))
	for _, pattern := range patterns {
		if err := pattern.Validate(); err != nil {
			return nil, fmt.Errorf("invalid template pattern: %w", err)
		}
		if ids[pattern.ID] {
			return nil, fmt.Errorf("duplicate template pattern %s", pattern.ID)
		}
		ids[pattern.ID] = true
	}
	return patterns, nil
}
