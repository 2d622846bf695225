// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2025 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package trainer

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/czcorpus/satzgen/exercise"
	"github.com/czcorpus/satzgen/grammar"
	"github.com/czcorpus/satzgen/lexicon"
)

var (
	// ErrNoExercise means the verb/level/pool combination cannot
	// produce any exercise. This is an expected outcome, callers
	// should offer the user an alternative.
	ErrNoExercise = errors.New("no exercise available")

	ErrUnknownVerb = errors.New("unknown verb")
)

// NextRequest carries per-request overrides for exercise selection.
// Zero values keep the configured behavior.
type NextRequest struct {
	Level string `json:"level"`

	// Subject fixes the sentence subject instead of sampling it.
	Subject string `json:"subject"`

	// OnlyActive, if set, overrides the configured pool restriction.
	OnlyActive *bool `json:"onlyActive"`

	// ActiveVerbs, if set, replaces the configured active practice
	// list for this one request. Unknown infinitives are ignored.
	ActiveVerbs []string `json:"activeVerbs"`
}

// ConjugatedForm is a single row of a conjugation table.
type ConjugatedForm struct {
	Person string `json:"person"`
	Form   string `json:"form"`
}

// Generator wires the verb catalog, template patterns and the active
// practice list into a single exercise producing facade shared by the
// console and the HTTP surface. All methods are safe for concurrent
// use; the catalogs may be swapped at runtime via Reload.
type Generator struct {
	conf     *Conf
	catalog  *lexicon.Catalog
	patterns []*exercise.TemplatePattern
	active   []string
	rng      *rand.Rand
	mu       sync.Mutex
}

func filterKnown(infinitives []string, catalog *lexicon.Catalog) []string {
	ans := make([]string, 0, len(infinitives))
	for _, infinitive := range infinitives {
		if catalog.Contains(infinitive) {
			ans = append(ans, infinitive)
		}
	}
	return ans
}

// Next selects a verb and produces the next exercise for it.
func (gen *Generator) Next(req NextRequest) (*exercise.Instance, error) {
	gen.mu.Lock()
	defer gen.mu.Unlock()
	level := req.Level
	if level == "" {
		level = gen.conf.DefaultLevel
	}
	active := gen.active
	if req.ActiveVerbs != nil {
		active = filterKnown(req.ActiveVerbs, gen.catalog)
	}
	useWiderPool := !gen.conf.OnlyActiveVerbs
	if req.OnlyActive != nil {
		useWiderPool = !*req.OnlyActive
	}
	sel, ok := exercise.SelectVerb(
		gen.rng,
		gen.catalog.Verbs(),
		active,
		level,
		useWiderPool,
		gen.conf.ActiveWeight,
		gen.patterns,
	)
	if !ok {
		return nil, ErrNoExercise
	}
	inst := exercise.GenerateForVerb(gen.rng, sel.Verb, level, gen.patterns, req.Subject)
	if inst == nil {
		return nil, ErrNoExercise
	}
	inst.FromWiderPool = sel.FromWiderPool
	return inst, nil
}

// ForVerb produces an exercise for one specific verb. Frozen verbs are
// refused; their fixed examples are available via the verb record.
func (gen *Generator) ForVerb(infinitive, level, subject string) (*exercise.Instance, error) {
	gen.mu.Lock()
	defer gen.mu.Unlock()
	verb, ok := gen.catalog.Get(infinitive)
	if !ok {
		return nil, fmt.Errorf("cannot generate exercise for %s: %w", infinitive, ErrUnknownVerb)
	}
	if verb.IsFrozen() {
		return nil, fmt.Errorf("cannot generate exercise for %s: %w", infinitive, grammar.ErrFrozenVerb)
	}
	if level == "" {
		level = gen.conf.DefaultLevel
	}
	inst := exercise.GenerateForVerb(gen.rng, verb, level, gen.patterns, subject)
	if inst == nil {
		return nil, fmt.Errorf("%s at level %s: %w", infinitive, level, ErrNoExercise)
	}
	return inst, nil
}

// Sentence builds a sentence from explicit arguments, validating them
// against the verb's declared requirements.
func (gen *Generator) Sentence(
	subject, infinitive string,
	objects, prepPhrases, timeExprs []string,
) (string, error) {
	gen.mu.Lock()
	verb, ok := gen.catalog.Get(infinitive)
	gen.mu.Unlock()
	if !ok {
		return "", fmt.Errorf("cannot generate sentence for %s: %w", infinitive, ErrUnknownVerb)
	}
	return grammar.GenerateSentence(subject, verb, objects, prepPhrases, timeExprs)
}

// ConjugationTable conjugates the verb for all nine persons in their
// canonical order.
func (gen *Generator) ConjugationTable(infinitive string) ([]ConjugatedForm, error) {
	gen.mu.Lock()
	verb, ok := gen.catalog.Get(infinitive)
	gen.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("cannot conjugate %s: %w", infinitive, ErrUnknownVerb)
	}
	ans := make([]ConjugatedForm, len(grammar.Persons))
	for i, person := range grammar.Persons {
		form, err := grammar.Conjugate(verb, person)
		if err != nil {
			return nil, fmt.Errorf("cannot conjugate %s: %w", infinitive, err)
		}
		ans[i] = ConjugatedForm{Person: string(person), Form: form}
	}
	return ans, nil
}

// Catalog exposes the current verb catalog for listing surfaces.
func (gen *Generator) Catalog() *lexicon.Catalog {
	gen.mu.Lock()
	defer gen.mu.Unlock()
	return gen.catalog
}

// Patterns exposes the current template patterns.
func (gen *Generator) Patterns() []*exercise.TemplatePattern {
	gen.mu.Lock()
	defer gen.mu.Unlock()
	return gen.patterns
}

// ActiveVerbs exposes the current active practice list.
func (gen *Generator) ActiveVerbs() []string {
	gen.mu.Lock()
	defer gen.mu.Unlock()
	return gen.active
}

// MeaningShown tells whether learner-facing surfaces should print
// English meanings.
func (gen *Generator) MeaningShown() bool {
	return gen.conf.MeaningShown()
}

// DefaultLevel provides the level used when a request does not
// specify one.
func (gen *Generator) DefaultLevel() string {
	return gen.conf.DefaultLevel
}

// Reload atomically swaps the catalogs, e.g. after the data files
// changed on disk.
func (gen *Generator) Reload(
	catalog *lexicon.Catalog,
	patterns []*exercise.TemplatePattern,
	active []string,
) {
	gen.mu.Lock()
	defer gen.mu.Unlock()
	gen.catalog = catalog
	gen.patterns = patterns
	gen.active = filterKnown(active, catalog)
}

func NewGenerator(
	conf *Conf,
	catalog *lexicon.Catalog,
	patterns []*exercise.TemplatePattern,
	active []string,
	rng *rand.Rand,
) *Generator {
	return &Generator{
		conf:     conf,
		catalog:  catalog,
		patterns: patterns,
		active:   filterKnown(active, catalog),
		rng:      rng,
	}
}
