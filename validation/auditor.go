// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2025 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

// Package validation audits loaded verb and template catalogs before
// they are served to learners. The checks go beyond per-record
// integrity: they exercise the actual conjugation, selection and
// sentence generation paths and report anything a learner could run
// into as an error, and data hygiene issues as warnings.
package validation

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/czcorpus/satzgen/exercise"
	"github.com/czcorpus/satzgen/grammar"
	"github.com/czcorpus/satzgen/lexicon"
	"golang.org/x/sync/errgroup"
)

const (
	// DfltSelectionAttempts is the number of random verb selections the
	// auditor performs to prove that frozen verbs never surface.
	DfltSelectionAttempts = 10000

	// generationCycles is the number of full select-and-generate rounds
	// performed against the catalog.
	generationCycles = 100

	minFixedExamples = 3
	maxFixedExamples = 5

	ctxCheckInterval = 1024
)

// Auditor runs all catalog checks. Level is the CEFR level the
// selection and generation probes operate at; it should match the
// level the service offers by default. Seed and SelectionAttempts
// may be overridden before calling Run.
type Auditor struct {
	Catalog           *lexicon.Catalog
	Patterns          []*exercise.TemplatePattern
	ActiveVerbs       []string
	Level             string
	Seed              int64
	SelectionAttempts int
}

func NewAuditor(
	catalog *lexicon.Catalog,
	patterns []*exercise.TemplatePattern,
	activeVerbs []string,
	level string,
) *Auditor {
	return &Auditor{
		Catalog:           catalog,
		Patterns:          patterns,
		ActiveVerbs:       activeVerbs,
		Level:             level,
		Seed:              time.Now().UnixNano(),
		SelectionAttempts: DfltSelectionAttempts,
	}
}

// probeArguments builds plausible sentence arguments for a verb so a
// generation attempt fails only for the reason under test.
func probeArguments(verb *lexicon.Verb) (subject string, objects []string) {
	subject = "ich"
	if verb.Impersonal {
		subject = string(grammar.PersonEs)
	}
	switch verb.Valency {
	case lexicon.CaseDativ:
		objects = []string{"mir"}
	case lexicon.CaseAkkusativ:
		objects = []string{"zehn Euro"}
	}
	return
}

// checkFrozenVerbs verifies that every frozen verb carries enough
// pre-authored examples and that the generator refuses it with an
// error naming the frozen state.
func (auditor *Auditor) checkFrozenVerbs(report *Report) {
	for _, verb := range auditor.Catalog.Frozen() {
		numExamples := len(verb.FixedExamples)
		if numExamples < minFixedExamples {
			report.AddError(
				"frozen verb %s has %d fixed examples, expected %d-%d",
				verb.Infinitive, numExamples, minFixedExamples, maxFixedExamples)

		} else if numExamples > maxFixedExamples {
			report.AddWarning(
				"frozen verb %s has %d fixed examples, expected %d-%d",
				verb.Infinitive, numExamples, minFixedExamples, maxFixedExamples)
		}

		subject, objects := probeArguments(verb)
		sentence, err := grammar.GenerateSentence(subject, verb, objects, nil, nil)
		if err == nil {
			report.AddError(
				"frozen verb %s produced a sentence: %s", verb.Infinitive, sentence)

		} else if !strings.Contains(strings.ToLower(err.Error()), "frozen") {
			report.AddError(
				"frozen verb %s was rejected for an unexpected reason: %s",
				verb.Infinitive, err)
		}
	}
}

// checkFrozenSelection draws verbs the way the exercise selector does
// and fails if a frozen verb ever comes up.
func (auditor *Auditor) checkFrozenSelection(ctx context.Context, report *Report) error {
	rng := rand.New(rand.NewSource(auditor.Seed))
	for i := 0; i < auditor.SelectionAttempts; i++ {
		if i%ctxCheckInterval == 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}
		sel, ok := exercise.SelectVerb(
			rng, auditor.Catalog.Verbs(), auditor.ActiveVerbs, auditor.Level,
			true, 0.5, auditor.Patterns)
		if ok && sel.Verb.IsFrozen() {
			report.AddError(
				"frozen verb %s selected for generation (attempt %d)",
				sel.Verb.Infinitive, i+1)
			return nil
		}
	}
	return nil
}

// checkGeneratability runs full select-and-generate rounds and requires
// every selected verb to yield a non-empty sentence.
func (auditor *Auditor) checkGeneratability(report *Report) {
	rng := rand.New(rand.NewSource(auditor.Seed + 1))
	var numGenerated int
	for i := 0; i < generationCycles; i++ {
		sel, ok := exercise.SelectVerb(
			rng, auditor.Catalog.Verbs(), auditor.ActiveVerbs, auditor.Level,
			true, 0.5, auditor.Patterns)
		if !ok {
			continue
		}
		inst := exercise.GenerateForVerb(rng, sel.Verb, auditor.Level, auditor.Patterns, "")
		if inst == nil {
			report.AddError(
				"selected verb %s yielded no exercise at level %s",
				sel.Verb.Infinitive, auditor.Level)
			continue
		}
		solution, err := inst.Solution()
		if err != nil {
			report.AddError(
				"exercise for %s has no solution: %s", sel.Verb.Infinitive, err)
			continue
		}
		if strings.TrimSpace(solution) == "" {
			report.AddError("exercise for %s produced an empty sentence", sel.Verb.Infinitive)
			continue
		}
		numGenerated++
	}
	if numGenerated == 0 && auditor.Catalog.Size() > 0 {
		report.AddError("no exercise could be generated at level %s", auditor.Level)
	}
}

// checkConjugation conjugates every verb for every grammatical person.
func (auditor *Auditor) checkConjugation(report *Report) {
	for _, verb := range auditor.Catalog.Verbs() {
		for _, person := range grammar.Persons {
			form, err := grammar.Conjugate(verb, person)
			if err != nil {
				report.AddError("failed to conjugate %s for %s: %s", verb.Infinitive, person, err)
				continue
			}
			if form == "" {
				report.AddError("conjugating %s for %s gives an empty form", verb.Infinitive, person)
			}
		}
	}
}

// checkActiveList validates the curated active verb list against the
// catalog. Unknown and duplicate entries are errors; entries a learner
// will rarely or never see at the audit level are warnings.
func (auditor *Auditor) checkActiveList(report *Report) {
	seen := make(map[string]bool, len(auditor.ActiveVerbs))
	for _, infinitive := range auditor.ActiveVerbs {
		if seen[infinitive] {
			report.AddError("duplicate entry %s in the active verb list", infinitive)
			continue
		}
		seen[infinitive] = true
		verb, ok := auditor.Catalog.Get(infinitive)
		if !ok {
			report.AddError("active verb %s not found in the catalog", infinitive)
			continue
		}
		if verb.IsFrozen() {
			report.AddWarning(
				"frozen verb %s is listed as active and will never be selected", infinitive)
		}
		if !verb.HasLevel(auditor.Level) {
			report.AddWarning(
				"active verb %s is not available at level %s", infinitive, auditor.Level)
		}
	}
}

// checkRecordHygiene covers data issues the basic record validation
// does not see - mismatched reflexive particles, separable verbs
// without a prefix, argument pools which cannot satisfy the verb's
// declared requirements.
func (auditor *Auditor) checkRecordHygiene(report *Report) {
	for _, verb := range auditor.Catalog.Verbs() {
		hasParticle := strings.HasPrefix(verb.Infinitive, "sich ")
		if hasParticle && !verb.Reflexive {
			report.AddWarning(
				"verb %s carries the particle 'sich' but is not flagged reflexive",
				verb.Infinitive)
		}
		if !hasParticle && verb.Reflexive {
			report.AddWarning(
				"verb %s is flagged reflexive but its infinitive lacks the particle 'sich'",
				verb.Infinitive)
		}
		if verb.Separable && verb.Prefix == "" {
			report.AddError("separable verb %s has no prefix", verb.Infinitive)
		}
		for _, c := range verb.RequiredObjects {
			if len(grammar.FilterByCase(verb.AllowedObjects, c)) == 0 {
				report.AddError(
					"verb %s requires a %s object but its object pool provides none",
					verb.Infinitive, c.Label())
			}
		}
		if verb.Preposition != "" {
			for _, phrase := range verb.AllowedPrepositionalObjects {
				if first, _, _ := strings.Cut(phrase, " "); first != verb.Preposition {
					report.AddWarning(
						"prepositional phrase %q of %s does not start with %q",
						phrase, verb.Infinitive, verb.Preposition)
				}
			}
		}
	}
}

// Run executes all checks and collects their findings into a single
// report. The independent check groups run concurrently; an error is
// returned only when the audit itself could not finish.
func (auditor *Auditor) Run(ctx context.Context) (*Report, error) {
	report := new(Report)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		auditor.checkFrozenVerbs(report)
		return nil
	})
	eg.Go(func() error {
		auditor.checkRecordHygiene(report)
		return nil
	})
	eg.Go(func() error {
		auditor.checkActiveList(report)
		return nil
	})
	eg.Go(func() error {
		auditor.checkConjugation(report)
		return nil
	})
	eg.Go(func() error {
		auditor.checkGeneratability(report)
		return nil
	})
	eg.Go(func() error {
		return auditor.checkFrozenSelection(egCtx, report)
	})
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("failed to finish catalog audit: %w", err)
	}
	return report, nil
}
