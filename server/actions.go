// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2025 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/czcorpus/satzgen/exercise"
	"github.com/czcorpus/satzgen/exstore"
	"github.com/czcorpus/satzgen/globctx"
	"github.com/czcorpus/satzgen/grammar"
	"github.com/czcorpus/satzgen/trainer"
	"github.com/czcorpus/satzgen/validation"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
)

// Actions wraps HTTP handlers of the exercise API. All heavy lifting
// happens in the trainer package; handlers only translate between HTTP
// and generator semantics.
type Actions struct {
	gCtx *globctx.Context
}

// statusForGenError maps generator and grammar errors to HTTP status
// codes. Unknown names yield 404, bad request arguments 400 and
// requests the verb's grammar can never satisfy 422.
func statusForGenError(err error) int {
	switch {
	case errors.Is(err, trainer.ErrUnknownVerb), errors.Is(err, trainer.ErrNoExercise):
		return http.StatusNotFound
	case errors.Is(err, grammar.ErrUnknownPerson):
		return http.StatusBadRequest
	case errors.Is(err, grammar.ErrFrozenVerb),
		errors.Is(err, grammar.ErrImpersonalSubject),
		errors.Is(err, grammar.ErrMissingObject),
		errors.Is(err, grammar.ErrMissingPrepPhrase),
		errors.Is(err, grammar.ErrMissingRequiredCase):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// CreateExercise generates a new exercise and stores it so its
// solution can be fetched later. The request body is optional; an
// empty body applies the configured defaults.
func (a *Actions) CreateExercise(ctx *gin.Context) {
	t0 := time.Now()
	var args trainer.NextRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.BindJSON(&args); err != nil {
			uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
			return
		}
	}
	inst, err := a.gCtx.Generator.Next(args)
	if err != nil {
		status := statusForGenError(err)
		a.gCtx.GenLogger.Log(args.Level, "", "", false, time.Since(t0), status)
		uniresp.RespondWithErrorJSON(ctx, err, status)
		return
	}
	if err := a.gCtx.ExerciseStore.Set(inst); err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	a.gCtx.GenLogger.Log(
		inst.Level, inst.Verb.Infinitive, inst.TemplateID, inst.FromWiderPool,
		time.Since(t0), http.StatusOK)
	uniresp.WriteJSONResponse(ctx.Writer, inst)
}

// ExerciseSolution provides the expected sentence for a previously
// generated exercise.
func (a *Actions) ExerciseSolution(ctx *gin.Context) {
	inst, err := a.gCtx.ExerciseStore.Get(ctx.Param("exerciseId"))
	if err != nil {
		if errors.Is(err, exstore.ErrNotFound) {
			uniresp.RespondWithErrorJSON(ctx, err, http.StatusNotFound)

		} else {
			uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		}
		return
	}
	solution, err := inst.Solution()
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, map[string]any{
		"id":       inst.ID,
		"solution": solution,
	})
}

type sentenceArgs struct {
	Subject              string   `json:"subject"`
	Verb                 string   `json:"verb"`
	Objects              []string `json:"objects"`
	PrepositionalPhrases []string `json:"prepositionalPhrases"`
	TimeExpressions      []string `json:"timeExpressions"`
}

// CreateSentence builds a single sentence from explicit arguments,
// applying the same gate checks exercise generation relies on.
func (a *Actions) CreateSentence(ctx *gin.Context) {
	var args sentenceArgs
	if err := ctx.BindJSON(&args); err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
		return
	}
	sentence, err := a.gCtx.Generator.Sentence(
		args.Subject, args.Verb, args.Objects, args.PrepositionalPhrases, args.TimeExpressions)
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, statusForGenError(err))
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, map[string]any{
		"verb":     args.Verb,
		"sentence": sentence,
	})
}

// Conjugation provides the full present tense table of a verb.
func (a *Actions) Conjugation(ctx *gin.Context) {
	verb := ctx.Param("verb")
	forms, err := a.gCtx.Generator.ConjugationTable(verb)
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, statusForGenError(err))
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, map[string]any{
		"verb":  verb,
		"forms": forms,
	})
}

// VerbList lists catalog infinitives, optionally restricted via the
// `level` query argument. The list keeps German collation order.
func (a *Actions) VerbList(ctx *gin.Context) {
	catalog := a.gCtx.Generator.Catalog()
	names := catalog.Infinitives()
	if level := ctx.Query("level"); level != "" {
		filtered := make([]string, 0, len(names))
		for _, name := range names {
			if verb, ok := catalog.Get(name); ok && verb.HasLevel(level) {
				filtered = append(filtered, name)
			}
		}
		names = filtered
	}
	uniresp.WriteJSONResponse(ctx.Writer, map[string]any{
		"verbs": names,
	})
}

// VerbInfo provides the complete catalog record of a verb, including
// fixed examples of frozen verbs.
func (a *Actions) VerbInfo(ctx *gin.Context) {
	verb, ok := a.gCtx.Generator.Catalog().Get(ctx.Param("verb"))
	if !ok {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer, uniresp.NewActionError("verb not found"), http.StatusNotFound)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, verb)
}

// TemplateList lists loaded template patterns, optionally restricted
// via the `level` query argument.
func (a *Actions) TemplateList(ctx *gin.Context) {
	patterns := a.gCtx.Generator.Patterns()
	if level := ctx.Query("level"); level != "" {
		filtered := make([]*exercise.TemplatePattern, 0, len(patterns))
		for _, pattern := range patterns {
			if pattern.Level == level {
				filtered = append(filtered, pattern)
			}
		}
		patterns = filtered
	}
	uniresp.WriteJSONResponse(ctx.Writer, map[string]any{
		"templates": patterns,
	})
}

// ValidateCatalogs runs the full catalog audit on the currently
// loaded data and provides its findings.
func (a *Actions) ValidateCatalogs(ctx *gin.Context) {
	gen := a.gCtx.Generator
	auditor := validation.NewAuditor(
		gen.Catalog(), gen.Patterns(), gen.ActiveVerbs(), gen.DefaultLevel())
	report, err := auditor.Run(ctx.Request.Context())
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, map[string]any{
		"ok":       report.OK(),
		"errors":   report.Errors,
		"warnings": report.Warnings,
	})
}

func NewActions(gCtx *globctx.Context) *Actions {
	return &Actions{gCtx: gCtx}
}
