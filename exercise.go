// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2025 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/czcorpus/satzgen/config"
	"github.com/czcorpus/satzgen/exercise"
	"github.com/czcorpus/satzgen/lexicon"
	"github.com/czcorpus/satzgen/server"
	"github.com/czcorpus/satzgen/trainer"

	"github.com/rs/zerolog/log"
)

func displayExercise(inst *exercise.Instance, showMeaning bool) {
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Printf("Verb: %s\n", inst.Verb.Infinitive)
	if showMeaning && inst.Verb.EnglishMeaning != "" {
		fmt.Printf("Meaning: %s\n", inst.Verb.EnglishMeaning)
	}
	fmt.Println("\nHinweise:")
	for _, hint := range inst.Hints {
		fmt.Printf("  - %s\n", hint)
	}
	if inst.Description != "" {
		fmt.Printf("\n%s\n", inst.Description)
	}
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("\nDrücke ENTER, um die Lösung zu sehen...")
}

// displayFixedExamples presents the pre-authored sentences of a verb
// locked out of free generation.
func displayFixedExamples(verb *lexicon.Verb, showMeaning bool) {
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Printf("Verb: %s (nur feste Beispiele)\n", verb.Infinitive)
	if showMeaning && verb.EnglishMeaning != "" {
		fmt.Printf("Meaning: %s\n", verb.EnglishMeaning)
	}
	fmt.Println("\nBeispiele:")
	for _, example := range verb.FixedExamples {
		fmt.Printf("  - %s\n", example)
	}
	fmt.Println(strings.Repeat("=", 60))
}

// runExercise presents a single exercise in the terminal and reveals
// the expected sentence once the user confirms.
func runExercise(conf *config.Configuration, verb, subject string) {
	ctx := context.TODO()
	tDBWriter := server.CreateTDBWriter(ctx, conf.Reporting, conf.TimezoneLocation())
	globalCtx, err := server.CreateGlobalCtx(ctx, conf, tDBWriter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %s", err)
		os.Exit(1)
	}
	gen := globalCtx.Generator
	level := gen.DefaultLevel()

	var inst *exercise.Instance
	if verb != "" {
		inst, err = gen.ForVerb(verb, level, subject)
		if err != nil {
			if entry, ok := gen.Catalog().Get(verb); ok && entry.IsFrozen() {
				displayFixedExamples(entry, gen.MeaningShown())
				return
			}
			fmt.Printf("Keine passende Übung für '%s' gefunden.\n", verb)
			return
		}

	} else {
		inst, err = gen.Next(trainer.NextRequest{Subject: subject})
		if err != nil {
			if len(gen.Catalog().ByLevel(level)) == 0 {
				fmt.Printf("Keine %s-Verben gefunden.\n", level)

			} else {
				fmt.Println("Keine Verben mit passenden Übungen gefunden.")
			}
			return
		}
	}

	displayExercise(inst, gen.MeaningShown())
	bufio.NewReader(os.Stdin).ReadString('\n')
	solution, err := inst.Solution()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build the solution")
	}
	fmt.Printf("\nLösung:\n%s\n\n", solution)
}
