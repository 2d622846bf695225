// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2025 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/czcorpus/satzgen/config"
	"github.com/czcorpus/satzgen/server"
	"github.com/czcorpus/satzgen/validation"

	"github.com/rs/zerolog/log"
)

// runValidate audits the configured catalogs and prints all findings.
// The process exits with a non-zero code when the audit finds errors,
// so the action can guard data deployments in CI.
func runValidate(conf *config.Configuration) {
	catalog, patterns, active, err := server.LoadLexicalData(conf)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load data to validate")
	}
	auditor := validation.NewAuditor(catalog, patterns, active, conf.Trainer.DefaultLevel)
	report, err := auditor.Run(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to run the audit")
	}
	for _, msg := range report.Errors {
		fmt.Printf("ERROR: %s\n", msg)
	}
	for _, msg := range report.Warnings {
		fmt.Printf("WARNING: %s\n", msg)
	}
	fmt.Printf(
		"checked %d verbs, %d templates, %d active entries: %d errors, %d warnings\n",
		catalog.Size(), len(patterns), len(active), len(report.Errors), len(report.Warnings))
	if !report.OK() {
		os.Exit(1)
	}
}
