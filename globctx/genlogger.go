// Copyright 2022 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2022 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2022 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package globctx

import (
	"time"

	"github.com/czcorpus/satzgen/reporting"
	"github.com/rs/zerolog/log"
)

type GenerationLogger struct {
	tDBWriter reporting.ReportingWriter
}

// Log logs a single exercise generation using application logging
// (zerolog) and also by sending data to a monitoring module
// (currently TimescaleDB).
func (gl *GenerationLogger) Log(
	level string,
	verb string,
	templateID string,
	fromWiderPool bool,
	procTime time.Duration,
	status int,
) {
	rec := &reporting.GenerationReport{
		DateTime:      time.Now(),
		Level:         level,
		Verb:          verb,
		TemplateID:    templateID,
		FromWiderPool: fromWiderPool,
		ProcTime:      procTime.Seconds(),
		Status:        status,
	}
	gl.tDBWriter.Write(rec)
	log.Info().
		Str("level", level).
		Str("verb", verb).
		Str("templateId", templateID).
		Bool("fromWiderPool", fromWiderPool).
		Float64("procTime", rec.ProcTime).
		Int("status", status).
		Msg("generated exercise")
}

// NewGenerationLogger creates a new exercise generation logging service
func NewGenerationLogger(tDBWriter reporting.ReportingWriter) *GenerationLogger {
	return &GenerationLogger{
		tDBWriter: tDBWriter,
	}
}
