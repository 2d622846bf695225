// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2025 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package reporting

import (
	"encoding/json"
	"time"

	"github.com/czcorpus/cnc-gokit/util"
	"github.com/czcorpus/hltscl"
)

// GenerationReport describes one exercise generation attempt. Failed
// selections are reported too - a learner-facing surface repeatedly
// finding no exercise is a catalog problem worth spotting early.
type GenerationReport struct {
	DateTime      time.Time
	Level         string
	Verb          string
	TemplateID    string
	FromWiderPool bool
	ProcTime      float64
	Status        int
}

func (report *GenerationReport) ToTimescaleDB(tableWriter *hltscl.TableWriter) *hltscl.Entry {
	return tableWriter.NewEntry(report.DateTime).
		Str("level", report.Level).
		Str("verb", report.Verb).
		Str("template_id", report.TemplateID).
		Int("from_wider_pool", util.Ternary(report.FromWiderPool, 1, 0)).
		Float("proc_time", report.ProcTime).
		Int("status", report.Status)
}

func (report *GenerationReport) GetTime() time.Time {
	return report.DateTime
}

func (report *GenerationReport) GetTableName() string {
	return GenerationMonitoringTable
}

func (report *GenerationReport) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		DateTime      time.Time `json:"dateTime"`
		Level         string    `json:"level"`
		Verb          string    `json:"verb"`
		TemplateID    string    `json:"templateId"`
		FromWiderPool bool      `json:"fromWiderPool"`
		ProcTime      float64   `json:"procTime"`
		Status        int       `json:"status"`
	}{
		DateTime:      report.DateTime,
		Level:         report.Level,
		Verb:          report.Verb,
		TemplateID:    report.TemplateID,
		FromWiderPool: report.FromWiderPool,
		ProcTime:      report.ProcTime,
		Status:        report.Status,
	})
}
