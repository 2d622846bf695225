// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2025 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package reporting

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerationReportJSON(t *testing.T) {
	report := &GenerationReport{
		DateTime:      time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
		Level:         "A2",
		Verb:          "sich freuen",
		TemplateID:    "reflexive_prep_a2",
		FromWiderPool: true,
		ProcTime:      0.004,
		Status:        200,
	}
	raw, err := report.MarshalJSON()
	assert.NoError(t, err)

	var decoded map[string]any
	assert.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "A2", decoded["level"])
	assert.Equal(t, "sich freuen", decoded["verb"])
	assert.Equal(t, "reflexive_prep_a2", decoded["templateId"])
	assert.Equal(t, true, decoded["fromWiderPool"])
	assert.Equal(t, 200.0, decoded["status"])
}

func TestGenerationReportTableName(t *testing.T) {
	report := &GenerationReport{DateTime: time.Now()}
	assert.Equal(t, GenerationMonitoringTable, report.GetTableName())
	assert.Equal(t, report.DateTime, report.GetTime())
}
