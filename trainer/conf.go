// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2025 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package trainer

import (
	"fmt"
)

const (
	DfltLevel        = "A2"
	DfltActiveWeight = 0.75
)

// Conf drives exercise selection. The active practice list is
// preferred with probability activeWeight; onlyActiveVerbs restricts
// selection to the active list entirely.
type Conf struct {
	DefaultLevel    string  `json:"defaultLevel"`
	ActiveWeight    float64 `json:"activeWeight"`
	OnlyActiveVerbs bool    `json:"onlyActiveVerbs"`

	// ShowMeaning decides whether learner-facing surfaces print the
	// English meaning along with an exercise. Defaults to true.
	ShowMeaning *bool `json:"showMeaning"`
}

func (conf *Conf) Validate(context string) error {
	if conf.ActiveWeight < 0 || conf.ActiveWeight > 1 {
		return fmt.Errorf("%s.activeWeight must be between 0 and 1", context)
	}
	return nil
}

func (conf *Conf) MeaningShown() bool {
	if conf.ShowMeaning == nil {
		return true
	}
	return *conf.ShowMeaning
}
