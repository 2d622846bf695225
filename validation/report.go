// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2025 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package validation

import (
	"fmt"
	"sync"
)

// Report collects findings of a catalog audit. Errors make the audit
// fail, warnings are hygiene issues worth fixing but not blocking.
// The collecting methods are safe for concurrent use.
type Report struct {
	mu       sync.Mutex
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (rep *Report) AddError(format string, args ...any) {
	rep.mu.Lock()
	defer rep.mu.Unlock()
	rep.Errors = append(rep.Errors, fmt.Sprintf(format, args...))
}

func (rep *Report) AddWarning(format string, args ...any) {
	rep.mu.Lock()
	defer rep.mu.Unlock()
	rep.Warnings = append(rep.Warnings, fmt.Sprintf(format, args...))
}

func (rep *Report) OK() bool {
	rep.mu.Lock()
	defer rep.mu.Unlock()
	return len(rep.Errors) == 0
}
