// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2025 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package lexicon

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Conf configures where the verb catalog and its companion files
// are loaded from. The database source, if configured, takes
// precedence over verbsPath.
type Conf struct {
	VerbsPath       string  `json:"verbsPath"`
	TemplatesPath   string  `json:"templatesPath"`
	ActiveVerbsPath string  `json:"activeVerbsPath"`
	DB              *DBConf `json:"db"`
}

func (conf *Conf) Validate(context string) error {
	if conf.VerbsPath == "" && (conf.DB == nil || conf.DB.IsZero()) {
		return fmt.Errorf("%s.verbsPath is missing/empty and no database source is configured", context)
	}
	if conf.TemplatesPath == "" {
		return fmt.Errorf("%s.templatesPath is missing/empty", context)
	}
	if conf.ActiveVerbsPath == "" {
		log.Warn().Msgf(
			"%s.activeVerbsPath not specified - the active pool will be empty and selection will rely on the wider pool",
			context,
		)
	}
	if conf.DB != nil {
		if err := conf.DB.Validate(context + ".db"); err != nil {
			return err
		}
	}
	return nil
}
