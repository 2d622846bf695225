// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2025 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package lexicon

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/rs/zerolog/log"
)

// LoadVerbs reads a verb catalog file. The file contains a plain JSON
// array of verb entries.
func LoadVerbs(path string) (*Catalog, error) {
	isFile, err := fs.IsFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to test verbs file %s: %w", path, err)
	}
	if !isFile {
		return nil, fmt.Errorf("verbs file %s not found", path)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load verbs file %s: %w", path, err)
	}
	var verbs []*Verb
	if err := sonic.Unmarshal(raw, &verbs); err != nil {
		return nil, fmt.Errorf("failed to decode verbs file %s: %w", path, err)
	}
	return NewCatalog(verbs)
}

type activeVerbsFile struct {
	ActiveVerbs []string `json:"active_verbs"`
}

// LoadActiveVerbs reads the list of infinitives a learner currently
// drills. Entries not present in the catalog are skipped with a
// warning so a stale list cannot break sentence generation.
func LoadActiveVerbs(path string, catalog *Catalog) ([]string, error) {
	if path == "" {
		return []string{}, nil
	}
	isFile, err := fs.IsFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to test active verbs file %s: %w", path, err)
	}
	if !isFile {
		return nil, fmt.Errorf("active verbs file %s not found", path)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load active verbs file %s: %w", path, err)
	}
	var data activeVerbsFile
	if err := sonic.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode active verbs file %s: %w", path, err)
	}
	ans := make([]string, 0, len(data.ActiveVerbs))
	for _, infinitive := range data.ActiveVerbs {
		if !catalog.Contains(infinitive) {
			log.Warn().
				Str("verb", infinitive).
				Msg("ignoring unknown verb in the active list")
			continue
		}
		ans = append(ans, infinitive)
	}
	return ans, nil
}

// LoadCatalog obtains the verb catalog either from the configured
// database or from the verbs file. The database source wins when both
// are available.
func LoadCatalog(conf *Conf) (*Catalog, error) {
	if conf.DB != nil && !conf.DB.IsZero() {
		db, err := OpenDB(conf.DB)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to verb database: %w", err)
		}
		defer db.Close()
		catalog, err := NewVerbsTable(db, conf.DB).LoadAll()
		if err != nil {
			return nil, err
		}
		log.Info().Int("numVerbs", catalog.Size()).Msg("loaded verb catalog from database")
		return catalog, nil
	}
	catalog, err := LoadVerbs(conf.VerbsPath)
	if err != nil {
		return nil, err
	}
	log.Info().
		Int("numVerbs", catalog.Size()).
		Str("path", conf.VerbsPath).
		Msg("loaded verb catalog")
	return catalog, nil
}
