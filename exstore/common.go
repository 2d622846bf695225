// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2025 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package exstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/czcorpus/satzgen/exercise"
)

var ErrNotFound = errors.New("exercise not found")

const (
	DfltTTLSecs = 3600
)

// Conf configures where generated exercises are kept between the
// moment they are handed to a learner and the moment the learner asks
// for the solution. With no redisAddr set, an in-process store is used.
type Conf struct {
	RedisAddr string `json:"redisAddr"`
	RedisDB   int    `json:"redisDB"`
	TTLSecs   int    `json:"ttlSecs"`
}

func (conf *Conf) Validate(context string) error {
	if conf.TTLSecs < 0 {
		return fmt.Errorf("%s.ttlSecs must not be negative", context)
	}
	return nil
}

func (conf *Conf) TTL() time.Duration {
	return time.Duration(conf.TTLSecs) * time.Second
}

// Store keeps recently generated exercise instances addressable by
// their ID so the solution can be derived later from the exact
// arguments the learner saw. Entries expire after the configured TTL.
type Store interface {
	Set(inst *exercise.Instance) error
	Get(id string) (*exercise.Instance, error)
}

// NewStore creates a store matching the configuration. A nil conf
// falls back to the in-process store with the default TTL.
func NewStore(ctx context.Context, conf *Conf) Store {
	if conf == nil {
		return NewMemory(ctx, DfltTTLSecs*time.Second)
	}
	if conf.RedisAddr != "" {
		return NewRedis(ctx, conf)
	}
	return NewMemory(ctx, conf.TTL())
}
