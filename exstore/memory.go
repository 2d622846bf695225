// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2025 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package exstore

import (
	"context"
	"time"

	"github.com/czcorpus/cnc-gokit/collections"
	"github.com/czcorpus/satzgen/exercise"
	"github.com/rs/zerolog/log"
)

const memoryCleanupInterval = 10 * time.Minute

type memoryEntry struct {
	inst    *exercise.Instance
	expires time.Time
}

// Memory is an in-process exercise store. Expired entries are dropped
// lazily on access and swept periodically by a background goroutine.
type Memory struct {
	entries *collections.ConcurrentMap[string, memoryEntry]
	ttl     time.Duration
}

func (store *Memory) Set(inst *exercise.Instance) error {
	store.entries.Set(inst.ID, memoryEntry{
		inst:    inst,
		expires: time.Now().Add(store.ttl),
	})
	return nil
}

func (store *Memory) Get(id string) (*exercise.Instance, error) {
	entry, ok := store.entries.GetWithTest(id)
	if !ok {
		return nil, ErrNotFound
	}
	if time.Now().After(entry.expires) {
		store.entries.Delete(id)
		return nil, ErrNotFound
	}
	return entry.inst, nil
}

func (store *Memory) goRunCleanup(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(memoryCleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				expired := make([]string, 0, 10)
				now := time.Now()
				store.entries.ForEach(func(id string, entry memoryEntry, ok bool) {
					if ok && now.After(entry.expires) {
						expired = append(expired, id)
					}
				})
				for _, id := range expired {
					store.entries.Delete(id)
				}
				if len(expired) > 0 {
					log.Debug().
						Int("numRemoved", len(expired)).
						Msg("swept expired exercises from the in-process store")
				}
			}
		}
	}()
}

func NewMemory(ctx context.Context, ttl time.Duration) *Memory {
	store := &Memory{
		entries: collections.NewConcurrentMap[string, memoryEntry](),
		ttl:     ttl,
	}
	store.goRunCleanup(ctx)
	return store
}
