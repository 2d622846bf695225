// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2025 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package exstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/czcorpus/satzgen/exercise"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

const (
	defaultRedisPort      = 6379
	expireChannelCapacity = 100
)

// Redis keeps exercises in a Redis instance so solutions survive
// process restarts and can be served by multiple replicas. Writes are
// synchronous - a learner may ask for the solution right after
// receiving the exercise. Only TTL refreshes on read are queued to a
// background goroutine.
type Redis struct {
	ctx         context.Context
	conf        *Conf
	redisClient *redis.Client
	expireQueue chan string
}

func (store *Redis) storageKey(id string) string {
	return fmt.Sprintf("satzgen:exercise:%s", id)
}

func (store *Redis) Set(inst *exercise.Instance) error {
	raw, err := sonic.Marshal(inst)
	if err != nil {
		return fmt.Errorf("failed to store exercise %s: %w", inst.ID, err)
	}
	err = store.redisClient.Set(store.ctx, store.storageKey(inst.ID), raw, store.conf.TTL()).Err()
	if err != nil {
		return fmt.Errorf("failed to store exercise %s: %w", inst.ID, err)
	}
	return nil
}

func (store *Redis) Get(id string) (*exercise.Instance, error) {
	key := store.storageKey(id)
	val, err := store.redisClient.Get(store.ctx, key).Result()
	if err == redis.Nil {
		return nil, ErrNotFound

	} else if err != nil {
		return nil, fmt.Errorf("exercise store access error: %w", err)
	}
	select {
	case store.expireQueue <- key: // write OK
	default:
		log.Error().
			Str("key", key).
			Err(fmt.Errorf("exercise store expire queue full")).
			Msg("failed to refresh TTL for exercise entry")
	}
	var ans exercise.Instance
	if err := sonic.Unmarshal([]byte(val), &ans); err != nil {
		return nil, fmt.Errorf("exercise store access error: %w", err)
	}
	return &ans, nil
}

func (store *Redis) goRunExpireWriter() {
	go func() {
		for {
			select {
			case <-store.ctx.Done():
				log.Warn().Msg("closing exercise store expire queue")
				return
			case key := <-store.expireQueue:
				_, err := store.redisClient.Expire(store.ctx, key, store.conf.TTL()).Result()
				if err != nil {
					log.Error().
						Err(err).
						Str("key", key).
						Msg("exercise store - failed to execute EXPIRE")
				}
			}
		}
	}()
}

// NewRedis creates a Redis-backed exercise store and starts its
// background TTL refresher.
func NewRedis(ctx context.Context, conf *Conf) *Redis {
	addr := conf.RedisAddr
	addrElms := strings.Split(addr, ":")
	if len(addrElms) == 1 {
		addr = fmt.Sprintf("%s:%d", addr, defaultRedisPort)
		log.Warn().Msgf("Exercise store: Redis port not specified, using %d", defaultRedisPort)
	}

	ans := &Redis{
		ctx:  ctx,
		conf: conf,
		redisClient: redis.NewClient(&redis.Options{
			Addr: addr,
			DB:   conf.RedisDB,
		}),
		expireQueue: make(chan string, expireChannelCapacity),
	}
	ans.goRunExpireWriter()
	return ans
}
