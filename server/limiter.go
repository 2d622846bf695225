// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2025 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package server

import (
	"net/http"
	"sync"

	"github.com/czcorpus/satzgen/config"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// ipRateLimiter keeps one token bucket per client IP. With no limits
// configured it admits everything.
type ipRateLimiter struct {
	limits       []config.Limit
	rateLimiters map[string]*rate.Limiter
	mu           sync.Mutex
}

func (irl *ipRateLimiter) allow(clientIP string) bool {
	if len(irl.limits) == 0 {
		return true
	}
	irl.mu.Lock()
	limiter, exists := irl.rateLimiters[clientIP]
	if !exists {
		flimit := irl.limits[0]
		limiter = rate.NewLimiter(
			flimit.NormLimitPerSec(),
			flimit.BurstLimit,
		)
		irl.rateLimiters[clientIP] = limiter
	}
	irl.mu.Unlock()
	return limiter.Allow()
}

func (irl *ipRateLimiter) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		clientIP := ctx.ClientIP()
		if !irl.allow(clientIP) {
			log.Debug().Str("clientIp", clientIP).Msg("limiting client with status 429")
			ctx.AbortWithStatusJSON(
				http.StatusTooManyRequests,
				map[string]string{"status": http.StatusText(http.StatusTooManyRequests)},
			)
			return
		}
		ctx.Next()
	}
}

func newIPRateLimiter(limits []config.Limit) *ipRateLimiter {
	return &ipRateLimiter{
		limits:       limits,
		rateLimiters: make(map[string]*rate.Limiter),
	}
}
