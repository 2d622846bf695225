// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2025 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package server

import (
	"testing"

	"github.com/czcorpus/satzgen/config"
	"github.com/stretchr/testify/assert"
)

func TestLimiterNoLimitsAdmitsAll(t *testing.T) {
	limiter := newIPRateLimiter(nil)
	for i := 0; i < 100; i++ {
		assert.True(t, limiter.allow("192.168.1.10"))
	}
}

func TestLimiterBlocksAboveBurst(t *testing.T) {
	limiter := newIPRateLimiter([]config.Limit{
		{ReqPerTimeThreshold: 1, ReqCheckingIntervalSecs: 3600, BurstLimit: 2},
	})
	assert.True(t, limiter.allow("192.168.1.10"))
	assert.True(t, limiter.allow("192.168.1.10"))
	assert.False(t, limiter.allow("192.168.1.10"))
}

func TestLimiterKeepsClientsApart(t *testing.T) {
	limiter := newIPRateLimiter([]config.Limit{
		{ReqPerTimeThreshold: 1, ReqCheckingIntervalSecs: 3600, BurstLimit: 1},
	})
	assert.True(t, limiter.allow("192.168.1.10"))
	assert.False(t, limiter.allow("192.168.1.10"))
	assert.True(t, limiter.allow("192.168.1.20"))
}
