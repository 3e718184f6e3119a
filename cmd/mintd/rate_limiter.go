// rate_limiter.go - Rate limiting for the proving service
package main

import (
	"sync"
	"time"
)

// RateLimiter implements a simple token bucket rate limiter
type RateLimiter struct {
	mu           sync.Mutex
	tokens       int
	maxTokens    int
	refillRate   int
	lastRefill   time.Time
	refillPeriod time.Duration
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(maxTokens int, refillRate int, refillPeriod time.Duration) *RateLimiter {
	return &RateLimiter{
		tokens:       maxTokens,
		maxTokens:    maxTokens,
		refillRate:   refillRate,
		lastRefill:   time.Now(),
		refillPeriod: refillPeriod,
	}
}

// Allow checks if a request is allowed and consumes a token if so
func (rl *RateLimiter) Allow() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	refillCount := int(now.Sub(rl.lastRefill) / rl.refillPeriod)
	if refillCount > 0 {
		rl.tokens += refillCount * rl.refillRate
		if rl.tokens > rl.maxTokens {
			rl.tokens = rl.maxTokens
		}
		rl.lastRefill = now
	}

	if rl.tokens > 0 {
		rl.tokens--
		return true
	}
	return false
}

// Tokens returns the current number of available tokens
func (rl *RateLimiter) Tokens() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return rl.tokens
}

// ClientRateLimiter manages rate limiting per client address
type ClientRateLimiter struct {
	mu           sync.Mutex
	limiters     map[string]*RateLimiter
	maxTokens    int
	refillRate   int
	refillPeriod time.Duration
}

// NewClientRateLimiter creates a new per-client rate limiter
func NewClientRateLimiter(maxTokens int, refillRate int, refillPeriod time.Duration) *ClientRateLimiter {
	return &ClientRateLimiter{
		limiters:     make(map[string]*RateLimiter),
		maxTokens:    maxTokens,
		refillRate:   refillRate,
		refillPeriod: refillPeriod,
	}
}

// Allow checks if a request from a client is allowed
func (crl *ClientRateLimiter) Allow(clientID string) bool {
	crl.mu.Lock()
	limiter, exists := crl.limiters[clientID]
	if !exists {
		limiter = NewRateLimiter(crl.maxTokens, crl.refillRate, crl.refillPeriod)
		crl.limiters[clientID] = limiter
	}
	crl.mu.Unlock()

	return limiter.Allow()
}
