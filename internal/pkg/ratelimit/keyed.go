// Package ratelimit keeps one token bucket per key (client IP).
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/light-bringer/autocat-service/internal/pkg/clock"
)

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Keyed allows at most max events per key in a burst, refilling one token
// every window/max. Keys idle for longer than window are dropped.
type Keyed struct {
	mu      sync.Mutex
	clock   clock.Clock
	every   rate.Limit
	burst   int
	idle    time.Duration
	entries map[string]*entry
}

// NewKeyed builds a limiter for max events per window.
func NewKeyed(max int, window time.Duration, clk clock.Clock) *Keyed {
	return &Keyed{
		clock:   clk,
		every:   rate.Every(window / time.Duration(max)),
		burst:   max,
		idle:    window,
		entries: make(map[string]*entry),
	}
}

// Allow consumes one token for key and reports whether it was available.
func (k *Keyed) Allow(key string) bool {
	now := k.clock.Now()

	k.mu.Lock()
	defer k.mu.Unlock()

	k.evict(now)

	e, ok := k.entries[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(k.every, k.burst)}
		k.entries[key] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}

// Len is the number of tracked keys.
func (k *Keyed) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.entries)
}

func (k *Keyed) evict(now time.Time) {
	for key, e := range k.entries {
		if now.Sub(e.lastSeen) > k.idle {
			delete(k.entries, key)
		}
	}
}
