package service

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// LoginLimit bounds failed login attempts per username.
type LoginLimit struct {
	Attempts int
	Window   time.Duration
}

// DefaultLoginLimit allows 5 failed attempts per minute.
var DefaultLoginLimit = LoginLimit{Attempts: 5, Window: time.Minute}

// attemptLimiter hands out one token bucket per username. Only failures
// spend tokens, a success forgets the bucket.
type attemptLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
	now      func() time.Time
}

func newAttemptLimiter(l LoginLimit, now func() time.Time) *attemptLimiter {
	if l.Attempts <= 0 || l.Window <= 0 {
		l = DefaultLoginLimit
	}
	if now == nil {
		now = time.Now
	}
	return &attemptLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(float64(l.Attempts) / l.Window.Seconds()),
		burst:    l.Attempts,
		now:      now,
	}
}

func (a *attemptLimiter) get(key string) *rate.Limiter {
	lim, ok := a.limiters[key]
	if !ok {
		lim = rate.NewLimiter(a.rate, a.burst)
		a.limiters[key] = lim
	}
	return lim
}

// blocked reports whether key has no attempts left right now.
func (a *attemptLimiter) blocked(key string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	lim, ok := a.limiters[key]
	if !ok {
		return false
	}
	return lim.TokensAt(a.now()) < 1
}

func (a *attemptLimiter) fail(key string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.get(key).AllowN(a.now(), 1)
}

func (a *attemptLimiter) reset(key string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	delete(a.limiters, key)
}
