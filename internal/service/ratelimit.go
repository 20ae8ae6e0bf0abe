package service

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// SignInLimiter throttles sign-in attempts per key (usually the client IP).
// It is safe for concurrent use. Idle keys are removed in the background
// until Stop is called.
type SignInLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	limit   rate.Limit
	burst   int
	idle    time.Duration
	done    chan struct{}
	once    sync.Once
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewSignInLimiter allows burst attempts per key, refilling at perSecond.
func NewSignInLimiter(perSecond float64, burst int) *SignInLimiter {
	l := &SignInLimiter{
		clients: make(map[string]*client),
		limit:   rate.Limit(perSecond),
		burst:   burst,
		idle:    10 * time.Minute,
		done:    make(chan struct{}),
	}
	go l.cleanup(5 * time.Minute)
	return l
}

// Allow reports whether key may attempt a sign-in now. Each call consumes
// one token.
func (l *SignInLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = c
	}
	c.lastSeen = time.Now()
	return c.limiter.Allow()
}

// Stop ends the cleanup goroutine.
func (l *SignInLimiter) Stop() {
	l.once.Do(func() { close(l.done) })
}

func (l *SignInLimiter) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			l.mu.Lock()
			cutoff := time.Now().Add(-l.idle)
			for key, c := range l.clients {
				if c.lastSeen.Before(cutoff) {
					delete(l.clients, key)
				}
			}
			l.mu.Unlock()
		}
	}
}
