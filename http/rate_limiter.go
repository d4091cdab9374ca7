package http

import (
	"sync"
	"time"
)

// Buckets untouched for this many windows are evicted.
const idleWindows = 60

type window struct {
	remaining int
	resetAt   time.Time
}

// RateLimiter gives each client capacity requests per fixed window.
type RateLimiter struct {
	mu       sync.Mutex
	capacity int
	period   time.Duration
	windows  map[string]*window
	now      func() time.Time

	done     chan struct{}
	stopOnce sync.Once
}

func NewRateLimiter(capacity int, period time.Duration) *RateLimiter {
	rl := &RateLimiter{
		capacity: capacity,
		period:   period,
		windows:  make(map[string]*window),
		now:      time.Now,
		done:     make(chan struct{}),
	}
	go rl.evictLoop()
	return rl
}

func (r *RateLimiter) evictLoop() {
	ticker := time.NewTicker(r.period * idleWindows / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.evictIdle()
		case <-r.done:
			return
		}
	}
}

func (r *RateLimiter) evictIdle() {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.period * idleWindows)
	for client, w := range r.windows {
		if w.resetAt.Before(cutoff) {
			delete(r.windows, client)
		}
	}
}

// Stop ends the eviction goroutine. Safe to call more than once.
func (r *RateLimiter) Stop() {
	r.stopOnce.Do(func() { close(r.done) })
}

// Allow spends one request from the client's window. When the window is
// exhausted it returns false and the time left until it resets.
func (r *RateLimiter) Allow(client string) (bool, time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	w, ok := r.windows[client]
	if !ok || !now.Before(w.resetAt) {
		w = &window{remaining: r.capacity, resetAt: now.Add(r.period)}
		r.windows[client] = w
	}

	if w.remaining == 0 {
		return false, w.resetAt.Sub(now)
	}
	w.remaining--
	return true, 0
}
