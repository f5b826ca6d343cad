// rate_limiter.go - Per-client request rate limiting

package ratelimit

import (
	"sync"
	"time"
)

// window tracks accepted requests for one client inside the current
// fixed window.
type window struct {
	count int
	start time.Time
}

// ClientLimiter bounds accepted requests per client per fixed window. The
// store is evicting: a background sweep drops clients whose window has
// expired, so the map does not grow unboundedly with unique clients.
type ClientLimiter struct {
	mu       sync.Mutex
	clients  map[string]*window
	limit    int
	interval time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

// NewClientLimiter creates a limiter allowing limit requests per client
// per interval and starts its eviction sweep.
func NewClientLimiter(limit int, interval time.Duration) *ClientLimiter {
	l := &ClientLimiter{
		clients:  make(map[string]*window),
		limit:    limit,
		interval: interval,
		stop:     make(chan struct{}),
	}
	go l.sweep()
	return l
}

// Allow reports whether the client may proceed. When the limit is hit it
// returns false plus the duration until the client's window resets.
func (l *ClientLimiter) Allow(client string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	w, ok := l.clients[client]
	if !ok || now.Sub(w.start) >= l.interval {
		l.clients[client] = &window{count: 1, start: now}
		return true, 0
	}

	if w.count >= l.limit {
		return false, w.start.Add(l.interval).Sub(now)
	}

	w.count++
	return true, 0
}

// Close stops the eviction sweep.
func (l *ClientLimiter) Close() {
	l.stopOnce.Do(func() { close(l.stop) })
}

// sweep periodically drops clients whose window has expired.
func (l *ClientLimiter) sweep() {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case now := <-ticker.C:
			l.mu.Lock()
			for client, w := range l.clients {
				if now.Sub(w.start) >= l.interval {
					delete(l.clients, client)
				}
			}
			l.mu.Unlock()
		}
	}
}
