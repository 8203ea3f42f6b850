package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/tallyapp/tally-backend/internal/config"
)

// RateLimiter implements per-client token bucket rate limiting for sensitive
// endpoints. Buckets live in a bounded LRU cache so an attacker rotating
// source addresses cannot grow memory without bound; idle buckets are also
// swept by a background goroutine. Evicting a bucket resets that client's
// history, which only helps clients that were already idle.
type RateLimiter struct {
	buckets *lru.Cache[string, *bucket]
	cfg     config.RateLimitConfig
	stop    chan struct{}
	once    sync.Once
}

type bucket struct {
	mu         sync.Mutex
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastAccess time.Time
}

// NewRateLimiter creates a rate limiter with background idle eviction.
// Call Stop() on shutdown.
func NewRateLimiter(cfg config.RateLimitConfig) (*RateLimiter, error) {
	cache, err := lru.New[string, *bucket](cfg.MaxTrackedClients)
	if err != nil {
		return nil, err
	}

	rl := &RateLimiter{
		buckets: cache,
		cfg:     cfg,
		stop:    make(chan struct{}),
	}
	go rl.sweep()
	return rl, nil
}

// Stop terminates the background eviction goroutine.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit returns middleware that admits up to RequestsPerMinute requests per
// client, refilled continuously so a full burst is available after idle.
// Preflight requests never consume a token: they are not the guarded
// operation. The client key is the transport-resolved remote address;
// forwarding-header trust is the ingress layer's job, not this one's.
func (rl *RateLimiter) Limit() Middleware {
	return func(next http.Handler) http.Handler {
		if !rl.cfg.Enabled {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			b := rl.getBucket(clientKey(r))
			if !b.allow(time.Now()) {
				retryAfter := 60.0 / float64(rl.cfg.RequestsPerMinute)
				w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter)+1))
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) getBucket(key string) *bucket {
	if b, ok := rl.buckets.Get(key); ok {
		return b
	}

	maxTokens := float64(rl.cfg.RequestsPerMinute)
	b := &bucket{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillRate: maxTokens / 60.0,
		lastAccess: time.Now(),
	}
	if existing, found, _ := rl.buckets.PeekOrAdd(key, b); found {
		return existing
	}
	return b
}

// allow refills the bucket for the elapsed time and tries to spend one token.
func (b *bucket) allow(now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	elapsed := now.Sub(b.lastAccess).Seconds()
	b.tokens += elapsed * b.refillRate
	if b.tokens > b.maxTokens {
		b.tokens = b.maxTokens
	}
	b.lastAccess = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (rl *RateLimiter) sweep() {
	ticker := time.NewTicker(rl.cfg.IdleEviction)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			for _, key := range rl.buckets.Keys() {
				b, ok := rl.buckets.Peek(key)
				if !ok {
					continue
				}
				b.mu.Lock()
				idle := now.Sub(b.lastAccess)
				b.mu.Unlock()
				if idle > rl.cfg.IdleEviction {
					rl.buckets.Remove(key)
				}
			}
		}
	}
}

// clientKey extracts the host part of the transport-resolved remote address.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
