package services

import (
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// maxTrackedClients bounds the per-IP limiter map. Public tracking
// lookups see arbitrary client IPs, so the map is reset once it grows
// past this instead of evicting entries individually.
const maxTrackedClients = 10000

// IPRateLimiter throttles requests per client IP using a token bucket
// for each address.
type IPRateLimiter struct {
	mu      sync.Mutex
	clients map[string]*rate.Limiter
	limit   rate.Limit
	burst   int
	logger  *slog.Logger
}

func NewIPRateLimiter(limit rate.Limit, burst int, logger *slog.Logger) *IPRateLimiter {
	return &IPRateLimiter{
		clients: make(map[string]*rate.Limiter),
		limit:   limit,
		burst:   burst,
		logger:  logger,
	}
}

// GetLimiter returns the token bucket for ip, creating one on first use.
func (i *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	l, ok := i.clients[ip]
	if !ok {
		l = rate.NewLimiter(i.limit, i.burst)
		i.clients[ip] = l
	}
	return l
}

// Tracked reports how many client IPs currently hold a limiter.
func (i *IPRateLimiter) Tracked() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.clients)
}

// StartCleanup periodically drops the limiter map when it exceeds
// maxTrackedClients.
func (i *IPRateLimiter) StartCleanup(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			i.mu.Lock()
			if len(i.clients) > maxTrackedClients {
				i.logger.Info("Resetting per-IP limiter map", "tracked", len(i.clients))
				i.clients = make(map[string]*rate.Limiter)
			}
			i.mu.Unlock()
		}
	}()
}
