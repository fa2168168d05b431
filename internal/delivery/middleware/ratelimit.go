package middleware

import (
	"context"
	"sync"
	"time"

	"houses/config"
	domainerrors "houses/internal/domain/errors"
	"houses/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const (
	defaultRequestsPerSecond = 10
	defaultBurst             = 20
	limiterIdleTTL           = 10 * time.Minute
	limiterSweepInterval     = time.Minute
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*clientLimiter
	rate     rate.Limit
	burst    int
	enabled  bool
	metrics  *metrics.Metrics
	now      func() time.Time
}

// RateLimiterParams holds dependencies for RateLimiter, injected by Fx.
type RateLimiterParams struct {
	fx.In

	Lc      fx.Lifecycle
	Config  *config.Config
	Metrics *metrics.Metrics
}

// NewRateLimiter builds the limiter and runs the idle-client sweep for the
// lifetime of the application.
func NewRateLimiter(params RateLimiterParams) *RateLimiter {
	rl := newRateLimiter(params.Config.RateLimit, params.Metrics)
	if !rl.enabled {
		return rl
	}

	sweepCtx, cancel := context.WithCancel(context.Background())
	params.Lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go rl.sweepLoop(sweepCtx)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()

			return nil
		},
	})

	return rl
}

func newRateLimiter(cfg *config.RateLimitConfig, m *metrics.Metrics) *RateLimiter {
	rl := &RateLimiter{
		limiters: make(map[string]*clientLimiter),
		rate:     defaultRequestsPerSecond,
		burst:    defaultBurst,
		metrics:  m,
		now:      time.Now,
	}
	if cfg == nil {
		return rl
	}

	rl.enabled = cfg.Enabled
	if cfg.RequestsPerSecond > 0 {
		rl.rate = rate.Limit(cfg.RequestsPerSecond)
	}
	if cfg.Burst > 0 {
		rl.burst = cfg.Burst
	}

	return rl
}

// Limit rejects requests over the client's budget with ErrRateLimited
func (rl *RateLimiter) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !rl.enabled {
			return next(c)
		}

		if !rl.allow(c.RealIP()) {
			if rl.metrics != nil {
				rl.metrics.RateLimitedTotal.Inc()
			}

			return domainerrors.ErrRateLimited
		}

		return next(c)
	}
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	entry, ok := rl.limiters[key]
	if !ok {
		entry = &clientLimiter{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[key] = entry
	}
	entry.lastSeen = now

	return entry.limiter.AllowN(now, 1)
}

func (rl *RateLimiter) sweepLoop(ctx context.Context) {
	ticker := time.NewTicker(limiterSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}

// sweep forgets clients idle for longer than limiterIdleTTL.
func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-limiterIdleTTL)
	for key, entry := range rl.limiters {
		if entry.lastSeen.Before(cutoff) {
			delete(rl.limiters, key)
		}
	}
}
