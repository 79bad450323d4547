package boxaloo

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	seed bool
	now  func() time.Time

	searchDefaultLimit int
	searchMaxLimit     int
	searchCacheTTL     time.Duration

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithSeed loads the bundled demo loads and trucks into the stores.
func WithSeed() Option {
	return optionFunc(func(c *clientConfig) {
		c.seed = true
	})
}

// WithClock overrides the clock used to stamp postedAt and claimedAt.
func WithClock(now func() time.Time) Option {
	return optionFunc(func(c *clientConfig) {
		c.now = now
	})
}

// WithSearchLimits sets the city search default and maximum result counts.
// Defaults: 8 and 50.
func WithSearchLimits(defaultLimit, maxLimit int) Option {
	return optionFunc(func(c *clientConfig) {
		c.searchDefaultLimit = defaultLimit
		c.searchMaxLimit = maxLimit
	})
}

// WithSearchCache caches city search results for ttl. Zero or negative disables (default).
func WithSearchCache(ttl time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.searchCacheTTL = ttl
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
