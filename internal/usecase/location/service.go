package location

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/boxaloo/boxaloo/internal/domain"
	"github.com/boxaloo/boxaloo/internal/domain/city"
	"github.com/boxaloo/boxaloo/internal/logger"
	"github.com/boxaloo/boxaloo/internal/metrics"
)

// Default result limits.
const (
	DefaultLimit = 8
	MaxLimit     = 50
)

// Service answers city autocomplete queries over an Index.
type Service struct {
	index        *Index
	cache        *cache.Cache
	defaultLimit int
	maxLimit     int
}

// New creates a location service without result caching.
func New(index *Index) *Service {
	return &Service{
		index:        index,
		defaultLimit: DefaultLimit,
		maxLimit:     MaxLimit,
	}
}

// WithLimits configures the limit used when none is given and the upper clamp.
func (s *Service) WithLimits(defaultLimit, maxLimit int) *Service {
	if defaultLimit > 0 {
		s.defaultLimit = defaultLimit
	}
	if maxLimit > 0 {
		s.maxLimit = maxLimit
	}
	return s
}

// WithCache enables result caching for ttl. A non-positive ttl disables it.
func (s *Service) WithCache(ttl time.Duration) *Service {
	if ttl <= 0 {
		s.cache = nil
		return s
	}
	s.cache = cache.New(ttl, 2*ttl)
	return s
}

// Search returns up to limit "City, ST" suggestions for query.
// limit <= 0 uses the default; larger values are clamped to the maximum.
func (s *Service) Search(ctx context.Context, query string, limit int) []string {
	limit = s.effectiveLimit(limit)
	q := strings.ToLower(strings.TrimSpace(query))

	if s.cache == nil {
		return s.index.Search(q, limit)
	}

	key := q + "|" + strconv.Itoa(limit)
	if cached, found := s.cache.Get(key); found {
		metrics.CitySearchCacheTotal.WithLabelValues("hit").Inc()
		return clone(cached.([]string))
	}
	metrics.CitySearchCacheTotal.WithLabelValues("miss").Inc()

	results := s.index.Search(q, limit)
	s.cache.Set(key, clone(results), cache.DefaultExpiration)
	logger.FromContext(ctx).Debug("City search",
		zap.String("query", q),
		zap.Int("limit", limit),
		zap.Int("results", len(results)),
	)
	return results
}

// Lookup returns the full record for a "City, ST" string.
func (s *Service) Lookup(_ context.Context, formatted string) (city.City, error) {
	c, ok := s.index.Lookup(formatted)
	if !ok {
		return city.City{}, fmt.Errorf("%q: %w", formatted, domain.ErrCityNotFound)
	}
	return c, nil
}

// Len returns the number of indexed cities.
func (s *Service) Len() int { return s.index.Len() }

func (s *Service) effectiveLimit(limit int) int {
	if limit <= 0 {
		return s.defaultLimit
	}
	if limit > s.maxLimit {
		return s.maxLimit
	}
	return limit
}

func clone(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
