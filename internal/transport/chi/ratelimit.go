package chi

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/boxaloo/boxaloo/internal/config"
	"github.com/boxaloo/boxaloo/internal/domain"
	"github.com/boxaloo/boxaloo/internal/transport/api"
)

// rateLimitExemptPaths are routes that bypass the limiter (health, metrics).
var rateLimitExemptPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

// RateLimitMiddleware applies one process-wide token bucket to API requests.
// A zero rate disables limiting (pass-through).
func RateLimitMiddleware(cfg config.RateLimitConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if cfg.RequestsPerSecond <= 0 || cfg.Burst <= 0 {
			return next
		}
		limiter := rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := rateLimitExemptPaths[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}
			if !limiter.Allow() {
				w.Header().Set("Retry-After", "1")
				writeError(w, http.StatusTooManyRequests, api.ErrorResponseCodeRateLimited, domain.ErrRateLimited.Error())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
