package chi

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/boxaloo/boxaloo/internal/config"
	"github.com/boxaloo/boxaloo/internal/logger"
	"github.com/boxaloo/boxaloo/internal/transport/api"
)

// sessionExemptPaths are mutating routes reachable without a session.
var sessionExemptPaths = map[string]struct{}{
	"/api/session": {},
}

// CreateSession handles POST /api/session by issuing a fresh session cookie.
// The token is opaque; only its presence is checked.
func (s *Server) CreateSession(w http.ResponseWriter, r *http.Request) {
	token := uuid.NewString()
	expiresAt := time.Now().Add(time.Duration(s.session.MaxAgeSec) * time.Second).UTC()

	http.SetCookie(w, &http.Cookie{
		Name:     s.session.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   s.session.MaxAgeSec,
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   s.session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	logger.FromContext(r.Context()).Info("Session issued", zap.Time("expires_at", expiresAt))
	writeJSON(w, http.StatusCreated, api.SessionResponse{Token: token, ExpiresAt: expiresAt})
}

// DeleteSession handles DELETE /api/session by expiring the cookie.
func (s *Server) DeleteSession(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   s.session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}

// SessionMiddleware rejects mutating requests that carry no session cookie.
// Reads pass through, as do the session routes themselves.
func SessionMiddleware(cfg config.SessionConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isMutating(r.Method) {
				next.ServeHTTP(w, r)
				return
			}
			if _, ok := sessionExemptPaths[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			c, err := r.Cookie(cfg.CookieName)
			if err != nil || c.Value == "" {
				writeError(w, http.StatusUnauthorized, api.ErrorResponseCodeUnauthenticated, "session required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}
