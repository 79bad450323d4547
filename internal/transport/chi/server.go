package chi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/boxaloo/boxaloo/internal/config"
	"github.com/boxaloo/boxaloo/internal/domain"
	"github.com/boxaloo/boxaloo/internal/logger"
	"github.com/boxaloo/boxaloo/internal/transport/api"
	healthuc "github.com/boxaloo/boxaloo/internal/usecase/health"
	loaduc "github.com/boxaloo/boxaloo/internal/usecase/load"
	locationuc "github.com/boxaloo/boxaloo/internal/usecase/location"
	truckuc "github.com/boxaloo/boxaloo/internal/usecase/truck"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server serves the boxaloo JSON API over chi.
type Server struct {
	loads         *loaduc.Service
	trucks        *truckuc.Service
	cities        *locationuc.Service
	health        *healthuc.Service
	session       config.SessionConfig
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	loads *loaduc.Service,
	trucks *truckuc.Service,
	cities *locationuc.Service,
	health *healthuc.Service,
	session config.SessionConfig,
	logger *zap.Logger,
) *Server {
	s := &Server{
		loads:   loads,
		trucks:  trucks,
		cities:  cities,
		health:  health,
		session: session,
		logger:  logger,
	}
	// Specific sentinels first: ErrLoadNotFound also matches ErrNotFound.
	s.errorHandlers = []errorHandler{
		validationHandler,
		sentinelHandler(domain.ErrLoadNotFound, http.StatusNotFound, api.ErrorResponseCodeLoadNotFound),
		sentinelHandler(domain.ErrTruckNotFound, http.StatusNotFound, api.ErrorResponseCodeTruckNotFound),
		sentinelHandler(domain.ErrCityNotFound, http.StatusNotFound, api.ErrorResponseCodeCityNotFound),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, api.ErrorResponseCodeNotFound),
		sentinelHandler(domain.ErrLoadNotAvailable, http.StatusConflict, api.ErrorResponseCodeLoadNotAvailable),
		sentinelHandler(domain.ErrInvalidTransition, http.StatusConflict, api.ErrorResponseCodeInvalidTransition),
		sentinelHandler(domain.ErrRateLimited, http.StatusTooManyRequests, api.ErrorResponseCodeRateLimited),
		sentinelHandler(domain.ErrUnauthenticated, http.StatusUnauthorized, api.ErrorResponseCodeUnauthenticated),
	}
	return s
}

// Routes mounts the API on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/api", func(r chi.Router) {
		r.Post("/session", s.CreateSession)
		r.Delete("/session", s.DeleteSession)

		r.Route("/loads", func(r chi.Router) {
			r.Get("/", s.ListLoads)
			r.Post("/", s.CreateLoad)
			r.Get("/available", s.ListAvailableLoads)
			r.Get("/{id}", s.GetLoad)
			r.Patch("/{id}", s.PatchLoad)
			r.Delete("/{id}", s.DeleteLoad)
			r.Post("/{id}/claim", s.ClaimLoad)
			r.Post("/{id}/status", s.TransitionLoad)
		})

		r.Route("/trucks", func(r chi.Router) {
			r.Get("/", s.ListTrucks)
			r.Post("/", s.CreateTruck)
			r.Get("/{id}", s.GetTruck)
			r.Patch("/{id}", s.PatchTruck)
			r.Delete("/{id}", s.DeleteTruck)
		})

		r.Get("/cities/search", s.SearchCities)
		r.Get("/cities/{formatted}", s.GetCity)
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]api.HealthResponseChecks, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = api.HealthResponseChecks(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, api.HealthResponse{
		Status: api.HealthResponseStatus(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// pathID binds the {id} URL parameter.
func pathID(r *http.Request, name string) (string, error) {
	var id string
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", fmt.Errorf("invalid format for parameter %s: %w", name, err)
	}
	return id, nil
}

// decodeBody decodes a JSON request body into dst, rejecting unknown fields.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, api.ErrorResponseCodeBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code api.ErrorResponseCode, message string) {
	writeJSON(w, status, api.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrLoadNotFound,
		domain.ErrTruckNotFound,
		domain.ErrCityNotFound,
		domain.ErrNotFound,
		domain.ErrLoadNotAvailable,
		domain.ErrInvalidTransition,
		domain.ErrRateLimited,
		domain.ErrUnauthenticated,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code api.ErrorResponseCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

// validationHandler reports the offending field, which is client input and safe to echo.
func validationHandler(w http.ResponseWriter, err error, _ string) bool {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		if !errors.Is(err, domain.ErrValidation) {
			return false
		}
		writeError(w, http.StatusBadRequest, api.ErrorResponseCodeValidationFailed, domain.ErrValidation.Error())
		return true
	}
	writeError(w, http.StatusBadRequest, api.ErrorResponseCodeValidationFailed, ve.Error())
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			logger.FromContext(r.Context()).Warn("domain error", zap.Error(err))
			return
		}
	}
	s.logger.Error("internal error",
		zap.String("request_id", chiMiddleware.GetReqID(r.Context())),
		zap.Error(err),
	)
	writeError(w, http.StatusInternalServerError, api.ErrorResponseCodeInternalError, "internal error")
}
