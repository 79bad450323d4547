package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/boxaloo/boxaloo/internal/config"
	"github.com/boxaloo/boxaloo/internal/metrics"
	"github.com/boxaloo/boxaloo/internal/repository/fixtures"
	loadrepo "github.com/boxaloo/boxaloo/internal/repository/load"
	truckrepo "github.com/boxaloo/boxaloo/internal/repository/truck"
	chiTransport "github.com/boxaloo/boxaloo/internal/transport/chi"
	healthuc "github.com/boxaloo/boxaloo/internal/usecase/health"
	loaduc "github.com/boxaloo/boxaloo/internal/usecase/load"
	locationuc "github.com/boxaloo/boxaloo/internal/usecase/location"
	truckuc "github.com/boxaloo/boxaloo/internal/usecase/truck"
)

// newHandler wires stores, services and the router.
func newHandler(cfg config.Config, logger *zap.Logger) (http.Handler, error) {
	metrics.RegisterLoadBoardMetrics()

	loadRepo := loadrepo.New()
	truckRepo := truckrepo.New()
	if cfg.Seed.Enabled {
		if err := seed(loadRepo, truckRepo); err != nil {
			return nil, err
		}
		logger.Info("Seeded demo data",
			zap.Int("loads", mustCount(loadRepo.Count(context.Background()))),
			zap.Int("trucks", mustCount(truckRepo.Count(context.Background()))),
		)
	}
	metrics.StoreRecords.WithLabelValues("loads").Set(float64(mustCount(loadRepo.Count(context.Background()))))
	metrics.StoreRecords.WithLabelValues("trucks").Set(float64(mustCount(truckRepo.Count(context.Background()))))

	index, err := locationuc.LoadIndex()
	if err != nil {
		return nil, fmt.Errorf("load city index: %w", err)
	}
	logger.Info("City index loaded", zap.Int("cities", index.Len()))

	loadSvc := loaduc.New(loadRepo)
	truckSvc := truckuc.New(truckRepo)
	citySvc := locationuc.New(index).
		WithLimits(cfg.Search.DefaultLimit, cfg.Search.MaxLimit).
		WithCache(time.Duration(cfg.Search.CacheTTLSec) * time.Second)

	healthSvc := healthuc.New(map[string]healthuc.Checker{
		"loads":  healthuc.CheckerFunc(func(ctx context.Context) error { _, err := loadRepo.Count(ctx); return err }),
		"trucks": healthuc.CheckerFunc(func(ctx context.Context) error { _, err := truckRepo.Count(ctx); return err }),
		"cities": healthuc.CheckerFunc(func(context.Context) error {
			if index.Len() == 0 {
				return fmt.Errorf("city index is empty")
			}
			return nil
		}),
	})

	server := chiTransport.NewServer(loadSvc, truckSvc, citySvc, healthSvc, cfg.Session, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	if len(cfg.HTTP.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Options{
			AllowedOrigins: cfg.HTTP.CORSOrigins,
			AllowedMethods: []string{
				http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions,
			},
			AllowedHeaders:   []string{"Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"Location", "X-Request-ID"},
			AllowCredentials: true,
		}).Handler)
	}
	r.Use(chiTransport.RateLimitMiddleware(cfg.RateLimit))
	r.Use(chiTransport.SessionMiddleware(cfg.Session))
	r.Use(metrics.Middleware())
	server.Routes(r)

	return r, nil
}

func seed(loads *loadrepo.Repo, trucks *truckrepo.Repo) error {
	ls, err := fixtures.Loads()
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if err := loads.Seed(ls); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	ts, err := fixtures.Trucks()
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if err := trucks.Seed(ts); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return nil
}

// mustCount drops the error of a Count made with a background context, which cannot fail.
func mustCount(n int, _ error) int { return n }
