package boxaloo

import (
	"context"
	"fmt"

	"github.com/boxaloo/boxaloo/internal/domain/city"
	domload "github.com/boxaloo/boxaloo/internal/domain/load"
	loadpatch "github.com/boxaloo/boxaloo/internal/domain/load/patch"
	domtruck "github.com/boxaloo/boxaloo/internal/domain/truck"
	truckpatch "github.com/boxaloo/boxaloo/internal/domain/truck/patch"
	"github.com/boxaloo/boxaloo/internal/repository/fixtures"
	loadrepo "github.com/boxaloo/boxaloo/internal/repository/load"
	truckrepo "github.com/boxaloo/boxaloo/internal/repository/truck"
	healthuc "github.com/boxaloo/boxaloo/internal/usecase/health"
	loaduc "github.com/boxaloo/boxaloo/internal/usecase/load"
	locationuc "github.com/boxaloo/boxaloo/internal/usecase/location"
	truckuc "github.com/boxaloo/boxaloo/internal/usecase/truck"
)

// Internal interfaces for substitution in tests.
type loadUseCase interface {
	List(ctx context.Context, f domload.Filter) ([]domload.Load, error)
	Available(ctx context.Context) ([]domload.Load, error)
	Get(ctx context.Context, id string) (domload.Load, error)
	Create(ctx context.Context, d domload.Draft) (domload.Load, error)
	Update(ctx context.Context, id string, p loadpatch.Patch) (domload.Load, error)
	Delete(ctx context.Context, id string) (bool, error)
	Claim(ctx context.Context, id, claimantID, claimantLabel string) (domload.Load, error)
	Transition(ctx context.Context, id string, next domload.Status) (domload.Load, error)
}

type truckUseCase interface {
	List(ctx context.Context, f domtruck.Filter) ([]domtruck.Truck, error)
	Get(ctx context.Context, id string) (domtruck.Truck, error)
	Create(ctx context.Context, d domtruck.Draft) (domtruck.Truck, error)
	Update(ctx context.Context, id string, p truckpatch.Patch) (domtruck.Truck, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type cityUseCase interface {
	Search(ctx context.Context, query string, limit int) []string
	Lookup(ctx context.Context, formatted string) (city.City, error)
}

// Client is the boxaloo SDK entry point.
type Client struct {
	loadSvc   loadUseCase
	truckSvc  truckUseCase
	citySvc   cityUseCase
	healthSvc healthUseCase
	obs       *observer
}

// New builds a Client over fresh in-memory stores and the bundled city index.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}
	return wireClient(cfg, obs)
}

func wireClient(cfg *clientConfig, obs *observer) (*Client, error) {
	loadRepo := loadrepo.New()
	truckRepo := truckrepo.New()
	if cfg.now != nil {
		loadRepo = loadRepo.WithClock(cfg.now)
		truckRepo = truckRepo.WithClock(cfg.now)
	}
	if cfg.seed {
		if err := seedStores(loadRepo, truckRepo); err != nil {
			return nil, err
		}
	}

	index, err := locationuc.LoadIndex()
	if err != nil {
		return nil, fmt.Errorf("boxaloo: load city index: %w", err)
	}
	citySvc := locationuc.New(index)
	if cfg.searchDefaultLimit > 0 || cfg.searchMaxLimit > 0 {
		citySvc = citySvc.WithLimits(cfg.searchDefaultLimit, cfg.searchMaxLimit)
	}
	if cfg.searchCacheTTL > 0 {
		citySvc = citySvc.WithCache(cfg.searchCacheTTL)
	}

	healthSvc := healthuc.New(map[string]healthuc.Checker{
		"loads":  healthuc.CheckerFunc(func(ctx context.Context) error { _, err := loadRepo.Count(ctx); return err }),
		"trucks": healthuc.CheckerFunc(func(ctx context.Context) error { _, err := truckRepo.Count(ctx); return err }),
	})

	return &Client{
		loadSvc:   loaduc.New(loadRepo),
		truckSvc:  truckuc.New(truckRepo),
		citySvc:   citySvc,
		healthSvc: healthSvc,
		obs:       obs,
	}, nil
}

func seedStores(loads *loadrepo.Repo, trucks *truckrepo.Repo) error {
	ls, err := fixtures.Loads()
	if err != nil {
		return fmt.Errorf("boxaloo: seed loads: %w", err)
	}
	if err := loads.Seed(ls); err != nil {
		return fmt.Errorf("boxaloo: seed loads: %w", err)
	}
	ts, err := fixtures.Trucks()
	if err != nil {
		return fmt.Errorf("boxaloo: seed trucks: %w", err)
	}
	if err := trucks.Seed(ts); err != nil {
		return fmt.Errorf("boxaloo: seed trucks: %w", err)
	}
	return nil
}

// Loads returns the load board service.
func (c *Client) Loads() *LoadService {
	return &LoadService{svc: c.loadSvc, obs: c.obs}
}

// Trucks returns the truck posting service.
func (c *Client) Trucks() *TruckService {
	return &TruckService{svc: c.truckSvc, obs: c.obs}
}

// Cities returns the city autocomplete service.
func (c *Client) Cities() *CityService {
	return &CityService{svc: c.citySvc, obs: c.obs}
}
