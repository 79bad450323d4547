package truck

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/boxaloo/boxaloo/internal/domain"
	domtruck "github.com/boxaloo/boxaloo/internal/domain/truck"
	"github.com/boxaloo/boxaloo/internal/domain/truck/patch"
	"github.com/boxaloo/boxaloo/internal/logger"
	"github.com/boxaloo/boxaloo/internal/metrics"
)

// Service handles carrier capacity postings.
type Service struct {
	repo Repository
}

// New creates a truck service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns trucks matching f in posting order.
func (s *Service) List(ctx context.Context, f domtruck.Filter) ([]domtruck.Truck, error) {
	if f.Status != "" && !f.Status.IsValid() {
		return nil, domain.Invalid("status", fmt.Sprintf("unknown status %q", f.Status))
	}
	trucks, err := s.repo.Find(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("find trucks: %w", err)
	}
	return trucks, nil
}

// Get retrieves a truck by ID.
func (s *Service) Get(ctx context.Context, id string) (domtruck.Truck, error) {
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		return domtruck.Truck{}, fmt.Errorf("get truck: %w", err)
	}
	return t, nil
}

// Create validates a draft and posts the capacity.
func (s *Service) Create(ctx context.Context, d domtruck.Draft) (domtruck.Truck, error) {
	t, err := domtruck.New(d)
	if err != nil {
		return domtruck.Truck{}, err
	}

	created, err := s.repo.Create(ctx, t)
	if err != nil {
		return domtruck.Truck{}, fmt.Errorf("create truck: %w", err)
	}

	metrics.TrucksPostedTotal.WithLabelValues(string(created.Equipment)).Inc()
	s.observeCount(ctx)
	logger.FromContext(ctx).Info("Truck posted",
		zap.String("truck_id", created.ID),
		zap.String("carrier_id", created.Carrier.ID),
		zap.String("location", created.Location()),
	)
	return created, nil
}

// Update applies a partial update.
func (s *Service) Update(ctx context.Context, id string, p patch.Patch) (domtruck.Truck, error) {
	t, err := s.repo.Patch(ctx, id, p)
	if err != nil {
		return domtruck.Truck{}, fmt.Errorf("patch truck: %w", err)
	}
	return t, nil
}

// Delete removes a truck and reports whether it existed.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete truck: %w", err)
	}
	if deleted {
		s.observeCount(ctx)
	}
	return deleted, nil
}

// Count returns the number of stored trucks.
func (s *Service) Count(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count trucks: %w", err)
	}
	return n, nil
}

func (s *Service) observeCount(ctx context.Context) {
	if n, err := s.repo.Count(ctx); err == nil {
		metrics.StoreRecords.WithLabelValues("trucks").Set(float64(n))
	}
}
