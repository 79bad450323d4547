package load

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/boxaloo/boxaloo/internal/domain"
	domload "github.com/boxaloo/boxaloo/internal/domain/load"
	"github.com/boxaloo/boxaloo/internal/domain/load/patch"
	"github.com/boxaloo/boxaloo/internal/logger"
	"github.com/boxaloo/boxaloo/internal/metrics"
)

// Claim outcomes recorded in metrics.
const (
	outcomeClaimed      = "claimed"
	outcomeNotAvailable = "not_available"
	outcomeNotFound     = "not_found"
)

// Service handles the load board: posting, browsing, claiming and status moves.
type Service struct {
	repo Repository
}

// New creates a load service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns loads matching f in posting order. An empty filter lists all.
func (s *Service) List(ctx context.Context, f domload.Filter) ([]domload.Load, error) {
	if f.Status != "" && !f.Status.IsValid() {
		return nil, domain.Invalid("status", fmt.Sprintf("unknown status %q", f.Status))
	}
	loads, err := s.repo.Find(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("find loads: %w", err)
	}
	return loads, nil
}

// Available returns the loads carriers can still claim.
func (s *Service) Available(ctx context.Context) ([]domload.Load, error) {
	return s.List(ctx, domload.Filter{Status: domload.StatusAvailable})
}

// Get retrieves a load by ID.
func (s *Service) Get(ctx context.Context, id string) (domload.Load, error) {
	l, err := s.repo.Get(ctx, id)
	if err != nil {
		return domload.Load{}, fmt.Errorf("get load: %w", err)
	}
	return l, nil
}

// Create validates a draft and posts it as an available load.
func (s *Service) Create(ctx context.Context, d domload.Draft) (domload.Load, error) {
	l, err := domload.New(d)
	if err != nil {
		return domload.Load{}, err
	}

	created, err := s.repo.Create(ctx, l)
	if err != nil {
		return domload.Load{}, fmt.Errorf("create load: %w", err)
	}

	metrics.LoadsPostedTotal.WithLabelValues(string(created.Equipment)).Inc()
	s.observeCount(ctx)
	logger.FromContext(ctx).Info("Load posted",
		zap.String("load_id", created.ID),
		zap.String("broker_id", created.Broker.ID),
		zap.String("equipment", string(created.Equipment)),
	)
	return created, nil
}

// Update applies a partial update. Status is not patchable.
func (s *Service) Update(ctx context.Context, id string, p patch.Patch) (domload.Load, error) {
	l, err := s.repo.Patch(ctx, id, p)
	if err != nil {
		return domload.Load{}, fmt.Errorf("patch load: %w", err)
	}
	return l, nil
}

// Delete removes a load and reports whether it existed.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete load: %w", err)
	}
	if deleted {
		s.observeCount(ctx)
		logger.FromContext(ctx).Info("Load deleted", zap.String("load_id", id))
	}
	return deleted, nil
}

// Claim assigns an available load to the claimant. claimantLabel is the
// display name stored as the assigned carrier; it defaults to claimantID.
func (s *Service) Claim(ctx context.Context, id, claimantID, claimantLabel string) (domload.Load, error) {
	claimantID = strings.TrimSpace(claimantID)
	if claimantID == "" {
		return domload.Load{}, domain.Invalid("claimantId", "is required")
	}

	l, err := s.repo.Claim(ctx, id, claimantID, strings.TrimSpace(claimantLabel))
	switch {
	case err == nil:
		metrics.LoadClaimsTotal.WithLabelValues(outcomeClaimed).Inc()
		logger.FromContext(ctx).Info("Load claimed",
			zap.String("load_id", l.ID),
			zap.String("claimed_by", l.ClaimedBy),
		)
		return l, nil
	case errors.Is(err, domain.ErrLoadNotAvailable):
		metrics.LoadClaimsTotal.WithLabelValues(outcomeNotAvailable).Inc()
		logger.FromContext(ctx).Warn("Claim refused",
			zap.String("load_id", id),
			zap.String("claimant_id", claimantID),
			zap.Error(err),
		)
	case errors.Is(err, domain.ErrLoadNotFound):
		metrics.LoadClaimsTotal.WithLabelValues(outcomeNotFound).Inc()
	}
	return domload.Load{}, fmt.Errorf("claim load: %w", err)
}

// Transition moves a load to next (in-transit, delivered or cancelled).
func (s *Service) Transition(ctx context.Context, id string, next domload.Status) (domload.Load, error) {
	l, err := s.repo.Transition(ctx, id, next)
	if err != nil {
		return domload.Load{}, fmt.Errorf("transition load: %w", err)
	}

	metrics.LoadTransitionsTotal.WithLabelValues(string(next)).Inc()
	logger.FromContext(ctx).Info("Load status changed",
		zap.String("load_id", l.ID),
		zap.String("status", string(l.Status)),
	)
	return l, nil
}

// Count returns the number of stored loads.
func (s *Service) Count(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count loads: %w", err)
	}
	return n, nil
}

func (s *Service) observeCount(ctx context.Context) {
	if n, err := s.repo.Count(ctx); err == nil {
		metrics.StoreRecords.WithLabelValues("loads").Set(float64(n))
	}
}
