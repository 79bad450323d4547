package boxaloo

import (
	"context"
	"fmt"
	"time"

	loadpatch "github.com/boxaloo/boxaloo/internal/domain/load/patch"
)

// LoadService posts, browses and claims loads.
type LoadService struct {
	svc loadUseCase
	obs *observer
}

// List returns loads matching f in posting order. A zero filter returns all loads.
func (s *LoadService) List(ctx context.Context, f LoadFilter) (_ []Load, err error) {
	start := time.Now()
	defer func() { s.obs.observe("load.list", start, err) }()

	loads, err := s.svc.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list loads: %w", err)
	}
	return loads, nil
}

// Available returns the loads open for claiming.
func (s *LoadService) Available(ctx context.Context) (_ []Load, err error) {
	start := time.Now()
	defer func() { s.obs.observe("load.available", start, err) }()

	loads, err := s.svc.Available(ctx)
	if err != nil {
		return nil, fmt.Errorf("available loads: %w", err)
	}
	return loads, nil
}

// Get returns a load by id.
func (s *LoadService) Get(ctx context.Context, id string) (_ Load, err error) {
	start := time.Now()
	defer func() { s.obs.observe("load.get", start, err) }()

	l, err := s.svc.Get(ctx, id)
	if err != nil {
		return Load{}, fmt.Errorf("get load: %w", err)
	}
	return l, nil
}

// Post validates a draft and adds it to the board as an available load.
func (s *LoadService) Post(ctx context.Context, d LoadDraft) (_ Load, err error) {
	start := time.Now()
	defer func() { s.obs.observe("load.post", start, err) }()

	l, err := s.svc.Create(ctx, d)
	if err != nil {
		return Load{}, fmt.Errorf("post load: %w", err)
	}
	return l, nil
}

// Update applies the set fields of p. Status cannot be patched; use Claim or Transition.
func (s *LoadService) Update(ctx context.Context, id string, p LoadPatch) (_ Load, err error) {
	start := time.Now()
	defer func() { s.obs.observe("load.update", start, err) }()

	lp, err := loadpatch.New(p)
	if err != nil {
		return Load{}, fmt.Errorf("update load: %w", err)
	}
	l, err := s.svc.Update(ctx, id, lp)
	if err != nil {
		return Load{}, fmt.Errorf("update load: %w", err)
	}
	return l, nil
}

// Delete removes a load and reports whether it existed.
func (s *LoadService) Delete(ctx context.Context, id string) (_ bool, err error) {
	start := time.Now()
	defer func() { s.obs.observe("load.delete", start, err) }()

	deleted, err := s.svc.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete load: %w", err)
	}
	return deleted, nil
}

// Claim assigns an available load to claimantID. A load that is not
// available yields ErrLoadNotAvailable and is left unchanged.
func (s *LoadService) Claim(ctx context.Context, id, claimantID, claimantLabel string) (_ Load, err error) {
	start := time.Now()
	defer func() { s.obs.observe("load.claim", start, err) }()

	l, err := s.svc.Claim(ctx, id, claimantID, claimantLabel)
	if err != nil {
		return Load{}, err
	}
	return l, nil
}

// Transition moves a load along its lifecycle.
func (s *LoadService) Transition(ctx context.Context, id string, next LoadStatus) (_ Load, err error) {
	start := time.Now()
	defer func() { s.obs.observe("load.transition", start, err) }()

	l, err := s.svc.Transition(ctx, id, next)
	if err != nil {
		return Load{}, err
	}
	return l, nil
}
