package boxaloo

import (
	"context"
	"fmt"
	"time"

	truckpatch "github.com/boxaloo/boxaloo/internal/domain/truck/patch"
)

// TruckService manages capacity postings.
type TruckService struct {
	svc truckUseCase
	obs *observer
}

// List returns trucks matching f in posting order.
func (s *TruckService) List(ctx context.Context, f TruckFilter) (_ []Truck, err error) {
	start := time.Now()
	defer func() { s.obs.observe("truck.list", start, err) }()

	trucks, err := s.svc.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list trucks: %w", err)
	}
	return trucks, nil
}

// Get returns a truck posting by id.
func (s *TruckService) Get(ctx context.Context, id string) (_ Truck, err error) {
	start := time.Now()
	defer func() { s.obs.observe("truck.get", start, err) }()

	t, err := s.svc.Get(ctx, id)
	if err != nil {
		return Truck{}, fmt.Errorf("get truck: %w", err)
	}
	return t, nil
}

// Post validates a draft and adds the posting.
func (s *TruckService) Post(ctx context.Context, d TruckDraft) (_ Truck, err error) {
	start := time.Now()
	defer func() { s.obs.observe("truck.post", start, err) }()

	t, err := s.svc.Create(ctx, d)
	if err != nil {
		return Truck{}, fmt.Errorf("post truck: %w", err)
	}
	return t, nil
}

// Update applies the set fields of p.
func (s *TruckService) Update(ctx context.Context, id string, p TruckPatch) (_ Truck, err error) {
	start := time.Now()
	defer func() { s.obs.observe("truck.update", start, err) }()

	tp, err := truckpatch.New(p)
	if err != nil {
		return Truck{}, fmt.Errorf("update truck: %w", err)
	}
	t, err := s.svc.Update(ctx, id, tp)
	if err != nil {
		return Truck{}, fmt.Errorf("update truck: %w", err)
	}
	return t, nil
}

// Delete removes a posting and reports whether it existed.
func (s *TruckService) Delete(ctx context.Context, id string) (_ bool, err error) {
	start := time.Now()
	defer func() { s.obs.observe("truck.delete", start, err) }()

	deleted, err := s.svc.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete truck: %w", err)
	}
	return deleted, nil
}
