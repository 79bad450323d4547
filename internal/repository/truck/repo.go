package truck

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/boxaloo/boxaloo/internal/db"
	"github.com/boxaloo/boxaloo/internal/db/memory"
	"github.com/boxaloo/boxaloo/internal/domain"
	domtruck "github.com/boxaloo/boxaloo/internal/domain/truck"
	"github.com/boxaloo/boxaloo/internal/domain/truck/patch"
)

// IDPrefix prefixes generated truck ids (TRUCK-001).
const IDPrefix = "TRUCK"

// Repo implements usecase/truck.Repository on a memory table.
type Repo struct {
	table *memory.Table[domtruck.Truck]
	now   func() time.Time
}

// New creates an empty truck repository.
func New() *Repo {
	return &Repo{
		table: memory.NewTable[domtruck.Truck](IDPrefix, func(t *domtruck.Truck) string { return t.ID }),
		now:   time.Now,
	}
}

// WithClock replaces the timestamp source used for PostedAt.
func (r *Repo) WithClock(now func() time.Time) *Repo {
	r.now = now
	return r
}

// Seed loads fixture records as-is.
func (r *Repo) Seed(trucks []domtruck.Truck) error {
	if err := r.table.Seed(trucks); err != nil {
		return fmt.Errorf("seed trucks: %w", err)
	}
	return nil
}

// Find returns the trucks matching f in posting order.
func (r *Repo) Find(ctx context.Context, f domtruck.Filter) ([]domtruck.Truck, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f == (domtruck.Filter{}) {
		return r.table.List(), nil
	}
	return r.table.Filter(f.Matches), nil
}

// Get returns a truck by ID.
func (r *Repo) Get(ctx context.Context, id string) (domtruck.Truck, error) {
	if err := ctx.Err(); err != nil {
		return domtruck.Truck{}, err
	}
	t, err := r.table.Get(id)
	if err != nil {
		return domtruck.Truck{}, mapErr(id, err)
	}
	return t, nil
}

// Create assigns the next TRUCK-NNN id, stamps PostedAt and stores the truck.
func (r *Repo) Create(ctx context.Context, t domtruck.Truck) (domtruck.Truck, error) {
	if err := ctx.Err(); err != nil {
		return domtruck.Truck{}, err
	}
	created, err := r.table.Insert(func(id string) (domtruck.Truck, error) {
		t.ID = id
		t.PostedAt = r.now().UTC()
		return t, nil
	})
	if err != nil {
		return domtruck.Truck{}, fmt.Errorf("insert truck: %w", err)
	}
	return created, nil
}

// Patch merges p into the stored truck.
func (r *Repo) Patch(ctx context.Context, id string, p patch.Patch) (domtruck.Truck, error) {
	if err := ctx.Err(); err != nil {
		return domtruck.Truck{}, err
	}
	t, err := r.table.Update(id, p.Apply)
	if err != nil {
		return domtruck.Truck{}, mapErr(id, err)
	}
	return t, nil
}

// Delete removes a truck and reports whether it existed.
func (r *Repo) Delete(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return r.table.Delete(id), nil
}

// Count returns the number of stored trucks.
func (r *Repo) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return r.table.Len(), nil
}

func mapErr(id string, err error) error {
	if errors.Is(err, db.ErrKeyNotFound) {
		return fmt.Errorf("%s: %w", id, domain.ErrTruckNotFound)
	}
	return err
}
