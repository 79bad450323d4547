package load

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/boxaloo/boxaloo/internal/db"
	"github.com/boxaloo/boxaloo/internal/db/memory"
	"github.com/boxaloo/boxaloo/internal/domain"
	domload "github.com/boxaloo/boxaloo/internal/domain/load"
	"github.com/boxaloo/boxaloo/internal/domain/load/patch"
)

// IDPrefix prefixes generated load ids (LOAD-001).
const IDPrefix = "LOAD"

// Repo implements usecase/load.Repository on a memory table.
type Repo struct {
	table *memory.Table[domload.Load]
	now   func() time.Time
}

// New creates an empty load repository.
func New() *Repo {
	return &Repo{
		table: memory.NewTable[domload.Load](IDPrefix, func(l *domload.Load) string { return l.ID }),
		now:   time.Now,
	}
}

// WithClock replaces the timestamp source used for PostedAt and ClaimedAt.
func (r *Repo) WithClock(now func() time.Time) *Repo {
	r.now = now
	return r
}

// Seed loads fixture records as-is.
func (r *Repo) Seed(loads []domload.Load) error {
	if err := r.table.Seed(loads); err != nil {
		return fmt.Errorf("seed loads: %w", err)
	}
	return nil
}

// List returns every load in posting order.
func (r *Repo) List(ctx context.Context) ([]domload.Load, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.table.List(), nil
}

// Find returns the loads matching f in posting order.
func (r *Repo) Find(ctx context.Context, f domload.Filter) ([]domload.Load, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.IsEmpty() {
		return r.table.List(), nil
	}
	return r.table.Filter(f.Matches), nil
}

// Get returns a load by ID.
func (r *Repo) Get(ctx context.Context, id string) (domload.Load, error) {
	if err := ctx.Err(); err != nil {
		return domload.Load{}, err
	}
	l, err := r.table.Get(id)
	if err != nil {
		return domload.Load{}, mapErr(id, err)
	}
	return l, nil
}

// Create assigns the next LOAD-NNN id, stamps PostedAt and stores the load.
func (r *Repo) Create(ctx context.Context, l domload.Load) (domload.Load, error) {
	if err := ctx.Err(); err != nil {
		return domload.Load{}, err
	}
	created, err := r.table.Insert(func(id string) (domload.Load, error) {
		l.ID = id
		l.PostedAt = r.now().UTC()
		return l, nil
	})
	if err != nil {
		return domload.Load{}, fmt.Errorf("insert load: %w", err)
	}
	return created, nil
}

// Patch merges p into the stored load.
func (r *Repo) Patch(ctx context.Context, id string, p patch.Patch) (domload.Load, error) {
	if err := ctx.Err(); err != nil {
		return domload.Load{}, err
	}
	l, err := r.table.Update(id, p.Apply)
	if err != nil {
		return domload.Load{}, mapErr(id, err)
	}
	return l, nil
}

// Delete removes a load and reports whether it existed.
func (r *Repo) Delete(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return r.table.Delete(id), nil
}

// Claim checks availability and stamps the claimant in one table step.
func (r *Repo) Claim(ctx context.Context, id, claimantID, claimantLabel string) (domload.Load, error) {
	if err := ctx.Err(); err != nil {
		return domload.Load{}, err
	}
	l, err := r.table.Update(id, func(l *domload.Load) error {
		return l.Claim(claimantID, claimantLabel, r.now().UTC())
	})
	if err != nil {
		return domload.Load{}, mapErr(id, err)
	}
	return l, nil
}

// Transition moves the load along its lifecycle.
func (r *Repo) Transition(ctx context.Context, id string, next domload.Status) (domload.Load, error) {
	if err := ctx.Err(); err != nil {
		return domload.Load{}, err
	}
	l, err := r.table.Update(id, func(l *domload.Load) error {
		return l.Transition(next)
	})
	if err != nil {
		return domload.Load{}, mapErr(id, err)
	}
	return l, nil
}

// Count returns the number of stored loads.
func (r *Repo) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return r.table.Len(), nil
}

func mapErr(id string, err error) error {
	if errors.Is(err, db.ErrKeyNotFound) {
		return fmt.Errorf("%s: %w", id, domain.ErrLoadNotFound)
	}
	return err
}
