package load

import (
	"context"

	domload "github.com/boxaloo/boxaloo/internal/domain/load"
	"github.com/boxaloo/boxaloo/internal/domain/load/patch"
)

// Repository defines the storage contract for loads.
type Repository interface {
	Find(ctx context.Context, f domload.Filter) ([]domload.Load, error)
	Get(ctx context.Context, id string) (domload.Load, error)
	Create(ctx context.Context, l domload.Load) (domload.Load, error)
	Patch(ctx context.Context, id string, p patch.Patch) (domload.Load, error)
	Delete(ctx context.Context, id string) (bool, error)
	Claim(ctx context.Context, id, claimantID, claimantLabel string) (domload.Load, error)
	Transition(ctx context.Context, id string, next domload.Status) (domload.Load, error)
	Count(ctx context.Context) (int, error)
}
