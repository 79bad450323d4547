package truck

import (
	"context"

	domtruck "github.com/boxaloo/boxaloo/internal/domain/truck"
	"github.com/boxaloo/boxaloo/internal/domain/truck/patch"
)

// Repository defines the storage contract for truck postings.
type Repository interface {
	Find(ctx context.Context, f domtruck.Filter) ([]domtruck.Truck, error)
	Get(ctx context.Context, id string) (domtruck.Truck, error)
	Create(ctx context.Context, t domtruck.Truck) (domtruck.Truck, error)
	Patch(ctx context.Context, id string, p patch.Patch) (domtruck.Truck, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}
