package load

import (
	"context"
	"testing"
	"time"

	"github.com/boxaloo/boxaloo/internal/domain"
	domload "github.com/boxaloo/boxaloo/internal/domain/load"
)

var fixedNow = time.Date(2026, 3, 2, 15, 4, 5, 0, time.UTC)

func newTestRepo(t *testing.T) *Repo {
	t.Helper()
	return New().WithClock(func() time.Time { return fixedNow })
}

func testLoad(t *testing.T, brokerID string) domload.Load {
	t.Helper()
	l, err := domload.New(domload.Draft{
		Broker: domload.Broker{ID: brokerID, Name: "Dana Broker", Company: "Lakeside Freight"},
		Route: domload.Route{
			Pickup:       "Chicago, IL",
			Delivery:     "Dallas, TX",
			PickupDate:   time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			DeliveryDate: time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		},
		Weight:    42000,
		Rate:      2850,
		Distance:  925,
		Equipment: domain.EquipmentDryVan,
	})
	if err != nil {
		t.Fatalf("domload.New: %v", err)
	}
	return l
}

func mustCreate(t *testing.T, repo *Repo, brokerID string) domload.Load {
	t.Helper()
	l, err := repo.Create(context.Background(), testLoad(t, brokerID))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return l
}
