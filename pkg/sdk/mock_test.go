package boxaloo

import (
	"context"
	"time"

	"github.com/boxaloo/boxaloo/internal/domain"
	"github.com/boxaloo/boxaloo/internal/domain/city"
	domload "github.com/boxaloo/boxaloo/internal/domain/load"
	loadpatch "github.com/boxaloo/boxaloo/internal/domain/load/patch"
	domtruck "github.com/boxaloo/boxaloo/internal/domain/truck"
	truckpatch "github.com/boxaloo/boxaloo/internal/domain/truck/patch"
	healthuc "github.com/boxaloo/boxaloo/internal/usecase/health"
)

// --- loadUseCase mock ---

type mockLoadUC struct {
	listFn       func(ctx context.Context, f domload.Filter) ([]domload.Load, error)
	availableFn  func(ctx context.Context) ([]domload.Load, error)
	getFn        func(ctx context.Context, id string) (domload.Load, error)
	createFn     func(ctx context.Context, d domload.Draft) (domload.Load, error)
	updateFn     func(ctx context.Context, id string, p loadpatch.Patch) (domload.Load, error)
	deleteFn     func(ctx context.Context, id string) (bool, error)
	claimFn      func(ctx context.Context, id, claimantID, claimantLabel string) (domload.Load, error)
	transitionFn func(ctx context.Context, id string, next domload.Status) (domload.Load, error)
}

func (m *mockLoadUC) List(ctx context.Context, f domload.Filter) ([]domload.Load, error) {
	return m.listFn(ctx, f)
}

func (m *mockLoadUC) Available(ctx context.Context) ([]domload.Load, error) {
	return m.availableFn(ctx)
}

func (m *mockLoadUC) Get(ctx context.Context, id string) (domload.Load, error) {
	return m.getFn(ctx, id)
}

func (m *mockLoadUC) Create(ctx context.Context, d domload.Draft) (domload.Load, error) {
	return m.createFn(ctx, d)
}

func (m *mockLoadUC) Update(ctx context.Context, id string, p loadpatch.Patch) (domload.Load, error) {
	return m.updateFn(ctx, id, p)
}

func (m *mockLoadUC) Delete(ctx context.Context, id string) (bool, error) {
	return m.deleteFn(ctx, id)
}

func (m *mockLoadUC) Claim(ctx context.Context, id, claimantID, claimantLabel string) (domload.Load, error) {
	return m.claimFn(ctx, id, claimantID, claimantLabel)
}

func (m *mockLoadUC) Transition(ctx context.Context, id string, next domload.Status) (domload.Load, error) {
	return m.transitionFn(ctx, id, next)
}

// --- truckUseCase mock ---

type mockTruckUC struct {
	listFn   func(ctx context.Context, f domtruck.Filter) ([]domtruck.Truck, error)
	getFn    func(ctx context.Context, id string) (domtruck.Truck, error)
	createFn func(ctx context.Context, d domtruck.Draft) (domtruck.Truck, error)
	updateFn func(ctx context.Context, id string, p truckpatch.Patch) (domtruck.Truck, error)
	deleteFn func(ctx context.Context, id string) (bool, error)
}

func (m *mockTruckUC) List(ctx context.Context, f domtruck.Filter) ([]domtruck.Truck, error) {
	return m.listFn(ctx, f)
}

func (m *mockTruckUC) Get(ctx context.Context, id string) (domtruck.Truck, error) {
	return m.getFn(ctx, id)
}

func (m *mockTruckUC) Create(ctx context.Context, d domtruck.Draft) (domtruck.Truck, error) {
	return m.createFn(ctx, d)
}

func (m *mockTruckUC) Update(ctx context.Context, id string, p truckpatch.Patch) (domtruck.Truck, error) {
	return m.updateFn(ctx, id, p)
}

func (m *mockTruckUC) Delete(ctx context.Context, id string) (bool, error) {
	return m.deleteFn(ctx, id)
}

// --- cityUseCase mock ---

type mockCityUC struct {
	searchFn func(ctx context.Context, query string, limit int) []string
	lookupFn func(ctx context.Context, formatted string) (city.City, error)
}

func (m *mockCityUC) Search(ctx context.Context, query string, limit int) []string {
	return m.searchFn(ctx, query, limit)
}

func (m *mockCityUC) Lookup(ctx context.Context, formatted string) (city.City, error) {
	return m.lookupFn(ctx, formatted)
}

// --- healthUseCase mock ---

type mockHealthUC struct {
	report healthuc.Report
}

func (m *mockHealthUC) Check(context.Context) healthuc.Report { return m.report }

// --- helpers ---

func testDraft() LoadDraft {
	return LoadDraft{
		Broker: Broker{ID: "BRK-100", Name: "Dana Whitfield", Company: "Lakeshore Logistics"},
		Route: Route{
			Pickup:       "Chicago, IL",
			Delivery:     "Dallas, TX",
			PickupDate:   time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			DeliveryDate: time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		},
		Weight:    42000,
		Rate:      2450,
		Distance:  925,
		Equipment: domain.EquipmentDryVan,
		Type:      domload.TypeFull,
	}
}

func fixedClock() time.Time {
	return time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
}
