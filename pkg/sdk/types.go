package boxaloo

import (
	"github.com/boxaloo/boxaloo/internal/domain"
	domload "github.com/boxaloo/boxaloo/internal/domain/load"
	loadpatch "github.com/boxaloo/boxaloo/internal/domain/load/patch"
	domtruck "github.com/boxaloo/boxaloo/internal/domain/truck"
	truckpatch "github.com/boxaloo/boxaloo/internal/domain/truck/patch"
)

// Load board records. The aliases expose the domain types directly.
type (
	Load       = domload.Load
	LoadDraft  = domload.Draft
	LoadFilter = domload.Filter
	LoadStatus = domload.Status
	LoadType   = domload.Type
	Broker     = domload.Broker
	Route      = domload.Route

	// LoadPatch lists the load fields to change. Nil fields are left as they are.
	LoadPatch = loadpatch.Fields

	Truck       = domtruck.Truck
	TruckDraft  = domtruck.Draft
	TruckFilter = domtruck.Filter
	TruckStatus = domtruck.Status
	Carrier     = domtruck.Carrier

	// TruckPatch lists the truck fields to change. Nil fields are left as they are.
	TruckPatch = truckpatch.Fields

	Equipment = domain.Equipment
)

// Load statuses.
const (
	LoadAvailable = domload.StatusAvailable
	LoadClaimed   = domload.StatusClaimed
	LoadInTransit = domload.StatusInTransit
	LoadDelivered = domload.StatusDelivered
	LoadCancelled = domload.StatusCancelled
)

// Truck statuses.
const (
	TruckAvailable   = domtruck.StatusAvailable
	TruckBooked      = domtruck.StatusBooked
	TruckInTransit   = domtruck.StatusInTransit
	TruckMaintenance = domtruck.StatusMaintenance
)

// City is an autocomplete entry.
type City struct {
	Name       string
	StateCode  string
	StateName  string
	County     string
	Population int
	Formatted  string // "Name, ST"
}
