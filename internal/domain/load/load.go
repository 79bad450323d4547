package load

import (
	"fmt"
	"strings"
	"time"

	"github.com/boxaloo/boxaloo/internal/domain"
)

// Broker identifies who posted a load.
type Broker struct {
	ID      string
	Name    string
	Company string
	MC      string // carrier MC number, optional
}

// Route describes pickup and delivery. Locations use the "City, ST" form.
type Route struct {
	Pickup       string
	Delivery     string
	PickupDate   time.Time
	DeliveryDate time.Time
}

// Load is a freight job posted by a broker. It is plain data: copies share nothing.
type Load struct {
	ID              string
	Broker          Broker
	Route           Route
	Weight          int     // lbs
	Rate            float64 // USD
	Distance        int     // miles
	Equipment       domain.Equipment
	Type            Type
	Status          Status
	ClaimedBy       string
	AssignedCarrier string
	ClaimedAt       time.Time
	PostedAt        time.Time
	Notes           string
}

// Draft holds the broker-supplied fields of a new load.
type Draft struct {
	Broker    Broker
	Route     Route
	Weight    int
	Rate      float64
	Distance  int
	Equipment domain.Equipment
	Type      Type
	Notes     string
}

// MaxNotesSize is the maximum notes length in bytes.
const MaxNotesSize = 2000

// New validates a draft and returns an available load without ID or PostedAt;
// the store assigns both.
func New(d Draft) (Load, error) {
	l := Load{
		Broker: Broker{
			ID:      strings.TrimSpace(d.Broker.ID),
			Name:    strings.TrimSpace(d.Broker.Name),
			Company: strings.TrimSpace(d.Broker.Company),
			MC:      strings.TrimSpace(d.Broker.MC),
		},
		Route: Route{
			Pickup:       strings.TrimSpace(d.Route.Pickup),
			Delivery:     strings.TrimSpace(d.Route.Delivery),
			PickupDate:   d.Route.PickupDate,
			DeliveryDate: d.Route.DeliveryDate,
		},
		Weight:    d.Weight,
		Rate:      d.Rate,
		Distance:  d.Distance,
		Equipment: d.Equipment,
		Type:      d.Type,
		Status:    StatusAvailable,
		Notes:     d.Notes,
	}
	if l.Type == "" {
		l.Type = TypeFull
	}
	if l.Broker.ID == "" {
		return Load{}, domain.Invalid("brokerId", "is required")
	}
	if err := l.Validate(); err != nil {
		return Load{}, err
	}
	return l, nil
}

// Validate checks the field-level invariants shared by creation and patching.
func (l *Load) Validate() error {
	if l.Route.Pickup == "" {
		return domain.Invalid("pickupLocation", "is required")
	}
	if l.Route.Delivery == "" {
		return domain.Invalid("deliveryLocation", "is required")
	}
	if l.Route.PickupDate.IsZero() {
		return domain.Invalid("pickupDate", "is required")
	}
	if !l.Route.DeliveryDate.IsZero() && l.Route.DeliveryDate.Before(l.Route.PickupDate) {
		return domain.Invalid("deliveryDate", "must not be before pickupDate")
	}
	if l.Weight <= 0 {
		return domain.Invalid("weight", "must be positive")
	}
	if l.Rate < 0 {
		return domain.Invalid("rate", "must not be negative")
	}
	if l.Distance < 0 {
		return domain.Invalid("distance", "must not be negative")
	}
	if !l.Equipment.IsValid() {
		return domain.Invalid("equipmentType", fmt.Sprintf("unsupported equipment type %q", l.Equipment))
	}
	if !l.Type.IsValid() {
		return domain.Invalid("loadType", fmt.Sprintf("must be %s or %s", TypeFull, TypePartial))
	}
	if len(l.Notes) > MaxNotesSize {
		return domain.Invalid("notes", fmt.Sprintf("too long (max %d bytes)", MaxNotesSize))
	}
	return nil
}

// Claim hands an available load to a carrier. The status change and the
// claimant fields are applied together; on error the load is untouched.
func (l *Load) Claim(claimantID, claimantLabel string, at time.Time) error {
	if l.Status != StatusAvailable {
		return fmt.Errorf("load %s is %s: %w", l.ID, l.Status, domain.ErrLoadNotAvailable)
	}
	if claimantLabel == "" {
		claimantLabel = claimantID
	}
	l.Status = StatusClaimed
	l.ClaimedBy = claimantID
	l.AssignedCarrier = claimantLabel
	l.ClaimedAt = at
	return nil
}

// Transition moves the load to next. Claims go through Claim.
func (l *Load) Transition(next Status) error {
	if !next.IsValid() {
		return domain.Invalid("status", fmt.Sprintf("unknown status %q", next))
	}
	if next == StatusClaimed || !l.Status.CanTransitionTo(next) {
		return fmt.Errorf("%s -> %s: %w", l.Status, next, domain.ErrInvalidTransition)
	}
	l.Status = next
	return nil
}

// RatePerMile returns the rate divided by distance, or 0 when distance is unknown.
func (l *Load) RatePerMile() float64 {
	if l.Distance <= 0 {
		return 0
	}
	return l.Rate / float64(l.Distance)
}
