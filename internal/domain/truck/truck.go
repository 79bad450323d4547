package truck

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/boxaloo/boxaloo/internal/domain"
)

var stateRegex = regexp.MustCompile(`^[A-Z]{2}$`)

// Status is a truck posting's availability.
type Status string

// Truck statuses.
const (
	StatusAvailable   Status = "available"
	StatusBooked      Status = "booked"
	StatusInTransit   Status = "in_transit"
	StatusMaintenance Status = "maintenance"
)

// IsValid checks if the status is supported.
func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusBooked, StatusInTransit, StatusMaintenance:
		return true
	}
	return false
}

// Carrier identifies who posted the capacity.
type Carrier struct {
	ID   string
	Name string
}

// Truck is a capacity posting. Plain data: copies share nothing.
type Truck struct {
	ID            string
	Carrier       Carrier
	City          string
	State         string // two-letter code
	Equipment     domain.Equipment
	AvailableDate time.Time
	Capacity      int // lbs
	Status        Status
	PostedAt      time.Time
}

// Draft holds the carrier-supplied fields of a new posting.
type Draft struct {
	Carrier       Carrier
	City          string
	State         string
	Equipment     domain.Equipment
	AvailableDate time.Time
	Capacity      int
	Status        Status // optional, defaults to available
}

// New validates a draft. ID and PostedAt are assigned by the store.
func New(d Draft) (Truck, error) {
	t := Truck{
		Carrier: Carrier{
			ID:   strings.TrimSpace(d.Carrier.ID),
			Name: strings.TrimSpace(d.Carrier.Name),
		},
		City:          strings.TrimSpace(d.City),
		State:         strings.ToUpper(strings.TrimSpace(d.State)),
		Equipment:     d.Equipment,
		AvailableDate: d.AvailableDate,
		Capacity:      d.Capacity,
		Status:        d.Status,
	}
	if t.Status == "" {
		t.Status = StatusAvailable
	}
	if t.Carrier.ID == "" {
		return Truck{}, domain.Invalid("carrierId", "is required")
	}
	if err := t.Validate(); err != nil {
		return Truck{}, err
	}
	return t, nil
}

// Validate checks the field-level invariants shared by creation and patching.
func (t *Truck) Validate() error {
	if t.City == "" {
		return domain.Invalid("city", "is required")
	}
	if !stateRegex.MatchString(t.State) {
		return domain.Invalid("state", "must be a two-letter state code")
	}
	if !t.Equipment.IsValid() {
		return domain.Invalid("equipmentType", fmt.Sprintf("unsupported equipment type %q", t.Equipment))
	}
	if t.AvailableDate.IsZero() {
		return domain.Invalid("availableDate", "is required")
	}
	if t.Capacity <= 0 {
		return domain.Invalid("capacity", "must be positive")
	}
	if !t.Status.IsValid() {
		return domain.Invalid("status", fmt.Sprintf("unknown status %q", t.Status))
	}
	return nil
}

// Location returns the "City, ST" display form.
func (t *Truck) Location() string {
	return t.City + ", " + t.State
}

// Filter selects trucks by field equality. Empty fields match everything.
type Filter struct {
	Status    Status
	CarrierID string
	Equipment domain.Equipment
}

// Matches reports whether t satisfies every set field.
func (f Filter) Matches(t *Truck) bool {
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.CarrierID != "" && t.Carrier.ID != f.CarrierID {
		return false
	}
	if f.Equipment != "" && t.Equipment != f.Equipment {
		return false
	}
	return true
}
