package fixtures

import (
	"fmt"
	"time"

	"github.com/boxaloo/boxaloo/internal/domain"
	"github.com/boxaloo/boxaloo/internal/domain/load"
	"github.com/boxaloo/boxaloo/internal/domain/truck"
)

type loadDTO struct {
	ID     string `yaml:"id"`
	Broker struct {
		ID      string `yaml:"id"`
		Name    string `yaml:"name"`
		Company string `yaml:"company"`
		MC      string `yaml:"mc"`
	} `yaml:"broker"`
	Pickup          string  `yaml:"pickup"`
	Delivery        string  `yaml:"delivery"`
	PickupDate      string  `yaml:"pickup_date"`
	DeliveryDate    string  `yaml:"delivery_date"`
	Weight          int     `yaml:"weight"`
	Rate            float64 `yaml:"rate"`
	Distance        int     `yaml:"distance"`
	Equipment       string  `yaml:"equipment"`
	Type            string  `yaml:"type"`
	Status          string  `yaml:"status"`
	ClaimedBy       string  `yaml:"claimed_by"`
	AssignedCarrier string  `yaml:"assigned_carrier"`
	ClaimedAt       string  `yaml:"claimed_at"`
	PostedAt        string  `yaml:"posted_at"`
	Notes           string  `yaml:"notes"`
}

func (d *loadDTO) toDomain() (load.Load, error) {
	l := load.Load{
		ID: d.ID,
		Broker: load.Broker{
			ID:      d.Broker.ID,
			Name:    d.Broker.Name,
			Company: d.Broker.Company,
			MC:      d.Broker.MC,
		},
		Route: load.Route{
			Pickup:   d.Pickup,
			Delivery: d.Delivery,
		},
		Weight:          d.Weight,
		Rate:            d.Rate,
		Distance:        d.Distance,
		Equipment:       domain.Equipment(d.Equipment),
		Type:            load.Type(d.Type),
		Status:          load.Status(d.Status),
		ClaimedBy:       d.ClaimedBy,
		AssignedCarrier: d.AssignedCarrier,
		Notes:           d.Notes,
	}

	var err error
	if l.Route.PickupDate, err = parseDate(d.PickupDate); err != nil {
		return load.Load{}, fmt.Errorf("%s pickup_date: %w", d.ID, err)
	}
	if l.Route.DeliveryDate, err = parseDate(d.DeliveryDate); err != nil {
		return load.Load{}, fmt.Errorf("%s delivery_date: %w", d.ID, err)
	}
	if l.ClaimedAt, err = parseTimestamp(d.ClaimedAt); err != nil {
		return load.Load{}, fmt.Errorf("%s claimed_at: %w", d.ID, err)
	}
	if l.PostedAt, err = parseTimestamp(d.PostedAt); err != nil {
		return load.Load{}, fmt.Errorf("%s posted_at: %w", d.ID, err)
	}
	if !l.Status.IsValid() {
		return load.Load{}, fmt.Errorf("%s: unknown status %q", d.ID, d.Status)
	}
	if err := l.Validate(); err != nil {
		return load.Load{}, fmt.Errorf("%s: %w", d.ID, err)
	}
	return l, nil
}

type truckDTO struct {
	ID      string `yaml:"id"`
	Carrier struct {
		ID   string `yaml:"id"`
		Name string `yaml:"name"`
	} `yaml:"carrier"`
	City          string `yaml:"city"`
	State         string `yaml:"state"`
	Equipment     string `yaml:"equipment"`
	AvailableDate string `yaml:"available_date"`
	Capacity      int    `yaml:"capacity"`
	Status        string `yaml:"status"`
	PostedAt      string `yaml:"posted_at"`
}

func (d *truckDTO) toDomain() (truck.Truck, error) {
	t := truck.Truck{
		ID:        d.ID,
		Carrier:   truck.Carrier{ID: d.Carrier.ID, Name: d.Carrier.Name},
		City:      d.City,
		State:     d.State,
		Equipment: domain.Equipment(d.Equipment),
		Capacity:  d.Capacity,
		Status:    truck.Status(d.Status),
	}

	var err error
	if t.AvailableDate, err = parseDate(d.AvailableDate); err != nil {
		return truck.Truck{}, fmt.Errorf("%s available_date: %w", d.ID, err)
	}
	if t.PostedAt, err = parseTimestamp(d.PostedAt); err != nil {
		return truck.Truck{}, fmt.Errorf("%s posted_at: %w", d.ID, err)
	}
	if err := t.Validate(); err != nil {
		return truck.Truck{}, fmt.Errorf("%s: %w", d.ID, err)
	}
	return t, nil
}

// Empty strings decode to the zero time.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(domain.DateLayout, s)
}

func parseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, s)
}
