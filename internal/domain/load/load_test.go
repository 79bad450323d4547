package load

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/boxaloo/boxaloo/internal/domain"
)

func date(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func validDraft() Draft {
	return Draft{
		Broker: Broker{ID: "BRK-1", Name: "Dana Ruiz", Company: "Ruiz Logistics"},
		Route: Route{
			Pickup:       "Chicago, IL",
			Delivery:     "Dallas, TX",
			PickupDate:   date("2026-11-02"),
			DeliveryDate: date("2026-11-04"),
		},
		Weight:    42000,
		Rate:      2450,
		Distance:  967,
		Equipment: domain.EquipmentDryVan,
		Type:      TypeFull,
	}
}

func TestNew_Valid(t *testing.T) {
	l, err := New(validDraft())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Status != StatusAvailable {
		t.Errorf("Status = %q, want available", l.Status)
	}
	if l.ID != "" {
		t.Errorf("ID = %q, want empty until stored", l.ID)
	}
	if l.ClaimedBy != "" || l.AssignedCarrier != "" {
		t.Error("claimant fields must be empty on a new load")
	}
}

func TestNew_DefaultsToFullTruckload(t *testing.T) {
	d := validDraft()
	d.Type = ""
	l, err := New(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Type != TypeFull {
		t.Errorf("Type = %q, want FTL", l.Type)
	}
}

func TestNew_TrimsStrings(t *testing.T) {
	d := validDraft()
	d.Broker.ID = "  BRK-1 "
	d.Route.Pickup = " Chicago, IL "
	l, err := New(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Broker.ID != "BRK-1" || l.Route.Pickup != "Chicago, IL" {
		t.Errorf("strings not trimmed: %q / %q", l.Broker.ID, l.Route.Pickup)
	}
}

func TestNew_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Draft)
		field  string
	}{
		{"missing broker", func(d *Draft) { d.Broker.ID = "" }, "brokerId"},
		{"missing pickup", func(d *Draft) { d.Route.Pickup = "" }, "pickupLocation"},
		{"missing delivery", func(d *Draft) { d.Route.Delivery = " " }, "deliveryLocation"},
		{"missing pickup date", func(d *Draft) { d.Route.PickupDate = time.Time{} }, "pickupDate"},
		{"delivery before pickup", func(d *Draft) { d.Route.DeliveryDate = date("2026-11-01") }, "deliveryDate"},
		{"zero weight", func(d *Draft) { d.Weight = 0 }, "weight"},
		{"negative rate", func(d *Draft) { d.Rate = -1 }, "rate"},
		{"negative distance", func(d *Draft) { d.Distance = -5 }, "distance"},
		{"bad equipment", func(d *Draft) { d.Equipment = "sled" }, "equipmentType"},
		{"bad load type", func(d *Draft) { d.Type = "XTL" }, "loadType"},
		{"notes too long", func(d *Draft) { d.Notes = strings.Repeat("x", MaxNotesSize+1) }, "notes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)
			_, err := New(d)
			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Field != tt.field {
				t.Errorf("Field = %q, want %q", ve.Field, tt.field)
			}
		})
	}
}

func TestClaim_Available(t *testing.T) {
	l, _ := New(validDraft())
	at := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	if err := l.Claim("CAR-7", "Swift Lane Trucking", at); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Status != StatusClaimed {
		t.Errorf("Status = %q, want claimed", l.Status)
	}
	if l.ClaimedBy != "CAR-7" || l.AssignedCarrier != "Swift Lane Trucking" {
		t.Errorf("claimant = %q/%q", l.ClaimedBy, l.AssignedCarrier)
	}
	if !l.ClaimedAt.Equal(at) {
		t.Errorf("ClaimedAt = %v, want %v", l.ClaimedAt, at)
	}
}

func TestClaim_LabelDefaultsToID(t *testing.T) {
	l, _ := New(validDraft())
	if err := l.Claim("CAR-7", "", time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.AssignedCarrier != "CAR-7" {
		t.Errorf("AssignedCarrier = %q, want CAR-7", l.AssignedCarrier)
	}
}

func TestClaim_NotAvailableLeavesLoadUntouched(t *testing.T) {
	for _, st := range []Status{StatusClaimed, StatusInTransit, StatusDelivered, StatusCancelled} {
		t.Run(string(st), func(t *testing.T) {
			l, _ := New(validDraft())
			l.Status = st
			l.ClaimedBy = "CAR-1"
			before := l

			err := l.Claim("CAR-2", "Other", time.Now())
			if !errors.Is(err, domain.ErrLoadNotAvailable) {
				t.Fatalf("expected ErrLoadNotAvailable, got %v", err)
			}
			if l != before {
				t.Errorf("load mutated on failed claim: %+v", l)
			}
		})
	}
}

func TestTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		ok       bool
	}{
		{StatusClaimed, StatusInTransit, true},
		{StatusInTransit, StatusDelivered, true},
		{StatusAvailable, StatusCancelled, true},
		{StatusClaimed, StatusCancelled, true},
		{StatusInTransit, StatusCancelled, true},
		{StatusAvailable, StatusClaimed, false},
		{StatusAvailable, StatusInTransit, false},
		{StatusAvailable, StatusDelivered, false},
		{StatusClaimed, StatusAvailable, false},
		{StatusDelivered, StatusCancelled, false},
		{StatusCancelled, StatusAvailable, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			l := Load{Status: tt.from}
			err := l.Transition(tt.to)
			if tt.ok {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if l.Status != tt.to {
					t.Errorf("Status = %q, want %q", l.Status, tt.to)
				}
				return
			}
			if !errors.Is(err, domain.ErrInvalidTransition) {
				t.Fatalf("expected ErrInvalidTransition, got %v", err)
			}
			if l.Status != tt.from {
				t.Errorf("Status changed to %q on refused transition", l.Status)
			}
		})
	}
}

func TestTransition_UnknownStatus(t *testing.T) {
	l := Load{Status: StatusAvailable}
	if err := l.Transition("lost"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestRatePerMile(t *testing.T) {
	l := Load{Rate: 2000, Distance: 800}
	if got := l.RatePerMile(); got != 2.5 {
		t.Errorf("RatePerMile() = %v, want 2.5", got)
	}
	l.Distance = 0
	if got := l.RatePerMile(); got != 0 {
		t.Errorf("RatePerMile() = %v, want 0", got)
	}
}

func TestFilter_Matches(t *testing.T) {
	l := Load{Status: StatusClaimed, Broker: Broker{ID: "BRK-1"}, ClaimedBy: "CAR-9"}

	tests := []struct {
		name string
		f    Filter
		want bool
	}{
		{"empty", Filter{}, true},
		{"status hit", Filter{Status: StatusClaimed}, true},
		{"status miss", Filter{Status: StatusAvailable}, false},
		{"broker hit", Filter{BrokerID: "BRK-1"}, true},
		{"broker miss", Filter{BrokerID: "BRK-2"}, false},
		{"claimant hit", Filter{ClaimedBy: "CAR-9"}, true},
		{"combined miss", Filter{BrokerID: "BRK-1", Status: StatusDelivered}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.Matches(&l); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}
