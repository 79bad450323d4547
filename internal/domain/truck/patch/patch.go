package patch

import (
	"strings"
	"time"

	"github.com/boxaloo/boxaloo/internal/domain"
	"github.com/boxaloo/boxaloo/internal/domain/truck"
)

// Fields lists the patchable truck fields. Nil fields are unchanged.
type Fields struct {
	CarrierName   *string
	City          *string
	State         *string
	Equipment     *domain.Equipment
	AvailableDate *time.Time
	Capacity      *int
	Status        *truck.Status
}

// Patch is a partial truck update.
type Patch struct {
	fields Fields
}

// New validates and creates a Patch. At least one field must be provided.
func New(f Fields) (Patch, error) {
	if f == (Fields{}) {
		return Patch{}, domain.Invalid("patch", "at least one field must be provided")
	}
	return Patch{fields: f}, nil
}

// Fields returns the patch contents.
func (p Patch) Fields() Fields { return p.fields }

// Apply merges the set fields into t; t is untouched when the result is invalid.
func (p Patch) Apply(t *truck.Truck) error {
	next := *t
	f := p.fields

	if f.CarrierName != nil {
		next.Carrier.Name = strings.TrimSpace(*f.CarrierName)
	}
	if f.City != nil {
		next.City = strings.TrimSpace(*f.City)
	}
	if f.State != nil {
		next.State = strings.ToUpper(strings.TrimSpace(*f.State))
	}
	if f.Equipment != nil {
		next.Equipment = *f.Equipment
	}
	if f.AvailableDate != nil {
		next.AvailableDate = *f.AvailableDate
	}
	if f.Capacity != nil {
		next.Capacity = *f.Capacity
	}
	if f.Status != nil {
		next.Status = *f.Status
	}

	if err := next.Validate(); err != nil {
		return err
	}
	*t = next
	return nil
}
