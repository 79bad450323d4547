package patch

import (
	"fmt"
	"strings"
	"time"

	"github.com/boxaloo/boxaloo/internal/domain"
	"github.com/boxaloo/boxaloo/internal/domain/load"
)

// Fields lists the patchable load fields. Nil fields are unchanged.
// Status is absent on purpose: it moves through Claim and Transition only.
type Fields struct {
	BrokerName    *string
	BrokerCompany *string
	BrokerMC      *string
	Pickup        *string
	Delivery      *string
	PickupDate    *time.Time
	DeliveryDate  *time.Time
	Weight        *int
	Rate          *float64
	Distance      *int
	Equipment     *domain.Equipment
	Type          *load.Type
	Notes         *string
}

// Patch is a partial load update.
type Patch struct {
	fields Fields
}

// New validates and creates a Patch. At least one field must be provided.
func New(f Fields) (Patch, error) {
	if f == (Fields{}) {
		return Patch{}, domain.Invalid("patch", "at least one field must be provided")
	}
	if f.Pickup != nil && strings.TrimSpace(*f.Pickup) == "" {
		return Patch{}, domain.Invalid("pickupLocation", "must not be empty")
	}
	if f.Delivery != nil && strings.TrimSpace(*f.Delivery) == "" {
		return Patch{}, domain.Invalid("deliveryLocation", "must not be empty")
	}
	if f.Notes != nil && len(*f.Notes) > load.MaxNotesSize {
		return Patch{}, domain.Invalid("notes", fmt.Sprintf("too long (max %d bytes)", load.MaxNotesSize))
	}
	return Patch{fields: f}, nil
}

// Fields returns the patch contents.
func (p Patch) Fields() Fields { return p.fields }

// Apply merges the set fields into l. The merged record is validated and
// l is only modified when validation passes.
func (p Patch) Apply(l *load.Load) error {
	next := *l
	f := p.fields

	setString(&next.Broker.Name, f.BrokerName)
	setString(&next.Broker.Company, f.BrokerCompany)
	setString(&next.Broker.MC, f.BrokerMC)
	setString(&next.Route.Pickup, f.Pickup)
	setString(&next.Route.Delivery, f.Delivery)
	if f.PickupDate != nil {
		next.Route.PickupDate = *f.PickupDate
	}
	if f.DeliveryDate != nil {
		next.Route.DeliveryDate = *f.DeliveryDate
	}
	if f.Weight != nil {
		next.Weight = *f.Weight
	}
	if f.Rate != nil {
		next.Rate = *f.Rate
	}
	if f.Distance != nil {
		next.Distance = *f.Distance
	}
	if f.Equipment != nil {
		next.Equipment = *f.Equipment
	}
	if f.Type != nil {
		next.Type = *f.Type
	}
	if f.Notes != nil {
		next.Notes = *f.Notes
	}

	if err := next.Validate(); err != nil {
		return err
	}
	*l = next
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}
