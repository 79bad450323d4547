package domain

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the wire format of pickup, delivery and availability dates.
const DateLayout = time.DateOnly

// Equipment is the trailer type a load requires or a truck offers.
type Equipment string

// Equipment types.
const (
	EquipmentDryVan    Equipment = "dry_van"
	EquipmentReefer    Equipment = "reefer"
	EquipmentFlatbed   Equipment = "flatbed"
	EquipmentStepDeck  Equipment = "step_deck"
	EquipmentPowerOnly Equipment = "power_only"
	EquipmentBoxTruck  Equipment = "box_truck"
	EquipmentTanker    Equipment = "tanker"
)

var equipmentAliases = map[string]Equipment{
	"van":          EquipmentDryVan,
	"refrigerated": EquipmentReefer,
}

// IsValid checks if the equipment type is supported.
func (e Equipment) IsValid() bool {
	switch e {
	case EquipmentDryVan, EquipmentReefer, EquipmentFlatbed, EquipmentStepDeck,
		EquipmentPowerOnly, EquipmentBoxTruck, EquipmentTanker:
		return true
	}
	return false
}

// ParseEquipment accepts canonical names and the labels the UI displays ("Dry Van", "Step-Deck").
func ParseEquipment(s string) (Equipment, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "_", "-", "_").Replace(norm)
	if e := Equipment(norm); e.IsValid() {
		return e, nil
	}
	if e, ok := equipmentAliases[norm]; ok {
		return e, nil
	}
	return "", Invalid("equipmentType", "unsupported equipment type "+strconv.Quote(s))
}
