package domain

import (
	"errors"
	"testing"
)

func TestSentinelHierarchy(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		parent error
	}{
		{"load not found", ErrLoadNotFound, ErrNotFound},
		{"truck not found", ErrTruckNotFound, ErrNotFound},
		{"city not found", ErrCityNotFound, ErrNotFound},
		{"load not available", ErrLoadNotAvailable, ErrInvalidState},
		{"invalid transition", ErrInvalidTransition, ErrInvalidState},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.parent) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.parent)
			}
		})
	}

	if errors.Is(ErrLoadNotFound, ErrInvalidState) {
		t.Error("not-found must not match invalid-state")
	}
	if errors.Is(ErrLoadNotAvailable, ErrNotFound) {
		t.Error("not-available must not match not-found")
	}
}

func TestValidationError(t *testing.T) {
	err := Invalid("weight", "must be positive")

	if !errors.Is(err, ErrValidation) {
		t.Error("expected error to match ErrValidation")
	}

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatal("expected *ValidationError")
	}
	if ve.Field != "weight" {
		t.Errorf("Field = %q, want weight", ve.Field)
	}
	if err.Error() != "validation failed: weight: must be positive" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestParseEquipment(t *testing.T) {
	tests := []struct {
		in   string
		want Equipment
	}{
		{"dry_van", EquipmentDryVan},
		{"Dry Van", EquipmentDryVan},
		{"van", EquipmentDryVan},
		{"Reefer", EquipmentReefer},
		{"refrigerated", EquipmentReefer},
		{"Step-Deck", EquipmentStepDeck},
		{" flatbed ", EquipmentFlatbed},
		{"Power Only", EquipmentPowerOnly},
		{"box truck", EquipmentBoxTruck},
		{"tanker", EquipmentTanker},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseEquipment(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseEquipment(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseEquipment_Unknown(t *testing.T) {
	_, err := ParseEquipment("hovercraft")
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}
