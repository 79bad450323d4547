// Package fixtures holds the demo records seeded into the stores at start.
package fixtures

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/boxaloo/boxaloo/internal/domain/load"
	"github.com/boxaloo/boxaloo/internal/domain/truck"
)

var (
	//go:embed data/loads.yaml
	loadsYAML []byte

	//go:embed data/trucks.yaml
	trucksYAML []byte
)

// Loads decodes the embedded load fixtures.
func Loads() ([]load.Load, error) {
	return ParseLoads(loadsYAML)
}

// Trucks decodes the embedded truck fixtures.
func Trucks() ([]truck.Truck, error) {
	return ParseTrucks(trucksYAML)
}

// ParseLoads decodes a YAML list of loads. Every record is validated.
func ParseLoads(data []byte) ([]load.Load, error) {
	var dtos []loadDTO
	if err := yaml.Unmarshal(data, &dtos); err != nil {
		return nil, fmt.Errorf("parse load fixtures: %w", err)
	}
	out := make([]load.Load, 0, len(dtos))
	for i := range dtos {
		l, err := dtos[i].toDomain()
		if err != nil {
			return nil, fmt.Errorf("load fixture: %w", err)
		}
		out = append(out, l)
	}
	return out, nil
}

// ParseTrucks decodes a YAML list of trucks. Every record is validated.
func ParseTrucks(data []byte) ([]truck.Truck, error) {
	var dtos []truckDTO
	if err := yaml.Unmarshal(data, &dtos); err != nil {
		return nil, fmt.Errorf("parse truck fixtures: %w", err)
	}
	out := make([]truck.Truck, 0, len(dtos))
	for i := range dtos {
		t, err := dtos[i].toDomain()
		if err != nil {
			return nil, fmt.Errorf("truck fixture: %w", err)
		}
		out = append(out, t)
	}
	return out, nil
}
