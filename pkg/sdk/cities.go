package boxaloo

import (
	"context"
	"fmt"
	"time"

	"github.com/boxaloo/boxaloo/internal/domain/city"
)

// CityService serves the US city autocomplete.
type CityService struct {
	svc cityUseCase
	obs *observer
}

// Search returns "City, ST" suggestions for query, best first.
// Queries shorter than two characters return an empty slice.
func (s *CityService) Search(ctx context.Context, query string, limit int) []string {
	start := time.Now()
	defer func() { s.obs.observe("city.search", start, nil) }()

	return s.svc.Search(ctx, query, limit)
}

// Lookup returns the city for a formatted "City, ST" string.
func (s *CityService) Lookup(ctx context.Context, formatted string) (_ City, err error) {
	start := time.Now()
	defer func() { s.obs.observe("city.lookup", start, err) }()

	c, err := s.svc.Lookup(ctx, formatted)
	if err != nil {
		return City{}, fmt.Errorf("lookup city: %w", err)
	}
	return fromInternalCity(c), nil
}

func fromInternalCity(c city.City) City {
	return City{
		Name:       c.Name(),
		StateCode:  c.StateCode(),
		StateName:  c.StateName(),
		County:     c.County(),
		Population: c.Population(),
		Formatted:  c.Formatted(),
	}
}
