package location

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/boxaloo/boxaloo/internal/domain/city"
)

//go:embed data/cities.yaml
var citiesYAML []byte

type cityDTO struct {
	Name       string `yaml:"name"`
	State      string `yaml:"state"`
	StateName  string `yaml:"state_name"`
	County     string `yaml:"county"`
	Population int    `yaml:"population"`
}

// Index is the immutable in-memory city list searched by the autocomplete.
type Index struct {
	cities      []city.City
	byFormatted map[string]int // lower-cased "name, st" -> position
}

// LoadIndex builds the index from the embedded US city dataset.
func LoadIndex() (*Index, error) {
	return ParseIndex(citiesYAML)
}

// ParseIndex decodes a YAML city list and builds an index from it.
func ParseIndex(data []byte) (*Index, error) {
	var dtos []cityDTO
	if err := yaml.Unmarshal(data, &dtos); err != nil {
		return nil, fmt.Errorf("parse cities: %w", err)
	}
	cities := make([]city.City, 0, len(dtos))
	for _, d := range dtos {
		c, err := city.New(d.Name, d.State, d.StateName, d.County, d.Population)
		if err != nil {
			return nil, fmt.Errorf("parse cities: %w", err)
		}
		cities = append(cities, c)
	}
	return NewIndex(cities)
}

// NewIndex builds an index over cities, keeping their order as the scan order.
// Two entries with the same formatted name are rejected.
func NewIndex(cities []city.City) (*Index, error) {
	idx := &Index{
		cities:      make([]city.City, len(cities)),
		byFormatted: make(map[string]int, len(cities)),
	}
	copy(idx.cities, cities)
	for i, c := range idx.cities {
		key := strings.ToLower(c.Formatted())
		if _, dup := idx.byFormatted[key]; dup {
			return nil, fmt.Errorf("duplicate city %q", c.Formatted())
		}
		idx.byFormatted[key] = i
	}
	return idx, nil
}

// Len returns the number of indexed cities.
func (idx *Index) Len() int { return len(idx.cities) }

// Lookup finds a city by its "City, ST" form, ignoring case and surrounding space.
func (idx *Index) Lookup(formatted string) (city.City, bool) {
	i, ok := idx.byFormatted[strings.ToLower(strings.TrimSpace(formatted))]
	if !ok {
		return city.City{}, false
	}
	return idx.cities[i], true
}
