package city

import (
	"fmt"
	"regexp"
	"strings"
)

var stateCodeRegex = regexp.MustCompile(`^[A-Z]{2}$`)

// City is an autocomplete index entry (immutable value object).
type City struct {
	name       string
	stateCode  string
	stateName  string
	county     string
	population int
	formatted  string
}

// New validates and creates a City with its precomputed "Name, ST" form.
func New(name, stateCode, stateName, county string, population int) (City, error) {
	name = strings.TrimSpace(name)
	stateCode = strings.ToUpper(strings.TrimSpace(stateCode))
	if name == "" {
		return City{}, fmt.Errorf("city name is required")
	}
	if !stateCodeRegex.MatchString(stateCode) {
		return City{}, fmt.Errorf("city %q: state code must be two letters, got %q", name, stateCode)
	}
	if population < 0 {
		return City{}, fmt.Errorf("city %q: population must not be negative", name)
	}
	return City{
		name:       name,
		stateCode:  stateCode,
		stateName:  strings.TrimSpace(stateName),
		county:     strings.TrimSpace(county),
		population: population,
		formatted:  Format(name, stateCode),
	}, nil
}

// Format returns the canonical "City, ST" display string.
func Format(name, stateCode string) string {
	return name + ", " + stateCode
}

// Name returns the city name.
func (c City) Name() string { return c.name }

// StateCode returns the two-letter state code.
func (c City) StateCode() string { return c.stateCode }

// StateName returns the full state name.
func (c City) StateName() string { return c.stateName }

// County returns the county name.
func (c City) County() string { return c.county }

// Population returns the population used as ranking signal.
func (c City) Population() int { return c.population }

// Formatted returns the "City, ST" string used as search key and display value.
func (c City) Formatted() string { return c.formatted }
