package location

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/boxaloo/boxaloo/internal/domain/city"
)

// MinQueryLength is the shortest query that produces results.
const MinQueryLength = 2

// Base scores by match kind.
const (
	scoreExact          = 1000
	scoreNamePrefix     = 100
	scoreNameContains   = 50
	scoreFormattedMatch = 25
)

type candidate struct {
	formatted string
	score     float64
}

// Search returns up to limit "City, ST" strings ranked by match quality and
// population. The scan stops once more than 3*limit candidates are collected,
// so a strong match late in the list can be missed. limit must be positive.
func (idx *Index) Search(query string, limit int) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if utf8.RuneCountInString(q) < MinQueryLength || limit <= 0 {
		return []string{}
	}

	// A limit at or above the index size never triggers the early exit,
	// and 3*limit is only computed below that bound.
	early := limit < len(idx.cities)
	capacity := len(idx.cities)
	if early {
		capacity = min(capacity, 3*limit+1)
	}
	candidates := make([]candidate, 0, capacity)
	for _, c := range idx.cities {
		s := score(c, q)
		if s <= 0 {
			continue
		}
		candidates = append(candidates, candidate{formatted: c.Formatted(), score: s})
		if early && len(candidates) > 3*limit {
			break
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.formatted
	}
	return out
}

// score rates c against the lower-cased query q; zero means no match.
func score(c city.City, q string) float64 {
	name := strings.ToLower(c.Name())
	formatted := strings.ToLower(c.Formatted())
	lenDiff := float64(utf8.RuneCountInString(name) - utf8.RuneCountInString(q))

	var base float64
	switch {
	case formatted == q:
		base = scoreExact
	case strings.HasPrefix(name, q):
		base = scoreNamePrefix - lenDiff
	case strings.Contains(name, q):
		base = scoreNameContains - lenDiff
	case strings.Contains(formatted, q):
		base = scoreFormattedMatch
	}
	if base <= 0 {
		return 0
	}
	return base + math.Log10(float64(c.Population())+1)
}
