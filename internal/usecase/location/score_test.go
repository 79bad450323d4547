package location

import (
	"math"
	"strings"
	"testing"
)

func TestSearch_ChiOnEmbeddedData(t *testing.T) {
	idx, err := LoadIndex()
	if err != nil {
		t.Fatalf("LoadIndex: %v", err)
	}

	got := idx.Search("chi", 8)
	if len(got) == 0 || len(got) > 8 {
		t.Fatalf("expected 1..8 results, got %d: %v", len(got), got)
	}

	prev := math.Inf(1)
	for _, f := range got {
		if !strings.Contains(strings.ToLower(f), "chi") {
			t.Errorf("result %q does not contain the query", f)
		}
		c, ok := idx.Lookup(f)
		if !ok {
			t.Fatalf("result %q not in index", f)
		}
		s := score(c, "chi")
		if s > prev {
			t.Errorf("results not in descending score order at %q", f)
		}
		prev = s
	}

	want := []string{"Chico, CA", "Chino, CA", "Chicago, IL"}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("result[%d] = %q, want %q (full: %v)", i, got[i], w, got)
		}
	}
}

func TestSearch_ShortQuery(t *testing.T) {
	idx := mustIndex(t, mustCity(t, "Chicago", "IL", 2746388))

	for _, q := range []string{"", " ", "c", "  c  "} {
		if got := idx.Search(q, 8); len(got) != 0 {
			t.Errorf("Search(%q) = %v, want empty", q, got)
		}
	}
}

func TestSearch_ExactFormattedWins(t *testing.T) {
	idx := mustIndex(t,
		mustCity(t, "Springfield", "MO", 169176),
		mustCity(t, "Springfield", "IL", 114394),
	)

	got := idx.Search("Springfield, IL", 8)
	if len(got) != 1 || got[0] != "Springfield, IL" {
		t.Errorf("Search = %v, want [Springfield, IL]", got)
	}
}

func TestSearch_PopulationBreaksTies(t *testing.T) {
	idx := mustIndex(t,
		mustCity(t, "Springfield", "MA", 155929),
		mustCity(t, "Springfield", "MO", 169176),
	)

	got := idx.Search("spring", 8)
	if len(got) != 2 || got[0] != "Springfield, MO" {
		t.Errorf("Search = %v, want Springfield, MO first", got)
	}
}

func TestSearch_StateCodeMatch(t *testing.T) {
	idx := mustIndex(t, mustCity(t, "Boise", "ID", 235684))

	got := idx.Search("e, id", 8)
	if len(got) != 1 || got[0] != "Boise, ID" {
		t.Errorf("Search = %v, want [Boise, ID]", got)
	}
}

func TestSearch_EarlyExit(t *testing.T) {
	// Four weak "contains" matches fill 3*limit+1 slots before the strong
	// prefix match at the end of the list is reached.
	idx := mustIndex(t,
		mustCity(t, "Zab", "TX", 0),
		mustCity(t, "Yab", "TX", 0),
		mustCity(t, "Wab", "TX", 0),
		mustCity(t, "Vab", "TX", 0),
		mustCity(t, "Abc", "TX", 1000000),
	)

	got := idx.Search("ab", 1)
	if len(got) != 1 || got[0] != "Zab, TX" {
		t.Errorf("Search = %v, want [Zab, TX]", got)
	}
}

func TestSearch_HugeLimit(t *testing.T) {
	idx := mustIndex(t,
		mustCity(t, "Zab", "TX", 0),
		mustCity(t, "Abc", "TX", 1000000),
		mustCity(t, "Dallas", "TX", 1304379),
	)

	for _, limit := range []int{math.MaxInt, math.MaxInt / 2, math.MaxInt/3 + 1} {
		got := idx.Search("ab", limit)
		if len(got) != 2 || got[0] != "Abc, TX" {
			t.Errorf("Search(limit=%d) = %v, want [Abc, TX Zab, TX]", limit, got)
		}
	}
}

func TestScore(t *testing.T) {
	c := mustCity(t, "Chicago", "IL", 99)

	tests := []struct {
		query string
		base  float64
	}{
		{"chicago, il", 1000},
		{"chi", 100 - 4},
		{"cago", 50 - 3},
		{"o, il", 25},
		{"dallas", 0},
	}
	for _, tc := range tests {
		got := score(c, tc.query)
		want := 0.0
		if tc.base > 0 {
			want = tc.base + 2 // log10(99+1)
		}
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("score(%q) = %v, want %v", tc.query, got, want)
		}
	}
}

func TestScore_NonPositiveBaseExcluded(t *testing.T) {
	long := mustCity(t, strings.Repeat("x", 60)+"ab", "TX", 1000)

	if got := score(long, "ab"); got != 0 {
		t.Errorf("score = %v, want 0 for non-positive base", got)
	}
}
