package city

import "testing"

func TestNew_Valid(t *testing.T) {
	c, err := New(" Chicago ", "il", "Illinois", "Cook", 2746388)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Name() != "Chicago" {
		t.Errorf("Name() = %q", c.Name())
	}
	if c.StateCode() != "IL" {
		t.Errorf("StateCode() = %q, want IL", c.StateCode())
	}
	if c.Formatted() != "Chicago, IL" {
		t.Errorf("Formatted() = %q", c.Formatted())
	}
	if c.StateName() != "Illinois" || c.County() != "Cook" || c.Population() != 2746388 {
		t.Errorf("unexpected fields: %+v", c)
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name, city, state string
		pop               int
	}{
		{"empty name", "", "IL", 1},
		{"long state", "Chicago", "ILL", 1},
		{"numeric state", "Chicago", "1L", 1},
		{"negative population", "Chicago", "IL", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.city, tt.state, "", "", tt.pop); err == nil {
				t.Error("expected error")
			}
		})
	}
}
