package load

// Filter selects loads by field equality. Empty fields match everything.
type Filter struct {
	Status    Status
	BrokerID  string
	ClaimedBy string
}

// Matches reports whether l satisfies every set field.
func (f Filter) Matches(l *Load) bool {
	if f.Status != "" && l.Status != f.Status {
		return false
	}
	if f.BrokerID != "" && l.Broker.ID != f.BrokerID {
		return false
	}
	if f.ClaimedBy != "" && l.ClaimedBy != f.ClaimedBy {
		return false
	}
	return true
}

// IsEmpty reports whether the filter matches every load.
func (f Filter) IsEmpty() bool {
	return f == Filter{}
}
