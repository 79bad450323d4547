package load

// Status is the load lifecycle state.
type Status string

// Lifecycle: available -> claimed -> in-transit -> delivered.
// cancelled is reachable from every non-terminal state.
const (
	StatusAvailable Status = "available"
	StatusClaimed   Status = "claimed"
	StatusInTransit Status = "in-transit"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// IsValid checks if the status is a known lifecycle state.
func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusClaimed, StatusInTransit, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo reports whether next is a legal successor of s.
// Entering claimed is only legal from available; Claim enforces the claimant fields.
func (s Status) CanTransitionTo(next Status) bool {
	if s.IsTerminal() {
		return false
	}
	switch next {
	case StatusClaimed:
		return s == StatusAvailable
	case StatusInTransit:
		return s == StatusClaimed
	case StatusDelivered:
		return s == StatusInTransit
	case StatusCancelled:
		return true
	}
	return false
}

// Type distinguishes full and partial truckloads.
type Type string

// Load types.
const (
	TypeFull    Type = "FTL"
	TypePartial Type = "LTL"
)

// IsValid checks if the load type is supported.
func (t Type) IsValid() bool {
	return t == TypeFull || t == TypePartial
}
