package boxaloo

import "github.com/boxaloo/boxaloo/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound          = domain.ErrNotFound
	ErrLoadNotFound      = domain.ErrLoadNotFound
	ErrTruckNotFound     = domain.ErrTruckNotFound
	ErrCityNotFound      = domain.ErrCityNotFound
	ErrLoadNotAvailable  = domain.ErrLoadNotAvailable
	ErrInvalidTransition = domain.ErrInvalidTransition
	ErrInvalidState      = domain.ErrInvalidState
	ErrValidation        = domain.ErrValidation
)
