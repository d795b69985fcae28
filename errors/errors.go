package errors

import "fmt"

var (
	ErrMissingValue           = fmt.Errorf("missing value")
	ErrInvalidNumber          = fmt.Errorf("invalid number")
	ErrUnknownUnit            = fmt.Errorf("unknown unit")
	ErrSameUnit               = fmt.Errorf("source and destination units are the same")
	ErrPersistenceUnavailable = fmt.Errorf("persistent storage unavailable")
	ErrInvalidHistoryEntry    = fmt.Errorf("invalid history entry")
	ErrDuplicateUnit          = fmt.Errorf("duplicate unit id")
	ErrInvalidFactor          = fmt.Errorf("unit factor must be positive and finite")
)
