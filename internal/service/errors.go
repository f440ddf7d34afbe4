package service

import (
	"errors"
	"fmt"
)

var (
	// ErrVehicleNotFound means the vehicle id does not resolve to a record.
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrInvalidPagination means page or limit is out of range. Out-of-range
	// values are rejected, never clamped, so callers cannot be misled about
	// what they received.
	ErrInvalidPagination = errors.New("invalid pagination")

	// ErrInvalidFilter means the category or severity filter is not a known
	// enum value.
	ErrInvalidFilter = errors.New("invalid filter")
)

// SourceFetchError wraps a failed secondary source fetch. Any source failing
// fails the whole aggregation; there is no partial-result mode.
type SourceFetchError struct {
	Source string
	Err    error
}

func (e *SourceFetchError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.Source, e.Err)
}

func (e *SourceFetchError) Unwrap() error {
	return e.Err
}
