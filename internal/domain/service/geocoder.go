// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"context"
	"fmt"

	"foodcart/internal/domain/entity"
	"foodcart/internal/errors"
)

// ErrAddressNotFound is returned by a Geocoder when the lookup service
// answered but had no candidate location for the address.
var ErrAddressNotFound = errors.New("geocoder returned no candidates")

// Geocoder resolves a free-text address through an external lookup service.
type Geocoder interface {
	// Resolve returns the most relevant location for address.
	// It returns ErrAddressNotFound when there are no candidates and a
	// *TransportError when the call or its response was unusable.
	Resolve(ctx context.Context, address string) (entity.Coordinate, error)
}

// TransportError reports a geocoding call that could not complete, returned
// a non-success status, or returned a body that could not be parsed.
type TransportError struct {
	StatusCode int // Zero when no response was received.
	Err        error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("geocoder transport error (status %d): %v", e.StatusCode, e.Err)
	}

	return fmt.Sprintf("geocoder transport error: %v", e.Err)
}

// Unwrap returns the underlying cause
func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransportError reports whether err is or wraps a *TransportError.
func IsTransportError(err error) bool {
	var transportErr *TransportError

	return errors.As(err, &transportErr)
}
