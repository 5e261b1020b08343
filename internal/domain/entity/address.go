// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/paulmach/orb"
	"golang.org/x/text/cases"
)

// Address is a normalized free-text address. It is the key of the geo cache:
// two raw strings refer to the same place iff their Address values are equal.
type Address string

// NewAddress trims surrounding whitespace and case-folds the raw text.
func NewAddress(raw string) Address {
	// A Caser is stateful, so a fresh one is taken per call.
	return Address(cases.Fold().String(strings.TrimSpace(raw)))
}

// String returns the normalized address text.
func (a Address) String() string {
	return string(a)
}

// IsZero reports whether the address is blank after normalization.
func (a Address) IsZero() bool {
	return a == ""
}

// Coordinate is a resolved WGS84 position.
type Coordinate struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// Point converts the coordinate to an orb point (longitude first).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Lon, c.Lat}
}

// CoordinateFromPoint converts an orb point to a coordinate.
func CoordinateFromPoint(p orb.Point) Coordinate {
	return Coordinate{Lon: p.Lon(), Lat: p.Lat()}
}

// IsValid reports whether the coordinate lies within geographic bounds.
func (c Coordinate) IsValid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// GeoCacheEntry is one persisted address resolution.
// There is at most one entry per normalized address.
type GeoCacheEntry struct {
	Address    Address
	Coordinate Coordinate
	UpdatedAt  time.Time
}
