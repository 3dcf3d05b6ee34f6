package domain

import (
	"fmt"
	"photo-location-service/internal/platform/check"
	"photo-location-service/internal/platform/sentinel"
	"photo-location-service/internal/record"
)

// Represents where a photo was taken. A Location holds at most one shared
// coordinate value; the zero Location has none.
type Location struct {
	coordinate Coordinate
}

func NewLocation(c Coordinate) (Location, error) {
	if err := check.NotNil(c, "coordinate"); err != nil {
		return Location{}, fmt.Errorf("new location: %w", err)
	}
	return Location{coordinate: c}, nil
}

// NoLocation returns a Location without a coordinate.
func NoLocation() Location { return Location{} }

func (l Location) Coordinate() (Coordinate, bool) {
	return l.coordinate, l.coordinate != nil
}

func (l Location) HasCoordinate() bool { return l.coordinate != nil }

// WriteOn persists the coordinate; a Location without one cannot be written.
func (l Location) WriteOn(rec record.Record) error {
	if l.coordinate == nil {
		return fmt.Errorf("write location: no coordinate: %w", sentinel.ErrNilReference)
	}
	if err := WriteOn(l.coordinate, rec); err != nil {
		return fmt.Errorf("write location: %w", err)
	}
	return nil
}

// LocationFromRecord reads a Location through the default registry.
func LocationFromRecord(rec record.Record) (Location, error) {
	return DefaultRegistry().LocationFromRecord(rec)
}

func (r *Registry) LocationFromRecord(rec record.Record) (Location, error) {
	c, err := r.CoordinateFromRecord(rec)
	if err != nil {
		return Location{}, fmt.Errorf("read location: %w", err)
	}
	return Location{coordinate: c}, nil
}
