package domain

import (
	"fmt"
	"photo-location-service/internal/platform/check"
	"photo-location-service/internal/platform/sentinel"
	"photo-location-service/internal/record"
	"strings"
)

// Kind tags the representation a coordinate is stored in.
// The ordinal values are persisted in the coordinate_type field.
type Kind int

const (
	KindCartesian Kind = iota
	KindSpheric
)

// Persisted-record field names.
const (
	FieldCoordinateType = "coordinate_type"
	FieldCoordinate1    = "coordinate_1"
	FieldCoordinate2    = "coordinate_2"
	FieldCoordinate3    = "coordinate_3"
)

var componentFields = []check.Field{
	{Name: FieldCoordinate1, Type: record.Float},
	{Name: FieldCoordinate2, Type: record.Float},
	{Name: FieldCoordinate3, Type: record.Float},
}

var recordFields = append([]check.Field{{Name: FieldCoordinateType, Type: record.Integer}}, componentFields...)

// RecordSchema returns the field layout of a persisted coordinate.
func RecordSchema() map[string]record.FieldType {
	schema := make(map[string]record.FieldType, len(recordFields))
	for _, f := range recordFields {
		schema[f.Name] = f.Type
	}
	return schema
}

func (k Kind) String() string {
	switch k {
	case KindCartesian:
		return "cartesian"
	case KindSpheric:
		return "spheric"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// KindFromOrdinal resolves a stored coordinate_type value.
func KindFromOrdinal(n int64) (Kind, error) {
	switch Kind(n) {
	case KindCartesian, KindSpheric:
		return Kind(n), nil
	default:
		return 0, fmt.Errorf("coordinate type ordinal %d: %w", n, sentinel.ErrOutOfRange)
	}
}

// ParseKind accepts the String form of a Kind, case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cartesian":
		return KindCartesian, nil
	case "spheric":
		return KindSpheric, nil
	default:
		return 0, fmt.Errorf("coordinate type %q: %w", s, sentinel.ErrOutOfRange)
	}
}

// Coordinate is a point in three dimensional space.
//
// The set of implementations is closed: *Cartesian and *Spheric. Values are
// canonical instances handed out by a Registry and never change after
// construction, so they can be shared freely between goroutines.
type Coordinate interface {
	Kind() Kind
	AsCartesian() *Cartesian
	AsSpheric() *Spheric
	// Components returns the three stored components in record order.
	Components() [3]float64

	validate() error
}

// New builds a coordinate of kind k from its three components in record
// order, using the default registry.
func New(k Kind, c1, c2, c3 float64) (Coordinate, error) {
	return DefaultRegistry().New(k, c1, c2, c3)
}
