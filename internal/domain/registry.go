package domain

import (
	"fmt"
	"photo-location-service/internal/platform/check"
	"photo-location-service/internal/record"
	"sync"
)

// valueCache interns values by key. Lookup and insertion happen under one
// lock, so two callers asking for the same key always get the same pointer.
type valueCache[K comparable, V any] struct {
	mu sync.Mutex
	m  map[K]*V
}

func newValueCache[K comparable, V any]() *valueCache[K, V] {
	return &valueCache[K, V]{m: make(map[K]*V)}
}

// intern returns the instance registered for key, calling build to create
// and register it on the first request.
func (c *valueCache[K, V]) intern(key K, build func() *V) *V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.m[key]; ok {
		return v
	}
	v := build()
	c.m[key] = v
	return v
}

func (c *valueCache[K, V]) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.m)
}

// Registry owns one value cache per coordinate variant.
//
// A Registry lives for the whole process; its entries are never evicted.
// Coordinates remember the registry that created them and route their
// conversions through it.
type Registry struct {
	cartesian *valueCache[[3]float64, Cartesian]
	spheric   *valueCache[sphericKey, Spheric]
}

// sphericKey identifies a canonical spheric value. Spheric forms derived
// from a Cartesian are keyed by their source as well: the conversion is not
// injective, so distinct Cartesian values can round to one spheric tuple.
type sphericKey struct {
	components [3]float64
	source     [3]float64
	derived    bool
}

func NewRegistry() *Registry {
	return &Registry{
		cartesian: newValueCache[[3]float64, Cartesian](),
		spheric:   newValueCache[sphericKey, Spheric](),
	}
}

var defaultRegistry = sync.OnceValue(NewRegistry)

// DefaultRegistry returns the process-wide registry used by the package
// level constructors.
func DefaultRegistry() *Registry { return defaultRegistry() }

// Len reports how many canonical instances each cache holds.
func (r *Registry) Len() (cartesian, spheric int) {
	return r.cartesian.len(), r.spheric.len()
}

func (r *Registry) New(k Kind, c1, c2, c3 float64) (Coordinate, error) {
	switch k {
	case KindCartesian:
		return r.Cartesian(c1, c2, c3)
	case KindSpheric:
		return r.Spheric(c1, c2, c3)
	default:
		_, err := KindFromOrdinal(int64(k))
		return nil, fmt.Errorf("new coordinate: %w", err)
	}
}

// CoordinateFromRecord reads the variant tag and dispatches to the variant
// reader. The record shape is checked before any field is read.
func (r *Registry) CoordinateFromRecord(rec record.Record) (Coordinate, error) {
	if err := check.RecordHasFields(rec, recordFields...); err != nil {
		return nil, fmt.Errorf("read coordinate: %w", err)
	}

	ordinal, err := rec.Int(FieldCoordinateType)
	if err != nil {
		return nil, fmt.Errorf("read coordinate: %w", err)
	}
	kind, err := KindFromOrdinal(ordinal)
	if err != nil {
		return nil, fmt.Errorf("read coordinate: %w", err)
	}

	switch kind {
	case KindSpheric:
		return r.SphericFromRecord(rec)
	default:
		return r.CartesianFromRecord(rec)
	}
}

func readComponents(rec record.Record) ([3]float64, error) {
	var out [3]float64
	if err := check.RecordHasFields(rec, componentFields...); err != nil {
		return out, err
	}

	for i, f := range componentFields {
		v, err := rec.Float(f.Name)
		if err != nil {
			return out, err
		}
		out[i] = v
	}
	return out, nil
}

// canonicalZero folds -0 into +0 so both spell the same stored value.
func canonicalZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}
