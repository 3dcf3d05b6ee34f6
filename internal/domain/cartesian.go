package domain

import (
	"fmt"
	"math"
	"photo-location-service/internal/platform/check"
	"photo-location-service/internal/record"
	"sync/atomic"
)

// Cartesian is a point given by its x, y and z components.
// All three components are finite.
type Cartesian struct {
	x, y, z float64

	reg     *Registry
	spheric atomic.Pointer[Spheric]
}

// NewCartesian returns the canonical Cartesian coordinate for (x, y, z)
// from the default registry.
func NewCartesian(x, y, z float64) (*Cartesian, error) {
	return DefaultRegistry().Cartesian(x, y, z)
}

// CartesianFromRecord reads x, y and z from coordinate_1..3.
func CartesianFromRecord(rec record.Record) (*Cartesian, error) {
	return DefaultRegistry().CartesianFromRecord(rec)
}

func (r *Registry) Cartesian(x, y, z float64) (*Cartesian, error) {
	if err := validateCartesian(x, y, z); err != nil {
		return nil, fmt.Errorf("new cartesian coordinate: %w", err)
	}
	return r.internCartesian(x, y, z), nil
}

func (r *Registry) CartesianFromRecord(rec record.Record) (*Cartesian, error) {
	c, err := readComponents(rec)
	if err != nil {
		return nil, fmt.Errorf("read cartesian coordinate: %w", err)
	}

	out, err := r.Cartesian(c[0], c[1], c[2])
	if err != nil {
		return nil, fmt.Errorf("read cartesian coordinate: %w", err)
	}
	return out, nil
}

// internCartesian registers an already validated tuple.
func (r *Registry) internCartesian(x, y, z float64) *Cartesian {
	x, y, z = canonicalZero(x), canonicalZero(y), canonicalZero(z)

	return r.cartesian.intern([3]float64{x, y, z}, func() *Cartesian {
		return &Cartesian{x: x, y: y, z: z, reg: r}
	})
}

func validateCartesian(x, y, z float64) error {
	if err := check.Finite(x, "x-component"); err != nil {
		return err
	}
	if err := check.Finite(y, "y-component"); err != nil {
		return err
	}
	return check.Finite(z, "z-component")
}

func (c *Cartesian) X() float64 { return c.x }
func (c *Cartesian) Y() float64 { return c.y }
func (c *Cartesian) Z() float64 { return c.z }

func (c *Cartesian) Kind() Kind { return KindCartesian }

func (c *Cartesian) Components() [3]float64 { return [3]float64{c.x, c.y, c.z} }

func (c *Cartesian) AsCartesian() *Cartesian { return c }

// AsSpheric converts to (phi, theta, radius). The origin has no defined
// angles and maps to the zero spheric coordinate. The result is memoized and
// always converts back to c.
func (c *Cartesian) AsSpheric() *Spheric {
	if s := c.spheric.Load(); s != nil {
		return s
	}

	phi, theta, radius := sphericComponents(c.x, c.y, c.z)

	s := c.reg.internSpheric(phi, theta, radius, c)
	c.spheric.CompareAndSwap(nil, s)
	return c.spheric.Load()
}

func sphericComponents(x, y, z float64) (phi, theta, radius float64) {
	radius = math.Hypot(math.Hypot(x, y), z)
	phi = math.Atan2(y, x)
	theta = math.Acos(z / radius)

	// The norm of components near MaxFloat64 overflows. Theta is scale
	// invariant, so take it from the components scaled by their largest
	// magnitude, and saturate the radius.
	if math.IsInf(radius, 1) {
		m := math.Max(math.Abs(x), math.Max(math.Abs(y), math.Abs(z)))
		xs, ys, zs := x/m, y/m, z/m
		theta = math.Acos(clamp(zs/math.Hypot(math.Hypot(xs, ys), zs), -1, 1))
		radius = math.MaxFloat64
	}

	if !isFinite(phi) || !isFinite(theta) {
		return 0, 0, 0
	}
	return phi, theta, radius
}

func (c *Cartesian) DistanceTo(other Coordinate) (float64, error) { return Distance(c, other) }

func (c *Cartesian) CentralAngleTo(other Coordinate) (float64, error) { return CentralAngle(c, other) }

func (c *Cartesian) Equal(other Coordinate) bool { return Equal(c, other) }

func (c *Cartesian) WriteOn(rec record.Record) error { return WriteOn(c, rec) }

func (c *Cartesian) String() string {
	return fmt.Sprintf("cartesian(x=%g, y=%g, z=%g)", c.x, c.y, c.z)
}

func (c *Cartesian) validate() error {
	return validateCartesian(c.x, c.y, c.z)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
