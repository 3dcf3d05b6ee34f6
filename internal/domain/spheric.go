package domain

import (
	"fmt"
	"math"
	"photo-location-service/internal/platform/check"
	"photo-location-service/internal/record"
	"sync/atomic"
)

// Spheric is a point given by azimuth phi and inclination theta (radians)
// and a non-negative radius.
type Spheric struct {
	phi, theta, radius float64

	reg       *Registry
	cartesian atomic.Pointer[Cartesian]
}

func NewSpheric(phi, theta, radius float64) (*Spheric, error) {
	return DefaultRegistry().Spheric(phi, theta, radius)
}

func SphericFromRecord(rec record.Record) (*Spheric, error) {
	return DefaultRegistry().SphericFromRecord(rec)
}

func (r *Registry) Spheric(phi, theta, radius float64) (*Spheric, error) {
	if err := validateSpheric(phi, theta, radius); err != nil {
		return nil, fmt.Errorf("new spheric coordinate: %w", err)
	}
	return r.internSpheric(phi, theta, radius, nil), nil
}

// SphericFromRecord reads phi, theta and radius from coordinate_1..3.
func (r *Registry) SphericFromRecord(rec record.Record) (*Spheric, error) {
	c, err := readComponents(rec)
	if err != nil {
		return nil, fmt.Errorf("read spheric coordinate: %w", err)
	}

	out, err := r.Spheric(c[0], c[1], c[2])
	if err != nil {
		return nil, fmt.Errorf("read spheric coordinate: %w", err)
	}
	return out, nil
}

// internSpheric registers an already validated tuple. A non-nil source marks
// the value as the spheric form of that Cartesian; it converts back to source
// and is never shared with directly constructed values.
func (r *Registry) internSpheric(phi, theta, radius float64, source *Cartesian) *Spheric {
	phi, theta, radius = canonicalZero(phi), canonicalZero(theta), canonicalZero(radius)

	key := sphericKey{components: [3]float64{phi, theta, radius}}
	if source != nil {
		key.source, key.derived = source.key(), true
	}

	return r.spheric.intern(key, func() *Spheric {
		s := &Spheric{phi: phi, theta: theta, radius: radius, reg: r}
		if source != nil {
			s.cartesian.Store(source)
		}
		return s
	})
}

func validateSpheric(phi, theta, radius float64) error {
	if err := check.Finite(phi, "phi-component"); err != nil {
		return err
	}
	if err := check.Finite(theta, "theta-component"); err != nil {
		return err
	}
	return check.NonNegative(radius, "radius")
}

func (s *Spheric) Phi() float64    { return s.phi }
func (s *Spheric) Theta() float64  { return s.theta }
func (s *Spheric) Radius() float64 { return s.radius }

func (s *Spheric) Kind() Kind { return KindSpheric }

func (s *Spheric) Components() [3]float64 { return [3]float64{s.phi, s.theta, s.radius} }

func (s *Spheric) AsSpheric() *Spheric { return s }

// AsCartesian converts to (x, y, z). The result is memoized. The Cartesian
// side is not linked back: it keeps its own derived spheric form, so for
// example every zero-radius value still maps the origin to (0, 0, 0).
func (s *Spheric) AsCartesian() *Cartesian {
	if c := s.cartesian.Load(); c != nil {
		return c
	}

	sinTheta, cosTheta := math.Sincos(s.theta)
	sinPhi, cosPhi := math.Sincos(s.phi)

	x := s.radius * sinTheta * cosPhi
	y := s.radius * sinTheta * sinPhi
	z := s.radius * cosTheta

	c := s.reg.internCartesian(x, y, z)
	s.cartesian.CompareAndSwap(nil, c)
	return s.cartesian.Load()
}

func (s *Spheric) DistanceTo(other Coordinate) (float64, error) { return Distance(s, other) }

func (s *Spheric) CentralAngleTo(other Coordinate) (float64, error) { return CentralAngle(s, other) }

func (s *Spheric) Equal(other Coordinate) bool { return Equal(s, other) }

func (s *Spheric) WriteOn(rec record.Record) error { return WriteOn(s, rec) }

func (s *Spheric) String() string {
	return fmt.Sprintf("spheric(phi=%g, theta=%g, radius=%g)", s.phi, s.theta, s.radius)
}

func (s *Spheric) validate() error {
	return validateSpheric(s.phi, s.theta, s.radius)
}
