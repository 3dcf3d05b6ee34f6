package domain

import (
	"encoding/binary"
	"fmt"
	"math"
	"photo-location-service/internal/platform/check"
	"photo-location-service/internal/record"

	"github.com/cespare/xxhash/v2"
)

// Distance returns the Euclidean distance between a and b in Cartesian space.
//
// Both operands are halved before subtracting so that the difference of two
// finite components cannot overflow. Results that would still exceed the
// float64 range saturate at math.MaxFloat64.
func Distance(a, b Coordinate) (float64, error) {
	if err := operands(a, b); err != nil {
		return 0, fmt.Errorf("cartesian distance: %w", err)
	}

	ca, cb := a.AsCartesian(), b.AsCartesian()

	dx := ca.x/2 - cb.x/2
	dy := ca.y/2 - cb.y/2
	dz := ca.z/2 - cb.z/2

	d := 2 * math.Hypot(math.Hypot(dx, dy), dz)
	if math.IsInf(d, 1) {
		d = math.MaxFloat64
	}
	return d, nil
}

// CentralAngle returns the angle in radians between a and b seen from the
// origin, using the spherical law of cosines on their spheric forms. The
// result lies in [0, pi].
func CentralAngle(a, b Coordinate) (float64, error) {
	if err := operands(a, b); err != nil {
		return 0, fmt.Errorf("central angle: %w", err)
	}

	sa, sb := a.AsSpheric(), b.AsSpheric()

	deltaPhi := math.Abs(sa.phi - sb.phi)
	cosDeltaPhi := math.Cos(deltaPhi)
	if math.IsInf(deltaPhi, 1) {
		cosDeltaPhi = math.Cos(sa.phi)*math.Cos(sb.phi) + math.Sin(sa.phi)*math.Sin(sb.phi)
	}

	cosAngle := math.Sin(sa.theta)*math.Sin(sb.theta) +
		math.Cos(sa.theta)*math.Cos(sb.theta)*cosDeltaPhi

	return math.Acos(clamp(cosAngle, -1, 1)), nil
}

// Equal reports whether a and b denote the same canonical point. Values are
// compared through their canonical Cartesian instances; a missing operand is
// never equal to anything.
func Equal(a, b Coordinate) bool {
	if check.NotNil(a, "a") != nil || check.NotNil(b, "b") != nil {
		return false
	}

	ca, cb := a.AsCartesian(), b.AsCartesian()
	if ca.reg == cb.reg {
		return ca == cb
	}
	return ca.key() == cb.key()
}

// EqualKeys compares the interning keys of the canonical Cartesian forms.
// Within one registry it agrees with Equal.
func EqualKeys(a, b Coordinate) bool {
	if check.NotNil(a, "a") != nil || check.NotNil(b, "b") != nil {
		return false
	}
	return a.AsCartesian().key() == b.AsCartesian().key()
}

// Hash is consistent with Equal: equal coordinates of either kind hash alike.
func Hash(c Coordinate) uint64 {
	if check.NotNil(c, "coordinate") != nil {
		return 0
	}

	var buf [24]byte
	for i, v := range c.AsCartesian().key() {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	return xxhash.Sum64(buf[:])
}

// WriteOn writes c onto rec: the variant ordinal into coordinate_type and the
// three components into coordinate_1..3. The record shape is checked before
// anything is written, and the coordinate invariant before and after.
func WriteOn(c Coordinate, rec record.Record) error {
	if err := check.NotNil(c, "coordinate"); err != nil {
		return fmt.Errorf("write coordinate: %w", err)
	}
	if err := c.validate(); err != nil {
		return fmt.Errorf("write coordinate: %w", err)
	}
	if err := check.RecordHasFields(rec, recordFields...); err != nil {
		return fmt.Errorf("write coordinate: %w", err)
	}

	if err := rec.SetInt(FieldCoordinateType, int64(c.Kind())); err != nil {
		return fmt.Errorf("write coordinate: %w", err)
	}
	if err := writeComponents(c, rec); err != nil {
		return fmt.Errorf("write %s coordinate: %w", c.Kind(), err)
	}

	if err := c.validate(); err != nil {
		return fmt.Errorf("write coordinate: %w", err)
	}
	return nil
}

func writeComponents(c Coordinate, rec record.Record) error {
	if err := check.RecordHasFields(rec, componentFields...); err != nil {
		return err
	}

	for i, v := range c.Components() {
		if err := rec.SetFloat(componentFields[i].Name, v); err != nil {
			return err
		}
	}
	return nil
}

func operands(a, b Coordinate) error {
	if err := check.NotNil(a, "first coordinate"); err != nil {
		return err
	}
	return check.NotNil(b, "second coordinate")
}

func (c *Cartesian) key() [3]float64 { return [3]float64{c.x, c.y, c.z} }

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
