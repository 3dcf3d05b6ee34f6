package domain

import (
	"testing"

	"photo-location-service/internal/platform/sentinel"
	"photo-location-service/internal/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestRegistryConcurrentInterning(t *testing.T) {
	reg := NewRegistry()

	const workers = 64
	got := make([]*Cartesian, workers)

	var g errgroup.Group
	for i := range workers {
		g.Go(func() error {
			c, err := reg.Cartesian(1.5, 2.5, 3.5)
			got[i] = c
			return err
		})
	}
	require.NoError(t, g.Wait())

	for _, c := range got {
		assert.Same(t, got[0], c)
	}

	cart, _ := reg.Len()
	assert.Equal(t, 1, cart)
}

func TestRegistryConcurrentConversion(t *testing.T) {
	reg := NewRegistry()
	c := mustCartesian(t, reg, -4, 2, 9)

	const workers = 64
	got := make([]*Spheric, workers)

	var g errgroup.Group
	for i := range workers {
		g.Go(func() error {
			got[i] = c.AsSpheric()
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for _, s := range got {
		assert.Same(t, got[0], s)
		assert.Same(t, c, s.AsCartesian())
	}

	_, sph := reg.Len()
	assert.Equal(t, 1, sph)
}

func TestRegistryKeepsVariantsApart(t *testing.T) {
	reg := NewRegistry()

	mustCartesian(t, reg, 1, 1, 1)
	mustSpheric(t, reg, 1, 1, 1)
	mustCartesian(t, reg, 1, 1, 1)

	cart, sph := reg.Len()
	assert.Equal(t, 1, cart)
	assert.Equal(t, 1, sph)
}

func TestDefaultRegistry(t *testing.T) {
	assert.Same(t, DefaultRegistry(), DefaultRegistry())

	a, err := NewCartesian(11, 22, 33)
	require.NoError(t, err)
	b, err := DefaultRegistry().Cartesian(11, 22, 33)
	require.NoError(t, err)
	assert.Same(t, a, b)

	s, err := NewSpheric(0.1, 0.2, 0.3)
	require.NoError(t, err)
	c, err := New(KindSpheric, 0.1, 0.2, 0.3)
	require.NoError(t, err)
	assert.Same(t, s, c)
}

func TestRegistryNewUnknownKind(t *testing.T) {
	_, err := NewRegistry().New(Kind(7), 0, 0, 0)
	require.ErrorIs(t, err, sentinel.ErrOutOfRange)
}

func TestCoordinateFromRecord(t *testing.T) {
	reg := NewRegistry()

	newRecord := func(kind int64) *record.Map {
		rec := record.NewMap(RecordSchema())
		require.NoError(t, rec.SetInt(FieldCoordinateType, kind))
		require.NoError(t, rec.SetFloat(FieldCoordinate1, 1))
		require.NoError(t, rec.SetFloat(FieldCoordinate2, 2))
		require.NoError(t, rec.SetFloat(FieldCoordinate3, 3))
		return rec
	}

	c, err := reg.CoordinateFromRecord(newRecord(0))
	require.NoError(t, err)
	assert.Equal(t, KindCartesian, c.Kind())

	s, err := reg.CoordinateFromRecord(newRecord(1))
	require.NoError(t, err)
	assert.Equal(t, KindSpheric, s.Kind())

	_, err = reg.CoordinateFromRecord(newRecord(2))
	require.ErrorIs(t, err, sentinel.ErrOutOfRange)

	_, err = reg.CoordinateFromRecord(newRecord(-1))
	require.ErrorIs(t, err, sentinel.ErrOutOfRange)
}

func TestKind(t *testing.T) {
	assert.Equal(t, "cartesian", KindCartesian.String())
	assert.Equal(t, "spheric", KindSpheric.String())

	k, err := ParseKind(" Spheric ")
	require.NoError(t, err)
	assert.Equal(t, KindSpheric, k)

	_, err = ParseKind("polar")
	require.ErrorIs(t, err, sentinel.ErrOutOfRange)
}
