package services

import (
	"context"
	"fmt"
	"photo-location-service/internal/domain"
	"photo-location-service/internal/platform/obs"
)

// Comparison summarizes how two coordinates relate.
type Comparison struct {
	Distance     float64
	CentralAngle float64
	Equal        bool
}

func Compare(ctx context.Context, a, b domain.Coordinate) (_ Comparison, err error) {
	defer obs.Time(ctx, "services.Compare")(&err)

	dist, err := domain.Distance(a, b)
	if err != nil {
		return Comparison{}, fmt.Errorf("compare: %w", err)
	}
	angle, err := domain.CentralAngle(a, b)
	if err != nil {
		return Comparison{}, fmt.Errorf("compare: %w", err)
	}

	return Comparison{
		Distance:     dist,
		CentralAngle: angle,
		Equal:        domain.Equal(a, b),
	}, nil
}

// Convert re-expresses c in the requested representation.
func Convert(c domain.Coordinate, to domain.Kind) (domain.Coordinate, error) {
	if c == nil {
		return nil, fmt.Errorf("convert: %w", errNoCoordinate)
	}

	switch to {
	case domain.KindCartesian:
		return c.AsCartesian(), nil
	case domain.KindSpheric:
		return c.AsSpheric(), nil
	default:
		_, err := domain.KindFromOrdinal(int64(to))
		return nil, fmt.Errorf("convert: %w", err)
	}
}
