package services

import (
	"cmp"
	"context"
	"fmt"
	"photo-location-service/internal/domain"
	"photo-location-service/internal/platform/obs"
	"photo-location-service/internal/platform/sentinel"
	"photo-location-service/internal/ports"
	"slices"
)

// PhotoDistance pairs a photo with its separation from a query coordinate.
type PhotoDistance struct {
	Photo        *domain.Photo
	CentralAngle float64
	Distance     float64
}

// Rank located photos by how close they are to origin.
//
// Photos are ordered by central angle first, since photos are compared by
// direction from the origin of the model, then by Cartesian distance. The
// photo id breaks remaining ties so results are deterministic. Photos
// without a location are skipped.
func NearestPhotos(
	ctx context.Context,
	repo ports.PhotoRepository,
	origin domain.Coordinate,
	limit int,
) (_ []PhotoDistance, err error) {
	defer obs.Time(ctx, "services.NearestPhotos")(&err)

	if origin == nil {
		return nil, fmt.Errorf("nearest photos: %w", errNoCoordinate)
	}
	if limit < 1 {
		return nil, fmt.Errorf("nearest photos: limit must be positive, got %d: %w", limit, sentinel.ErrInvalidValue)
	}

	photos, err := repo.ListPhotos(ctx)
	if err != nil {
		return nil, fmt.Errorf("nearest photos: list photos: %w", err)
	}

	ranked := make([]PhotoDistance, 0, len(photos))
	for _, p := range photos {
		c, ok := p.Location.Coordinate()
		if !ok {
			continue
		}

		angle, err := domain.CentralAngle(origin, c)
		if err != nil {
			return nil, fmt.Errorf("nearest photos: photo_id=%d: %w", p.PhotoID, err)
		}
		dist, err := domain.Distance(origin, c)
		if err != nil {
			return nil, fmt.Errorf("nearest photos: photo_id=%d: %w", p.PhotoID, err)
		}

		ranked = append(ranked, PhotoDistance{Photo: p, CentralAngle: angle, Distance: dist})
	}

	slices.SortFunc(ranked, func(a, b PhotoDistance) int {
		return cmp.Or(
			cmp.Compare(a.CentralAngle, b.CentralAngle),
			cmp.Compare(a.Distance, b.Distance),
			cmp.Compare(a.Photo.PhotoID, b.Photo.PhotoID),
		)
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}
