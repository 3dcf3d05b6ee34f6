package services

import (
	"context"
	"fmt"
	"photo-location-service/internal/domain"
	"photo-location-service/internal/platform/obs"
	"photo-location-service/internal/platform/sentinel"
	"photo-location-service/internal/ports"
)

var (
	errNoCoordinate = fmt.Errorf("no coordinate given: %w", sentinel.ErrNilReference)
	errNoGameType   = fmt.Errorf("no game type given: %w", sentinel.ErrNilReference)
)

// SetPhotoLocation stores c as the location of the photo. A nil coordinate
// clears the location.
func SetPhotoLocation(
	ctx context.Context,
	repo ports.PhotoRepository,
	photoID int,
	c domain.Coordinate,
) (_ *domain.Photo, err error) {
	defer obs.Time(ctx, "services.SetPhotoLocation")(&err)

	loc := domain.NoLocation()
	if c != nil {
		if loc, err = domain.NewLocation(c); err != nil {
			return nil, fmt.Errorf("set photo location: %w", err)
		}
	}

	if err := repo.SaveLocation(ctx, photoID, loc); err != nil {
		return nil, fmt.Errorf("set photo location: %w", err)
	}

	p, err := repo.GetPhoto(ctx, photoID)
	if err != nil {
		return nil, fmt.Errorf("set photo location: %w", err)
	}
	return p, nil
}
