package services

import (
	"context"
	"fmt"
	"photo-location-service/internal/domain"
	"photo-location-service/internal/platform/obs"
	"photo-location-service/internal/ports"
)

// SetPhotoGame stores game as the video game shown on the photo. A nil game
// turns the photo back into a plain photo.
func SetPhotoGame(
	ctx context.Context,
	repo ports.PhotoRepository,
	photoID int,
	game *domain.VideoGame,
) (_ *domain.Photo, err error) {
	defer obs.Time(ctx, "services.SetPhotoGame")(&err)

	if err := repo.SaveGame(ctx, photoID, game); err != nil {
		return nil, fmt.Errorf("set photo game: %w", err)
	}

	p, err := repo.GetPhoto(ctx, photoID)
	if err != nil {
		return nil, fmt.Errorf("set photo game: %w", err)
	}
	return p, nil
}

// PhotosOfGameType returns the gaming photos whose game is of type typ or
// one of its subtypes.
func PhotosOfGameType(
	ctx context.Context,
	repo ports.PhotoRepository,
	typ *domain.GameType,
) (_ []*domain.Photo, err error) {
	defer obs.Time(ctx, "services.PhotosOfGameType")(&err)

	if typ == nil {
		return nil, fmt.Errorf("photos of game type: %w", errNoGameType)
	}

	photos, err := repo.ListPhotos(ctx)
	if err != nil {
		return nil, fmt.Errorf("photos of game type: list photos: %w", err)
	}

	out := make([]*domain.Photo, 0, len(photos))
	for _, p := range photos {
		if p.Game != nil && typ.HasSubType(p.Game.Type()) {
			out = append(out, p)
		}
	}
	return out, nil
}
