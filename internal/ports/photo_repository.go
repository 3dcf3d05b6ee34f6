package ports

import (
	"context"
	"errors"
	"photo-location-service/internal/domain"
)

var ErrPhotoNotFound = errors.New("photo not found")

// Port: a boundary for reading photos and persisting their locations.
type PhotoRepository interface {
	// Retrieve all photos ordered by id.
	ListPhotos(ctx context.Context) ([]*domain.Photo, error)
	// Retrieve one photo; returns ErrPhotoNotFound for unknown ids.
	GetPhoto(ctx context.Context, photoID int) (*domain.Photo, error)
	// Store loc as the photo's location. A Location without a coordinate
	// clears it.
	SaveLocation(ctx context.Context, photoID int, loc domain.Location) error
	// Store game as the video game shown on the photo; nil clears it.
	SaveGame(ctx context.Context, photoID int, game *domain.VideoGame) error
}
