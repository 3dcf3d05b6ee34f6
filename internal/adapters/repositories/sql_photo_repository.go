package repositories

import (
	"context"
	"database/sql"
	"photo-location-service/internal/domain"
	"photo-location-service/internal/platform/obs"
)

// SQLPhotoRepository is a Postgres-backed PhotoRepository. The database is
// expected to be opened with the pgx stdlib driver (see platform/db).
type SQLPhotoRepository struct {
	store photoStore
}

func NewSQLPhotoRepository(db *sql.DB) *SQLPhotoRepository {
	return &SQLPhotoRepository{store: newPhotoStore(db, Postgres)}
}

func (s *SQLPhotoRepository) ListPhotos(ctx context.Context) (_ []*domain.Photo, err error) {
	defer obs.Time(ctx, "postgres.photos.List")(&err)
	return s.store.list(ctx)
}

func (s *SQLPhotoRepository) GetPhoto(ctx context.Context, photoID int) (_ *domain.Photo, err error) {
	defer obs.Time(ctx, "postgres.photos.Get")(&err)
	return s.store.get(ctx, photoID)
}

func (s *SQLPhotoRepository) SaveLocation(ctx context.Context, photoID int, loc domain.Location) (err error) {
	defer obs.Time(ctx, "postgres.photos.SaveLocation")(&err)
	return s.store.saveLocation(ctx, photoID, loc)
}

func (s *SQLPhotoRepository) SaveGame(ctx context.Context, photoID int, game *domain.VideoGame) (err error) {
	defer obs.Time(ctx, "postgres.photos.SaveGame")(&err)
	return s.store.saveGame(ctx, photoID, game)
}
