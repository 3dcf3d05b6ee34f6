package repositories

import (
	"context"
	"database/sql"
	"photo-location-service/internal/domain"
	"photo-location-service/internal/platform/obs"
)

// SQLite-backed implementation of the PhotoRepository port.
type SqlitePhotoRepository struct {
	store photoStore
}

// NewSqlitePhotoRepository reads coordinates through the default registry.
func NewSqlitePhotoRepository(db *sql.DB) *SqlitePhotoRepository {
	return NewSqlitePhotoRepositoryWithRegistry(db, domain.DefaultRegistry())
}

func NewSqlitePhotoRepositoryWithRegistry(db *sql.DB, reg *domain.Registry) *SqlitePhotoRepository {
	store := newPhotoStore(db, Sqlite)
	store.registry = reg
	return &SqlitePhotoRepository{store: store}
}

// Return all photos stored in the database.
func (s *SqlitePhotoRepository) ListPhotos(ctx context.Context) (_ []*domain.Photo, err error) {
	defer obs.Time(ctx, "sqlite.photos.List")(&err)
	return s.store.list(ctx)
}

func (s *SqlitePhotoRepository) GetPhoto(ctx context.Context, photoID int) (_ *domain.Photo, err error) {
	defer obs.Time(ctx, "sqlite.photos.Get")(&err)
	return s.store.get(ctx, photoID)
}

func (s *SqlitePhotoRepository) SaveLocation(ctx context.Context, photoID int, loc domain.Location) (err error) {
	defer obs.Time(ctx, "sqlite.photos.SaveLocation")(&err)
	return s.store.saveLocation(ctx, photoID, loc)
}

func (s *SqlitePhotoRepository) SaveGame(ctx context.Context, photoID int, game *domain.VideoGame) (err error) {
	defer obs.Time(ctx, "sqlite.photos.SaveGame")(&err)
	return s.store.saveGame(ctx, photoID, game)
}
