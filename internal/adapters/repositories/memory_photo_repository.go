package repositories

import (
	"context"
	"fmt"
	"photo-location-service/internal/domain"
	"photo-location-service/internal/platform/obs"
	"photo-location-service/internal/ports"
	"photo-location-service/internal/record"
	"slices"
	"sync"
)

type memoryRow struct {
	title    string
	location *record.Map
	game     *record.Map
}

// MemoryPhotoRepository keeps photos in process memory (DB_DRIVER=memory).
// Locations and games are stored as persisted records, the same envelopes
// the SQL repositories use.
type MemoryPhotoRepository struct {
	mu   sync.RWMutex
	rows map[int]memoryRow
}

func NewMemoryPhotoRepository(photos ...*domain.Photo) (*MemoryPhotoRepository, error) {
	m := &MemoryPhotoRepository{rows: make(map[int]memoryRow, len(photos))}
	for _, p := range photos {
		m.rows[p.PhotoID] = memoryRow{title: p.Title}
		if err := m.SaveLocation(context.Background(), p.PhotoID, p.Location); err != nil {
			return nil, fmt.Errorf("memory photo repository: %w", err)
		}
		if err := m.SaveGame(context.Background(), p.PhotoID, p.Game); err != nil {
			return nil, fmt.Errorf("memory photo repository: %w", err)
		}
	}
	return m, nil
}

func (m *MemoryPhotoRepository) ListPhotos(ctx context.Context) (_ []*domain.Photo, err error) {
	defer obs.Time(ctx, "memory.photos.List")(&err)

	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]int, 0, len(m.rows))
	for id := range m.rows {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	photos := make([]*domain.Photo, 0, len(ids))
	for _, id := range ids {
		p, err := m.photo(id)
		if err != nil {
			return nil, fmt.Errorf("list photos: %w", err)
		}
		photos = append(photos, p)
	}
	return photos, nil
}

func (m *MemoryPhotoRepository) GetPhoto(ctx context.Context, photoID int) (_ *domain.Photo, err error) {
	defer obs.Time(ctx, "memory.photos.Get")(&err)

	m.mu.RLock()
	defer m.mu.RUnlock()

	p, err := m.photo(photoID)
	if err != nil {
		return nil, fmt.Errorf("get photo: %w", err)
	}
	return p, nil
}

func (m *MemoryPhotoRepository) SaveLocation(ctx context.Context, photoID int, loc domain.Location) (err error) {
	defer obs.Time(ctx, "memory.photos.SaveLocation")(&err)

	m.mu.Lock()
	defer m.mu.Unlock()

	row, ok := m.rows[photoID]
	if !ok {
		return fmt.Errorf("save location photo_id=%d: %w", photoID, ports.ErrPhotoNotFound)
	}

	row.location = nil
	if loc.HasCoordinate() {
		rec := record.NewMap(domain.RecordSchema())
		if err := loc.WriteOn(rec); err != nil {
			return fmt.Errorf("save location photo_id=%d: %w", photoID, err)
		}
		row.location = rec
	}
	m.rows[photoID] = row
	return nil
}

func (m *MemoryPhotoRepository) SaveGame(ctx context.Context, photoID int, game *domain.VideoGame) (err error) {
	defer obs.Time(ctx, "memory.photos.SaveGame")(&err)

	m.mu.Lock()
	defer m.mu.Unlock()

	row, ok := m.rows[photoID]
	if !ok {
		return fmt.Errorf("save game photo_id=%d: %w", photoID, ports.ErrPhotoNotFound)
	}

	row.game = nil
	if game != nil {
		rec := record.NewMap(domain.GameRecordSchema())
		if err := game.WriteOn(rec); err != nil {
			return fmt.Errorf("save game photo_id=%d: %w", photoID, err)
		}
		row.game = rec
	}
	m.rows[photoID] = row
	return nil
}

func (m *MemoryPhotoRepository) photo(id int) (*domain.Photo, error) {
	row, ok := m.rows[id]
	if !ok {
		return nil, fmt.Errorf("photo_id=%d: %w", id, ports.ErrPhotoNotFound)
	}

	p := &domain.Photo{PhotoID: id, Title: row.title}
	if row.location != nil {
		var err error
		if p.Location, err = domain.LocationFromRecord(row.location); err != nil {
			return nil, fmt.Errorf("photo_id=%d: %w", id, err)
		}
	}
	if row.game != nil {
		var err error
		if p.Game, err = domain.VideoGameFromRecord(row.game); err != nil {
			return nil, fmt.Errorf("photo_id=%d: %w", id, err)
		}
	}
	return p, nil
}
