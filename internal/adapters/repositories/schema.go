package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"photo-location-service/internal/domain"
	"photo-location-service/internal/platform/sentinel"
	"strings"
	"time"
)

// InitSchema creates the photos table. The DDL is shared by SQLite and
// Postgres; column types are chosen so both report INTEGER/DOUBLE types
// that map onto the coordinate record fields.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createPhotosQuery := `
	CREATE TABLE IF NOT EXISTS photos (
		photo_id INTEGER PRIMARY KEY,
		title TEXT NOT NULL,
		coordinate_type INTEGER,
		coordinate_1 DOUBLE PRECISION,
		coordinate_2 DOUBLE PRECISION,
		coordinate_3 DOUBLE PRECISION,
		game_title TEXT,
		game_type TEXT,
		game_release DATE
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_photos_coordinate_type
	ON photos(coordinate_type);
	`

	statements := []string{
		createPhotosQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type CoordinateSeed struct {
	Type       string     `json:"type"`
	Components [3]float64 `json:"components"`
}

type GameSeed struct {
	Title   string `json:"title"`
	Type    string `json:"type"`
	Release string `json:"release"`
}

type PhotoSeed struct {
	PhotoID  int             `json:"photo_id"`
	Title    string          `json:"title"`
	Location *CoordinateSeed `json:"location"`
	Game     *GameSeed       `json:"game"`
}

// LoadSeed reads and validates the photos of a JSON seed file.
func LoadSeed(jsonPath string) ([]*domain.Photo, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("load seed: read %q: %w", jsonPath, err)
	}

	var data []PhotoSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("load seed: parse json: %w", err)
	}

	photos := make([]*domain.Photo, 0, len(data))
	for i, item := range data {
		p, err := item.photo()
		if err != nil {
			return nil, fmt.Errorf("load seed: item at index %d: %w", i+1, err)
		}
		photos = append(photos, p)
	}
	return photos, nil
}

func (item PhotoSeed) photo() (*domain.Photo, error) {
	loc := domain.NoLocation()
	if item.Location != nil {
		kind, err := domain.ParseKind(item.Location.Type)
		if err != nil {
			return nil, err
		}
		c := item.Location.Components
		coord, err := domain.New(kind, c[0], c[1], c[2])
		if err != nil {
			return nil, err
		}
		if loc, err = domain.NewLocation(coord); err != nil {
			return nil, err
		}
	}

	p, err := domain.NewPhoto(item.PhotoID, strings.TrimSpace(item.Title), loc)
	if err != nil {
		return nil, err
	}

	if item.Game != nil {
		release, err := time.Parse(time.DateOnly, item.Game.Release)
		if err != nil {
			return nil, fmt.Errorf("game release %q: %w", item.Game.Release, sentinel.ErrInvalidValue)
		}
		p.Game, err = domain.DefaultGameTypes().NewVideoGame(strings.TrimSpace(item.Game.Title), item.Game.Type, release)
		if err != nil {
			return nil, err
		}
	}
	return p, nil
}

// SeedFromJSON populates the photos table from a JSON file. Existing photos
// with the same id are overwritten.
func SeedFromJSON(ctx context.Context, db *sql.DB, d Dialect, jsonPath string) error {
	photos, err := LoadSeed(jsonPath)
	if err != nil {
		return fmt.Errorf("seed photos: %w", err)
	}

	store := newPhotoStore(db, d)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed photos: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := fmt.Sprintf(`
	INSERT INTO photos (
		photo_id,
		title
	)
	VALUES (%s, %s)
	ON CONFLICT (photo_id) DO UPDATE
	SET title = EXCLUDED.title;
	`, d.bind(1), d.bind(2))

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("seed photos: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range photos {
		if _, err := stmt.ExecContext(ctx, p.PhotoID, p.Title); err != nil {
			return fmt.Errorf("seed photos: insert photo_id=%d: %w", p.PhotoID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed photos: commit tx: %w", err)
	}

	for _, p := range photos {
		if err := store.saveLocation(ctx, p.PhotoID, p.Location); err != nil {
			return fmt.Errorf("seed photos: %w", err)
		}
		if err := store.saveGame(ctx, p.PhotoID, p.Game); err != nil {
			return fmt.Errorf("seed photos: %w", err)
		}
	}

	return nil
}
