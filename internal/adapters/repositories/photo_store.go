package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"photo-location-service/internal/domain"
	"photo-location-service/internal/ports"
	"strings"
)

// Dialect captures the SQL differences between the supported databases.
type Dialect struct {
	Name string
	bind func(i int) string
}

var (
	Sqlite   = Dialect{Name: "sqlite", bind: func(int) string { return "?" }}
	Postgres = Dialect{Name: "postgres", bind: func(i int) string { return fmt.Sprintf("$%d", i) }}
)

var coordinateColumns = []string{
	domain.FieldCoordinateType,
	domain.FieldCoordinate1,
	domain.FieldCoordinate2,
	domain.FieldCoordinate3,
}

var gameColumns = []string{
	domain.FieldGameTitle,
	domain.FieldGameType,
	domain.FieldGameRelease,
}

const selectPhotos = `
	SELECT
		photo_id,
		title,
		coordinate_type,
		coordinate_1,
		coordinate_2,
		coordinate_3,
		game_title,
		game_type,
		game_release
	FROM photos
	`

// photoStore holds the queries shared by the SQLite and Postgres repositories.
type photoStore struct {
	db        *sql.DB
	dialect   Dialect
	registry  *domain.Registry
	gameTypes *domain.GameTypes
}

func newPhotoStore(db *sql.DB, d Dialect) photoStore {
	return photoStore{
		db:        db,
		dialect:   d,
		registry:  domain.DefaultRegistry(),
		gameTypes: domain.DefaultGameTypes(),
	}
}

func (s photoStore) list(ctx context.Context) ([]*domain.Photo, error) {
	if s.db == nil {
		return nil, errors.New("list photos: DB is nil")
	}

	query := selectPhotos + `ORDER BY photo_id;`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list photos: query photos table: %w", err)
	}
	defer rows.Close()

	rec, names, err := columnRecord(rows)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}

	photos := make([]*domain.Photo, 0, 64)
	for rows.Next() {
		p, err := s.scanPhoto(rows, rec, names)
		if err != nil {
			return nil, fmt.Errorf("list photos: %w", err)
		}
		photos = append(photos, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list photos: row iteration: %w", err)
	}

	return photos, nil
}

func (s photoStore) get(ctx context.Context, photoID int) (*domain.Photo, error) {
	if s.db == nil {
		return nil, errors.New("get photo: DB is nil")
	}

	query := selectPhotos + fmt.Sprintf(`WHERE photo_id = %s;`, s.dialect.bind(1))

	rows, err := s.db.QueryContext(ctx, query, photoID)
	if err != nil {
		return nil, fmt.Errorf("get photo: query photos table: %w", err)
	}
	defer rows.Close()

	rec, names, err := columnRecord(rows)
	if err != nil {
		return nil, fmt.Errorf("get photo: %w", err)
	}

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("get photo: row iteration: %w", err)
		}
		return nil, fmt.Errorf("get photo photo_id=%d: %w", photoID, ports.ErrPhotoNotFound)
	}

	p, err := s.scanPhoto(rows, rec, names)
	if err != nil {
		return nil, fmt.Errorf("get photo: %w", err)
	}
	return p, nil
}

func (s photoStore) scanPhoto(rows *sql.Rows, rec *rowRecord, names []string) (*domain.Photo, error) {
	if err := rec.scanInto(rows, names); err != nil {
		return nil, err
	}

	id, err := rec.Int("photo_id")
	if err != nil {
		return nil, fmt.Errorf("scan photo: %w", err)
	}
	title, err := rec.String("title")
	if err != nil {
		return nil, fmt.Errorf("scan photo photo_id=%d: %w", id, err)
	}
	p := &domain.Photo{PhotoID: int(id), Title: title}

	// No stored coordinate type means no location was ever set.
	if !rec.IsNull(domain.FieldCoordinateType) {
		p.Location, err = s.registry.LocationFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("scan photo photo_id=%d: %w", id, err)
		}
	}
	// Only gaming photos carry a game title.
	if !rec.IsNull(domain.FieldGameTitle) {
		p.Game, err = s.gameTypes.VideoGameFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("scan photo photo_id=%d: %w", id, err)
		}
	}

	return p, nil
}

func (s photoStore) saveLocation(ctx context.Context, photoID int, loc domain.Location) error {
	if s.db == nil {
		return errors.New("save location: DB is nil")
	}

	rec, err := s.emptyRecord(ctx, coordinateColumns)
	if err != nil {
		return fmt.Errorf("save location: %w", err)
	}
	if loc.HasCoordinate() {
		if err := loc.WriteOn(rec); err != nil {
			return fmt.Errorf("save location photo_id=%d: %w", photoID, err)
		}
	}

	if err := s.update(ctx, photoID, rec, coordinateColumns); err != nil {
		return fmt.Errorf("save location photo_id=%d: %w", photoID, err)
	}
	return nil
}

func (s photoStore) saveGame(ctx context.Context, photoID int, game *domain.VideoGame) error {
	if s.db == nil {
		return errors.New("save game: DB is nil")
	}

	rec, err := s.emptyRecord(ctx, gameColumns)
	if err != nil {
		return fmt.Errorf("save game: %w", err)
	}
	if game != nil {
		if err := game.WriteOn(rec); err != nil {
			return fmt.Errorf("save game photo_id=%d: %w", photoID, err)
		}
	}

	if err := s.update(ctx, photoID, rec, gameColumns); err != nil {
		return fmt.Errorf("save game photo_id=%d: %w", photoID, err)
	}
	return nil
}

// update stores the given columns of rec on one photo row. Unset columns
// are written as NULL.
func (s photoStore) update(ctx context.Context, photoID int, rec *rowRecord, columns []string) error {
	sets := make([]string, 0, len(columns))
	for i, c := range columns {
		sets = append(sets, fmt.Sprintf("%s = %s", c, s.dialect.bind(i+1)))
	}
	query := fmt.Sprintf(`
	UPDATE photos
	SET %s
	WHERE photo_id = %s;
	`, strings.Join(sets, ", "), s.dialect.bind(len(columns)+1))

	args := append(rec.args(columns), photoID)
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update photos table: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ports.ErrPhotoNotFound
	}
	return nil
}

// emptyRecord reads the declared types of columns without reading any row,
// yielding an empty record a value can be written onto.
func (s photoStore) emptyRecord(ctx context.Context, columns []string) (*rowRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM photos LIMIT 0;`, strings.Join(columns, ", "))

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("read photos column types: %w", err)
	}
	defer rows.Close()

	rec, _, err := columnRecord(rows)
	if err != nil {
		return nil, fmt.Errorf("read photos column types: %w", err)
	}
	return rec, nil
}
