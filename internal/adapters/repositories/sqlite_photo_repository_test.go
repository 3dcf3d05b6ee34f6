package repositories

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"photo-location-service/internal/domain"
	"photo-location-service/internal/platform/sentinel"
	"photo-location-service/internal/ports"

	_ "modernc.org/sqlite"
)

const seedJSON = `[
	{"photo_id": 1, "title": "Erlangen castle", "location": {"type": "spheric", "components": [0.1913, 0.6852, 6371]}},
	{"photo_id": 2, "title": "Harbour", "location": {"type": "cartesian", "components": [-0.562, 101.35, -121.421]}},
	{"photo_id": 3, "title": "Untagged"},
	{"photo_id": 4, "title": "Hyrule field", "game": {"title": "Breath of the Wild", "type": "Action/Adventure", "release": "2017-03-03"}}
]`

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func seededRepo(t *testing.T) (*SqlitePhotoRepository, *sql.DB) {
	t.Helper()
	ctx := context.Background()

	db := openTestDB(t)
	if err := InitSchema(ctx, db); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	path := filepath.Join(t.TempDir(), "photos.json")
	if err := os.WriteFile(path, []byte(seedJSON), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	if err := SeedFromJSON(ctx, db, Sqlite, path); err != nil {
		t.Fatalf("seed: %v", err)
	}

	return NewSqlitePhotoRepository(db), db
}

func TestSqlitePhotoRepositoryListPhotos(t *testing.T) {
	repo, _ := seededRepo(t)

	photos, err := repo.ListPhotos(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(photos) != 4 {
		t.Fatalf("expected 4 photos, got %d", len(photos))
	}

	c, ok := photos[0].Location.Coordinate()
	if !ok {
		t.Fatalf("photo 1 has no location")
	}
	want, err := domain.NewSpheric(0.1913, 0.6852, 6371)
	if err != nil {
		t.Fatalf("new spheric: %v", err)
	}
	if c != domain.Coordinate(want) {
		t.Errorf("photo 1 coordinate = %v, want canonical %v", c, want)
	}

	if c, _ := photos[1].Location.Coordinate(); c.Kind() != domain.KindCartesian {
		t.Errorf("photo 2 kind = %v, want cartesian", c.Kind())
	}

	if photos[2].Location.HasCoordinate() {
		t.Errorf("photo 3 should have no location")
	}
	if photos[2].Title != "Untagged" {
		t.Errorf("photo 3 title = %q", photos[2].Title)
	}
	if photos[2].Game != nil {
		t.Errorf("photo 3 should not be a gaming photo")
	}

	g := photos[3].Game
	if g == nil {
		t.Fatalf("photo 4 has no game")
	}
	if g.Title() != "Breath of the Wild" || g.Type().Path() != "Action/Adventure" {
		t.Errorf("photo 4 game = %q %q", g.Title(), g.Type().Path())
	}
	if want := time.Date(2017, time.March, 3, 0, 0, 0, 0, time.UTC); !g.Release().Equal(want) {
		t.Errorf("photo 4 release = %v, want %v", g.Release(), want)
	}
}

func TestSqlitePhotoRepositorySaveGame(t *testing.T) {
	repo, _ := seededRepo(t)
	ctx := context.Background()

	release := time.Date(2007, time.October, 10, 0, 0, 0, 0, time.UTC)
	game, err := domain.DefaultGameTypes().NewVideoGame("Portal", "Puzzle/First-person", release)
	if err != nil {
		t.Fatalf("new video game: %v", err)
	}

	if err := repo.SaveGame(ctx, 1, game); err != nil {
		t.Fatalf("save game: %v", err)
	}

	p, err := repo.GetPhoto(ctx, 1)
	if err != nil {
		t.Fatalf("get photo: %v", err)
	}
	if p.Game == nil || p.Game.Title() != "Portal" || p.Game.Type() != game.Type() || !p.Game.Release().Equal(release) {
		t.Fatalf("game = %+v, want %+v", p.Game, game)
	}
	if !p.Location.HasCoordinate() {
		t.Errorf("saving a game must keep the location")
	}

	if err := repo.SaveGame(ctx, 1, nil); err != nil {
		t.Fatalf("clear game: %v", err)
	}
	p, err = repo.GetPhoto(ctx, 1)
	if err != nil {
		t.Fatalf("get photo: %v", err)
	}
	if p.Game != nil {
		t.Errorf("game should be cleared")
	}

	if err := repo.SaveGame(ctx, 42, game); !errors.Is(err, ports.ErrPhotoNotFound) {
		t.Errorf("unknown photo: err = %v, want ErrPhotoNotFound", err)
	}
}

func TestSqlitePhotoRepositorySaveLocation(t *testing.T) {
	repo, _ := seededRepo(t)
	ctx := context.Background()

	c, err := domain.NewCartesian(3, 4, 12)
	if err != nil {
		t.Fatalf("new cartesian: %v", err)
	}
	loc, err := domain.NewLocation(c)
	if err != nil {
		t.Fatalf("new location: %v", err)
	}

	if err := repo.SaveLocation(ctx, 3, loc); err != nil {
		t.Fatalf("save location: %v", err)
	}

	p, err := repo.GetPhoto(ctx, 3)
	if err != nil {
		t.Fatalf("get photo: %v", err)
	}
	got, ok := p.Location.Coordinate()
	if !ok || !domain.Equal(got, c) {
		t.Fatalf("location = %v, want %v", got, c)
	}

	if err := repo.SaveLocation(ctx, 3, domain.NoLocation()); err != nil {
		t.Fatalf("clear location: %v", err)
	}
	p, err = repo.GetPhoto(ctx, 3)
	if err != nil {
		t.Fatalf("get photo: %v", err)
	}
	if p.Location.HasCoordinate() {
		t.Errorf("location should be cleared")
	}
}

func TestSqlitePhotoRepositoryNotFound(t *testing.T) {
	repo, _ := seededRepo(t)
	ctx := context.Background()

	if _, err := repo.GetPhoto(ctx, 42); !errors.Is(err, ports.ErrPhotoNotFound) {
		t.Errorf("get: err = %v, want ErrPhotoNotFound", err)
	}
	if err := repo.SaveLocation(ctx, 42, domain.NoLocation()); !errors.Is(err, ports.ErrPhotoNotFound) {
		t.Errorf("save: err = %v, want ErrPhotoNotFound", err)
	}
}

func TestSqlitePhotoRepositoryStoredValues(t *testing.T) {
	tests := []struct {
		name    string
		update  string
		wantErr error
	}{
		{
			name:    "unknown coordinate type",
			update:  `UPDATE photos SET coordinate_type = 5 WHERE photo_id = 1`,
			wantErr: sentinel.ErrOutOfRange,
		},
		{
			name:    "negative radius",
			update:  `UPDATE photos SET coordinate_3 = -1 WHERE photo_id = 1`,
			wantErr: sentinel.ErrInvalidValue,
		},
		{
			name:    "blank game title",
			update:  `UPDATE photos SET game_title = '  ', game_type = 'Puzzle', game_release = '2007-10-10' WHERE photo_id = 1`,
			wantErr: sentinel.ErrInvalidValue,
		},
		{
			name:    "blank game type",
			update:  `UPDATE photos SET game_title = 'Portal', game_type = 'Puzzle/', game_release = '2007-10-10' WHERE photo_id = 1`,
			wantErr: sentinel.ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, db := seededRepo(t)
			if _, err := db.Exec(tt.update); err != nil {
				t.Fatalf("update: %v", err)
			}

			_, err := repo.GetPhoto(context.Background(), 1)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSqlitePhotoRepositorySchemaMismatch(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	_, err := db.Exec(`
	CREATE TABLE photos (
		photo_id INTEGER PRIMARY KEY,
		title TEXT NOT NULL,
		coordinate_type INTEGER,
		coordinate_1 TEXT,
		coordinate_2 DOUBLE PRECISION,
		coordinate_3 DOUBLE PRECISION,
		game_title TEXT,
		game_type TEXT,
		game_release DATE
	);
	INSERT INTO photos VALUES (1, 'Mismatched', 0, '1.0', 2.0, 3.0, NULL, NULL, NULL);
	`)
	if err != nil {
		t.Fatalf("create table: %v", err)
	}

	repo := NewSqlitePhotoRepository(db)

	if _, err := repo.GetPhoto(ctx, 1); !errors.Is(err, sentinel.ErrSchemaMismatch) {
		t.Errorf("get: err = %v, want ErrSchemaMismatch", err)
	}

	c, err := domain.NewCartesian(1, 2, 3)
	if err != nil {
		t.Fatalf("new cartesian: %v", err)
	}
	loc, _ := domain.NewLocation(c)
	if err := repo.SaveLocation(ctx, 1, loc); !errors.Is(err, sentinel.ErrSchemaMismatch) {
		t.Errorf("save: err = %v, want ErrSchemaMismatch", err)
	}

	var stored string
	if err := db.QueryRow(`SELECT coordinate_1 FROM photos WHERE photo_id = 1`).Scan(&stored); err != nil {
		t.Fatalf("read back: %v", err)
	}
	if stored != "1.0" {
		t.Errorf("coordinate_1 = %q, a rejected write must not touch the row", stored)
	}
}

func TestSqlitePhotoRepositoryKeepsExactComponents(t *testing.T) {
	repo, _ := seededRepo(t)
	ctx := context.Background()

	c, err := domain.NewCartesian(math.Pi, -math.SmallestNonzeroFloat64, 1e300)
	if err != nil {
		t.Fatalf("new cartesian: %v", err)
	}
	loc, _ := domain.NewLocation(c)
	if err := repo.SaveLocation(ctx, 2, loc); err != nil {
		t.Fatalf("save: %v", err)
	}

	p, err := repo.GetPhoto(ctx, 2)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	got, _ := p.Location.Coordinate()
	if got != domain.Coordinate(c) {
		t.Errorf("coordinate = %v, want the same canonical instance %v", got, c)
	}
}

func TestSqlitePhotoRepositoryGameSchemaMismatch(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	_, err := db.Exec(`
	CREATE TABLE photos (
		photo_id INTEGER PRIMARY KEY,
		title TEXT NOT NULL,
		coordinate_type INTEGER,
		coordinate_1 DOUBLE PRECISION,
		coordinate_2 DOUBLE PRECISION,
		coordinate_3 DOUBLE PRECISION,
		game_title TEXT,
		game_type TEXT,
		game_release INTEGER
	);
	INSERT INTO photos VALUES (1, 'Arcade', NULL, NULL, NULL, NULL, 'Pac-Man', 'Arcade/Maze', 1980);
	`)
	if err != nil {
		t.Fatalf("create table: %v", err)
	}

	repo := NewSqlitePhotoRepository(db)

	if _, err := repo.GetPhoto(ctx, 1); !errors.Is(err, sentinel.ErrSchemaMismatch) {
		t.Errorf("get: err = %v, want ErrSchemaMismatch", err)
	}

	game, err := domain.DefaultGameTypes().NewVideoGame("Pac-Man", "Arcade/Maze", time.Date(1980, time.May, 22, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("new video game: %v", err)
	}
	if err := repo.SaveGame(ctx, 1, game); !errors.Is(err, sentinel.ErrSchemaMismatch) {
		t.Errorf("save: err = %v, want ErrSchemaMismatch", err)
	}
}

func TestLoadSeedRejectsInvalidItems(t *testing.T) {
	tests := []struct {
		name    string
		seed    string
		wantErr error
	}{
		{"blank title", `[{"photo_id": 1, "title": " "}]`, sentinel.ErrInvalidValue},
		{"unknown kind", `[{"photo_id": 1, "title": "x", "location": {"type": "polar", "components": [1, 2, 3]}}]`, sentinel.ErrOutOfRange},
		{"bad release", `[{"photo_id": 1, "title": "x", "game": {"title": "Tetris", "type": "Puzzle", "release": "1984"}}]`, sentinel.ErrInvalidValue},
		{"blank game title", `[{"photo_id": 1, "title": "x", "game": {"title": "", "type": "Puzzle", "release": "1984-06-06"}}]`, sentinel.ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "photos.json")
			if err := os.WriteFile(path, []byte(tt.seed), 0o600); err != nil {
				t.Fatalf("write seed: %v", err)
			}

			if _, err := LoadSeed(path); !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
