package domain

import (
	"fmt"
	"photo-location-service/internal/platform/check"
	"photo-location-service/internal/platform/sentinel"
	"photo-location-service/internal/record"
	"time"
)

// Persisted-record field names of a video game.
const (
	FieldGameTitle   = "game_title"
	FieldGameType    = "game_type"
	FieldGameRelease = "game_release"
)

var gameFields = []check.Field{
	{Name: FieldGameTitle, Type: record.Text},
	{Name: FieldGameType, Type: record.Text},
	{Name: FieldGameRelease, Type: record.Date},
}

// GameRecordSchema returns the field layout of a persisted video game.
func GameRecordSchema() map[string]record.FieldType {
	schema := make(map[string]record.FieldType, len(gameFields))
	for _, f := range gameFields {
		schema[f.Name] = f.Type
	}
	return schema
}

// VideoGame is the game shown on a gaming photo.
type VideoGame struct {
	title   string
	typ     *GameType
	release time.Time
}

// NewVideoGame validates and builds a game. The release is kept as a
// calendar date in UTC.
func NewVideoGame(title string, typ *GameType, release time.Time) (*VideoGame, error) {
	if err := check.NotBlank(title, "game title"); err != nil {
		return nil, fmt.Errorf("new video game: %w", err)
	}
	if err := check.NotNil(typ, "game type"); err != nil {
		return nil, fmt.Errorf("new video game: %w", err)
	}
	if typ.IsRoot() {
		return nil, fmt.Errorf("new video game: game type must be below the root: %w", sentinel.ErrInvalidValue)
	}
	if release.IsZero() {
		return nil, fmt.Errorf("new video game: release date is required: %w", sentinel.ErrInvalidValue)
	}

	y, m, d := release.Date()
	return &VideoGame{
		title:   title,
		typ:     typ,
		release: time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
	}, nil
}

// NewVideoGame builds a game whose type is interned in ts by path.
func (ts *GameTypes) NewVideoGame(title, typePath string, release time.Time) (*VideoGame, error) {
	if err := check.NotBlank(title, "game title"); err != nil {
		return nil, fmt.Errorf("new video game: %w", err)
	}
	typ, err := ts.Type(typePath)
	if err != nil {
		return nil, fmt.Errorf("new video game: %w", err)
	}
	return NewVideoGame(title, typ, release)
}

func (g *VideoGame) Title() string      { return g.title }
func (g *VideoGame) Type() *GameType    { return g.typ }
func (g *VideoGame) Release() time.Time { return g.release }

// WriteOn writes the game onto rec after checking the record declares all
// game fields.
func (g *VideoGame) WriteOn(rec record.Record) error {
	if err := check.NotNil(g, "video game"); err != nil {
		return fmt.Errorf("write video game: %w", err)
	}
	if err := check.RecordHasFields(rec, gameFields...); err != nil {
		return fmt.Errorf("write video game: %w", err)
	}

	if err := rec.SetString(FieldGameTitle, g.title); err != nil {
		return fmt.Errorf("write video game: %w", err)
	}
	if err := rec.SetString(FieldGameType, g.typ.Path()); err != nil {
		return fmt.Errorf("write video game: %w", err)
	}
	if err := rec.SetTime(FieldGameRelease, g.release); err != nil {
		return fmt.Errorf("write video game: %w", err)
	}
	return nil
}

// VideoGameFromRecord reads a game through the default type hierarchy.
func VideoGameFromRecord(rec record.Record) (*VideoGame, error) {
	return DefaultGameTypes().VideoGameFromRecord(rec)
}

// VideoGameFromRecord checks the record shape, then reads the game and
// interns its type path in ts.
func (ts *GameTypes) VideoGameFromRecord(rec record.Record) (*VideoGame, error) {
	if err := check.RecordHasFields(rec, gameFields...); err != nil {
		return nil, fmt.Errorf("read video game: %w", err)
	}

	title, err := rec.String(FieldGameTitle)
	if err != nil {
		return nil, fmt.Errorf("read video game: %w", err)
	}
	typePath, err := rec.String(FieldGameType)
	if err != nil {
		return nil, fmt.Errorf("read video game: %w", err)
	}
	release, err := rec.Time(FieldGameRelease)
	if err != nil {
		return nil, fmt.Errorf("read video game: %w", err)
	}

	g, err := ts.NewVideoGame(title, typePath, release)
	if err != nil {
		return nil, fmt.Errorf("read video game: %w", err)
	}
	return g, nil
}
