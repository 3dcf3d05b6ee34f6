package domain

import (
	"testing"
	"time"

	"photo-location-service/internal/platform/sentinel"
	"photo-location-service/internal/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var botwRelease = time.Date(2017, time.March, 3, 0, 0, 0, 0, time.UTC)

func TestNewVideoGame(t *testing.T) {
	ts := NewGameTypes()

	local := time.Date(2017, time.March, 3, 23, 30, 0, 0, time.FixedZone("JST", 9*3600))
	g, err := ts.NewVideoGame("Breath of the Wild", "Action/Adventure", local)
	require.NoError(t, err)

	assert.Equal(t, "Breath of the Wild", g.Title())
	assert.Equal(t, "Action/Adventure", g.Type().Path())
	assert.True(t, botwRelease.Equal(g.Release()))

	adventure, ok := ts.Lookup("Action/Adventure")
	require.True(t, ok)
	assert.Same(t, adventure, g.Type())
}

func TestNewVideoGameRejectsInvalid(t *testing.T) {
	ts := NewGameTypes()
	typ, err := ts.Type("Puzzle")
	require.NoError(t, err)

	tests := []struct {
		name    string
		title   string
		typ     *GameType
		release time.Time
		wantErr error
	}{
		{"blank title", "  ", typ, botwRelease, sentinel.ErrInvalidValue},
		{"no type", "Tetris", nil, botwRelease, sentinel.ErrNilReference},
		{"root type", "Tetris", ts.Root(), botwRelease, sentinel.ErrInvalidValue},
		{"no release", "Tetris", typ, time.Time{}, sentinel.ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewVideoGame(tt.title, tt.typ, tt.release)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVideoGameRecordRoundTrip(t *testing.T) {
	ts := NewGameTypes()

	g, err := ts.NewVideoGame("Portal", "Puzzle/First-person", botwRelease)
	require.NoError(t, err)

	rec := record.NewMap(GameRecordSchema())
	require.NoError(t, g.WriteOn(rec))

	typePath, err := rec.String(FieldGameType)
	require.NoError(t, err)
	assert.Equal(t, "Puzzle/First-person", typePath)

	got, err := ts.VideoGameFromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, g.Title(), got.Title())
	assert.Same(t, g.Type(), got.Type())
	assert.True(t, g.Release().Equal(got.Release()))
}

func TestVideoGameRecordShape(t *testing.T) {
	ts := NewGameTypes()
	g, err := ts.NewVideoGame("Portal", "Puzzle", botwRelease)
	require.NoError(t, err)

	wrongType := GameRecordSchema()
	wrongType[FieldGameRelease] = record.Text
	rec := record.NewMap(wrongType)

	assert.ErrorIs(t, g.WriteOn(rec), sentinel.ErrSchemaMismatch)
	assert.False(t, rec.Set(FieldGameTitle), "nothing is written when the shape is wrong")

	_, err = ts.VideoGameFromRecord(rec)
	assert.ErrorIs(t, err, sentinel.ErrSchemaMismatch)

	missing := GameRecordSchema()
	delete(missing, FieldGameType)
	_, err = ts.VideoGameFromRecord(record.NewMap(missing))
	assert.ErrorIs(t, err, sentinel.ErrSchemaMismatch)

	var nilGame *VideoGame
	assert.ErrorIs(t, nilGame.WriteOn(record.NewMap(GameRecordSchema())), sentinel.ErrNilReference)
}

func TestVideoGameFromRecordRejectsBlankTitle(t *testing.T) {
	ts := NewGameTypes()

	rec := record.NewMap(GameRecordSchema())
	require.NoError(t, rec.SetString(FieldGameTitle, " "))
	require.NoError(t, rec.SetString(FieldGameType, "Puzzle"))
	require.NoError(t, rec.SetTime(FieldGameRelease, botwRelease))

	_, err := ts.VideoGameFromRecord(rec)
	assert.ErrorIs(t, err, sentinel.ErrInvalidValue)
}
