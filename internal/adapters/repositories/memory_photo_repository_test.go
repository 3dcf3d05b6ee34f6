package repositories

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"photo-location-service/internal/domain"
	"photo-location-service/internal/ports"
)

func TestMemoryPhotoRepositoryFromSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photos.json")
	if err := os.WriteFile(path, []byte(seedJSON), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	photos, err := LoadSeed(path)
	if err != nil {
		t.Fatalf("load seed: %v", err)
	}
	repo, err := NewMemoryPhotoRepository(photos...)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}
	ctx := context.Background()

	got, err := repo.ListPhotos(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 photos, got %d", len(got))
	}
	for i, p := range got {
		if p.PhotoID != i+1 {
			t.Errorf("photo %d has id %d, want ordered ids", i, p.PhotoID)
		}
	}

	c, ok := got[0].Location.Coordinate()
	want, _ := photos[0].Location.Coordinate()
	if !ok || c != want {
		t.Errorf("photo 1 coordinate = %v, want canonical %v", c, want)
	}
	if got[3].Game == nil || got[3].Game.Type() != photos[3].Game.Type() {
		t.Errorf("photo 4 game = %+v, want %+v", got[3].Game, photos[3].Game)
	}
}

func TestMemoryPhotoRepositorySaveGame(t *testing.T) {
	p, err := domain.NewPhoto(9, "Couch co-op", domain.NoLocation())
	if err != nil {
		t.Fatalf("new photo: %v", err)
	}
	repo, err := NewMemoryPhotoRepository(p)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}
	ctx := context.Background()

	game, err := domain.DefaultGameTypes().NewVideoGame("Overcooked", "Party/Cooking", time.Date(2016, time.August, 3, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("new video game: %v", err)
	}
	if err := repo.SaveGame(ctx, 9, game); err != nil {
		t.Fatalf("save game: %v", err)
	}

	got, err := repo.GetPhoto(ctx, 9)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Game == nil || got.Game.Title() != "Overcooked" || got.Game.Type() != game.Type() {
		t.Errorf("game = %+v, want %+v", got.Game, game)
	}

	if err := repo.SaveGame(ctx, 10, game); !errors.Is(err, ports.ErrPhotoNotFound) {
		t.Errorf("unknown photo: err = %v", err)
	}
}
