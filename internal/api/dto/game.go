package dto

import (
	"fmt"
	"photo-location-service/internal/domain"
	"photo-location-service/internal/platform/sentinel"
	"time"
)

// VideoGame travels with its type as a path ("Action/Shooter") and its
// release as a YYYY-MM-DD date.
type VideoGame struct {
	Title   string `json:"title"`
	Type    string `json:"type"`
	Release string `json:"release"`
}

func FromVideoGame(g *domain.VideoGame) VideoGame {
	return VideoGame{
		Title:   g.Title(),
		Type:    g.Type().Path(),
		Release: g.Release().Format(time.DateOnly),
	}
}

func (g *VideoGame) ToDomain(types *domain.GameTypes) (*domain.VideoGame, error) {
	if g == nil {
		return nil, fmt.Errorf("game is required: %w", sentinel.ErrNilReference)
	}

	release, err := time.Parse(time.DateOnly, g.Release)
	if err != nil {
		return nil, fmt.Errorf("release %q must be a YYYY-MM-DD date: %w", g.Release, sentinel.ErrInvalidValue)
	}
	return types.NewVideoGame(g.Title, g.Type, release)
}

// A null game turns the photo back into a plain photo.
type SetGameRequest struct {
	Game *VideoGame `json:"game"`
}

type GameTypesResponse struct {
	Types []string `json:"types"`
}
