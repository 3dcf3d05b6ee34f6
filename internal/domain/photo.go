package domain

import (
	"fmt"
	"photo-location-service/internal/platform/check"
	"photo-location-service/internal/platform/sentinel"
)

// Represents a catalogued photo. Only the fields the location model needs
// are carried here; image data and ownership live elsewhere.
type Photo struct {
	PhotoID  int
	Title    string
	Location Location
	// Game is set on gaming photos only.
	Game *VideoGame
}

func NewPhoto(id int, title string, loc Location) (*Photo, error) {
	if id <= 0 {
		return nil, fmt.Errorf("new photo: photo_id=%d must be positive: %w", id, sentinel.ErrInvalidValue)
	}
	if err := check.NotBlank(title, "title"); err != nil {
		return nil, fmt.Errorf("new photo: %w", err)
	}
	return &Photo{PhotoID: id, Title: title, Location: loc}, nil
}
