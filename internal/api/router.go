package api

import (
	"net/http"
	"photo-location-service/internal/api/handlers"
	"photo-location-service/internal/domain"
	"photo-location-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.PhotoRepository, nearestLimit int) http.Handler {
	mux := http.NewServeMux()

	photoHandler := &handlers.PhotoHandler{
		Repo:         repo,
		GameTypes:    domain.DefaultGameTypes(),
		NearestLimit: nearestLimit,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("GET /photos", photoHandler.List)
	mux.HandleFunc("GET /photos/{id}", photoHandler.Get)
	mux.HandleFunc("PUT /photos/{id}/location", photoHandler.SetLocation)
	mux.HandleFunc("PUT /photos/{id}/game", photoHandler.SetGame)
	mux.HandleFunc("GET /game-types", photoHandler.ListGameTypes)
	mux.HandleFunc("POST /photos/nearest", photoHandler.Nearest)
	mux.HandleFunc("POST /coordinates/compare", handlers.Compare)
	mux.HandleFunc("POST /coordinates/convert", handlers.Convert)

	return requestIDMiddleware(loggingMiddleware(mux))
}
