package handlers

import (
	"net/http"
	"photo-location-service/internal/api/dto"
	"photo-location-service/internal/domain"
	"photo-location-service/internal/ports"
	"photo-location-service/internal/services"
	"strconv"
)

// PhotoHandler exposes photo retrieval, location and game endpoints.
type PhotoHandler struct {
	Repo         ports.PhotoRepository
	GameTypes    *domain.GameTypes
	NearestLimit int
}

// List returns all photos, or with ?game_type=Action/Shooter only the gaming
// photos of that type and its subtypes.
func (h *PhotoHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		photos []*domain.Photo
		err    error
	)
	if path := r.URL.Query().Get("game_type"); path != "" {
		// Unknown types have no photos; a lookup never creates one.
		if typ, ok := h.GameTypes.Lookup(path); ok {
			photos, err = services.PhotosOfGameType(r.Context(), h.Repo, typ)
		}
	} else {
		photos, err = h.Repo.ListPhotos(r.Context())
	}
	if err != nil {
		writeDomainError(w, r, "list photos", err)
		return
	}

	res := dto.ListPhotosResponse{
		Photos: make([]dto.PhotoResponse, 0, len(photos)),
	}
	for _, p := range photos {
		res.Photos = append(res.Photos, dto.FromPhoto(p))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *PhotoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := photoID(w, r)
	if !ok {
		return
	}

	p, err := h.Repo.GetPhoto(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, "get photo", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FromPhoto(p))
}

// SetLocation replaces the location of a photo; a null location clears it.
func (h *PhotoHandler) SetLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := photoID(w, r)
	if !ok {
		return
	}

	var req dto.SetLocationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var c domain.Coordinate
	if req.Location != nil {
		var err error
		if c, err = req.Location.ToDomain(domain.NewRegistry()); err != nil {
			writeDomainError(w, r, "set location", err)
			return
		}
	}

	p, err := services.SetPhotoLocation(r.Context(), h.Repo, id, c)
	if err != nil {
		writeDomainError(w, r, "set location", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FromPhoto(p))
}

// SetGame replaces the video game shown on a photo; a null game clears it.
func (h *PhotoHandler) SetGame(w http.ResponseWriter, r *http.Request) {
	id, ok := photoID(w, r)
	if !ok {
		return
	}

	var req dto.SetGameRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var game *domain.VideoGame
	if req.Game != nil {
		var err error
		if game, err = req.Game.ToDomain(h.GameTypes); err != nil {
			writeDomainError(w, r, "set game", err)
			return
		}
	}

	p, err := services.SetPhotoGame(r.Context(), h.Repo, id, game)
	if err != nil {
		writeDomainError(w, r, "set game", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FromPhoto(p))
}

// ListGameTypes lists the known video game type paths.
func (h *PhotoHandler) ListGameTypes(w http.ResponseWriter, r *http.Request) {
	res := dto.GameTypesResponse{Types: h.GameTypes.Paths()}
	if res.Types == nil {
		res.Types = []string{}
	}
	writeJSON(w, r, http.StatusOK, res)
}

// Nearest ranks located photos by their angular distance to the origin.
func (h *PhotoHandler) Nearest(w http.ResponseWriter, r *http.Request) {
	var req dto.NearestRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	limit := req.Limit
	if limit == 0 {
		limit = h.NearestLimit
	}
	if limit < 1 || limit > 100 {
		writeError(w, r, http.StatusBadRequest, "limit must be between 1 and 100")
		return
	}

	origin, err := req.Origin.ToDomain(domain.NewRegistry())
	if err != nil {
		writeDomainError(w, r, "nearest photos", err)
		return
	}

	ranked, err := services.NearestPhotos(r.Context(), h.Repo, origin, limit)
	if err != nil {
		writeDomainError(w, r, "nearest photos", err)
		return
	}

	res := dto.NearestResponse{
		Results: make([]dto.NearestResult, 0, len(ranked)),
	}
	for _, pd := range ranked {
		res.Results = append(res.Results, dto.NearestResult{
			Photo:        dto.FromPhoto(pd.Photo),
			CentralAngle: pd.CentralAngle,
			Distance:     pd.Distance,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func photoID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 1 {
		writeError(w, r, http.StatusBadRequest, "photo id must be a positive integer")
		return 0, false
	}
	return id, true
}
