package handlers

import (
	"net/http"
	"photo-location-service/internal/api/dto"
	"photo-location-service/internal/domain"
	"photo-location-service/internal/services"
)

// Coordinates posted to these endpoints are transient, so each request
// interns them in its own registry instead of the process-wide one.

func Compare(w http.ResponseWriter, r *http.Request) {
	var req dto.CompareRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	reg := domain.NewRegistry()
	a, err := req.A.ToDomain(reg)
	if err != nil {
		writeDomainError(w, r, "compare", err)
		return
	}
	b, err := req.B.ToDomain(reg)
	if err != nil {
		writeDomainError(w, r, "compare", err)
		return
	}

	cmp, err := services.Compare(r.Context(), a, b)
	if err != nil {
		writeDomainError(w, r, "compare", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.CompareResponse{
		Distance:     cmp.Distance,
		CentralAngle: cmp.CentralAngle,
		Equal:        cmp.Equal,
	})
}

func Convert(w http.ResponseWriter, r *http.Request) {
	var req dto.ConvertRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := req.Coordinate.ToDomain(domain.NewRegistry())
	if err != nil {
		writeDomainError(w, r, "convert", err)
		return
	}
	to, err := domain.ParseKind(req.To)
	if err != nil {
		writeDomainError(w, r, "convert", err)
		return
	}

	out, err := services.Convert(c, to)
	if err != nil {
		writeDomainError(w, r, "convert", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ConvertResponse{Coordinate: dto.FromCoordinate(out)})
}
