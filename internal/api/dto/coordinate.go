package dto

import (
	"fmt"
	"photo-location-service/internal/domain"
	"photo-location-service/internal/platform/sentinel"
)

// Coordinate components are in record order: x, y, z or phi, theta, radius.
type Coordinate struct {
	Type       string     `json:"type"`
	Components [3]float64 `json:"components"`
}

func FromCoordinate(c domain.Coordinate) Coordinate {
	return Coordinate{Type: c.Kind().String(), Components: c.Components()}
}

// ToDomain interns the coordinate in reg.
func (c *Coordinate) ToDomain(reg *domain.Registry) (domain.Coordinate, error) {
	if c == nil {
		return nil, fmt.Errorf("coordinate is required: %w", sentinel.ErrNilReference)
	}

	kind, err := domain.ParseKind(c.Type)
	if err != nil {
		return nil, err
	}
	return reg.New(kind, c.Components[0], c.Components[1], c.Components[2])
}

type CompareRequest struct {
	A *Coordinate `json:"a"`
	B *Coordinate `json:"b"`
}

type CompareResponse struct {
	Distance     float64 `json:"distance"`
	CentralAngle float64 `json:"central_angle"`
	Equal        bool    `json:"equal"`
}

type ConvertRequest struct {
	Coordinate *Coordinate `json:"coordinate"`
	To         string      `json:"to"`
}

type ConvertResponse struct {
	Coordinate Coordinate `json:"coordinate"`
}
