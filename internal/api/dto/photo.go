package dto

import "photo-location-service/internal/domain"

type PhotoResponse struct {
	PhotoID  int         `json:"photo_id"`
	Title    string      `json:"title"`
	Location *Coordinate `json:"location"`
	Game     *VideoGame  `json:"game"`
}

func FromPhoto(p *domain.Photo) PhotoResponse {
	res := PhotoResponse{PhotoID: p.PhotoID, Title: p.Title}
	if c, ok := p.Location.Coordinate(); ok {
		loc := FromCoordinate(c)
		res.Location = &loc
	}
	if p.Game != nil {
		g := FromVideoGame(p.Game)
		res.Game = &g
	}
	return res
}

type ListPhotosResponse struct {
	Photos []PhotoResponse `json:"photos"`
}

// A null location clears the photo's location.
type SetLocationRequest struct {
	Location *Coordinate `json:"location"`
}

type NearestRequest struct {
	Origin *Coordinate `json:"origin"`
	Limit  int         `json:"limit"`
}

type NearestResult struct {
	Photo        PhotoResponse `json:"photo"`
	CentralAngle float64       `json:"central_angle"`
	Distance     float64       `json:"distance"`
}

type NearestResponse struct {
	Results []NearestResult `json:"results"`
}
