package response

import (
	"time"

	"ckforest/internal/domain/entities"
)

type PackageResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	PricePerPerson float64   `json:"price_per_person"`
	MinHeadcount   int       `json:"min_headcount"`
	Timing         string    `json:"timing"`
	ImageURL       string    `json:"image_url"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromTourPackage(p entities.TourPackage) PackageResponse {
	return PackageResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		PricePerPerson: p.PricePerPerson,
		MinHeadcount:   p.MinHeadcount,
		Timing:         p.Timing,
		ImageURL:       p.ImageURL,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func FromTourPackages(packages []entities.TourPackage) []PackageResponse {
	out := make([]PackageResponse, 0, len(packages))
	for _, p := range packages {
		out = append(out, FromTourPackage(p))
	}
	return out
}
