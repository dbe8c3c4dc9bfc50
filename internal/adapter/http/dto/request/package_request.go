package request

import (
	"ckforest/internal/domain/entities"
)

// PackageRequest creates or replaces a tour package from the console.
type PackageRequest struct {
	ID             string  `json:"id"`
	Name           string  `json:"name" binding:"required"`
	Description    string  `json:"description"`
	PricePerPerson float64 `json:"price_per_person"`
	MinHeadcount   int     `json:"min_headcount"`
	Timing         string  `json:"timing"`
	ImageURL       string  `json:"image_url"`
}

func (r PackageRequest) ToEntity() entities.TourPackage {
	return entities.TourPackage{
		ID:             r.ID,
		Name:           r.Name,
		Description:    r.Description,
		PricePerPerson: r.PricePerPerson,
		MinHeadcount:   r.MinHeadcount,
		Timing:         r.Timing,
		ImageURL:       r.ImageURL,
	}
}
