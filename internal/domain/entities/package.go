package entities

import "time"

// TourPackage is a purchasable tour offering persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Pricing notes:
//   - PricePerPerson is a GYD amount charged per adult; children are free.
//   - MinHeadcount is the minimum number of adults required to book.

type TourPackage struct {
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
