package entities

import "time"

// GeneralSettings is the single-row site configuration edited from the
// management console. DepositInstructions is the text shown to customers
// before they upload a transfer receipt.
//
// Storage model (DynamoDB):
//   - PK: id (fixed value "general"; the table holds one row)

type GeneralSettings struct {
	ID                  string    `json:"id"`
	ContactEmail        string    `json:"contact_email"`
	PhoneNumber         string    `json:"phone_number"`
	PhysicalAddress     string    `json:"physical_address"`
	DepositInstructions string    `json:"deposit_instructions"`
	UpdatedAt           time.Time `json:"updated_at"`
}
