package response

import (
	"time"

	"ckforest/internal/domain/entities"
)

type SettingsResponse struct {
	ContactEmail        string    `json:"contact_email"`
	PhoneNumber         string    `json:"phone_number"`
	PhysicalAddress     string    `json:"physical_address"`
	DepositInstructions string    `json:"deposit_instructions"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func FromSettings(s entities.GeneralSettings) SettingsResponse {
	return SettingsResponse{
		ContactEmail:        s.ContactEmail,
		PhoneNumber:         s.PhoneNumber,
		PhysicalAddress:     s.PhysicalAddress,
		DepositInstructions: s.DepositInstructions,
		UpdatedAt:           s.UpdatedAt,
	}
}
