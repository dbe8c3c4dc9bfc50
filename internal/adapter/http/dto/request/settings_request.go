package request

import (
	"ckforest/internal/domain/entities"
)

// SettingsRequest replaces the site-wide settings row.
type SettingsRequest struct {
	ContactEmail        string `json:"contact_email"`
	PhoneNumber         string `json:"phone_number"`
	PhysicalAddress     string `json:"physical_address"`
	DepositInstructions string `json:"deposit_instructions"`
}

func (r SettingsRequest) ToEntity() entities.GeneralSettings {
	return entities.GeneralSettings{
		ContactEmail:        r.ContactEmail,
		PhoneNumber:         r.PhoneNumber,
		PhysicalAddress:     r.PhysicalAddress,
		DepositInstructions: r.DepositInstructions,
	}
}
