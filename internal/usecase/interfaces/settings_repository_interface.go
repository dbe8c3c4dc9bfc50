package interfaces

import (
	"context"

	"ckforest/internal/domain/entities"
)

// ISettingsRepository abstracts persistence for the single GeneralSettings row.

type ISettingsRepository interface {
	Get(ctx context.Context) (entities.GeneralSettings, error)
	Upsert(ctx context.Context, s entities.GeneralSettings) (entities.GeneralSettings, error)
}
