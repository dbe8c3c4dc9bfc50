package usecase

import (
	"context"
	"time"

	"ckforest/internal/domain/entities"
	"ckforest/internal/usecase/interfaces"
)

// settingsRowID pins the general_settings table to a single row.
const settingsRowID = "general"

// ISettingsUseCase exposes the site-wide settings edited from the console.
// Get never fails on an empty table; it returns zero-valued settings so the
// booking form can render without deposit instructions.

type ISettingsUseCase interface {
	Get(ctx context.Context) (entities.GeneralSettings, error)
	Upsert(ctx context.Context, s entities.GeneralSettings) (entities.GeneralSettings, error)
}

type SettingsUseCase struct {
	repo interfaces.ISettingsRepository
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(repo interfaces.ISettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

func (u *SettingsUseCase) Get(ctx context.Context) (entities.GeneralSettings, error) {
	return u.repo.Get(ctx)
}

func (u *SettingsUseCase) Upsert(ctx context.Context, s entities.GeneralSettings) (entities.GeneralSettings, error) {
	s.ID = settingsRowID
	s.UpdatedAt = time.Now().UTC()
	return u.repo.Upsert(ctx, s)
}
