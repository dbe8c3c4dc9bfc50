package usecase

import (
	"context"
	"testing"
	"time"

	"ckforest/internal/domain/entities"
	mock_interfaces "ckforest/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSettingsUseCase_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISettingsRepository(ctrl)
	uc := NewSettingsUseCase(repo)

	t.Run("empty table reads as zero values", func(t *testing.T) {
		repo.EXPECT().Get(gomock.Any()).Return(entities.GeneralSettings{}, nil)

		got, err := uc.Get(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.DepositInstructions != "" {
			t.Fatalf("expected zero-valued settings, got %+v", got)
		}
	})
}

func TestSettingsUseCase_Upsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISettingsRepository(ctrl)
	uc := NewSettingsUseCase(repo)

	t.Run("pins the row id and stamps updated_at", func(t *testing.T) {
		before := time.Now().UTC()
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.GeneralSettings) (entities.GeneralSettings, error) {
				if s.ID != "general" {
					t.Fatalf("expected pinned row id, got %q", s.ID)
				}
				if s.UpdatedAt.Before(before) {
					t.Fatalf("expected fresh updated_at, got %s", s.UpdatedAt)
				}
				return s, nil
			})

		saved, err := uc.Upsert(context.Background(), entities.GeneralSettings{
			ID:                  "ignored",
			ContactEmail:        "stay@ckforest.example",
			DepositInstructions: "Transfer 50% to account 001-234",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.ContactEmail != "stay@ckforest.example" {
			t.Fatalf("unexpected settings: %+v", saved)
		}
	})
}
