package usecase

import (
	"context"
	"errors"
	"testing"

	"ckforest/internal/domain/entities"
	mock_interfaces "ckforest/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPackageUseCase_Upsert(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		uc := NewPackageUseCase(nil)
		_, err := uc.Upsert(context.Background(), entities.TourPackage{Name: "  ", PricePerPerson: 5000, MinHeadcount: 10})
		if !errors.Is(err, ErrInvalidPackageName) {
			t.Fatalf("expected ErrInvalidPackageName, got %v", err)
		}
	})

	t.Run("negative price", func(t *testing.T) {
		uc := NewPackageUseCase(nil)
		_, err := uc.Upsert(context.Background(), entities.TourPackage{Name: "Day Stay", PricePerPerson: -1, MinHeadcount: 10})
		if !errors.Is(err, ErrInvalidPrice) {
			t.Fatalf("expected ErrInvalidPrice, got %v", err)
		}
	})

	t.Run("minimum headcount below one", func(t *testing.T) {
		uc := NewPackageUseCase(nil)
		_, err := uc.Upsert(context.Background(), entities.TourPackage{Name: "Day Stay", PricePerPerson: 5000})
		if !errors.Is(err, ErrInvalidMinHeads) {
			t.Fatalf("expected ErrInvalidMinHeads, got %v", err)
		}
	})

	t.Run("create assigns id and timestamps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPackageRepository(ctrl)
		uc := NewPackageUseCase(repo)

		repo.EXPECT().Upsert(gomock.Any(), gomock.AssignableToTypeOf(entities.TourPackage{})).DoAndReturn(
			func(_ context.Context, p entities.TourPackage) (entities.TourPackage, error) {
				if p.ID == "" {
					t.Fatalf("expected generated id")
				}
				if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return p, nil
			},
		)

		got, err := uc.Upsert(context.Background(), entities.TourPackage{Name: "Day Stay", PricePerPerson: 5000, MinHeadcount: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID == "" {
			t.Fatalf("expected id on result")
		}
	})

	t.Run("update keeps id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPackageRepository(ctrl)
		uc := NewPackageUseCase(repo)

		repo.EXPECT().Upsert(gomock.Any(), gomock.AssignableToTypeOf(entities.TourPackage{})).DoAndReturn(
			func(_ context.Context, p entities.TourPackage) (entities.TourPackage, error) {
				if p.ID != "day_stay" {
					t.Fatalf("expected id preserved, got %q", p.ID)
				}
				return p, nil
			},
		)

		if _, err := uc.Upsert(context.Background(), entities.TourPackage{ID: "day_stay", Name: "Day Stay", PricePerPerson: 6000, MinHeadcount: 10}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPackageUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewPackageUseCase(nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidPackageID) {
			t.Fatalf("expected ErrInvalidPackageID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPackageRepository(ctrl)
		uc := NewPackageUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.TourPackage{}, nil)

		_, err := uc.GetByID(context.Background(), "nope")
		if !errors.Is(err, ErrPackageNotFound) {
			t.Fatalf("expected ErrPackageNotFound, got %v", err)
		}
	})
}

func TestPackageUseCase_Delete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewPackageUseCase(nil)
		if err := uc.Delete(context.Background(), ""); !errors.Is(err, ErrInvalidPackageID) {
			t.Fatalf("expected ErrInvalidPackageID, got %v", err)
		}
	})

	t.Run("delegates to repo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPackageRepository(ctrl)
		uc := NewPackageUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "day_stay").Return(nil)

		if err := uc.Delete(context.Background(), "day_stay"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
