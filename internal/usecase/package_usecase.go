package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"ckforest/internal/domain/entities"
	"ckforest/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPackageNotFound    = errors.New("package not found")
	ErrInvalidPackageID   = errors.New("invalid package id")
	ErrInvalidPackageName = errors.New("invalid package name")
	ErrInvalidPrice       = errors.New("invalid price per person")
	ErrInvalidMinHeads    = errors.New("invalid minimum headcount")
)

// IPackageUseCase exposes the tour package catalogue.

type IPackageUseCase interface {
	List(ctx context.Context) ([]entities.TourPackage, error)
	GetByID(ctx context.Context, id string) (entities.TourPackage, error)
	Upsert(ctx context.Context, p entities.TourPackage) (entities.TourPackage, error)
	Delete(ctx context.Context, id string) error
}

type PackageUseCase struct {
	repo interfaces.IPackageRepository
}

var _ IPackageUseCase = (*PackageUseCase)(nil)

func NewPackageUseCase(repo interfaces.IPackageRepository) *PackageUseCase {
	return &PackageUseCase{repo: repo}
}

func (u *PackageUseCase) List(ctx context.Context) ([]entities.TourPackage, error) {
	return u.repo.List(ctx)
}

func (u *PackageUseCase) GetByID(ctx context.Context, id string) (entities.TourPackage, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.TourPackage{}, ErrInvalidPackageID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.TourPackage{}, err
	}
	if p.ID == "" {
		return entities.TourPackage{}, ErrPackageNotFound
	}
	return p, nil
}

// Upsert creates or replaces a package. A missing id means "create"; the
// console edits packages in place with the same payload.
func (u *PackageUseCase) Upsert(ctx context.Context, p entities.TourPackage) (entities.TourPackage, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return entities.TourPackage{}, ErrInvalidPackageName
	}
	if p.PricePerPerson < 0 {
		return entities.TourPackage{}, ErrInvalidPrice
	}
	if p.MinHeadcount < 1 {
		return entities.TourPackage{}, ErrInvalidMinHeads
	}

	now := time.Now().UTC()
	if strings.TrimSpace(p.ID) == "" {
		p.ID = uuid.NewString()
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	return u.repo.Upsert(ctx, p)
}

func (u *PackageUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidPackageID
	}
	return u.repo.Delete(ctx, id)
}
