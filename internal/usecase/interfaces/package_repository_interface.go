package interfaces

import (
	"context"

	"ckforest/internal/domain/entities"
)

// IPackageRepository abstracts DynamoDB persistence for TourPackage.

type IPackageRepository interface {
	List(ctx context.Context) ([]entities.TourPackage, error)
	GetByID(ctx context.Context, id string) (entities.TourPackage, error)
	Upsert(ctx context.Context, p entities.TourPackage) (entities.TourPackage, error)
	Delete(ctx context.Context, id string) error
}
