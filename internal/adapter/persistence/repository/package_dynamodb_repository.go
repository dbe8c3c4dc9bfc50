package repository

import (
	"context"
	"strconv"
	"time"

	"ckforest/internal/domain/entities"
	"ckforest/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPackagesTableName = "packages"

type packageItem struct {
	ID             string `dynamodbav:"id"`
	Name           string `dynamodbav:"name"`
	Description    string `dynamodbav:"description,omitempty"`
	PricePerPerson string `dynamodbav:"price_per_person"`
	MinHeadcount   int    `dynamodbav:"min_headcount"`
	Timing         string `dynamodbav:"timing,omitempty"`
	ImageURL       string `dynamodbav:"image_url,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// PackageDynamoRepository persists TourPackage entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type PackageDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPackageRepository = (*PackageDynamoRepository)(nil)

func NewPackageDynamoRepository(ddb *dynamodb.Client) *PackageDynamoRepository {
	return &PackageDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PACKAGES_TABLE", defaultPackagesTableName),
	}
}

// List scans the catalogue. It holds a handful of packages, so no pagination.
func (r *PackageDynamoRepository) List(ctx context.Context) ([]entities.TourPackage, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	packages := make([]entities.TourPackage, 0, len(out.Items))
	for _, raw := range out.Items {
		var it packageItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		packages = append(packages, fromPackageItem(it))
	}
	return packages, nil
}

func (r *PackageDynamoRepository) GetByID(ctx context.Context, id string) (entities.TourPackage, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.TourPackage{}, err
	}
	if len(out.Item) == 0 {
		return entities.TourPackage{}, nil
	}

	var it packageItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.TourPackage{}, err
	}
	return fromPackageItem(it), nil
}

func (r *PackageDynamoRepository) Upsert(ctx context.Context, p entities.TourPackage) (entities.TourPackage, error) {
	it := toPackageItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.TourPackage{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.TourPackage{}, err
	}
	return p, nil
}

func (r *PackageDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toPackageItem(p entities.TourPackage) packageItem {
	return packageItem{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		PricePerPerson: floatToString(p.PricePerPerson),
		MinHeadcount:   p.MinHeadcount,
		Timing:         p.Timing,
		ImageURL:       p.ImageURL,
		CreatedAt:      p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPackageItem(it packageItem) entities.TourPackage {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	pricePerPerson, _ := strconv.ParseFloat(it.PricePerPerson, 64)
	return entities.TourPackage{
		ID:             it.ID,
		Name:           it.Name,
		Description:    it.Description,
		PricePerPerson: pricePerPerson,
		MinHeadcount:   it.MinHeadcount,
		Timing:         it.Timing,
		ImageURL:       it.ImageURL,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}
