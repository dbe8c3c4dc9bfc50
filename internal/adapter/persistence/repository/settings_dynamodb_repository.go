package repository

import (
	"context"
	"time"

	"ckforest/internal/domain/entities"
	"ckforest/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSettingsTableName = "general_settings"

type settingsItem struct {
	ID                  string `dynamodbav:"id"`
	ContactEmail        string `dynamodbav:"contact_email,omitempty"`
	PhoneNumber         string `dynamodbav:"phone_number,omitempty"`
	PhysicalAddress     string `dynamodbav:"physical_address,omitempty"`
	DepositInstructions string `dynamodbav:"deposit_instructions,omitempty"`
	UpdatedAt           string `dynamodbav:"updated_at"`
}

// SettingsDynamoRepository persists the single GeneralSettings row.
//
// Table requirements:
//   - PK: id (string), always "general"

type SettingsDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb *dynamodb.Client) *SettingsDynamoRepository {
	return &SettingsDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SETTINGS_TABLE", defaultSettingsTableName),
	}
}

// Get returns zero-valued settings when the row does not exist yet.
func (r *SettingsDynamoRepository) Get(ctx context.Context) (entities.GeneralSettings, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: "general"},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.GeneralSettings{}, err
	}
	if len(out.Item) == 0 {
		return entities.GeneralSettings{}, nil
	}

	var it settingsItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.GeneralSettings{}, err
	}
	return fromSettingsItem(it), nil
}

func (r *SettingsDynamoRepository) Upsert(ctx context.Context, s entities.GeneralSettings) (entities.GeneralSettings, error) {
	it := toSettingsItem(s)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.GeneralSettings{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.GeneralSettings{}, err
	}
	return s, nil
}

func toSettingsItem(s entities.GeneralSettings) settingsItem {
	return settingsItem{
		ID:                  s.ID,
		ContactEmail:        s.ContactEmail,
		PhoneNumber:         s.PhoneNumber,
		PhysicalAddress:     s.PhysicalAddress,
		DepositInstructions: s.DepositInstructions,
		UpdatedAt:           s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromSettingsItem(it settingsItem) entities.GeneralSettings {
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.GeneralSettings{
		ID:                  it.ID,
		ContactEmail:        it.ContactEmail,
		PhoneNumber:         it.PhoneNumber,
		PhysicalAddress:     it.PhysicalAddress,
		DepositInstructions: it.DepositInstructions,
		UpdatedAt:           updatedAt,
	}
}
