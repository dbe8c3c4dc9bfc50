package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"ckforest/internal/domain/entities"
	"ckforest/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBookingsTableName = "bookings"
	bookingsEmailIndex       = "email-index"
)

type bookingItem struct {
	ID               string `dynamodbav:"id"`
	Status           string `dynamodbav:"status"`
	PackageID        string `dynamodbav:"package_id"`
	PackageName      string `dynamodbav:"package_name"`
	CheckinDate      string `dynamodbav:"checkin_date"`
	FullName         string `dynamodbav:"full_name"`
	Email            string `dynamodbav:"email"`
	Phone            string `dynamodbav:"phone"`
	Adults           int    `dynamodbav:"adults"`
	Children         int    `dynamodbav:"children"`
	HeadcountTotal   int    `dynamodbav:"headcount_total"`
	Meals            bool   `dynamodbav:"meals"`
	Transportation   bool   `dynamodbav:"transportation"`
	TourGuide        bool   `dynamodbav:"tour_guide"`
	NaturePreference string `dynamodbav:"nature_preference,omitempty"`
	ReceiptURL       string `dynamodbav:"receipt_url"`
	PricePerPerson   string `dynamodbav:"price_per_person"`
	Subtotal         string `dynamodbav:"subtotal"`
	DepositDue       string `dynamodbav:"deposit_due"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// BookingDynamoRepository persists Booking entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: email-index (PK: email)
//
// Check-in dates are stored as calendar days (YYYY-MM-DD); timestamps keep
// full RFC3339 precision.

type BookingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb *dynamodb.Client) *BookingDynamoRepository {
	return &BookingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BOOKINGS_TABLE", defaultBookingsTableName),
	}
}

func (r *BookingDynamoRepository) Create(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	it := toBookingItem(b)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Booking{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Booking{}, err
	}
	return b, nil
}

func (r *BookingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if len(out.Item) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func (r *BookingDynamoRepository) ListByEmail(ctx context.Context, email string) ([]entities.Booking, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(bookingsEmailIndex),
		KeyConditionExpression: aws.String("email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
	})
	if err != nil {
		return nil, err
	}

	return unmarshalBookingItems(out.Items)
}

// ListAll scans the whole table. The booking volume here is a handful of
// group stays per month, so a paginated Scan is fine.
func (r *BookingDynamoRepository) ListAll(ctx context.Context) ([]entities.Booking, error) {
	var bookings []entities.Booking
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		page, err := unmarshalBookingItems(out.Items)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, page...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return bookings, nil
}

func (r *BookingDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.BookingStatus) (entities.Booking, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Booking{}, nil
		}
		return entities.Booking{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func unmarshalBookingItems(raw []map[string]types.AttributeValue) ([]entities.Booking, error) {
	items := make([]entities.Booking, 0, len(raw))
	for _, av := range raw {
		var it bookingItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		items = append(items, fromBookingItem(it))
	}
	return items, nil
}

func toBookingItem(b entities.Booking) bookingItem {
	return bookingItem{
		ID:               b.ID,
		Status:           string(b.Status),
		PackageID:        b.PackageID,
		PackageName:      b.PackageName,
		CheckinDate:      b.CheckinDate.UTC().Format("2006-01-02"),
		FullName:         b.FullName,
		Email:            b.Email,
		Phone:            b.Phone,
		Adults:           b.Adults,
		Children:         b.Children,
		HeadcountTotal:   b.HeadcountTotal,
		Meals:            b.Addons.Meals,
		Transportation:   b.Addons.Transportation,
		TourGuide:        b.Addons.TourGuide,
		NaturePreference: b.NaturePreference,
		ReceiptURL:       b.ReceiptURL,
		PricePerPerson:   floatToString(b.PricePerPerson),
		Subtotal:         floatToString(b.Subtotal),
		DepositDue:       floatToString(b.DepositDue),
		CreatedAt:        b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromBookingItem(it bookingItem) entities.Booking {
	checkin, _ := time.Parse("2006-01-02", it.CheckinDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	pricePerPerson, _ := strconv.ParseFloat(it.PricePerPerson, 64)
	subtotal, _ := strconv.ParseFloat(it.Subtotal, 64)
	depositDue, _ := strconv.ParseFloat(it.DepositDue, 64)
	return entities.Booking{
		ID:             it.ID,
		Status:         entities.BookingStatus(it.Status),
		PackageID:      it.PackageID,
		PackageName:    it.PackageName,
		CheckinDate:    checkin,
		FullName:       it.FullName,
		Email:          it.Email,
		Phone:          it.Phone,
		Adults:         it.Adults,
		Children:       it.Children,
		HeadcountTotal: it.HeadcountTotal,
		Addons: entities.AddonSelection{
			Meals:          it.Meals,
			Transportation: it.Transportation,
			TourGuide:      it.TourGuide,
		},
		NaturePreference: it.NaturePreference,
		ReceiptURL:       it.ReceiptURL,
		PricePerPerson:   pricePerPerson,
		Subtotal:         subtotal,
		DepositDue:       depositDue,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
