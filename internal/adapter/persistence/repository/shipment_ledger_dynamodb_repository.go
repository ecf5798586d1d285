package repository

import (
	"context"
	"time"

	"github.com/hxxtsxxh/EcoShip/internal/domain/entities"
	"github.com/hxxtsxxh/EcoShip/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultShipmentsTableName = "shipments"
	shipmentsUserIDIndex      = "user_id-index"
)

type shipmentItem struct {
	ID           string `dynamodbav:"id"`
	UserID       string `dynamodbav:"user_id"`
	TierID       string `dynamodbav:"tier_id"`
	OriginCity   string `dynamodbav:"origin_city"`
	DestCity     string `dynamodbav:"dest_city"`
	WeightKg     string `dynamodbav:"weight_kg"`
	CostUSD      string `dynamodbav:"cost_usd"`
	CarbonKg     string `dynamodbav:"carbon_kg"`
	EcoScore     int    `dynamodbav:"eco_score"`
	EcoTier      string `dynamodbav:"eco_tier"`
	PointsEarned int    `dynamodbav:"points_earned"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// ShipmentLedgerDynamoRepository persists ShipmentRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)

type ShipmentLedgerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IShipmentLedgerRepository = (*ShipmentLedgerDynamoRepository)(nil)

func NewShipmentLedgerDynamoRepository(ddb *dynamodb.Client) *ShipmentLedgerDynamoRepository {
	return &ShipmentLedgerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SHIPMENTS_TABLE", defaultShipmentsTableName),
	}
}

func (r *ShipmentLedgerDynamoRepository) Create(ctx context.Context, rec entities.ShipmentRecord) (entities.ShipmentRecord, error) {
	it := toShipmentItem(rec)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ShipmentRecord{}, err
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
		return entities.ShipmentRecord{}, err
	}
	return rec, nil
}

func (r *ShipmentLedgerDynamoRepository) GetByID(ctx context.Context, id string) (entities.ShipmentRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ShipmentRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.ShipmentRecord{}, nil
	}

	var it shipmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ShipmentRecord{}, err
	}
	return fromShipmentItem(it), nil
}

func (r *ShipmentLedgerDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.ShipmentRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(shipmentsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ShipmentRecord, 0, len(out.Items))
	for _, raw := range out.Items {
		var it shipmentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromShipmentItem(it))
	}
	return items, nil
}

func toShipmentItem(rec entities.ShipmentRecord) shipmentItem {
	return shipmentItem{
		ID:           rec.ID,
		UserID:       rec.UserID,
		TierID:       rec.TierID,
		OriginCity:   rec.OriginCity,
		DestCity:     rec.DestCity,
		WeightKg:     floatToString(rec.WeightKg),
		CostUSD:      floatToString(rec.CostUSD),
		CarbonKg:     floatToString(rec.CarbonKg),
		EcoScore:     rec.EcoScore,
		EcoTier:      string(rec.EcoTier),
		PointsEarned: rec.PointsEarned,
		CreatedAt:    rec.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromShipmentItem(it shipmentItem) entities.ShipmentRecord {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.ShipmentRecord{
		ID:           it.ID,
		UserID:       it.UserID,
		TierID:       it.TierID,
		OriginCity:   it.OriginCity,
		DestCity:     it.DestCity,
		WeightKg:     stringToFloat(it.WeightKg),
		CostUSD:      stringToFloat(it.CostUSD),
		CarbonKg:     stringToFloat(it.CarbonKg),
		EcoScore:     it.EcoScore,
		EcoTier:      entities.EcoTier(it.EcoTier),
		PointsEarned: it.PointsEarned,
		CreatedAt:    createdAt,
	}
}
