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
	defaultPaymentsTableName = "payments"
	paymentsShipmentIDIndex  = "shipment_id-index"
)

type shipmentPaymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	ShipmentID         string                 `dynamodbav:"shipment_id"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// ShipmentPaymentDynamoRepository persists ShipmentPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: shipment_id-index (PK: shipment_id)

type ShipmentPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IShipmentPaymentRepository = (*ShipmentPaymentDynamoRepository)(nil)

func NewShipmentPaymentDynamoRepository(ddb *dynamodb.Client) *ShipmentPaymentDynamoRepository {
	return &ShipmentPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *ShipmentPaymentDynamoRepository) Create(ctx context.Context, p entities.ShipmentPayment) (entities.ShipmentPayment, error) {
	it := toShipmentPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ShipmentPayment{}, err
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
		return entities.ShipmentPayment{}, err
	}
	return p, nil
}

func (r *ShipmentPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.ShipmentPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ShipmentPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.ShipmentPayment{}, nil
	}

	var it shipmentPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ShipmentPayment{}, err
	}
	return fromShipmentPaymentItem(it), nil
}

func (r *ShipmentPaymentDynamoRepository) ListByShipmentID(ctx context.Context, shipmentID string) ([]entities.ShipmentPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsShipmentIDIndex),
		KeyConditionExpression: aws.String("shipment_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: shipmentID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ShipmentPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it shipmentPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromShipmentPaymentItem(it))
	}
	return items, nil
}

func toShipmentPaymentItem(p entities.ShipmentPayment) shipmentPaymentItem {
	return shipmentPaymentItem{
		ID:                 p.ID,
		ShipmentID:         p.ShipmentID,
		Date:               p.Date.UTC().Format(time.RFC3339Nano),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromShipmentPaymentItem(it shipmentPaymentItem) entities.ShipmentPayment {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.ShipmentPayment{
		ID:                 it.ID,
		ShipmentID:         it.ShipmentID,
		Date:               dt,
		Status:             entities.PaymentStatus(it.Status),
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}
