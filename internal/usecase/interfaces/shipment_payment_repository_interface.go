package interfaces

import (
	"context"

	"github.com/hxxtsxxh/EcoShip/internal/domain/entities"
)

// IShipmentPaymentRepository abstracts DynamoDB persistence for shipment
// payments.
type IShipmentPaymentRepository interface {
	Create(ctx context.Context, p entities.ShipmentPayment) (entities.ShipmentPayment, error)
	GetByID(ctx context.Context, id string) (entities.ShipmentPayment, error)
	ListByShipmentID(ctx context.Context, shipmentID string) ([]entities.ShipmentPayment, error)
}
