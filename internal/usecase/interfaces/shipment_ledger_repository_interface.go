package interfaces

import (
	"context"

	"github.com/hxxtsxxh/EcoShip/internal/domain/entities"
)

// IShipmentLedgerRepository abstracts DynamoDB persistence for the user
// shipment ledger.
//
// The ledger is append-only: records are created once and listed per user;
// running totals are derived from the record list.
type IShipmentLedgerRepository interface {
	Create(ctx context.Context, rec entities.ShipmentRecord) (entities.ShipmentRecord, error)
	GetByID(ctx context.Context, id string) (entities.ShipmentRecord, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.ShipmentRecord, error)
}
