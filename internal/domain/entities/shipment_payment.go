package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// ShipmentPayment is a processed payment for a ledger shipment.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (shipment_id-index): shipment_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original body (JSON) for audit.
//   - ProviderPayload is an optional parsed representation, useful for
//     querying/debugging across varying provider schemas.
type ShipmentPayment struct {
	ID         string        `json:"id"`
	ShipmentID string        `json:"shipment_id"`
	Date       time.Time     `json:"date"`
	Status     PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
