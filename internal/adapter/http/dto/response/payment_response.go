package response

import (
	"time"

	"github.com/hxxtsxxh/EcoShip/internal/domain/entities"
)

type ShipmentPaymentResponse struct {
	ID         string    `json:"id"`
	ShipmentID string    `json:"shipment_id"`
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromShipmentPayment(p entities.ShipmentPayment) ShipmentPaymentResponse {
	return ShipmentPaymentResponse{
		ID:                 p.ID,
		ShipmentID:         p.ShipmentID,
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}
