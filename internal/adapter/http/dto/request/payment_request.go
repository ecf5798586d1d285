package request

import "encoding/json"

// ShipmentPaymentCreateRequest is the checkout payload.
//
// `payment_payload` is forwarded as-is (raw JSON) to support varying
// provider schemas; the charge amount is always taken from the stored
// shipment record.

type ShipmentPaymentCreateRequest struct {
	PaymentPayload json.RawMessage `json:"payment_payload"`
}
