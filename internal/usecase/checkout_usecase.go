package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hxxtsxxh/EcoShip/internal/domain/entities"
	"github.com/hxxtsxxh/EcoShip/internal/usecase/interfaces"
)

var (
	ErrPaymentNotFound            = errors.New("payment not found")
	ErrInvalidPaymentShipmentID   = errors.New("invalid shipment_id")
	ErrInvalidPaymentPayload      = errors.New("invalid payment payload")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// ICheckoutUseCase encapsulates paying for a recorded shipment.
//
// The amount charged always comes from the stored ledger record, never from
// the caller payload.
type ICheckoutUseCase interface {
	PayShipment(ctx context.Context, shipmentID string, payload json.RawMessage) (entities.ShipmentPayment, error)
	GetByID(ctx context.Context, id string) (entities.ShipmentPayment, error)
	ListByShipmentID(ctx context.Context, shipmentID string) ([]entities.ShipmentPayment, error)
}

type CheckoutUseCase struct {
	repo       interfaces.IShipmentPaymentRepository
	ledgerRepo interfaces.IShipmentLedgerRepository
	gateway    interfaces.IPaymentGateway
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(repo interfaces.IShipmentPaymentRepository, ledgerRepo interfaces.IShipmentLedgerRepository, gateway interfaces.IPaymentGateway) *CheckoutUseCase {
	return &CheckoutUseCase{repo: repo, ledgerRepo: ledgerRepo, gateway: gateway}
}

func (u *CheckoutUseCase) PayShipment(ctx context.Context, shipmentID string, payload json.RawMessage) (entities.ShipmentPayment, error) {
	log.Printf("[checkout][usecase] pay start raw_shipment_id=%q payload_len=%d", shipmentID, len(payload))
	mockMode := isPaymentGatewayMockEnabled()
	shipmentID = strings.TrimSpace(shipmentID)
	if shipmentID == "" {
		log.Printf("[checkout][usecase] invalid shipment_id (empty)")
		return entities.ShipmentPayment{}, ErrInvalidPaymentShipmentID
	}
	if len(payload) == 0 || !json.Valid(payload) {
		if mockMode {
			payload = json.RawMessage("{}")
		} else {
			log.Printf("[checkout][usecase] invalid payload shipment_id=%s", shipmentID)
			return entities.ShipmentPayment{}, ErrInvalidPaymentPayload
		}
	}
	if u.gateway == nil {
		log.Printf("[checkout][usecase] gateway not configured shipment_id=%s", shipmentID)
		return entities.ShipmentPayment{}, errors.New("payment gateway not configured")
	}

	rec, err := u.ledgerRepo.GetByID(ctx, shipmentID)
	if err != nil {
		log.Printf("[checkout][usecase] failed loading shipment shipment_id=%s err=%v", shipmentID, err)
		return entities.ShipmentPayment{}, err
	}
	if rec.ID == "" {
		log.Printf("[checkout][usecase] shipment not found shipment_id=%s", shipmentID)
		return entities.ShipmentPayment{}, ErrShipmentNotFound
	}
	log.Printf("[checkout][usecase] shipment loaded shipment_id=%s tier=%s cost=%.2f", shipmentID, rec.TierID, rec.CostUSD)

	// external_reference links provider events back to the ledger record;
	// the transaction amount is always taken from the stored record.
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = shipmentID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Shipment %s (%s)", shipmentID, rec.TierID)
		}
		reqMap["transaction_amount"] = rec.CostUSD
		if b, err := json.Marshal(reqMap); err == nil {
			payload = b
		}
	}

	providerPaymentID := ""
	providerStatus := ""
	providerResp := json.RawMessage(nil)

	if mockMode {
		log.Printf("[checkout][usecase] mock mode enabled; skipping external payment gateway shipment_id=%s", shipmentID)
		providerPaymentID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		providerStatus = "approved"
		now := time.Now().UTC().Format(time.RFC3339Nano)
		mockResp := map[string]any{}
		_ = json.Unmarshal(payload, &mockResp)
		mockResp["id"] = providerPaymentID
		mockResp["status"] = "approved"
		mockResp["status_detail"] = "accredited"
		mockResp["date_created"] = now
		mockResp["date_approved"] = now
		b, mErr := json.Marshal(mockResp)
		if mErr != nil {
			return entities.ShipmentPayment{}, mErr
		}
		providerResp = b
	} else {
		log.Printf("[checkout][usecase] calling payment gateway shipment_id=%s", shipmentID)
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, payload)
		if err != nil {
			log.Printf("[checkout][usecase] payment gateway failed shipment_id=%s err=%v", shipmentID, err)
			if isGatewayUnauthorized(err) {
				return entities.ShipmentPayment{}, ErrPaymentGatewayUnauthorized
			}
			if isGatewayBadRequest(err) {
				return entities.ShipmentPayment{}, ErrPaymentGatewayBadRequest
			}
			return entities.ShipmentPayment{}, err
		}
	}
	log.Printf("[checkout][usecase] gateway success shipment_id=%s provider_payment_id=%s provider_status=%s", shipmentID, providerPaymentID, providerStatus)

	status := entities.PaymentStatusApproved
	if providerStatus != "" && providerStatus != "approved" {
		status = entities.PaymentStatusDenied
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[checkout][usecase] provider response unmarshal failed shipment_id=%s err=%v", shipmentID, err)
	}

	p := entities.ShipmentPayment{
		ID:                 providerPaymentID,
		ShipmentID:         shipmentID,
		Date:               time.Now().UTC(),
		Status:             status,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[checkout][usecase] payment repository create failed shipment_id=%s payment_id=%s err=%v", shipmentID, p.ID, err)
		return entities.ShipmentPayment{}, err
	}
	log.Printf("[checkout][usecase] pay success shipment_id=%s payment_id=%s status=%s", shipmentID, created.ID, created.Status)
	return created, nil
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func (u *CheckoutUseCase) GetByID(ctx context.Context, id string) (entities.ShipmentPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ShipmentPayment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ShipmentPayment{}, err
	}
	if p.ID == "" {
		return entities.ShipmentPayment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *CheckoutUseCase) ListByShipmentID(ctx context.Context, shipmentID string) ([]entities.ShipmentPayment, error) {
	shipmentID = strings.TrimSpace(shipmentID)
	if shipmentID == "" {
		return nil, ErrInvalidPaymentShipmentID
	}
	return u.repo.ListByShipmentID(ctx, shipmentID)
}
