package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	response "github.com/hxxtsxxh/EcoShip/internal/adapter/http/dto/response"
	"github.com/hxxtsxxh/EcoShip/internal/usecase"
	"github.com/hxxtsxxh/EcoShip/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for shipment checkout payments.

type PaymentHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewPaymentHandler(uc usecase.ICheckoutUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePaymentByShipmentID processes a payment for a ledger shipment.
func (h *PaymentHandler) CreatePaymentByShipmentID(c *gin.Context) {
	shipmentID := c.Param("shipment_id")
	log.Printf("[checkout][handler] create start shipment_id=%s", shipmentID)
	mockMode := isPaymentGatewayMockEnabled()
	payload, err := readPaymentPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[checkout][handler] payload invalid in mock mode; fallback to empty payload shipment_id=%s err=%v", shipmentID, err)
			payload = json.RawMessage("{}")
		} else {
			log.Printf("[checkout][handler] invalid payload shipment_id=%s err=%v", shipmentID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.PayShipment(c.Request.Context(), shipmentID, payload)
	if err != nil {
		log.Printf("[checkout][handler] create failed shipment_id=%s err=%v", shipmentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] create success shipment_id=%s payment_id=%s status=%s", shipmentID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromShipmentPayment(created))
}

// GetPaymentByShipmentID returns the latest payment for a shipment.
func (h *PaymentHandler) GetPaymentByShipmentID(c *gin.Context) {
	shipmentID := c.Param("shipment_id")
	log.Printf("[checkout][handler] get-by-shipment start shipment_id=%s", shipmentID)

	payments, err := h.usecase.ListByShipmentID(c.Request.Context(), shipmentID)
	if err != nil {
		log.Printf("[checkout][handler] get-by-shipment failed shipment_id=%s err=%v", shipmentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(payments) == 0 {
		log.Printf("[checkout][handler] get-by-shipment not-found shipment_id=%s", shipmentID)
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	log.Printf("[checkout][handler] get-by-shipment success shipment_id=%s payment_id=%s status=%s", shipmentID, latest.ID, latest.Status)

	c.JSON(http.StatusOK, response.FromShipmentPayment(latest))
}

func readPaymentPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["payment_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("payment_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentShipmentID), errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrShipmentNotFound):
		return pkg.NewDomainErrorSimple("SHIPMENT_NOT_FOUND", "Shipment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
