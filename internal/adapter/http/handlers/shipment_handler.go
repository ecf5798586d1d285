package handlers

import (
	"errors"
	"log"
	"net/http"

	request "github.com/hxxtsxxh/EcoShip/internal/adapter/http/dto/request"
	response "github.com/hxxtsxxh/EcoShip/internal/adapter/http/dto/response"
	"github.com/hxxtsxxh/EcoShip/internal/domain/entities"
	"github.com/hxxtsxxh/EcoShip/internal/domain/quote"
	"github.com/hxxtsxxh/EcoShip/internal/usecase"
	"github.com/hxxtsxxh/EcoShip/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidShipmentPayload = pkg.NewDomainErrorSimple("INVALID_SHIPMENT_INPUT", "Invalid shipment payload", http.StatusBadRequest)
)

// ShipmentHandler handles HTTP requests for the user shipment ledger.

type ShipmentHandler struct {
	usecase usecase.ILedgerUseCase
}

func NewShipmentHandler(uc usecase.ILedgerUseCase) *ShipmentHandler {
	return &ShipmentHandler{usecase: uc}
}

// RecordShipment appends a selected quote to the user ledger.
func (h *ShipmentHandler) RecordShipment(c *gin.Context) {
	var payload request.RecordShipmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidShipmentPayload.HTTPStatus, errInvalidShipmentPayload.ToHTTPError())
		return
	}

	rec, err := h.usecase.RecordShipment(c.Request.Context(), usecase.RecordShipmentInput{
		UserID:     payload.UserID,
		TierID:     payload.TierID,
		OriginCity: payload.OriginCity,
		DestCity:   payload.DestCity,
		WeightKg:   payload.WeightKg,
		CostUSD:    payload.CostUSD,
		CarbonKg:   payload.CarbonKg,
		EcoScore:   payload.EcoScore,
		EcoTier:    entities.EcoTier(payload.EcoTier),
	})
	if err != nil {
		log.Printf("[ledger][handler] record failed user_id=%s err=%v", payload.UserID, err)
		appErr := mapShipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromShipment(rec))
}

// GetShipment returns one ledger record by id.
func (h *ShipmentHandler) GetShipment(c *gin.Context) {
	id := c.Param("id")

	rec, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapShipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromShipment(rec))
}

// ListShipmentsByUser returns the full ledger for one user.
func (h *ShipmentHandler) ListShipmentsByUser(c *gin.Context) {
	userID := c.Param("user_id")

	recs, err := h.usecase.ListByUser(c.Request.Context(), userID)
	if err != nil {
		appErr := mapShipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"shipments": response.FromShipments(recs)})
}

// GetLedgerTotals returns the cumulative spend, carbon and reward points
// for one user.
func (h *ShipmentHandler) GetLedgerTotals(c *gin.Context) {
	userID := c.Param("user_id")

	totals, err := h.usecase.GetTotals(c.Request.Context(), userID)
	if err != nil {
		appErr := mapShipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLedgerTotals(totals))
}

func mapShipmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidShipmentID), errors.Is(err, usecase.ErrInvalidShipment):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, quote.ErrUnknownServiceTier):
		return pkg.NewDomainErrorSimple("UNKNOWN_SERVICE_TIER", "Unknown service tier", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrShipmentNotFound):
		return pkg.NewDomainErrorSimple("SHIPMENT_NOT_FOUND", "Shipment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
