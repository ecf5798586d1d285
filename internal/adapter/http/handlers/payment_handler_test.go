package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hxxtsxxh/EcoShip/internal/adapter/http/handlers/mocks"
	"github.com/hxxtsxxh/EcoShip/internal/domain/entities"
	"github.com/hxxtsxxh/EcoShip/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_CreatePaymentByShipmentID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid body", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:shipment_id", h.CreatePaymentByShipmentID)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/ship-1", bytes.NewBufferString("not-json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("envelope payload is unwrapped", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:shipment_id", h.CreatePaymentByShipmentID)

		uc.EXPECT().PayShipment(gomock.Any(), "ship-1", gomock.Any()).DoAndReturn(
			func(_ interface{}, _ string, payload json.RawMessage) (entities.ShipmentPayment, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("payload not json: %v", err)
				}
				if m["payment_method_id"] != "pix" {
					t.Fatalf("expected unwrapped payload, got %s", string(payload))
				}
				return entities.ShipmentPayment{ID: "pay-1", ShipmentID: "ship-1", Status: entities.PaymentStatusApproved}, nil
			},
		)

		body := `{"payment_payload":{"payment_method_id":"pix"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/ship-1", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}
	})

	t.Run("shipment not found maps to 404", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:shipment_id", h.CreatePaymentByShipmentID)

		uc.EXPECT().PayShipment(gomock.Any(), "ship-404", gomock.Any()).Return(entities.ShipmentPayment{}, usecase.ErrShipmentNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/ship-404", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("gateway unauthorized maps to 401", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:shipment_id", h.CreatePaymentByShipmentID)

		uc.EXPECT().PayShipment(gomock.Any(), "ship-1", gomock.Any()).Return(entities.ShipmentPayment{}, usecase.ErrPaymentGatewayUnauthorized)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/ship-1", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_GetPaymentByShipmentID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no payments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:shipment_id", h.GetPaymentByShipmentID)

		uc.EXPECT().ListByShipmentID(gomock.Any(), "ship-1").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/ship-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("returns the latest payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:shipment_id", h.GetPaymentByShipmentID)

		older := entities.ShipmentPayment{ID: "pay-1", ShipmentID: "ship-1", Date: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)}
		newer := entities.ShipmentPayment{ID: "pay-2", ShipmentID: "ship-1", Date: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)}
		uc.EXPECT().ListByShipmentID(gomock.Any(), "ship-1").Return([]entities.ShipmentPayment{older, newer}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/ship-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("response not json: %v", err)
		}
		if got["id"] != "pay-2" {
			t.Fatalf("expected latest payment pay-2, got %s", w.Body.String())
		}
	})
}
