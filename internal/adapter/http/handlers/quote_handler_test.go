package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hxxtsxxh/EcoShip/internal/adapter/http/handlers/mocks"
	"github.com/hxxtsxxh/EcoShip/internal/domain/entities"
	"github.com/hxxtsxxh/EcoShip/internal/domain/quote"
	"github.com/hxxtsxxh/EcoShip/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const validQuoteBody = `{
	"origin": {"city": "New York", "state": "NY"},
	"destination": {"city": "Los Angeles", "state": "CA"},
	"package": {"weight_kg": 10}
}`

func TestQuoteHandler_ComputeQuotes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.ComputeQuotes)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing weight", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.ComputeQuotes)

		body := `{"origin":{"city":"New York"},"destination":{"city":"Los Angeles"},"package":{}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("overweight package maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.ComputeQuotes)

		uc.EXPECT().ComputeQuotes(gomock.Any(), gomock.Any()).Return(usecase.QuoteResult{}, quote.ErrInvalidPackage)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(validQuoteBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unresolved location maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.ComputeQuotes)

		uc.EXPECT().ComputeQuotes(gomock.Any(), gomock.Any()).Return(usecase.QuoteResult{}, quote.ErrMissingCoordinates)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(validQuoteBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("internal error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.ComputeQuotes)

		uc.EXPECT().ComputeQuotes(gomock.Any(), gomock.Any()).Return(usecase.QuoteResult{}, errors.New("boom"))

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(validQuoteBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.ComputeQuotes)

		q := entities.Quote{
			Tier:         entities.ServiceTier{ID: "economy_ground", Name: "Economy Ground"},
			CostUSD:      85,
			Carbon:       entities.CarbonBreakdown{TotalCO2Kg: 5.9},
			DeliveryDays: 5,
			DeliveryDate: time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
			EcoScore:     22,
			EcoTier:      entities.EcoTierExcellent,
		}
		uc.EXPECT().ComputeQuotes(gomock.Any(), gomock.Any()).Return(usecase.QuoteResult{
			DistanceKm: 3935.7,
			Quotes:     []entities.Quote{q},
			BestValue:  q,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(validQuoteBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}

		var got map[string]json.RawMessage
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("response not json: %v", err)
		}
		for _, key := range []string{"distance_km", "quotes", "best_value"} {
			if _, ok := got[key]; !ok {
				t.Fatalf("missing %q in response: %s", key, w.Body.String())
			}
		}
	})
}

func TestQuoteHandler_ListServices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewQuoteHandler(uc)

	r := gin.New()
	r.GET("/v1/services", h.ListServices)

	uc.EXPECT().ListServiceTiers().Return([]entities.ServiceTier{
		{ID: "next_day_air", Name: "Next Day Air", DeliveryDays: 1},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/services", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var got struct {
		Services []map[string]any `json:"services"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("response not json: %v", err)
	}
	if len(got.Services) != 1 || got.Services[0]["id"] != "next_day_air" {
		t.Fatalf("unexpected services payload: %s", w.Body.String())
	}
}
