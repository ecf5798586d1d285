package response

import (
	"github.com/hxxtsxxh/EcoShip/internal/domain/entities"
	"github.com/hxxtsxxh/EcoShip/internal/usecase"
)

type CarbonResponse struct {
	TotalCO2Kg       float64 `json:"total_co2_kg"`
	AirCO2Kg         float64 `json:"air_co2_kg"`
	GroundCO2Kg      float64 `json:"ground_co2_kg"`
	CO2PerKg         float64 `json:"co2_per_kg"`
	TreesOffsetEquiv float64 `json:"trees_offset_equivalent"`
	CarMilesEquiv    float64 `json:"car_miles_equivalent"`
}

type QuoteResponse struct {
	TierID       string         `json:"tier_id"`
	TierName     string         `json:"tier_name"`
	CostUSD      float64        `json:"cost_usd"`
	DeliveryDays int            `json:"delivery_days"`
	DeliveryDate string         `json:"delivery_date"`
	Carbon       CarbonResponse `json:"carbon"`
	EcoScore     int            `json:"eco_score"`
	EcoTier      string         `json:"eco_tier"`
}

type QuoteListResponse struct {
	DistanceKm float64         `json:"distance_km"`
	Quotes     []QuoteResponse `json:"quotes"`
	BestValue  QuoteResponse   `json:"best_value"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		TierID:       q.Tier.ID,
		TierName:     q.Tier.Name,
		CostUSD:      q.CostUSD,
		DeliveryDays: q.DeliveryDays,
		DeliveryDate: q.DeliveryDate.Format("2006-01-02"),
		Carbon: CarbonResponse{
			TotalCO2Kg:       q.Carbon.TotalCO2Kg,
			AirCO2Kg:         q.Carbon.AirCO2Kg,
			GroundCO2Kg:      q.Carbon.GroundCO2Kg,
			CO2PerKg:         q.Carbon.CO2PerKg,
			TreesOffsetEquiv: q.Carbon.TreesOffsetEquiv,
			CarMilesEquiv:    q.Carbon.CarMilesEquiv,
		},
		EcoScore: q.EcoScore,
		EcoTier:  string(q.EcoTier),
	}
}

func FromQuoteResult(res usecase.QuoteResult) QuoteListResponse {
	quotes := make([]QuoteResponse, 0, len(res.Quotes))
	for _, q := range res.Quotes {
		quotes = append(quotes, FromQuote(q))
	}
	return QuoteListResponse{
		DistanceKm: res.DistanceKm,
		Quotes:     quotes,
		BestValue:  FromQuote(res.BestValue),
	}
}

type ServiceTierResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	DeliveryDays   int     `json:"delivery_days"`
	AirPercent     float64 `json:"air_percent"`
	GroundPercent  float64 `json:"ground_percent"`
	BaseRatePerKg  float64 `json:"base_rate_per_kg"`
	CostMultiplier float64 `json:"cost_multiplier"`
}

func FromServiceTier(t entities.ServiceTier) ServiceTierResponse {
	return ServiceTierResponse{
		ID:             t.ID,
		Name:           t.Name,
		DeliveryDays:   t.DeliveryDays,
		AirPercent:     t.AirPercent,
		GroundPercent:  t.GroundPercent,
		BaseRatePerKg:  t.BaseRatePerKg,
		CostMultiplier: t.CostMultiplier,
	}
}
