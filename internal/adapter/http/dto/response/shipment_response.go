package response

import (
	"time"

	"github.com/hxxtsxxh/EcoShip/internal/domain/entities"
)

type ShipmentResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	TierID       string    `json:"tier_id"`
	OriginCity   string    `json:"origin_city"`
	DestCity     string    `json:"dest_city"`
	WeightKg     float64   `json:"weight_kg"`
	CostUSD      float64   `json:"cost_usd"`
	CarbonKg     float64   `json:"carbon_kg"`
	EcoScore     int       `json:"eco_score"`
	EcoTier      string    `json:"eco_tier"`
	PointsEarned int       `json:"points_earned"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromShipment(rec entities.ShipmentRecord) ShipmentResponse {
	return ShipmentResponse{
		ID:           rec.ID,
		UserID:       rec.UserID,
		TierID:       rec.TierID,
		OriginCity:   rec.OriginCity,
		DestCity:     rec.DestCity,
		WeightKg:     rec.WeightKg,
		CostUSD:      rec.CostUSD,
		CarbonKg:     rec.CarbonKg,
		EcoScore:     rec.EcoScore,
		EcoTier:      string(rec.EcoTier),
		PointsEarned: rec.PointsEarned,
		CreatedAt:    rec.CreatedAt,
	}
}

func FromShipments(recs []entities.ShipmentRecord) []ShipmentResponse {
	out := make([]ShipmentResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, FromShipment(rec))
	}
	return out
}

type LedgerTotalsResponse struct {
	UserID         string  `json:"user_id"`
	TotalShipments int     `json:"total_shipments"`
	TotalSpentUSD  float64 `json:"total_spent_usd"`
	TotalCarbonKg  float64 `json:"total_carbon_kg"`
	RewardPoints   int     `json:"reward_points"`
}

func FromLedgerTotals(t entities.LedgerTotals) LedgerTotalsResponse {
	return LedgerTotalsResponse{
		UserID:         t.UserID,
		TotalShipments: t.TotalShipments,
		TotalSpentUSD:  t.TotalSpentUSD,
		TotalCarbonKg:  t.TotalCarbonKg,
		RewardPoints:   t.RewardPoints,
	}
}
