package entities

import "time"

// ShipmentRecord is a selected quote persisted to the user ledger.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// Records are append-only; running totals are recomputed from the record
// list rather than stored as mutable counters.
type ShipmentRecord struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	TierID       string    `json:"tier_id"`
	OriginCity   string    `json:"origin_city"`
	DestCity     string    `json:"dest_city"`
	WeightKg     float64   `json:"weight_kg"`
	CostUSD      float64   `json:"cost_usd"`
	CarbonKg     float64   `json:"carbon_kg"`
	EcoScore     int       `json:"eco_score"`
	EcoTier      EcoTier   `json:"eco_tier"`
	PointsEarned int       `json:"points_earned"`
	CreatedAt    time.Time `json:"created_at"`
}

// LedgerTotals are the cumulative figures for one user.
type LedgerTotals struct {
	UserID         string  `json:"user_id"`
	TotalShipments int     `json:"total_shipments"`
	TotalSpentUSD  float64 `json:"total_spent_usd"`
	TotalCarbonKg  float64 `json:"total_carbon_kg"`
	RewardPoints   int     `json:"reward_points"`
}
