package entities

import "time"

// EcoTier is the discrete label attached to an eco-efficiency score.
type EcoTier string

const (
	EcoTierVeryPoor  EcoTier = "very_poor"
	EcoTierPoor      EcoTier = "poor"
	EcoTierFair      EcoTier = "fair"
	EcoTierGood      EcoTier = "good"
	EcoTierVeryGood  EcoTier = "very_good"
	EcoTierExcellent EcoTier = "excellent"
)

// CarbonBreakdown is the emission analysis for one quote. It is derived per
// request and never cached: weight and distance vary between requests.
type CarbonBreakdown struct {
	TotalCO2Kg       float64 `json:"total_co2_kg"`
	AirCO2Kg         float64 `json:"air_co2_kg"`
	GroundCO2Kg      float64 `json:"ground_co2_kg"`
	AirTonneKm       float64 `json:"air_tonne_km"`
	GroundTonneKm    float64 `json:"ground_tonne_km"`
	TreesOffsetEquiv float64 `json:"trees_offset_equivalent"`
	CarMilesEquiv    float64 `json:"car_miles_equivalent"`
	CO2PerKg         float64 `json:"co2_per_kg"`
}

// Quote is the priced, dated and scored offer for one service tier. It is a
// pure value produced once per request; the ledger persists a selected quote
// separately as a ShipmentRecord.
type Quote struct {
	Tier         ServiceTier     `json:"tier"`
	CostUSD      float64         `json:"cost_usd"`
	Carbon       CarbonBreakdown `json:"carbon"`
	DeliveryDays int             `json:"delivery_days"`
	DeliveryDate time.Time       `json:"delivery_date"`
	EcoScore     int             `json:"eco_score"`
	EcoTier      EcoTier         `json:"eco_tier"`
}
