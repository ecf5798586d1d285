package entities

// ServiceTier is one carrier service level.
//
// Domain notes:
//   - Tiers are configuration, not state: a catalog is built once at startup
//     and never mutated, so concurrent quote requests can share it freely.
//   - AirPercent + GroundPercent must equal 100 for every tier; the catalog
//     validates this at construction.
//   - BaseRatePerKg is priced per kilogram. Weight is carried in kilograms
//     end to end; there is no pound conversion anywhere in the engine.
type ServiceTier struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	DeliveryDays   int     `json:"delivery_days"`
	AirPercent     float64 `json:"air_percent"`
	GroundPercent  float64 `json:"ground_percent"`
	BaseRatePerKg  float64 `json:"base_rate_per_kg"`
	CostMultiplier float64 `json:"cost_multiplier"`
}
