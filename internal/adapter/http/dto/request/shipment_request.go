package request

// RecordShipmentRequest persists a quote the user selected.
//
// The cost, carbon and score figures come from a previously computed quote
// batch; they are validated server-side but not recomputed, since the eco
// score is relative to the batch it was computed in.
type RecordShipmentRequest struct {
	UserID     string  `json:"user_id" binding:"required"`
	TierID     string  `json:"tier_id" binding:"required"`
	OriginCity string  `json:"origin_city"`
	DestCity   string  `json:"dest_city"`
	WeightKg   float64 `json:"weight_kg" binding:"required,gt=0"`
	CostUSD    float64 `json:"cost_usd" binding:"required,gt=0"`
	CarbonKg   float64 `json:"carbon_kg" binding:"min=0"`
	EcoScore   int     `json:"eco_score" binding:"min=0,max=25"`
	EcoTier    string  `json:"eco_tier" binding:"required"`
}
