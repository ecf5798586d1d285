package quote

import "github.com/hxxtsxxh/EcoShip/internal/domain/entities"

// PricingFactors hold the distance-related pricing knobs. Like the emission
// factors these are configuration with compiled-in defaults.
type PricingFactors struct {
	// Linear long-haul surcharge: 1 + (distance/ReferenceDistanceKm)*0.5,
	// capped at MaxDistanceMultiplier.
	ReferenceDistanceKm   float64
	MaxDistanceMultiplier float64

	// Zone step function. Bands are upper bounds in km, ordered ascending;
	// a distance beyond the last band gets BeyondZoneMultiplier.
	ZoneBands            []ZoneBand
	BeyondZoneMultiplier float64
}

// ZoneBand maps a distance upper bound to its zone multiplier.
type ZoneBand struct {
	UpToKm     float64
	Multiplier float64
}

// DefaultPricingFactors mirrors carrier zone pricing: short hauls at 1.0,
// stepping up to 2.2 past 1800 km, with the capped linear surcharge on top.
func DefaultPricingFactors() PricingFactors {
	return PricingFactors{
		ReferenceDistanceKm:   3000,
		MaxDistanceMultiplier: 2.0,
		ZoneBands: []ZoneBand{
			{UpToKm: 150, Multiplier: 1.0},
			{UpToKm: 300, Multiplier: 1.2},
			{UpToKm: 600, Multiplier: 1.4},
			{UpToKm: 1000, Multiplier: 1.6},
			{UpToKm: 1400, Multiplier: 1.8},
			{UpToKm: 1800, Multiplier: 2.0},
		},
		BeyondZoneMultiplier: 2.2,
	}
}

// ShippingCost prices a tier for the given weight and distance, rounded to
// cents. Weight is kilograms; the tier's base rate is per kilogram.
//
// cost = base x tier multiplier x distance multiplier x zone multiplier,
// where base = rate x weight. Every factor is non-decreasing in weight and
// distance, so the total is too.
func ShippingCost(f PricingFactors, tier entities.ServiceTier, weightKg, distanceKm float64) float64 {
	base := tier.BaseRatePerKg * weightKg

	distanceMultiplier := 1 + (distanceKm/f.ReferenceDistanceKm)*0.5
	if distanceMultiplier > f.MaxDistanceMultiplier {
		distanceMultiplier = f.MaxDistanceMultiplier
	}

	zoneMultiplier := f.BeyondZoneMultiplier
	for _, band := range f.ZoneBands {
		if distanceKm <= band.UpToKm {
			zoneMultiplier = band.Multiplier
			break
		}
	}

	cost := base * tier.CostMultiplier * distanceMultiplier * zoneMultiplier
	return round2(cost)
}
