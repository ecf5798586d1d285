package quote

import (
	"math"

	"github.com/hxxtsxxh/EcoShip/internal/domain/entities"
)

// EmissionFactors are the CO2e conversion constants used by the carbon
// model. All values are configuration, not derived figures.
type EmissionFactors struct {
	// kg CO2e per tonne-km by transport mode.
	GroundPerTonneKm float64
	AirPerTonneKm    float64

	// Equivalence constants for the contextual figures.
	TreeOffsetKgPerYear float64
	CarEmissionKgPerMi  float64
}

// DefaultEmissionFactors carries industry-reference values: ground freight
// 0.150 and commercial aviation 0.570 kg CO2e per tonne-km, one tree
// absorbing 21 kg CO2 per year, an average passenger car emitting 0.411 kg
// per mile.
func DefaultEmissionFactors() EmissionFactors {
	return EmissionFactors{
		GroundPerTonneKm:    0.150,
		AirPerTonneKm:       0.570,
		TreeOffsetKgPerYear: 21.0,
		CarEmissionKgPerMi:  0.411,
	}
}

// CarbonFootprint computes the emission breakdown for shipping weightKg over
// distanceKm with the tier's air/ground mix.
//
// tonne-km = (weight in tonnes) x distance; each mode's share of the journey
// is weighted by its emission factor. Zero distance yields a zero breakdown,
// never NaN.
func CarbonFootprint(f EmissionFactors, tier entities.ServiceTier, weightKg, distanceKm float64) entities.CarbonBreakdown {
	weightTonnes := weightKg / 1000.0
	tonneKm := weightTonnes * distanceKm

	airTkm := tonneKm * tier.AirPercent / 100.0
	groundTkm := tonneKm * tier.GroundPercent / 100.0

	airCO2 := airTkm * f.AirPerTonneKm
	groundCO2 := groundTkm * f.GroundPerTonneKm
	total := airCO2 + groundCO2

	co2PerKg := 0.0
	if weightKg > 0 {
		co2PerKg = total / weightKg
	}

	return entities.CarbonBreakdown{
		TotalCO2Kg:       round3(total),
		AirCO2Kg:         round3(airCO2),
		GroundCO2Kg:      round3(groundCO2),
		AirTonneKm:       round3(airTkm),
		GroundTonneKm:    round3(groundTkm),
		TreesOffsetEquiv: round2(total / f.TreeOffsetKgPerYear),
		CarMilesEquiv:    round1(total / f.CarEmissionKgPerMi),
		CO2PerKg:         round4(co2PerKg),
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
