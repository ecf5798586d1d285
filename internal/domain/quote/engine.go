package quote

import (
	"fmt"
	"sort"
	"time"

	"github.com/hxxtsxxh/EcoShip/internal/domain/entities"
)

// Engine computes ranked quotes for one request. It is a pure, synchronous
// pipeline: no I/O, no shared mutable state, safe for concurrent use once
// constructed.
//
// The catalog and the factor sets are injected configuration so tests can
// run against alternate catalogs; nothing here is a singleton.
type Engine struct {
	Catalog   *Catalog
	Emissions EmissionFactors
	Pricing   PricingFactors
	Weights   ScoringWeights

	// Now supplies the ship date for delivery calculations. Injectable so
	// delivery-date behavior is testable around weekends.
	Now func() time.Time
}

// NewEngine builds an engine over catalog with the default factor sets.
func NewEngine(catalog *Catalog) *Engine {
	return &Engine{
		Catalog:   catalog,
		Emissions: DefaultEmissionFactors(),
		Pricing:   DefaultPricingFactors(),
		Weights:   DefaultScoringWeights(),
		Now:       time.Now,
	}
}

// Result is the output of one quote computation.
type Result struct {
	DistanceKm float64
	Quotes     []entities.Quote
	BestValue  entities.Quote
}

// GenerateQuotes prices every catalog tier for the resolved origin and
// destination, scores the batch, and ranks it.
//
// Ranking: delivery days ascending, ties broken by total CO2 ascending, and
// the sort is stable so remaining ties keep catalog order. The best-value
// pick is the highest eco score; between equal scores the higher-priced
// quote wins.
func (e *Engine) GenerateQuotes(origin, destination entities.GeoPoint, pkg entities.PackageSpec) (Result, error) {
	if pkg.WeightKg <= 0 || pkg.WeightKg > MaxPackageWeightKg {
		return Result{}, fmt.Errorf("%w: %.2f kg (accepted range 0-%.0f]", ErrInvalidPackage, pkg.WeightKg, MaxPackageWeightKg)
	}

	distanceKm := Haversine(origin, destination)
	shipDate := e.Now()

	quotes := make([]entities.Quote, 0, len(e.Catalog.Tiers()))
	for _, tier := range e.Catalog.Tiers() {
		quotes = append(quotes, entities.Quote{
			Tier:         tier,
			CostUSD:      ShippingCost(e.Pricing, tier, pkg.WeightKg, distanceKm),
			Carbon:       CarbonFootprint(e.Emissions, tier, pkg.WeightKg, distanceKm),
			DeliveryDays: tier.DeliveryDays,
			DeliveryDate: DeliveryDate(shipDate, tier.DeliveryDays),
		})
	}

	if err := ScoreBatch(e.Weights, quotes); err != nil {
		return Result{}, err
	}

	sort.SliceStable(quotes, func(i, j int) bool {
		if quotes[i].DeliveryDays != quotes[j].DeliveryDays {
			return quotes[i].DeliveryDays < quotes[j].DeliveryDays
		}
		return quotes[i].Carbon.TotalCO2Kg < quotes[j].Carbon.TotalCO2Kg
	})

	best := quotes[0]
	for _, q := range quotes[1:] {
		if q.EcoScore > best.EcoScore || (q.EcoScore == best.EcoScore && q.CostUSD > best.CostUSD) {
			best = q
		}
	}

	return Result{DistanceKm: distanceKm, Quotes: quotes, BestValue: best}, nil
}
