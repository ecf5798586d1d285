package quote

import (
	"fmt"

	"github.com/hxxtsxxh/EcoShip/internal/domain/entities"
)

// MaxPackageWeightKg is the heaviest package any tier accepts.
const MaxPackageWeightKg = 68.0

// Catalog is an ordered, read-only set of service tiers. Build it once at
// startup and share it; nothing mutates it after Validate.
type Catalog struct {
	tiers []entities.ServiceTier
}

// NewCatalog validates the tier list and returns a catalog. The transport
// mix of every tier must sum to 100.
func NewCatalog(tiers []entities.ServiceTier) (*Catalog, error) {
	if len(tiers) == 0 {
		return nil, fmt.Errorf("catalog must contain at least one tier")
	}
	for _, t := range tiers {
		if t.DeliveryDays < 1 {
			return nil, fmt.Errorf("tier %s: delivery days must be >= 1", t.ID)
		}
		if t.AirPercent < 0 || t.AirPercent > 100 || t.GroundPercent < 0 || t.GroundPercent > 100 {
			return nil, fmt.Errorf("tier %s: transport percentages out of range", t.ID)
		}
		if t.AirPercent+t.GroundPercent != 100 {
			return nil, fmt.Errorf("tier %s: transport mix sums to %.1f, want 100", t.ID, t.AirPercent+t.GroundPercent)
		}
		if t.BaseRatePerKg <= 0 || t.CostMultiplier <= 0 {
			return nil, fmt.Errorf("tier %s: pricing parameters must be positive", t.ID)
		}
	}
	out := make([]entities.ServiceTier, len(tiers))
	copy(out, tiers)
	return &Catalog{tiers: out}, nil
}

// Tiers returns the tiers in catalog order. Callers must not modify the
// returned slice.
func (c *Catalog) Tiers() []entities.ServiceTier {
	return c.tiers
}

// TierByID resolves a tier identifier, failing with ErrUnknownServiceTier
// for identifiers the catalog does not carry.
func (c *Catalog) TierByID(id string) (entities.ServiceTier, error) {
	for _, t := range c.tiers {
		if t.ID == id {
			return t, nil
		}
	}
	return entities.ServiceTier{}, fmt.Errorf("%w: %s", ErrUnknownServiceTier, id)
}

// DefaultCatalog is the five-tier reference catalog, next-day air through
// economy ground. Air share and price both fall as the day commitment grows.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog([]entities.ServiceTier{
		{ID: "next_day_air", Name: "Next Day Air", DeliveryDays: 1, AirPercent: 90, GroundPercent: 10, BaseRatePerKg: 8.50, CostMultiplier: 3.8},
		{ID: "second_day_air", Name: "2nd Day Air", DeliveryDays: 2, AirPercent: 75, GroundPercent: 25, BaseRatePerKg: 8.50, CostMultiplier: 2.1},
		{ID: "three_day_select", Name: "3-Day Select", DeliveryDays: 3, AirPercent: 40, GroundPercent: 60, BaseRatePerKg: 8.50, CostMultiplier: 1.6},
		{ID: "ground_advantage", Name: "Ground Advantage", DeliveryDays: 4, AirPercent: 15, GroundPercent: 85, BaseRatePerKg: 8.50, CostMultiplier: 1.2},
		{ID: "economy_ground", Name: "Economy Ground", DeliveryDays: 5, AirPercent: 0, GroundPercent: 100, BaseRatePerKg: 8.50, CostMultiplier: 1.0},
	})
	if err != nil {
		// The default catalog is compiled-in data; a validation failure here
		// is a programming error, not a runtime condition.
		panic(err)
	}
	return c
}
