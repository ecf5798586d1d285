package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/hxxtsxxh/EcoShip/internal/domain/entities"
	"github.com/hxxtsxxh/EcoShip/internal/domain/quote"
	"github.com/hxxtsxxh/EcoShip/internal/usecase/interfaces"
)

// IQuoteUseCase exposes the quote computation operation.
//
// ComputeQuotes is the single logical entry point of the engine: resolve
// both locations, price every catalog tier once, score the batch, rank it
// and pick the best-value quote.
type IQuoteUseCase interface {
	ComputeQuotes(ctx context.Context, req entities.QuoteRequest) (QuoteResult, error)
	ListServiceTiers() []entities.ServiceTier
}

// QuoteResult is the caller-facing output of one computation.
type QuoteResult struct {
	DistanceKm float64
	Quotes     []entities.Quote
	BestValue  entities.Quote
}

type QuoteUseCase struct {
	engine   *quote.Engine
	geocoder interfaces.IGeocoder
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(engine *quote.Engine, geocoder interfaces.IGeocoder) *QuoteUseCase {
	return &QuoteUseCase{engine: engine, geocoder: geocoder}
}

func (u *QuoteUseCase) ComputeQuotes(ctx context.Context, req entities.QuoteRequest) (QuoteResult, error) {
	log.Printf("[quote][usecase] compute start origin=%q dest=%q weight_kg=%.2f", req.Origin.City, req.Destination.City, req.Package.WeightKg)

	origin, err := u.geocoder.Resolve(ctx, req.Origin)
	if err != nil {
		log.Printf("[quote][usecase] origin resolution failed city=%q err=%v", req.Origin.City, err)
		return QuoteResult{}, fmt.Errorf("origin: %w", err)
	}
	destination, err := u.geocoder.Resolve(ctx, req.Destination)
	if err != nil {
		log.Printf("[quote][usecase] destination resolution failed city=%q err=%v", req.Destination.City, err)
		return QuoteResult{}, fmt.Errorf("destination: %w", err)
	}

	res, err := u.engine.GenerateQuotes(origin, destination, req.Package)
	if err != nil {
		log.Printf("[quote][usecase] engine failed err=%v", err)
		return QuoteResult{}, err
	}

	log.Printf("[quote][usecase] compute success quotes=%d distance_km=%.1f best=%s", len(res.Quotes), res.DistanceKm, res.BestValue.Tier.ID)
	return QuoteResult{DistanceKm: res.DistanceKm, Quotes: res.Quotes, BestValue: res.BestValue}, nil
}

func (u *QuoteUseCase) ListServiceTiers() []entities.ServiceTier {
	return u.engine.Catalog.Tiers()
}
