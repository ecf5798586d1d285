package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hxxtsxxh/EcoShip/internal/domain/entities"
	"github.com/hxxtsxxh/EcoShip/internal/domain/quote"
	"github.com/hxxtsxxh/EcoShip/internal/usecase/interfaces"
)

var (
	ErrShipmentNotFound  = errors.New("shipment not found")
	ErrInvalidUserID     = errors.New("invalid user_id")
	ErrInvalidShipmentID = errors.New("invalid shipment id")
	ErrInvalidShipment   = errors.New("invalid shipment record")
)

// Reward points credited on top of the eco score for excellent-tier picks.
const excellentBonusPoints = 5

// RecordShipmentInput is the caller-provided slice of a selected quote.
//
// Cost, carbon and eco score come from a previously computed quote; the
// usecase re-validates the tier against the catalog but trusts the figures,
// since they are batch-relative and cannot be recomputed in isolation.
type RecordShipmentInput struct {
	UserID     string
	TierID     string
	OriginCity string
	DestCity   string
	WeightKg   float64
	CostUSD    float64
	CarbonKg   float64
	EcoScore   int
	EcoTier    entities.EcoTier
}

// ILedgerUseCase exposes the user shipment ledger operations.
type ILedgerUseCase interface {
	RecordShipment(ctx context.Context, in RecordShipmentInput) (entities.ShipmentRecord, error)
	GetByID(ctx context.Context, id string) (entities.ShipmentRecord, error)
	ListByUser(ctx context.Context, userID string) ([]entities.ShipmentRecord, error)
	GetTotals(ctx context.Context, userID string) (entities.LedgerTotals, error)
}

type LedgerUseCase struct {
	repo    interfaces.IShipmentLedgerRepository
	catalog *quote.Catalog
}

var _ ILedgerUseCase = (*LedgerUseCase)(nil)

func NewLedgerUseCase(repo interfaces.IShipmentLedgerRepository, catalog *quote.Catalog) *LedgerUseCase {
	return &LedgerUseCase{repo: repo, catalog: catalog}
}

func (u *LedgerUseCase) RecordShipment(ctx context.Context, in RecordShipmentInput) (entities.ShipmentRecord, error) {
	in.UserID = strings.TrimSpace(in.UserID)
	if in.UserID == "" {
		return entities.ShipmentRecord{}, ErrInvalidUserID
	}
	if in.WeightKg <= 0 || in.CostUSD <= 0 || in.CarbonKg < 0 {
		return entities.ShipmentRecord{}, ErrInvalidShipment
	}
	if in.EcoScore < 0 || in.EcoScore > 25 {
		return entities.ShipmentRecord{}, ErrInvalidShipment
	}
	if _, err := u.catalog.TierByID(strings.TrimSpace(in.TierID)); err != nil {
		return entities.ShipmentRecord{}, err
	}

	points := in.EcoScore
	if in.EcoTier == entities.EcoTierExcellent {
		points += excellentBonusPoints
	}

	rec := entities.ShipmentRecord{
		ID:           uuid.NewString(),
		UserID:       in.UserID,
		TierID:       strings.TrimSpace(in.TierID),
		OriginCity:   strings.TrimSpace(in.OriginCity),
		DestCity:     strings.TrimSpace(in.DestCity),
		WeightKg:     in.WeightKg,
		CostUSD:      in.CostUSD,
		CarbonKg:     in.CarbonKg,
		EcoScore:     in.EcoScore,
		EcoTier:      in.EcoTier,
		PointsEarned: points,
		CreatedAt:    time.Now().UTC(),
	}
	return u.repo.Create(ctx, rec)
}

func (u *LedgerUseCase) GetByID(ctx context.Context, id string) (entities.ShipmentRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ShipmentRecord{}, ErrInvalidShipmentID
	}

	rec, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ShipmentRecord{}, err
	}
	if rec.ID == "" {
		return entities.ShipmentRecord{}, ErrShipmentNotFound
	}
	return rec, nil
}

func (u *LedgerUseCase) ListByUser(ctx context.Context, userID string) ([]entities.ShipmentRecord, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.repo.ListByUserID(ctx, userID)
}

// GetTotals derives the cumulative figures from the record list. The ledger
// is append-only, so the derived totals are always consistent with it.
func (u *LedgerUseCase) GetTotals(ctx context.Context, userID string) (entities.LedgerTotals, error) {
	recs, err := u.ListByUser(ctx, userID)
	if err != nil {
		return entities.LedgerTotals{}, err
	}

	totals := entities.LedgerTotals{UserID: strings.TrimSpace(userID)}
	for _, r := range recs {
		totals.TotalShipments++
		totals.TotalSpentUSD += r.CostUSD
		totals.TotalCarbonKg += r.CarbonKg
		totals.RewardPoints += r.PointsEarned
	}
	return totals, nil
}
