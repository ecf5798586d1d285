package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/hxxtsxxh/EcoShip/internal/domain/entities"
	"github.com/hxxtsxxh/EcoShip/internal/domain/quote"
	mock_interfaces "github.com/hxxtsxxh/EcoShip/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validShipmentInput() RecordShipmentInput {
	return RecordShipmentInput{
		UserID:     "user-1",
		TierID:     "economy_ground",
		OriginCity: "New York",
		DestCity:   "Los Angeles",
		WeightKg:   10,
		CostUSD:    85,
		CarbonKg:   5.9,
		EcoScore:   22,
		EcoTier:    entities.EcoTierExcellent,
	}
}

func TestLedgerUseCase_RecordShipment(t *testing.T) {
	t.Run("invalid user id", func(t *testing.T) {
		uc := NewLedgerUseCase(nil, quote.DefaultCatalog())
		in := validShipmentInput()
		in.UserID = "   "
		_, err := uc.RecordShipment(context.Background(), in)
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("invalid figures", func(t *testing.T) {
		uc := NewLedgerUseCase(nil, quote.DefaultCatalog())
		for _, mutate := range []func(*RecordShipmentInput){
			func(in *RecordShipmentInput) { in.WeightKg = 0 },
			func(in *RecordShipmentInput) { in.CostUSD = -1 },
			func(in *RecordShipmentInput) { in.CarbonKg = -0.1 },
			func(in *RecordShipmentInput) { in.EcoScore = 26 },
			func(in *RecordShipmentInput) { in.EcoScore = -1 },
		} {
			in := validShipmentInput()
			mutate(&in)
			if _, err := uc.RecordShipment(context.Background(), in); !errors.Is(err, ErrInvalidShipment) {
				t.Fatalf("expected ErrInvalidShipment for %+v, got %v", in, err)
			}
		}
	})

	t.Run("unknown tier", func(t *testing.T) {
		uc := NewLedgerUseCase(nil, quote.DefaultCatalog())
		in := validShipmentInput()
		in.TierID = "warp_drive"
		_, err := uc.RecordShipment(context.Background(), in)
		if !errors.Is(err, quote.ErrUnknownServiceTier) {
			t.Fatalf("expected ErrUnknownServiceTier, got %v", err)
		}
	})

	t.Run("excellent tier earns bonus points", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIShipmentLedgerRepository(ctrl)
		uc := NewLedgerUseCase(repo, quote.DefaultCatalog())

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ShipmentRecord{})).DoAndReturn(
			func(_ context.Context, rec entities.ShipmentRecord) (entities.ShipmentRecord, error) {
				if rec.ID == "" || rec.CreatedAt.IsZero() {
					t.Fatalf("expected generated id and timestamp: %+v", rec)
				}
				if rec.PointsEarned != 22+excellentBonusPoints {
					t.Fatalf("expected %d points, got %d", 22+excellentBonusPoints, rec.PointsEarned)
				}
				return rec, nil
			},
		)

		rec, err := uc.RecordShipment(context.Background(), validShipmentInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.UserID != "user-1" || rec.TierID != "economy_ground" {
			t.Fatalf("unexpected record: %+v", rec)
		}
	})

	t.Run("non-excellent tier earns score only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIShipmentLedgerRepository(ctrl)
		uc := NewLedgerUseCase(repo, quote.DefaultCatalog())

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rec entities.ShipmentRecord) (entities.ShipmentRecord, error) {
				if rec.PointsEarned != 14 {
					t.Fatalf("expected 14 points, got %d", rec.PointsEarned)
				}
				return rec, nil
			},
		)

		in := validShipmentInput()
		in.EcoScore = 14
		in.EcoTier = entities.EcoTierGood
		if _, err := uc.RecordShipment(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestLedgerUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewLedgerUseCase(nil, quote.DefaultCatalog())
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidShipmentID) {
			t.Fatalf("expected ErrInvalidShipmentID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIShipmentLedgerRepository(ctrl)
		uc := NewLedgerUseCase(repo, quote.DefaultCatalog())

		repo.EXPECT().GetByID(gomock.Any(), "ship-1").Return(entities.ShipmentRecord{}, nil)

		_, err := uc.GetByID(context.Background(), "ship-1")
		if !errors.Is(err, ErrShipmentNotFound) {
			t.Fatalf("expected ErrShipmentNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIShipmentLedgerRepository(ctrl)
		uc := NewLedgerUseCase(repo, quote.DefaultCatalog())

		repo.EXPECT().GetByID(gomock.Any(), "ship-1").Return(entities.ShipmentRecord{ID: "ship-1"}, nil)

		rec, err := uc.GetByID(context.Background(), " ship-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.ID != "ship-1" {
			t.Fatalf("unexpected record: %+v", rec)
		}
	})
}

func TestLedgerUseCase_GetTotals(t *testing.T) {
	t.Run("invalid user id", func(t *testing.T) {
		uc := NewLedgerUseCase(nil, quote.DefaultCatalog())
		_, err := uc.GetTotals(context.Background(), "")
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("sums the record list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIShipmentLedgerRepository(ctrl)
		uc := NewLedgerUseCase(repo, quote.DefaultCatalog())

		repo.EXPECT().ListByUserID(gomock.Any(), "user-1").Return([]entities.ShipmentRecord{
			{ID: "a", CostUSD: 100, CarbonKg: 2.5, PointsEarned: 20},
			{ID: "b", CostUSD: 50.5, CarbonKg: 1.5, PointsEarned: 10},
		}, nil)

		totals, err := uc.GetTotals(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if totals.TotalShipments != 2 {
			t.Fatalf("expected 2 shipments, got %d", totals.TotalShipments)
		}
		if totals.TotalSpentUSD != 150.5 {
			t.Fatalf("expected 150.5 spent, got %.2f", totals.TotalSpentUSD)
		}
		if totals.TotalCarbonKg != 4.0 {
			t.Fatalf("expected 4.0 kg, got %.2f", totals.TotalCarbonKg)
		}
		if totals.RewardPoints != 30 {
			t.Fatalf("expected 30 points, got %d", totals.RewardPoints)
		}
	})

	t.Run("empty ledger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIShipmentLedgerRepository(ctrl)
		uc := NewLedgerUseCase(repo, quote.DefaultCatalog())

		repo.EXPECT().ListByUserID(gomock.Any(), "user-1").Return(nil, nil)

		totals, err := uc.GetTotals(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if totals.TotalShipments != 0 || totals.RewardPoints != 0 {
			t.Fatalf("expected zero totals, got %+v", totals)
		}
	})
}
