package quote

import (
	"errors"
	"testing"

	"github.com/hxxtsxxh/EcoShip/internal/domain/entities"
)

func quoteWith(id string, cost, carbon float64) entities.Quote {
	return entities.Quote{
		Tier:    entities.ServiceTier{ID: id, Name: id},
		CostUSD: cost,
		Carbon:  entities.CarbonBreakdown{TotalCO2Kg: carbon},
	}
}

func TestScoringWeights_Validate(t *testing.T) {
	if err := DefaultScoringWeights().Validate(); err != nil {
		t.Fatalf("default weights must validate: %v", err)
	}
	if err := (ScoringWeights{CostEffectiveness: 0.5, Environmental: 0.3}).Validate(); err == nil {
		t.Fatalf("expected error for weights not summing to 1")
	}
	if err := (ScoringWeights{CostEffectiveness: 1.3, Environmental: -0.3}).Validate(); err == nil {
		t.Fatalf("expected error for negative weight")
	}
}

func TestScoreBatch(t *testing.T) {
	weights := DefaultScoringWeights()

	t.Run("empty batch", func(t *testing.T) {
		err := ScoreBatch(weights, nil)
		if !errors.Is(err, ErrEmptyBatch) {
			t.Fatalf("expected ErrEmptyBatch, got %v", err)
		}
	})

	t.Run("scores stay in range", func(t *testing.T) {
		batch := []entities.Quote{
			quoteWith("a", 250, 12),
			quoteWith("b", 120, 7),
			quoteWith("c", 45, 1.5),
		}
		if err := ScoreBatch(weights, batch); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, q := range batch {
			if q.EcoScore < 0 || q.EcoScore > 25 {
				t.Fatalf("score out of range for %s: %d", q.Tier.ID, q.EcoScore)
			}
			if q.EcoTier == "" {
				t.Fatalf("missing tier label for %s", q.Tier.ID)
			}
		}
	})

	t.Run("cheapest and cleanest scores 25", func(t *testing.T) {
		batch := []entities.Quote{
			quoteWith("pricey", 250, 12),
			quoteWith("best", 45, 1.5),
		}
		if err := ScoreBatch(weights, batch); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if batch[1].EcoScore != 25 || batch[1].EcoTier != entities.EcoTierExcellent {
			t.Fatalf("expected 25/excellent for the dominant quote, got %d/%s", batch[1].EcoScore, batch[1].EcoTier)
		}
		if batch[0].EcoScore != 0 || batch[0].EcoTier != entities.EcoTierVeryPoor {
			t.Fatalf("expected 0/very_poor for the dominated quote, got %d/%s", batch[0].EcoScore, batch[0].EcoTier)
		}
	})

	t.Run("degenerate batch scores everyone 25", func(t *testing.T) {
		batch := []entities.Quote{
			quoteWith("a", 100, 5),
			quoteWith("b", 100, 5),
		}
		if err := ScoreBatch(weights, batch); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if batch[0].EcoScore != 25 || batch[1].EcoScore != 25 {
			t.Fatalf("expected both at 25, got %d and %d", batch[0].EcoScore, batch[1].EcoScore)
		}
	})

	t.Run("deterministic for a fixed batch", func(t *testing.T) {
		mk := func() []entities.Quote {
			return []entities.Quote{
				quoteWith("a", 250, 12),
				quoteWith("b", 120, 7),
				quoteWith("c", 45, 1.5),
			}
		}
		first, second := mk(), mk()
		if err := ScoreBatch(weights, first); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := ScoreBatch(weights, second); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := range first {
			if first[i].EcoScore != second[i].EcoScore {
				t.Fatalf("non-deterministic score at %d: %d vs %d", i, first[i].EcoScore, second[i].EcoScore)
			}
		}
	})

	t.Run("same quote scores differently in a different batch", func(t *testing.T) {
		shared := quoteWith("shared", 120, 7)

		cheapBatch := []entities.Quote{shared, quoteWith("x", 45, 1.5)}
		priceyBatch := []entities.Quote{shared, quoteWith("y", 400, 30)}

		if err := ScoreBatch(weights, cheapBatch); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := ScoreBatch(weights, priceyBatch); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Against a cheaper, cleaner rival the shared quote is the worst of
		// its batch; against a pricier, dirtier one it is the best.
		if cheapBatch[0].EcoScore >= priceyBatch[0].EcoScore {
			t.Fatalf("expected batch-relative scores to differ: %d vs %d", cheapBatch[0].EcoScore, priceyBatch[0].EcoScore)
		}
	})

	t.Run("invalid weights rejected", func(t *testing.T) {
		batch := []entities.Quote{quoteWith("a", 10, 1)}
		if err := ScoreBatch(ScoringWeights{CostEffectiveness: 0.9, Environmental: 0.3}, batch); err == nil {
			t.Fatalf("expected weight validation error")
		}
	})
}

func TestTierForScore(t *testing.T) {
	cases := []struct {
		score int
		want  entities.EcoTier
	}{
		{0, entities.EcoTierVeryPoor}, {4, entities.EcoTierVeryPoor},
		{5, entities.EcoTierPoor}, {8, entities.EcoTierPoor},
		{9, entities.EcoTierFair}, {12, entities.EcoTierFair},
		{13, entities.EcoTierGood}, {16, entities.EcoTierGood},
		{17, entities.EcoTierVeryGood}, {20, entities.EcoTierVeryGood},
		{21, entities.EcoTierExcellent}, {25, entities.EcoTierExcellent},
	}
	for _, tc := range cases {
		if got := TierForScore(tc.score); got != tc.want {
			t.Fatalf("score %d: expected %s, got %s", tc.score, tc.want, got)
		}
	}
}
