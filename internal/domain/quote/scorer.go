package quote

import (
	"fmt"
	"math"

	"github.com/hxxtsxxh/EcoShip/internal/domain/entities"
)

// ScoringWeights balance cost-competitiveness against carbon performance.
// The 70/30 default is business policy (affordability is rewarded more than
// environmental purity), not a physical constant; callers may rebalance as
// long as the weights sum to 1.
type ScoringWeights struct {
	CostEffectiveness float64
	Environmental     float64
}

// DefaultScoringWeights returns the reference 70% cost / 30% environment
// split.
func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{CostEffectiveness: 0.70, Environmental: 0.30}
}

// Validate checks that the weights form a convex combination.
func (w ScoringWeights) Validate() error {
	if w.CostEffectiveness < 0 || w.Environmental < 0 {
		return fmt.Errorf("scoring weights must be non-negative")
	}
	if math.Abs(w.CostEffectiveness+w.Environmental-1.0) > 1e-9 {
		return fmt.Errorf("scoring weights must sum to 1.0, got %.4f", w.CostEffectiveness+w.Environmental)
	}
	return nil
}

// ScoreBatch assigns each quote an eco-efficiency score in [0,25] and its
// tier label, computed relative to the other quotes in the same batch.
//
// Both sub-scores are min-max normalized per kilogram and inverted so that
// the cheapest and the cleanest candidates score 1.0. Because the
// normalization is batch-relative, an identical cost/carbon pair can score
// differently inside a different batch; within a fixed batch the result is
// deterministic. A degenerate batch (all candidates equal on a metric)
// scores 1.0 on that metric for everyone.
func ScoreBatch(w ScoringWeights, quotes []entities.Quote) error {
	if len(quotes) == 0 {
		return ErrEmptyBatch
	}
	if err := w.Validate(); err != nil {
		return err
	}

	costs := make([]float64, len(quotes))
	carbons := make([]float64, len(quotes))
	for i, q := range quotes {
		costs[i] = q.CostUSD
		carbons[i] = q.Carbon.TotalCO2Kg
	}

	costScores := normalizeInverted(costs)
	envScores := normalizeInverted(carbons)

	for i := range quotes {
		weighted := costScores[i]*w.CostEffectiveness + envScores[i]*w.Environmental
		score := int(math.Round(weighted * 25))
		if score < 0 {
			score = 0
		}
		if score > 25 {
			score = 25
		}
		quotes[i].EcoScore = score
		quotes[i].EcoTier = TierForScore(score)
	}
	return nil
}

// TierForScore maps a 0-25 score onto its discrete label.
func TierForScore(score int) entities.EcoTier {
	switch {
	case score <= 4:
		return entities.EcoTierVeryPoor
	case score <= 8:
		return entities.EcoTierPoor
	case score <= 12:
		return entities.EcoTierFair
	case score <= 16:
		return entities.EcoTierGood
	case score <= 20:
		return entities.EcoTierVeryGood
	default:
		return entities.EcoTierExcellent
	}
}

// normalizeInverted maps values to [0,1] with the minimum at 1 and the
// maximum at 0. A constant slice maps everything to 1.
func normalizeInverted(values []float64) []float64 {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	out := make([]float64, len(values))
	if hi == lo {
		for i := range out {
			out[i] = 1.0
		}
		return out
	}
	for i, v := range values {
		out[i] = (hi - v) / (hi - lo)
	}
	return out
}
