package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/warewise/packaging-service/internal/domain/model"
)

// ScoringPolicy holds the tunable constants of the pallet scorer. The
// default weights and the 80% utilization target are empirical; carriers
// with different risk profiles can inject their own policy.
type ScoringPolicy struct {
	// CapacityWeight, AreaWeight and EfficiencyWeight blend pallet size
	// and history into the base score. They should sum to 1.
	CapacityWeight   float64
	AreaWeight       float64
	EfficiencyWeight float64
	// TargetUtilization is the ideal fraction of capacity to fill on both
	// the weight and volume axes.
	TargetUtilization float64
	// StandardStackHeightCm is the assumed stacking height used to derive
	// a pallet's optimal volume from its deck area.
	StandardStackHeightCm float64
	// MaxCandidates caps the ranked result size.
	MaxCandidates int
}

// DefaultScoringPolicy returns the standard scoring configuration.
func DefaultScoringPolicy() ScoringPolicy {
	return ScoringPolicy{
		CapacityWeight:        0.3,
		AreaWeight:            0.3,
		EfficiencyWeight:      0.4,
		TargetUtilization:     0.8,
		StandardStackHeightCm: 180,
		MaxCandidates:         5,
	}
}

// ComplexityThresholds configures when a composition is considered too
// large for the greedy path.
type ComplexityThresholds struct {
	MaxProducts int
	MaxQuantity float64
}

// DefaultComplexityThresholds returns the standard classification limits.
func DefaultComplexityThresholds() ComplexityThresholds {
	return ComplexityThresholds{
		MaxProducts: 10,
		MaxQuantity: 200,
	}
}

// Scorer ranks candidate pallets for a requested load.
type Scorer struct {
	policy     ScoringPolicy
	thresholds ComplexityThresholds
}

// ScorerOption configures a Scorer.
type ScorerOption func(*Scorer)

// WithScoringPolicy overrides the default scoring policy.
func WithScoringPolicy(p ScoringPolicy) ScorerOption {
	return func(s *Scorer) {
		s.policy = p
	}
}

// WithComplexityThresholds overrides the default classification limits.
func WithComplexityThresholds(t ComplexityThresholds) ScorerOption {
	return func(s *Scorer) {
		s.thresholds = t
	}
}

// NewScorer creates a Scorer with the given options.
func NewScorer(opts ...ScorerOption) *Scorer {
	s := &Scorer{
		policy:     DefaultScoringPolicy(),
		thresholds: DefaultComplexityThresholds(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Policy returns the scorer's active policy.
func (s *Scorer) Policy() ScoringPolicy {
	return s.policy
}

// Load is the aggregate physical measure of a composition request.
type Load struct {
	TotalWeightKg float64
	TotalVolumeM3 float64
}

// ComputeLoad aggregates the weight and volume of the requested items using
// each product's base-unit attributes. Unknown products and negative
// quantities are hard failures; the scorer never substitutes defaults for
// missing catalog data.
func ComputeLoad(items []model.CompositionItem, products map[string]model.Product) (Load, error) {
	var load Load
	for _, item := range items {
		if item.Quantity < 0 {
			return Load{}, &InvalidRequestError{
				Field:  "items",
				Reason: fmt.Sprintf("quantity for product %q must not be negative", item.ProductID),
			}
		}
		p, ok := products[item.ProductID]
		if !ok {
			return Load{}, &InvalidRequestError{
				Field:  "items",
				Reason: fmt.Sprintf("unknown product %q", item.ProductID),
			}
		}
		load.TotalWeightKg += p.WeightKg * item.Quantity
		load.TotalVolumeM3 += p.VolumeM3() * item.Quantity
	}
	return load, nil
}

// SelectPallets scores the candidate pallets for the requested items and
// returns up to MaxCandidates of them, best adjusted score first. Pallets
// that are unavailable or cannot carry the load's weight are excluded
// outright, not penalized. An empty items list yields an empty result; a
// non-empty load with no feasible pallet is a NoFeasiblePalletError.
func (s *Scorer) SelectPallets(items []model.CompositionItem, pallets []model.Pallet, products map[string]model.Product) ([]model.CompositionCandidate, error) {
	if len(items) == 0 {
		return []model.CompositionCandidate{}, nil
	}

	load, err := ComputeLoad(items, products)
	if err != nil {
		return nil, err
	}

	candidates := make([]model.CompositionCandidate, 0, len(pallets))
	for _, pallet := range pallets {
		if !pallet.IsAvailable() || pallet.MaxWeightKg < load.TotalWeightKg {
			continue
		}
		candidates = append(candidates, s.score(pallet, load))
	}

	if len(candidates) == 0 {
		return nil, &NoFeasiblePalletError{TotalWeightKg: load.TotalWeightKg, Candidates: len(pallets)}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].AdjustedScore != candidates[j].AdjustedScore {
			return candidates[i].AdjustedScore > candidates[j].AdjustedScore
		}
		return candidates[i].Pallet.ID < candidates[j].Pallet.ID
	})

	if s.policy.MaxCandidates > 0 && len(candidates) > s.policy.MaxCandidates {
		candidates = candidates[:s.policy.MaxCandidates]
	}
	return candidates, nil
}

// score computes the utilization figures and the adjusted score for one
// feasible pallet.
func (s *Scorer) score(pallet model.Pallet, load Load) model.CompositionCandidate {
	weightUtilization := clamp01(load.TotalWeightKg / pallet.MaxWeightKg)

	optimalVolumeM3 := pallet.AreaCm2() * s.policy.StandardStackHeightCm / 1_000_000
	volumeUtilization := 0.0
	if optimalVolumeM3 > 0 {
		volumeUtilization = clamp01(load.TotalVolumeM3 / optimalVolumeM3)
	}

	baseScore := (pallet.MaxWeightKg/1000)*s.policy.CapacityWeight +
		(pallet.AreaCm2()/10000)*s.policy.AreaWeight +
		pallet.EffectiveEfficiency()*s.policy.EfficiencyWeight

	// Reward sitting near the target on both axes; over- and
	// under-utilization are penalized symmetrically.
	adjusted := baseScore *
		(1 - math.Abs(s.policy.TargetUtilization-weightUtilization)) *
		(1 - math.Abs(s.policy.TargetUtilization-volumeUtilization))

	return model.CompositionCandidate{
		Pallet:            pallet,
		WeightUtilization: weightUtilization,
		VolumeUtilization: volumeUtilization,
		BaseScore:         baseScore,
		AdjustedScore:     adjusted,
	}
}

// ClassifyComplexity tells callers whether a composition is small enough
// for the greedy path or warrants a more exhaustive algorithm. Requests
// beyond the product or quantity limits are high; explicit constraints or
// half of either limit push an otherwise small request to medium.
func (s *Scorer) ClassifyComplexity(productCount int, totalQuantity float64, hasConstraints bool) model.ComplexityLevel {
	if productCount > s.thresholds.MaxProducts || totalQuantity > s.thresholds.MaxQuantity {
		return model.ComplexityHigh
	}
	if hasConstraints || productCount > s.thresholds.MaxProducts/2 || totalQuantity > s.thresholds.MaxQuantity/2 {
		return model.ComplexityMedium
	}
	return model.ComplexityLow
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
