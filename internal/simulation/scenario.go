package simulation

import (
	"math/rand"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/finsim/householdsim/internal/domain"
)

// Assumptions holds the mean market behavior a scenario is drawn around.
type Assumptions struct {
	BucketReturns       map[domain.AssetBucket]decimal.Decimal // mean annual return by bucket
	ReturnVolatility    decimal.Decimal                        // standard deviation for returns
	InflationRate       decimal.Decimal                        // mean annual inflation
	InflationVolatility decimal.Decimal                        // standard deviation for inflation
}

// DefaultAssumptions returns moderate long-run market assumptions.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		BucketReturns: map[domain.AssetBucket]decimal.Decimal{
			domain.BucketGrowth:         decimal.NewFromFloat(0.07),
			domain.BucketStableValue:    decimal.NewFromFloat(0.035),
			domain.BucketCashEquivalent: decimal.NewFromFloat(0.02),
		},
		ReturnVolatility:    decimal.NewFromFloat(0.12),
		InflationRate:       decimal.NewFromFloat(0.025),
		InflationVolatility: decimal.NewFromFloat(0.01),
	}
}

// MarketScenario is one simulated life's market conditions: annual returns by
// asset bucket and an inflation rate, fixed for the life. All randomness in
// the system lives here; the liquidation engine itself is deterministic.
type MarketScenario struct {
	BucketReturns map[domain.AssetBucket]decimal.Decimal
	InflationRate decimal.Decimal
}

// ScenarioGenerator draws market scenarios from a seeded source so runs are
// reproducible.
type ScenarioGenerator struct {
	assumptions Assumptions
	rng         *rand.Rand
}

// NewScenarioGenerator creates a generator with an explicit seed.
func NewScenarioGenerator(assumptions Assumptions, seed int64) *ScenarioGenerator {
	return &ScenarioGenerator{
		assumptions: assumptions,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

// Generate draws one scenario: normal perturbations around the mean returns
// and inflation. Buckets are drawn in sorted order; ranging over the map
// would let iteration order decide which bucket gets which draw and break
// seeded reproducibility.
func (g *ScenarioGenerator) Generate() MarketScenario {
	buckets := make([]domain.AssetBucket, 0, len(g.assumptions.BucketReturns))
	for bucket := range g.assumptions.BucketReturns {
		buckets = append(buckets, bucket)
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i] < buckets[j] })

	scenario := MarketScenario{BucketReturns: map[domain.AssetBucket]decimal.Decimal{}}
	for _, bucket := range buckets {
		noise := decimal.NewFromFloat(g.rng.NormFloat64()).Mul(g.assumptions.ReturnVolatility)
		scenario.BucketReturns[bucket] = g.assumptions.BucketReturns[bucket].Add(noise)
	}
	inflationNoise := decimal.NewFromFloat(g.rng.NormFloat64()).Mul(g.assumptions.InflationVolatility)
	scenario.InflationRate = g.assumptions.InflationRate.Add(inflationNoise)
	if scenario.InflationRate.LessThan(decimal.NewFromFloat(-0.05)) {
		scenario.InflationRate = decimal.NewFromFloat(-0.05)
	}
	return scenario
}
