package simulation

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsim/householdsim/internal/domain"
	"github.com/finsim/householdsim/internal/withdrawal"
)

func flatScenario() MarketScenario {
	return MarketScenario{
		BucketReturns: map[domain.AssetBucket]decimal.Decimal{
			domain.BucketGrowth:         decimal.Zero,
			domain.BucketStableValue:    decimal.Zero,
			domain.BucketCashEquivalent: decimal.Zero,
		},
		InflationRate: decimal.Zero,
	}
}

func retireeBook(brokerageValue int64) domain.BookOfAccounts {
	brokerage := domain.NewInvestmentAccount("brokerage", domain.AccountBrokerage)
	brokerage.Lots = []domain.Lot{domain.NewLot(domain.BucketGrowth,
		time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC),
		decimal.NewFromInt(brokerageValue), decimal.NewFromInt(1))}
	return domain.BookOfAccounts{Investments: []domain.InvestmentAccount{brokerage}}
}

func lifeConfig(years int) LifeConfig {
	return LifeConfig{
		Policy:          withdrawal.NewTaxableFirstPolicy(),
		BirthYear:       1975,
		MonthlySpending: decimal.NewFromInt(1000),
		ProjectionYears: years,
		StartDate:       time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestScenarioGeneratorIsReproducible(t *testing.T) {
	a := NewScenarioGenerator(DefaultAssumptions(), 7)
	b := NewScenarioGenerator(DefaultAssumptions(), 7)

	for i := 0; i < 10; i++ {
		sa, sb := a.Generate(), b.Generate()
		assert.True(t, sa.InflationRate.Equal(sb.InflationRate))
		for bucket, ret := range sa.BucketReturns {
			assert.True(t, ret.Equal(sb.BucketReturns[bucket]), "%s diverged on draw %d", bucket, i)
		}
	}
}

func TestScenarioGeneratorFloorsInflation(t *testing.T) {
	assumptions := DefaultAssumptions()
	assumptions.InflationRate = decimal.NewFromFloat(-0.04)
	assumptions.InflationVolatility = decimal.NewFromFloat(0.10)
	generator := NewScenarioGenerator(assumptions, 1)

	for i := 0; i < 100; i++ {
		scenario := generator.Generate()
		assert.True(t, scenario.InflationRate.GreaterThanOrEqual(decimal.NewFromFloat(-0.05)))
	}
}

func TestRunLifeAmpleAssetsSucceeds(t *testing.T) {
	// 1000/month for 2 years against a 100000 book: never fails.
	result, err := RunLife(retireeBook(100000), domain.NewTaxLedger(), flatScenario(), lifeConfig(2))
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Zero(t, result.FailureMonth)
	spent := decimal.NewFromInt(24000)
	assert.True(t, result.EndingNetWorth.Equal(decimal.NewFromInt(100000).Sub(spent)),
		"Flat returns and zero inflation leave net worth down by exactly the spending, got %s", result.EndingNetWorth)
	assert.True(t, result.Ledger.LongTermGainsForYear(2030).IsZero(),
		"Basis equals value, so liquidation realizes no gains")
}

func TestRunLifeExhaustedAssetsFails(t *testing.T) {
	// 5000 covers five months of spending.
	result, err := RunLife(retireeBook(5000), domain.NewTaxLedger(), flatScenario(), lifeConfig(1))
	require.NoError(t, err, "Running out of money is an outcome, not an error")

	assert.False(t, result.Success)
	assert.Equal(t, 6, result.FailureMonth)
}

func TestRunLifeDoesNotMutateInputs(t *testing.T) {
	book := retireeBook(100000)
	ledger := domain.NewTaxLedger()

	_, err := RunLife(book, ledger, flatScenario(), lifeConfig(1))
	require.NoError(t, err)

	assert.True(t, book.NetWorth().Equal(decimal.NewFromInt(100000)))
	assert.Empty(t, ledger.LongTermGains)
}

func TestRunLifeEnforcesDecemberRmd(t *testing.T) {
	// Born 1950, age 80 in 2030: divisor 20.2. IRA holds 202000, so the
	// December requirement is 10000.
	ira := domain.NewInvestmentAccount("ira", domain.AccountTraditionalIRA)
	ira.Lots = []domain.Lot{domain.NewLot(domain.BucketGrowth,
		time.Date(2005, 1, 1, 0, 0, 0, 0, time.UTC),
		decimal.NewFromInt(202000), decimal.NewFromInt(1))}
	cash := domain.NewInvestmentAccount("cash", domain.AccountCash)
	cash.Lots = []domain.Lot{domain.NewLot(domain.BucketCashEquivalent,
		time.Date(2005, 1, 1, 0, 0, 0, 0, time.UTC),
		decimal.NewFromInt(50000), decimal.NewFromInt(1))}
	book := domain.BookOfAccounts{Investments: []domain.InvestmentAccount{ira, cash}}

	cfg := lifeConfig(1)
	cfg.BirthYear = 1950

	result, err := RunLife(book, domain.NewTaxLedger(), flatScenario(), cfg)
	require.NoError(t, err)

	require.True(t, result.Success)
	satisfied := result.Ledger.RmdSatisfiedForYear(2030)
	assert.True(t, satisfied.GreaterThanOrEqual(decimal.NewFromInt(9999)),
		"December distribution should satisfy roughly 202000 / 20.2, got %s", satisfied)
	assert.True(t, result.Ledger.OrdinaryIncomeForYear(2030).Equal(satisfied),
		"Every mandated dollar is taxable as ordinary income")
}

func TestMonteCarloRun(t *testing.T) {
	config := MonteCarloConfig{
		NumSimulations: 50,
		Seed:           42,
		Assumptions:    DefaultAssumptions(),
		Life:           lifeConfig(2),
	}
	engine := NewMonteCarloEngine(retireeBook(1000000), domain.NewTaxLedger(),
		withdrawal.NewTaxableFirstPolicy(), config)

	result, err := engine.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 50, result.NumSimulations)
	assert.Len(t, result.Outcomes, 50)
	assert.True(t, result.SuccessRate.Equal(decimal.NewFromInt(1)),
		"A short draw against a large book always succeeds")
	p10, p90 := result.NetWorthPercentiles["p10"], result.NetWorthPercentiles["p90"]
	assert.True(t, p10.LessThanOrEqual(p90))
}

func TestMonteCarloRunIsReproducible(t *testing.T) {
	config := MonteCarloConfig{
		NumSimulations: 20,
		Seed:           7,
		Assumptions:    DefaultAssumptions(),
		Life:           lifeConfig(1),
	}
	book := retireeBook(500000)

	first, err := NewMonteCarloEngine(book, domain.NewTaxLedger(), withdrawal.NewTaxableFirstPolicy(), config).Run(context.Background())
	require.NoError(t, err)
	second, err := NewMonteCarloEngine(book, domain.NewTaxLedger(), withdrawal.NewTaxableFirstPolicy(), config).Run(context.Background())
	require.NoError(t, err)

	for i := range first.Outcomes {
		assert.True(t, first.Outcomes[i].EndingNetWorth.Equal(second.Outcomes[i].EndingNetWorth),
			"simulation %d diverged between identical seeded runs", i)
	}
}

func TestMonteCarloRejectsNonPositiveCount(t *testing.T) {
	engine := NewMonteCarloEngine(retireeBook(1000), domain.NewTaxLedger(),
		withdrawal.NewTaxableFirstPolicy(), MonteCarloConfig{NumSimulations: 0})

	_, err := engine.Run(context.Background())

	assert.Error(t, err)
}

func TestMonteCarloHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	engine := NewMonteCarloEngine(retireeBook(1000), domain.NewTaxLedger(),
		withdrawal.NewTaxableFirstPolicy(), MonteCarloConfig{
			NumSimulations: 5,
			Assumptions:    DefaultAssumptions(),
			Life:           lifeConfig(1),
		})

	_, err := engine.Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
