package simulation

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/finsim/householdsim/internal/domain"
	"github.com/finsim/householdsim/internal/withdrawal"
)

// MonteCarloConfig holds the harness settings.
type MonteCarloConfig struct {
	NumSimulations int
	Seed           int64
	Assumptions    Assumptions
	Life           LifeConfig
}

// SimulationOutcome is one life's result paired with its market conditions.
type SimulationOutcome struct {
	SimulationID   int
	Scenario       MarketScenario
	Success        bool
	FailureMonth   int
	EndingNetWorth decimal.Decimal
}

// MonteCarloResult aggregates all simulated lives.
type MonteCarloResult struct {
	NumSimulations      int
	SuccessRate         decimal.Decimal
	NetWorthPercentiles map[string]decimal.Decimal // 10th, 25th, 50th, 75th, 90th
	Outcomes            []SimulationOutcome
}

// MonteCarloEngine runs many independent lives against one opening snapshot.
// The liquidation engine's purity makes the lives safe to run in parallel;
// within each life, months are strictly sequential.
type MonteCarloEngine struct {
	book   domain.BookOfAccounts
	ledger domain.TaxLedger
	policy withdrawal.Policy
	config MonteCarloConfig
}

// NewMonteCarloEngine creates an engine over an opening book and ledger.
func NewMonteCarloEngine(book domain.BookOfAccounts, ledger domain.TaxLedger, policy withdrawal.Policy, config MonteCarloConfig) *MonteCarloEngine {
	return &MonteCarloEngine{book: book, ledger: ledger, policy: policy, config: config}
}

// Run simulates the configured number of lives and aggregates success rate
// and ending-net-worth percentiles.
func (e *MonteCarloEngine) Run(ctx context.Context) (*MonteCarloResult, error) {
	if e.config.NumSimulations <= 0 {
		return nil, fmt.Errorf("num simulations must be positive, got %d", e.config.NumSimulations)
	}

	// Scenarios are drawn up front from one seeded generator so results are
	// reproducible regardless of goroutine scheduling.
	generator := NewScenarioGenerator(e.config.Assumptions, e.config.Seed)
	scenarios := make([]MarketScenario, e.config.NumSimulations)
	for i := range scenarios {
		scenarios[i] = generator.Generate()
	}

	outcomes := make([]SimulationOutcome, e.config.NumSimulations)
	errs := make([]error, e.config.NumSimulations)

	var wg sync.WaitGroup
	for i := 0; i < e.config.NumSimulations; i++ {
		wg.Add(1)
		go func(simID int) {
			defer wg.Done()
			if ctx.Err() != nil {
				errs[simID] = ctx.Err()
				return
			}
			lifeConfig := e.config.Life
			lifeConfig.Policy = e.policy
			life, err := RunLife(e.book, e.ledger, scenarios[simID], lifeConfig)
			if err != nil {
				errs[simID] = fmt.Errorf("simulation %d: %w", simID, err)
				return
			}
			outcomes[simID] = SimulationOutcome{
				SimulationID:   simID,
				Scenario:       scenarios[simID],
				Success:        life.Success,
				FailureMonth:   life.FailureMonth,
				EndingNetWorth: life.EndingNetWorth,
			}
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	successes := 0
	netWorths := make([]decimal.Decimal, 0, len(outcomes))
	for _, outcome := range outcomes {
		if outcome.Success {
			successes++
		}
		netWorths = append(netWorths, outcome.EndingNetWorth)
	}
	sort.Slice(netWorths, func(i, j int) bool { return netWorths[i].LessThan(netWorths[j]) })

	result := &MonteCarloResult{
		NumSimulations: e.config.NumSimulations,
		SuccessRate: decimal.NewFromInt(int64(successes)).
			Div(decimal.NewFromInt(int64(e.config.NumSimulations))),
		NetWorthPercentiles: map[string]decimal.Decimal{
			"p10": percentile(netWorths, 10),
			"p25": percentile(netWorths, 25),
			"p50": percentile(netWorths, 50),
			"p75": percentile(netWorths, 75),
			"p90": percentile(netWorths, 90),
		},
		Outcomes: outcomes,
	}
	return result, nil
}

// percentile returns the nearest-rank percentile of a sorted slice.
func percentile(sorted []decimal.Decimal, p int) decimal.Decimal {
	if len(sorted) == 0 {
		return decimal.Zero
	}
	index := (p * len(sorted)) / 100
	if index >= len(sorted) {
		index = len(sorted) - 1
	}
	return sorted[index]
}
