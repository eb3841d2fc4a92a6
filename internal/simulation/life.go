package simulation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finsim/householdsim/internal/distribution"
	"github.com/finsim/householdsim/internal/domain"
	"github.com/finsim/householdsim/internal/withdrawal"
)

var monthsPerYear = decimal.NewFromInt(12)

// LifeConfig drives one simulated life.
type LifeConfig struct {
	Policy          withdrawal.Policy
	BirthYear       int
	MonthlySpending decimal.Decimal // in start-date dollars
	ProjectionYears int
	StartDate       time.Time
	Diagnostics     bool
}

// LifeResult is the outcome of one life: whether every month's spending was
// met, and the ending state.
type LifeResult struct {
	Success        bool
	FailureMonth   int // 1-based month of the first unmet expense; 0 when successful
	EndingNetWorth decimal.Decimal
	Book           domain.BookOfAccounts
	Ledger         domain.TaxLedger
	Audit          []domain.AuditMessage
}

// RunLife walks one life month by month: grow open lots at the scenario's
// bucket returns, service debt, meet inflated spending from cash and then
// from policy-ordered liquidation, and enforce the year's required minimum
// distribution each December. Each month's output snapshot is the next
// month's input; a month whose spending cannot be met fails the life.
func RunLife(book domain.BookOfAccounts, ledger domain.TaxLedger, scenario MarketScenario, cfg LifeConfig) (LifeResult, error) {
	book = book.Clone()
	ledger = ledger.Clone()

	result := LifeResult{Success: true}
	spending := cfg.MonthlySpending
	monthlyInflation := scenario.InflationRate.Div(monthsPerYear)
	one := decimal.NewFromInt(1)

	totalMonths := cfg.ProjectionYears * 12
	for month := 0; month < totalMonths; month++ {
		date := cfg.StartDate.AddDate(0, month, 0)

		applyMonthlyGrowth(&book, scenario)

		debtService := decimal.Zero
		for i := range book.Debts {
			updated, paid := book.Debts[i].ApplyMonthlyPayment()
			book.Debts[i] = updated
			debtService = debtService.Add(paid)
		}

		need := spending.Add(debtService)
		if cash := book.CashBalance(); cash.LessThan(need) {
			shortfall := need.Sub(cash)
			sale, err := cfg.Policy.SellToDollarAmount(book, ledger, date, shortfall,
				withdrawal.SellOptions{Diagnostics: cfg.Diagnostics})
			if err != nil {
				return LifeResult{}, err
			}
			book = sale.Book
			ledger = sale.Ledger
			result.Audit = append(result.Audit, sale.Audit...)
		}
		if !book.DebitCash(need) {
			result.Success = false
			result.FailureMonth = month + 1
			break
		}

		// RMDs are enforced once the year's final month arrives; the
		// requirement already nets out distributions taken earlier in the year.
		if date.Month() == time.December {
			required := distribution.CalculateRmdRequirement(ledger, date, book, cfg.BirthYear)
			if required.GreaterThan(decimal.Zero) {
				sale, err := cfg.Policy.SellToRmdAmount(book, ledger, date, required)
				if err != nil {
					return LifeResult{}, err
				}
				book = sale.Book
				ledger = sale.Ledger
			}
		}

		spending = spending.Mul(one.Add(monthlyInflation))
	}

	result.EndingNetWorth = book.NetWorth()
	result.Book = book
	result.Ledger = ledger
	return result, nil
}

// applyMonthlyGrowth moves every open lot's price by one month of its
// bucket's annual return.
func applyMonthlyGrowth(book *domain.BookOfAccounts, scenario MarketScenario) {
	one := decimal.NewFromInt(1)
	for i := range book.Investments {
		account := &book.Investments[i]
		for j := range account.Lots {
			lot := &account.Lots[j]
			if !lot.Open {
				continue
			}
			annual, ok := scenario.BucketReturns[lot.Bucket]
			if !ok {
				continue
			}
			lot.Price = lot.Price.Mul(one.Add(annual.Div(monthsPerYear)))
		}
	}
}
