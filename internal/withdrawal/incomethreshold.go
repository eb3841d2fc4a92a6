package withdrawal

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finsim/householdsim/internal/domain"
	"github.com/finsim/householdsim/internal/liquidation"
	"github.com/finsim/householdsim/internal/taxes"
)

// IncomeThresholdPolicy front-loads taxable events while bracket room is
// cheap. Phase 1 sells up to min(amount, income room) in the order
// traditional -> brokerage -> tax-free; once room is exhausted, phase 2 sells
// the remainder in the reversed order tax-free -> brokerage -> traditional,
// preferring withdrawals that create no further taxable events. Both phases
// may touch every account type; only the order differs.
type IncomeThresholdPolicy struct{}

func NewIncomeThresholdPolicy() *IncomeThresholdPolicy { return &IncomeThresholdPolicy{} }

func (p *IncomeThresholdPolicy) Name() string { return "income_threshold" }

// phase1Order prefers accounts whose withdrawals fill the bracket.
var phase1Types = []domain.AccountType{
	domain.AccountTraditionalIRA,
	domain.AccountTraditional401k,
	domain.AccountBrokerage,
	domain.AccountRothIRA,
	domain.AccountRoth401k,
	domain.AccountHSA,
}

// phase2Order is phase 1 reversed: bracket room is gone, spend tax-free first.
var phase2Types = []domain.AccountType{
	domain.AccountHSA,
	domain.AccountRoth401k,
	domain.AccountRothIRA,
	domain.AccountBrokerage,
	domain.AccountTraditional401k,
	domain.AccountTraditionalIRA,
}

func (p *IncomeThresholdPolicy) SellToDollarAmount(book domain.BookOfAccounts, ledger domain.TaxLedger, date time.Time, amountToSell decimal.Decimal, opts SellOptions) (liquidation.SaleResult, error) {
	driverOpts := liquidation.Options{Diagnostics: opts.Diagnostics}

	if opts.AccountTypeOverride != nil {
		return liquidation.SellInvestmentsToDollarAmount(
			book, ledger, date, amountToSell, overrideOrder(opts), opts.Bounds, driverOpts)
	}

	incomeRoom := taxes.CalculateIncomeRoom(ledger, date)
	phase1Amount := decimal.Min(amountToSell, incomeRoom)

	phase1Order := liquidation.CreateSalesOrderAccountMajor(orderBuckets(opts), phase1Types)
	phase1, err := liquidation.SellInvestmentsToDollarAmount(
		book, ledger, date, phase1Amount, phase1Order, opts.Bounds, driverOpts)
	if err != nil {
		return liquidation.SaleResult{}, err
	}

	remaining := amountToSell.Sub(phase1.Sold)
	if remaining.LessThanOrEqual(decimal.Zero) {
		return phase1, nil
	}

	phase2Order := liquidation.CreateSalesOrderAccountMajor(orderBuckets(opts), phase2Types)
	phase2, err := liquidation.SellInvestmentsToDollarAmount(
		phase1.Book, phase1.Ledger, date, remaining, phase2Order, opts.Bounds, driverOpts)
	if err != nil {
		return liquidation.SaleResult{}, err
	}

	phase2.Sold = phase1.Sold.Add(phase2.Sold)
	phase2.Audit = append(phase1.Audit, phase2.Audit...)
	return phase2, nil
}

func (p *IncomeThresholdPolicy) SellToRmdAmount(book domain.BookOfAccounts, ledger domain.TaxLedger, date time.Time, amountToSell decimal.Decimal) (liquidation.SaleResult, error) {
	return sellToRmdAmount(book, ledger, date, amountToSell)
}
