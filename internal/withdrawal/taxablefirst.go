package withdrawal

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finsim/householdsim/internal/domain"
	"github.com/finsim/householdsim/internal/liquidation"
)

// TaxableFirstPolicy sells in a single fixed order — brokerage, then the two
// traditional account types, then the tax-free accounts — ignoring income
// room entirely.
type TaxableFirstPolicy struct{}

func NewTaxableFirstPolicy() *TaxableFirstPolicy { return &TaxableFirstPolicy{} }

func (p *TaxableFirstPolicy) Name() string { return "taxable_first" }

var taxableFirstTypes = []domain.AccountType{
	domain.AccountBrokerage,
	domain.AccountTraditionalIRA,
	domain.AccountTraditional401k,
	domain.AccountRothIRA,
	domain.AccountRoth401k,
	domain.AccountHSA,
}

func (p *TaxableFirstPolicy) SellToDollarAmount(book domain.BookOfAccounts, ledger domain.TaxLedger, date time.Time, amountToSell decimal.Decimal, opts SellOptions) (liquidation.SaleResult, error) {
	driverOpts := liquidation.Options{Diagnostics: opts.Diagnostics}

	order := liquidation.CreateSalesOrderAccountMajor(orderBuckets(opts), taxableFirstTypes)
	if opts.AccountTypeOverride != nil {
		order = overrideOrder(opts)
	}
	return liquidation.SellInvestmentsToDollarAmount(book, ledger, date, amountToSell, order, opts.Bounds, driverOpts)
}

func (p *TaxableFirstPolicy) SellToRmdAmount(book domain.BookOfAccounts, ledger domain.TaxLedger, date time.Time, amountToSell decimal.Decimal) (liquidation.SaleResult, error) {
	return sellToRmdAmount(book, ledger, date, amountToSell)
}
