package withdrawal

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finsim/householdsim/internal/domain"
	"github.com/finsim/householdsim/internal/liquidation"
)

// RmdOnlyPolicy restricts every sale to the traditional accounts. Its
// discretionary sales walk the same fixed order as mandated distributions but
// stay recoverable on shortfall; only SellToRmdAmount carries the fatal
// shortfall contract.
type RmdOnlyPolicy struct{}

func NewRmdOnlyPolicy() *RmdOnlyPolicy { return &RmdOnlyPolicy{} }

func (p *RmdOnlyPolicy) Name() string { return "rmd_only" }

func (p *RmdOnlyPolicy) SellToDollarAmount(book domain.BookOfAccounts, ledger domain.TaxLedger, date time.Time, amountToSell decimal.Decimal, opts SellOptions) (liquidation.SaleResult, error) {
	driverOpts := liquidation.Options{Diagnostics: opts.Diagnostics}

	order := rmdSaleOrder()
	if opts.AccountTypeOverride != nil {
		order = overrideOrder(opts)
	} else if opts.BucketOverride != nil {
		order = liquidation.CreateSalesOrderAccountMajor(orderBuckets(opts),
			[]domain.AccountType{domain.AccountTraditionalIRA, domain.AccountTraditional401k})
	}
	return liquidation.SellInvestmentsToDollarAmount(book, ledger, date, amountToSell, order, opts.Bounds, driverOpts)
}

func (p *RmdOnlyPolicy) SellToRmdAmount(book domain.BookOfAccounts, ledger domain.TaxLedger, date time.Time, amountToSell decimal.Decimal) (liquidation.SaleResult, error) {
	return sellToRmdAmount(book, ledger, date, amountToSell)
}
