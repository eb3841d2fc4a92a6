package withdrawal

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finsim/householdsim/internal/domain"
	"github.com/finsim/householdsim/internal/liquidation"
)

// rmdSaleOrder is the fixed order every policy uses for mandated
// distributions: the two traditional account types, growth then stable-value
// lots within each. Income-room logic is deliberately absent; RMD sales are
// mandatory regardless of bracket.
func rmdSaleOrder() []liquidation.SaleOrderEntry {
	return liquidation.CreateSalesOrderAccountMajor(
		[]domain.AssetBucket{domain.BucketGrowth, domain.BucketStableValue},
		[]domain.AccountType{domain.AccountTraditionalIRA, domain.AccountTraditional401k},
	)
}

// sellToRmdAmount runs the fixed RMD order and records the satisfied amount
// in the result ledger. Falling more than RmdTolerance short of the mandated
// amount is a fatal invariant violation, not a recoverable shortfall.
func sellToRmdAmount(book domain.BookOfAccounts, ledger domain.TaxLedger, date time.Time, amountToSell decimal.Decimal) (liquidation.SaleResult, error) {
	result, err := liquidation.SellInvestmentsToDollarAmount(
		book, ledger, date, amountToSell, rmdSaleOrder(), liquidation.DateBounds{}, liquidation.Options{})
	if err != nil {
		return liquidation.SaleResult{}, err
	}
	if amountToSell.Sub(result.Sold).GreaterThan(RmdTolerance) {
		return liquidation.SaleResult{}, fmt.Errorf("%w: required %s, sold %s",
			ErrRmdShortfall, amountToSell.StringFixed(2), result.Sold.StringFixed(2))
	}
	if result.Sold.GreaterThan(decimal.Zero) {
		result.Ledger.AddRmdSatisfied(date.Year(), result.Sold)
	}
	return result, nil
}
