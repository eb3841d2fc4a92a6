package withdrawal

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finsim/householdsim/internal/domain"
	"github.com/finsim/householdsim/internal/liquidation"
)

// ErrRmdShortfall marks a required-minimum-distribution sale that fell more
// than the rounding tolerance short of its mandated amount. RMD amounts are
// pre-validated as feasible against the same snapshot, so a shortfall signals
// state corruption elsewhere in the simulation and aborts the operation.
var ErrRmdShortfall = errors.New("rmd sale could not be satisfied")

// RmdTolerance is the rounding slack allowed on a mandatory distribution.
var RmdTolerance = decimal.NewFromInt(1)

// SellOptions carries the per-call knobs a policy honors.
// BucketOverride restricts the sale to a single asset bucket.
// AccountTypeOverride sells from one account only, ignoring the policy's
// normal priority. Bounds restrict eligible lots by entry date (and thereby
// select long- vs short-term gain classification for brokerage lots).
type SellOptions struct {
	BucketOverride      *domain.AssetBucket
	AccountTypeOverride *domain.AccountType
	Bounds              liquidation.DateBounds
	Diagnostics         bool
}

// Policy decides which sale order the liquidation driver walks. The three
// implementations vary only in order construction; consumption, tax
// recording, and settlement are shared through the driver.
type Policy interface {
	Name() string

	// SellToDollarAmount liquidates toward amountToSell using the policy's
	// priority. Partial fulfillment is a normal result.
	SellToDollarAmount(book domain.BookOfAccounts, ledger domain.TaxLedger, date time.Time, amountToSell decimal.Decimal, opts SellOptions) (liquidation.SaleResult, error)

	// SellToRmdAmount liquidates a mandated distribution from the traditional
	// accounts, regardless of bracket room. A shortfall beyond RmdTolerance
	// is an ErrRmdShortfall.
	SellToRmdAmount(book domain.BookOfAccounts, ledger domain.TaxLedger, date time.Time, amountToSell decimal.Decimal) (liquidation.SaleResult, error)
}

// allBuckets is the default bucket sweep for a sale order.
var allBuckets = []domain.AssetBucket{
	domain.BucketGrowth,
	domain.BucketStableValue,
	domain.BucketCashEquivalent,
}

// orderBuckets resolves the bucket list for a call, honoring the override.
func orderBuckets(opts SellOptions) []domain.AssetBucket {
	if opts.BucketOverride != nil {
		return []domain.AssetBucket{*opts.BucketOverride}
	}
	return allBuckets
}

// overrideOrder builds the sale order for an explicit single-account request.
func overrideOrder(opts SellOptions) []liquidation.SaleOrderEntry {
	return liquidation.CreateSalesOrderAccountMajor(orderBuckets(opts), []domain.AccountType{*opts.AccountTypeOverride})
}
