package liquidation

import (
	"time"

	"github.com/finsim/householdsim/internal/domain"
)

// DateBounds restricts eligible lots by entry date. For a brokerage account
// the bounds are the caller's capital-gains classification channel: passing
// MaxEntryInclusive = currentDate minus one year realizes long-term gains,
// and MinEntryExclusive = currentDate minus one year realizes short-term
// gains, in separate calls when both are needed in the same period. The
// engine trusts the caller's bound choice and never re-derives the holding
// period itself.
type DateBounds struct {
	MinEntryExclusive *time.Time
	MaxEntryInclusive *time.Time
}

// EligibleLotIndexes returns the indexes of the account's lots that a sale
// against (bucket, bounds) may consume, in original list order. The cash and
// primary-residence account types never yield eligible lots, regardless of
// what a sale order requests.
func EligibleLotIndexes(account *domain.InvestmentAccount, bucket domain.AssetBucket, bounds DateBounds) []int {
	if account == nil || !account.Type.IsLiquidationSource() {
		return nil
	}
	var eligible []int
	for i := range account.Lots {
		lot := &account.Lots[i]
		if !lot.Open || lot.Bucket != bucket {
			continue
		}
		if bounds.MinEntryExclusive != nil && !lot.EntryDate.After(*bounds.MinEntryExclusive) {
			continue
		}
		if bounds.MaxEntryInclusive != nil && lot.EntryDate.After(*bounds.MaxEntryInclusive) {
			continue
		}
		eligible = append(eligible, i)
	}
	return eligible
}
