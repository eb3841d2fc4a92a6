package liquidation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finsim/householdsim/internal/domain"
)

// Options carries the per-call diagnostics switch. Audit messages are
// generated only when Diagnostics is true and never affect computed results.
type Options struct {
	Diagnostics bool
}

// SaleResult is the complete outcome of one liquidation call: the dollars
// actually realized, new snapshots of the book and ledger, and any audit
// messages. Sold may legitimately fall short of the requested amount when
// eligible holdings run out; callers must compare Sold to their request.
type SaleResult struct {
	Sold   decimal.Decimal
	Book   domain.BookOfAccounts
	Ledger domain.TaxLedger
	Audit  []domain.AuditMessage
}

// SellInvestmentsToDollarAmount walks the sale order top to bottom, consuming
// eligible lots until amountToSell is met or the order is exhausted. Proceeds
// are credited to the cash account as each lot is consumed, and each
// consumption appends exactly one tax-ledger entry per the account type's
// treatment. The caller's book and ledger are never mutated; new snapshots
// are returned.
//
// Insufficient eligible holdings are an expected, recoverable outcome: the
// call returns the partial amount with a nil error. A nil investment-account
// collection is an invalid-data error.
func SellInvestmentsToDollarAmount(
	book domain.BookOfAccounts,
	ledger domain.TaxLedger,
	date time.Time,
	amountToSell decimal.Decimal,
	order []SaleOrderEntry,
	bounds DateBounds,
	opts Options,
) (SaleResult, error) {
	if book.Investments == nil {
		return SaleResult{}, fmt.Errorf("%w: book has no investment account collection", ErrInvalidData)
	}

	newBook := book.Clone()
	newLedger := ledger.Clone()
	result := SaleResult{Sold: decimal.Zero, Book: newBook, Ledger: newLedger}

	if len(newBook.Investments) == 0 || amountToSell.LessThanOrEqual(decimal.Zero) {
		return result, nil
	}

	// A MinEntryExclusive bound means the caller restricted the pass to
	// recently entered lots, so brokerage gains realized on this pass are
	// short-term. Everything else is long-term.
	term := LongTerm
	if bounds.MinEntryExclusive != nil {
		term = ShortTerm
	}

	remaining := amountToSell
	for _, entry := range order {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
		account := result.Book.AccountByType(entry.AccountType)
		if account == nil {
			continue
		}
		for _, lotIndex := range EligibleLotIndexes(account, entry.Bucket, bounds) {
			if remaining.LessThanOrEqual(decimal.Zero) {
				break
			}
			lot := &account.Lots[lotIndex]
			realized, basisRealized := ConsumeLot(lot, remaining)
			if realized.LessThanOrEqual(decimal.Zero) {
				continue
			}
			if err := RecordSaleTaxEffect(&result.Ledger, entry.AccountType, realized, basisRealized, date, term); err != nil {
				return SaleResult{}, err
			}
			result.Book.CreditCash(realized, date)
			// CreditCash may create the cash account, reallocating the
			// account slice; re-resolve the seller before the next lot.
			account = result.Book.AccountByType(entry.AccountType)
			remaining = remaining.Sub(realized)
			result.Sold = result.Sold.Add(realized)

			if opts.Diagnostics {
				amount := realized
				result.Audit = append(result.Audit, domain.NewAuditMessage(date, &amount,
					fmt.Sprintf("sold %s of %s in %s (%s)", realized.StringFixed(2), entry.Bucket, entry.AccountType, term)))
			}
		}
	}

	if opts.Diagnostics && result.Sold.LessThan(amountToSell) {
		shortfall := amountToSell.Sub(result.Sold)
		result.Audit = append(result.Audit, domain.NewAuditMessage(date, &shortfall,
			fmt.Sprintf("sale order exhausted %s short of the requested %s", shortfall.StringFixed(2), amountToSell.StringFixed(2))))
	}

	return result, nil
}
