package liquidation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finsim/householdsim/internal/domain"
)

// GainTerm classifies a realized brokerage gain as long- or short-term. The
// driver derives it from which date-bound branch supplied the eligible lots,
// not from the holding period (see DateBounds).
type GainTerm int

const (
	LongTerm GainTerm = iota
	ShortTerm
)

func (gt GainTerm) String() string {
	if gt == ShortTerm {
		return "short_term"
	}
	return "long_term"
}

// RecordSaleTaxEffect appends the tax consequence of one realized sale to a
// ledger the caller owns:
//
//   - brokerage: capital gain of realized minus the realized portion's basis,
//     in the long- or short-term list per term
//   - traditional IRA / 401k: the full realized amount as ordinary income,
//     basis ignored
//   - Roth IRA / 401k / HSA: a tax-free-withdrawal audit entry only
//
// Invoking this for the cash or primary-residence types indicates a corrupted
// sale order upstream and fails with an invalid-data error.
func RecordSaleTaxEffect(ledger *domain.TaxLedger, accountType domain.AccountType, realized, basisRealized decimal.Decimal, date time.Time, term GainTerm) error {
	switch {
	case accountType == domain.AccountBrokerage:
		gain := realized.Sub(basisRealized)
		if term == ShortTerm {
			ledger.AppendShortTermGain(date, gain)
		} else {
			ledger.AppendLongTermGain(date, gain)
		}
	case accountType.IsTaxDeferred():
		ledger.AppendOrdinaryIncome(date, realized)
	case accountType.IsTaxFree():
		ledger.AppendTaxFreeWithdrawal(date, realized)
	default:
		return fmt.Errorf("%w: tax effect requested for non-liquidation account type %s", ErrInvalidData, accountType)
	}
	return nil
}
