package taxes

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finsim/householdsim/internal/domain"
)

// CalculateIncomeRoom returns the dollars of ordinary income the household
// can still realize this calendar year before crossing its cached income
// target: wages, IRA distributions, social security, and interest already in
// the ledger count against the target. Never negative.
func CalculateIncomeRoom(ledger domain.TaxLedger, date time.Time) decimal.Decimal {
	accrued := ledger.TaxableOrdinaryIncomeForYear(date.Year())
	room := ledger.IncomeTarget.Sub(accrued)
	if room.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return room
}
