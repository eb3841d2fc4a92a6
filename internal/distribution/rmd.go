package distribution

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finsim/householdsim/internal/domain"
)

// RmdAge returns the age at which required minimum distributions begin for a
// birth year, per SECURE 2.0.
func RmdAge(birthYear int) int {
	switch {
	case birthYear <= 1949:
		return 72
	case birthYear <= 1959:
		return 73
	default:
		return 75
	}
}

// uniformLifetimeTable is the IRS Uniform Lifetime Table distribution period
// by age.
var uniformLifetimeTable = map[int]decimal.Decimal{
	72:  decimal.NewFromFloat(27.4),
	73:  decimal.NewFromFloat(26.5),
	74:  decimal.NewFromFloat(25.5),
	75:  decimal.NewFromFloat(24.6),
	76:  decimal.NewFromFloat(23.7),
	77:  decimal.NewFromFloat(22.9),
	78:  decimal.NewFromFloat(22.0),
	79:  decimal.NewFromFloat(21.1),
	80:  decimal.NewFromFloat(20.2),
	81:  decimal.NewFromFloat(19.4),
	82:  decimal.NewFromFloat(18.5),
	83:  decimal.NewFromFloat(17.7),
	84:  decimal.NewFromFloat(16.8),
	85:  decimal.NewFromFloat(16.0),
	86:  decimal.NewFromFloat(15.2),
	87:  decimal.NewFromFloat(14.4),
	88:  decimal.NewFromFloat(13.7),
	89:  decimal.NewFromFloat(12.9),
	90:  decimal.NewFromFloat(12.2),
	91:  decimal.NewFromFloat(11.5),
	92:  decimal.NewFromFloat(10.8),
	93:  decimal.NewFromFloat(10.1),
	94:  decimal.NewFromFloat(9.5),
	95:  decimal.NewFromFloat(8.9),
	96:  decimal.NewFromFloat(8.4),
	97:  decimal.NewFromFloat(7.8),
	98:  decimal.NewFromFloat(7.3),
	99:  decimal.NewFromFloat(6.8),
	100: decimal.NewFromFloat(6.4),
}

// DistributionPeriod returns the Uniform Lifetime Table divisor for an age,
// with a flat estimate past the table's end. Zero below RMD range.
func DistributionPeriod(age int) decimal.Decimal {
	if period, ok := uniformLifetimeTable[age]; ok {
		return period
	}
	if age > 100 {
		return decimal.NewFromFloat(6.0)
	}
	return decimal.Zero
}

// CalculateRmdRequirement returns the distribution still owed for the
// calendar year of date: the Uniform Lifetime Table amount over the combined
// open value of the traditional accounts, less what the ledger records as
// already satisfied this year. Zero before RMD age or once satisfied.
func CalculateRmdRequirement(ledger domain.TaxLedger, date time.Time, book domain.BookOfAccounts, birthYear int) decimal.Decimal {
	age := date.Year() - birthYear
	if age < RmdAge(birthYear) {
		return decimal.Zero
	}
	period := DistributionPeriod(age)
	if period.IsZero() {
		return decimal.Zero
	}

	balance := decimal.Zero
	for _, account := range book.Investments {
		if account.Type.IsTaxDeferred() {
			balance = balance.Add(account.OpenValue())
		}
	}
	if balance.IsZero() {
		return decimal.Zero
	}

	required := balance.Div(period)
	remaining := required.Sub(ledger.RmdSatisfiedForYear(date.Year()))
	if remaining.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return remaining
}
