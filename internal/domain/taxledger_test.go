package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTaxLedgerYearlyAggregates(t *testing.T) {
	ledger := NewTaxLedger()
	in2030 := time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC)
	in2031 := time.Date(2031, 5, 1, 0, 0, 0, 0, time.UTC)

	ledger.AppendLongTermGain(in2030, decimal.NewFromInt(100))
	ledger.AppendLongTermGain(in2031, decimal.NewFromInt(40))
	ledger.AppendShortTermGain(in2030, decimal.NewFromInt(25))
	ledger.AppendOrdinaryIncome(in2030, decimal.NewFromInt(1000))
	ledger.AppendTaxFreeWithdrawal(in2030, decimal.NewFromInt(300))
	ledger.AppendW2Income(in2030, decimal.NewFromInt(5000))
	ledger.AppendSocialSecurity(in2030, decimal.NewFromInt(700))
	ledger.AppendInterest(in2030, decimal.NewFromInt(50))

	assert.True(t, ledger.LongTermGainsForYear(2030).Equal(decimal.NewFromInt(100)))
	assert.True(t, ledger.LongTermGainsForYear(2031).Equal(decimal.NewFromInt(40)))
	assert.True(t, ledger.ShortTermGainsForYear(2030).Equal(decimal.NewFromInt(25)))
	assert.True(t, ledger.OrdinaryIncomeForYear(2030).Equal(decimal.NewFromInt(1000)))
	assert.True(t, ledger.TaxFreeWithdrawalsForYear(2030).Equal(decimal.NewFromInt(300)))
	// 5000 wages + 1000 distributions + 700 social security + 50 interest
	assert.True(t, ledger.TaxableOrdinaryIncomeForYear(2030).Equal(decimal.NewFromInt(6750)))
	assert.True(t, ledger.TaxableOrdinaryIncomeForYear(2029).IsZero())
}

func TestTaxLedgerRmdSatisfied(t *testing.T) {
	ledger := NewTaxLedger()

	assert.True(t, ledger.RmdSatisfiedForYear(2035).IsZero())

	ledger.AddRmdSatisfied(2035, decimal.NewFromInt(4000))
	ledger.AddRmdSatisfied(2035, decimal.NewFromInt(1500))

	assert.True(t, ledger.RmdSatisfiedForYear(2035).Equal(decimal.NewFromInt(5500)))
	assert.True(t, ledger.RmdSatisfiedForYear(2036).IsZero())
}

func TestTaxLedgerCloneIsDeep(t *testing.T) {
	ledger := NewTaxLedger()
	date := time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC)
	ledger.AppendLongTermGain(date, decimal.NewFromInt(100))
	ledger.AddRmdSatisfied(2030, decimal.NewFromInt(4000))
	ledger.IncomeTarget = decimal.NewFromInt(90000)

	clone := ledger.Clone()
	clone.AppendLongTermGain(date, decimal.NewFromInt(999))
	clone.AddRmdSatisfied(2030, decimal.NewFromInt(1))
	clone.IncomeTarget = decimal.Zero

	assert.Len(t, ledger.LongTermGains, 1, "Original entry list should be untouched")
	assert.True(t, ledger.RmdSatisfiedForYear(2030).Equal(decimal.NewFromInt(4000)))
	assert.True(t, ledger.IncomeTarget.Equal(decimal.NewFromInt(90000)))
}
