package taxes

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/finsim/householdsim/internal/domain"
)

func TestBracketSetTax(t *testing.T) {
	bs := NewBracketSet2025()

	tests := []struct {
		name     string
		gross    decimal.Decimal
		expected decimal.Decimal
	}{
		{"below standard deduction", decimal.NewFromInt(20000), decimal.Zero},
		{"exactly the deduction", decimal.NewFromInt(30000), decimal.Zero},
		// 10000 taxable, all in the 10% bracket.
		{"first bracket", decimal.NewFromInt(40000), decimal.NewFromInt(1000)},
		// 50000 taxable: 23200 at 10% + 26799 above the 23201 floor at 12%.
		{"second bracket", decimal.NewFromInt(80000), decimal.RequireFromString("5535.88")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bs.Tax(tt.gross)
			assert.True(t, got.Equal(tt.expected), "got %s want %s", got, tt.expected)
		})
	}
}

func TestBracketSetTaxIsMonotonic(t *testing.T) {
	bs := NewBracketSet2025()

	prev := decimal.Zero
	for gross := int64(0); gross <= 800000; gross += 50000 {
		tax := bs.Tax(decimal.NewFromInt(gross))
		assert.True(t, tax.GreaterThanOrEqual(prev), "tax at %d dropped below tax at lower income", gross)
		prev = tax
	}
}

func TestOrdinaryIncomeCeiling(t *testing.T) {
	bs := NewBracketSet2025()

	ceiling := bs.OrdinaryIncomeCeiling(decimal.NewFromFloat(0.12))
	assert.True(t, ceiling.Equal(decimal.NewFromInt(124300)), "94300 bracket top plus 30000 deduction, got %s", ceiling)

	assert.True(t, bs.OrdinaryIncomeCeiling(decimal.NewFromFloat(0.99)).IsZero())
}

func TestCalculateIncomeRoom(t *testing.T) {
	date := time.Date(2031, 5, 1, 0, 0, 0, 0, time.UTC)

	ledger := domain.NewTaxLedger()
	ledger.IncomeTarget = decimal.NewFromInt(124300)
	assert.True(t, CalculateIncomeRoom(ledger, date).Equal(decimal.NewFromInt(124300)))

	ledger.AppendW2Income(date, decimal.NewFromInt(60000))
	ledger.AppendSocialSecurity(date, decimal.NewFromInt(24000))
	ledger.AppendInterest(date, decimal.NewFromInt(300))
	assert.True(t, CalculateIncomeRoom(ledger, date).Equal(decimal.NewFromInt(40000)))

	// Gains and tax-free withdrawals do not consume room.
	ledger.AppendLongTermGain(date, decimal.NewFromInt(50000))
	ledger.AppendTaxFreeWithdrawal(date, decimal.NewFromInt(50000))
	assert.True(t, CalculateIncomeRoom(ledger, date).Equal(decimal.NewFromInt(40000)))

	// Prior-year income does not count against this year.
	ledger.AppendW2Income(date.AddDate(-1, 0, 0), decimal.NewFromInt(100000))
	assert.True(t, CalculateIncomeRoom(ledger, date).Equal(decimal.NewFromInt(40000)))

	ledger.AppendOrdinaryIncome(date, decimal.NewFromInt(45000))
	assert.True(t, CalculateIncomeRoom(ledger, date).IsZero(), "Room is floored at zero once the target is crossed")
}
