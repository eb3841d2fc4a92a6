package taxes

import (
	"github.com/shopspring/decimal"
)

// TAX ASSUMPTIONS:
//
// 1. Federal brackets: 2025 married-filing-jointly table for all projection
//    years, no inflation indexing of future thresholds.
// 2. Standard deduction: $30,000 (2025 MFJ estimate).
//
// TODO: Consider inflation indexing brackets for long-horizon projections.

// TaxBracket represents one federal ordinary-income bracket.
type TaxBracket struct {
	Min  decimal.Decimal
	Max  decimal.Decimal
	Rate decimal.Decimal
}

// BracketSet holds a year's federal bracket table and standard deduction.
type BracketSet struct {
	Year              int
	StandardDeduction decimal.Decimal
	Brackets          []TaxBracket
}

// NewBracketSet2025 creates the 2025 married-filing-jointly bracket set.
func NewBracketSet2025() *BracketSet {
	return &BracketSet{
		Year:              2025,
		StandardDeduction: decimal.NewFromInt(30000),
		Brackets: []TaxBracket{
			{decimal.Zero, decimal.NewFromInt(23200), decimal.NewFromFloat(0.10)},
			{decimal.NewFromInt(23201), decimal.NewFromInt(94300), decimal.NewFromFloat(0.12)},
			{decimal.NewFromInt(94301), decimal.NewFromInt(201050), decimal.NewFromFloat(0.22)},
			{decimal.NewFromInt(201051), decimal.NewFromInt(383900), decimal.NewFromFloat(0.24)},
			{decimal.NewFromInt(383901), decimal.NewFromInt(487450), decimal.NewFromFloat(0.32)},
			{decimal.NewFromInt(487451), decimal.NewFromInt(731200), decimal.NewFromFloat(0.35)},
			{decimal.NewFromInt(731201), decimal.NewFromInt(999999999), decimal.NewFromFloat(0.37)},
		},
	}
}

// Tax calculates federal income tax on gross ordinary income after the
// standard deduction.
func (bs *BracketSet) Tax(grossIncome decimal.Decimal) decimal.Decimal {
	taxableIncome := grossIncome.Sub(bs.StandardDeduction)
	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	var totalTax decimal.Decimal
	for _, bracket := range bs.Brackets {
		if taxableIncome.LessThanOrEqual(bracket.Min) {
			break
		}
		incomeInBracket := decimal.Min(taxableIncome, bracket.Max).Sub(bracket.Min)
		if incomeInBracket.GreaterThan(decimal.Zero) {
			totalTax = totalTax.Add(incomeInBracket.Mul(bracket.Rate))
		}
	}
	return totalTax
}

// OrdinaryIncomeCeiling returns the gross income at the top of the bracket
// carrying the given marginal rate, standard deduction included. Households
// use it to construct the ledger's income target. Zero when no bracket
// carries the rate.
func (bs *BracketSet) OrdinaryIncomeCeiling(rate decimal.Decimal) decimal.Decimal {
	for _, bracket := range bs.Brackets {
		if bracket.Rate.Equal(rate) {
			return bracket.Max.Add(bs.StandardDeduction)
		}
	}
	return decimal.Zero
}
