package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DebtAccount represents one debt position: a mortgage, loan, or revolving
// balance. Liquidation never touches debt accounts; they enter net-worth
// arithmetic and the simulation's monthly debt service only.
type DebtAccount struct {
	ID      string          `yaml:"id" json:"id"`
	Name    string          `yaml:"name" json:"name"`
	Balance decimal.Decimal `yaml:"balance" json:"balance"`
	Rate    decimal.Decimal `yaml:"rate" json:"rate"`
	Payment decimal.Decimal `yaml:"payment" json:"payment"`
	Open    bool            `yaml:"open" json:"open"`
}

// NewDebtAccount creates an open debt position.
func NewDebtAccount(name string, balance, rate, payment decimal.Decimal) DebtAccount {
	return DebtAccount{
		ID:      uuid.New().String(),
		Name:    name,
		Balance: balance,
		Rate:    rate,
		Payment: payment,
		Open:    true,
	}
}

// ApplyMonthlyPayment accrues one month of interest, applies the scheduled
// payment, and returns the updated account plus the cash actually paid. A
// payment that clears the balance closes the account.
func (d DebtAccount) ApplyMonthlyPayment() (DebtAccount, decimal.Decimal) {
	if !d.Open {
		return d, decimal.Zero
	}
	monthlyRate := d.Rate.Div(decimal.NewFromInt(12))
	accrued := d.Balance.Add(d.Balance.Mul(monthlyRate))
	paid := d.Payment
	if paid.GreaterThan(accrued) {
		paid = accrued
	}
	d.Balance = accrued.Sub(paid)
	if d.Balance.LessThanOrEqual(decimal.Zero) {
		d.Balance = decimal.Zero
		d.Open = false
	}
	return d, paid
}
