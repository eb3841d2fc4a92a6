package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType is the tax-treatment class of an investment account.
type AccountType int

const (
	AccountBrokerage AccountType = iota
	AccountTraditionalIRA
	AccountTraditional401k
	AccountRothIRA
	AccountRoth401k
	AccountHSA
	AccountCash
	AccountPrimaryResidence
)

func (t AccountType) String() string {
	switch t {
	case AccountBrokerage:
		return "brokerage"
	case AccountTraditionalIRA:
		return "traditional_ira"
	case AccountTraditional401k:
		return "traditional_401k"
	case AccountRothIRA:
		return "roth_ira"
	case AccountRoth401k:
		return "roth_401k"
	case AccountHSA:
		return "hsa"
	case AccountCash:
		return "cash"
	case AccountPrimaryResidence:
		return "primary_residence"
	default:
		return "unknown"
	}
}

// ParseAccountType converts a config string into an AccountType.
func ParseAccountType(s string) (AccountType, bool) {
	for _, t := range []AccountType{
		AccountBrokerage, AccountTraditionalIRA, AccountTraditional401k,
		AccountRothIRA, AccountRoth401k, AccountHSA,
		AccountCash, AccountPrimaryResidence,
	} {
		if t.String() == s {
			return t, true
		}
	}
	return AccountBrokerage, false
}

// IsTaxDeferred reports whether withdrawals are fully taxable as ordinary
// income (traditional retirement accounts).
func (t AccountType) IsTaxDeferred() bool {
	return t == AccountTraditionalIRA || t == AccountTraditional401k
}

// IsTaxFree reports whether qualified withdrawals create no taxable event.
func (t AccountType) IsTaxFree() bool {
	return t == AccountRothIRA || t == AccountRoth401k || t == AccountHSA
}

// IsLiquidationSource reports whether the account type may ever supply lots
// to a sale. The cash account and primary-residence equity are settlement and
// shelter, never a source of liquidation proceeds.
func (t AccountType) IsLiquidationSource() bool {
	return t != AccountCash && t != AccountPrimaryResidence
}

// InvestmentAccount holds an ordered collection of lots under one tax
// treatment. The household normally carries one account per type, created on
// demand.
type InvestmentAccount struct {
	ID   string      `yaml:"id" json:"id"`
	Name string      `yaml:"name" json:"name"`
	Type AccountType `yaml:"type" json:"type"`
	Lots []Lot       `yaml:"lots" json:"lots"`
}

// NewInvestmentAccount creates an empty account of the given type.
func NewInvestmentAccount(name string, accountType AccountType) InvestmentAccount {
	return InvestmentAccount{
		ID:   uuid.New().String(),
		Name: name,
		Type: accountType,
		Lots: []Lot{},
	}
}

// Clone returns a deep copy of the account.
func (a InvestmentAccount) Clone() InvestmentAccount {
	out := a
	out.Lots = make([]Lot, len(a.Lots))
	copy(out.Lots, a.Lots)
	return out
}

// OpenValue returns the combined current value of the account's open lots.
func (a InvestmentAccount) OpenValue() decimal.Decimal {
	total := decimal.Zero
	for _, l := range a.Lots {
		if l.Open {
			total = total.Add(l.CurrentValue())
		}
	}
	return total
}

// BookOfAccounts is the household's full balance sheet: investment accounts
// plus debt accounts. Engine operations never mutate a caller's book; they
// clone it and return the new snapshot.
type BookOfAccounts struct {
	Investments []InvestmentAccount `yaml:"investments" json:"investments"`
	Debts       []DebtAccount       `yaml:"debts" json:"debts"`
}

// Clone returns a deep copy of the book.
func (b BookOfAccounts) Clone() BookOfAccounts {
	out := BookOfAccounts{}
	if b.Investments != nil {
		out.Investments = make([]InvestmentAccount, len(b.Investments))
		for i, acct := range b.Investments {
			out.Investments[i] = acct.Clone()
		}
	}
	if b.Debts != nil {
		out.Debts = make([]DebtAccount, len(b.Debts))
		copy(out.Debts, b.Debts)
	}
	return out
}

// AccountByType returns a pointer to the first account of the given type, or
// nil if the book has none. The pointer addresses the receiver's own slice,
// so callers operate on books they own.
func (b *BookOfAccounts) AccountByType(accountType AccountType) *InvestmentAccount {
	for i := range b.Investments {
		if b.Investments[i].Type == accountType {
			return &b.Investments[i]
		}
	}
	return nil
}

// EnsureAccount returns the account of the given type, creating it on demand.
func (b *BookOfAccounts) EnsureAccount(accountType AccountType) *InvestmentAccount {
	if acct := b.AccountByType(accountType); acct != nil {
		return acct
	}
	b.Investments = append(b.Investments, NewInvestmentAccount(accountType.String(), accountType))
	return &b.Investments[len(b.Investments)-1]
}

// TotalInvestmentValue returns the combined open value of every investment
// account, the cash and residence accounts included.
func (b BookOfAccounts) TotalInvestmentValue() decimal.Decimal {
	total := decimal.Zero
	for _, acct := range b.Investments {
		total = total.Add(acct.OpenValue())
	}
	return total
}

// TotalDebt returns the combined balance of open debt accounts.
func (b BookOfAccounts) TotalDebt() decimal.Decimal {
	total := decimal.Zero
	for _, d := range b.Debts {
		if d.Open {
			total = total.Add(d.Balance)
		}
	}
	return total
}

// NetWorth returns investment value minus outstanding debt.
func (b BookOfAccounts) NetWorth() decimal.Decimal {
	return b.TotalInvestmentValue().Sub(b.TotalDebt())
}

// CashBalance returns the open value of the cash account.
func (b *BookOfAccounts) CashBalance() decimal.Decimal {
	acct := b.AccountByType(AccountCash)
	if acct == nil {
		return decimal.Zero
	}
	return acct.OpenValue()
}

// CreditCash adds proceeds to the cash account of a book the caller owns.
// Cash is held as price-1 cash-equivalent lots.
func (b *BookOfAccounts) CreditCash(amount decimal.Decimal, date time.Time) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return
	}
	acct := b.EnsureAccount(AccountCash)
	acct.Lots = append(acct.Lots, NewLot(BucketCashEquivalent, date, amount, decimal.NewFromInt(1)))
}

// DebitCash removes amount from the cash account of a book the caller owns,
// consuming cash lots in insertion order. It reports whether the full amount
// was available.
func (b *BookOfAccounts) DebitCash(amount decimal.Decimal) bool {
	acct := b.AccountByType(AccountCash)
	if acct == nil || acct.OpenValue().LessThan(amount) {
		return false
	}
	remaining := amount
	for i := range acct.Lots {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
		lot := &acct.Lots[i]
		if !lot.Open {
			continue
		}
		value := lot.CurrentValue()
		if value.LessThanOrEqual(remaining) {
			remaining = remaining.Sub(value)
			lot.Quantity = decimal.Zero
			lot.CostBasis = decimal.Zero
			lot.Open = false
		} else {
			// Basis comes off proportionally to the value withdrawn; cash
			// lots are not guaranteed to stay at price 1 once market growth
			// has been applied.
			lot.CostBasis = lot.CostBasis.Sub(lot.CostBasis.Mul(remaining).Div(value))
			lot.Quantity = lot.Quantity.Sub(remaining.Div(lot.Price))
			remaining = decimal.Zero
		}
	}
	return true
}

// DepositCash returns a new book with amount added to the cash account. The
// receiver is left untouched.
func (b BookOfAccounts) DepositCash(amount decimal.Decimal, date time.Time) BookOfAccounts {
	out := b.Clone()
	out.CreditCash(amount, date)
	return out
}

// WithdrawCash returns a new book with amount removed from the cash account.
// When the cash account cannot cover the full amount, nothing is withdrawn
// and success is false.
func (b BookOfAccounts) WithdrawCash(amount decimal.Decimal, date time.Time) (bool, BookOfAccounts) {
	out := b.Clone()
	if !out.DebitCash(amount) {
		return false, b.Clone()
	}
	return true, out
}
