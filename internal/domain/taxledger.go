package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxEntry is one dated, append-only ledger record.
type TaxEntry struct {
	Date   time.Time       `yaml:"date" json:"date"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
}

// TaxLedger accumulates the household's taxable events in independent
// category lists. Entries are only ever appended; yearly aggregates are
// derived by filtering on date. IncomeTarget caches the ordinary-income
// ceiling the income-threshold withdrawal policy fills toward.
type TaxLedger struct {
	LongTermGains      []TaxEntry `yaml:"long_term_gains" json:"long_term_gains"`
	ShortTermGains     []TaxEntry `yaml:"short_term_gains" json:"short_term_gains"`
	OrdinaryIncome     []TaxEntry `yaml:"ordinary_income" json:"ordinary_income"`
	TaxFreeWithdrawals []TaxEntry `yaml:"tax_free_withdrawals" json:"tax_free_withdrawals"`
	Dividends          []TaxEntry `yaml:"dividends" json:"dividends"`
	Interest           []TaxEntry `yaml:"interest" json:"interest"`
	Withholdings       []TaxEntry `yaml:"withholdings" json:"withholdings"`
	SocialSecurity     []TaxEntry `yaml:"social_security" json:"social_security"`
	W2Income           []TaxEntry `yaml:"w2_income" json:"w2_income"`

	// RmdSatisfied tracks required-minimum-distribution dollars already
	// taken, keyed by calendar year.
	RmdSatisfied map[int]decimal.Decimal `yaml:"rmd_satisfied" json:"rmd_satisfied"`

	IncomeTarget decimal.Decimal `yaml:"income_target" json:"income_target"`
}

// NewTaxLedger creates an empty ledger.
func NewTaxLedger() TaxLedger {
	return TaxLedger{RmdSatisfied: map[int]decimal.Decimal{}}
}

// Clone returns a deep copy of the ledger.
func (tl TaxLedger) Clone() TaxLedger {
	out := tl
	out.LongTermGains = cloneEntries(tl.LongTermGains)
	out.ShortTermGains = cloneEntries(tl.ShortTermGains)
	out.OrdinaryIncome = cloneEntries(tl.OrdinaryIncome)
	out.TaxFreeWithdrawals = cloneEntries(tl.TaxFreeWithdrawals)
	out.Dividends = cloneEntries(tl.Dividends)
	out.Interest = cloneEntries(tl.Interest)
	out.Withholdings = cloneEntries(tl.Withholdings)
	out.SocialSecurity = cloneEntries(tl.SocialSecurity)
	out.W2Income = cloneEntries(tl.W2Income)
	out.RmdSatisfied = make(map[int]decimal.Decimal, len(tl.RmdSatisfied))
	for year, amount := range tl.RmdSatisfied {
		out.RmdSatisfied[year] = amount
	}
	return out
}

func cloneEntries(entries []TaxEntry) []TaxEntry {
	if entries == nil {
		return nil
	}
	out := make([]TaxEntry, len(entries))
	copy(out, entries)
	return out
}

func (tl *TaxLedger) AppendLongTermGain(date time.Time, amount decimal.Decimal) {
	tl.LongTermGains = append(tl.LongTermGains, TaxEntry{Date: date, Amount: amount})
}

func (tl *TaxLedger) AppendShortTermGain(date time.Time, amount decimal.Decimal) {
	tl.ShortTermGains = append(tl.ShortTermGains, TaxEntry{Date: date, Amount: amount})
}

func (tl *TaxLedger) AppendOrdinaryIncome(date time.Time, amount decimal.Decimal) {
	tl.OrdinaryIncome = append(tl.OrdinaryIncome, TaxEntry{Date: date, Amount: amount})
}

func (tl *TaxLedger) AppendTaxFreeWithdrawal(date time.Time, amount decimal.Decimal) {
	tl.TaxFreeWithdrawals = append(tl.TaxFreeWithdrawals, TaxEntry{Date: date, Amount: amount})
}

func (tl *TaxLedger) AppendDividend(date time.Time, amount decimal.Decimal) {
	tl.Dividends = append(tl.Dividends, TaxEntry{Date: date, Amount: amount})
}

func (tl *TaxLedger) AppendInterest(date time.Time, amount decimal.Decimal) {
	tl.Interest = append(tl.Interest, TaxEntry{Date: date, Amount: amount})
}

func (tl *TaxLedger) AppendWithholding(date time.Time, amount decimal.Decimal) {
	tl.Withholdings = append(tl.Withholdings, TaxEntry{Date: date, Amount: amount})
}

func (tl *TaxLedger) AppendSocialSecurity(date time.Time, amount decimal.Decimal) {
	tl.SocialSecurity = append(tl.SocialSecurity, TaxEntry{Date: date, Amount: amount})
}

func (tl *TaxLedger) AppendW2Income(date time.Time, amount decimal.Decimal) {
	tl.W2Income = append(tl.W2Income, TaxEntry{Date: date, Amount: amount})
}

// AddRmdSatisfied records required-distribution dollars taken in a year.
func (tl *TaxLedger) AddRmdSatisfied(year int, amount decimal.Decimal) {
	if tl.RmdSatisfied == nil {
		tl.RmdSatisfied = map[int]decimal.Decimal{}
	}
	tl.RmdSatisfied[year] = tl.RmdSatisfied[year].Add(amount)
}

// RmdSatisfiedForYear returns the distribution dollars already taken in a year.
func (tl TaxLedger) RmdSatisfiedForYear(year int) decimal.Decimal {
	return tl.RmdSatisfied[year]
}

func sumForYear(entries []TaxEntry, year int) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if e.Date.Year() == year {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// LongTermGainsForYear returns the year's realized long-term capital gains.
func (tl TaxLedger) LongTermGainsForYear(year int) decimal.Decimal {
	return sumForYear(tl.LongTermGains, year)
}

// ShortTermGainsForYear returns the year's realized short-term capital gains.
func (tl TaxLedger) ShortTermGainsForYear(year int) decimal.Decimal {
	return sumForYear(tl.ShortTermGains, year)
}

// OrdinaryIncomeForYear returns the year's IRA-distribution income.
func (tl TaxLedger) OrdinaryIncomeForYear(year int) decimal.Decimal {
	return sumForYear(tl.OrdinaryIncome, year)
}

// TaxFreeWithdrawalsForYear returns the year's tax-free withdrawal total.
func (tl TaxLedger) TaxFreeWithdrawalsForYear(year int) decimal.Decimal {
	return sumForYear(tl.TaxFreeWithdrawals, year)
}

// TaxableOrdinaryIncomeForYear returns the income that counts against the
// household's bracket headroom: wages, IRA distributions, social security,
// and interest.
func (tl TaxLedger) TaxableOrdinaryIncomeForYear(year int) decimal.Decimal {
	total := sumForYear(tl.W2Income, year)
	total = total.Add(sumForYear(tl.OrdinaryIncome, year))
	total = total.Add(sumForYear(tl.SocialSecurity, year))
	total = total.Add(sumForYear(tl.Interest, year))
	return total
}
