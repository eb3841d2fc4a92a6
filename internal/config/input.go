package config

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/finsim/householdsim/internal/domain"
)

// LotInput describes one opening position in the household definition.
type LotInput struct {
	Bucket    string          `yaml:"bucket"`
	EntryDate time.Time       `yaml:"entry_date"`
	Quantity  decimal.Decimal `yaml:"quantity"`
	Price     decimal.Decimal `yaml:"price"`
}

// AccountInput describes one investment account and its opening lots.
type AccountInput struct {
	Name string     `yaml:"name"`
	Type string     `yaml:"type"`
	Lots []LotInput `yaml:"lots"`
}

// DebtInput describes one debt position.
type DebtInput struct {
	Name    string          `yaml:"name"`
	Balance decimal.Decimal `yaml:"balance"`
	Rate    decimal.Decimal `yaml:"rate"`
	Payment decimal.Decimal `yaml:"payment"`
}

// HouseholdInput is the household's balance sheet and income posture.
type HouseholdInput struct {
	Name            string          `yaml:"name"`
	BirthYear       int             `yaml:"birth_year"`
	MonthlySpending decimal.Decimal `yaml:"monthly_spending"`
	IncomeTarget    decimal.Decimal `yaml:"income_target"`
	Accounts        []AccountInput  `yaml:"accounts"`
	Debts           []DebtInput     `yaml:"debts"`
}

// AssumptionsInput holds the market and horizon assumptions for simulation.
type AssumptionsInput struct {
	BucketReturns       map[string]decimal.Decimal `yaml:"bucket_returns"`
	ReturnVolatility    decimal.Decimal            `yaml:"return_volatility"`
	InflationRate       decimal.Decimal            `yaml:"inflation_rate"`
	InflationVolatility decimal.Decimal            `yaml:"inflation_volatility"`
	ProjectionYears     int                        `yaml:"projection_years"`
	NumSimulations      int                        `yaml:"num_simulations"`
	Seed                int64                      `yaml:"seed"`
}

// PolicyInput selects the withdrawal policy.
type PolicyInput struct {
	Kind string `yaml:"kind"`
}

// Input is the complete simulation configuration.
type Input struct {
	Household   HouseholdInput   `yaml:"household"`
	Assumptions AssumptionsInput `yaml:"assumptions"`
	Policy      PolicyInput      `yaml:"policy"`
}

// InputParser handles parsing of input configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and validates a YAML configuration file.
func (ip *InputParser) LoadFromFile(filename string) (*Input, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse parses and validates YAML configuration bytes.
func (ip *InputParser) Parse(data []byte) (*Input, error) {
	var input Input
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := ip.Validate(&input); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &input, nil
}

// Validate checks the configuration for construction errors before any
// simulation state is built from it.
func (ip *InputParser) Validate(input *Input) error {
	if input.Household.BirthYear < 1900 || input.Household.BirthYear > time.Now().Year() {
		return fmt.Errorf("household birth_year %d out of range", input.Household.BirthYear)
	}
	if input.Household.MonthlySpending.LessThan(decimal.Zero) {
		return fmt.Errorf("monthly_spending cannot be negative")
	}
	if input.Household.IncomeTarget.LessThan(decimal.Zero) {
		return fmt.Errorf("income_target cannot be negative")
	}
	for i, account := range input.Household.Accounts {
		if _, ok := domain.ParseAccountType(account.Type); !ok {
			return fmt.Errorf("account %d (%s): unknown account type %q", i, account.Name, account.Type)
		}
		for j, lot := range account.Lots {
			if _, ok := domain.ParseAssetBucket(lot.Bucket); !ok {
				return fmt.Errorf("account %d (%s) lot %d: unknown asset bucket %q", i, account.Name, j, lot.Bucket)
			}
			if lot.Quantity.LessThan(decimal.Zero) {
				return fmt.Errorf("account %d (%s) lot %d: quantity cannot be negative", i, account.Name, j)
			}
			if lot.Price.LessThan(decimal.Zero) {
				return fmt.Errorf("account %d (%s) lot %d: price cannot be negative", i, account.Name, j)
			}
			if lot.EntryDate.IsZero() {
				return fmt.Errorf("account %d (%s) lot %d: entry_date is required", i, account.Name, j)
			}
		}
	}
	for i, debt := range input.Household.Debts {
		if debt.Balance.LessThan(decimal.Zero) {
			return fmt.Errorf("debt %d (%s): balance cannot be negative", i, debt.Name)
		}
		if debt.Rate.LessThan(decimal.NewFromFloat(-0.10)) || debt.Rate.GreaterThan(decimal.NewFromFloat(0.50)) {
			return fmt.Errorf("debt %d (%s): rate must be between -10%% and 50%%, got %s%%",
				i, debt.Name, debt.Rate.Mul(decimal.NewFromInt(100)).StringFixed(2))
		}
	}
	if input.Assumptions.ProjectionYears <= 0 {
		return fmt.Errorf("projection_years must be positive")
	}
	if input.Assumptions.NumSimulations <= 0 {
		return fmt.Errorf("num_simulations must be positive")
	}
	if input.Assumptions.InflationRate.LessThan(decimal.NewFromFloat(-0.10)) || input.Assumptions.InflationRate.GreaterThan(decimal.NewFromFloat(0.20)) {
		return fmt.Errorf("inflation rate must be between -10%% and 20%%, got %s%%",
			input.Assumptions.InflationRate.Mul(decimal.NewFromInt(100)).StringFixed(2))
	}
	for bucket := range input.Assumptions.BucketReturns {
		if _, ok := domain.ParseAssetBucket(bucket); !ok {
			return fmt.Errorf("bucket_returns: unknown asset bucket %q", bucket)
		}
	}
	switch input.Policy.Kind {
	case "", "income_threshold", "taxable_first", "rmd_only":
	default:
		return fmt.Errorf("unknown withdrawal policy %q", input.Policy.Kind)
	}
	return nil
}

// BuildBook constructs the opening book of accounts from the configuration.
func (input *Input) BuildBook() domain.BookOfAccounts {
	book := domain.BookOfAccounts{Investments: []domain.InvestmentAccount{}}
	for _, accountInput := range input.Household.Accounts {
		accountType, _ := domain.ParseAccountType(accountInput.Type)
		account := domain.NewInvestmentAccount(accountInput.Name, accountType)
		for _, lotInput := range accountInput.Lots {
			bucket, _ := domain.ParseAssetBucket(lotInput.Bucket)
			account.Lots = append(account.Lots, domain.NewLot(bucket, lotInput.EntryDate, lotInput.Quantity, lotInput.Price))
		}
		book.Investments = append(book.Investments, account)
	}
	for _, debtInput := range input.Household.Debts {
		book.Debts = append(book.Debts, domain.NewDebtAccount(debtInput.Name, debtInput.Balance, debtInput.Rate, debtInput.Payment))
	}
	return book
}

// BuildLedger constructs the opening tax ledger, income target included.
func (input *Input) BuildLedger() domain.TaxLedger {
	ledger := domain.NewTaxLedger()
	ledger.IncomeTarget = input.Household.IncomeTarget
	return ledger
}
