package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssetBucket is the allocation class of a lot, independent of the tax
// treatment of the account that holds it.
type AssetBucket int

const (
	BucketGrowth AssetBucket = iota
	BucketStableValue
	BucketCashEquivalent
)

func (b AssetBucket) String() string {
	switch b {
	case BucketGrowth:
		return "growth"
	case BucketStableValue:
		return "stable_value"
	case BucketCashEquivalent:
		return "cash_equivalent"
	default:
		return "unknown"
	}
}

// ParseAssetBucket converts a config string into an AssetBucket.
func ParseAssetBucket(s string) (AssetBucket, bool) {
	switch s {
	case "growth":
		return BucketGrowth, true
	case "stable_value":
		return BucketStableValue, true
	case "cash_equivalent":
		return BucketCashEquivalent, true
	default:
		return BucketGrowth, false
	}
}

// Lot represents one purchased block of an investment with its own entry
// date, quantity, price, and cost basis.
type Lot struct {
	ID        string          `yaml:"id" json:"id"`
	Open      bool            `yaml:"open" json:"open"`
	EntryDate time.Time       `yaml:"entry_date" json:"entry_date"`
	Quantity  decimal.Decimal `yaml:"quantity" json:"quantity"`
	Price     decimal.Decimal `yaml:"price" json:"price"`
	CostBasis decimal.Decimal `yaml:"cost_basis" json:"cost_basis"`
	Bucket    AssetBucket     `yaml:"bucket" json:"bucket"`
}

// NewLot creates an open lot with cost basis equal to quantity times price.
func NewLot(bucket AssetBucket, entryDate time.Time, quantity, price decimal.Decimal) Lot {
	return Lot{
		ID:        uuid.New().String(),
		Open:      true,
		EntryDate: entryDate,
		Quantity:  quantity,
		Price:     price,
		CostBasis: quantity.Mul(price),
		Bucket:    bucket,
	}
}

// CurrentValue returns price times quantity. A closed lot retains its price
// for audit but has zero quantity, so its value is zero.
func (l Lot) CurrentValue() decimal.Decimal {
	return l.Price.Mul(l.Quantity)
}
