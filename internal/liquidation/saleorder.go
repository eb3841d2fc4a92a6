package liquidation

import (
	"github.com/finsim/householdsim/internal/domain"
)

// SaleOrderEntry is one liquidation pass: sell lots of Bucket held in the
// account of AccountType.
type SaleOrderEntry struct {
	Bucket      domain.AssetBucket
	AccountType domain.AccountType
}

// CreateSalesOrderAccountMajor builds a sale order that exhausts every asset
// bucket within an account type before moving to the next account type.
// Either input may be empty, yielding an empty order.
func CreateSalesOrderAccountMajor(buckets []domain.AssetBucket, accountTypes []domain.AccountType) []SaleOrderEntry {
	order := make([]SaleOrderEntry, 0, len(buckets)*len(accountTypes))
	for _, accountType := range accountTypes {
		for _, bucket := range buckets {
			order = append(order, SaleOrderEntry{Bucket: bucket, AccountType: accountType})
		}
	}
	return order
}

// CreateSalesOrderBucketMajor builds a sale order that exhausts every account
// type within an asset bucket before moving to the next bucket.
func CreateSalesOrderBucketMajor(buckets []domain.AssetBucket, accountTypes []domain.AccountType) []SaleOrderEntry {
	order := make([]SaleOrderEntry, 0, len(buckets)*len(accountTypes))
	for _, bucket := range buckets {
		for _, accountType := range accountTypes {
			order = append(order, SaleOrderEntry{Bucket: bucket, AccountType: accountType})
		}
	}
	return order
}
