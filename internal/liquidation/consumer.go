package liquidation

import (
	"github.com/shopspring/decimal"

	"github.com/finsim/householdsim/internal/domain"
)

// ConsumeLot realizes up to remainingNeeded dollars from one eligible lot the
// caller owns. A fully consumed lot is closed with zero quantity; its price
// is retained as a historical artifact. A partially consumed lot stays open
// with quantity reduced by realized/price and cost basis reduced in the same
// proportion. It returns the dollars realized and the cost basis attributable
// to the realized portion.
func ConsumeLot(lot *domain.Lot, remainingNeeded decimal.Decimal) (realized, basisRealized decimal.Decimal) {
	value := lot.CurrentValue()
	if value.LessThanOrEqual(remainingNeeded) {
		realized = value
		basisRealized = lot.CostBasis
		lot.Quantity = decimal.Zero
		lot.CostBasis = decimal.Zero
		lot.Open = false
		return realized, basisRealized
	}

	realized = remainingNeeded
	// Multiply before dividing: realized/value truncates at division
	// precision, which would leave a no-gain lot with a residual gain.
	basisRealized = lot.CostBasis.Mul(realized).Div(value)
	lot.Quantity = lot.Quantity.Sub(realized.Div(lot.Price))
	lot.CostBasis = lot.CostBasis.Sub(basisRealized)
	return realized, basisRealized
}
