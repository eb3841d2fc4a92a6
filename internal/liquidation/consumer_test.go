package liquidation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/finsim/householdsim/internal/domain"
)

func TestConsumeLotPartial(t *testing.T) {
	lot := domain.NewLot(domain.BucketGrowth, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		decimal.NewFromInt(10), decimal.NewFromInt(100))
	lot.CostBasis = decimal.NewFromInt(500)

	realized, basisRealized := ConsumeLot(&lot, decimal.NewFromInt(500))

	assert.True(t, realized.Equal(decimal.NewFromInt(500)))
	assert.True(t, basisRealized.Equal(decimal.NewFromInt(250)), "Basis of realized portion should be proportional")
	assert.True(t, lot.Open, "Partially consumed lot stays open")
	assert.True(t, lot.Quantity.Equal(decimal.NewFromInt(5)), "got %s", lot.Quantity)
	assert.True(t, lot.CurrentValue().Equal(decimal.NewFromInt(500)))
	assert.True(t, lot.CostBasis.Equal(decimal.NewFromInt(250)), "Remaining basis should be reduced proportionally")
}

func TestConsumeLotFull(t *testing.T) {
	lot := domain.NewLot(domain.BucketGrowth, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		decimal.NewFromInt(10), decimal.NewFromInt(100))
	lot.CostBasis = decimal.NewFromInt(500)

	realized, basisRealized := ConsumeLot(&lot, decimal.NewFromInt(1000))

	assert.True(t, realized.Equal(decimal.NewFromInt(1000)))
	assert.True(t, basisRealized.Equal(decimal.NewFromInt(500)))
	assert.False(t, lot.Open, "Fully consumed lot is closed")
	assert.True(t, lot.Quantity.IsZero())
	assert.True(t, lot.Price.Equal(decimal.NewFromInt(100)), "Price is retained for audit")
}

func TestConsumeLotPartialNoGainLotKeepsBasisExact(t *testing.T) {
	// Basis equals value, so the realized portion's basis must equal the
	// realized dollars exactly, with no division-precision residue.
	lot := domain.NewLot(domain.BucketGrowth, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		decimal.NewFromInt(990), decimal.NewFromInt(100))

	realized, basisRealized := ConsumeLot(&lot, decimal.NewFromInt(1000))

	assert.True(t, realized.Equal(decimal.NewFromInt(1000)))
	assert.True(t, basisRealized.Equal(decimal.NewFromInt(1000)), "got %s", basisRealized)
	assert.True(t, lot.CostBasis.Equal(decimal.NewFromInt(98000)), "got %s", lot.CostBasis)
}

func TestConsumeLotNeedExceedsValue(t *testing.T) {
	lot := domain.NewLot(domain.BucketStableValue, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		decimal.NewFromInt(2), decimal.NewFromInt(50))

	realized, _ := ConsumeLot(&lot, decimal.NewFromInt(10000))

	assert.True(t, realized.Equal(decimal.NewFromInt(100)), "Realizes no more than the lot's value")
	assert.False(t, lot.Open)
}
