package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestShippingFee(t *testing.T) {
	cases := []struct {
		name  string
		total int64
		want  int64
	}{
		{name: "zero", total: 0, want: StandardShippingFee},
		{name: "just below reduced", total: 199_999, want: 50_000},
		{name: "reduced boundary", total: 200_000, want: 30_000},
		{name: "just below free", total: 499_999, want: 30_000},
		{name: "free boundary", total: 500_000, want: 0},
		{name: "large order", total: 3_000_000, want: 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, ShippingFee(c.total))
		})
	}
}

func TestCoinsForDeposit(t *testing.T) {
	cases := []struct {
		amount int64
		want   int64
	}{
		{amount: 0, want: 0},
		{amount: 999, want: 0},
		{amount: 100_000, want: 100},
		{amount: 199_999, want: 199},
		{amount: 200_000, want: 210},
		{amount: 250_000, want: 260},
		{amount: 500_000, want: 550},
		{amount: 1_000_000, want: 1150},
		{amount: 2_000_000, want: 2400},
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, CoinsForDeposit(c.amount), "amount %d", c.amount)
	}
}

func TestCoinsForAmount(t *testing.T) {
	assert.Equal(t, int64(330), CoinsForAmount(330_000))
	assert.Equal(t, int64(331), CoinsForAmount(330_001))
	assert.Equal(t, int64(1), CoinsForAmount(1))
	assert.Equal(t, int64(0), CoinsForAmount(0))
}

func TestCalculateDiscount(t *testing.T) {
	cases := []struct {
		name     string
		discount Discount
		total    int64
		want     int64
	}{
		{
			name:     "percentage",
			discount: Discount{Type: DiscountPercentage, Value: decimal.NewFromInt(10)},
			total:    300_000,
			want:     30_000,
		},
		{
			name:     "percentage rounds half up",
			discount: Discount{Type: DiscountPercentage, Value: decimal.NewFromInt(15)},
			total:    10_003,
			want:     1500,
		},
		{
			name:     "fractional percentage",
			discount: Discount{Type: DiscountPercentage, Value: decimal.RequireFromString("12.5")},
			total:    200_000,
			want:     25_000,
		},
		{
			name:     "fixed below total",
			discount: Discount{Type: DiscountFixed, Value: decimal.NewFromInt(50_000)},
			total:    300_000,
			want:     50_000,
		},
		{
			name:     "fixed capped by total",
			discount: Discount{Type: DiscountFixed, Value: decimal.NewFromInt(500_000)},
			total:    300_000,
			want:     300_000,
		},
		{
			name:     "unknown type",
			discount: Discount{Type: "bogus", Value: decimal.NewFromInt(10)},
			total:    300_000,
			want:     0,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, CalculateDiscount(c.discount, c.total))
		})
	}
}

func TestTopUpPackages(t *testing.T) {
	packages := TopUpPackages()
	assert.Len(t, packages, 5)
	assert.Equal(t, TopUpPackage{Amount: 100_000, Coins: 100, Bonus: 0, Total: 100}, packages[0])
	assert.Equal(t, TopUpPackage{Amount: 2_000_000, Coins: 2000, Bonus: 400, Total: 2400}, packages[4])
}
