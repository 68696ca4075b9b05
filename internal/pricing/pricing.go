// Package pricing содержит чистые функции денежной политики магазина: стоимость доставки,
// конвертацию денег в монеты, бонусы за пополнение и расчет скидок. Все денежные суммы в донгах.
package pricing

import (
	"github.com/shopspring/decimal"
)

// CoinExchangeRate сколько донгов стоит одна монета.
const CoinExchangeRate int64 = 1000

const (
	FreeShippingThreshold    int64 = 500_000
	ReducedShippingThreshold int64 = 200_000
	ReducedShippingFee       int64 = 30_000
	StandardShippingFee      int64 = 50_000
)

// ShippingFee стоимость доставки по сумме заказа. Пороги включительные, побеждает наибольший.
func ShippingFee(totalAmount int64) int64 {
	switch {
	case totalAmount >= FreeShippingThreshold:
		return 0
	case totalAmount >= ReducedShippingThreshold:
		return ReducedShippingFee
	default:
		return StandardShippingFee
	}
}

type bonusTier struct {
	threshold int64
	bonus     int64
}

// depositBonusTiers отсортированы по убыванию порога.
var depositBonusTiers = []bonusTier{
	{threshold: 2_000_000, bonus: 400},
	{threshold: 1_000_000, bonus: 150},
	{threshold: 500_000, bonus: 50},
	{threshold: 200_000, bonus: 10},
}

// DepositCoins разбивка начисления монет за пополнение.
type DepositCoins struct {
	Base  int64
	Bonus int64
}

func (d DepositCoins) Total() int64 {
	return d.Base + d.Bonus
}

// SplitDeposit считает базовые монеты (floor(amount/1000)) и бонус по тарифной сетке.
func SplitDeposit(amount int64) DepositCoins {
	if amount <= 0 {
		return DepositCoins{}
	}
	res := DepositCoins{Base: amount / CoinExchangeRate}
	for _, tier := range depositBonusTiers {
		if amount >= tier.threshold {
			res.Bonus = tier.bonus
			break
		}
	}
	return res
}

// CoinsForDeposit сколько монет будет зачислено за пополнение на amount донгов.
func CoinsForDeposit(amount int64) int64 {
	return SplitDeposit(amount).Total()
}

// CoinsForAmount сколько монет нужно списать для оплаты amount донгов. Округление вверх, чтобы
// оплата монетами никогда не была меньше суммы заказа.
func CoinsForAmount(amount int64) int64 {
	if amount <= 0 {
		return 0
	}
	return (amount + CoinExchangeRate - 1) / CoinExchangeRate
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Discount параметры скидки промоакции. Для процентной скидки Value - процент, для фиксированной - сумма в донгах.
type Discount struct {
	Type  DiscountType
	Value decimal.Decimal
}

// CalculateDiscount размер скидки для суммы заказа. Процентная скидка округляется до донга,
// фиксированная не превышает сумму заказа. Право на скидку проверяет вызывающий.
func CalculateDiscount(d Discount, orderTotal int64) int64 {
	if orderTotal <= 0 || !d.Value.IsPositive() {
		return 0
	}
	total := decimal.NewFromInt(orderTotal)
	var discount decimal.Decimal
	switch d.Type {
	case DiscountPercentage:
		discount = total.Mul(d.Value).Div(decimal.NewFromInt(100)).Round(0)
	case DiscountFixed:
		discount = decimal.Min(d.Value.Floor(), total)
	default:
		return 0
	}
	if discount.GreaterThan(total) {
		return orderTotal
	}
	return discount.IntPart()
}

// TopUpPackage готовый пакет пополнения.
type TopUpPackage struct {
	Amount int64 `json:"amount"`
	Coins  int64 `json:"coins"`
	Bonus  int64 `json:"bonus"`
	Total  int64 `json:"total"`
}

var packageAmounts = []int64{100_000, 200_000, 500_000, 1_000_000, 2_000_000}

// TopUpPackages возвращает пакеты пополнения, рассчитанные по текущей тарифной сетке.
func TopUpPackages() []TopUpPackage {
	res := make([]TopUpPackage, len(packageAmounts))
	for i, amount := range packageAmounts {
		coins := SplitDeposit(amount)
		res[i] = TopUpPackage{
			Amount: amount,
			Coins:  coins.Base,
			Bonus:  coins.Bonus,
			Total:  coins.Total(),
		}
	}
	return res
}
