package domain

import (
	"slices"
	"strings"
	"time"

	"github.com/fsdevblog/bookstore/internal/pricing"
)

// IsValid промоакция активна, сейчас внутри периода действия и лимит использований не исчерпан.
func (p Promotion) IsValid(now time.Time) bool {
	if !p.IsActive || now.Before(p.StartDate) || now.After(p.EndDate) {
		return false
	}
	return p.UsageLimit == nil || p.CurrentUsage < *p.UsageLimit
}

// CanApplyTo проверяет применимость к заказу. Если промоакция не ограничена книгами или категориями,
// она применяется к любому заказу от минимальной суммы.
func (p Promotion) CanApplyTo(subtotal int64, books []Book, now time.Time) bool {
	if !p.IsValid(now) || subtotal < p.MinimumPurchase {
		return false
	}
	if len(p.ApplicableBooks) == 0 && len(p.ApplicableCategories) == 0 {
		return true
	}
	for _, b := range books {
		if slices.Contains(p.ApplicableBooks, b.ID) || slices.Contains(p.ApplicableCategories, b.Category) {
			return true
		}
	}
	return false
}

func (p Promotion) CalculateDiscount(orderTotal int64) int64 {
	return pricing.CalculateDiscount(pricing.Discount{Type: p.DiscountType, Value: p.DiscountValue}, orderTotal)
}

// NormalizePromotionCode коды промоакций хранятся в верхнем регистре.
func NormalizePromotionCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
