package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsdevblog/bookstore/internal/pricing"
	"github.com/google/uuid"
)

// NewOrderNumber генерирует номер заказа вида ORD-<unix ms>-<8 hex>.
func NewOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), suffix)
}

// ApplyAmounts выставляет суммы заказа: итог после скидки, доставку по итогу и финальную сумму.
// Финальная сумма всегда вычисляется, а не принимается извне.
func (o *Order) ApplyAmounts(subtotal, discount int64) {
	if discount > subtotal {
		discount = subtotal
	}
	o.SubtotalAmount = subtotal
	o.DiscountAmount = discount
	o.TotalAmount = subtotal - discount
	o.ShippingFee = pricing.ShippingFee(o.TotalAmount)
	o.FinalAmount = o.TotalAmount + o.ShippingFee
}

func (o *Order) IsPaidWithCoins() bool {
	return o.PaymentMethod == PaymentMethodCoin && o.PaymentStatus == PaymentStatusPaid
}

// SnapshotItems превращает строки корзины в неизменяемые позиции заказа. books - найденные книги,
// если какой-то книги нет, возвращается ErrBookNotAvailable.
func SnapshotItems(cart Cart, books []Book) ([]OrderItem, int64, error) {
	byID := make(map[int64]Book, len(books))
	for _, b := range books {
		byID[b.ID] = b
	}

	items := make([]OrderItem, 0, len(cart.Items))
	var subtotal int64
	for _, line := range cart.Items {
		book, ok := byID[line.BookID]
		if !ok {
			return nil, 0, ErrBookNotAvailable.WithMessage("book #%d is no longer available", line.BookID)
		}
		item := OrderItem{
			BookID:   book.ID,
			Title:    book.Title,
			Author:   book.Author,
			Quantity: line.Quantity,
			Price:    line.Price,
			Subtotal: line.Price * line.Quantity,
		}
		subtotal += item.Subtotal
		items = append(items, item)
	}
	return items, subtotal, nil
}

// ResolveShipping берет адрес из input, а недостающие поля - из профиля пользователя.
func ResolveShipping(input ShippingInfo, user User) (ShippingInfo, error) {
	res := ShippingInfo{
		FullName:   firstNonBlank(input.FullName, user.FullName),
		Address:    firstNonBlank(input.Address, user.Address),
		City:       firstNonBlank(input.City, user.City),
		Phone:      firstNonBlank(input.Phone, user.Phone),
		PostalCode: firstNonBlank(input.PostalCode, user.PostalCode),
	}
	if res.FullName == "" || res.Address == "" || res.City == "" || res.Phone == "" {
		return ShippingInfo{}, ErrInvalidShipping
	}
	return res, nil
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
