package domain

import "github.com/fsdevblog/bookstore/internal/pricing"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// orderTransitions таблица допустимых переходов статуса заказа. Всё, чего нет в таблице, запрещено.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped},
	OrderStatusShipped:    {OrderStatusDelivered},
}

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo проверяет, разрешен ли переход из текущего статуса в next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

func (s PaymentStatus) IsValid() bool {
	return s == PaymentStatusPending || s == PaymentStatusPaid || s == PaymentStatusFailed
}

type PaymentMethod string

const (
	PaymentMethodCashOnDelivery PaymentMethod = "cash_on_delivery"
	PaymentMethodBankTransfer   PaymentMethod = "bank_transfer"
	PaymentMethodCreditCard     PaymentMethod = "credit_card"
	PaymentMethodCoin           PaymentMethod = "coin"
)

// ParsePaymentMethod разбирает способ оплаты заказа. Пустая строка означает оплату при получении.
func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	if raw == "" {
		return PaymentMethodCashOnDelivery, nil
	}
	switch m := PaymentMethod(raw); m {
	case PaymentMethodCashOnDelivery, PaymentMethodBankTransfer, PaymentMethodCreditCard, PaymentMethodCoin:
		return m, nil
	}
	return "", ErrInvalidPaymentMethod
}

type TransactionType string

const (
	TransactionTypeDeposit TransactionType = "deposit"
	TransactionTypeBonus   TransactionType = "bonus"
	TransactionTypeSpend   TransactionType = "spend"
	TransactionTypeRefund  TransactionType = "refund"
)

func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeDeposit, TransactionTypeBonus, TransactionTypeSpend, TransactionTypeRefund:
		return true
	}
	return false
}

// Sign знак, с которым сумма транзакции данного типа меняет баланс.
func (t TransactionType) Sign() int64 {
	if t == TransactionTypeSpend {
		return -1
	}
	return 1
}

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

type DiscountType = pricing.DiscountType

const (
	DiscountTypePercentage = pricing.DiscountPercentage
	DiscountTypeFixed      = pricing.DiscountFixed
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)
