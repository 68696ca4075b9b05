package repoargs

import "github.com/fsdevblog/bookstore/internal/domain"

// CreateOrder данные нового заказа. Номер заказа назначает репозиторий при вставке.
type CreateOrder struct {
	UserID         int64
	Items          []domain.OrderItem
	Shipping       domain.ShippingInfo
	PaymentMethod  domain.PaymentMethod
	PaymentStatus  domain.PaymentStatus
	Status         domain.OrderStatus
	SubtotalAmount int64
	DiscountAmount int64
	TotalAmount    int64
	ShippingFee    int64
	FinalAmount    int64
	PromotionCode  string
	Notes          string
}

type UpdateOrderPayment struct {
	ID                int64
	PaymentStatus     domain.PaymentStatus
	CoinAmount        int64
	CoinTransactionID *int64
}

type UpdateOrderStatus struct {
	ID             int64
	Status         domain.OrderStatus
	PaymentStatus  domain.PaymentStatus
	TrackingNumber string
}
