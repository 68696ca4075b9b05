package api

import (
	"time"

	"github.com/fsdevblog/bookstore/internal/domain"
	"github.com/fsdevblog/bookstore/internal/service"
	"github.com/shopspring/decimal"
)

type CartItemResponse struct {
	BookID   int64 `json:"bookId"`
	Quantity int64 `json:"quantity"`
	Price    int64 `json:"price"`
	Subtotal int64 `json:"subtotal"`
}

type CartResponse struct {
	ID          int64              `json:"id,omitempty"`
	Items       []CartItemResponse `json:"items"`
	TotalAmount int64              `json:"totalAmount"`
	ShippingFee *int64             `json:"shippingFee,omitempty"`
	FinalAmount *int64             `json:"finalAmount,omitempty"`
	UpdatedAt   *time.Time         `json:"updatedAt,omitempty"`
}

func newCartResponse(cart *domain.Cart) CartResponse {
	res := CartResponse{
		ID:          cart.ID,
		Items:       make([]CartItemResponse, len(cart.Items)),
		TotalAmount: cart.TotalAmount,
	}
	for i, item := range cart.Items {
		res.Items[i] = CartItemResponse{
			BookID:   item.BookID,
			Quantity: item.Quantity,
			Price:    item.Price,
			Subtotal: item.Price * item.Quantity,
		}
	}
	if !cart.UpdatedAt.IsZero() {
		res.UpdatedAt = &cart.UpdatedAt
	}
	return res
}

func newCartViewResponse(view *service.CartView) CartResponse {
	res := newCartResponse(view.Cart)
	res.ShippingFee = &view.ShippingFee
	res.FinalAmount = &view.FinalAmount
	return res
}

type OrderItemResponse struct {
	BookID   int64  `json:"bookId"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Quantity int64  `json:"quantity"`
	Price    int64  `json:"price"`
	Subtotal int64  `json:"subtotal"`
}

type ShippingResponse struct {
	FullName   string `json:"fullName"`
	Address    string `json:"address"`
	City       string `json:"city"`
	Phone      string `json:"phone"`
	PostalCode string `json:"postalCode"`
}

type OrderResponse struct {
	ID                int64                `json:"id"`
	OrderNumber       string               `json:"orderNumber"`
	Items             []OrderItemResponse  `json:"items"`
	Shipping          ShippingResponse     `json:"shippingAddress"`
	PaymentMethod     domain.PaymentMethod `json:"paymentMethod"`
	PaymentStatus     domain.PaymentStatus `json:"paymentStatus"`
	Status            domain.OrderStatus   `json:"status"`
	SubtotalAmount    int64                `json:"subtotalAmount"`
	DiscountAmount    int64                `json:"discountAmount"`
	TotalAmount       int64                `json:"totalAmount"`
	ShippingFee       int64                `json:"shippingFee"`
	FinalAmount       int64                `json:"finalAmount"`
	CoinAmount        int64                `json:"coinAmount,omitempty"`
	CoinTransactionID *int64               `json:"coinTransactionId,omitempty"`
	PromotionCode     string               `json:"promotionCode,omitempty"`
	Notes             string               `json:"notes,omitempty"`
	TrackingNumber    string               `json:"trackingNumber,omitempty"`
	CreatedAt         time.Time            `json:"createdAt"`
	UpdatedAt         time.Time            `json:"updatedAt"`
}

func newOrderResponse(order *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemResponse(item)
	}
	return OrderResponse{
		ID:                order.ID,
		OrderNumber:       order.OrderNumber,
		Items:             items,
		Shipping:          ShippingResponse(order.Shipping),
		PaymentMethod:     order.PaymentMethod,
		PaymentStatus:     order.PaymentStatus,
		Status:            order.Status,
		SubtotalAmount:    order.SubtotalAmount,
		DiscountAmount:    order.DiscountAmount,
		TotalAmount:       order.TotalAmount,
		ShippingFee:       order.ShippingFee,
		FinalAmount:       order.FinalAmount,
		CoinAmount:        order.CoinAmount,
		CoinTransactionID: order.CoinTransactionID,
		PromotionCode:     order.PromotionCode,
		Notes:             order.Notes,
		TrackingNumber:    order.TrackingNumber,
		CreatedAt:         order.CreatedAt,
		UpdatedAt:         order.UpdatedAt,
	}
}

type OrdersPaginationResponse struct {
	CurrentPage uint  `json:"currentPage"`
	TotalPages  uint  `json:"totalPages"`
	TotalOrders int64 `json:"totalOrders"`
	Limit       uint  `json:"limit"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}

type OrdersResponse struct {
	Orders     []OrderResponse          `json:"orders"`
	Pagination OrdersPaginationResponse `json:"pagination"`
}

type TransactionResponse struct {
	ID                   int64                    `json:"id"`
	OrderID              *int64                   `json:"orderId,omitempty"`
	Type                 domain.TransactionType   `json:"type"`
	Amount               int64                    `json:"amount"`
	RealMoneyAmount      int64                    `json:"realMoneyAmount,omitempty"`
	ExchangeRate         int64                    `json:"exchangeRate,omitempty"`
	BalanceBefore        int64                    `json:"balanceBefore"`
	BalanceAfter         int64                    `json:"balanceAfter"`
	Description          string                   `json:"description"`
	PaymentMethod        string                   `json:"paymentMethod,omitempty"`
	PaymentTransactionID string                   `json:"paymentTransactionId,omitempty"`
	Status               domain.TransactionStatus `json:"status"`
	CreatedAt            time.Time                `json:"createdAt"`
}

func newTransactionResponse(t *domain.CoinTransaction) TransactionResponse {
	return TransactionResponse{
		ID:                   t.ID,
		OrderID:              t.OrderID,
		Type:                 t.Type,
		Amount:               t.Amount,
		RealMoneyAmount:      t.RealMoneyAmount,
		ExchangeRate:         t.ExchangeRate,
		BalanceBefore:        t.BalanceBefore,
		BalanceAfter:         t.BalanceAfter,
		Description:          t.Description,
		PaymentMethod:        t.PaymentMethod,
		PaymentTransactionID: t.PaymentTransactionID,
		Status:               t.Status,
		CreatedAt:            t.CreatedAt,
	}
}

func newTransactionsResponse(txs []domain.CoinTransaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txs))
	for i := range txs {
		res[i] = newTransactionResponse(&txs[i])
	}
	return res
}

type TransactionsPaginationResponse struct {
	CurrentPage       uint  `json:"currentPage"`
	TotalPages        uint  `json:"totalPages"`
	TotalTransactions int64 `json:"totalTransactions"`
	Limit             uint  `json:"limit"`
	HasNext           bool  `json:"hasNext"`
	HasPrev           bool  `json:"hasPrev"`
}

type PromotionResponse struct {
	Code            string              `json:"code"`
	Description     string              `json:"description"`
	DiscountType    domain.DiscountType `json:"discountType"`
	DiscountValue   decimal.Decimal     `json:"discountValue"`
	MinimumPurchase int64               `json:"minimumPurchase"`
	EndDate         time.Time           `json:"endDate"`
	Valid           bool                `json:"valid"`
	Applicable      bool                `json:"applicable"`
	Discount        int64               `json:"discount"`
}

type PreviewChapterResponse struct {
	Number  int    `json:"chapterNumber"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type PreviewResponse struct {
	BookID    int64                    `json:"bookId"`
	Chapters  []PreviewChapterResponse `json:"chapters"`
	UpdatedAt time.Time                `json:"updatedAt"`
}

func newPreviewResponse(p *domain.Preview) PreviewResponse {
	chapters := make([]PreviewChapterResponse, len(p.Chapters))
	for i, ch := range p.Chapters {
		chapters[i] = PreviewChapterResponse(ch)
	}
	return PreviewResponse{BookID: p.BookID, Chapters: chapters, UpdatedAt: p.UpdatedAt}
}

type DigitalBookResponse struct {
	ID                 int64 `json:"id"`
	IsDigitalAvailable bool  `json:"isDigitalAvailable"`
	HasPreview         bool  `json:"hasPreview"`
	CoinPrice          int64 `json:"coinPrice"`
}

type DigitalFileResponse struct {
	BookID      int64     `json:"bookId"`
	Filename    string    `json:"filename"`
	Path        string    `json:"path"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploadedAt"`
}
