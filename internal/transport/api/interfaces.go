package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/bookstore/internal/domain"
	"github.com/fsdevblog/bookstore/internal/pricing"
	"github.com/fsdevblog/bookstore/internal/service"
)

type CartServicer interface {
	GetCart(ctx context.Context, userID int64) (*service.CartView, error)
	AddItem(ctx context.Context, userID, bookID, quantity int64) (*domain.Cart, error)
	UpdateItem(ctx context.Context, userID, bookID, quantity int64) (*domain.Cart, error)
	RemoveItem(ctx context.Context, userID, bookID int64) (*domain.Cart, error)
	ClearCart(ctx context.Context, userID int64) error
}

type OrderServicer interface {
	CreateOrder(ctx context.Context, args service.CreateOrderArgs) (*domain.Order, error)
	CancelOrder(ctx context.Context, userID, orderID int64) (*domain.Order, error)
	ListOrders(ctx context.Context, userID int64, page, limit uint) (*service.OrdersPage, error)
	GetOrderByID(ctx context.Context, userID, orderID int64) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, args service.UpdateOrderStatusArgs) (*domain.Order, error)
}

type CoinServicer interface {
	GetBalance(ctx context.Context, userID int64) (int64, error)
	Wallet(ctx context.Context, userID int64) (*service.Wallet, error)
	Packages() []pricing.TopUpPackage
	TopUp(ctx context.Context, args service.TopUpArgs) (*domain.CoinTransaction, error)
	GetUserTransactions(
		ctx context.Context,
		userID int64,
		q service.TransactionsQuery,
	) (*service.TransactionsPage, error)
	HandlePaymentCallback(ctx context.Context, args service.PaymentCallbackArgs) (*domain.CoinTransaction, error)
	AdminBonus(ctx context.Context, args service.AdminBonusArgs) (*domain.CoinTransaction, error)
}

type PromotionServicer interface {
	Quote(ctx context.Context, code string, total int64) (*service.PromotionQuote, error)
}

type ContentServicer interface {
	GetPreview(ctx context.Context, bookID int64) (*domain.Preview, error)
	GetChapter(ctx context.Context, bookID int64, number int) (*domain.PreviewChapter, error)
	CreatePreview(ctx context.Context, bookID int64, chapters []domain.PreviewChapter) (*domain.Preview, error)
	UpsertPreview(ctx context.Context, bookID int64, chapters []domain.PreviewChapter) (*domain.Preview, error)
	DeletePreview(ctx context.Context, bookID int64) error
	UpdateDigitalSettings(ctx context.Context, bookID int64, settings service.DigitalSettings) (*domain.Book, error)
	GetDigitalFile(ctx context.Context, bookID int64) (*domain.DigitalFile, error)
	RegisterDigitalFile(ctx context.Context, file domain.DigitalFile) (*domain.DigitalFile, error)
	DeleteDigitalFile(ctx context.Context, bookID int64) error
	BulkUpdateDigital(ctx context.Context, args service.BulkDigitalArgs) (int64, error)
}
