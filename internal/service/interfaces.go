package service

import (
	"context"

	"github.com/fsdevblog/bookstore/internal/domain"
	"github.com/fsdevblog/bookstore/internal/locker"
	"github.com/fsdevblog/bookstore/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.User, error)
	UpdateCoinBalance(ctx context.Context, id int64, balance int64) error
}

type BookRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Book, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Book, error)
	SetHasPreview(ctx context.Context, id int64, hasPreview bool) error
	UpdateDigitalSettings(ctx context.Context, id int64, args repoargs.UpdateDigitalSettings) (*domain.Book, error)
	BulkUpdateDigitalSettings(ctx context.Context, ids []int64, args repoargs.UpdateDigitalSettings) (int64, error)
}

type CartRepository interface {
	FindByUserID(ctx context.Context, userID int64) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
	DeleteByUserID(ctx context.Context, userID int64) error
}

type OrderRepository interface {
	Create(ctx context.Context, args repoargs.CreateOrder) (*domain.Order, error)
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.Order, error)
	FindByIDForUser(ctx context.Context, id, userID int64) (*domain.Order, error)
	ListByUserID(ctx context.Context, userID int64, page repoargs.Page) ([]domain.Order, error)
	CountByUserID(ctx context.Context, userID int64) (int64, error)
	UpdatePayment(ctx context.Context, args repoargs.UpdateOrderPayment) error
	UpdateStatus(ctx context.Context, args repoargs.UpdateOrderStatus) (*domain.Order, error)
}

type CoinTransactionRepository interface {
	Create(ctx context.Context, args repoargs.CreateCoinTransaction) (*domain.CoinTransaction, error)
	FindByID(ctx context.Context, id int64) (*domain.CoinTransaction, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.CoinTransaction, error)
	FindByPaymentTransactionID(ctx context.Context, paymentTransactionID string) (*domain.CoinTransaction, error)
	ListByUserID(
		ctx context.Context,
		userID int64,
		filter repoargs.CoinTransactionFilter,
		page repoargs.Page,
	) ([]domain.CoinTransaction, error)
	CountByUserID(ctx context.Context, userID int64, filter repoargs.CoinTransactionFilter) (int64, error)
	ListPending(ctx context.Context, txType domain.TransactionType, limit uint) ([]domain.CoinTransaction, error)
	UpdateStatus(ctx context.Context, id int64, status domain.TransactionStatus) error
}

type PromotionRepository interface {
	FindByCode(ctx context.Context, code string) (*domain.Promotion, error)
	FindByCodeForUpdate(ctx context.Context, code string) (*domain.Promotion, error)
	IncrementUsage(ctx context.Context, id int64) error
}

type PreviewRepository interface {
	FindByBookID(ctx context.Context, bookID int64) (*domain.Preview, error)
	Create(ctx context.Context, bookID int64, chapters []domain.PreviewChapter) (*domain.Preview, error)
	Update(ctx context.Context, bookID int64, chapters []domain.PreviewChapter) (*domain.Preview, error)
	DeleteByBookID(ctx context.Context, bookID int64) error
}

type DigitalFileRepository interface {
	FindByBookID(ctx context.Context, bookID int64) (*domain.DigitalFile, error)
	Save(ctx context.Context, file domain.DigitalFile) (*domain.DigitalFile, error)
	DeleteByBookID(ctx context.Context, bookID int64) error
}

// Locker блокировка по ключу, сериализующая операции над корзиной и кошельком одного пользователя.
type Locker interface {
	Acquire(ctx context.Context, key string) (locker.ReleaseFunc, error)
}
