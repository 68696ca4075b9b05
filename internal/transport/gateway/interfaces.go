package gateway

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/bookstore/internal/domain"
	"github.com/fsdevblog/bookstore/internal/service"
	"github.com/fsdevblog/bookstore/internal/transport/gateway/client"
)

type Client interface {
	GetPayment(ctx context.Context, paymentID string) (*client.Response, error)
}

type Servicer interface {
	PendingDeposits(ctx context.Context, limit uint) ([]domain.CoinTransaction, error)
	ReconcileDeposits(ctx context.Context, updates []service.DepositUpdate) error
}
