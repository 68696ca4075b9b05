package service

import (
	"context"
	"io"

	"github.com/fsdevblog/bookstore/internal/locker"
	"github.com/fsdevblog/bookstore/internal/repository/repoargs"
	"github.com/fsdevblog/bookstore/internal/service/mocks"
	"github.com/fsdevblog/bookstore/pkg/uow"
	uowmocks "github.com/fsdevblog/bookstore/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
)

// repoMocks набор моков репозиториев, доступных как через UOW, так и внутри транзакции.
type repoMocks struct {
	ctrl    *gomock.Controller
	uow     *uowmocks.MockUOW
	tx      *uowmocks.MockTX
	locker  *mocks.MockLocker
	users   *mocks.MockUserRepository
	books   *mocks.MockBookRepository
	carts   *mocks.MockCartRepository
	orders  *mocks.MockOrderRepository
	coinTxs *mocks.MockCoinTransactionRepository
	promos  *mocks.MockPromotionRepository
}

func newRepoMocks(ctrl *gomock.Controller) *repoMocks {
	m := &repoMocks{
		ctrl:    ctrl,
		uow:     uowmocks.NewMockUOW(ctrl),
		tx:      uowmocks.NewMockTX(ctrl),
		locker:  mocks.NewMockLocker(ctrl),
		users:   mocks.NewMockUserRepository(ctrl),
		books:   mocks.NewMockBookRepository(ctrl),
		carts:   mocks.NewMockCartRepository(ctrl),
		orders:  mocks.NewMockOrderRepository(ctrl),
		coinTxs: mocks.NewMockCoinTransactionRepository(ctrl),
		promos:  mocks.NewMockPromotionRepository(ctrl),
	}

	repos := map[repoargs.RepositoryName]uow.Repository{
		repoargs.UserRepoName:            m.users,
		repoargs.BookRepoName:            m.books,
		repoargs.CartRepoName:            m.carts,
		repoargs.OrderRepoName:           m.orders,
		repoargs.CoinTransactionRepoName: m.coinTxs,
		repoargs.PromotionRepoName:       m.promos,
	}
	for name, repo := range repos {
		m.uow.EXPECT().GetRepository(uow.RepositoryName(name)).Return(repo, nil).AnyTimes()
		m.tx.EXPECT().Get(uow.RepositoryName(name)).Return(repo, nil).AnyTimes()
	}

	// транзакция просто вызывает fn с моком TX
	m.uow.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, m.tx)
		},
	).AnyTimes()

	m.locker.EXPECT().Acquire(gomock.Any(), gomock.Any()).
		Return(locker.ReleaseFunc(func() {}), nil).AnyTimes()

	return m
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func ptr[T any](v T) *T {
	return &v
}
