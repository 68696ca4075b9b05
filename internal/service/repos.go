package service

import (
	"github.com/fsdevblog/bookstore/internal/repository/repoargs"
	"github.com/fsdevblog/bookstore/pkg/uow"
)

func usersIn(tx uow.TX) (UserRepository, error) {
	return uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
}

func booksIn(tx uow.TX) (BookRepository, error) {
	return uow.GetAs[BookRepository](tx, uow.RepositoryName(repoargs.BookRepoName))
}

func cartsIn(tx uow.TX) (CartRepository, error) {
	return uow.GetAs[CartRepository](tx, uow.RepositoryName(repoargs.CartRepoName))
}

func ordersIn(tx uow.TX) (OrderRepository, error) {
	return uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
}

func coinTransactionsIn(tx uow.TX) (CoinTransactionRepository, error) {
	return uow.GetAs[CoinTransactionRepository](tx, uow.RepositoryName(repoargs.CoinTransactionRepoName))
}

func promotionsIn(tx uow.TX) (PromotionRepository, error) {
	return uow.GetAs[PromotionRepository](tx, uow.RepositoryName(repoargs.PromotionRepoName))
}
