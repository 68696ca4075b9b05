package repoargs

import "github.com/fsdevblog/bookstore/internal/domain"

type CreateCoinTransaction struct {
	UserID               int64
	OrderID              *int64
	Type                 domain.TransactionType
	Amount               int64
	RealMoneyAmount      int64
	ExchangeRate         int64
	BalanceBefore        int64
	BalanceAfter         int64
	Description          string
	PaymentMethod        string
	PaymentTransactionID string
	Status               domain.TransactionStatus
}

// CoinTransactionFilter пустой Type означает транзакции всех типов.
type CoinTransactionFilter struct {
	Type domain.TransactionType
}
