package pgrepo

import (
	"context"

	"github.com/fsdevblog/bookstore/internal/domain"
	"github.com/fsdevblog/bookstore/internal/repository/repoargs"
	"github.com/fsdevblog/bookstore/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const coinTransactionColumns = `id, created_at, updated_at, user_id, order_id, type, amount,
	real_money_amount, exchange_rate, balance_before, balance_after, description, payment_method,
	payment_transaction_id, status`

type CoinTransactionRepository struct {
	db uow.DBTX
}

func NewCoinTransactionRepository(db uow.DBTX) *CoinTransactionRepository {
	return &CoinTransactionRepository{db: db}
}

// Create добавляет запись в журнал монет. Несогласованные balance_before/balance_after отклоняются
// базой с ошибкой domain.ErrCheckViolation.
func (c *CoinTransactionRepository) Create(
	ctx context.Context,
	args repoargs.CreateCoinTransaction,
) (*domain.CoinTransaction, error) {
	row := c.db.QueryRow(ctx, `
		INSERT INTO coin_transactions (user_id, order_id, type, amount, real_money_amount, exchange_rate,
			balance_before, balance_after, description, payment_method, payment_transaction_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING `+coinTransactionColumns,
		args.UserID, args.OrderID, args.Type, args.Amount, args.RealMoneyAmount, args.ExchangeRate,
		args.BalanceBefore, args.BalanceAfter, args.Description, args.PaymentMethod,
		nullIfEmpty(args.PaymentTransactionID), args.Status,
	)
	tx, err := scanCoinTransaction(row)
	if err != nil {
		return nil, convertErr(err, "creating %s transaction for user %d", args.Type, args.UserID)
	}
	return &tx, nil
}

func (c *CoinTransactionRepository) FindByID(ctx context.Context, id int64) (*domain.CoinTransaction, error) {
	row := c.db.QueryRow(ctx, `SELECT `+coinTransactionColumns+` FROM coin_transactions WHERE id = $1`, id)
	tx, err := scanCoinTransaction(row)
	if err != nil {
		return nil, convertErr(err, "finding coin transaction by id %d", id)
	}
	return &tx, nil
}

func (c *CoinTransactionRepository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.CoinTransaction, error) {
	row := c.db.QueryRow(ctx,
		`SELECT `+coinTransactionColumns+` FROM coin_transactions WHERE id = $1 FOR UPDATE`, id)
	tx, err := scanCoinTransaction(row)
	if err != nil {
		return nil, convertErr(err, "locking coin transaction with id %d", id)
	}
	return &tx, nil
}

// FindByPaymentTransactionID ищет транзакцию по идентификатору платежного шлюза.
func (c *CoinTransactionRepository) FindByPaymentTransactionID(
	ctx context.Context,
	paymentTransactionID string,
) (*domain.CoinTransaction, error) {
	row := c.db.QueryRow(ctx,
		`SELECT `+coinTransactionColumns+` FROM coin_transactions WHERE payment_transaction_id = $1`,
		paymentTransactionID,
	)
	tx, err := scanCoinTransaction(row)
	if err != nil {
		return nil, convertErr(err, "finding coin transaction with payment id `%s`", paymentTransactionID)
	}
	return &tx, nil
}

// ListByUserID история транзакций пользователя, новые первыми.
func (c *CoinTransactionRepository) ListByUserID(
	ctx context.Context,
	userID int64,
	filter repoargs.CoinTransactionFilter,
	page repoargs.Page,
) ([]domain.CoinTransaction, error) {
	limit, limitErr := safeConvertUintToInt64(page.Limit)
	if limitErr != nil {
		return nil, convertErr(limitErr, "converting limit to int64")
	}
	offset, offsetErr := safeConvertUintToInt64(page.Offset)
	if offsetErr != nil {
		return nil, convertErr(offsetErr, "converting offset to int64")
	}

	rows, err := c.db.Query(ctx, `
		SELECT `+coinTransactionColumns+` FROM coin_transactions
		WHERE user_id = $1 AND ($2::varchar IS NULL OR type = $2)
		ORDER BY created_at DESC, id DESC
		LIMIT $3 OFFSET $4`,
		userID, nullIfEmpty(string(filter.Type)), limit, offset,
	)
	if err != nil {
		return nil, convertErr(err, "listing coin transactions of user %d", userID)
	}
	txs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CoinTransaction, error) {
		return scanCoinTransaction(row)
	})
	if err != nil {
		return nil, convertErr(err, "scanning coin transactions of user %d", userID)
	}
	return txs, nil
}

func (c *CoinTransactionRepository) CountByUserID(
	ctx context.Context,
	userID int64,
	filter repoargs.CoinTransactionFilter,
) (int64, error) {
	var count int64
	err := c.db.QueryRow(ctx,
		`SELECT count(*) FROM coin_transactions WHERE user_id = $1 AND ($2::varchar IS NULL OR type = $2)`,
		userID, nullIfEmpty(string(filter.Type)),
	).Scan(&count)
	if err != nil {
		return 0, convertErr(err, "counting coin transactions of user %d", userID)
	}
	return count, nil
}

// ListPending транзакции заданного типа в статусе pending, самые давние первыми.
func (c *CoinTransactionRepository) ListPending(
	ctx context.Context,
	txType domain.TransactionType,
	limit uint,
) ([]domain.CoinTransaction, error) {
	safeLimit, limitErr := safeConvertUintToInt64(limit)
	if limitErr != nil {
		return nil, convertErr(limitErr, "converting limit to int64")
	}
	rows, err := c.db.Query(ctx, `
		SELECT `+coinTransactionColumns+` FROM coin_transactions
		WHERE type = $1 AND status = 'pending'
		ORDER BY updated_at
		LIMIT $2`,
		txType, safeLimit,
	)
	if err != nil {
		return nil, convertErr(err, "listing pending %s transactions", txType)
	}
	txs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CoinTransaction, error) {
		return scanCoinTransaction(row)
	})
	if err != nil {
		return nil, convertErr(err, "scanning pending %s transactions", txType)
	}
	return txs, nil
}

func (c *CoinTransactionRepository) UpdateStatus(
	ctx context.Context,
	id int64,
	status domain.TransactionStatus,
) error {
	tag, err := c.db.Exec(ctx,
		`UPDATE coin_transactions SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return convertErr(err, "updating status of coin transaction %d", id)
	}
	return notFoundIfNoRows(tag, "updating status of coin transaction %d", id)
}

func scanCoinTransaction(row pgx.Row) (domain.CoinTransaction, error) {
	var (
		tx          domain.CoinTransaction
		paymentTxID *string
	)
	err := row.Scan(
		&tx.ID,
		&tx.CreatedAt,
		&tx.UpdatedAt,
		&tx.UserID,
		&tx.OrderID,
		&tx.Type,
		&tx.Amount,
		&tx.RealMoneyAmount,
		&tx.ExchangeRate,
		&tx.BalanceBefore,
		&tx.BalanceAfter,
		&tx.Description,
		&tx.PaymentMethod,
		&paymentTxID,
		&tx.Status,
	)
	if err != nil {
		return domain.CoinTransaction{}, err //nolint:wrapcheck
	}
	tx.PaymentTransactionID = derefString(paymentTxID)
	return tx, nil
}
