package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/fsdevblog/bookstore/internal/domain"
	"github.com/fsdevblog/bookstore/internal/pricing"
	"github.com/fsdevblog/bookstore/internal/repository/repoargs"
	"github.com/fsdevblog/bookstore/pkg/uow"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	recentTransactionsLimit = 10
	adminBonusPaymentMethod = "admin_bonus"

	defaultReconcileTimeout = 3 * time.Second
)

// topUpMethods способы оплаты пополнения через платежный шлюз.
var topUpMethods = []string{"momo", "vnpay", "bank_transfer"}

// CoinService журнал монет и кошелек пользователя. Каждая запись журнала меняет баланс пользователя
// в той же транзакции, в которой создается.
type CoinService struct {
	uow      uow.UOW
	locker   Locker
	userRepo UserRepository
	txRepo   CoinTransactionRepository
	l        *logrus.Entry

	deferDeposits    bool
	reconcileTimeout time.Duration
	now              func() time.Time
}

func NewCoinService(u uow.UOW, l Locker, logger *logrus.Logger) (*CoinService, error) {
	userRepo, err := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	txRepo, err := uow.GetRepositoryAs[CoinTransactionRepository](
		u, uow.RepositoryName(repoargs.CoinTransactionRepoName),
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &CoinService{
		uow:      u,
		locker:   l,
		userRepo: userRepo,
		txRepo:   txRepo,
		l:        logger.WithField("component", "CoinService"),

		reconcileTimeout: defaultReconcileTimeout,
		now:              time.Now,
	}, nil
}

// SetDeferredDeposits пополнения создаются в статусе pending и ждут подтверждения платежного шлюза.
func (c *CoinService) SetDeferredDeposits(deferred bool) *CoinService {
	c.deferDeposits = deferred
	return c
}

type ApplyTransactionArgs struct {
	UserID               int64
	OrderID              *int64
	Type                 domain.TransactionType
	Amount               int64
	RealMoneyAmount      int64
	ExchangeRate         int64
	Description          string
	PaymentMethod        string
	PaymentTransactionID string
	// Status пустой статус означает completed.
	Status domain.TransactionStatus
}

// ApplyTransaction добавляет запись в журнал и обновляет баланс пользователя внутри транзакции tx.
//
// Алгоритм работы:
//  1. Блокирует строку пользователя и читает текущий баланс.
//  2. Считает новый баланс по знаку типа транзакции, отрицательный баланс отклоняется с
//     domain.ErrInsufficientBalance.
//  3. Пишет запись журнала со снимками баланса до и после, затем сохраняет новый баланс.
func (c *CoinService) ApplyTransaction(
	ctx context.Context,
	tx uow.TX,
	args ApplyTransactionArgs,
) (*domain.CoinTransaction, error) {
	if !args.Type.IsValid() {
		return nil, domain.ErrInvalidTransactionType
	}
	if args.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if args.Status == "" {
		args.Status = domain.TransactionStatusCompleted
	}

	users, err := usersIn(tx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	coinTxs, err := coinTransactionsIn(tx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	user, err := users.FindByIDForUpdate(ctx, args.UserID)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrUserNotFound)
	}

	before := user.CoinBalance
	after := before + args.Type.Sign()*args.Amount
	if after < 0 {
		return nil, domain.ErrInsufficientBalance.WithMessage(
			"insufficient coin balance: have %d, need %d", before, args.Amount)
	}

	entry, err := coinTxs.Create(ctx, repoargs.CreateCoinTransaction{
		UserID:               user.ID,
		OrderID:              args.OrderID,
		Type:                 args.Type,
		Amount:               args.Amount,
		RealMoneyAmount:      args.RealMoneyAmount,
		ExchangeRate:         args.ExchangeRate,
		BalanceBefore:        before,
		BalanceAfter:         after,
		Description:          args.Description,
		PaymentMethod:        args.PaymentMethod,
		PaymentTransactionID: args.PaymentTransactionID,
		Status:               args.Status,
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if err := users.UpdateCoinBalance(ctx, user.ID, after); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return entry, nil
}

// CreateTransaction записывает транзакцию в отдельной транзакции БД под блокировкой пользователя.
func (c *CoinService) CreateTransaction(
	ctx context.Context,
	args ApplyTransactionArgs,
) (*domain.CoinTransaction, error) {
	var entry *domain.CoinTransaction
	err := withUserLock(ctx, c.locker, args.UserID, func() error {
		return c.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error { //nolint:wrapcheck
			var applyErr error
			entry, applyErr = c.ApplyTransaction(ctx, tx, args)
			return applyErr
		})
	})
	if err != nil {
		return nil, fmt.Errorf("creating %s coin transaction: %w", args.Type, err)
	}
	return entry, nil
}

func (c *CoinService) GetBalance(ctx context.Context, userID int64) (int64, error) {
	user, err := c.userRepo.FindByID(ctx, userID)
	if err != nil {
		return 0, notFoundAs(err, domain.ErrUserNotFound)
	}
	return user.CoinBalance, nil
}

func (c *CoinService) HasEnoughCoins(ctx context.Context, userID int64, amount int64) (bool, error) {
	balance, err := c.GetBalance(ctx, userID)
	if err != nil {
		return false, err
	}
	return balance >= amount, nil
}

// DeductCoins списывает монеты. При недостатке монет возвращает domain.ErrInsufficientBalance,
// баланс при этом не меняется.
func (c *CoinService) DeductCoins(
	ctx context.Context,
	userID int64,
	amount int64,
	description string,
) (*domain.CoinTransaction, error) {
	return c.CreateTransaction(ctx, ApplyTransactionArgs{
		UserID:      userID,
		Type:        domain.TransactionTypeSpend,
		Amount:      amount,
		Description: description,
	})
}

// Refund отменяет транзакцию: баланс пользователя возвращается к значению до транзакции,
// сама транзакция помечается failed. Повторный вызов для уже отмененной транзакции ничего не меняет.
func (c *CoinService) Refund(ctx context.Context, transactionID int64) (*domain.CoinTransaction, error) {
	entry, err := c.txRepo.FindByID(ctx, transactionID)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrTransactionNotFound)
	}
	return c.settleEntry(ctx, entry, domain.TransactionStatusFailed, false)
}

// settleEntry переводит транзакцию в финальный статус под блокировкой владельца. При onlyPending
// транзакция, успевшая получить финальный статус, возвращается без изменений.
func (c *CoinService) settleEntry(
	ctx context.Context,
	entry *domain.CoinTransaction,
	status domain.TransactionStatus,
	onlyPending bool,
) (*domain.CoinTransaction, error) {
	var res *domain.CoinTransaction
	err := withUserLock(ctx, c.locker, entry.UserID, func() error {
		return c.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error { //nolint:wrapcheck
			coinTxs, repoErr := coinTransactionsIn(tx)
			if repoErr != nil {
				return repoErr //nolint:wrapcheck
			}
			locked, findErr := coinTxs.FindByIDForUpdate(ctx, entry.ID)
			if findErr != nil {
				return notFoundAs(findErr, domain.ErrTransactionNotFound)
			}

			var settleErr error
			switch {
			case onlyPending && locked.Status != domain.TransactionStatusPending:
				res = locked
			case status == domain.TransactionStatusFailed:
				res, settleErr = c.reverseEntry(ctx, tx, locked)
			case locked.Status == domain.TransactionStatusPending:
				settleErr = coinTxs.UpdateStatus(ctx, locked.ID, status)
				locked.Status = status
				res = locked
			default:
				res = locked
			}
			return settleErr
		})
	})
	if err != nil {
		return nil, fmt.Errorf("settling coin transaction %d: %w", entry.ID, err)
	}
	return res, nil
}

// reverseEntry возвращает баланс к снимку balanceBefore транзакции и помечает ее failed.
// Разница с текущим балансом проводится компенсирующей записью, чтобы журнал оставался согласованным
// с балансом.
func (c *CoinService) reverseEntry(
	ctx context.Context,
	tx uow.TX,
	entry *domain.CoinTransaction,
) (*domain.CoinTransaction, error) {
	if entry.Status == domain.TransactionStatusFailed {
		return entry, nil
	}

	users, err := usersIn(tx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	coinTxs, err := coinTransactionsIn(tx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	user, err := users.FindByIDForUpdate(ctx, entry.UserID)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrUserNotFound)
	}
	if err := coinTxs.UpdateStatus(ctx, entry.ID, domain.TransactionStatusFailed); err != nil {
		return nil, err //nolint:wrapcheck
	}
	entry.Status = domain.TransactionStatusFailed

	diff := entry.BalanceBefore - user.CoinBalance
	if diff == 0 {
		return entry, nil
	}
	compensation := repoargs.CreateCoinTransaction{
		UserID:        user.ID,
		OrderID:       entry.OrderID,
		Type:          domain.TransactionTypeRefund,
		Amount:        diff,
		BalanceBefore: user.CoinBalance,
		BalanceAfter:  entry.BalanceBefore,
		Description:   fmt.Sprintf("Reversal of transaction #%d", entry.ID),
		PaymentMethod: entry.PaymentMethod,
		Status:        domain.TransactionStatusCompleted,
	}
	if diff < 0 {
		compensation.Type = domain.TransactionTypeSpend
		compensation.Amount = -diff
	}
	if _, err := coinTxs.Create(ctx, compensation); err != nil {
		return nil, err //nolint:wrapcheck
	}
	if err := users.UpdateCoinBalance(ctx, user.ID, entry.BalanceBefore); err != nil {
		return nil, err //nolint:wrapcheck
	}

	c.l.WithFields(logrus.Fields{
		"userID":        user.ID,
		"transactionID": entry.ID,
		"balance":       entry.BalanceBefore,
	}).Info("coin transaction reversed")
	return entry, nil
}

type TransactionsQuery struct {
	Page  uint
	Limit uint
	// Type пустая строка - транзакции всех типов.
	Type string
}

type TransactionsPage struct {
	Transactions []domain.CoinTransaction
	Pagination   Pagination
	Balance      int64
}

// GetUserTransactions история транзакций пользователя, новые первыми.
func (c *CoinService) GetUserTransactions(
	ctx context.Context,
	userID int64,
	q TransactionsQuery,
) (*TransactionsPage, error) {
	filter := repoargs.CoinTransactionFilter{Type: domain.TransactionType(q.Type)}
	if filter.Type != "" && !filter.Type.IsValid() {
		return nil, domain.ErrInvalidTransactionType
	}
	page, limit := transactionsPageLimits.normalize(q.Page, q.Limit)

	var (
		res   TransactionsPage
		total int64
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		res.Transactions, err = c.txRepo.ListByUserID(gCtx, userID, filter, toRepoPage(page, limit))
		return err //nolint:wrapcheck
	})
	g.Go(func() error {
		var err error
		total, err = c.txRepo.CountByUserID(gCtx, userID, filter)
		return err //nolint:wrapcheck
	})
	g.Go(func() error {
		var err error
		res.Balance, err = c.GetBalance(gCtx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("getting transactions of user %d: %w", userID, err)
	}

	res.Pagination = newPagination(page, limit, total)
	return &res, nil
}

type Wallet struct {
	Balance            int64
	RecentTransactions []domain.CoinTransaction
}

// Wallet баланс пользователя и его последние транзакции.
func (c *CoinService) Wallet(ctx context.Context, userID int64) (*Wallet, error) {
	var w Wallet
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		w.Balance, err = c.GetBalance(gCtx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		w.RecentTransactions, err = c.txRepo.ListByUserID(gCtx, userID, repoargs.CoinTransactionFilter{},
			repoargs.Page{Limit: recentTransactionsLimit})
		return err //nolint:wrapcheck
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("getting wallet of user %d: %w", userID, err)
	}
	return &w, nil
}

func (c *CoinService) Packages() []pricing.TopUpPackage {
	return pricing.TopUpPackages()
}

type TopUpArgs struct {
	UserID int64
	Amount int64
	Method string
}

// TopUp пополняет баланс монетами по курсу с бонусом за сумму. Монеты зачисляются сразу, а при
// включенном подтверждении шлюзом транзакция остается pending до колбэка.
func (c *CoinService) TopUp(ctx context.Context, args TopUpArgs) (*domain.CoinTransaction, error) {
	if !slices.Contains(topUpMethods, args.Method) {
		return nil, domain.ErrInvalidPaymentMethod.WithMessage(
			"invalid top up method, allowed: %s", strings.Join(topUpMethods, ", "))
	}
	coins := pricing.SplitDeposit(args.Amount)
	if coins.Total() <= 0 {
		return nil, domain.ErrInvalidAmount.WithMessage(
			"top up amount must be at least %d VND", pricing.CoinExchangeRate)
	}

	status := domain.TransactionStatusCompleted
	if c.deferDeposits {
		status = domain.TransactionStatusPending
	}
	return c.CreateTransaction(ctx, ApplyTransactionArgs{
		UserID:          args.UserID,
		Type:            domain.TransactionTypeDeposit,
		Amount:          coins.Total(),
		RealMoneyAmount: args.Amount,
		ExchangeRate:    pricing.CoinExchangeRate,
		Description: fmt.Sprintf("Top up %d coins (%d + %d bonus) via %s",
			coins.Total(), coins.Base, coins.Bonus, args.Method),
		PaymentMethod:        args.Method,
		PaymentTransactionID: c.newPaymentTransactionID(),
		Status:               status,
	})
}

func (c *CoinService) newPaymentTransactionID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
	return fmt.Sprintf("SIM_%d_%s", c.now().UnixMilli(), suffix)
}

type PaymentCallbackArgs struct {
	// UserID владелец транзакции. 0 - системный вызов без проверки владельца.
	UserID               int64
	PaymentTransactionID string
	Status               domain.TransactionStatus
}

// HandlePaymentCallback применяет результат платежа: completed подтверждает транзакцию, failed
// отменяет ее через Refund. Транзакция в финальном статусе не меняется.
func (c *CoinService) HandlePaymentCallback(
	ctx context.Context,
	args PaymentCallbackArgs,
) (*domain.CoinTransaction, error) {
	if args.Status != domain.TransactionStatusCompleted && args.Status != domain.TransactionStatusFailed {
		return nil, domain.ErrInvalidStatus.WithMessage("payment status must be completed or failed")
	}
	if args.PaymentTransactionID == "" {
		return nil, domain.ErrTransactionNotFound
	}

	entry, err := c.txRepo.FindByPaymentTransactionID(ctx, args.PaymentTransactionID)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrTransactionNotFound)
	}
	if args.UserID != 0 && entry.UserID != args.UserID {
		return nil, domain.ErrTransactionNotFound
	}
	if entry.Status != domain.TransactionStatusPending {
		return entry, nil
	}
	return c.settleEntry(ctx, entry, args.Status, true)
}

type AdminBonusArgs struct {
	UserID      int64
	Amount      int64
	Description string
}

// AdminBonus начисляет пользователю бонусные монеты.
func (c *CoinService) AdminBonus(ctx context.Context, args AdminBonusArgs) (*domain.CoinTransaction, error) {
	description := strings.TrimSpace(args.Description)
	if description == "" {
		description = "Bonus from administrator"
	}
	return c.CreateTransaction(ctx, ApplyTransactionArgs{
		UserID:        args.UserID,
		Type:          domain.TransactionTypeBonus,
		Amount:        args.Amount,
		Description:   description,
		PaymentMethod: adminBonusPaymentMethod,
	})
}

// PendingDeposits пополнения, ожидающие подтверждения шлюза, самые давние первыми.
func (c *CoinService) PendingDeposits(ctx context.Context, limit uint) ([]domain.CoinTransaction, error) {
	txs, err := c.txRepo.ListPending(ctx, domain.TransactionTypeDeposit, limit)
	if err != nil {
		return nil, fmt.Errorf("getting pending deposits: %w", err)
	}
	return txs, nil
}

type DepositUpdate struct {
	Error                error
	PaymentTransactionID string
	Status               domain.TransactionStatus
}

// ReconcileDeposits применяет статусы платежей, полученные от шлюза. Обновления с ошибкой опроса и
// еще не завершенные платежи пропускаются. Каждое пополнение подтверждается со своим таймаутом.
func (c *CoinService) ReconcileDeposits(ctx context.Context, updates []DepositUpdate) error {
	var errs []error
	for _, update := range updates {
		if update.Error != nil || update.Status == domain.TransactionStatusPending {
			continue
		}
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}
		err := c.reconcileDeposit(ctx, update)
		if err != nil {
			c.l.WithError(err).
				WithField("paymentTransactionID", update.PaymentTransactionID).
				Error("failed to reconcile deposit")
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("reconciling deposits: %w", errors.Join(errs...))
	}
	return nil
}

func (c *CoinService) reconcileDeposit(ctx context.Context, update DepositUpdate) error {
	reqCtx, cancel := context.WithTimeout(ctx, c.reconcileTimeout)
	defer cancel()

	_, err := c.HandlePaymentCallback(reqCtx, PaymentCallbackArgs{
		PaymentTransactionID: update.PaymentTransactionID,
		Status:               update.Status,
	})
	return err
}
