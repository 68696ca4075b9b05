package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/bookstore/internal/domain"
	"github.com/fsdevblog/bookstore/internal/pricing"
	"github.com/fsdevblog/bookstore/internal/repository/repoargs"
	"github.com/fsdevblog/bookstore/pkg/uow"
)

// CoinLedger запись в журнал монет внутри уже открытой транзакции.
type CoinLedger interface {
	ApplyTransaction(ctx context.Context, tx uow.TX, args ApplyTransactionArgs) (*domain.CoinTransaction, error)
}

// paymentSettler поведение способа оплаты при оформлении и отмене заказа.
type paymentSettler interface {
	// check проверяет, может ли пользователь оплатить заказ, до записи чего-либо в базу.
	check(user *domain.User, order *domain.Order) error
	// settle проводит оплату уже сохраненного заказа и обновляет его платежные поля.
	settle(ctx context.Context, tx uow.TX, order *domain.Order) error
	// reverse возвращает оплату отмененного заказа и новый статус оплаты.
	reverse(ctx context.Context, tx uow.TX, order *domain.Order) (domain.PaymentStatus, error)
}

// deferredSettler оплата при получении, переводом или картой. Заказ ждет оплаты, ничего не списывается.
type deferredSettler struct{}

func (deferredSettler) check(*domain.User, *domain.Order) error {
	return nil
}

func (deferredSettler) settle(context.Context, uow.TX, *domain.Order) error {
	return nil
}

func (deferredSettler) reverse(_ context.Context, _ uow.TX, order *domain.Order) (domain.PaymentStatus, error) {
	return order.PaymentStatus, nil
}

// coinSettler оплата монетами: списание в журнале в той же транзакции, что и создание заказа.
type coinSettler struct {
	ledger CoinLedger
}

func (c coinSettler) check(user *domain.User, order *domain.Order) error {
	coins := pricing.CoinsForAmount(order.FinalAmount)
	if user.CoinBalance < coins {
		return domain.ErrInsufficientCoins.WithMessage(
			"not enough coins: have %d, need %d", user.CoinBalance, coins)
	}
	return nil
}

func (c coinSettler) settle(ctx context.Context, tx uow.TX, order *domain.Order) error {
	coins := pricing.CoinsForAmount(order.FinalAmount)
	entry, err := c.ledger.ApplyTransaction(ctx, tx, ApplyTransactionArgs{
		UserID:        order.UserID,
		OrderID:       &order.ID,
		Type:          domain.TransactionTypeSpend,
		Amount:        coins,
		Description:   fmt.Sprintf("Payment for order %s", order.OrderNumber),
		PaymentMethod: string(domain.PaymentMethodCoin),
	})
	if err != nil {
		return fmt.Errorf("debiting coins for order %d: %w", order.ID, err)
	}

	orders, err := ordersIn(tx)
	if err != nil {
		return err //nolint:wrapcheck
	}
	update := repoargs.UpdateOrderPayment{
		ID:                order.ID,
		PaymentStatus:     domain.PaymentStatusPaid,
		CoinAmount:        coins,
		CoinTransactionID: &entry.ID,
	}
	if err := orders.UpdatePayment(ctx, update); err != nil {
		return err //nolint:wrapcheck
	}

	order.PaymentStatus = update.PaymentStatus
	order.CoinAmount = update.CoinAmount
	order.CoinTransactionID = update.CoinTransactionID
	return nil
}

func (c coinSettler) reverse(ctx context.Context, tx uow.TX, order *domain.Order) (domain.PaymentStatus, error) {
	if order.PaymentStatus != domain.PaymentStatusPaid || order.CoinAmount <= 0 {
		return order.PaymentStatus, nil
	}
	_, err := c.ledger.ApplyTransaction(ctx, tx, ApplyTransactionArgs{
		UserID:        order.UserID,
		OrderID:       &order.ID,
		Type:          domain.TransactionTypeRefund,
		Amount:        order.CoinAmount,
		Description:   fmt.Sprintf("Refund for cancelled order %s", order.OrderNumber),
		PaymentMethod: string(domain.PaymentMethodCoin),
	})
	if err != nil {
		return "", fmt.Errorf("refunding coins for order %d: %w", order.ID, err)
	}
	return domain.PaymentStatusPending, nil
}

func newPaymentSettlers(ledger CoinLedger) map[domain.PaymentMethod]paymentSettler {
	return map[domain.PaymentMethod]paymentSettler{
		domain.PaymentMethodCashOnDelivery: deferredSettler{},
		domain.PaymentMethodBankTransfer:   deferredSettler{},
		domain.PaymentMethodCreditCard:     deferredSettler{},
		domain.PaymentMethodCoin:           coinSettler{ledger: ledger},
	}
}
