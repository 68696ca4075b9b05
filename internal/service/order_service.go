package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/bookstore/internal/domain"
	"github.com/fsdevblog/bookstore/internal/repository/repoargs"
	"github.com/fsdevblog/bookstore/pkg/uow"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type OrderService struct {
	uow       uow.UOW
	locker    Locker
	orderRepo OrderRepository
	settlers  map[domain.PaymentMethod]paymentSettler
	l         *logrus.Entry
	now       func() time.Time
}

func NewOrderService(u uow.UOW, l Locker, ledger CoinLedger, logger *logrus.Logger) (*OrderService, error) {
	orderRepo, err := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &OrderService{
		uow:       u,
		locker:    l,
		orderRepo: orderRepo,
		settlers:  newPaymentSettlers(ledger),
		l:         logger.WithField("component", "OrderService"),
		now:       time.Now,
	}, nil
}

type CreateOrderArgs struct {
	UserID   int64
	Shipping domain.ShippingInfo
	// PaymentMethod пустая строка означает оплату при получении.
	PaymentMethod string
	Notes         string
	PromotionCode string
}

// CreateOrder оформляет заказ из корзины пользователя.
//
// Все шаги выполняются в одной транзакции под блокировкой пользователя:
//  1. Проверяет пользователя, корзину, способ оплаты и адрес доставки.
//  2. Снимает копию строк корзины в позиции заказа и применяет промокод.
//  3. Считает доставку и итоговую сумму, проверяет возможность оплаты.
//  4. Сохраняет заказ, проводит оплату и удаляет корзину.
//
// Ошибка на любом шаге откатывает всю транзакцию, в том числе списание монет.
func (o *OrderService) CreateOrder(ctx context.Context, args CreateOrderArgs) (*domain.Order, error) {
	var order *domain.Order
	err := withUserLock(ctx, o.locker, args.UserID, func() error {
		return o.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error { //nolint:wrapcheck
			var txErr error
			order, txErr = o.createOrder(ctx, tx, args)
			return txErr
		})
	})
	if err != nil {
		return nil, fmt.Errorf("creating order for user %d: %w", args.UserID, err)
	}

	o.l.WithFields(logrus.Fields{
		"userID":        order.UserID,
		"orderID":       order.ID,
		"paymentMethod": order.PaymentMethod,
		"finalAmount":   order.FinalAmount,
	}).Info("order created")
	return order, nil
}

func (o *OrderService) createOrder(ctx context.Context, tx uow.TX, args CreateOrderArgs) (*domain.Order, error) {
	users, err := usersIn(tx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	carts, err := cartsIn(tx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	books, err := booksIn(tx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	orders, err := ordersIn(tx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	user, err := users.FindByIDForUpdate(ctx, args.UserID)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrUserNotFound)
	}
	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}

	cart, err := carts.FindByUserID(ctx, args.UserID)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrCartEmpty)
	}
	if cart.IsEmpty() {
		return nil, domain.ErrCartEmpty
	}

	method, err := domain.ParsePaymentMethod(args.PaymentMethod)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	settler, ok := o.settlers[method]
	if !ok {
		return nil, domain.ErrInvalidPaymentMethod
	}

	shipping, err := domain.ResolveShipping(args.Shipping, *user)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	cartBooks, err := books.FindByIDs(ctx, cart.BookIDs())
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	items, subtotal, err := domain.SnapshotItems(*cart, cartBooks)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	var (
		discount  int64
		promoCode = domain.NormalizePromotionCode(args.PromotionCode)
	)
	if promoCode != "" {
		discount, err = applyPromotion(ctx, tx, promoCode, subtotal, cartBooks, o.now())
		if err != nil {
			return nil, err
		}
	}

	draft := domain.Order{UserID: user.ID, PaymentMethod: method}
	draft.ApplyAmounts(subtotal, discount)
	if err := settler.check(user, &draft); err != nil {
		return nil, err //nolint:wrapcheck
	}

	order, err := orders.Create(ctx, repoargs.CreateOrder{
		UserID:         user.ID,
		Items:          items,
		Shipping:       shipping,
		PaymentMethod:  method,
		PaymentStatus:  domain.PaymentStatusPending,
		Status:         domain.OrderStatusPending,
		SubtotalAmount: draft.SubtotalAmount,
		DiscountAmount: draft.DiscountAmount,
		TotalAmount:    draft.TotalAmount,
		ShippingFee:    draft.ShippingFee,
		FinalAmount:    draft.FinalAmount,
		PromotionCode:  promoCode,
		Notes:          args.Notes,
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if err := settler.settle(ctx, tx, order); err != nil {
		return nil, err //nolint:wrapcheck
	}
	if err := carts.DeleteByUserID(ctx, user.ID); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return order, nil
}

// CancelOrder отменяет заказ пользователя. Отменить можно только заказ в статусе pending,
// оплаченный монетами заказ возвращает монеты на баланс.
func (o *OrderService) CancelOrder(ctx context.Context, userID, orderID int64) (*domain.Order, error) {
	var order *domain.Order
	err := withUserLock(ctx, o.locker, userID, func() error {
		return o.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error { //nolint:wrapcheck
			orders, repoErr := ordersIn(tx)
			if repoErr != nil {
				return repoErr //nolint:wrapcheck
			}
			current, findErr := orders.FindByIDForUpdate(ctx, orderID)
			if findErr != nil {
				return notFoundAs(findErr, domain.ErrOrderNotFound)
			}
			if current.UserID != userID {
				return domain.ErrOrderNotFound
			}
			if !current.Status.CanTransitionTo(domain.OrderStatusCancelled) {
				return domain.ErrCannotCancel
			}

			var cancelErr error
			order, cancelErr = o.cancel(ctx, tx, current, "")
			return cancelErr
		})
	})
	if err != nil {
		return nil, fmt.Errorf("cancelling order %d: %w", orderID, err)
	}

	o.l.WithFields(logrus.Fields{"userID": userID, "orderID": orderID}).Info("order cancelled")
	return order, nil
}

// cancel переводит заказ в cancelled и возвращает оплату способом, которым она была проведена.
func (o *OrderService) cancel(
	ctx context.Context,
	tx uow.TX,
	order *domain.Order,
	trackingNumber string,
) (*domain.Order, error) {
	settler, ok := o.settlers[order.PaymentMethod]
	if !ok {
		return nil, domain.ErrInvalidPaymentMethod
	}
	paymentStatus, err := settler.reverse(ctx, tx, order)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	orders, err := ordersIn(tx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return orders.UpdateStatus(ctx, repoargs.UpdateOrderStatus{ //nolint:wrapcheck
		ID:             order.ID,
		Status:         domain.OrderStatusCancelled,
		PaymentStatus:  paymentStatus,
		TrackingNumber: trackingNumber,
	})
}

type OrdersPage struct {
	Orders     []domain.Order
	Pagination Pagination
}

// ListOrders заказы пользователя, новые первыми.
func (o *OrderService) ListOrders(ctx context.Context, userID int64, page, limit uint) (*OrdersPage, error) {
	page, limit = ordersPageLimits.normalize(page, limit)

	var (
		res   OrdersPage
		total int64
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		res.Orders, err = o.orderRepo.ListByUserID(gCtx, userID, toRepoPage(page, limit))
		return err //nolint:wrapcheck
	})
	g.Go(func() error {
		var err error
		total, err = o.orderRepo.CountByUserID(gCtx, userID)
		return err //nolint:wrapcheck
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("listing orders of user %d: %w", userID, err)
	}

	res.Pagination = newPagination(page, limit, total)
	return &res, nil
}

// GetOrderByID возвращает заказ пользователя. Чужой заказ не находится.
func (o *OrderService) GetOrderByID(ctx context.Context, userID, orderID int64) (*domain.Order, error) {
	order, err := o.orderRepo.FindByIDForUser(ctx, orderID, userID)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrOrderNotFound)
	}
	return order, nil
}

// UpdateOrderStatusArgs пустые поля оставляют текущие значения заказа.
type UpdateOrderStatusArgs struct {
	OrderID        int64
	Status         domain.OrderStatus
	PaymentStatus  domain.PaymentStatus
	TrackingNumber string
}

// UpdateOrderStatus административное изменение статуса, статуса оплаты и трек-номера заказа.
// Смена статуса проверяется по таблице допустимых переходов, переход в cancelled выполняет
// ту же отмену, что и пользователь, с возвратом монет.
func (o *OrderService) UpdateOrderStatus(ctx context.Context, args UpdateOrderStatusArgs) (*domain.Order, error) {
	if args.Status != "" && !args.Status.IsValid() {
		return nil, domain.ErrInvalidStatus.WithMessage("invalid order status `%s`", args.Status)
	}
	if args.PaymentStatus != "" && !args.PaymentStatus.IsValid() {
		return nil, domain.ErrInvalidStatus.WithMessage("invalid payment status `%s`", args.PaymentStatus)
	}

	existing, err := o.orderRepo.FindByID(ctx, args.OrderID)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrOrderNotFound)
	}

	var order *domain.Order
	err = withUserLock(ctx, o.locker, existing.UserID, func() error {
		return o.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error { //nolint:wrapcheck
			var txErr error
			order, txErr = o.updateStatus(ctx, tx, args)
			return txErr
		})
	})
	if err != nil {
		return nil, fmt.Errorf("updating status of order %d: %w", args.OrderID, err)
	}

	o.l.WithFields(logrus.Fields{
		"orderID":       order.ID,
		"status":        order.Status,
		"paymentStatus": order.PaymentStatus,
	}).Info("order status updated")
	return order, nil
}

func (o *OrderService) updateStatus(
	ctx context.Context,
	tx uow.TX,
	args UpdateOrderStatusArgs,
) (*domain.Order, error) {
	orders, err := ordersIn(tx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	current, err := orders.FindByIDForUpdate(ctx, args.OrderID)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrOrderNotFound)
	}

	status := args.Status
	if status == "" {
		status = current.Status
	}
	if status != current.Status {
		if !current.Status.CanTransitionTo(status) {
			return nil, domain.ErrInvalidTransition.WithMessage(
				"order status can not change from %s to %s", current.Status, status)
		}
		if status == domain.OrderStatusCancelled {
			return o.cancel(ctx, tx, current, args.TrackingNumber)
		}
	}

	paymentStatus := args.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = current.PaymentStatus
	}
	return orders.UpdateStatus(ctx, repoargs.UpdateOrderStatus{ //nolint:wrapcheck
		ID:             current.ID,
		Status:         status,
		PaymentStatus:  paymentStatus,
		TrackingNumber: args.TrackingNumber,
	})
}
