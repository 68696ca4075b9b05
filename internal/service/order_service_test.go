package service

import (
	"context"
	"testing"
	"time"

	"github.com/fsdevblog/bookstore/internal/domain"
	"github.com/fsdevblog/bookstore/internal/repository/repoargs"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type OrderServiceTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	m        *repoMocks
	service  *OrderService
	now      time.Time
}

func TestOrderServiceSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}

func (s *OrderServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.m = newRepoMocks(s.mockCtrl)
	s.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	ledger, err := NewCoinService(s.m.uow, s.m.locker, discardLogger())
	s.Require().NoError(err)

	s.service, err = NewOrderService(s.m.uow, s.m.locker, ledger, discardLogger())
	s.Require().NoError(err)
	s.service.now = func() time.Time { return s.now }
}

func (s *OrderServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *OrderServiceTestSuite) user(balance int64) *domain.User {
	return &domain.User{
		ID:          1,
		FullName:    "Nguyen Van A",
		Address:     "1 Le Loi",
		City:        "Hanoi",
		Phone:       "0900000000",
		CoinBalance: balance,
		IsActive:    true,
	}
}

// cart две книги по 150 000, итого 300 000.
func (s *OrderServiceTestSuite) cart() *domain.Cart {
	return &domain.Cart{
		ID:     3,
		UserID: 1,
		Items: []domain.CartItem{
			{BookID: 10, Quantity: 1, Price: 150_000},
			{BookID: 11, Quantity: 1, Price: 150_000},
		},
		TotalAmount: 300_000,
	}
}

func (s *OrderServiceTestSuite) books() []domain.Book {
	return []domain.Book{
		{ID: 10, Title: "Dune", Author: "Frank Herbert", Category: "scifi", Price: 150_000},
		{ID: 11, Title: "Solaris", Author: "Stanislaw Lem", Category: "scifi", Price: 150_000},
	}
}

// expectCheckoutReads настраивает чтение пользователя, корзины и книг при оформлении заказа.
func (s *OrderServiceTestSuite) expectCheckoutReads(user *domain.User) {
	s.m.users.EXPECT().FindByIDForUpdate(gomock.Any(), int64(1)).Return(user, nil)
	s.m.carts.EXPECT().FindByUserID(gomock.Any(), int64(1)).Return(s.cart(), nil)
	s.m.books.EXPECT().FindByIDs(gomock.Any(), []int64{10, 11}).Return(s.books(), nil)
}

func (s *OrderServiceTestSuite) expectOrderCreate(check func(repoargs.CreateOrder)) {
	s.m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateOrder) (*domain.Order, error) {
			check(args)
			return &domain.Order{
				ID:             20,
				UserID:         args.UserID,
				OrderNumber:    "ORD-1-ABCDEF12",
				Items:          args.Items,
				Shipping:       args.Shipping,
				PaymentMethod:  args.PaymentMethod,
				PaymentStatus:  args.PaymentStatus,
				Status:         args.Status,
				SubtotalAmount: args.SubtotalAmount,
				DiscountAmount: args.DiscountAmount,
				TotalAmount:    args.TotalAmount,
				ShippingFee:    args.ShippingFee,
				FinalAmount:    args.FinalAmount,
				PromotionCode:  args.PromotionCode,
			}, nil
		})
}

func (s *OrderServiceTestSuite) TestCreateOrder_CashOnDelivery() {
	s.expectCheckoutReads(s.user(0))
	s.expectOrderCreate(func(args repoargs.CreateOrder) {
		s.Equal(domain.PaymentMethodCashOnDelivery, args.PaymentMethod)
		s.Equal(domain.PaymentStatusPending, args.PaymentStatus)
		s.Equal(domain.OrderStatusPending, args.Status)
		s.Equal(int64(300_000), args.SubtotalAmount)
		s.Equal(int64(30_000), args.ShippingFee)
		s.Equal(int64(330_000), args.FinalAmount)
		s.Require().Len(args.Items, 2)
		s.Equal("Dune", args.Items[0].Title)
		// адрес взят из профиля
		s.Equal("Hanoi", args.Shipping.City)
	})
	s.m.carts.EXPECT().DeleteByUserID(gomock.Any(), int64(1)).Return(nil)

	order, err := s.service.CreateOrder(s.T().Context(), CreateOrderArgs{UserID: 1})
	s.Require().NoError(err)
	s.Equal(int64(20), order.ID)
	s.Equal(domain.PaymentStatusPending, order.PaymentStatus)
}

func (s *OrderServiceTestSuite) TestCreateOrder_Coins() {
	user := s.user(400)
	s.expectCheckoutReads(user)
	// второе чтение пользователя выполняет журнал монет
	s.m.users.EXPECT().FindByIDForUpdate(gomock.Any(), int64(1)).Return(user, nil)
	s.expectOrderCreate(func(args repoargs.CreateOrder) {
		s.Equal(domain.PaymentMethodCoin, args.PaymentMethod)
		s.Equal(int64(330_000), args.FinalAmount)
	})
	s.m.coinTxs.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateCoinTransaction) (*domain.CoinTransaction, error) {
			s.Equal(domain.TransactionTypeSpend, args.Type)
			s.Equal(int64(330), args.Amount)
			s.Equal(int64(400), args.BalanceBefore)
			s.Equal(int64(70), args.BalanceAfter)
			s.Equal(ptr(int64(20)), args.OrderID)
			s.Equal("Payment for order ORD-1-ABCDEF12", args.Description)
			return &domain.CoinTransaction{ID: 55}, nil
		})
	s.m.users.EXPECT().UpdateCoinBalance(gomock.Any(), int64(1), int64(70)).Return(nil)
	s.m.orders.EXPECT().UpdatePayment(gomock.Any(), repoargs.UpdateOrderPayment{
		ID:                20,
		PaymentStatus:     domain.PaymentStatusPaid,
		CoinAmount:        330,
		CoinTransactionID: ptr(int64(55)),
	}).Return(nil)
	s.m.carts.EXPECT().DeleteByUserID(gomock.Any(), int64(1)).Return(nil)

	order, err := s.service.CreateOrder(s.T().Context(), CreateOrderArgs{UserID: 1, PaymentMethod: "coin"})
	s.Require().NoError(err)
	s.Equal(domain.PaymentStatusPaid, order.PaymentStatus)
	s.Equal(int64(330), order.CoinAmount)
	s.Equal(ptr(int64(55)), order.CoinTransactionID)
}

func (s *OrderServiceTestSuite) TestCreateOrder_InsufficientCoins() {
	s.expectCheckoutReads(s.user(329))

	_, err := s.service.CreateOrder(s.T().Context(), CreateOrderArgs{UserID: 1, PaymentMethod: "coin"})
	s.Require().ErrorIs(err, domain.ErrInsufficientCoins)
}

func (s *OrderServiceTestSuite) TestCreateOrder_Promotion() {
	s.expectCheckoutReads(s.user(0))
	s.m.promos.EXPECT().FindByCodeForUpdate(gomock.Any(), "SUMMER10").Return(&domain.Promotion{
		ID:            4,
		Code:          "SUMMER10",
		DiscountType:  domain.DiscountTypePercentage,
		DiscountValue: decimal.NewFromInt(10),
		IsActive:      true,
		StartDate:     s.now.Add(-time.Hour),
		EndDate:       s.now.Add(time.Hour),
	}, nil)
	s.m.promos.EXPECT().IncrementUsage(gomock.Any(), int64(4)).Return(nil)
	s.expectOrderCreate(func(args repoargs.CreateOrder) {
		s.Equal("SUMMER10", args.PromotionCode)
		s.Equal(int64(30_000), args.DiscountAmount)
		s.Equal(int64(270_000), args.TotalAmount)
		s.Equal(int64(30_000), args.ShippingFee)
		s.Equal(int64(300_000), args.FinalAmount)
	})
	s.m.carts.EXPECT().DeleteByUserID(gomock.Any(), int64(1)).Return(nil)

	_, err := s.service.CreateOrder(s.T().Context(), CreateOrderArgs{UserID: 1, PromotionCode: " summer10 "})
	s.Require().NoError(err)
}

func (s *OrderServiceTestSuite) TestCreateOrder_Errors() {
	cases := []struct {
		name    string
		args    CreateOrderArgs
		setup   func()
		wantErr error
	}{
		{
			name: "user not found",
			setup: func() {
				s.m.users.EXPECT().FindByIDForUpdate(gomock.Any(), int64(1)).Return(nil, domain.ErrRecordNotFound)
			},
			wantErr: domain.ErrUserNotFound,
		},
		{
			name: "inactive user",
			setup: func() {
				u := s.user(0)
				u.IsActive = false
				s.m.users.EXPECT().FindByIDForUpdate(gomock.Any(), int64(1)).Return(u, nil)
			},
			wantErr: domain.ErrUserInactive,
		},
		{
			name: "no cart",
			setup: func() {
				s.m.users.EXPECT().FindByIDForUpdate(gomock.Any(), int64(1)).Return(s.user(0), nil)
				s.m.carts.EXPECT().FindByUserID(gomock.Any(), int64(1)).Return(nil, domain.ErrRecordNotFound)
			},
			wantErr: domain.ErrCartEmpty,
		},
		{
			name: "empty cart",
			setup: func() {
				s.m.users.EXPECT().FindByIDForUpdate(gomock.Any(), int64(1)).Return(s.user(0), nil)
				s.m.carts.EXPECT().FindByUserID(gomock.Any(), int64(1)).Return(&domain.Cart{UserID: 1}, nil)
			},
			wantErr: domain.ErrCartEmpty,
		},
		{
			name: "unknown payment method",
			args: CreateOrderArgs{PaymentMethod: "barter"},
			setup: func() {
				s.m.users.EXPECT().FindByIDForUpdate(gomock.Any(), int64(1)).Return(s.user(0), nil)
				s.m.carts.EXPECT().FindByUserID(gomock.Any(), int64(1)).Return(s.cart(), nil)
			},
			wantErr: domain.ErrInvalidPaymentMethod,
		},
		{
			name: "incomplete shipping",
			setup: func() {
				u := s.user(0)
				u.Phone = " "
				s.m.users.EXPECT().FindByIDForUpdate(gomock.Any(), int64(1)).Return(u, nil)
				s.m.carts.EXPECT().FindByUserID(gomock.Any(), int64(1)).Return(s.cart(), nil)
			},
			wantErr: domain.ErrInvalidShipping,
		},
		{
			name: "book removed from catalog",
			setup: func() {
				s.m.users.EXPECT().FindByIDForUpdate(gomock.Any(), int64(1)).Return(s.user(0), nil)
				s.m.carts.EXPECT().FindByUserID(gomock.Any(), int64(1)).Return(s.cart(), nil)
				s.m.books.EXPECT().FindByIDs(gomock.Any(), []int64{10, 11}).Return(s.books()[:1], nil)
			},
			wantErr: domain.ErrBookNotAvailable,
		},
		{
			name: "unknown promotion",
			args: CreateOrderArgs{PromotionCode: "nope"},
			setup: func() {
				s.expectCheckoutReads(s.user(0))
				s.m.promos.EXPECT().FindByCodeForUpdate(gomock.Any(), "NOPE").Return(nil, domain.ErrRecordNotFound)
			},
			wantErr: domain.ErrPromotionNotFound,
		},
	}

	for _, c := range cases {
		s.Run(c.name, func() {
			c.setup()
			c.args.UserID = 1
			// заказ не создается и корзина не удаляется
			_, err := s.service.CreateOrder(s.T().Context(), c.args)
			s.Require().ErrorIs(err, c.wantErr)
		})
	}
}

func (s *OrderServiceTestSuite) coinPaidOrder() *domain.Order {
	return &domain.Order{
		ID:                20,
		UserID:            1,
		OrderNumber:       "ORD-1-ABCDEF12",
		PaymentMethod:     domain.PaymentMethodCoin,
		PaymentStatus:     domain.PaymentStatusPaid,
		Status:            domain.OrderStatusPending,
		FinalAmount:       330_000,
		CoinAmount:        330,
		CoinTransactionID: ptr(int64(55)),
	}
}

func (s *OrderServiceTestSuite) TestCancelOrder_RefundsCoins() {
	s.m.orders.EXPECT().FindByIDForUpdate(gomock.Any(), int64(20)).Return(s.coinPaidOrder(), nil)
	s.m.users.EXPECT().FindByIDForUpdate(gomock.Any(), int64(1)).Return(s.user(70), nil)
	s.m.coinTxs.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateCoinTransaction) (*domain.CoinTransaction, error) {
			s.Equal(domain.TransactionTypeRefund, args.Type)
			s.Equal(int64(330), args.Amount)
			s.Equal(int64(400), args.BalanceAfter)
			s.Equal("Refund for cancelled order ORD-1-ABCDEF12", args.Description)
			return &domain.CoinTransaction{ID: 56}, nil
		})
	s.m.users.EXPECT().UpdateCoinBalance(gomock.Any(), int64(1), int64(400)).Return(nil)
	s.m.orders.EXPECT().UpdateStatus(gomock.Any(), repoargs.UpdateOrderStatus{
		ID:            20,
		Status:        domain.OrderStatusCancelled,
		PaymentStatus: domain.PaymentStatusPending,
	}).Return(&domain.Order{ID: 20, Status: domain.OrderStatusCancelled}, nil)

	order, err := s.service.CancelOrder(s.T().Context(), 1, 20)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusCancelled, order.Status)
}

func (s *OrderServiceTestSuite) TestCancelOrder_Unpaid() {
	order := s.coinPaidOrder()
	order.PaymentMethod = domain.PaymentMethodCashOnDelivery
	order.PaymentStatus = domain.PaymentStatusPending
	order.CoinAmount = 0
	s.m.orders.EXPECT().FindByIDForUpdate(gomock.Any(), int64(20)).Return(order, nil)
	s.m.orders.EXPECT().UpdateStatus(gomock.Any(), repoargs.UpdateOrderStatus{
		ID:            20,
		Status:        domain.OrderStatusCancelled,
		PaymentStatus: domain.PaymentStatusPending,
	}).Return(&domain.Order{ID: 20, Status: domain.OrderStatusCancelled}, nil)

	_, err := s.service.CancelOrder(s.T().Context(), 1, 20)
	s.Require().NoError(err)
}

func (s *OrderServiceTestSuite) TestCancelOrder_Errors() {
	s.Run("processing order", func() {
		order := s.coinPaidOrder()
		order.Status = domain.OrderStatusProcessing
		s.m.orders.EXPECT().FindByIDForUpdate(gomock.Any(), int64(20)).Return(order, nil)

		_, err := s.service.CancelOrder(s.T().Context(), 1, 20)
		s.Require().ErrorIs(err, domain.ErrCannotCancel)
	})

	s.Run("foreign order", func() {
		s.m.orders.EXPECT().FindByIDForUpdate(gomock.Any(), int64(20)).Return(s.coinPaidOrder(), nil)

		_, err := s.service.CancelOrder(s.T().Context(), 2, 20)
		s.Require().ErrorIs(err, domain.ErrOrderNotFound)
	})

	s.Run("missing order", func() {
		s.m.orders.EXPECT().FindByIDForUpdate(gomock.Any(), int64(21)).Return(nil, domain.ErrRecordNotFound)

		_, err := s.service.CancelOrder(s.T().Context(), 1, 21)
		s.Require().ErrorIs(err, domain.ErrOrderNotFound)
	})
}

func (s *OrderServiceTestSuite) TestUpdateOrderStatus() {
	s.Run("invalid status", func() {
		_, err := s.service.UpdateOrderStatus(s.T().Context(), UpdateOrderStatusArgs{OrderID: 20, Status: "lost"})
		s.Require().ErrorIs(err, domain.ErrInvalidStatus)
	})

	s.Run("transition not allowed", func() {
		order := s.coinPaidOrder()
		order.Status = domain.OrderStatusDelivered
		s.m.orders.EXPECT().FindByID(gomock.Any(), int64(20)).Return(order, nil)
		s.m.orders.EXPECT().FindByIDForUpdate(gomock.Any(), int64(20)).Return(order, nil)

		_, err := s.service.UpdateOrderStatus(s.T().Context(), UpdateOrderStatusArgs{
			OrderID: 20, Status: domain.OrderStatusPending,
		})
		s.Require().ErrorIs(err, domain.ErrInvalidTransition)
	})

	s.Run("ship with tracking number", func() {
		order := s.coinPaidOrder()
		order.Status = domain.OrderStatusProcessing
		s.m.orders.EXPECT().FindByID(gomock.Any(), int64(20)).Return(order, nil)
		s.m.orders.EXPECT().FindByIDForUpdate(gomock.Any(), int64(20)).Return(order, nil)
		s.m.orders.EXPECT().UpdateStatus(gomock.Any(), repoargs.UpdateOrderStatus{
			ID:             20,
			Status:         domain.OrderStatusShipped,
			PaymentStatus:  domain.PaymentStatusPaid,
			TrackingNumber: "VN123",
		}).Return(&domain.Order{ID: 20, Status: domain.OrderStatusShipped, TrackingNumber: "VN123"}, nil)

		res, err := s.service.UpdateOrderStatus(s.T().Context(), UpdateOrderStatusArgs{
			OrderID: 20, Status: domain.OrderStatusShipped, TrackingNumber: "VN123",
		})
		s.Require().NoError(err)
		s.Equal(domain.OrderStatusShipped, res.Status)
	})

	s.Run("mark delivered cash order paid", func() {
		order := s.coinPaidOrder()
		order.PaymentMethod = domain.PaymentMethodCashOnDelivery
		order.PaymentStatus = domain.PaymentStatusPending
		order.Status = domain.OrderStatusDelivered
		s.m.orders.EXPECT().FindByID(gomock.Any(), int64(20)).Return(order, nil)
		s.m.orders.EXPECT().FindByIDForUpdate(gomock.Any(), int64(20)).Return(order, nil)
		s.m.orders.EXPECT().UpdateStatus(gomock.Any(), repoargs.UpdateOrderStatus{
			ID:            20,
			Status:        domain.OrderStatusDelivered,
			PaymentStatus: domain.PaymentStatusPaid,
		}).Return(&domain.Order{
			ID: 20, Status: domain.OrderStatusDelivered, PaymentStatus: domain.PaymentStatusPaid,
		}, nil)

		res, err := s.service.UpdateOrderStatus(s.T().Context(), UpdateOrderStatusArgs{
			OrderID: 20, Status: domain.OrderStatusDelivered, PaymentStatus: domain.PaymentStatusPaid,
		})
		s.Require().NoError(err)
		s.Equal(domain.PaymentStatusPaid, res.PaymentStatus)
	})

	s.Run("tracking number only", func() {
		order := s.coinPaidOrder()
		order.Status = domain.OrderStatusShipped
		s.m.orders.EXPECT().FindByID(gomock.Any(), int64(20)).Return(order, nil)
		s.m.orders.EXPECT().FindByIDForUpdate(gomock.Any(), int64(20)).Return(order, nil)
		s.m.orders.EXPECT().UpdateStatus(gomock.Any(), repoargs.UpdateOrderStatus{
			ID:             20,
			Status:         domain.OrderStatusShipped,
			PaymentStatus:  domain.PaymentStatusPaid,
			TrackingNumber: "VN456",
		}).Return(&domain.Order{ID: 20, Status: domain.OrderStatusShipped, TrackingNumber: "VN456"}, nil)

		res, err := s.service.UpdateOrderStatus(s.T().Context(), UpdateOrderStatusArgs{
			OrderID: 20, TrackingNumber: "VN456",
		})
		s.Require().NoError(err)
		s.Equal("VN456", res.TrackingNumber)
	})

	s.Run("cancelled order stays without second refund", func() {
		order := s.coinPaidOrder()
		order.Status = domain.OrderStatusCancelled
		order.PaymentStatus = domain.PaymentStatusPending
		s.m.orders.EXPECT().FindByID(gomock.Any(), int64(20)).Return(order, nil)
		s.m.orders.EXPECT().FindByIDForUpdate(gomock.Any(), int64(20)).Return(order, nil)
		s.m.orders.EXPECT().UpdateStatus(gomock.Any(), repoargs.UpdateOrderStatus{
			ID:            20,
			Status:        domain.OrderStatusCancelled,
			PaymentStatus: domain.PaymentStatusFailed,
		}).Return(&domain.Order{ID: 20, Status: domain.OrderStatusCancelled}, nil)

		_, err := s.service.UpdateOrderStatus(s.T().Context(), UpdateOrderStatusArgs{
			OrderID: 20, Status: domain.OrderStatusCancelled, PaymentStatus: domain.PaymentStatusFailed,
		})
		s.Require().NoError(err)
	})

	s.Run("admin cancel refunds coins", func() {
		order := s.coinPaidOrder()
		s.m.orders.EXPECT().FindByID(gomock.Any(), int64(20)).Return(order, nil)
		s.m.orders.EXPECT().FindByIDForUpdate(gomock.Any(), int64(20)).Return(order, nil)
		s.m.users.EXPECT().FindByIDForUpdate(gomock.Any(), int64(1)).Return(s.user(0), nil)
		s.m.coinTxs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.CoinTransaction{ID: 57}, nil)
		s.m.users.EXPECT().UpdateCoinBalance(gomock.Any(), int64(1), int64(330)).Return(nil)
		s.m.orders.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).
			Return(&domain.Order{ID: 20, Status: domain.OrderStatusCancelled}, nil)

		_, err := s.service.UpdateOrderStatus(s.T().Context(), UpdateOrderStatusArgs{
			OrderID: 20, Status: domain.OrderStatusCancelled,
		})
		s.Require().NoError(err)
	})
}

func (s *OrderServiceTestSuite) TestListOrders() {
	s.m.orders.EXPECT().ListByUserID(gomock.Any(), int64(1), repoargs.Page{Limit: 10, Offset: 0}).
		Return([]domain.Order{{ID: 2}, {ID: 1}}, nil)
	s.m.orders.EXPECT().CountByUserID(gomock.Any(), int64(1)).Return(int64(12), nil)

	res, err := s.service.ListOrders(s.T().Context(), 1, 0, 0)
	s.Require().NoError(err)
	s.Len(res.Orders, 2)
	s.Equal(Pagination{CurrentPage: 1, TotalPages: 2, Total: 12, Limit: 10, HasNext: true}, res.Pagination)
}

func (s *OrderServiceTestSuite) TestGetOrderByID() {
	s.m.orders.EXPECT().FindByIDForUser(gomock.Any(), int64(20), int64(2)).Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.GetOrderByID(s.T().Context(), 2, 20)
	s.Require().ErrorIs(err, domain.ErrOrderNotFound)
}
