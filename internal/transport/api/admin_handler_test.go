package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/fsdevblog/bookstore/internal/domain"
	"github.com/fsdevblog/bookstore/internal/service"
	"github.com/fsdevblog/bookstore/internal/transport/api/testutils"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type AdminHandlerTestSuite struct {
	handlerSuite
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestForbiddenForUser() {
	resp := s.request(http.MethodPost, AdminGroup+AdminCoinsBonusRoute, s.userToken,
		map[string]any{"userId": 2, "amount": 10})
	s.requireError(resp, http.StatusForbidden, "FORBIDDEN")

	resp = s.request(http.MethodPut, AdminGroup+"/orders/20/status", s.userToken,
		map[string]any{"status": "processing"})
	s.requireError(resp, http.StatusForbidden, "FORBIDDEN")
}

func (s *AdminHandlerTestSuite) TestUpdateOrderStatus() {
	s.Run("shipped with tracking", func() {
		s.orderService.EXPECT().UpdateOrderStatus(gomock.Any(), service.UpdateOrderStatusArgs{
			OrderID:        20,
			Status:         domain.OrderStatusShipped,
			TrackingNumber: "VN123",
		}).Return(&domain.Order{ID: 20, Status: domain.OrderStatusShipped, TrackingNumber: "VN123"}, nil)

		resp := s.request(http.MethodPut, AdminGroup+"/orders/20/status", s.adminToken,
			map[string]any{"status": "shipped", "trackingNumber": "VN123"})
		s.Require().Equal(http.StatusOK, resp.StatusCode)
		var body OrderResponse
		s.Require().NoError(testutils.DecodeJSON(resp, &body))
		s.Equal(domain.OrderStatusShipped, body.Status)
		s.Equal("VN123", body.TrackingNumber)
	})

	s.Run("transition not allowed", func() {
		s.orderService.EXPECT().UpdateOrderStatus(gomock.Any(), gomock.Any()).
			Return(nil, domain.ErrInvalidTransition)

		resp := s.request(http.MethodPut, AdminGroup+"/orders/20/status", s.adminToken,
			map[string]any{"status": "pending"})
		s.requireError(resp, http.StatusBadRequest, "INVALID_STATUS_TRANSITION")
	})

	s.Run("payment status without status", func() {
		s.orderService.EXPECT().UpdateOrderStatus(gomock.Any(), service.UpdateOrderStatusArgs{
			OrderID:       20,
			PaymentStatus: domain.PaymentStatusPaid,
		}).Return(&domain.Order{
			ID: 20, Status: domain.OrderStatusDelivered, PaymentStatus: domain.PaymentStatusPaid,
		}, nil)

		resp := s.request(http.MethodPut, AdminGroup+"/orders/20/status", s.adminToken,
			map[string]any{"paymentStatus": "paid"})
		s.Require().Equal(http.StatusOK, resp.StatusCode)
		var body OrderResponse
		s.Require().NoError(testutils.DecodeJSON(resp, &body))
		s.Equal(domain.PaymentStatusPaid, body.PaymentStatus)
	})

	s.Run("tracking number too long", func() {
		resp := s.request(http.MethodPut, AdminGroup+"/orders/20/status", s.adminToken,
			map[string]any{"trackingNumber": strings.Repeat("x", 101)})
		s.requireError(resp, http.StatusUnprocessableEntity, "VALIDATION_ERROR")
	})

	s.Run("bad id", func() {
		resp := s.request(http.MethodPut, AdminGroup+"/orders/abc/status", s.adminToken,
			map[string]any{"status": "shipped"})
		s.requireError(resp, http.StatusBadRequest, "INVALID_ID")
	})
}

func (s *AdminHandlerTestSuite) TestBonus() {
	s.coinService.EXPECT().AdminBonus(gomock.Any(), service.AdminBonusArgs{
		UserID: 2, Amount: 50, Description: "Loyalty gift",
	}).Return(&domain.CoinTransaction{
		ID:            9,
		Type:          domain.TransactionTypeBonus,
		Amount:        50,
		BalanceBefore: 10,
		BalanceAfter:  60,
		Description:   "Loyalty gift",
		Status:        domain.TransactionStatusCompleted,
	}, nil)

	resp := s.request(http.MethodPost, AdminGroup+AdminCoinsBonusRoute, s.adminToken,
		map[string]any{"userId": 2, "amount": 50, "description": "Loyalty gift"})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var body TransactionResponse
	s.Require().NoError(testutils.DecodeJSON(resp, &body))
	s.Equal(domain.TransactionTypeBonus, body.Type)
	s.Equal(int64(60), body.BalanceAfter)
}
