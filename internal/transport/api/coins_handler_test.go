package api

import (
	"net/http"
	"testing"

	"github.com/fsdevblog/bookstore/internal/domain"
	"github.com/fsdevblog/bookstore/internal/pricing"
	"github.com/fsdevblog/bookstore/internal/service"
	"github.com/fsdevblog/bookstore/internal/transport/api/testutils"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type CoinsHandlerTestSuite struct {
	handlerSuite
}

func TestCoinsHandlerSuite(t *testing.T) {
	suite.Run(t, new(CoinsHandlerTestSuite))
}

func (s *CoinsHandlerTestSuite) TestBalance() {
	s.coinService.EXPECT().GetBalance(gomock.Any(), testUserID).Return(int64(70), nil)

	resp := s.request(http.MethodGet, CoinsBalanceRoute, s.userToken, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var body BalanceResponse
	s.Require().NoError(testutils.DecodeJSON(resp, &body))
	s.Equal(int64(70), body.Balance)
}

func (s *CoinsHandlerTestSuite) TestPackages() {
	s.coinService.EXPECT().Packages().Return(pricing.TopUpPackages())

	resp := s.request(http.MethodGet, CoinsPackagesRoute, s.userToken, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var body struct {
		Packages []pricing.TopUpPackage `json:"packages"`
	}
	s.Require().NoError(testutils.DecodeJSON(resp, &body))
	s.Len(body.Packages, 5)
}

func (s *CoinsHandlerTestSuite) TestTopUp() {
	s.Run("ok", func() {
		s.coinService.EXPECT().TopUp(gomock.Any(), service.TopUpArgs{
			UserID: testUserID, Amount: 1_000_000, Method: "momo",
		}).Return(&domain.CoinTransaction{
			ID:                   5,
			Type:                 domain.TransactionTypeDeposit,
			Amount:               1150,
			BalanceBefore:        20,
			BalanceAfter:         1170,
			PaymentTransactionID: "SIM_1_ABC",
			Status:               domain.TransactionStatusCompleted,
		}, nil)

		resp := s.request(http.MethodPost, CoinsTopUpRoute, s.userToken,
			map[string]any{"amount": 1_000_000, "paymentMethod": "momo"})
		s.Require().Equal(http.StatusOK, resp.StatusCode)
		var body TopUpResponse
		s.Require().NoError(testutils.DecodeJSON(resp, &body))
		s.Equal(int64(1150), body.CoinsAdded)
		s.Equal(int64(1170), body.NewBalance)
		s.Equal("SIM_1_ABC", body.Transaction.PaymentTransactionID)
	})

	s.Run("invalid method", func() {
		s.coinService.EXPECT().TopUp(gomock.Any(), gomock.Any()).Return(nil, domain.ErrInvalidPaymentMethod)

		resp := s.request(http.MethodPost, CoinsTopUpRoute, s.userToken,
			map[string]any{"amount": 100_000, "paymentMethod": "cash"})
		s.requireError(resp, http.StatusBadRequest, "INVALID_PAYMENT_METHOD")
	})

	s.Run("zero amount", func() {
		resp := s.request(http.MethodPost, CoinsTopUpRoute, s.userToken,
			map[string]any{"amount": 0, "paymentMethod": "momo"})
		s.requireError(resp, http.StatusUnprocessableEntity, "VALIDATION_ERROR")
	})
}

func (s *CoinsHandlerTestSuite) TestTransactions() {
	s.coinService.EXPECT().GetUserTransactions(gomock.Any(), testUserID, service.TransactionsQuery{
		Page: 2, Limit: 20, Type: "spend",
	}).Return(&service.TransactionsPage{
		Transactions: []domain.CoinTransaction{{ID: 3, Type: domain.TransactionTypeSpend, Amount: 10}},
		Pagination:   service.Pagination{CurrentPage: 2, TotalPages: 3, Total: 45, Limit: 20, HasNext: true, HasPrev: true},
		Balance:      90,
	}, nil)

	resp := s.request(http.MethodGet, CoinsTransactionsRoute+"?page=2&limit=20&type=spend", s.userToken, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var body TransactionsResponse
	s.Require().NoError(testutils.DecodeJSON(resp, &body))
	s.Len(body.Transactions, 1)
	s.Equal(int64(45), body.Pagination.TotalTransactions)
	s.Equal(int64(90), body.Balance)
}

func (s *CoinsHandlerTestSuite) TestPaymentCallback() {
	s.Run("completed", func() {
		s.coinService.EXPECT().HandlePaymentCallback(gomock.Any(), service.PaymentCallbackArgs{
			UserID:               testUserID,
			PaymentTransactionID: "SIM_1_ABC",
			Status:               domain.TransactionStatusCompleted,
		}).Return(&domain.CoinTransaction{ID: 5, Status: domain.TransactionStatusCompleted}, nil)

		resp := s.request(http.MethodPost, CoinsPaymentCallbackRoute, s.userToken,
			map[string]any{"transactionId": "SIM_1_ABC", "status": "completed"})
		s.Require().Equal(http.StatusOK, resp.StatusCode)
		var body TransactionResponse
		s.Require().NoError(testutils.DecodeJSON(resp, &body))
		s.Equal(domain.TransactionStatusCompleted, body.Status)
	})

	s.Run("unknown transaction", func() {
		s.coinService.EXPECT().HandlePaymentCallback(gomock.Any(), gomock.Any()).
			Return(nil, domain.ErrTransactionNotFound)

		resp := s.request(http.MethodPost, CoinsPaymentCallbackRoute, s.userToken,
			map[string]any{"transactionId": "SIM_X", "status": "failed"})
		s.requireError(resp, http.StatusNotFound, "TRANSACTION_NOT_FOUND")
	})
}
