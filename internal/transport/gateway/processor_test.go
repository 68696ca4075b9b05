package gateway

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/fsdevblog/bookstore/internal/domain"
	"github.com/fsdevblog/bookstore/internal/service"
	"github.com/fsdevblog/bookstore/internal/transport/gateway/client"
	"github.com/fsdevblog/bookstore/internal/transport/gateway/mocks"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type ProcessorTestSuite struct {
	suite.Suite
	processor      *Processor
	mockHTTPClient *mocks.MockClient
	mockService    *mocks.MockServicer
	ctrl           *gomock.Controller
}

func (s *ProcessorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.mockHTTPClient = mocks.NewMockClient(s.ctrl)
	s.mockService = mocks.NewMockServicer(s.ctrl)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	s.processor = New(s.mockService, "", logger).SetWorkers(2)
	s.processor.client = s.mockHTTPClient
}

func (s *ProcessorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestProcessorSuite(t *testing.T) {
	suite.Run(t, new(ProcessorTestSuite))
}

func deposits(ids ...string) []domain.CoinTransaction {
	res := make([]domain.CoinTransaction, len(ids))
	for i, id := range ids {
		res[i] = domain.CoinTransaction{
			ID:                   int64(i + 1),
			UserID:               100,
			Type:                 domain.TransactionTypeDeposit,
			PaymentTransactionID: id,
			Status:               domain.TransactionStatusPending,
		}
	}
	return res
}

func (s *ProcessorTestSuite) TestProcess_NoDeposits() {
	s.mockService.EXPECT().
		PendingDeposits(gomock.Any(), s.processor.limitPerIteration).
		Return([]domain.CoinTransaction{}, nil)

	err := s.processor.process(s.T().Context())
	s.ErrorIs(err, ErrNoDeposits)
}

func (s *ProcessorTestSuite) TestProcess_ServiceError() {
	dbErr := errors.New("connection refused")
	s.mockService.EXPECT().
		PendingDeposits(gomock.Any(), s.processor.limitPerIteration).
		Return(nil, dbErr)

	err := s.processor.process(s.T().Context())
	s.ErrorIs(err, dbErr)
}

func (s *ProcessorTestSuite) TestProcess_Success() {
	s.mockService.EXPECT().
		PendingDeposits(gomock.Any(), s.processor.limitPerIteration).
		Return(deposits("SIM_1", "SIM_2", "SIM_3"), nil)

	s.mockHTTPClient.EXPECT().GetPayment(gomock.Any(), "SIM_1").
		Return(&client.Response{PaymentID: "SIM_1", Status: client.StatusCompleted}, nil)
	s.mockHTTPClient.EXPECT().GetPayment(gomock.Any(), "SIM_2").
		Return(&client.Response{PaymentID: "SIM_2", Status: client.StatusFailed}, nil)
	// платеж еще в обработке, в сверку не попадает
	s.mockHTTPClient.EXPECT().GetPayment(gomock.Any(), "SIM_3").
		Return(&client.Response{PaymentID: "SIM_3", Status: client.StatusPending}, nil)

	s.mockService.EXPECT().
		ReconcileDeposits(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, updates []service.DepositUpdate) {
			s.Require().Len(updates, 2)
			got := make(map[string]domain.TransactionStatus, len(updates))
			for _, u := range updates {
				s.NoError(u.Error)
				got[u.PaymentTransactionID] = u.Status
			}
			s.Equal(map[string]domain.TransactionStatus{
				"SIM_1": domain.TransactionStatusCompleted,
				"SIM_2": domain.TransactionStatusFailed,
			}, got)
		}).
		Return(nil)

	ctx, cancel := context.WithTimeout(s.T().Context(), time.Second)
	defer cancel()
	s.NoError(s.processor.process(ctx))
}

func (s *ProcessorTestSuite) TestProcess_GatewayErrors() {
	s.mockService.EXPECT().
		PendingDeposits(gomock.Any(), s.processor.limitPerIteration).
		Return(deposits("SIM_1", "SIM_2"), nil)

	s.mockHTTPClient.EXPECT().GetPayment(gomock.Any(), "SIM_1").
		Return(nil, client.NewStatusCodeError(http.StatusInternalServerError))
	s.mockHTTPClient.EXPECT().GetPayment(gomock.Any(), "SIM_2").
		Return(&client.Response{PaymentID: "SIM_2", Status: "REFUNDED"}, nil)

	// ни одного результата, сервис не вызывается
	ctx, cancel := context.WithTimeout(s.T().Context(), time.Second)
	defer cancel()
	s.NoError(s.processor.process(ctx))
}

func (s *ProcessorTestSuite) TestProcess_RetriesAfterTooManyRequests() {
	s.mockService.EXPECT().
		PendingDeposits(gomock.Any(), s.processor.limitPerIteration).
		Return(deposits("SIM_1"), nil)

	gomock.InOrder(
		s.mockHTTPClient.EXPECT().GetPayment(gomock.Any(), "SIM_1").
			Return(nil, client.NewTooManyRequestError(10*time.Millisecond)),
		s.mockHTTPClient.EXPECT().GetPayment(gomock.Any(), "SIM_1").
			Return(&client.Response{PaymentID: "SIM_1", Status: client.StatusCompleted}, nil),
	)

	s.mockService.EXPECT().
		ReconcileDeposits(gomock.Any(), []service.DepositUpdate{{
			PaymentTransactionID: "SIM_1",
			Status:               domain.TransactionStatusCompleted,
		}}).
		Return(nil)

	ctx, cancel := context.WithTimeout(s.T().Context(), time.Second)
	defer cancel()
	s.NoError(s.processor.process(ctx))
}

func (s *ProcessorTestSuite) TestProcess_CancelledWhileWaiting() {
	s.mockService.EXPECT().
		PendingDeposits(gomock.Any(), s.processor.limitPerIteration).
		Return(deposits("SIM_1"), nil)
	s.mockHTTPClient.EXPECT().GetPayment(gomock.Any(), "SIM_1").
		Return(nil, client.NewTooManyRequestError(time.Minute))

	ctx, cancel := context.WithTimeout(s.T().Context(), 50*time.Millisecond)
	defer cancel()
	s.NoError(s.processor.process(ctx))
}

func (s *ProcessorTestSuite) TestRun_StopsOnCancel() {
	s.mockService.EXPECT().
		PendingDeposits(gomock.Any(), gomock.Any()).
		Return(nil, nil).
		AnyTimes()

	ctx, cancel := context.WithCancel(s.T().Context())
	done := make(chan struct{})
	go func() {
		s.processor.SetPollInterval(10 * time.Millisecond).Run(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("processor did not stop")
	}
}
