// Package gateway сверяет пополнения монет со статусами платежей во внешнем платежном шлюзе.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fsdevblog/bookstore/internal/domain"
	"github.com/fsdevblog/bookstore/internal/service"
	"github.com/fsdevblog/bookstore/internal/transport/gateway/client"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	defaultServiceTimeout         = 3 * time.Second
	defaultAPITimeout             = 10 * time.Second
	defaultPollInterval           = 5 * time.Second
	defaultLimitPerIteration uint = 100
	defaultWorkers           uint = 10
)

// Processor опрашивает шлюз по ожидающим пополнениям и передает результаты в сервис монет.
type Processor struct {
	client            Client
	svs               Servicer
	l                 *logrus.Entry
	limitPerIteration uint
	workers           uint
	pollInterval      time.Duration
}

func New(svs Servicer, apiBaseURL string, l *logrus.Logger) *Processor {
	return &Processor{
		svs:    svs,
		client: client.New(apiBaseURL),
		l: l.WithFields(logrus.Fields{
			"component": "gateway",
			"module":    "processor",
		}),
		limitPerIteration: defaultLimitPerIteration,
		workers:           defaultWorkers,
		pollInterval:      defaultPollInterval,
	}
}

// SetLimitPerIteration кол-во пополнений, обрабатываемых за одну итерацию.
func (p *Processor) SetLimitPerIteration(limit uint) *Processor {
	p.limitPerIteration = limit
	return p
}

// SetWorkers кол-во параллельных запросов к шлюзу.
func (p *Processor) SetWorkers(workers uint) *Processor {
	p.workers = workers
	return p
}

func (p *Processor) SetPollInterval(interval time.Duration) *Processor {
	p.pollInterval = interval
	return p
}

// Run запускает сверку в цикле до отмены контекста.
//
// На каждой итерации:
//  1. Через сервисный слой берется список ожидающих пополнений (не больше SetLimitPerIteration).
//  2. Воркеры (SetWorkers) запрашивают у шлюза статус каждого платежа.
//  3. Результаты отправляются в сервис, который подтверждает или отменяет пополнения.
func (p *Processor) Run(ctx context.Context) {
	p.l.WithFields(logrus.Fields{
		"limitPerIteration": p.limitPerIteration,
		"workers":           p.workers,
		"pollInterval":      p.pollInterval,
	}).Info("Starting")

	for {
		if err := p.process(ctx); err != nil && !errors.Is(err, ErrNoDeposits) {
			p.l.WithError(err).Error("process error")
		}

		select {
		case <-ctx.Done():
			p.l.Info("Got stop signal, exiting...")
			return
		case <-time.After(p.pollInterval):
		}
	}
}

// process одна итерация сверки. Возвращает ErrNoDeposits, если сверять нечего.
func (p *Processor) process(ctx context.Context) error {
	deposits, err := p.produce(ctx)
	if err != nil {
		return fmt.Errorf("process: %w", err)
	}

	updates := p.runWorkers(ctx, deposits)
	if len(updates) == 0 {
		return nil
	}

	if updErr := p.svs.ReconcileDeposits(ctx, updates); updErr != nil {
		return fmt.Errorf("process: %w", updErr)
	}
	return nil
}

// runWorkers опрашивает шлюз по каждому пополнению не более чем в p.workers потоков.
// Платежи, которые шлюз еще обрабатывает, в результат не попадают.
func (p *Processor) runWorkers(ctx context.Context, deposits []domain.CoinTransaction) []service.DepositUpdate {
	var (
		mu      sync.Mutex
		updates = make([]service.DepositUpdate, 0, len(deposits))
	)

	g := new(errgroup.Group)
	g.SetLimit(int(max(p.workers, 1))) //nolint:gosec

	for _, deposit := range deposits {
		g.Go(func() error {
			update := p.checkPayment(ctx, deposit.PaymentTransactionID)

			l := p.l.WithFields(logrus.Fields{
				"transactionID":        deposit.ID,
				"userID":               deposit.UserID,
				"paymentTransactionID": deposit.PaymentTransactionID,
			})
			if update.Error != nil {
				l.WithError(update.Error).Error("get payment status")
				return nil
			}
			if update.Status == domain.TransactionStatusPending {
				return nil
			}
			l.WithField("status", update.Status).Info("Success")

			mu.Lock()
			updates = append(updates, update)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return updates
}

// checkPayment запрашивает статус платежа. На ответ 429 ждет время из Retry-After и повторяет запрос.
func (p *Processor) checkPayment(ctx context.Context, paymentID string) service.DepositUpdate {
	update := service.DepositUpdate{PaymentTransactionID: paymentID}
	for {
		reqCtx, cancel := context.WithTimeout(ctx, defaultAPITimeout)
		resp, err := p.client.GetPayment(reqCtx, paymentID)
		cancel()

		if err != nil {
			var tooManyReq *client.TooManyRequestError
			if !errors.As(err, &tooManyReq) {
				update.Error = err
				return update
			}
			select {
			case <-ctx.Done():
				update.Error = ctx.Err()
				return update
			case <-time.After(tooManyReq.RetryAfter):
				continue
			}
		}

		status, statusErr := transactionStatus(resp.Status)
		if statusErr != nil {
			update.Error = statusErr
			return update
		}
		update.Status = status
		return update
	}
}

func transactionStatus(status client.StatusType) (domain.TransactionStatus, error) {
	switch status {
	case client.StatusPending:
		return domain.TransactionStatusPending, nil
	case client.StatusCompleted:
		return domain.TransactionStatusCompleted, nil
	case client.StatusFailed:
		return domain.TransactionStatusFailed, nil
	}
	return "", fmt.Errorf("unknown payment status %q", status)
}

// produce ожидающие подтверждения пополнения. Возвращает ErrNoDeposits, если их нет.
func (p *Processor) produce(ctx context.Context) ([]domain.CoinTransaction, error) {
	produceCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	deposits, err := p.svs.PendingDeposits(produceCtx, p.limitPerIteration)
	if err != nil {
		return nil, fmt.Errorf("produce: %w", err)
	}
	if len(deposits) == 0 {
		return nil, ErrNoDeposits
	}
	return deposits, nil
}
