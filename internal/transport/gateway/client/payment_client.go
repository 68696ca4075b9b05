// Package client http клиент платежного шлюза.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

const RoutePayment = "/api/payments/%s"

// Константы минимального и максимально значения в заголовке Retry-After.
const (
	minRetryAfter     = 1
	maxRetryAfter     = 120
	defaultRetryAfter = 60
)

type StatusType string

const (
	StatusPending   StatusType = "PENDING"
	StatusCompleted StatusType = "COMPLETED"
	StatusFailed    StatusType = "FAILED"
)

type Response struct {
	PaymentID string          `json:"paymentId"`
	Status    StatusType      `json:"status"`
	Amount    decimal.Decimal `json:"amount,omitempty"`
}

// HTTPClient реализация интерфейса Client для запросов к платежному шлюзу.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) HTTPClient {
	return HTTPClient{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
}

// GetPayment запрашивает у шлюза статус платежа.
// При ответе со статусом отличным от http.StatusOK возвращает StatusCodeError, или
// TooManyRequestError в случае http.StatusTooManyRequests.
//
//nolint:nonamedreturns
func (c HTTPClient) GetPayment(ctx context.Context, paymentID string) (response *Response, err error) {
	reqURL := c.baseURL + fmt.Sprintf(RoutePayment, url.PathEscape(paymentID))

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if reqErr != nil {
		return nil, fmt.Errorf("create request: %s", reqErr.Error())
	}
	req.Header.Set("Accept", "application/json")

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return nil, fmt.Errorf("do request: %s", doErr.Error())
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, NewTooManyRequestError(parseRetryAfter(resp.Header.Get("Retry-After")))
	}

	if resp.StatusCode != http.StatusOK {
		err = NewStatusCodeError(resp.StatusCode)
		return nil, err
	}

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		err = fmt.Errorf("read response: %s", readErr.Error())
		return nil, err
	}

	if jsonErr := json.Unmarshal(body, &response); jsonErr != nil {
		err = fmt.Errorf("parse response: %s", jsonErr.Error())
		return nil, err
	}

	return response, nil
}

// parseRetryAfter значение заголовка Retry-After в секундах. Пустое, битое или выходящее за
// допустимые границы значение заменяется на defaultRetryAfter.
func parseRetryAfter(value string) time.Duration {
	retryAfter, parseErr := decimal.NewFromString(value)
	if parseErr != nil ||
		retryAfter.LessThan(decimal.NewFromInt(minRetryAfter)) ||
		retryAfter.GreaterThan(decimal.NewFromInt(maxRetryAfter)) {
		retryAfter = decimal.NewFromInt(defaultRetryAfter)
	}
	return time.Duration(retryAfter.IntPart()) * time.Second
}
