package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	server *httptest.Server
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TearDownTest() {
	if s.server != nil {
		s.server.Close()
	}
}

func (s *ClientTestSuite) TestGetPayment() {
	type tcase struct {
		name         string
		paymentID    string
		httpStatus   int
		retryAfter   string
		wantResponse *Response
		wantErr      error
	}

	cases := []tcase{
		{
			name:       "completed",
			paymentID:  "SIM_1_AAA",
			httpStatus: http.StatusOK,
			wantResponse: &Response{
				PaymentID: "SIM_1_AAA",
				Status:    StatusCompleted,
				Amount:    decimal.NewFromInt(1_000_000),
			},
		}, {
			name:       "unknown payment",
			paymentID:  "SIM_1_BBB",
			httpStatus: http.StatusNotFound,
			wantErr:    NewStatusCodeError(http.StatusNotFound),
		}, {
			name:       "too many requests",
			paymentID:  "SIM_1_CCC",
			httpStatus: http.StatusTooManyRequests,
			retryAfter: "5",
			wantErr:    NewTooManyRequestError(5 * time.Second),
		}, {
			name:       "internal error",
			paymentID:  "SIM_1_DDD",
			httpStatus: http.StatusInternalServerError,
			wantErr:    NewStatusCodeError(http.StatusInternalServerError),
		},
	}

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, exist := strings.CutPrefix(r.URL.Path, "/api/payments/")
		s.Require().True(exist) //nolint:testifylint

		var rc *tcase
		for i := range cases {
			if cases[i].paymentID == id {
				rc = &cases[i]
				break
			}
		}
		s.Require().NotNilf(rc, "тест для пути %s не найден", r.URL.Path) //nolint:testifylint

		if rc.retryAfter != "" {
			w.Header().Set("Retry-After", rc.retryAfter)
		}
		if rc.httpStatus != http.StatusOK {
			w.WriteHeader(rc.httpStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		s.NoError(json.NewEncoder(w).Encode(rc.wantResponse))
	}))

	for _, t := range cases {
		s.Run(t.name, func() {
			client := New(s.server.URL)
			response, err := client.GetPayment(s.T().Context(), t.paymentID)

			if t.wantErr != nil {
				s.Require().Error(err)
				s.Equal(t.wantErr, err)
				return
			}
			s.Require().NoError(err)
			s.Equal(t.wantResponse.PaymentID, response.PaymentID)
			s.Equal(t.wantResponse.Status, response.Status)
			s.True(t.wantResponse.Amount.Equal(response.Amount))
		})
	}
}

func TestParseRetryAfter(t *testing.T) {
	assert.Equal(t, 7*time.Second, parseRetryAfter("7"))
	assert.Equal(t, 60*time.Second, parseRetryAfter(""))
	assert.Equal(t, 60*time.Second, parseRetryAfter("0"))
	assert.Equal(t, 60*time.Second, parseRetryAfter("3600"))
	assert.Equal(t, 60*time.Second, parseRetryAfter("soon"))
}
