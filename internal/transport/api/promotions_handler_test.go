package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/fsdevblog/bookstore/internal/domain"
	"github.com/fsdevblog/bookstore/internal/service"
	"github.com/fsdevblog/bookstore/internal/transport/api/testutils"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PromotionsHandlerTestSuite struct {
	handlerSuite
}

func TestPromotionsHandlerSuite(t *testing.T) {
	suite.Run(t, new(PromotionsHandlerTestSuite))
}

func (s *PromotionsHandlerTestSuite) TestShow() {
	s.promoService.EXPECT().Quote(gomock.Any(), "summer10", int64(300_000)).Return(&service.PromotionQuote{
		Promotion: &domain.Promotion{
			Code:          "SUMMER10",
			DiscountType:  domain.DiscountTypePercentage,
			DiscountValue: decimal.RequireFromString("12.5"),
			EndDate:       time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC),
		},
		Valid:      true,
		Applicable: true,
		Discount:   37_500,
	}, nil)

	resp := s.request(http.MethodGet, "/promotions/summer10?total=300000", s.userToken, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var body PromotionResponse
	s.Require().NoError(testutils.DecodeJSON(resp, &body))
	s.Equal("SUMMER10", body.Code)
	s.True(body.DiscountValue.Equal(decimal.RequireFromString("12.5")))
	s.True(body.Applicable)
	s.Equal(int64(37_500), body.Discount)
}

func (s *PromotionsHandlerTestSuite) TestShow_Errors() {
	s.Run("not found", func() {
		s.promoService.EXPECT().Quote(gomock.Any(), "NOPE", int64(0)).Return(nil, domain.ErrPromotionNotFound)

		resp := s.request(http.MethodGet, "/promotions/NOPE", s.userToken, nil)
		s.requireError(resp, http.StatusNotFound, "PROMOTION_NOT_FOUND")
	})

	s.Run("negative total", func() {
		resp := s.request(http.MethodGet, "/promotions/SUMMER10?total=-5", s.userToken, nil)
		s.requireError(resp, http.StatusUnprocessableEntity, "VALIDATION_ERROR")
	})
}
