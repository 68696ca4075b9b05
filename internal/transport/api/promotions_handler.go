package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PromotionsHandler struct {
	svs PromotionServicer
}

func NewPromotionsHandler(svs PromotionServicer) *PromotionsHandler {
	return &PromotionsHandler{svs: svs}
}

type PromotionQuoteParams struct {
	Total int64 `binding:"gte=0" form:"total"`
}

// Show GET RouteGroup + PromotionRoute. Проверка промокода и расчет скидки для суммы total.
func (h *PromotionsHandler) Show(c *gin.Context) {
	var params PromotionQuoteParams
	if bindErr := c.ShouldBindQuery(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	quote, err := h.svs.Quote(reqCtx, c.Param("code"), params.Total)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	promo := quote.Promotion
	c.JSON(http.StatusOK, PromotionResponse{
		Code:            promo.Code,
		Description:     promo.Description,
		DiscountType:    promo.DiscountType,
		DiscountValue:   promo.DiscountValue,
		MinimumPurchase: promo.MinimumPurchase,
		EndDate:         promo.EndDate,
		Valid:           quote.Valid,
		Applicable:      quote.Applicable,
		Discount:        quote.Discount,
	})
}
