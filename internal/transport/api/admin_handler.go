package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/bookstore/internal/domain"
	"github.com/fsdevblog/bookstore/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler административные операции над заказами и кошельками.
type AdminHandler struct {
	orderSvs OrderServicer
	coinSvs  CoinServicer
}

func NewAdminHandler(orderSvs OrderServicer, coinSvs CoinServicer) *AdminHandler {
	return &AdminHandler{orderSvs: orderSvs, coinSvs: coinSvs}
}

type UpdateOrderStatusParams struct {
	Status         string `json:"status"`
	PaymentStatus  string `json:"paymentStatus"`
	TrackingNumber string `binding:"omitempty,max=100" json:"trackingNumber"`
}

// UpdateOrderStatus PUT RouteGroup + AdminOrderStatusRoute.
func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	orderID, ok := idParam(c, "orderID")
	if !ok {
		return
	}
	var params UpdateOrderStatusParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := h.orderSvs.UpdateOrderStatus(reqCtx, service.UpdateOrderStatusArgs{
		OrderID:        orderID,
		Status:         domain.OrderStatus(params.Status),
		PaymentStatus:  domain.PaymentStatus(params.PaymentStatus),
		TrackingNumber: params.TrackingNumber,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrderResponse(order))
}

type AdminBonusParams struct {
	UserID      int64  `binding:"required,gt=0" json:"userId"`
	Amount      int64  `binding:"required,gt=0" json:"amount"`
	Description string `binding:"omitempty,max_bytes=500" json:"description"`
}

// Bonus POST RouteGroup + AdminCoinsBonusRoute.
func (h *AdminHandler) Bonus(c *gin.Context) {
	var params AdminBonusParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	entry, err := h.coinSvs.AdminBonus(reqCtx, service.AdminBonusArgs(params))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newTransactionResponse(entry))
}
