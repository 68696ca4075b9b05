package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/bookstore/internal/domain"
	"github.com/fsdevblog/bookstore/internal/service"
	"github.com/gin-gonic/gin"
)

type OrdersHandler struct {
	orderSvs OrderServicer
}

func NewOrdersHandler(orderSvs OrderServicer) *OrdersHandler {
	return &OrdersHandler{
		orderSvs: orderSvs,
	}
}

type ShippingParams struct {
	FullName   string `binding:"omitempty,max=100" json:"fullName"`
	Address    string `binding:"omitempty,max=255" json:"address"`
	City       string `binding:"omitempty,max=100" json:"city"`
	Phone      string `binding:"omitempty,max=20" json:"phone"`
	PostalCode string `binding:"omitempty,max=20" json:"postalCode"`
}

type CreateOrderParams struct {
	Shipping      ShippingParams `json:"shippingAddress"`
	PaymentMethod string         `binding:"omitempty,max=32" json:"paymentMethod"`
	Notes         string         `binding:"omitempty,max_bytes=1000" json:"notes"`
	PromotionCode string         `binding:"omitempty,max=50" json:"promotionCode"`
}

// Create POST RouteGroup + OrdersRoute. Оформляет заказ из корзины.
func (o *OrdersHandler) Create(c *gin.Context) {
	var params CreateOrderParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := o.orderSvs.CreateOrder(reqCtx, service.CreateOrderArgs{
		UserID:        getUserIDFromContext(c),
		Shipping:      domain.ShippingInfo(params.Shipping),
		PaymentMethod: params.PaymentMethod,
		Notes:         params.Notes,
		PromotionCode: params.PromotionCode,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newOrderResponse(order))
}

type ListOrdersParams struct {
	Page  uint `form:"page"`
	Limit uint `form:"limit"`
}

// Index GET RouteGroup + OrdersRoute.
func (o *OrdersHandler) Index(c *gin.Context) {
	var params ListOrdersParams
	if bindErr := c.ShouldBindQuery(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	page, err := o.orderSvs.ListOrders(reqCtx, getUserIDFromContext(c), params.Page, params.Limit)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	response := OrdersResponse{
		Orders: make([]OrderResponse, len(page.Orders)),
		Pagination: OrdersPaginationResponse{
			CurrentPage: page.Pagination.CurrentPage,
			TotalPages:  page.Pagination.TotalPages,
			TotalOrders: page.Pagination.Total,
			Limit:       page.Pagination.Limit,
			HasNext:     page.Pagination.HasNext,
			HasPrev:     page.Pagination.HasPrev,
		},
	}
	for i := range page.Orders {
		response.Orders[i] = newOrderResponse(&page.Orders[i])
	}
	c.JSON(http.StatusOK, response)
}

// Show GET RouteGroup + OrderRoute.
func (o *OrdersHandler) Show(c *gin.Context) {
	orderID, ok := idParam(c, "orderID")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := o.orderSvs.GetOrderByID(reqCtx, getUserIDFromContext(c), orderID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrderResponse(order))
}

// Cancel POST RouteGroup + OrderCancelRoute.
func (o *OrdersHandler) Cancel(c *gin.Context) {
	orderID, ok := idParam(c, "orderID")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := o.orderSvs.CancelOrder(reqCtx, getUserIDFromContext(c), orderID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrderResponse(order))
}
