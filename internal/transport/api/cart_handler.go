package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartSvs CartServicer
}

func NewCartHandler(cartSvs CartServicer) *CartHandler {
	return &CartHandler{cartSvs: cartSvs}
}

// Show GET RouteGroup + CartRoute. Корзина с предварительным расчетом доставки.
func (h *CartHandler) Show(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	view, err := h.cartSvs.GetCart(reqCtx, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCartViewResponse(view))
}

type AddCartItemParams struct {
	BookID   int64 `binding:"required,gt=0" json:"bookId"`
	Quantity int64 `binding:"omitempty,gt=0" json:"quantity"`
}

// AddItem POST RouteGroup + CartItemsRoute. Количество по умолчанию 1.
func (h *CartHandler) AddItem(c *gin.Context) {
	var params AddCartItemParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}
	if params.Quantity == 0 {
		params.Quantity = 1
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	cart, err := h.cartSvs.AddItem(reqCtx, getUserIDFromContext(c), params.BookID, params.Quantity)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCartResponse(cart))
}

type UpdateCartItemParams struct {
	Quantity int64 `binding:"required,gt=0" json:"quantity"`
}

// UpdateItem PUT RouteGroup + CartItemRoute.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	bookID, ok := idParam(c, "bookID")
	if !ok {
		return
	}
	var params UpdateCartItemParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	cart, err := h.cartSvs.UpdateItem(reqCtx, getUserIDFromContext(c), bookID, params.Quantity)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCartResponse(cart))
}

// RemoveItem DELETE RouteGroup + CartItemRoute.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	bookID, ok := idParam(c, "bookID")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	cart, err := h.cartSvs.RemoveItem(reqCtx, getUserIDFromContext(c), bookID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCartResponse(cart))
}

// Clear DELETE RouteGroup + CartRoute.
func (h *CartHandler) Clear(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.cartSvs.ClearCart(reqCtx, getUserIDFromContext(c)); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusNoContent)
}
