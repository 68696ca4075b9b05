package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/bookstore/internal/domain"
	"github.com/fsdevblog/bookstore/internal/service"
	"github.com/gin-gonic/gin"
)

type CoinsHandler struct {
	svs CoinServicer
}

func NewCoinsHandler(svs CoinServicer) *CoinsHandler {
	return &CoinsHandler{
		svs: svs,
	}
}

type BalanceResponse struct {
	Balance int64 `json:"balance"`
}

// Balance GET RouteGroup + CoinsBalanceRoute.
func (h *CoinsHandler) Balance(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balance, err := h.svs.GetBalance(reqCtx, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, BalanceResponse{Balance: balance})
}

type WalletResponse struct {
	Balance            int64                 `json:"balance"`
	RecentTransactions []TransactionResponse `json:"recentTransactions"`
}

// Wallet GET RouteGroup + CoinsWalletRoute.
func (h *CoinsHandler) Wallet(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	wallet, err := h.svs.Wallet(reqCtx, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, WalletResponse{
		Balance:            wallet.Balance,
		RecentTransactions: newTransactionsResponse(wallet.RecentTransactions),
	})
}

// Packages GET RouteGroup + CoinsPackagesRoute.
func (h *CoinsHandler) Packages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"packages": h.svs.Packages()})
}

type TopUpParams struct {
	Amount        int64  `binding:"required,gt=0" json:"amount"`
	PaymentMethod string `binding:"required" json:"paymentMethod"`
}

type TopUpResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	CoinsAdded  int64               `json:"coinsAdded"`
	NewBalance  int64               `json:"newBalance"`
}

// TopUp POST RouteGroup + CoinsTopUpRoute.
func (h *CoinsHandler) TopUp(c *gin.Context) {
	var params TopUpParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	entry, err := h.svs.TopUp(reqCtx, service.TopUpArgs{
		UserID: getUserIDFromContext(c),
		Amount: params.Amount,
		Method: params.PaymentMethod,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, TopUpResponse{
		Transaction: newTransactionResponse(entry),
		CoinsAdded:  entry.Amount,
		NewBalance:  entry.BalanceAfter,
	})
}

type TransactionsParams struct {
	Page  uint   `form:"page"`
	Limit uint   `form:"limit"`
	Type  string `form:"type"`
}

type TransactionsResponse struct {
	Transactions []TransactionResponse         `json:"transactions"`
	Pagination   TransactionsPaginationResponse `json:"pagination"`
	Balance      int64                          `json:"balance"`
}

// Transactions GET RouteGroup + CoinsTransactionsRoute.
func (h *CoinsHandler) Transactions(c *gin.Context) {
	var params TransactionsParams
	if bindErr := c.ShouldBindQuery(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	page, err := h.svs.GetUserTransactions(reqCtx, getUserIDFromContext(c), service.TransactionsQuery{
		Page:  params.Page,
		Limit: params.Limit,
		Type:  params.Type,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, TransactionsResponse{
		Transactions: newTransactionsResponse(page.Transactions),
		Pagination: TransactionsPaginationResponse{
			CurrentPage:       page.Pagination.CurrentPage,
			TotalPages:        page.Pagination.TotalPages,
			TotalTransactions: page.Pagination.Total,
			Limit:             page.Pagination.Limit,
			HasNext:           page.Pagination.HasNext,
			HasPrev:           page.Pagination.HasPrev,
		},
		Balance: page.Balance,
	})
}

type PaymentCallbackParams struct {
	TransactionID string `binding:"required,max=64" json:"transactionId"`
	Status        string `binding:"required" json:"status"`
}

// PaymentCallback POST RouteGroup + CoinsPaymentCallbackRoute. Результат оплаты пополнения.
func (h *CoinsHandler) PaymentCallback(c *gin.Context) {
	var params PaymentCallbackParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	entry, err := h.svs.HandlePaymentCallback(reqCtx, service.PaymentCallbackArgs{
		UserID:               getUserIDFromContext(c),
		PaymentTransactionID: params.TransactionID,
		Status:               domain.TransactionStatus(params.Status),
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newTransactionResponse(entry))
}
