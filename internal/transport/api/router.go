package api

import (
	"time"

	"github.com/fsdevblog/bookstore/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup = "/api"

	CartRoute      = "/cart"
	CartItemsRoute = "/cart/items"
	CartItemRoute  = "/cart/items/:bookID"

	OrdersRoute      = "/orders"
	OrderRoute       = "/orders/:orderID"
	OrderCancelRoute = "/orders/:orderID/cancel"

	CoinsBalanceRoute         = "/coins/balance"
	CoinsWalletRoute          = "/coins/wallet"
	CoinsPackagesRoute        = "/coins/packages"
	CoinsTopUpRoute           = "/coins/topup"
	CoinsTransactionsRoute    = "/coins/transactions"
	CoinsPaymentCallbackRoute = "/coins/payment-callback"

	PromotionRoute = "/promotions/:code"

	BookPreviewRoute        = "/books/:bookID/preview"
	BookPreviewChapterRoute = "/books/:bookID/preview/chapters/:number"

	AdminGroup                = "/admin"
	AdminOrderStatusRoute     = "/orders/:orderID/status"
	AdminCoinsBonusRoute      = "/coins/bonus"
	AdminBookPreviewRoute     = "/books/:bookID/preview"
	AdminBookDigitalRoute     = "/books/:bookID/digital"
	AdminBookDigitalFileRoute = "/books/:bookID/digital/file"
	AdminBulkDigitalRoute     = "/books/digital/bulk"
)

const (
	// mutationRateLimit и mutationRateBurst ограничения для оформления заказов и операций с монетами.
	mutationRateLimit rate.Limit = 2
	mutationRateBurst            = 5
)

type RouterArgs struct {
	Logger           *logrus.Logger
	CartService      CartServicer
	OrderService     OrderServicer
	CoinService      CoinServicer
	PromotionService PromotionServicer
	// ContentService nil отключает маршруты превью и цифрового контента.
	ContentService ContentServicer
	JWTSecretKey   []byte
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	cartHandler := NewCartHandler(args.CartService)
	ordersHandler := NewOrdersHandler(args.OrderService)
	coinsHandler := NewCoinsHandler(args.CoinService)
	promotionsHandler := NewPromotionsHandler(args.PromotionService)
	adminHandler := NewAdminHandler(args.OrderService, args.CoinService)

	limiter := middlewares.NewRateLimiter(mutationRateLimit, mutationRateBurst)

	api := r.Group(RouteGroup)
	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	api.GET(CartRoute, cartHandler.Show)
	api.DELETE(CartRoute, cartHandler.Clear)
	api.POST(CartItemsRoute, cartHandler.AddItem)
	api.PUT(CartItemRoute, cartHandler.UpdateItem)
	api.DELETE(CartItemRoute, cartHandler.RemoveItem)

	api.POST(OrdersRoute, limiter.Limit(), ordersHandler.Create)
	api.GET(OrdersRoute, ordersHandler.Index)
	api.GET(OrderRoute, ordersHandler.Show)
	api.POST(OrderCancelRoute, limiter.Limit(), ordersHandler.Cancel)

	api.GET(CoinsBalanceRoute, coinsHandler.Balance)
	api.GET(CoinsWalletRoute, coinsHandler.Wallet)
	api.GET(CoinsPackagesRoute, coinsHandler.Packages)
	api.POST(CoinsTopUpRoute, limiter.Limit(), coinsHandler.TopUp)
	api.GET(CoinsTransactionsRoute, coinsHandler.Transactions)
	api.POST(CoinsPaymentCallbackRoute, limiter.Limit(), coinsHandler.PaymentCallback)

	api.GET(PromotionRoute, promotionsHandler.Show)

	admin := api.Group(AdminGroup, middlewares.AdminRequired())
	admin.PUT(AdminOrderStatusRoute, adminHandler.UpdateOrderStatus)
	admin.POST(AdminCoinsBonusRoute, adminHandler.Bonus)

	if args.ContentService != nil {
		contentHandler := NewContentHandler(args.ContentService)

		api.GET(BookPreviewRoute, contentHandler.Preview)
		api.GET(BookPreviewChapterRoute, contentHandler.Chapter)

		admin.POST(AdminBookPreviewRoute, contentHandler.CreatePreview)
		admin.PUT(AdminBookPreviewRoute, contentHandler.UpsertPreview)
		admin.DELETE(AdminBookPreviewRoute, contentHandler.DeletePreview)
		admin.PUT(AdminBookDigitalRoute, contentHandler.UpdateDigitalSettings)
		admin.GET(AdminBookDigitalFileRoute, contentHandler.DigitalFile)
		admin.POST(AdminBookDigitalFileRoute, contentHandler.RegisterDigitalFile)
		admin.DELETE(AdminBookDigitalFileRoute, contentHandler.DeleteDigitalFile)
		admin.POST(AdminBulkDigitalRoute, contentHandler.BulkDigital)
	}
	return r, nil
}
