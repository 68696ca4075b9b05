package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsdevblog/bookstore/internal/config"
	"github.com/fsdevblog/bookstore/internal/locker"
	"github.com/fsdevblog/bookstore/internal/repository/mongorepo"
	"github.com/fsdevblog/bookstore/internal/repository/pgrepo"
	"github.com/fsdevblog/bookstore/internal/repository/repoargs"
	"github.com/fsdevblog/bookstore/internal/service"
	"github.com/fsdevblog/bookstore/internal/transport/api"
	"github.com/fsdevblog/bookstore/internal/transport/gateway"
	"github.com/fsdevblog/bookstore/pkg/uow"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.WithFields(logrus.Fields{
		"runAddress":     a.Config.RunAddress,
		"redis":          a.Config.RedisAddress != "",
		"contentStore":   a.Config.MongoURI != "",
		"paymentGateway": a.Config.PaymentGatewayAddress,
	}).Info("Starting app")

	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	walletLocker, closeLocker, lockerErr := a.initLocker(notifyCtx)
	if lockerErr != nil {
		return fmt.Errorf("app run: %s", lockerErr.Error())
	}
	defer closeLocker()

	factoryArgs := service.FactoryArgs{
		UOW:              unitOfWork,
		Locker:           walletLocker,
		Logger:           a.Logger,
		DeferredDeposits: a.Config.PaymentGatewayAddress != "",
	}
	if a.Config.MongoURI != "" {
		closeMongo, mongoErr := a.initContentStore(notifyCtx, &factoryArgs)
		if mongoErr != nil {
			return fmt.Errorf("app run: %s", mongoErr.Error())
		}
		defer closeMongo()
	}

	services, sErr := service.Factory(factoryArgs)
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	routerArgs := api.RouterArgs{
		Logger:           a.Logger,
		CartService:      services.CartService,
		OrderService:     services.OrderService,
		CoinService:      services.CoinService,
		PromotionService: services.PromotionService,
		JWTSecretKey:     []byte(a.Config.JWTSecret),
	}
	// nil *ContentService в интерфейсе не nil, поэтому присваиваем только настроенный сервис.
	if services.ContentService != nil {
		routerArgs.ContentService = services.ContentService
	}
	router, routerErr := api.New(routerArgs)
	if routerErr != nil {
		return fmt.Errorf("app run: %s", routerErr.Error())
	}

	server := &http.Server{
		Addr: a.Config.RunAddress,
		Handler: cors.New(cors.Options{
			AllowedOrigins:   a.Config.AllowedOrigins(),
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
			AllowedHeaders:   []string{"Authorization", "Content-Type"},
			AllowCredentials: true,
		}).Handler(router),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		if runErr := server.ListenAndServe(); runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
			errChan <- runErr
		}
	}()

	if a.Config.PaymentGatewayAddress != "" {
		processor := gateway.New(services.CoinService, a.Config.PaymentGatewayAddress, a.Logger).
			SetWorkers(5).           //nolint:mnd
			SetLimitPerIteration(50) //nolint:mnd

		go processor.Run(notifyCtx)
	}

	select {
	case <-notifyCtx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
			a.Logger.WithError(shutdownErr).Error("http server shutdown")
		}
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

// initLocker блокировки кошельков в redis, если он настроен, иначе в памяти процесса.
func (a *App) initLocker(ctx context.Context) (service.Locker, func(), error) {
	if a.Config.RedisAddress == "" {
		a.Logger.Warn("REDIS_ADDRESS is not set, wallet locks are local to this instance")
		return locker.NewLocalLocker(), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{Addr: a.Config.RedisAddress})
	if pingErr := client.Ping(ctx).Err(); pingErr != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("init redis: %w", pingErr)
	}
	closeFn := func() {
		if err := client.Close(); err != nil {
			a.Logger.WithError(err).Error("close redis client")
		}
	}
	return locker.NewRedisLocker(client, a.Logger), closeFn, nil
}

// initContentStore подключает mongodb и заполняет репозитории превью и цифровых файлов.
func (a *App) initContentStore(ctx context.Context, args *service.FactoryArgs) (func(), error) {
	client, connErr := mongorepo.Connect(ctx, a.Config.MongoURI)
	if connErr != nil {
		return nil, fmt.Errorf("init content store: %w", connErr)
	}
	closeFn := func() {
		if err := client.Disconnect(context.Background()); err != nil {
			a.Logger.WithError(err).Error("disconnect mongodb")
		}
	}

	db := client.Database(a.Config.MongoDatabase)
	previews := mongorepo.NewPreviewRepository(db)
	files := mongorepo.NewDigitalFileRepository(db)

	if err := previews.EnsureIndexes(ctx); err != nil {
		closeFn()
		return nil, fmt.Errorf("init content store: %w", err)
	}
	if err := files.EnsureIndexes(ctx); err != nil {
		closeFn()
		return nil, fmt.Errorf("init content store: %w", err)
	}

	args.PreviewRepo = previews
	args.DigitalFileRepo = files
	return closeFn, nil
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.UserRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewUserRepository(dbtx)
		},
		repoargs.BookRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewBookRepository(dbtx)
		},
		repoargs.CartRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewCartRepository(dbtx)
		},
		repoargs.OrderRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewOrderRepository(dbtx)
		},
		repoargs.CoinTransactionRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewCoinTransactionRepository(dbtx)
		},
		repoargs.PromotionRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewPromotionRepository(dbtx)
		},
	}
	for name, factory := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}
