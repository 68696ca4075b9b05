package service

import (
	"fmt"

	"github.com/fsdevblog/bookstore/pkg/uow"
	"github.com/sirupsen/logrus"
)

type AppServices struct {
	CartService      *CartService
	CoinService      *CoinService
	OrderService     *OrderService
	PromotionService *PromotionService
	// ContentService nil, если хранилище контента не настроено.
	ContentService *ContentService
}

type FactoryArgs struct {
	UOW    uow.UOW
	Locker Locker
	Logger *logrus.Logger
	// DeferredDeposits пополнения ждут подтверждения платежного шлюза.
	DeferredDeposits bool
	// PreviewRepo и DigitalFileRepo необязательны, без них ContentService не создается.
	PreviewRepo     PreviewRepository
	DigitalFileRepo DigitalFileRepository
}

func Factory(args FactoryArgs) (*AppServices, error) {
	cartService, cartServiceErr := NewCartService(args.UOW, args.Locker)
	if cartServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", cartServiceErr.Error())
	}

	coinService, coinServiceErr := NewCoinService(args.UOW, args.Locker, args.Logger)
	if coinServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", coinServiceErr.Error())
	}
	coinService.SetDeferredDeposits(args.DeferredDeposits)

	orderService, orderServiceErr := NewOrderService(args.UOW, args.Locker, coinService, args.Logger)
	if orderServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", orderServiceErr.Error())
	}

	promotionService, promotionServiceErr := NewPromotionService(args.UOW)
	if promotionServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", promotionServiceErr.Error())
	}

	services := &AppServices{
		CartService:      cartService,
		CoinService:      coinService,
		OrderService:     orderService,
		PromotionService: promotionService,
	}

	if args.PreviewRepo != nil && args.DigitalFileRepo != nil {
		contentService, contentServiceErr := NewContentService(
			args.UOW, args.PreviewRepo, args.DigitalFileRepo, args.Logger,
		)
		if contentServiceErr != nil {
			return nil, fmt.Errorf("service factory: %s", contentServiceErr.Error())
		}
		services.ContentService = contentService
	}

	return services, nil
}
