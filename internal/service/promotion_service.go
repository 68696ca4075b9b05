package service

import (
	"context"
	"time"

	"github.com/fsdevblog/bookstore/internal/domain"
	"github.com/fsdevblog/bookstore/internal/repository/repoargs"
	"github.com/fsdevblog/bookstore/pkg/uow"
)

type PromotionService struct {
	promoRepo PromotionRepository
	now       func() time.Time
}

func NewPromotionService(u uow.UOW) (*PromotionService, error) {
	promoRepo, err := uow.GetRepositoryAs[PromotionRepository](u, uow.RepositoryName(repoargs.PromotionRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &PromotionService{promoRepo: promoRepo, now: time.Now}, nil
}

// PromotionQuote предварительный расчет скидки для суммы заказа.
type PromotionQuote struct {
	Promotion *domain.Promotion
	Valid     bool
	// Applicable промоакция валидна и сумма заказа не меньше минимальной.
	Applicable bool
	Discount   int64
}

// Quote проверяет промокод и считает скидку для суммы total. Ограничения по книгам и категориям
// здесь не проверяются, они применяются при оформлении заказа.
func (p *PromotionService) Quote(ctx context.Context, code string, total int64) (*PromotionQuote, error) {
	promo, err := p.promoRepo.FindByCode(ctx, domain.NormalizePromotionCode(code))
	if err != nil {
		return nil, notFoundAs(err, domain.ErrPromotionNotFound)
	}

	now := p.now()
	quote := PromotionQuote{Promotion: promo, Valid: promo.IsValid(now)}
	quote.Applicable = quote.Valid && total >= promo.MinimumPurchase
	if quote.Applicable {
		quote.Discount = promo.CalculateDiscount(total)
	}
	return &quote, nil
}

// applyPromotion проверяет промокод для заказа, резервирует одно использование и возвращает скидку.
// Вызывать внутри транзакции оформления заказа.
func applyPromotion(
	ctx context.Context,
	tx uow.TX,
	code string,
	subtotal int64,
	books []domain.Book,
	now time.Time,
) (int64, error) {
	promos, err := promotionsIn(tx)
	if err != nil {
		return 0, err //nolint:wrapcheck
	}
	promo, err := promos.FindByCodeForUpdate(ctx, code)
	if err != nil {
		return 0, notFoundAs(err, domain.ErrPromotionNotFound)
	}
	if !promo.IsValid(now) {
		return 0, domain.ErrPromotionInvalid
	}
	if !promo.CanApplyTo(subtotal, books, now) {
		return 0, domain.ErrPromotionNotApplicable
	}
	if err := promos.IncrementUsage(ctx, promo.ID); err != nil {
		return 0, notFoundAs(err, domain.ErrPromotionInvalid)
	}
	return promo.CalculateDiscount(subtotal), nil
}
