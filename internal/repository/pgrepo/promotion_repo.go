package pgrepo

import (
	"context"
	"fmt"

	"github.com/fsdevblog/bookstore/internal/domain"
	"github.com/fsdevblog/bookstore/pkg/uow"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const promotionColumns = `id, created_at, updated_at, code, description, discount_type, discount_value::text,
	minimum_purchase, usage_limit, current_usage, is_active, start_date, end_date,
	applicable_books, applicable_categories`

type PromotionRepository struct {
	db uow.DBTX
}

func NewPromotionRepository(db uow.DBTX) *PromotionRepository {
	return &PromotionRepository{db: db}
}

func (p *PromotionRepository) FindByCode(ctx context.Context, code string) (*domain.Promotion, error) {
	row := p.db.QueryRow(ctx, `SELECT `+promotionColumns+` FROM promotions WHERE code = $1`, code)
	promo, err := scanPromotion(row)
	if err != nil {
		return nil, convertErr(err, "finding promotion by code `%s`", code)
	}
	return promo, nil
}

// FindByCodeForUpdate блокирует промоакцию, чтобы проверка лимита и списание использования
// выполнялись атомарно.
func (p *PromotionRepository) FindByCodeForUpdate(ctx context.Context, code string) (*domain.Promotion, error) {
	row := p.db.QueryRow(ctx, `SELECT `+promotionColumns+` FROM promotions WHERE code = $1 FOR UPDATE`, code)
	promo, err := scanPromotion(row)
	if err != nil {
		return nil, convertErr(err, "locking promotion with code `%s`", code)
	}
	return promo, nil
}

// IncrementUsage увеличивает счетчик использований, если лимит еще не исчерпан.
// Исчерпанный лимит возвращает domain.ErrRecordNotFound.
func (p *PromotionRepository) IncrementUsage(ctx context.Context, id int64) error {
	tag, err := p.db.Exec(ctx, `
		UPDATE promotions SET current_usage = current_usage + 1, updated_at = now()
		WHERE id = $1 AND (usage_limit IS NULL OR current_usage < usage_limit)`, id)
	if err != nil {
		return convertErr(err, "incrementing usage of promotion %d", id)
	}
	return notFoundIfNoRows(tag, "incrementing usage of promotion %d", id)
}

func scanPromotion(row pgx.Row) (*domain.Promotion, error) {
	var (
		promo         domain.Promotion
		discountValue string
	)
	err := row.Scan(
		&promo.ID,
		&promo.CreatedAt,
		&promo.UpdatedAt,
		&promo.Code,
		&promo.Description,
		&promo.DiscountType,
		&discountValue,
		&promo.MinimumPurchase,
		&promo.UsageLimit,
		&promo.CurrentUsage,
		&promo.IsActive,
		&promo.StartDate,
		&promo.EndDate,
		&promo.ApplicableBooks,
		&promo.ApplicableCategories,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	value, parseErr := decimal.NewFromString(discountValue)
	if parseErr != nil {
		return nil, fmt.Errorf("parse discount value `%s`: %w", discountValue, parseErr)
	}
	promo.DiscountValue = value
	return &promo, nil
}
