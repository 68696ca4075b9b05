package pgrepo

import (
	"context"

	"github.com/fsdevblog/bookstore/internal/domain"
	"github.com/fsdevblog/bookstore/pkg/uow"
	"github.com/jackc/pgx/v5"
)

type CartRepository struct {
	db uow.DBTX
}

func NewCartRepository(db uow.DBTX) *CartRepository {
	return &CartRepository{db: db}
}

// FindByUserID возвращает корзину пользователя вместе со строками в порядке добавления.
func (c *CartRepository) FindByUserID(ctx context.Context, userID int64) (*domain.Cart, error) {
	var cart domain.Cart
	err := c.db.QueryRow(ctx,
		`SELECT id, created_at, updated_at, user_id, total_amount FROM carts WHERE user_id = $1`, userID,
	).Scan(&cart.ID, &cart.CreatedAt, &cart.UpdatedAt, &cart.UserID, &cart.TotalAmount)
	if err != nil {
		return nil, convertErr(err, "finding cart for user %d", userID)
	}

	rows, err := c.db.Query(ctx,
		`SELECT book_id, quantity, price FROM cart_items WHERE cart_id = $1 ORDER BY position`, cart.ID)
	if err != nil {
		return nil, convertErr(err, "finding items of cart %d", cart.ID)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CartItem, error) {
		var item domain.CartItem
		scanErr := row.Scan(&item.BookID, &item.Quantity, &item.Price)
		return item, scanErr //nolint:wrapcheck
	})
	if err != nil {
		return nil, convertErr(err, "scanning items of cart %d", cart.ID)
	}
	cart.Items = items
	return &cart, nil
}

// Save сохраняет корзину целиком: создает или обновляет запись корзины и переписывает ее строки.
// Вызывать внутри транзакции.
func (c *CartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	err := c.db.QueryRow(ctx, `
		INSERT INTO carts (user_id, total_amount) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET total_amount = EXCLUDED.total_amount, updated_at = now()
		RETURNING id, created_at, updated_at`,
		cart.UserID, cart.TotalAmount,
	).Scan(&cart.ID, &cart.CreatedAt, &cart.UpdatedAt)
	if err != nil {
		return convertErr(err, "saving cart for user %d", cart.UserID)
	}

	if _, delErr := c.db.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cart.ID); delErr != nil {
		return convertErr(delErr, "clearing items of cart %d", cart.ID)
	}
	if len(cart.Items) == 0 {
		return nil
	}

	batch := new(pgx.Batch)
	for i, item := range cart.Items {
		batch.Queue(
			`INSERT INTO cart_items (cart_id, position, book_id, quantity, price) VALUES ($1, $2, $3, $4, $5)`,
			cart.ID, i, item.BookID, item.Quantity, item.Price,
		)
	}
	if batchErr := c.db.SendBatch(ctx, batch).Close(); batchErr != nil {
		return convertErr(batchErr, "inserting items of cart %d", cart.ID)
	}
	return nil
}

// DeleteByUserID удаляет корзину пользователя. Отсутствие корзины ошибкой не считается.
func (c *CartRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	if _, err := c.db.Exec(ctx, `DELETE FROM carts WHERE user_id = $1`, userID); err != nil {
		return convertErr(err, "deleting cart for user %d", userID)
	}
	return nil
}
