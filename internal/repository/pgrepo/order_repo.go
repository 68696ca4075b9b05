package pgrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/bookstore/internal/domain"
	"github.com/fsdevblog/bookstore/internal/repository/repoargs"
	"github.com/fsdevblog/bookstore/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const orderColumns = `id, created_at, updated_at, user_id, order_number,
	ship_full_name, ship_address, ship_city, ship_phone, ship_postal_code,
	payment_method, payment_status, status,
	subtotal_amount, discount_amount, total_amount, shipping_fee, final_amount,
	coin_amount, coin_transaction_id, promotion_code, notes, tracking_number`

// orderNumberAttempts сколько раз генерируется новый номер заказа при коллизии.
const orderNumberAttempts = 5

type OrderRepository struct {
	db  uow.DBTX
	now func() time.Time
}

func NewOrderRepository(db uow.DBTX) *OrderRepository {
	return &OrderRepository{db: db, now: time.Now}
}

// Create вставляет заказ вместе с позициями и назначает ему уникальный номер.
// Вызывать внутри транзакции.
func (o *OrderRepository) Create(ctx context.Context, args repoargs.CreateOrder) (*domain.Order, error) {
	var (
		order *domain.Order
		err   error
	)
	for range orderNumberAttempts {
		order, err = o.insertOrder(ctx, domain.NewOrderNumber(o.now()), args)
		if !errors.Is(err, pgx.ErrNoRows) {
			break
		}
	}
	if err != nil {
		return nil, convertErr(err, "creating order for user %d", args.UserID)
	}

	batch := new(pgx.Batch)
	for i, item := range args.Items {
		batch.Queue(`
			INSERT INTO order_items (order_id, position, book_id, title, author, quantity, price, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			order.ID, i, item.BookID, item.Title, item.Author, item.Quantity, item.Price, item.Subtotal,
		)
	}
	if batchErr := o.db.SendBatch(ctx, batch).Close(); batchErr != nil {
		return nil, convertErr(batchErr, "inserting items of order %d", order.ID)
	}
	order.Items = args.Items
	return order, nil
}

// insertOrder возвращает pgx.ErrNoRows, если номер заказа уже занят.
func (o *OrderRepository) insertOrder(
	ctx context.Context,
	number string,
	args repoargs.CreateOrder,
) (*domain.Order, error) {
	row := o.db.QueryRow(ctx, `
		INSERT INTO orders (user_id, order_number,
			ship_full_name, ship_address, ship_city, ship_phone, ship_postal_code,
			payment_method, payment_status, status,
			subtotal_amount, discount_amount, total_amount, shipping_fee, final_amount,
			promotion_code, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (order_number) DO NOTHING
		RETURNING `+orderColumns,
		args.UserID, number,
		args.Shipping.FullName, args.Shipping.Address, args.Shipping.City, args.Shipping.Phone,
		args.Shipping.PostalCode,
		args.PaymentMethod, args.PaymentStatus, args.Status,
		args.SubtotalAmount, args.DiscountAmount, args.TotalAmount, args.ShippingFee, args.FinalAmount,
		args.PromotionCode, args.Notes,
	)
	return scanOrder(row)
}

func (o *OrderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	return o.findOne(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, "finding order by id %d", id)
}

// FindByIDForUpdate блокирует строку заказа до конца транзакции.
func (o *OrderRepository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.Order, error) {
	return o.findOne(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`,
		"locking order with id %d", id)
}

// FindByIDForUser ищет заказ с учетом владельца. Чужой заказ неотличим от несуществующего.
func (o *OrderRepository) FindByIDForUser(ctx context.Context, id, userID int64) (*domain.Order, error) {
	return o.findOne(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1 AND user_id = $2`,
		"finding order %d of user %d", id, userID)
}

func (o *OrderRepository) findOne(ctx context.Context, query string, format string, args ...any) (*domain.Order, error) {
	order, err := scanOrder(o.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, convertErr(err, format, args...)
	}
	if itemsErr := o.loadItems(ctx, []*domain.Order{order}); itemsErr != nil {
		return nil, itemsErr
	}
	return order, nil
}

// ListByUserID заказы пользователя, новые первыми.
func (o *OrderRepository) ListByUserID(
	ctx context.Context,
	userID int64,
	page repoargs.Page,
) ([]domain.Order, error) {
	limit, limitErr := safeConvertUintToInt64(page.Limit)
	if limitErr != nil {
		return nil, convertErr(limitErr, "converting limit to int64")
	}
	offset, offsetErr := safeConvertUintToInt64(page.Offset)
	if offsetErr != nil {
		return nil, convertErr(offsetErr, "converting offset to int64")
	}

	rows, err := o.db.Query(ctx, `
		SELECT `+orderColumns+` FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, convertErr(err, "listing orders of user %d", userID)
	}
	orders, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Order, error) {
		return scanOrder(row)
	})
	if err != nil {
		return nil, convertErr(err, "scanning orders of user %d", userID)
	}
	if itemsErr := o.loadItems(ctx, orders); itemsErr != nil {
		return nil, itemsErr
	}

	res := make([]domain.Order, len(orders))
	for i, order := range orders {
		res[i] = *order
	}
	return res, nil
}

func (o *OrderRepository) CountByUserID(ctx context.Context, userID int64) (int64, error) {
	var count int64
	if err := o.db.QueryRow(ctx, `SELECT count(*) FROM orders WHERE user_id = $1`, userID).Scan(&count); err != nil {
		return 0, convertErr(err, "counting orders of user %d", userID)
	}
	return count, nil
}

func (o *OrderRepository) UpdatePayment(ctx context.Context, args repoargs.UpdateOrderPayment) error {
	tag, err := o.db.Exec(ctx, `
		UPDATE orders SET payment_status = $2, coin_amount = $3, coin_transaction_id = $4, updated_at = now()
		WHERE id = $1`,
		args.ID, args.PaymentStatus, args.CoinAmount, args.CoinTransactionID,
	)
	if err != nil {
		return convertErr(err, "updating payment of order %d", args.ID)
	}
	return notFoundIfNoRows(tag, "updating payment of order %d", args.ID)
}

// UpdateStatus меняет статус заказа. Пустой TrackingNumber сохраняет текущий трек-номер.
func (o *OrderRepository) UpdateStatus(ctx context.Context, args repoargs.UpdateOrderStatus) (*domain.Order, error) {
	row := o.db.QueryRow(ctx, `
		UPDATE orders SET
			status = $2,
			payment_status = $3,
			tracking_number = COALESCE($4, tracking_number),
			updated_at = now()
		WHERE id = $1
		RETURNING `+orderColumns,
		args.ID, args.Status, args.PaymentStatus, nullIfEmpty(args.TrackingNumber),
	)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "updating status of order %d", args.ID)
	}
	if itemsErr := o.loadItems(ctx, []*domain.Order{order}); itemsErr != nil {
		return nil, itemsErr
	}
	return order, nil
}

// loadItems подгружает позиции для набора заказов одним запросом.
func (o *OrderRepository) loadItems(ctx context.Context, orders []*domain.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]int64, len(orders))
	byID := make(map[int64]*domain.Order, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
		byID[order.ID] = order
		order.Items = []domain.OrderItem{}
	}

	rows, err := o.db.Query(ctx, `
		SELECT order_id, book_id, title, author, quantity, price, subtotal
		FROM order_items WHERE order_id = ANY($1)
		ORDER BY order_id, position`, ids)
	if err != nil {
		return convertErr(err, "loading items of orders %v", ids)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID int64
			item    domain.OrderItem
		)
		if scanErr := rows.Scan(
			&orderID, &item.BookID, &item.Title, &item.Author, &item.Quantity, &item.Price, &item.Subtotal,
		); scanErr != nil {
			return convertErr(scanErr, "scanning order item")
		}
		order, ok := byID[orderID]
		if !ok {
			return convertErr(fmt.Errorf("unexpected order id %d", orderID), "loading order items")
		}
		order.Items = append(order.Items, item)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return convertErr(rowsErr, "loading items of orders %v", ids)
	}
	return nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var order domain.Order
	err := row.Scan(
		&order.ID,
		&order.CreatedAt,
		&order.UpdatedAt,
		&order.UserID,
		&order.OrderNumber,
		&order.Shipping.FullName,
		&order.Shipping.Address,
		&order.Shipping.City,
		&order.Shipping.Phone,
		&order.Shipping.PostalCode,
		&order.PaymentMethod,
		&order.PaymentStatus,
		&order.Status,
		&order.SubtotalAmount,
		&order.DiscountAmount,
		&order.TotalAmount,
		&order.ShippingFee,
		&order.FinalAmount,
		&order.CoinAmount,
		&order.CoinTransactionID,
		&order.PromotionCode,
		&order.Notes,
		&order.TrackingNumber,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &order, nil
}
