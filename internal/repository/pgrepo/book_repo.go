package pgrepo

import (
	"context"

	"github.com/fsdevblog/bookstore/internal/domain"
	"github.com/fsdevblog/bookstore/internal/repository/repoargs"
	"github.com/fsdevblog/bookstore/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const bookColumns = `id, created_at, updated_at, title, author, category, price,
	is_digital_available, has_preview, coin_price`

type BookRepository struct {
	db uow.DBTX
}

func NewBookRepository(db uow.DBTX) *BookRepository {
	return &BookRepository{db: db}
}

func (b *BookRepository) FindByID(ctx context.Context, id int64) (*domain.Book, error) {
	row := b.db.QueryRow(ctx, `SELECT `+bookColumns+` FROM books WHERE id = $1`, id)
	book, err := scanBook(row)
	if err != nil {
		return nil, convertErr(err, "finding book by id %d", id)
	}
	return &book, nil
}

// FindByIDs возвращает найденные книги. Отсутствующие id просто не попадают в результат.
func (b *BookRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Book, error) {
	rows, err := b.db.Query(ctx, `SELECT `+bookColumns+` FROM books WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, convertErr(err, "finding books by ids")
	}
	books, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Book, error) {
		return scanBook(row)
	})
	if err != nil {
		return nil, convertErr(err, "scanning books")
	}
	return books, nil
}

func (b *BookRepository) SetHasPreview(ctx context.Context, id int64, hasPreview bool) error {
	tag, err := b.db.Exec(ctx,
		`UPDATE books SET has_preview = $2, updated_at = now() WHERE id = $1`, id, hasPreview)
	if err != nil {
		return convertErr(err, "setting has_preview for book %d", id)
	}
	return notFoundIfNoRows(tag, "setting has_preview for book %d", id)
}

// UpdateDigitalSettings обновляет заданные (не nil) цифровые настройки книги.
func (b *BookRepository) UpdateDigitalSettings(
	ctx context.Context,
	id int64,
	args repoargs.UpdateDigitalSettings,
) (*domain.Book, error) {
	row := b.db.QueryRow(ctx, `
		UPDATE books SET
			is_digital_available = COALESCE($2, is_digital_available),
			has_preview = COALESCE($3, has_preview),
			coin_price = COALESCE($4, coin_price),
			updated_at = now()
		WHERE id = $1
		RETURNING `+bookColumns,
		id, args.IsDigitalAvailable, args.HasPreview, args.CoinPrice,
	)
	book, err := scanBook(row)
	if err != nil {
		return nil, convertErr(err, "updating digital settings for book %d", id)
	}
	return &book, nil
}

// BulkUpdateDigitalSettings применяет настройки к списку книг и возвращает кол-во обновленных.
func (b *BookRepository) BulkUpdateDigitalSettings(
	ctx context.Context,
	ids []int64,
	args repoargs.UpdateDigitalSettings,
) (int64, error) {
	tag, err := b.db.Exec(ctx, `
		UPDATE books SET
			is_digital_available = COALESCE($2, is_digital_available),
			has_preview = COALESCE($3, has_preview),
			coin_price = COALESCE($4, coin_price),
			updated_at = now()
		WHERE id = ANY($1)`,
		ids, args.IsDigitalAvailable, args.HasPreview, args.CoinPrice,
	)
	if err != nil {
		return 0, convertErr(err, "bulk updating digital settings")
	}
	return tag.RowsAffected(), nil
}

func scanBook(row pgx.Row) (domain.Book, error) {
	var book domain.Book
	err := row.Scan(
		&book.ID,
		&book.CreatedAt,
		&book.UpdatedAt,
		&book.Title,
		&book.Author,
		&book.Category,
		&book.Price,
		&book.IsDigitalAvailable,
		&book.HasPreview,
		&book.CoinPrice,
	)
	return book, err //nolint:wrapcheck
}
