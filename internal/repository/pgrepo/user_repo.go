package pgrepo

import (
	"context"

	"github.com/fsdevblog/bookstore/internal/domain"
	"github.com/fsdevblog/bookstore/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, created_at, updated_at, email, full_name, phone, address, city, postal_code,
	coin_balance, is_active, role`

type UserRepository struct {
	db uow.DBTX
}

func NewUserRepository(db uow.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// FindByID ищет пользователя по id. Возвращает domain.ErrRecordNotFound если запись не найдена.
func (u *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by id %d", id)
	}
	return user, nil
}

// FindByIDForUpdate как FindByID, но блокирует строку пользователя до конца транзакции.
func (u *UserRepository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE`, id)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "locking user with id %d", id)
	}
	return user, nil
}

// UpdateCoinBalance записывает новый баланс монет. Отрицательный баланс отклоняется базой
// с ошибкой domain.ErrCheckViolation.
func (u *UserRepository) UpdateCoinBalance(ctx context.Context, id int64, balance int64) error {
	tag, err := u.db.Exec(ctx,
		`UPDATE users SET coin_balance = $2, updated_at = now() WHERE id = $1`, id, balance)
	if err != nil {
		return convertErr(err, "updating coin balance for user %d", id)
	}
	return notFoundIfNoRows(tag, "updating coin balance for user %d", id)
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.Email,
		&user.FullName,
		&user.Phone,
		&user.Address,
		&user.City,
		&user.PostalCode,
		&user.CoinBalance,
		&user.IsActive,
		&user.Role,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &user, nil
}
