package pgrepo

import (
	"errors"
	"fmt"

	"github.com/fsdevblog/bookstore/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode = "23505"
	checkViolationCode  = "23514"
)

// convertErr приводит ошибку драйвера к виду слоя репозитория:
//   - pgx.ErrNoRows становится domain.ErrRecordNotFound;
//   - нарушение уникальности (23505) - domain.ErrDuplicateKey;
//   - нарушение CHECK ограничения (23514) - domain.ErrCheckViolation;
//   - всё остальное - domain.ErrUnknown с исходным сообщением.
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, formatArgs...)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("[repository/%s] %w", msg, domain.ErrRecordNotFound)
	}

	var pgErr *pgconn.PgError
	errType := domain.ErrUnknown

	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			errType = domain.ErrDuplicateKey
		case checkViolationCode:
			errType = domain.ErrCheckViolation
		}
	}

	return fmt.Errorf("[repository/%s] %w: %s", msg, errType, err.Error())
}

// notFoundIfNoRows возвращает ErrRecordNotFound, если команда не затронула ни одной строки.
func notFoundIfNoRows(tag pgconn.CommandTag, format string, formatArgs ...any) error {
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, format, formatArgs...)
	}
	return nil
}
