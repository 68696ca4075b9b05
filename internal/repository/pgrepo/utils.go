package pgrepo

import (
	"fmt"
	"math"
)

// safeConvertUintToInt64 безопасно конвертирует uint в int64. В случае выхода значения за рамки диапазона
// возвращает ошибку.
func safeConvertUintToInt64(val uint) (int64, error) {
	if uint64(val) > math.MaxInt64 {
		return 0, fmt.Errorf("value is out of range: %d", val)
	}
	return int64(val), nil
}

// nullIfEmpty пустая строка пишется в базу как NULL.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
