package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrCheckViolation = errors.New("check constraint violation")
	ErrUnknown        = errors.New("unknown error")
)

// BusinessError типизированная ошибка бизнес-правила. Code стабилен и предназначен для клиентов,
// Status - рекомендуемый http статус.
type BusinessError struct {
	Code    string
	Message string
	Status  int
}

func newBusinessError(code string, status int, message string) *BusinessError {
	return &BusinessError{Code: code, Message: message, Status: status}
}

func (e *BusinessError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is сравнивает ошибки по коду, поэтому errors.Is(err, ErrCartEmpty) срабатывает и для копий
// с другим сообщением.
func (e *BusinessError) Is(target error) bool {
	var t *BusinessError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// WithMessage возвращает копию ошибки с уточненным сообщением.
func (e *BusinessError) WithMessage(format string, args ...any) *BusinessError {
	return &BusinessError{Code: e.Code, Status: e.Status, Message: fmt.Sprintf(format, args...)}
}

// Ошибки валидации.
var (
	ErrInvalidPaymentMethod = newBusinessError("INVALID_PAYMENT_METHOD", http.StatusBadRequest,
		"invalid payment method")
	ErrInvalidShipping = newBusinessError("INVALID_SHIPPING", http.StatusBadRequest,
		"shipping information is incomplete: full name, address, city and phone are required")
	ErrInvalidQuantity = newBusinessError("INVALID_QUANTITY", http.StatusBadRequest,
		"quantity must be greater than 0")
	ErrInvalidAmount = newBusinessError("INVALID_AMOUNT", http.StatusBadRequest,
		"amount must be greater than 0")
	ErrInvalidStatus = newBusinessError("INVALID_STATUS", http.StatusBadRequest,
		"invalid status value")
	ErrInvalidTransactionType = newBusinessError("INVALID_TRANSACTION_TYPE", http.StatusBadRequest,
		"invalid transaction type")
	ErrInvalidPreview = newBusinessError("INVALID_PREVIEW", http.StatusBadRequest,
		"preview must contain from 3 to 5 chapters with title and content")
	ErrInvalidDigitalFile = newBusinessError("INVALID_DIGITAL_FILE", http.StatusBadRequest,
		"unsupported digital file")
	ErrInvalidBulkAction = newBusinessError("INVALID_BULK_ACTION", http.StatusBadRequest,
		"unsupported bulk action")
)

// Ошибки состояния.
var (
	ErrUserInactive = newBusinessError("USER_INACTIVE", http.StatusForbidden,
		"user account is deactivated")
	ErrCartEmpty = newBusinessError("CART_EMPTY", http.StatusBadRequest,
		"cart is empty")
	ErrBookNotAvailable = newBusinessError("BOOK_NOT_AVAILABLE", http.StatusBadRequest,
		"book is no longer available")
	ErrInsufficientCoins = newBusinessError("INSUFFICIENT_COINS", http.StatusBadRequest,
		"not enough coins to pay for the order")
	ErrInsufficientBalance = newBusinessError("INSUFFICIENT_BALANCE", http.StatusBadRequest,
		"insufficient coin balance")
	ErrCannotCancel = newBusinessError("CANNOT_CANCEL", http.StatusBadRequest,
		"only pending orders can be cancelled")
	ErrInvalidTransition = newBusinessError("INVALID_STATUS_TRANSITION", http.StatusBadRequest,
		"order status transition is not allowed")
	ErrPromotionInvalid = newBusinessError("PROMOTION_INVALID", http.StatusBadRequest,
		"promotion is not valid")
	ErrPromotionNotApplicable = newBusinessError("PROMOTION_NOT_APPLICABLE", http.StatusBadRequest,
		"promotion can not be applied to this order")
	ErrPreviewExists = newBusinessError("PREVIEW_EXISTS", http.StatusConflict,
		"preview already exists for this book")
	ErrBusy = newBusinessError("BUSY", http.StatusTooManyRequests,
		"another operation for this account is in progress, please retry")
)

// Ошибки отсутствия данных.
var (
	ErrUserNotFound        = newBusinessError("USER_NOT_FOUND", http.StatusNotFound, "user not found")
	ErrCartNotFound        = newBusinessError("CART_NOT_FOUND", http.StatusNotFound, "cart not found")
	ErrBookNotFound        = newBusinessError("BOOK_NOT_FOUND", http.StatusNotFound, "book not found")
	ErrItemNotFound        = newBusinessError("ITEM_NOT_FOUND", http.StatusNotFound, "book is not in the cart")
	ErrOrderNotFound       = newBusinessError("ORDER_NOT_FOUND", http.StatusNotFound, "order not found")
	ErrTransactionNotFound = newBusinessError("TRANSACTION_NOT_FOUND", http.StatusNotFound,
		"transaction not found")
	ErrPromotionNotFound = newBusinessError("PROMOTION_NOT_FOUND", http.StatusNotFound,
		"promotion not found")
	ErrPreviewNotFound = newBusinessError("PREVIEW_NOT_FOUND", http.StatusNotFound,
		"preview not found")
	ErrDigitalFileNotFound = newBusinessError("DIGITAL_FILE_NOT_FOUND", http.StatusNotFound,
		"digital file not found")
)
