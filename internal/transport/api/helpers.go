package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fsdevblog/bookstore/internal/domain"
	"github.com/fsdevblog/bookstore/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// getUserIDFromContext берет из контекста gin ID текущего юзера. ID устанавливается в
// middlewares.AuthRequired. В случае, если значения в контексте нет или ошибка утверждения типа -
// вернется 0.
func getUserIDFromContext(c *gin.Context) int64 {
	userIDStr, exist := c.Get(middlewares.CurrentUserIDKey)
	if !exist {
		return 0
	}
	userID, ok := userIDStr.(int64)
	if !ok {
		return 0
	}
	return userID
}

// idParam разбирает положительный числовой параметр пути. При ошибке отвечает 400 и возвращает false.
func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		abortWithError(c, http.StatusBadRequest, "INVALID_ID", "invalid "+name)
		return 0, false
	}
	return id, true
}

type errorDetails struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorDetails `json:"error"`
}

func abortWithError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, errorResponse{Error: errorDetails{Code: code, Message: message}})
}

// abortWithServiceError отвечает бизнес-ошибкой с ее кодом и статусом. Прочие ошибки уходят в
// middlewares.Errors как приватные и превращаются в 500.
func abortWithServiceError(c *gin.Context, err error) {
	var bErr *domain.BusinessError
	if errors.As(err, &bErr) {
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
		abortWithError(c, bErr.Status, bErr.Code, bErr.Message)
		return
	}
	// статус без записи заголовка, тело ответа пишет middlewares.Errors
	_ = c.Error(err).SetType(gin.ErrorTypePrivate)
	c.Status(http.StatusInternalServerError)
	c.Abort()
}

// abortWithBindError отвечает на ошибку разбора тела запроса. Ошибки валидации отдаются с 422.
func abortWithBindError(c *gin.Context, err error) {
	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		abortWithError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", valErrs.Error())
		return
	}
	_ = c.Error(err).SetType(gin.ErrorTypeBind)
	abortWithError(c, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
}
