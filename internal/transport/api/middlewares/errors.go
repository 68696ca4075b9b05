package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func statusErrorText(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not found"
	case http.StatusUnprocessableEntity:
		return "unprocessable entity"
	case http.StatusConflict:
		return "conflict"
	case http.StatusTooManyRequests:
		return "too many requests"
	default:
		return "internal server error"
	}
}

func statusErrorCode(status int) string {
	if status == http.StatusInternalServerError || status < http.StatusBadRequest {
		return "INTERNAL_ERROR"
	}
	return strings.ToUpper(strings.ReplaceAll(statusErrorText(status), " ", "_"))
}

// errorBody тело ответа с ошибкой: {"error": {"code": ..., "message": ...}}.
func errorBody(code, message string) gin.H {
	return gin.H{"error": gin.H{"code": code, "message": message}}
}

// Errors отдает клиенту ошибки, добавленные обработчиками через c.Error, если ответ еще не записан.
// Текст приватных ошибок клиенту не показывается.
func Errors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		// обрабатываем только первую ошибку
		firstErr := c.Errors[0]
		status := c.Writer.Status()
		if status < http.StatusBadRequest {
			status = http.StatusInternalServerError
		}

		var msg string
		if firstErr.IsType(gin.ErrorTypePublic) || firstErr.IsType(gin.ErrorTypeBind) {
			msg = firstErr.Error()
		} else {
			msg = statusErrorText(status)
		}

		if strings.Contains(c.GetHeader("Accept"), "text/plain") {
			c.String(status, msg)
		} else {
			c.JSON(status, errorBody(statusErrorCode(status), msg))
		}
		c.Abort()
	}
}
