package api

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin/binding"

	"github.com/go-playground/validator/v10"
)

// validateMaxBytes в отличии от тэга max который проверяет длину рун, - проверят длину байт в поле.
func validateMaxBytes(fl validator.FieldLevel) bool {
	param := fl.Param() // получаем значение из тега
	maxBytes, err := strconv.Atoi(param)
	if err != nil {
		return false
	}

	// нужно убедится что значение поля - строка.
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return len([]byte(str)) <= maxBytes
}

var registerOnce sync.Once

// registerValidators регистрирует собственные теги валидации в движке gin. Повторные вызовы
// (например, из тестов) ничего не делают.
func registerValidators() error {
	var err error
	registerOnce.Do(func() {
		v, _ := binding.Validator.Engine().(*validator.Validate)
		if regErr := v.RegisterValidation("max_bytes", validateMaxBytes); regErr != nil {
			err = fmt.Errorf("validator registration: %s", regErr.Error())
		}
	})
	return err
}
