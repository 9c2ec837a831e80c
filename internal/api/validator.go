package api

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator はEcho用のカスタムバリデーター
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator は新しいバリデーターを作成する
// エラーメッセージには json / query タグの名前を使う
func NewValidator() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)
	return &CustomValidator{validator: v}
}

// Validate はリクエストのバリデーションを実行する
func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return echo.NewHTTPError(http.StatusBadRequest, formatValidationErrors(verrs))
	}
	return echo.NewHTTPError(http.StatusBadRequest, err.Error())
}

func fieldName(f reflect.StructField) string {
	for _, key := range []string{"json", "query"} {
		name := strings.SplitN(f.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// formatValidationErrors は "attendee_email: email" のような項目ごとの要約を作る
func formatValidationErrors(verrs validator.ValidationErrors) string {
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		msgs[i] = fe.Field() + ": " + rule
	}
	return "入力内容が不正です: " + strings.Join(msgs, "; ")
}
