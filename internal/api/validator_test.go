package api

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email string `json:"attendee_email" validate:"required,email"`
	Start string `query:"start" validate:"omitempty,datetime=2006-01-02"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := NewValidator()

	t.Run("正常な入力", func(t *testing.T) {
		assert.NoError(t, v.Validate(&sampleRequest{Email: "a@example.com", Start: "2024-12-01"}))
	})

	t.Run("不正な入力は400とタグ名を含むメッセージ", func(t *testing.T) {
		err := v.Validate(&sampleRequest{Email: "not-an-email", Start: "2024/12/01"})

		require.Error(t, err)
		he, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, he.Code)
		assert.Contains(t, he.Message, "attendee_email: email")
		assert.Contains(t, he.Message, "start: datetime=2006-01-02")
	})
}
