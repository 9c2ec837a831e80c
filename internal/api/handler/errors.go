package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/anshayy/eventmanagementandrsvp/internal/domain/event"
	"github.com/anshayy/eventmanagementandrsvp/internal/domain/rsvp"
)

// toHTTPError はドメインエラーをHTTPステータスに対応付ける
func toHTTPError(err error) error {
	switch {
	case errors.Is(err, event.ErrEventNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "イベントが見つかりません")
	case errors.Is(err, rsvp.ErrEventFull):
		return echo.NewHTTPError(http.StatusConflict, "イベントは満席です")
	case errors.Is(err, event.ErrEventIDRequired),
		errors.Is(err, rsvp.ErrEventIDRequired),
		errors.Is(err, rsvp.ErrAttendeeNameRequired),
		errors.Is(err, rsvp.ErrAttendeeEmailRequired):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
	}
}
