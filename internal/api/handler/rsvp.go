package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/anshayy/eventmanagementandrsvp/internal/application"
	"github.com/anshayy/eventmanagementandrsvp/internal/domain/rsvp"
)

type RSVPHandler struct {
	rsvpService    RSVPServiceInterface
	catalogService CatalogServiceInterface
}

func NewRSVPHandler(rsvpService RSVPServiceInterface, catalogService CatalogServiceInterface) *RSVPHandler {
	return &RSVPHandler{rsvpService: rsvpService, catalogService: catalogService}
}

type SubmitRSVPRequest struct {
	AttendeeName  string `json:"attendee_name" validate:"required,max=200" example:"Hanako Yamada"`
	AttendeeEmail string `json:"attendee_email" validate:"required,email" example:"hanako@example.com"`
	AttendeePhone string `json:"attendee_phone" validate:"max=50" example:"+81-90-0000-0000"`
	Message       string `json:"message" validate:"max=2000" example:"楽しみにしています"`
}

type RSVPResponse struct {
	EventID          string    `json:"event_id" example:"1"`
	AttendeeName     string    `json:"attendee_name" example:"Hanako Yamada"`
	AttendeeEmail    string    `json:"attendee_email" example:"hanako@example.com"`
	AttendeePhone    string    `json:"attendee_phone,omitempty"`
	Message          string    `json:"message,omitempty"`
	RegistrationDate time.Time `json:"registration_date"`
}

type SubmitRSVPResponse struct {
	RSVP         RSVPResponse `json:"rsvp"`
	Confirmation string       `json:"confirmation" example:"You're registered for Global Tech Summit 2024. Check your email for confirmation details."`
}

func toRSVPResponse(r *rsvp.RSVP) RSVPResponse {
	return RSVPResponse{
		EventID:          r.EventID,
		AttendeeName:     r.AttendeeName,
		AttendeeEmail:    r.AttendeeEmail,
		AttendeePhone:    r.AttendeePhone,
		Message:          r.Message,
		RegistrationDate: r.RegistrationDate,
	}
}

// Submit godoc
// @Summary 参加を申し込む
// @Description 申込内容を検証して受け付けます（保存はしません）
// @Tags rsvp
// @Accept json
// @Produce json
// @Param id path string true "イベントID"
// @Param request body SubmitRSVPRequest true "申込内容"
// @Success 201 {object} SubmitRSVPResponse
// @Failure 400 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Failure 409 {object} api.ErrorResponse "満席"
// @Router /events/{id}/rsvp [post]
func (h *RSVPHandler) Submit(c echo.Context) error {
	var req SubmitRSVPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "無効なリクエスト")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	r, err := h.rsvpService.Submit(ctx, application.SubmitRSVPInput{
		EventID:       c.Param("id"),
		AttendeeName:  req.AttendeeName,
		AttendeeEmail: req.AttendeeEmail,
		AttendeePhone: req.AttendeePhone,
		Message:       req.Message,
	})
	if err != nil {
		return toHTTPError(err)
	}

	e, err := h.catalogService.GetEvent(ctx, r.EventID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, SubmitRSVPResponse{
		RSVP:         toRSVPResponse(r),
		Confirmation: rsvp.ConfirmationMessage(e.Title),
	})
}
