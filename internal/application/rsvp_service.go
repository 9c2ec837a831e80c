package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/anshayy/eventmanagementandrsvp/internal/domain/event"
	"github.com/anshayy/eventmanagementandrsvp/internal/domain/rsvp"
	"github.com/anshayy/eventmanagementandrsvp/internal/pkg/metrics"
)

// RSVP の処理結果（メトリクスのラベル）
const (
	RSVPStatusAccepted = "accepted"
	RSVPStatusInvalid  = "invalid"
	RSVPStatusNotFound = "not_found"
	RSVPStatusFull     = "full"
)

type RSVPService struct {
	catalog EventCatalog
	metrics *metrics.Metrics
	log     *zap.Logger
	now     func() time.Time
}

func NewRSVPService(c EventCatalog, m *metrics.Metrics, log *zap.Logger) *RSVPService {
	if log == nil {
		log = zap.NewNop()
	}
	return &RSVPService{catalog: c, metrics: m, log: log, now: time.Now}
}

type SubmitRSVPInput struct {
	EventID       string
	AttendeeName  string
	AttendeeEmail string
	AttendeePhone string
	Message       string
}

// Submit は参加申込を受け付ける
// 申込はログに出力するだけで保存も転送もしない
func (s *RSVPService) Submit(ctx context.Context, input SubmitRSVPInput) (*rsvp.RSVP, error) {
	r := rsvp.New(input.EventID, input.AttendeeName, input.AttendeeEmail, input.AttendeePhone, input.Message, s.now())
	if err := r.Validate(); err != nil {
		s.metrics.ObserveRSVP(RSVPStatusInvalid)
		return nil, fmt.Errorf("バリデーションエラー: %w", err)
	}

	ev, err := s.catalog.Get(r.EventID)
	if err != nil {
		if errors.Is(err, event.ErrEventNotFound) {
			s.metrics.ObserveRSVP(RSVPStatusNotFound)
		}
		return nil, fmt.Errorf("イベント取得に失敗: %w", err)
	}
	if ev.IsFull() {
		s.metrics.ObserveRSVP(RSVPStatusFull)
		return nil, rsvp.ErrEventFull
	}

	s.log.Info("RSVP受付",
		zap.String("event_id", r.EventID),
		zap.String("event_title", ev.Title),
		zap.String("attendee_name", r.AttendeeName),
		zap.String("attendee_email", r.AttendeeEmail),
		zap.String("attendee_phone", r.AttendeePhone),
		zap.String("message", r.Message),
		zap.Time("registration_date", r.RegistrationDate),
	)
	s.metrics.ObserveRSVP(RSVPStatusAccepted)
	return r, nil
}
