package application

import (
	"context"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/anshayy/eventmanagementandrsvp/internal/domain/event"
)

const (
	calendarProductID = "-//eventmanagementandrsvp//Event Catalog//EN"
	calendarUIDDomain = "event-catalog"
	icsFloatingLayout = "20060102T150405"
)

// CalendarService はイベントを iCalendar 形式で書き出す
type CalendarService struct {
	catalog EventCatalog
	now     func() time.Time
}

func NewCalendarService(c EventCatalog) *CalendarService {
	return &CalendarService{catalog: c, now: time.Now}
}

// Export は一件のイベントを VEVENT を一つ含む VCALENDAR として返す
// DTSTART は開催地の現地時刻（タイムゾーンなし）で出力する
func (s *CalendarService) Export(ctx context.Context, id string) ([]byte, error) {
	if id == "" {
		return nil, event.ErrEventIDRequired
	}
	ev, err := s.catalog.Get(id)
	if err != nil {
		return nil, err
	}

	cal := ics.NewCalendar()
	cal.SetProductId(calendarProductID)
	cal.SetMethod(ics.MethodPublish)

	vevent := cal.AddEvent(ev.ID + "@" + calendarUIDDomain)
	vevent.SetDtStampTime(s.now().UTC())
	vevent.SetProperty(ics.ComponentPropertyDtStart, ev.StartsAt(time.UTC).Format(icsFloatingLayout))
	vevent.SetSummary(ev.Title)
	vevent.SetDescription(ev.Description)
	vevent.SetLocation(locationText(ev.Location))
	vevent.SetProperty(ics.ComponentPropertyCategories, string(ev.Category))
	if ev.Organizer.Email != "" {
		vevent.SetOrganizer("mailto:"+ev.Organizer.Email, ics.WithCN(ev.Organizer.Name))
	}

	return []byte(cal.Serialize()), nil
}

func locationText(l event.Location) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{l.Venue, l.Address, l.City, l.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
