// Package rsvp は参加申込（RSVP）を表す
// 申込はログに記録して破棄し、保存しない
package rsvp

import (
	"fmt"
	"strings"
	"time"
)

// RSVP は一件の参加申込
type RSVP struct {
	EventID          string
	AttendeeName     string
	AttendeeEmail    string
	AttendeePhone    string
	Message          string
	RegistrationDate time.Time
}

// New は申込を作成する
func New(eventID, name, email, phone, message string, now time.Time) *RSVP {
	return &RSVP{
		EventID:          eventID,
		AttendeeName:     strings.TrimSpace(name),
		AttendeeEmail:    strings.TrimSpace(email),
		AttendeePhone:    strings.TrimSpace(phone),
		Message:          message,
		RegistrationDate: now.UTC(),
	}
}

// Validate は必須項目を検証する
func (r *RSVP) Validate() error {
	if r.EventID == "" {
		return ErrEventIDRequired
	}
	if r.AttendeeName == "" {
		return ErrAttendeeNameRequired
	}
	if r.AttendeeEmail == "" {
		return ErrAttendeeEmailRequired
	}
	return nil
}

// ConfirmationMessage は受付完了時に表示する文言を返す
func ConfirmationMessage(eventTitle string) string {
	return fmt.Sprintf("You're registered for %s. Check your email for confirmation details.", eventTitle)
}
