package calendar

import (
	"errors"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var (
	ErrTitleRequired = errors.New("title is required")
	ErrInvalidDate   = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidTime   = errors.New("time must be in HH:MM format")
)

type Event struct {
	ID          string
	Title       string
	Date        string
	Time        string
	Description string
	Color       string
}

// EventFields is everything the add form supplies; the store assigns the ID.
type EventFields struct {
	Title       string
	Date        string
	Time        string
	Description string
	Color       string
}

// Normalize trims the text fields and fills an empty colour with defaultColor.
func (f EventFields) Normalize(defaultColor string) EventFields {
	f.Title = strings.TrimSpace(f.Title)
	f.Date = strings.TrimSpace(f.Date)
	f.Time = strings.TrimSpace(f.Time)
	f.Description = strings.TrimSpace(f.Description)
	f.Color = strings.TrimSpace(f.Color)
	if f.Color == "" {
		f.Color = defaultColor
	}
	return f
}

// Validate reports the first problem the add form would show to the user.
func (f EventFields) Validate() error {
	if strings.TrimSpace(f.Title) == "" {
		return ErrTitleRequired
	}
	if !matchesLayout(DateLayout, f.Date) {
		return ErrInvalidDate
	}
	if !matchesLayout(TimeLayout, f.Time) {
		return ErrInvalidTime
	}
	return nil
}

// matchesLayout reports whether value is exactly layout's zero padded form.
// time.Parse alone lets a one digit hour such as "9:00" through.
func matchesLayout(layout, value string) bool {
	t, err := time.Parse(layout, value)
	return err == nil && t.Format(layout) == value
}
