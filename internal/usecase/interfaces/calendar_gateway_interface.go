package interfaces

import (
	"context"
	"time"

	"appraisal_booking/internal/domain/entities"
)

type CalendarEventRequest struct {
	Summary       string
	Location      string
	Description   string
	Start         time.Time
	End           time.Time
	TimeZone      string
	AttendeeEmail string
}

type ICalendarGateway interface {
	CreateEvent(ctx context.Context, req CalendarEventRequest) (entities.CalendarEvent, error)
	DeleteEvent(ctx context.Context, eventID string) error
}
