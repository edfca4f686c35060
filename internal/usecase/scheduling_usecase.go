package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"appraisal_booking/internal/domain/entities"
	"appraisal_booking/internal/domain/schedule"
	"appraisal_booking/internal/usecase/interfaces"
)

var (
	ErrMissingScheduleField  = errors.New("date, time and address are required")
	ErrInvalidScheduleFormat = errors.New("invalid date or time format")
	ErrCalendarNotConfigured = errors.New("calendar not configured")
	ErrCalendarAuth          = errors.New("calendar authentication failed")
	ErrCalendarUpstream      = errors.New("calendar api request failed")
)

// ScheduleRequest carries what the calendar event and the invite describe.
type ScheduleRequest struct {
	Client       entities.ClientInfo
	Schedule     entities.Schedule
	Address      string
	ServiceNames []string
	Notes        string
}

type ScheduledEvent struct {
	EventID string    `json:"eventId"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Link    string    `json:"link,omitempty"`
	// Invite is the RFC 5545 calendar body attached to confirmation emails.
	Invite []byte `json:"-"`
}

type SchedulingOptions struct {
	Location       *time.Location
	Duration       time.Duration
	BusinessName   string
	OrganizerEmail string
}

type ISchedulingUseCase interface {
	Validate(req ScheduleRequest) (schedule.Slot, error)
	CreateEvent(ctx context.Context, req ScheduleRequest) (ScheduledEvent, error)
	BuildInvite(uid string, req ScheduleRequest) (ScheduledEvent, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

type SchedulingUseCase struct {
	calendar interfaces.ICalendarGateway
	opts     SchedulingOptions
	now      func() time.Time
}

var _ ISchedulingUseCase = (*SchedulingUseCase)(nil)

func NewSchedulingUseCase(calendar interfaces.ICalendarGateway, opts SchedulingOptions) *SchedulingUseCase {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Duration <= 0 {
		opts.Duration = schedule.DefaultDuration
	}
	return &SchedulingUseCase{calendar: calendar, opts: opts, now: time.Now}
}

// Validate checks the required fields first, then the date and time formats.
func (u *SchedulingUseCase) Validate(req ScheduleRequest) (schedule.Slot, error) {
	if strings.TrimSpace(req.Schedule.Date) == "" || strings.TrimSpace(req.Schedule.Time) == "" || strings.TrimSpace(req.Address) == "" {
		return schedule.Slot{}, ErrMissingScheduleField
	}
	slot, err := schedule.ParseSlot(req.Schedule.Date, req.Schedule.Time, u.opts.Location, u.opts.Duration)
	if err != nil {
		return schedule.Slot{}, fmt.Errorf("%w: %v", ErrInvalidScheduleFormat, err)
	}
	return slot, nil
}

// CreateEvent books the slot on the business calendar and renders the matching invite.
// Any failure means no event exists; there is no partial success.
func (u *SchedulingUseCase) CreateEvent(ctx context.Context, req ScheduleRequest) (ScheduledEvent, error) {
	log.Printf("[schedule][usecase] create-event start date=%q time=%q", req.Schedule.Date, req.Schedule.Time)
	slot, err := u.Validate(req)
	if err != nil {
		log.Printf("[schedule][usecase] invalid request err=%v", err)
		return ScheduledEvent{}, err
	}
	if u.calendar == nil {
		log.Printf("[schedule][usecase] calendar gateway not configured")
		return ScheduledEvent{}, ErrCalendarNotConfigured
	}

	ev, err := u.calendar.CreateEvent(ctx, interfaces.CalendarEventRequest{
		Summary:       u.summary(req),
		Location:      strings.TrimSpace(req.Address),
		Description:   u.description(req),
		Start:         slot.Start,
		End:           slot.End,
		TimeZone:      u.opts.Location.String(),
		AttendeeEmail: strings.TrimSpace(req.Client.Email),
	})
	if err != nil {
		log.Printf("[schedule][usecase] calendar create failed err=%v", err)
		if errors.Is(err, interfaces.ErrProviderAuth) {
			return ScheduledEvent{}, fmt.Errorf("%w: %v", ErrCalendarAuth, err)
		}
		return ScheduledEvent{}, fmt.Errorf("%w: %v", ErrCalendarUpstream, err)
	}
	log.Printf("[schedule][usecase] calendar create success event_id=%s start=%s", ev.ID, slot.Start.Format(time.RFC3339))

	out, err := u.BuildInvite(ev.ID, req)
	if err != nil {
		// The event exists; the invite is only an email attachment.
		log.Printf("[schedule][usecase] invite build failed event_id=%s err=%v", ev.ID, err)
		out = ScheduledEvent{Start: slot.Start, End: slot.End}
	}
	out.EventID = ev.ID
	out.Link = ev.Link
	return out, nil
}

// BuildInvite renders the invite for a slot without touching the calendar.
func (u *SchedulingUseCase) BuildInvite(uid string, req ScheduleRequest) (ScheduledEvent, error) {
	slot, err := u.Validate(req)
	if err != nil {
		return ScheduledEvent{}, err
	}
	ics, err := schedule.Invite{
		UID:            uid,
		Slot:           slot,
		Summary:        u.summary(req),
		Location:       strings.TrimSpace(req.Address),
		Description:    u.description(req),
		OrganizerEmail: u.opts.OrganizerEmail,
		OrganizerName:  u.opts.BusinessName,
		AttendeeEmail:  strings.TrimSpace(req.Client.Email),
		Now:            u.now(),
	}.Build()
	if err != nil {
		return ScheduledEvent{}, err
	}
	return ScheduledEvent{EventID: uid, Start: slot.Start, End: slot.End, Invite: ics}, nil
}

func (u *SchedulingUseCase) DeleteEvent(ctx context.Context, eventID string) error {
	if u.calendar == nil || eventID == "" {
		return nil
	}
	if err := u.calendar.DeleteEvent(ctx, eventID); err != nil {
		log.Printf("[schedule][usecase] calendar delete failed event_id=%s err=%v", eventID, err)
		return err
	}
	log.Printf("[schedule][usecase] calendar delete success event_id=%s", eventID)
	return nil
}

func (u *SchedulingUseCase) summary(req ScheduleRequest) string {
	what := "Property Appointment"
	if len(req.ServiceNames) > 0 {
		what = strings.Join(req.ServiceNames, ", ")
	}
	if name := req.Client.FullName(); name != "" {
		return what + " - " + name
	}
	return what
}

func (u *SchedulingUseCase) description(req ScheduleRequest) string {
	var b strings.Builder
	if name := req.Client.FullName(); name != "" {
		fmt.Fprintf(&b, "Client: %s\n", name)
	}
	if req.Client.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", req.Client.Email)
	}
	if req.Client.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", req.Client.Phone)
	}
	fmt.Fprintf(&b, "Property: %s\n", strings.TrimSpace(req.Address))
	if len(req.ServiceNames) > 0 {
		fmt.Fprintf(&b, "Services: %s\n", strings.Join(req.ServiceNames, ", "))
	}
	if req.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", req.Notes)
	}
	return strings.TrimRight(b.String(), "\n")
}
