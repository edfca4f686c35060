package schedule

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
)

const (
	icsDateTimeLayout = "20060102T150405"
	productID         = "-//Appraisal Booking//Appointments//EN"

	InviteFilename    = "appointment.ics"
	InviteContentType = "text/calendar; charset=utf-8; method=REQUEST"
)

var ErrInviteMissingUID = errors.New("invite uid is required")

// Invite describes the VEVENT attached to confirmation emails.
type Invite struct {
	UID            string
	Slot           Slot
	Summary        string
	Location       string
	Description    string
	OrganizerEmail string
	OrganizerName  string
	AttendeeEmail  string
	Now            time.Time
}

// Build renders a VCALENDAR with a single VEVENT. DTSTART and DTEND carry the slot's
// TZID, defined by a VTIMEZONE in the same calendar, so the appointment is shown in the
// business timezone. Slots in UTC, or crossing an offset change, are written as UTC times.
func (in Invite) Build() ([]byte, error) {
	if strings.TrimSpace(in.UID) == "" {
		return nil, ErrInviteMissingUID
	}
	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodRequest)
	cal.SetProductId(productID)

	zoned := zonedSlot(in.Slot)
	if zoned {
		addTimezone(cal, in.Slot.Start)
	}

	event := cal.AddEvent(in.UID)
	event.SetDtStampTime(now.UTC())
	event.SetCreatedTime(now.UTC())
	setEventTime(event, ics.ComponentPropertyDtStart, in.Slot.Start, zoned)
	setEventTime(event, ics.ComponentPropertyDtEnd, in.Slot.End, zoned)
	event.SetSummary(in.Summary)
	if in.Location != "" {
		event.SetLocation(in.Location)
	}
	if in.Description != "" {
		event.SetDescription(in.Description)
	}
	if in.OrganizerEmail != "" {
		if in.OrganizerName != "" {
			event.SetOrganizer("mailto:"+in.OrganizerEmail, ics.WithCN(in.OrganizerName))
		} else {
			event.SetOrganizer("mailto:" + in.OrganizerEmail)
		}
	}
	if in.AttendeeEmail != "" {
		event.AddAttendee("mailto:"+in.AttendeeEmail,
			ics.CalendarUserTypeIndividual,
			ics.ParticipationStatusNeedsAction,
			ics.ParticipationRoleReqParticipant,
			ics.WithRSVP(true),
		)
	}

	return []byte(cal.Serialize()), nil
}

// Base64 is the attachment encoding used by the mail provider.
func Base64(ics []byte) string {
	return base64.StdEncoding.EncodeToString(ics)
}

func zonedSlot(slot Slot) bool {
	loc := slot.Start.Location()
	if loc == nil || loc == time.UTC || loc.String() == "Local" || loc.String() == "UTC" {
		return false
	}
	_, startOffset := slot.Start.Zone()
	_, endOffset := slot.End.In(loc).Zone()
	return startOffset == endOffset
}

// addTimezone defines the slot's TZID with the single observance in effect at t.
func addTimezone(cal *ics.Calendar, t time.Time) {
	name, offset := t.Zone()
	utcOffset := formatUTCOffset(offset)

	var observance ics.ComponentBase
	observance.AddProperty(ics.ComponentPropertyDtStart, "19700101T000000")
	observance.AddProperty(ics.ComponentProperty(ics.PropertyTzoffsetfrom), utcOffset)
	observance.AddProperty(ics.ComponentProperty(ics.PropertyTzoffsetto), utcOffset)
	observance.AddProperty(ics.ComponentProperty(ics.PropertyTzname), name)

	tz := cal.AddTimezone(t.Location().String())
	if t.IsDST() {
		tz.Components = append(tz.Components, &ics.Daylight{ComponentBase: observance})
		return
	}
	tz.Components = append(tz.Components, &ics.Standard{ComponentBase: observance})
}

func formatUTCOffset(seconds int) string {
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	return fmt.Sprintf("%s%02d%02d", sign, seconds/3600, seconds%3600/60)
}

func setEventTime(event *ics.VEvent, prop ics.ComponentProperty, t time.Time, zoned bool) {
	if !zoned {
		event.SetProperty(prop, t.UTC().Format(icsDateTimeLayout)+"Z")
		return
	}
	event.SetProperty(prop, t.Format(icsDateTimeLayout), &ics.KeyValues{Key: "TZID", Value: []string{t.Location().String()}})
}
