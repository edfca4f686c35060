package entities

import "time"

// ClientInfo is the contact block shared by quote, booking and contact requests.
type ClientInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func (c ClientInfo) FullName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// Schedule is the slot picked by the customer. Date is YYYY-MM-DD, Time is "H:MM AM/PM".
type Schedule struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

func (s Schedule) IsZero() bool {
	return s.Date == "" && s.Time == ""
}

// CalendarEvent is an event created on the business calendar.
type CalendarEvent struct {
	ID    string    `json:"event_id"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Link  string    `json:"link,omitempty"`
}

type IdempotencyStatus string

const (
	IdempotencyInProgress IdempotencyStatus = "in_progress"
	// IdempotencyPendingJob: the calendar event and email went out but the job row is missing.
	IdempotencyPendingJob IdempotencyStatus = "pending_job"
	IdempotencyCompleted  IdempotencyStatus = "completed"
)

// IdempotencyRecord tracks one booking attempt keyed by the client-supplied key.
//
// Storage model (DynamoDB):
//   - PK: key
//   - TTL attribute: expires_at (unix seconds)
type IdempotencyRecord struct {
	Key       string            `json:"key"`
	Status    IdempotencyStatus `json:"status"`
	JobID     string            `json:"job_id,omitempty"`
	EventID   string            `json:"event_id,omitempty"`
	Response  []byte            `json:"response,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	ExpiresAt time.Time         `json:"expires_at"`
}
