package entities

import (
	"strings"
	"time"
)

// JobStatus mirrors the job_status enum in Postgres.
//
// Domain notes:
//   - Main track: pending -> quoted -> accepted -> in_progress -> completed | cancelled.
//   - invoice_sent / invoice_paid are a billing sub-track stored on the same column.
//   - Staff may set any valid value from the back office; only unknown values are rejected.
type JobStatus string

const (
	JobStatusPending     JobStatus = "pending"
	JobStatusQuoted      JobStatus = "quoted"
	JobStatusAccepted    JobStatus = "accepted"
	JobStatusInProgress  JobStatus = "in_progress"
	JobStatusCompleted   JobStatus = "completed"
	JobStatusCancelled   JobStatus = "cancelled"
	JobStatusInvoiceSent JobStatus = "invoice_sent"
	JobStatusInvoicePaid JobStatus = "invoice_paid"
)

var jobStatuses = []JobStatus{
	JobStatusPending,
	JobStatusQuoted,
	JobStatusAccepted,
	JobStatusInProgress,
	JobStatusCompleted,
	JobStatusCancelled,
	JobStatusInvoiceSent,
	JobStatusInvoicePaid,
}

func JobStatuses() []JobStatus {
	out := make([]JobStatus, len(jobStatuses))
	copy(out, jobStatuses)
	return out
}

func ParseJobStatus(raw string) (JobStatus, bool) {
	v := JobStatus(strings.ToLower(strings.TrimSpace(raw)))
	for _, s := range jobStatuses {
		if s == v {
			return s, true
		}
	}
	return "", false
}

// ServiceType mirrors the service_type enum in Postgres.
type ServiceType string

const (
	ServicePhotography       ServiceType = "photography"
	ServiceFloorPlans        ServiceType = "floor_plans"
	ServiceVirtualTour       ServiceType = "virtual_tour"
	ServiceAerialPhotography ServiceType = "aerial_photography"
	ServiceAppraisal         ServiceType = "appraisal"
)

var serviceTypes = []ServiceType{
	ServicePhotography,
	ServiceFloorPlans,
	ServiceVirtualTour,
	ServiceAerialPhotography,
	ServiceAppraisal,
}

func ServiceTypes() []ServiceType {
	out := make([]ServiceType, len(serviceTypes))
	copy(out, serviceTypes)
	return out
}

func ParseServiceType(raw string) (ServiceType, bool) {
	v := ServiceType(strings.ToLower(strings.TrimSpace(raw)))
	for _, s := range serviceTypes {
		if s == v {
			return s, true
		}
	}
	return "", false
}

// Job is one sold or requested engagement persisted in the jobs table.
//
// Monetary representation:
//   - QuotedAmount is the total computed when the booking was submitted.
//   - FinalAmount is set by staff once the job is invoiced; nil until then.
//
// PropertyData keeps the raw property-lookup payload as received.
type Job struct {
	ID              string      `json:"id" db:"id"`
	ClientName      string      `json:"client_name" db:"client_name"`
	ClientEmail     string      `json:"client_email" db:"client_email"`
	ClientPhone     string      `json:"client_phone" db:"client_phone"`
	PropertyAddress string      `json:"property_address" db:"property_address"`
	ServiceType     ServiceType `json:"service_type" db:"service_type"`
	Status          JobStatus   `json:"status" db:"status"`
	QuotedAmount    float64     `json:"quoted_amount" db:"quoted_amount"`
	FinalAmount     *float64    `json:"final_amount,omitempty" db:"final_amount"`
	ScheduledDate   *time.Time  `json:"scheduled_date,omitempty" db:"scheduled_date"`
	CompletedDate   *time.Time  `json:"completed_date,omitempty" db:"completed_date"`
	ReferralSource  string      `json:"referral_source" db:"referral_source"`
	PropertyData    string      `json:"property_data,omitempty" db:"property_data"`
	CalendarEventID string      `json:"calendar_event_id,omitempty" db:"calendar_event_id"`
	IdempotencyKey  *string     `json:"-" db:"idempotency_key"`
	Notes           string      `json:"notes" db:"notes"`
	CreatedAt       time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at" db:"updated_at"`
}

// BillableAmount is what an invoice charges: the final amount when staff set one.
func (j Job) BillableAmount() float64 {
	if j.FinalAmount != nil && *j.FinalAmount > 0 {
		return *j.FinalAmount
	}
	return j.QuotedAmount
}

// JobFilter narrows admin listings. Zero values mean "any".
type JobFilter struct {
	Status      JobStatus
	ServiceType ServiceType
	Limit       int
	Offset      int
}
