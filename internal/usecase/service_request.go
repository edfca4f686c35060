package usecase

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"appraisal_booking/internal/domain/entities"
	"appraisal_booking/internal/domain/pricing"
)

// serviceRequest is the part shared by bookings and service-request contact forms.
type serviceRequest struct {
	Client         entities.ClientInfo
	Services       []string
	SquareFootage  int
	DiscountCode   string
	Property       *entities.PropertyRecord
	Address        string
	Schedule       entities.Schedule
	ReferralSource string
	Notes          string
	PropertyData   json.RawMessage
}

func (r serviceRequest) address() string {
	if a := strings.TrimSpace(r.Address); a != "" {
		return a
	}
	if r.Property != nil {
		return r.Property.FullAddress()
	}
	return ""
}

// squareFootage falls back to the county living area when the caller sent none.
func (r serviceRequest) squareFootage() int {
	if r.SquareFootage > 0 {
		return r.SquareFootage
	}
	if r.Property != nil && r.Property.CountyData.SquareFootage > 0 {
		return r.Property.CountyData.SquareFootage
	}
	return 0
}

func (r serviceRequest) quoteInput() QuoteInput {
	return QuoteInput{Services: r.Services, SquareFootage: r.squareFootage(), DiscountCode: r.DiscountCode}
}

func (r serviceRequest) scheduleRequest(q pricing.Quote) ScheduleRequest {
	return ScheduleRequest{
		Client:       r.Client,
		Schedule:     r.Schedule,
		Address:      r.address(),
		ServiceNames: lineItemNames(q),
		Notes:        strings.TrimSpace(r.Notes),
	}
}

func (r serviceRequest) propertyData() string {
	if len(r.PropertyData) > 0 && json.Valid(r.PropertyData) {
		return string(r.PropertyData)
	}
	if r.Property != nil {
		if b, err := json.Marshal(r.Property); err == nil {
			return string(b)
		}
	}
	return ""
}

// job builds the record persisted for the request. ok is false when none of the
// requested services maps onto the service_type enum.
func (r serviceRequest) job(q pricing.Quote, status entities.JobStatus, scheduled *time.Time) (entities.Job, bool) {
	st, ok := primaryServiceType(q)
	if !ok {
		return entities.Job{}, false
	}
	notes := fmt.Sprintf("Services: %s", strings.Join(lineItemNames(q), ", "))
	if n := strings.TrimSpace(r.Notes); n != "" {
		notes += "\n" + n
	}
	return entities.Job{
		ClientName:      r.Client.FullName(),
		ClientEmail:     strings.TrimSpace(r.Client.Email),
		ClientPhone:     strings.TrimSpace(r.Client.Phone),
		PropertyAddress: r.address(),
		ServiceType:     st,
		Status:          status,
		QuotedAmount:    q.Total,
		ScheduledDate:   scheduled,
		ReferralSource:  strings.TrimSpace(r.ReferralSource),
		PropertyData:    r.propertyData(),
		Notes:           notes,
	}, true
}

// primaryServiceType prefers appraisal, then the first known service in order.
func primaryServiceType(q pricing.Quote) (entities.ServiceType, bool) {
	var first entities.ServiceType
	for _, li := range q.LineItems {
		st, ok := entities.ParseServiceType(li.ServiceID)
		if !ok {
			continue
		}
		if st == entities.ServiceAppraisal {
			return st, true
		}
		if first == "" {
			first = st
		}
	}
	return first, first != ""
}

func lineItemNames(q pricing.Quote) []string {
	out := make([]string, 0, len(q.LineItems))
	for _, li := range q.LineItems {
		out = append(out, li.Name)
	}
	return out
}

func validClient(c entities.ClientInfo) bool {
	email := strings.TrimSpace(c.Email)
	if strings.TrimSpace(c.FullName()) == "" || email == "" {
		return false
	}
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}
