package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"appraisal_booking/internal/domain/entities"
	"appraisal_booking/internal/domain/pricing"
	"appraisal_booking/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrInvalidContact = errors.New("name and a valid email are required")

type ServiceRequestData struct {
	Services       []string
	SquareFootage  int
	DiscountCode   string
	Property       *entities.PropertyRecord
	Address        string
	Schedule       entities.Schedule
	ReferralSource string
	// PropertyData is stored verbatim on the job when it is valid JSON.
	PropertyData json.RawMessage
}

type ContactInput struct {
	Client           entities.ClientInfo
	Message          string
	IsServiceRequest bool
	ServiceRequest   *ServiceRequestData
}

type ContactResult struct {
	Receipt DeliveryReceipt `json:"receipt"`
	Quote   *pricing.Quote  `json:"quote,omitempty"`
	JobID   string          `json:"job_id,omitempty"`
}

// IContactUseCase handles the public contact form in both of its modes.
type IContactUseCase interface {
	Submit(ctx context.Context, in ContactInput) (ContactResult, error)
}

type ContactUseCase struct {
	quotes     IQuoteUseCase
	scheduling ISchedulingUseCase
	notifier   INotificationUseCase
	jobs       interfaces.IJobRepository
}

var _ IContactUseCase = (*ContactUseCase)(nil)

func NewContactUseCase(quotes IQuoteUseCase, scheduling ISchedulingUseCase, notifier INotificationUseCase, jobs interfaces.IJobRepository) *ContactUseCase {
	return &ContactUseCase{quotes: quotes, scheduling: scheduling, notifier: notifier, jobs: jobs}
}

func (u *ContactUseCase) Submit(ctx context.Context, in ContactInput) (ContactResult, error) {
	if !validClient(in.Client) {
		log.Printf("[contact][usecase] invalid contact email=%q", in.Client.Email)
		return ContactResult{}, ErrInvalidContact
	}
	if !in.IsServiceRequest || in.ServiceRequest == nil {
		receipt, err := u.notifier.SendContact(ctx, ContactNotification{Client: in.Client, Message: in.Message})
		if err != nil {
			return ContactResult{}, err
		}
		return ContactResult{Receipt: receipt}, nil
	}

	sr := serviceRequest{
		Client:         in.Client,
		Services:       in.ServiceRequest.Services,
		SquareFootage:  in.ServiceRequest.SquareFootage,
		DiscountCode:   in.ServiceRequest.DiscountCode,
		Property:       in.ServiceRequest.Property,
		Address:        in.ServiceRequest.Address,
		Schedule:       in.ServiceRequest.Schedule,
		ReferralSource: in.ServiceRequest.ReferralSource,
		Notes:          in.Message,
		PropertyData:   in.ServiceRequest.PropertyData,
	}
	q := u.quotes.Quote(ctx, sr.quoteInput())

	n := ServiceRequestNotification{
		Client:         in.Client,
		Address:        sr.address(),
		Property:       sr.Property,
		Quote:          q,
		Message:        in.Message,
		ReferralSource: sr.ReferralSource,
	}
	var scheduled *ScheduledEvent
	if !sr.Schedule.IsZero() {
		ev, err := u.scheduling.BuildInvite(uuid.NewString(), sr.scheduleRequest(q))
		if err != nil {
			log.Printf("[contact][usecase] invalid schedule err=%v", err)
			return ContactResult{}, err
		}
		scheduled = &ev
		n.Schedule = sr.Schedule
		n.Invite = ev.Invite
	}

	receipt, err := u.notifier.SendServiceRequest(ctx, n)
	if err != nil {
		return ContactResult{}, err
	}
	res := ContactResult{Receipt: receipt, Quote: &q}

	// The customer already has the email; a job row is a convenience for staff.
	if u.jobs != nil {
		var when *time.Time
		if scheduled != nil {
			when = &scheduled.Start
		}
		if job, ok := sr.job(q, entities.JobStatusPending, when); ok {
			created, err := u.jobs.Create(ctx, job)
			if err != nil {
				log.Printf("[contact][usecase] pending job create failed email=%s err=%v", in.Client.Email, err)
			} else {
				res.JobID = created.ID
			}
		}
	}
	log.Printf("[contact][usecase] service request sent email=%s total=%.2f job_id=%s", in.Client.Email, q.Total, res.JobID)
	return res, nil
}
