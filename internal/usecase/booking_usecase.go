package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"appraisal_booking/internal/domain/entities"
	"appraisal_booking/internal/domain/pricing"
	"appraisal_booking/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidBooking      = errors.New("invalid booking request")
	ErrBookingInProgress   = errors.New("booking with this idempotency key is in progress")
	ErrIdempotencyStore    = errors.New("idempotency store unavailable")
	ErrJobPersistence      = errors.New("failed to persist job")
	ErrJobStoreUnavailable = errors.New("job store not configured")
)

const defaultIdempotencyTTL = 24 * time.Hour

type BookingInput struct {
	IdempotencyKey string
	Client         entities.ClientInfo
	Services       []string
	SquareFootage  int
	DiscountCode   string
	Property       *entities.PropertyRecord
	Address        string
	Schedule       entities.Schedule
	ReferralSource string
	Notes          string
	// PropertyData is stored verbatim on the job when it is valid JSON.
	PropertyData json.RawMessage
}

type BookingResult struct {
	JobID          string          `json:"job_id"`
	EventID        string          `json:"event_id"`
	Quote          pricing.Quote   `json:"quote"`
	ScheduledStart time.Time       `json:"scheduled_start"`
	ScheduledEnd   time.Time       `json:"scheduled_end"`
	Receipt        DeliveryReceipt `json:"receipt"`
	IdempotencyKey string          `json:"idempotency_key"`
	Replayed       bool            `json:"replayed"`
}

type BookingOptions struct {
	IdempotencyTTL time.Duration
}

// IBookingUseCase runs the booking flow end to end.
//
// Order: validate, claim key, price, calendar event, confirmation email, job record,
// complete key. Validation failures touch nothing outside the process. A failed email
// deletes the calendar event it just created. Failures before the event and email went
// out release the key. A failed job insert marks the key pending_job instead, and a retry
// with that key only repeats the insert.
type IBookingUseCase interface {
	Book(ctx context.Context, in BookingInput) (BookingResult, error)
}

type BookingUseCase struct {
	quotes      IQuoteUseCase
	scheduling  ISchedulingUseCase
	notifier    INotificationUseCase
	jobs        interfaces.IJobRepository
	idempotency interfaces.IIdempotencyRepository
	opts        BookingOptions
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(
	quotes IQuoteUseCase,
	scheduling ISchedulingUseCase,
	notifier INotificationUseCase,
	jobs interfaces.IJobRepository,
	idempotency interfaces.IIdempotencyRepository,
	opts BookingOptions,
) *BookingUseCase {
	if opts.IdempotencyTTL <= 0 {
		opts.IdempotencyTTL = defaultIdempotencyTTL
	}
	return &BookingUseCase{
		quotes:      quotes,
		scheduling:  scheduling,
		notifier:    notifier,
		jobs:        jobs,
		idempotency: idempotency,
		opts:        opts,
	}
}

func (u *BookingUseCase) Book(ctx context.Context, in BookingInput) (BookingResult, error) {
	sr := serviceRequest{
		Client:         in.Client,
		Services:       in.Services,
		SquareFootage:  in.SquareFootage,
		DiscountCode:   in.DiscountCode,
		Property:       in.Property,
		Address:        in.Address,
		Schedule:       in.Schedule,
		ReferralSource: in.ReferralSource,
		Notes:          in.Notes,
		PropertyData:   in.PropertyData,
	}
	log.Printf("[booking][usecase] book start email=%q services=%d key=%q", in.Client.Email, len(in.Services), in.IdempotencyKey)

	if err := u.validate(sr); err != nil {
		log.Printf("[booking][usecase] invalid request err=%v", err)
		return BookingResult{}, err
	}
	if u.jobs == nil {
		return BookingResult{}, ErrJobStoreUnavailable
	}

	key := strings.TrimSpace(in.IdempotencyKey)
	dedupe := key != "" && u.idempotency != nil
	if key == "" {
		key = uuid.NewString()
	}

	if dedupe {
		rec, claimed, err := u.idempotency.Claim(ctx, key, u.opts.IdempotencyTTL)
		if err != nil {
			log.Printf("[booking][usecase] idempotency claim failed key=%s err=%v", key, err)
			return BookingResult{}, fmt.Errorf("%w: %v", ErrIdempotencyStore, err)
		}
		if !claimed {
			if rec.Status == entities.IdempotencyPendingJob {
				return u.resume(ctx, sr, key, rec)
			}
			return u.replay(key, rec)
		}
	}

	release := dedupe
	defer func() {
		if !release {
			return
		}
		if err := u.idempotency.Release(context.WithoutCancel(ctx), key); err != nil {
			log.Printf("[booking][usecase] idempotency release failed key=%s err=%v", key, err)
		}
	}()

	res, err := u.scheduleAndNotify(ctx, sr, key)
	if err != nil {
		return BookingResult{}, err
	}

	// The customer now has an event and an email. The key must outlive any later failure.
	release = false
	if dedupe {
		u.markPendingJob(ctx, key, res)
	}

	res, err = u.persistJob(ctx, sr, key, res)
	if err != nil {
		return BookingResult{}, err
	}
	if dedupe {
		u.complete(ctx, key, res)
	}
	log.Printf("[booking][usecase] book success key=%s job_id=%s event_id=%s total=%.2f", key, res.JobID, res.EventID, res.Quote.Total)
	return res, nil
}

func (u *BookingUseCase) validate(sr serviceRequest) error {
	if !validClient(sr.Client) {
		return fmt.Errorf("%w: %v", ErrInvalidBooking, ErrInvalidContact)
	}
	if len(sr.Services) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidBooking)
	}
	known := false
	for _, s := range sr.Services {
		if _, ok := entities.ParseServiceType(s); ok {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w: no known service requested", ErrInvalidBooking)
	}
	_, err := u.scheduling.Validate(sr.scheduleRequest(pricing.Quote{}))
	return err
}

func (u *BookingUseCase) replay(key string, rec entities.IdempotencyRecord) (BookingResult, error) {
	if rec.Status != entities.IdempotencyCompleted || len(rec.Response) == 0 {
		log.Printf("[booking][usecase] key in progress key=%s", key)
		return BookingResult{}, ErrBookingInProgress
	}
	var res BookingResult
	if err := json.Unmarshal(rec.Response, &res); err != nil {
		log.Printf("[booking][usecase] stored response unreadable key=%s err=%v", key, err)
		return BookingResult{}, fmt.Errorf("%w: %v", ErrIdempotencyStore, err)
	}
	res.Replayed = true
	res.IdempotencyKey = key
	log.Printf("[booking][usecase] replay key=%s job_id=%s", key, res.JobID)
	return res, nil
}

// resume finishes an attempt whose event and email already went out. Only the job insert
// is repeated.
func (u *BookingUseCase) resume(ctx context.Context, sr serviceRequest, key string, rec entities.IdempotencyRecord) (BookingResult, error) {
	var res BookingResult
	if err := json.Unmarshal(rec.Response, &res); err != nil || res.EventID == "" {
		log.Printf("[booking][usecase] pending record unreadable key=%s err=%v", key, err)
		return BookingResult{}, fmt.Errorf("%w: pending record unreadable", ErrIdempotencyStore)
	}
	log.Printf("[booking][usecase] resume job insert key=%s event_id=%s", key, res.EventID)

	res, err := u.persistJob(ctx, sr, key, res)
	if err != nil {
		return BookingResult{}, err
	}
	u.complete(ctx, key, res)
	return res, nil
}

func (u *BookingUseCase) markPendingJob(ctx context.Context, key string, res BookingResult) {
	body, err := json.Marshal(res)
	if err == nil {
		err = u.idempotency.MarkPendingJob(context.WithoutCancel(ctx), key, res.EventID, body)
	}
	if err != nil {
		// The key stays in progress until it expires, so retries get a conflict instead.
		log.Printf("[booking][usecase] idempotency mark pending failed key=%s event_id=%s err=%v", key, res.EventID, err)
	}
}

func (u *BookingUseCase) complete(ctx context.Context, key string, res BookingResult) {
	body, err := json.Marshal(res)
	if err == nil {
		err = u.idempotency.Complete(context.WithoutCancel(ctx), key, res.JobID, res.EventID, body)
	}
	if err != nil {
		// The booking exists; the job row's unique key still blocks a duplicate.
		log.Printf("[booking][usecase] idempotency complete failed key=%s err=%v", key, err)
	}
}

// scheduleAndNotify prices the request, creates the calendar event and sends the
// confirmation. A failed email deletes the event again.
func (u *BookingUseCase) scheduleAndNotify(ctx context.Context, sr serviceRequest, key string) (BookingResult, error) {
	q := u.quotes.Quote(ctx, sr.quoteInput())
	schedReq := sr.scheduleRequest(q)

	ev, err := u.scheduling.CreateEvent(ctx, schedReq)
	if err != nil {
		return BookingResult{}, err
	}

	receipt, err := u.notifier.SendServiceRequest(ctx, ServiceRequestNotification{
		Client:         sr.Client,
		Address:        sr.address(),
		Property:       sr.Property,
		Quote:          q,
		Schedule:       sr.Schedule,
		Invite:         ev.Invite,
		Message:        sr.Notes,
		ReferralSource: sr.ReferralSource,
	})
	if err != nil {
		if dErr := u.scheduling.DeleteEvent(context.WithoutCancel(ctx), ev.EventID); dErr != nil {
			log.Printf("[booking][usecase] compensation failed event_id=%s err=%v", ev.EventID, dErr)
		}
		return BookingResult{}, err
	}

	return BookingResult{
		EventID:        ev.EventID,
		Quote:          q,
		ScheduledStart: ev.Start,
		ScheduledEnd:   ev.End,
		Receipt:        receipt,
		IdempotencyKey: key,
	}, nil
}

func (u *BookingUseCase) persistJob(ctx context.Context, sr serviceRequest, key string, res BookingResult) (BookingResult, error) {
	start := res.ScheduledStart
	job, _ := sr.job(res.Quote, entities.JobStatusQuoted, &start)
	job.CalendarEventID = res.EventID
	job.IdempotencyKey = &key

	created, err := u.jobs.Create(ctx, job)
	if errors.Is(err, interfaces.ErrDuplicateKey) {
		created, err = u.jobs.GetByIdempotencyKey(ctx, key)
		if err == nil && created.ID == "" {
			err = interfaces.ErrDuplicateKey
		}
	}
	if err != nil {
		log.Printf("[booking][usecase] job create failed key=%s event_id=%s err=%v", key, res.EventID, err)
		return BookingResult{}, fmt.Errorf("%w: %v", ErrJobPersistence, err)
	}

	res.JobID = created.ID
	res.IdempotencyKey = key
	return res, nil
}
