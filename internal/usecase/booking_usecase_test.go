package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"appraisal_booking/internal/domain/entities"
	"appraisal_booking/internal/usecase/interfaces"
	mock_interfaces "appraisal_booking/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type bookingMocks struct {
	cal    *mock_interfaces.MockICalendarGateway
	mailer *mock_interfaces.MockIMailer
	jobs   *mock_interfaces.MockIJobRepository
	idem   *mock_interfaces.MockIIdempotencyRepository
}

func newBookingUseCase(t *testing.T) (*BookingUseCase, bookingMocks) {
	ctrl := gomock.NewController(t)
	m := bookingMocks{
		cal:    mock_interfaces.NewMockICalendarGateway(ctrl),
		mailer: mock_interfaces.NewMockIMailer(ctrl),
		jobs:   mock_interfaces.NewMockIJobRepository(ctrl),
		idem:   mock_interfaces.NewMockIIdempotencyRepository(ctrl),
	}
	uc := NewBookingUseCase(
		NewQuoteUseCase(nil, nil),
		NewSchedulingUseCase(m.cal, SchedulingOptions{Location: time.UTC}),
		NewNotificationUseCase(m.mailer, testNotifyOpts),
		m.jobs,
		m.idem,
		BookingOptions{},
	)
	return uc, m
}

func bookingInput() BookingInput {
	return BookingInput{
		IdempotencyKey: "key-1",
		Client:         entities.ClientInfo{FirstName: "Ana", LastName: "Diaz", Email: "ana@example.com"},
		Services:       []string{"photography", "appraisal"},
		Property: &entities.PropertyRecord{
			Address: "12 Main St", City: "Trenton", State: "NJ", Zip: "08608",
			CountyData: entities.CountyData{SquareFootage: 2500},
		},
		Schedule:       entities.Schedule{Date: "2026-03-14", Time: "2:00 PM"},
		ReferralSource: "google",
	}
}

func calendarOK(m bookingMocks) *gomock.Call {
	return m.cal.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req interfaces.CalendarEventRequest) (entities.CalendarEvent, error) {
		return entities.CalendarEvent{ID: "evt-1", Start: req.Start, End: req.End}, nil
	})
}

func TestBookingUseCase_Book_Success(t *testing.T) {
	uc, m := newBookingUseCase(t)

	gomock.InOrder(
		m.idem.EXPECT().Claim(gomock.Any(), "key-1", defaultIdempotencyTTL).Return(entities.IdempotencyRecord{}, true, nil),
		calendarOK(m),
		m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg interfaces.EmailMessage) (string, error) {
			if len(msg.Attachments) != 1 {
				t.Fatalf("expected invite attachment")
			}
			return "msg-1", nil
		}),
		m.idem.EXPECT().MarkPendingJob(gomock.Any(), "key-1", "evt-1", gomock.Any()).Return(nil),
		m.jobs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, j entities.Job) (entities.Job, error) {
			if j.Status != entities.JobStatusQuoted || j.ServiceType != entities.ServiceAppraisal {
				t.Fatalf("unexpected job status/service %s/%s", j.Status, j.ServiceType)
			}
			if j.QuotedAmount != 775 || j.CalendarEventID != "evt-1" || j.IdempotencyKey == nil || *j.IdempotencyKey != "key-1" {
				t.Fatalf("unexpected job %+v", j)
			}
			if j.ScheduledDate == nil || !j.ScheduledDate.Equal(time.Date(2026, 3, 14, 14, 0, 0, 0, time.UTC)) {
				t.Fatalf("unexpected scheduled date %v", j.ScheduledDate)
			}
			if j.PropertyAddress != "12 Main St, Trenton, NJ 08608" || j.PropertyData == "" || j.ReferralSource != "google" {
				t.Fatalf("unexpected job property fields %+v", j)
			}
			j.ID = "job-1"
			return j, nil
		}),
		m.idem.EXPECT().Complete(gomock.Any(), "key-1", "job-1", "evt-1", gomock.Any()).Return(nil),
	)

	res, err := uc.Book(context.Background(), bookingInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.JobID != "job-1" || res.EventID != "evt-1" || res.Quote.Total != 775 || res.Receipt.CustomerMessageID != "msg-1" || res.Replayed {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.ScheduledEnd.Sub(res.ScheduledStart) != 30*time.Minute {
		t.Fatalf("expected a 30 minute slot")
	}
}

func TestBookingUseCase_Book_ValidationTouchesNothing(t *testing.T) {
	cases := map[string]func(in *BookingInput){
		"missing date":    func(in *BookingInput) { in.Schedule.Date = "" },
		"missing time":    func(in *BookingInput) { in.Schedule.Time = "" },
		"missing address": func(in *BookingInput) { in.Property = nil },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			uc, _ := newBookingUseCase(t)
			in := bookingInput()
			mutate(&in)
			if _, err := uc.Book(context.Background(), in); !errors.Is(err, ErrMissingScheduleField) {
				t.Fatalf("expected ErrMissingScheduleField, got %v", err)
			}
		})
	}

	t.Run("invalid client", func(t *testing.T) {
		uc, _ := newBookingUseCase(t)
		in := bookingInput()
		in.Client.Email = "not-an-email"
		if _, err := uc.Book(context.Background(), in); !errors.Is(err, ErrInvalidBooking) {
			t.Fatalf("expected ErrInvalidBooking, got %v", err)
		}
	})

	t.Run("no known service", func(t *testing.T) {
		uc, _ := newBookingUseCase(t)
		in := bookingInput()
		in.Services = []string{"staging"}
		if _, err := uc.Book(context.Background(), in); !errors.Is(err, ErrInvalidBooking) {
			t.Fatalf("expected ErrInvalidBooking, got %v", err)
		}
	})
}

func TestBookingUseCase_Book_Replay(t *testing.T) {
	t.Run("completed key returns the stored response", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		stored, _ := json.Marshal(BookingResult{JobID: "job-1", EventID: "evt-1"})
		m.idem.EXPECT().Claim(gomock.Any(), "key-1", gomock.Any()).
			Return(entities.IdempotencyRecord{Key: "key-1", Status: entities.IdempotencyCompleted, Response: stored}, false, nil)

		res, err := uc.Book(context.Background(), bookingInput())
		if err != nil || !res.Replayed || res.JobID != "job-1" || res.IdempotencyKey != "key-1" {
			t.Fatalf("unexpected replay %+v err=%v", res, err)
		}
	})

	t.Run("in-progress key conflicts", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		m.idem.EXPECT().Claim(gomock.Any(), "key-1", gomock.Any()).
			Return(entities.IdempotencyRecord{Key: "key-1", Status: entities.IdempotencyInProgress}, false, nil)

		if _, err := uc.Book(context.Background(), bookingInput()); !errors.Is(err, ErrBookingInProgress) {
			t.Fatalf("expected ErrBookingInProgress, got %v", err)
		}
	})

	t.Run("claim failure", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		m.idem.EXPECT().Claim(gomock.Any(), "key-1", gomock.Any()).Return(entities.IdempotencyRecord{}, false, errors.New("throttled"))

		if _, err := uc.Book(context.Background(), bookingInput()); !errors.Is(err, ErrIdempotencyStore) {
			t.Fatalf("expected ErrIdempotencyStore, got %v", err)
		}
	})
}

func TestBookingUseCase_Book_Failures(t *testing.T) {
	t.Run("calendar failure releases the key", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		gomock.InOrder(
			m.idem.EXPECT().Claim(gomock.Any(), "key-1", gomock.Any()).Return(entities.IdempotencyRecord{}, true, nil),
			m.cal.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).Return(entities.CalendarEvent{}, errors.New("500")),
			m.idem.EXPECT().Release(gomock.Any(), "key-1").Return(nil),
		)
		if _, err := uc.Book(context.Background(), bookingInput()); !errors.Is(err, ErrCalendarUpstream) {
			t.Fatalf("expected ErrCalendarUpstream, got %v", err)
		}
	})

	t.Run("email failure deletes the event", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		gomock.InOrder(
			m.idem.EXPECT().Claim(gomock.Any(), "key-1", gomock.Any()).Return(entities.IdempotencyRecord{}, true, nil),
			calendarOK(m),
			m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return("", errors.New("invalid from")),
			m.cal.EXPECT().DeleteEvent(gomock.Any(), "evt-1").Return(nil),
			m.idem.EXPECT().Release(gomock.Any(), "key-1").Return(nil),
		)
		if _, err := uc.Book(context.Background(), bookingInput()); !errors.Is(err, ErrEmailDelivery) {
			t.Fatalf("expected ErrEmailDelivery, got %v", err)
		}
	})

	t.Run("job persistence failure keeps the key pending", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		gomock.InOrder(
			m.idem.EXPECT().Claim(gomock.Any(), "key-1", gomock.Any()).Return(entities.IdempotencyRecord{}, true, nil),
			calendarOK(m),
			m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return("msg-1", nil),
			m.idem.EXPECT().MarkPendingJob(gomock.Any(), "key-1", "evt-1", gomock.Any()).Return(nil),
			m.jobs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Job{}, errors.New("conn reset")),
		)
		m.idem.EXPECT().Release(gomock.Any(), gomock.Any()).Times(0)

		if _, err := uc.Book(context.Background(), bookingInput()); !errors.Is(err, ErrJobPersistence) {
			t.Fatalf("expected ErrJobPersistence, got %v", err)
		}
	})

	t.Run("existing job with the same key is reused", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		gomock.InOrder(
			m.idem.EXPECT().Claim(gomock.Any(), "key-1", gomock.Any()).Return(entities.IdempotencyRecord{}, true, nil),
			calendarOK(m),
			m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return("msg-1", nil),
			m.idem.EXPECT().MarkPendingJob(gomock.Any(), "key-1", "evt-1", gomock.Any()).Return(nil),
			m.jobs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Job{}, interfaces.ErrDuplicateKey),
			m.jobs.EXPECT().GetByIdempotencyKey(gomock.Any(), "key-1").Return(entities.Job{ID: "job-0"}, nil),
			m.idem.EXPECT().Complete(gomock.Any(), "key-1", "job-0", "evt-1", gomock.Any()).Return(nil),
		)
		res, err := uc.Book(context.Background(), bookingInput())
		if err != nil || res.JobID != "job-0" {
			t.Fatalf("unexpected result %+v err=%v", res, err)
		}
	})
}

func TestBookingUseCase_Book_RetryAfterJobFailure(t *testing.T) {
	uc, m := newBookingUseCase(t)

	var pending []byte
	gomock.InOrder(
		m.idem.EXPECT().Claim(gomock.Any(), "key-1", gomock.Any()).Return(entities.IdempotencyRecord{}, true, nil),
		calendarOK(m).Times(1),
		m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return("msg-1", nil).Times(1),
		m.idem.EXPECT().MarkPendingJob(gomock.Any(), "key-1", "evt-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, body []byte) error {
				pending = body
				return nil
			}),
		m.jobs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Job{}, errors.New("conn reset")),
	)
	if _, err := uc.Book(context.Background(), bookingInput()); !errors.Is(err, ErrJobPersistence) {
		t.Fatalf("expected ErrJobPersistence, got %v", err)
	}

	// The retry must not create a second event or send a second email.
	gomock.InOrder(
		m.idem.EXPECT().Claim(gomock.Any(), "key-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, key string, _ time.Duration) (entities.IdempotencyRecord, bool, error) {
				return entities.IdempotencyRecord{Key: key, Status: entities.IdempotencyPendingJob, EventID: "evt-1", Response: pending}, false, nil
			}),
		m.jobs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, j entities.Job) (entities.Job, error) {
			if j.CalendarEventID != "evt-1" || j.QuotedAmount != 775 || j.IdempotencyKey == nil || *j.IdempotencyKey != "key-1" {
				t.Fatalf("unexpected resumed job %+v", j)
			}
			j.ID = "job-1"
			return j, nil
		}),
		m.idem.EXPECT().Complete(gomock.Any(), "key-1", "job-1", "evt-1", gomock.Any()).Return(nil),
	)

	res, err := uc.Book(context.Background(), bookingInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.JobID != "job-1" || res.EventID != "evt-1" || res.Receipt.CustomerMessageID != "msg-1" || res.Replayed {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestBookingUseCase_Book_PendingRecordUnreadable(t *testing.T) {
	uc, m := newBookingUseCase(t)
	m.idem.EXPECT().Claim(gomock.Any(), "key-1", gomock.Any()).
		Return(entities.IdempotencyRecord{Key: "key-1", Status: entities.IdempotencyPendingJob, Response: []byte("{")}, false, nil)

	if _, err := uc.Book(context.Background(), bookingInput()); !errors.Is(err, ErrIdempotencyStore) {
		t.Fatalf("expected ErrIdempotencyStore, got %v", err)
	}
}

func TestBookingUseCase_Book_WithoutKey(t *testing.T) {
	uc, m := newBookingUseCase(t)
	in := bookingInput()
	in.IdempotencyKey = ""

	calendarOK(m)
	m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return("msg-1", nil)
	m.jobs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, j entities.Job) (entities.Job, error) {
		if j.IdempotencyKey == nil || *j.IdempotencyKey == "" {
			t.Fatalf("expected a generated key")
		}
		j.ID = "job-2"
		return j, nil
	})

	res, err := uc.Book(context.Background(), in)
	if err != nil || res.JobID != "job-2" || res.IdempotencyKey == "" {
		t.Fatalf("unexpected result %+v err=%v", res, err)
	}
}
