package calendar

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"appraisal_booking/internal/domain/entities"
	"appraisal_booking/internal/usecase/interfaces"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

var ErrNotConfigured = errors.New("google calendar credentials not configured")

// Config holds the OAuth client and the long-lived refresh token of the business
// calendar owner. TokenURL and Endpoint override Google's URLs.
type Config struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	CalendarID   string
	TokenURL     string
	Endpoint     string
	Timeout      time.Duration
}

type GoogleCalendarGateway struct {
	svc        *gcal.Service
	calendarID string
}

var _ interfaces.ICalendarGateway = (*GoogleCalendarGateway)(nil)

// NewGoogleCalendarGateway exchanges the refresh token lazily, on the first API call.
func NewGoogleCalendarGateway(ctx context.Context, cfg Config) (*GoogleCalendarGateway, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" || cfg.RefreshToken == "" {
		return nil, ErrNotConfigured
	}
	if cfg.CalendarID == "" {
		cfg.CalendarID = "primary"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	oc := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{gcal.CalendarEventsScope},
	}
	if cfg.TokenURL != "" {
		oc.Endpoint.TokenURL = cfg.TokenURL
	}

	tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{Timeout: cfg.Timeout})
	httpClient := oauth2.NewClient(tokenCtx, oc.TokenSource(tokenCtx, &oauth2.Token{RefreshToken: cfg.RefreshToken}))
	httpClient.Timeout = cfg.Timeout

	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}
	svc, err := gcal.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	log.Printf("[calendar][gateway] google calendar client initialized calendar_id=%s", cfg.CalendarID)
	return &GoogleCalendarGateway{svc: svc, calendarID: cfg.CalendarID}, nil
}

func (g *GoogleCalendarGateway) CreateEvent(ctx context.Context, req interfaces.CalendarEventRequest) (entities.CalendarEvent, error) {
	ev := &gcal.Event{
		Summary:     req.Summary,
		Location:    req.Location,
		Description: req.Description,
		Start:       &gcal.EventDateTime{DateTime: req.Start.Format(time.RFC3339), TimeZone: req.TimeZone},
		End:         &gcal.EventDateTime{DateTime: req.End.Format(time.RFC3339), TimeZone: req.TimeZone},
	}
	if req.AttendeeEmail != "" {
		ev.Attendees = []*gcal.EventAttendee{{Email: req.AttendeeEmail}}
	}

	// The customer gets our own invite attachment; Google must not send a second one.
	created, err := g.svc.Events.Insert(g.calendarID, ev).SendUpdates("none").Context(ctx).Do()
	if err != nil {
		return entities.CalendarEvent{}, classify(err)
	}
	log.Printf("[calendar][gateway] event created event_id=%s", created.Id)
	return entities.CalendarEvent{ID: created.Id, Start: req.Start, End: req.End, Link: created.HtmlLink}, nil
}

func (g *GoogleCalendarGateway) DeleteEvent(ctx context.Context, eventID string) error {
	err := g.svc.Events.Delete(g.calendarID, eventID).SendUpdates("none").Context(ctx).Do()
	if err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) && (gerr.Code == http.StatusNotFound || gerr.Code == http.StatusGone) {
			return nil
		}
		return classify(err)
	}
	return nil
}

// classify separates credential failures from other upstream failures.
func classify(err error) error {
	var rerr *oauth2.RetrieveError
	if errors.As(err, &rerr) {
		return fmt.Errorf("%w: token refresh: %v", interfaces.ErrProviderAuth, err)
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && (gerr.Code == http.StatusUnauthorized || gerr.Code == http.StatusForbidden) {
		return fmt.Errorf("%w: %v", interfaces.ErrProviderAuth, err)
	}
	return fmt.Errorf("%w: %v", interfaces.ErrProviderUpstream, err)
}
