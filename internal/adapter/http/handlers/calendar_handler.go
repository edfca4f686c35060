package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	request "appraisal_booking/internal/adapter/http/dto/request"
	response "appraisal_booking/internal/adapter/http/dto/response"
	"appraisal_booking/internal/domain/pricing"
	"appraisal_booking/internal/usecase"
	"appraisal_booking/pkg"

	"github.com/gin-gonic/gin"
)

// CalendarHandler creates a standalone calendar event for a scheduled service request.
type CalendarHandler struct {
	usecase usecase.ISchedulingUseCase
}

func NewCalendarHandler(uc usecase.ISchedulingUseCase) *CalendarHandler {
	return &CalendarHandler{usecase: uc}
}

// CreateEvent
//
// @Summary  Create a 30 minute appointment on the business calendar
// @Tags     public
// @Accept   json
// @Produce  json
// @Param    body body request.CalendarEventRequest true "form data"
// @Success  200 {object} response.CalendarEventResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  500 {object} pkg.HTTPError
// @Router   /v1/calendar/events [post]
func (h *CalendarHandler) CreateEvent(c *gin.Context) {
	var payload request.CalendarEventRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	property, err := request.DecodeProperty(payload.PropertyData)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid property data", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	f := payload.FormData
	names := make([]string, 0, len(f.Services))
	for _, s := range f.Services {
		names = append(names, pricing.ServiceName(s))
	}
	req := usecase.ScheduleRequest{
		Client:       f.Client(),
		Schedule:     f.Schedule(),
		Address:      f.ResolveAddress(property),
		ServiceNames: names,
		Notes:        strings.TrimSpace(f.Notes),
	}

	ev, err := h.usecase.CreateEvent(c.Request.Context(), req)
	if err != nil {
		log.Printf("[calendar][handler] create failed date=%s time=%s err=%v", req.Schedule.Date, req.Schedule.Time, err)
		appErr := mapSchedulingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[calendar][handler] create success event_id=%s", ev.EventID)

	c.JSON(http.StatusOK, response.CalendarEventResponse{
		EventID: ev.EventID,
		Start:   ev.Start.Format(time.RFC3339),
		End:     ev.End.Format(time.RFC3339),
	})
}

func mapSchedulingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingScheduleField):
		return pkg.NewDomainErrorSimple("MISSING_SCHEDULE_FIELD", "Date, time and address are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidScheduleFormat):
		return pkg.NewDomainErrorSimple("INVALID_SCHEDULE", "Invalid date or time format", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCalendarAuth):
		return pkg.NewDomainError("CALENDAR_AUTH_FAILED", "Calendar authentication failed", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrCalendarNotConfigured):
		return pkg.NewDomainError("CALENDAR_NOT_CONFIGURED", "Calendar is not configured", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrCalendarUpstream):
		return pkg.NewDomainError("CALENDAR_ERROR", "Failed to create calendar event", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
