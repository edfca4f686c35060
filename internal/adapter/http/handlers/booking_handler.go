package handlers

import (
	"errors"
	"log"
	"net/http"

	request "appraisal_booking/internal/adapter/http/dto/request"
	"appraisal_booking/internal/usecase"
	"appraisal_booking/pkg"

	"github.com/gin-gonic/gin"
)

const headerIdempotencyKey = "Idempotency-Key"

// BookingHandler handles the scheduled booking flow: quote, calendar, confirmation, job.
type BookingHandler struct {
	usecase usecase.IBookingUseCase
}

func NewBookingHandler(uc usecase.IBookingUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

// Book
//
// @Summary  Book a scheduled service
// @Tags     public
// @Accept   json
// @Produce  json
// @Param    Idempotency-Key header string false "client generated key per booking attempt"
// @Param    body body request.BookingRequest true "booking"
// @Success  200 {object} usecase.BookingResult
// @Success  201 {object} usecase.BookingResult
// @Failure  400 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Failure  500 {object} pkg.HTTPError
// @Router   /v1/bookings [post]
func (h *BookingHandler) Book(c *gin.Context) {
	var payload request.BookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	in, err := payload.ToInput(c.GetHeader(headerIdempotencyKey))
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid property data", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[booking][handler] book start idempotency_key=%s services=%v", in.IdempotencyKey, in.Services)

	res, err := h.usecase.Book(c.Request.Context(), in)
	if err != nil {
		log.Printf("[booking][handler] book failed idempotency_key=%s err=%v", in.IdempotencyKey, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header(headerIdempotencyKey, res.IdempotencyKey)
	if res.Replayed {
		c.JSON(http.StatusOK, res)
		return
	}
	log.Printf("[booking][handler] book success job_id=%s event_id=%s", res.JobID, res.EventID)
	c.JSON(http.StatusCreated, res)
}

func mapBookingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBooking), errors.Is(err, usecase.ErrInvalidContact):
		return pkg.NewDomainErrorSimple("INVALID_BOOKING", "Name, a valid email and at least one known service are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBookingInProgress):
		return pkg.NewDomainErrorSimple("BOOKING_IN_PROGRESS", "A booking with this idempotency key is still in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrMissingScheduleField), errors.Is(err, usecase.ErrInvalidScheduleFormat),
		errors.Is(err, usecase.ErrCalendarAuth), errors.Is(err, usecase.ErrCalendarUpstream), errors.Is(err, usecase.ErrCalendarNotConfigured):
		return mapSchedulingError(err)
	case errors.Is(err, usecase.ErrEmailDelivery), errors.Is(err, usecase.ErrEmailNotConfigured):
		return mapContactError(err)
	case errors.Is(err, usecase.ErrIdempotencyStore):
		return pkg.NewDomainError("IDEMPOTENCY_UNAVAILABLE", "Booking could not be started", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrJobPersistence), errors.Is(err, usecase.ErrJobStoreUnavailable):
		return pkg.NewDomainError("JOB_PERSISTENCE_FAILED", "Booking could not be saved", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
