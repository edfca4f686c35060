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

type ContactHandler struct {
	usecase usecase.IContactUseCase
}

func NewContactHandler(uc usecase.IContactUseCase) *ContactHandler {
	return &ContactHandler{usecase: uc}
}

// Submit sends the contact form, or a service request confirmation when
// isServiceRequest is set.
//
// @Summary  Submit the contact or service request form
// @Tags     public
// @Accept   json
// @Produce  json
// @Param    body body request.ContactRequest true "contact form"
// @Success  200 {object} usecase.ContactResult
// @Failure  400 {object} pkg.HTTPError
// @Failure  500 {object} pkg.HTTPError
// @Router   /v1/contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var payload request.ContactRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid property data", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res, err := h.usecase.Submit(c.Request.Context(), in)
	if err != nil {
		log.Printf("[contact][handler] submit failed service_request=%t err=%v", in.IsServiceRequest, err)
		appErr := mapContactError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, res)
}

func mapContactError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidContact):
		return pkg.NewDomainErrorSimple("INVALID_CONTACT", "Name and a valid email are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingScheduleField), errors.Is(err, usecase.ErrInvalidScheduleFormat):
		return mapSchedulingError(err)
	case errors.Is(err, usecase.ErrEmailNotConfigured):
		return pkg.NewDomainError("EMAIL_NOT_CONFIGURED", "Email delivery is not configured", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrEmailDelivery):
		return pkg.NewDomainError("EMAIL_DELIVERY_FAILED", "Failed to send email", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
