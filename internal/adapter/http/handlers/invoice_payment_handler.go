package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	response "appraisal_booking/internal/adapter/http/dto/response"
	"appraisal_booking/internal/usecase"
	"appraisal_booking/pkg"

	"github.com/gin-gonic/gin"
)

// InvoicePaymentHandler collects job invoices through Mercado Pago.
type InvoicePaymentHandler struct {
	usecase usecase.IInvoicePaymentUseCase
}

func NewInvoicePaymentHandler(uc usecase.IInvoicePaymentUseCase) *InvoicePaymentHandler {
	return &InvoicePaymentHandler{usecase: uc}
}

// CreatePaymentForJob charges the job's billable amount.
func (h *InvoicePaymentHandler) CreatePaymentForJob(c *gin.Context) {
	jobID := c.Param("id")
	log.Printf("[payment][handler] create start job_id=%s", jobID)

	// An unreadable body is passed on as empty; mock mode accepts it, live mode rejects it.
	mpPayload, err := readMPPayload(c)
	if err != nil {
		log.Printf("[payment][handler] payload unreadable job_id=%s err=%v", jobID, err)
		mpPayload = nil
	}

	created, err := h.usecase.CreateForJob(c.Request.Context(), jobID, mpPayload)
	if err != nil {
		log.Printf("[payment][handler] create failed job_id=%s err=%v", jobID, err)
		appErr := mapInvoicePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success job_id=%s payment_id=%s status=%s", jobID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromInvoicePayment(created))
}

// ListPaymentsForJob returns every payment attempt for the job, newest first.
func (h *InvoicePaymentHandler) ListPaymentsForJob(c *gin.Context) {
	jobID := c.Param("id")

	payments, err := h.usecase.ListByJobID(c.Request.Context(), jobID)
	if err != nil {
		log.Printf("[payment][handler] list failed job_id=%s err=%v", jobID, err)
		appErr := mapInvoicePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoicePayments(payments))
}

// GetLatestPaymentForJob mirrors the single-payment lookup the back office polls.
func (h *InvoicePaymentHandler) GetLatestPaymentForJob(c *gin.Context) {
	jobID := c.Param("id")

	payments, err := h.usecase.ListByJobID(c.Request.Context(), jobID)
	if err != nil {
		appErr := mapInvoicePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if len(payments) == 0 {
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	c.JSON(http.StatusOK, response.FromInvoicePayment(latest))
}

func (h *InvoicePaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		appErr := mapInvoicePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoicePayment(p))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if s := strings.TrimSpace(string(wrapped)); s == "" || s == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapInvoicePaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentJobID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotBillable):
		return pkg.NewDomainErrorSimple("JOB_NOT_BILLABLE", "Job must be completed or invoiced before payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoicePaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured), errors.Is(err, usecase.ErrJobStoreUnavailable):
		return pkg.NewDomainError("PAYMENT_NOT_CONFIGURED", "Payments are not configured", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
