package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"appraisal_booking/internal/domain/entities"
	"appraisal_booking/internal/usecase/interfaces"
)

const paymentProviderMercadoPago = "mercadopago"

var (
	ErrInvoicePaymentNotFound         = errors.New("invoice payment not found")
	ErrInvalidPaymentJobID            = errors.New("invalid job_id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrJobNotBillable                 = errors.New("job is not ready for billing")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// InvoicePaymentOptions: Mock approves payments locally without calling the provider.
// The sandbox fields only apply when AccessToken is a TEST- token.
type InvoicePaymentOptions struct {
	Mock            bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

// IInvoicePaymentUseCase charges a job invoice through the payment provider.
//
// The amount always comes from the job record, never from the caller's payload.
type IInvoicePaymentUseCase interface {
	CreateForJob(ctx context.Context, jobID string, mpPayload json.RawMessage) (entities.InvoicePayment, error)
	GetByID(ctx context.Context, id string) (entities.InvoicePayment, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.InvoicePayment, error)
}

type InvoicePaymentUseCase struct {
	repo    interfaces.IInvoicePaymentRepository
	jobRepo interfaces.IJobRepository
	gateway interfaces.IPaymentGateway
	opts    InvoicePaymentOptions
	now     func() time.Time
}

var _ IInvoicePaymentUseCase = (*InvoicePaymentUseCase)(nil)

func NewInvoicePaymentUseCase(repo interfaces.IInvoicePaymentRepository, jobRepo interfaces.IJobRepository, gateway interfaces.IPaymentGateway, opts InvoicePaymentOptions) *InvoicePaymentUseCase {
	return &InvoicePaymentUseCase{repo: repo, jobRepo: jobRepo, gateway: gateway, opts: opts, now: time.Now}
}

func (u *InvoicePaymentUseCase) CreateForJob(ctx context.Context, jobID string, mpPayload json.RawMessage) (entities.InvoicePayment, error) {
	log.Printf("[payment][usecase] create start raw_job_id=%q payload_len=%d", jobID, len(mpPayload))
	mockMode := u.opts.Mock
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		log.Printf("[payment][usecase] invalid job_id (empty)")
		return entities.InvoicePayment{}, ErrInvalidPaymentJobID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Printf("[payment][usecase] invalid payload job_id=%s", jobID)
			return entities.InvoicePayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil || u.repo == nil {
		log.Printf("[payment][usecase] gateway not configured job_id=%s", jobID)
		return entities.InvoicePayment{}, ErrPaymentGatewayNotConfigured
	}
	if u.jobRepo == nil {
		return entities.InvoicePayment{}, ErrJobStoreUnavailable
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading job job_id=%s err=%v", jobID, err)
		return entities.InvoicePayment{}, err
	}
	if job.ID == "" {
		log.Printf("[payment][usecase] job not found job_id=%s", jobID)
		return entities.InvoicePayment{}, ErrJobNotFound
	}
	if !mockMode && job.Status != entities.JobStatusCompleted && job.Status != entities.JobStatusInvoiceSent {
		log.Printf("[payment][usecase] job not billable job_id=%s status=%s", jobID, job.Status)
		return entities.InvoicePayment{}, ErrJobNotBillable
	}
	amount := job.BillableAmount()
	log.Printf("[payment][usecase] job loaded job_id=%s status=%s amount=%.2f", jobID, job.Status, amount)

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if reqMap == nil {
			reqMap = map[string]any{}
		}
		if !mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Printf("[payment][usecase] missing payment_method_id job_id=%s", jobID)
			return entities.InvoicePayment{}, ErrInvalidMPPayload
		}
		if !mockMode {
			u.normalizeSandboxPayer(reqMap)
			u.ensurePayerDefaults(reqMap, job)
			if !hasPayer(reqMap) {
				log.Printf("[payment][usecase] missing/invalid payer job_id=%s", jobID)
				return entities.InvoicePayment{}, ErrInvalidMPPayload
			}
		}
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = jobID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("%s - %s", job.ServiceType, job.PropertyAddress)
		}
		reqMap["transaction_amount"] = amount
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
		}
	} else {
		log.Printf("[payment][usecase] payload unmarshal failed job_id=%s err=%v", jobID, err)
		if !mockMode {
			return entities.InvoicePayment{}, ErrInvalidMPPayload
		}
	}

	var providerPaymentID, providerStatus string
	var providerResp json.RawMessage
	if mockMode {
		log.Printf("[payment][usecase] mock mode enabled; skipping external payment gateway job_id=%s", jobID)
		providerPaymentID, providerStatus, providerResp, err = u.mockPayment(mpPayload, jobID, amount)
		if err != nil {
			return entities.InvoicePayment{}, err
		}
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			log.Printf("[payment][usecase] payment gateway failed job_id=%s err=%v", jobID, err)
			return entities.InvoicePayment{}, mapGatewayError(err)
		}
	}
	log.Printf("[payment][usecase] payment gateway success job_id=%s provider_payment_id=%s provider_status=%s", jobID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed job_id=%s err=%v", jobID, err)
	}

	p := entities.InvoicePayment{
		ID:                 providerPaymentID,
		JobID:              jobID,
		Amount:             amount,
		Date:               u.now().UTC(),
		Status:             entities.PaymentStatusFromProvider(providerStatus),
		Provider:           paymentProviderMercadoPago,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed job_id=%s payment_id=%s err=%v", jobID, p.ID, err)
		return entities.InvoicePayment{}, err
	}

	if created.Status == entities.PaymentStatusApproved && job.Status != entities.JobStatusInvoicePaid {
		if _, err := u.jobRepo.UpdateStatus(ctx, jobID, entities.JobStatusInvoicePaid, nil); err != nil {
			// The payment is recorded; staff can move the job by hand.
			log.Printf("[payment][usecase] job status update failed job_id=%s err=%v", jobID, err)
		}
	}
	log.Printf("[payment][usecase] create success job_id=%s payment_id=%s status=%s", jobID, created.ID, created.Status)
	return created, nil
}

func (u *InvoicePaymentUseCase) mockPayment(payload json.RawMessage, jobID string, amount float64) (string, string, json.RawMessage, error) {
	now := u.now().UTC()
	id := strconv.FormatInt(now.UnixNano(), 10)
	var resp map[string]any
	if err := json.Unmarshal(payload, &resp); err != nil || resp == nil {
		resp = map[string]any{}
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now.Format(time.RFC3339Nano)
	resp["date_approved"] = now.Format(time.RFC3339Nano)
	if _, ok := resp["external_reference"]; !ok {
		resp["external_reference"] = jobID
	}
	resp["transaction_amount"] = amount
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

func (u *InvoicePaymentUseCase) GetByID(ctx context.Context, id string) (entities.InvoicePayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.InvoicePayment{}, ErrInvoicePaymentNotFound
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.InvoicePayment{}, err
	}
	if p.ID == "" {
		return entities.InvoicePayment{}, ErrInvoicePaymentNotFound
	}
	return p, nil
}

// ListByJobID returns the job's payments, newest first.
func (u *InvoicePaymentUseCase) ListByJobID(ctx context.Context, jobID string) ([]entities.InvoicePayment, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidPaymentJobID
	}
	if u.repo == nil {
		return nil, ErrPaymentGatewayNotConfigured
	}
	out, err := u.repo.ListByJobID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []entities.InvoicePayment{}
	}
	return out, nil
}

func (u *InvoicePaymentUseCase) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(u.opts.AccessToken), "TEST-")
}

// ensurePayerDefaults fills payer.email from the job, or the sandbox test payer.
func (u *InvoicePaymentUseCase) ensurePayerDefaults(m map[string]any, job entities.Job) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	switch {
	case u.sandbox() && u.opts.TestPayerEmail != "":
		payer["email"] = u.opts.TestPayerEmail
	case u.sandbox():
		payer["email"] = "test_user_br@testuser.com"
	case job.ClientEmail != "":
		payer["email"] = job.ClientEmail
	}
}

func (u *InvoicePaymentUseCase) normalizeSandboxPayer(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if !u.sandbox() || u.opts.TestPayerUserID == "" || u.opts.TestPayerEmail == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != u.opts.TestPayerUserID {
		return
	}
	payer["email"] = u.opts.TestPayerEmail
	delete(payer, "id")
	log.Printf("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

// mapGatewayError classifies provider errors by their message body; the SDK does not
// expose typed errors.
func mapGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}
