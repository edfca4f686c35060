package request

import (
	"encoding/json"
	"strings"
	"time"

	"appraisal_booking/internal/domain/entities"
)

type JobCreateRequest struct {
	ClientName      string     `json:"client_name" binding:"required"`
	ClientEmail     string     `json:"client_email"`
	ClientPhone     string     `json:"client_phone"`
	PropertyAddress string     `json:"property_address" binding:"required"`
	ServiceType     string     `json:"service_type" binding:"required"`
	Status          string     `json:"status"`
	QuotedAmount    float64    `json:"quoted_amount"`
	FinalAmount     *float64   `json:"final_amount"`
	ScheduledDate   *time.Time `json:"scheduled_date"`
	ReferralSource  string     `json:"referral_source"`
	Notes           string     `json:"notes"`
}

// ToEntity copies the payload as-is; enum validation happens in the usecase.
func (r JobCreateRequest) ToEntity() entities.Job {
	return entities.Job{
		ClientName:      strings.TrimSpace(r.ClientName),
		ClientEmail:     strings.TrimSpace(r.ClientEmail),
		ClientPhone:     strings.TrimSpace(r.ClientPhone),
		PropertyAddress: strings.TrimSpace(r.PropertyAddress),
		ServiceType:     entities.ServiceType(strings.TrimSpace(r.ServiceType)),
		Status:          entities.JobStatus(strings.TrimSpace(r.Status)),
		QuotedAmount:    r.QuotedAmount,
		FinalAmount:     r.FinalAmount,
		ScheduledDate:   r.ScheduledDate,
		ReferralSource:  strings.TrimSpace(r.ReferralSource),
		Notes:           r.Notes,
	}
}

type JobStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type JobAmountsRequest struct {
	QuotedAmount *float64 `json:"quoted_amount"`
	FinalAmount  *float64 `json:"final_amount"`
}

type ServicePriceRequest struct {
	ServiceID string   `json:"service_id" binding:"required"`
	TierName  string   `json:"tier_name" binding:"required"`
	Price     *float64 `json:"price" binding:"required"`
}

func (r ServicePriceRequest) ToEntity() entities.ServicePrice {
	p := entities.ServicePrice{ServiceID: strings.TrimSpace(r.ServiceID), TierName: strings.TrimSpace(r.TierName)}
	if r.Price != nil {
		p.Price = *r.Price
	}
	return p
}

type DiscountCodeRequest struct {
	Code          string  `json:"code" binding:"required"`
	DiscountType  string  `json:"discount_type" binding:"required"`
	DiscountValue float64 `json:"discount_value"`
}

func (r DiscountCodeRequest) ToEntity() entities.DiscountCode {
	return entities.DiscountCode{
		Code:          strings.TrimSpace(r.Code),
		DiscountType:  entities.DiscountType(strings.ToLower(strings.TrimSpace(r.DiscountType))),
		DiscountValue: r.DiscountValue,
		Active:        true,
	}
}

// InvoicePaymentRequest wraps the Mercado Pago payment body. The bare body is accepted too.
type InvoicePaymentRequest struct {
	MPPayload json.RawMessage `json:"mp_payload" swaggertype:"object"`
}
