package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the invoice payment outcome reported by the provider.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusRejected PaymentStatus = "rejected"
)

// PaymentStatusFromProvider maps Mercado Pago statuses onto ours.
func PaymentStatusFromProvider(providerStatus string) PaymentStatus {
	switch providerStatus {
	case "approved", "authorized":
		return PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return PaymentStatusRejected
	default:
		return PaymentStatusPending
	}
}

// InvoicePayment is a payment collected against a job invoice.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_id-index): job_id
//
// ProviderPayloadRaw keeps the provider response body for audit; ProviderPayload is the
// parsed form used for debugging.
type InvoicePayment struct {
	ID       string        `json:"id"`
	JobID    string        `json:"job_id"`
	Amount   float64       `json:"amount"`
	Date     time.Time     `json:"date"`
	Status   PaymentStatus `json:"status"`
	Provider string        `json:"provider"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
