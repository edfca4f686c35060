package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts the invoice payment provider (Mercado Pago).
//
// The payload is the provider request body; the raw provider response is returned so it
// can be persisted with the payment for traceability.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
