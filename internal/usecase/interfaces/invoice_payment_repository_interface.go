package interfaces

import (
	"appraisal_booking/internal/domain/entities"
	"context"
)

// IInvoicePaymentRepository abstracts DynamoDB persistence for InvoicePayment.

type IInvoicePaymentRepository interface {
	Create(ctx context.Context, p entities.InvoicePayment) (entities.InvoicePayment, error)
	GetByID(ctx context.Context, id string) (entities.InvoicePayment, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.InvoicePayment, error)
}
