package interfaces

import (
	"context"

	"appraisal_booking/internal/domain/entities"
)

// IPropertyLookup searches the property-records service by address fragment.
type IPropertyLookup interface {
	Search(ctx context.Context, address string, limit int) ([]entities.PropertyRecord, error)
}
