package interfaces

import (
	"context"

	"appraisal_booking/internal/domain/entities"
)

type IServicePricingRepository interface {
	ListAll(ctx context.Context) ([]entities.ServicePrice, error)
	Upsert(ctx context.Context, p entities.ServicePrice) (entities.ServicePrice, error)
}

// IDiscountCodeRepository returns a zero DiscountCode (empty Code) when not found.
type IDiscountCodeRepository interface {
	GetByCode(ctx context.Context, code string) (entities.DiscountCode, error)
	List(ctx context.Context) ([]entities.DiscountCode, error)
	Create(ctx context.Context, d entities.DiscountCode) (entities.DiscountCode, error)
	SetActive(ctx context.Context, code string, active bool) (entities.DiscountCode, error)
}
