package usecase

import (
	"context"
	"errors"
	"log"
	"regexp"
	"strings"

	"appraisal_booking/internal/domain/entities"
	"appraisal_booking/internal/domain/pricing"
	"appraisal_booking/internal/usecase/interfaces"
)

var (
	ErrUnknownService       = errors.New("unknown service")
	ErrInvalidPricingTier   = errors.New("invalid pricing tier for service")
	ErrInvalidPrice         = errors.New("price must not be negative")
	ErrInvalidDiscountCode  = errors.New("invalid discount code")
	ErrDiscountCodeExists   = errors.New("discount code already exists")
	ErrDiscountCodeNotFound = errors.New("discount code not found")
	ErrPricingNotConfigured = errors.New("pricing repository not configured")
)

var discountCodePattern = regexp.MustCompile(`^[A-Z0-9_-]{3,32}$`)

// IPricingAdminUseCase manages the service_pricing table and discount codes.
type IPricingAdminUseCase interface {
	ListPrices(ctx context.Context) []entities.ServicePrice
	UpsertPrice(ctx context.Context, p entities.ServicePrice) (entities.ServicePrice, error)
	ListDiscountCodes(ctx context.Context) ([]entities.DiscountCode, error)
	CreateDiscountCode(ctx context.Context, d entities.DiscountCode) (entities.DiscountCode, error)
	DeactivateDiscountCode(ctx context.Context, code string) (entities.DiscountCode, error)
}

type PricingAdminUseCase struct {
	quotes       IQuoteUseCase
	pricingRepo  interfaces.IServicePricingRepository
	discountRepo interfaces.IDiscountCodeRepository
}

var _ IPricingAdminUseCase = (*PricingAdminUseCase)(nil)

func NewPricingAdminUseCase(quotes IQuoteUseCase, pricingRepo interfaces.IServicePricingRepository, discountRepo interfaces.IDiscountCodeRepository) *PricingAdminUseCase {
	return &PricingAdminUseCase{quotes: quotes, pricingRepo: pricingRepo, discountRepo: discountRepo}
}

// ListPrices returns the effective table: stored rows merged over the defaults.
func (u *PricingAdminUseCase) ListPrices(ctx context.Context) []entities.ServicePrice {
	return u.quotes.PriceTable(ctx).Rows()
}

func (u *PricingAdminUseCase) UpsertPrice(ctx context.Context, p entities.ServicePrice) (entities.ServicePrice, error) {
	if u.pricingRepo == nil {
		return entities.ServicePrice{}, ErrPricingNotConfigured
	}
	svc, ok := entities.ParseServiceType(p.ServiceID)
	if !ok {
		return entities.ServicePrice{}, ErrUnknownService
	}
	tier := strings.ToLower(strings.TrimSpace(p.TierName))
	if !validTier(svc, tier) {
		return entities.ServicePrice{}, ErrInvalidPricingTier
	}
	if p.Price < 0 {
		return entities.ServicePrice{}, ErrInvalidPrice
	}

	p.ServiceID = string(svc)
	p.TierName = tier
	saved, err := u.pricingRepo.Upsert(ctx, p)
	if err != nil {
		log.Printf("[pricing][usecase] upsert failed service=%s tier=%s err=%v", p.ServiceID, p.TierName, err)
		return entities.ServicePrice{}, err
	}
	log.Printf("[pricing][usecase] upsert success service=%s tier=%s price=%.2f", saved.ServiceID, saved.TierName, saved.Price)
	return saved, nil
}

func validTier(svc entities.ServiceType, tier string) bool {
	if svc != entities.ServiceAppraisal {
		return tier == pricing.TierBase
	}
	switch tier {
	case pricing.TierUpTo2000, pricing.TierUpTo3000, pricing.TierUpTo4000, pricing.TierOver4000:
		return true
	}
	return false
}

func (u *PricingAdminUseCase) ListDiscountCodes(ctx context.Context) ([]entities.DiscountCode, error) {
	if u.discountRepo == nil {
		return nil, ErrPricingNotConfigured
	}
	out, err := u.discountRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []entities.DiscountCode{}
	}
	return out, nil
}

func (u *PricingAdminUseCase) CreateDiscountCode(ctx context.Context, d entities.DiscountCode) (entities.DiscountCode, error) {
	if u.discountRepo == nil {
		return entities.DiscountCode{}, ErrPricingNotConfigured
	}
	d.Code = strings.ToUpper(strings.TrimSpace(d.Code))
	if !discountCodePattern.MatchString(d.Code) || d.DiscountValue <= 0 {
		return entities.DiscountCode{}, ErrInvalidDiscountCode
	}
	switch d.DiscountType {
	case entities.DiscountPercentage:
		if d.DiscountValue > 100 {
			return entities.DiscountCode{}, ErrInvalidDiscountCode
		}
	case entities.DiscountFlat:
	default:
		return entities.DiscountCode{}, ErrInvalidDiscountCode
	}

	created, err := u.discountRepo.Create(ctx, d)
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicateKey) {
			return entities.DiscountCode{}, ErrDiscountCodeExists
		}
		return entities.DiscountCode{}, err
	}
	log.Printf("[pricing][usecase] discount code created code=%s type=%s value=%.2f", created.Code, created.DiscountType, created.DiscountValue)
	return created, nil
}

func (u *PricingAdminUseCase) DeactivateDiscountCode(ctx context.Context, code string) (entities.DiscountCode, error) {
	if u.discountRepo == nil {
		return entities.DiscountCode{}, ErrPricingNotConfigured
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return entities.DiscountCode{}, ErrInvalidDiscountCode
	}
	d, err := u.discountRepo.SetActive(ctx, code, false)
	if err != nil {
		return entities.DiscountCode{}, err
	}
	if d.Code == "" {
		return entities.DiscountCode{}, ErrDiscountCodeNotFound
	}
	return d, nil
}
