package usecase

import (
	"context"
	"log"
	"strings"

	"appraisal_booking/internal/domain/entities"
	"appraisal_booking/internal/domain/pricing"
	"appraisal_booking/internal/usecase/interfaces"
)

type QuoteInput struct {
	Services      []string
	SquareFootage int
	DiscountCode  string
}

// IQuoteUseCase prices a selection of services.
//
// The service_pricing table is the only price source; the built-in defaults only fill
// tiers the table does not define, or stand in when the table cannot be read.
type IQuoteUseCase interface {
	Quote(ctx context.Context, in QuoteInput) pricing.Quote
	PriceTable(ctx context.Context) pricing.Table
}

type QuoteUseCase struct {
	pricingRepo  interfaces.IServicePricingRepository
	discountRepo interfaces.IDiscountCodeRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(pricingRepo interfaces.IServicePricingRepository, discountRepo interfaces.IDiscountCodeRepository) *QuoteUseCase {
	return &QuoteUseCase{pricingRepo: pricingRepo, discountRepo: discountRepo}
}

func (u *QuoteUseCase) Quote(ctx context.Context, in QuoteInput) pricing.Quote {
	table := u.PriceTable(ctx)
	discount := u.lookupDiscount(ctx, in.DiscountCode)

	sqft := in.SquareFootage
	if sqft < 0 {
		sqft = 0
	}
	q := pricing.Calculate(table, in.Services, sqft, discount)
	log.Printf("[quote][usecase] quoted services=%d sqft=%d subtotal=%.2f discount=%.2f total=%.2f",
		len(q.LineItems), sqft, q.Subtotal, q.DiscountAmount, q.Total)
	return q
}

func (u *QuoteUseCase) PriceTable(ctx context.Context) pricing.Table {
	if u.pricingRepo == nil {
		return pricing.DefaultTable()
	}
	rows, err := u.pricingRepo.ListAll(ctx)
	if err != nil {
		log.Printf("[quote][usecase] service_pricing load failed, using defaults err=%v", err)
		return pricing.DefaultTable()
	}
	return pricing.NewTable(rows)
}

// lookupDiscount returns nil for blank, unknown, inactive or unreadable codes.
func (u *QuoteUseCase) lookupDiscount(ctx context.Context, code string) *entities.DiscountCode {
	code = strings.TrimSpace(code)
	if code == "" || u.discountRepo == nil {
		return nil
	}
	d, err := u.discountRepo.GetByCode(ctx, code)
	if err != nil {
		log.Printf("[quote][usecase] discount lookup failed code=%s err=%v", code, err)
		return nil
	}
	if d.Code == "" || !d.Active {
		log.Printf("[quote][usecase] discount ignored code=%s found=%t active=%t", code, d.Code != "", d.Active)
		return nil
	}
	return &d
}
