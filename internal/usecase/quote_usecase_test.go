package usecase

import (
	"context"
	"errors"
	"testing"

	"appraisal_booking/internal/domain/entities"
	mock_interfaces "appraisal_booking/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestQuoteUseCase_Quote(t *testing.T) {
	t.Run("2500 sqft appraisal without discount", func(t *testing.T) {
		q := NewQuoteUseCase(nil, nil).Quote(context.Background(), QuoteInput{Services: []string{"appraisal"}, SquareFootage: 2500})
		if len(q.LineItems) != 1 || q.LineItems[0].Name != "Appraisal Report" || q.LineItems[0].Price != 525 {
			t.Fatalf("unexpected line items %+v", q.LineItems)
		}
		if q.Total != 525 || q.DiscountApplied {
			t.Fatalf("unexpected quote %+v", q)
		}
	})

	t.Run("table rows override defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		prices := mock_interfaces.NewMockIServicePricingRepository(ctrl)
		uc := NewQuoteUseCase(prices, nil)

		prices.EXPECT().ListAll(gomock.Any()).Return([]entities.ServicePrice{
			{ServiceID: "photography", TierName: "base", Price: 300},
		}, nil)

		q := uc.Quote(context.Background(), QuoteInput{Services: []string{"photography", "floor_plans"}})
		if q.Subtotal != 450 || q.Total != 450 {
			t.Fatalf("expected 300+150, got %+v", q)
		}
	})

	t.Run("table load error falls back to defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		prices := mock_interfaces.NewMockIServicePricingRepository(ctrl)
		uc := NewQuoteUseCase(prices, nil)

		prices.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("db down"))

		q := uc.Quote(context.Background(), QuoteInput{Services: []string{"appraisal"}, SquareFootage: 4500})
		if q.Total != 700 {
			t.Fatalf("expected default over_4000 price, got %+v", q)
		}
	})

	t.Run("active discount applies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		discounts := mock_interfaces.NewMockIDiscountCodeRepository(ctrl)
		uc := NewQuoteUseCase(nil, discounts)

		discounts.EXPECT().GetByCode(gomock.Any(), "SPRING10").Return(entities.DiscountCode{
			Code: "SPRING10", DiscountType: entities.DiscountPercentage, DiscountValue: 10, Active: true,
		}, nil)

		q := uc.Quote(context.Background(), QuoteInput{Services: []string{"appraisal"}, SquareFootage: 2500, DiscountCode: " SPRING10 "})
		if !q.DiscountApplied || q.DiscountAmount != 52.5 || q.Total != 472.5 {
			t.Fatalf("unexpected quote %+v", q)
		}
		if q.Total != q.Subtotal-q.DiscountAmount {
			t.Fatalf("total must equal subtotal minus discount")
		}
	})

	t.Run("inactive, unknown and failing codes are ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		discounts := mock_interfaces.NewMockIDiscountCodeRepository(ctrl)
		uc := NewQuoteUseCase(nil, discounts)

		gomock.InOrder(
			discounts.EXPECT().GetByCode(gomock.Any(), "OLD").Return(entities.DiscountCode{Code: "OLD", DiscountType: entities.DiscountFlat, DiscountValue: 50}, nil),
			discounts.EXPECT().GetByCode(gomock.Any(), "NOPE").Return(entities.DiscountCode{}, nil),
			discounts.EXPECT().GetByCode(gomock.Any(), "ERR").Return(entities.DiscountCode{}, errors.New("db")),
		)
		for _, code := range []string{"OLD", "NOPE", "ERR"} {
			q := uc.Quote(context.Background(), QuoteInput{Services: []string{"photography"}, DiscountCode: code})
			if q.DiscountApplied || q.Total != 250 {
				t.Fatalf("code %s: unexpected quote %+v", code, q)
			}
		}
	})
}
