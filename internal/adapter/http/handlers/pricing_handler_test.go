package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"appraisal_booking/internal/adapter/http/handlers/mocks"
	"appraisal_booking/internal/domain/entities"
	"appraisal_booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPricingRouter(uc usecase.IPricingAdminUseCase) *gin.Engine {
	h := NewPricingHandler(uc)
	r := gin.New()
	r.GET("/v1/pricing", h.ListPrices)
	r.PUT("/v1/admin/pricing", h.UpsertPrice)
	r.GET("/v1/admin/discount-codes", h.ListDiscountCodes)
	r.POST("/v1/admin/discount-codes", h.CreateDiscountCode)
	r.PATCH("/v1/admin/discount-codes/:code/deactivate", h.DeactivateDiscountCode)
	return r
}

func TestPricingHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("public table", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPricingAdminUseCase(ctrl)
		uc.EXPECT().ListPrices(gomock.Any()).Return([]entities.ServicePrice{{ServiceID: "photography", TierName: "base", Price: 250}})

		w := httptest.NewRecorder()
		newPricingRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/pricing", nil))
		expectStatus(t, w, http.StatusOK)
	})

	t.Run("upsert requires a price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPricingAdminUseCase(ctrl)

		w := doJSON(newPricingRouter(uc), http.MethodPut, "/v1/admin/pricing", `{"service_id":"appraisal","tier_name":"up_to_2000"}`)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("upsert zero price is allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPricingAdminUseCase(ctrl)
		uc.EXPECT().UpsertPrice(gomock.Any(), entities.ServicePrice{ServiceID: "floor_plans", TierName: "base", Price: 0}).
			Return(entities.ServicePrice{ID: 3, ServiceID: "floor_plans", TierName: "base"}, nil)

		w := doJSON(newPricingRouter(uc), http.MethodPut, "/v1/admin/pricing", `{"service_id":"floor_plans","tier_name":"base","price":0}`)
		expectStatus(t, w, http.StatusOK)
	})

	t.Run("invalid tier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPricingAdminUseCase(ctrl)
		uc.EXPECT().UpsertPrice(gomock.Any(), gomock.Any()).Return(entities.ServicePrice{}, usecase.ErrInvalidPricingTier)

		w := doJSON(newPricingRouter(uc), http.MethodPut, "/v1/admin/pricing", `{"service_id":"appraisal","tier_name":"base","price":10}`)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("duplicate discount code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPricingAdminUseCase(ctrl)
		uc.EXPECT().CreateDiscountCode(gomock.Any(), entities.DiscountCode{Code: "SAVE10", DiscountType: entities.DiscountPercentage, DiscountValue: 10, Active: true}).
			Return(entities.DiscountCode{}, usecase.ErrDiscountCodeExists)

		w := doJSON(newPricingRouter(uc), http.MethodPost, "/v1/admin/discount-codes", `{"code":"SAVE10","discount_type":"Percentage","discount_value":10}`)
		expectStatus(t, w, http.StatusConflict)
	})

	t.Run("deactivate unknown code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPricingAdminUseCase(ctrl)
		uc.EXPECT().DeactivateDiscountCode(gomock.Any(), "NOPE").Return(entities.DiscountCode{}, usecase.ErrDiscountCodeNotFound)

		w := doJSON(newPricingRouter(uc), http.MethodPatch, "/v1/admin/discount-codes/NOPE/deactivate", "")
		expectStatus(t, w, http.StatusNotFound)
	})

	t.Run("store not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPricingAdminUseCase(ctrl)
		uc.EXPECT().ListDiscountCodes(gomock.Any()).Return(nil, usecase.ErrPricingNotConfigured)

		w := httptest.NewRecorder()
		newPricingRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/admin/discount-codes", nil))
		expectStatus(t, w, http.StatusServiceUnavailable)
	})
}
