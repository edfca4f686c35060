package handlers

import (
	"net/http"
	"testing"

	"appraisal_booking/internal/adapter/http/handlers/mocks"
	"appraisal_booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestContactHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IContactUseCase) *gin.Engine {
		r := gin.New()
		r.POST("/v1/contact", NewContactHandler(uc).Submit)
		return r
	}

	t.Run("plain contact", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIContactUseCase(ctrl)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.ContactInput) (usecase.ContactResult, error) {
			if in.IsServiceRequest || in.ServiceRequest != nil || in.Message != "Hello" || in.Client.Email != "ana@example.com" {
				t.Errorf("unexpected input %+v", in)
			}
			return usecase.ContactResult{Receipt: usecase.DeliveryReceipt{CustomerMessageID: "m1", StaffMessageID: "m2"}}, nil
		})

		w := doJSON(newRouter(uc), http.MethodPost, "/v1/contact",
			`{"firstName":"Ana","lastName":"Diaz","email":"ana@example.com","message":" Hello "}`)
		expectStatus(t, w, http.StatusOK)
	})

	t.Run("service request carries form and property", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIContactUseCase(ctrl)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.ContactInput) (usecase.ContactResult, error) {
			sr := in.ServiceRequest
			if !in.IsServiceRequest || sr == nil {
				t.Fatalf("expected service request, got %+v", in)
			}
			if sr.DiscountCode != "SAVE10" || sr.Schedule.Date != "2026-03-14" || sr.Property == nil || sr.Address != "12 Main St" {
				t.Errorf("unexpected service request %+v", sr)
			}
			return usecase.ContactResult{}, nil
		})

		w := doJSON(newRouter(uc), http.MethodPost, "/v1/contact", `{"firstName":"Ana","email":"ana@example.com","isServiceRequest":true,
			"serviceRequestData":{"formData":{"services":["appraisal"],"discountCode":" SAVE10 ","date":"2026-03-14","time":"10:00 AM"},
			"propertyData":{"address":"12 Main St"}}}`)
		expectStatus(t, w, http.StatusOK)
	})

	t.Run("invalid property data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIContactUseCase(ctrl)

		w := doJSON(newRouter(uc), http.MethodPost, "/v1/contact",
			`{"firstName":"Ana","email":"ana@example.com","serviceRequestData":{"propertyData":"oops"}}`)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("missing contact fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIContactUseCase(ctrl)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(usecase.ContactResult{}, usecase.ErrInvalidContact)

		w := doJSON(newRouter(uc), http.MethodPost, "/v1/contact", `{"message":"hi"}`)
		expectStatus(t, w, http.StatusBadRequest)
		if errorCode(t, w) != "INVALID_CONTACT" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("delivery failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIContactUseCase(ctrl)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(usecase.ContactResult{}, usecase.ErrEmailDelivery)

		w := doJSON(newRouter(uc), http.MethodPost, "/v1/contact", `{"firstName":"Ana","email":"ana@example.com"}`)
		expectStatus(t, w, http.StatusInternalServerError)
	})
}
