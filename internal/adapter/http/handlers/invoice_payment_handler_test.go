package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	response "appraisal_booking/internal/adapter/http/dto/response"
	"appraisal_booking/internal/adapter/http/handlers/mocks"
	"appraisal_booking/internal/domain/entities"
	"appraisal_booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func newInvoiceRouter(uc usecase.IInvoicePaymentUseCase) *gin.Engine {
	h := NewInvoicePaymentHandler(uc)
	r := gin.New()
	r.POST("/v1/admin/jobs/:id/payments", h.CreatePaymentForJob)
	r.GET("/v1/admin/jobs/:id/payments", h.ListPaymentsForJob)
	r.GET("/v1/admin/jobs/:id/payments/latest", h.GetLatestPaymentForJob)
	r.GET("/v1/admin/payments/:payment_id", h.GetPayment)
	return r
}

func TestInvoicePaymentHandler_CreatePaymentForJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("envelope is unwrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
		uc.EXPECT().CreateForJob(gomock.Any(), "job-1", gomock.Any()).DoAndReturn(func(_ any, _ string, payload json.RawMessage) (entities.InvoicePayment, error) {
			if string(payload) != `{"payment_method_id":"pix"}` {
				t.Errorf("unexpected payload %s", payload)
			}
			return entities.InvoicePayment{ID: "pay-1", JobID: "job-1", Status: entities.PaymentStatusApproved, Amount: 525}, nil
		})

		w := doJSON(newInvoiceRouter(uc), http.MethodPost, "/v1/admin/jobs/job-1/payments", `{"mp_payload":{"payment_method_id":"pix"}}`)
		expectStatus(t, w, http.StatusOK)
		var res response.InvoicePaymentResponse
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res.PaymentID != "pay-1" || res.Status != "approved" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("invalid json reaches the usecase as empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
		uc.EXPECT().CreateForJob(gomock.Any(), "job-1", gomock.Nil()).Return(entities.InvoicePayment{}, usecase.ErrInvalidMPPayload)

		w := doJSON(newInvoiceRouter(uc), http.MethodPost, "/v1/admin/jobs/job-1/payments", "{")
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("unreadable body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
		uc.EXPECT().CreateForJob(gomock.Any(), "job-1", gomock.Nil()).Return(entities.InvoicePayment{}, usecase.ErrInvalidMPPayload)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/jobs/job-1/payments", nil)
		req.Body = failingReadCloser{}
		w := httptest.NewRecorder()
		newInvoiceRouter(uc).ServeHTTP(w, req)
		expectStatus(t, w, http.StatusBadRequest)
	})

	cases := []struct {
		err  error
		want int
	}{
		{usecase.ErrJobNotBillable, http.StatusConflict},
		{usecase.ErrJobNotFound, http.StatusNotFound},
		{usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized},
		{usecase.ErrPaymentGatewayCustomerNotFound, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayNotConfigured, http.StatusServiceUnavailable},
		{errors.New("dynamo down"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
			uc.EXPECT().CreateForJob(gomock.Any(), "job-1", gomock.Any()).Return(entities.InvoicePayment{}, tc.err)

			req := httptest.NewRequest(http.MethodPost, "/v1/admin/jobs/job-1/payments", bytes.NewBufferString(`{"payment_method_id":"pix"}`))
			w := httptest.NewRecorder()
			newInvoiceRouter(uc).ServeHTTP(w, req)
			expectStatus(t, w, tc.want)
		})
	}
}

func TestInvoicePaymentHandler_Reads(t *testing.T) {
	gin.SetMode(gin.TestMode)
	older := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(24 * time.Hour)

	t.Run("latest picks the newest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
		uc.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.InvoicePayment{
			{ID: "p-old", Date: older, Status: entities.PaymentStatusRejected},
			{ID: "p-new", Date: newer, Status: entities.PaymentStatusApproved},
		}, nil)

		w := httptest.NewRecorder()
		newInvoiceRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/admin/jobs/job-1/payments/latest", nil))
		expectStatus(t, w, http.StatusOK)
		var res response.InvoicePaymentResponse
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res.PaymentID != "p-new" {
			t.Fatalf("expected newest payment, got %s", res.PaymentID)
		}
	})

	t.Run("latest without payments is 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
		uc.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.InvoicePayment{}, nil)

		w := httptest.NewRecorder()
		newInvoiceRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/admin/jobs/job-1/payments/latest", nil))
		expectStatus(t, w, http.StatusNotFound)
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
		uc.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.InvoicePayment{{ID: "p-new"}, {ID: "p-old"}}, nil)

		w := httptest.NewRecorder()
		newInvoiceRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/admin/jobs/job-1/payments", nil))
		expectStatus(t, w, http.StatusOK)
		var res []response.InvoicePaymentResponse
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if len(res) != 2 || res[0].PaymentID != "p-new" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("get by id not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
		uc.EXPECT().GetByID(gomock.Any(), "pay-x").Return(entities.InvoicePayment{}, usecase.ErrInvoicePaymentNotFound)

		w := httptest.NewRecorder()
		newInvoiceRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/admin/payments/pay-x", nil))
		expectStatus(t, w, http.StatusNotFound)
	})
}
