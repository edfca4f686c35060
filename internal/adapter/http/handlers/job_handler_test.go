package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	response "appraisal_booking/internal/adapter/http/dto/response"
	"appraisal_booking/internal/adapter/http/handlers/mocks"
	"appraisal_booking/internal/domain/entities"
	"appraisal_booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const jobID = "6f1c2b9e-8d4a-4f7e-9a51-0c3b2d1e4f5a"

func newJobRouter(uc usecase.IJobUseCase) *gin.Engine {
	h := NewJobHandler(uc)
	r := gin.New()
	r.GET("/v1/admin/jobs", h.ListJobs)
	r.GET("/v1/admin/jobs/export", h.ExportJobs)
	r.GET("/v1/admin/jobs/:id", h.GetJob)
	r.POST("/v1/admin/jobs", h.CreateJob)
	r.PATCH("/v1/admin/jobs/:id/status", h.UpdateStatus)
	r.PATCH("/v1/admin/jobs/:id/amounts", h.UpdateAmounts)
	return r
}

func TestJobHandler_ListJobs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("filters are passed through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIJobUseCase(ctrl)
		uc.EXPECT().List(gomock.Any(), usecase.JobListQuery{Status: "completed", ServiceType: "appraisal", Limit: 20, Offset: 40}).
			Return([]entities.Job{{ID: jobID}}, nil)

		w := httptest.NewRecorder()
		newJobRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/admin/jobs?status=completed&service_type=appraisal&limit=20&offset=40", nil))
		expectStatus(t, w, http.StatusOK)

		var res response.JobListResponse
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res.Count != 1 || res.Limit != 20 || res.Offset != 40 {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("bad limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIJobUseCase(ctrl)

		w := httptest.NewRecorder()
		newJobRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/admin/jobs?limit=abc", nil))
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("unknown status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIJobUseCase(ctrl)
		uc.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrInvalidJobStatus)

		w := httptest.NewRecorder()
		newJobRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/admin/jobs?status=done", nil))
		expectStatus(t, w, http.StatusBadRequest)
	})
}

func TestJobHandler_GetJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIJobUseCase(ctrl)
		uc.EXPECT().GetByID(gomock.Any(), jobID).Return(entities.Job{}, usecase.ErrJobNotFound)

		w := httptest.NewRecorder()
		newJobRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/admin/jobs/"+jobID, nil))
		expectStatus(t, w, http.StatusNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIJobUseCase(ctrl)
		uc.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.Job{}, usecase.ErrInvalidJobID)

		w := httptest.NewRecorder()
		newJobRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/admin/jobs/nope", nil))
		expectStatus(t, w, http.StatusBadRequest)
	})
}

func TestJobHandler_Mutations(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIJobUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, j entities.Job) (entities.Job, error) {
			if j.ServiceType != entities.ServicePhotography || j.ClientName != "Ana" {
				t.Errorf("unexpected job %+v", j)
			}
			j.ID = jobID
			return j, nil
		})

		w := doJSON(newJobRouter(uc), http.MethodPost, "/v1/admin/jobs",
			`{"client_name":"Ana","property_address":"12 Main St","service_type":"photography","quoted_amount":250}`)
		expectStatus(t, w, http.StatusCreated)
	})

	t.Run("create missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIJobUseCase(ctrl)

		w := doJSON(newJobRouter(uc), http.MethodPost, "/v1/admin/jobs", `{"client_name":"Ana"}`)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("status update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIJobUseCase(ctrl)
		uc.EXPECT().UpdateStatus(gomock.Any(), jobID, "completed").Return(entities.Job{ID: jobID, Status: entities.JobStatusCompleted}, nil)

		w := doJSON(newJobRouter(uc), http.MethodPatch, "/v1/admin/jobs/"+jobID+"/status", `{"status":"completed"}`)
		expectStatus(t, w, http.StatusOK)
	})

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIJobUseCase(ctrl)
		uc.EXPECT().UpdateStatus(gomock.Any(), jobID, "done").Return(entities.Job{}, usecase.ErrInvalidJobStatus)

		w := doJSON(newJobRouter(uc), http.MethodPatch, "/v1/admin/jobs/"+jobID+"/status", `{"status":"done"}`)
		expectStatus(t, w, http.StatusBadRequest)
		if errorCode(t, w) != "INVALID_JOB_STATUS" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("amounts update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIJobUseCase(ctrl)
		uc.EXPECT().UpdateAmounts(gomock.Any(), jobID, gomock.Nil(), gomock.Any()).
			DoAndReturn(func(_ any, _ string, _ *float64, final *float64) (entities.Job, error) {
				if final == nil || *final != 540 {
					t.Errorf("unexpected final amount %v", final)
				}
				return entities.Job{ID: jobID, FinalAmount: final}, nil
			})

		w := doJSON(newJobRouter(uc), http.MethodPatch, "/v1/admin/jobs/"+jobID+"/amounts", `{"final_amount":540}`)
		expectStatus(t, w, http.StatusOK)
	})
}

func TestJobHandler_ExportJobs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("download", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIJobUseCase(ctrl)
		uc.EXPECT().Export(gomock.Any(), usecase.JobListQuery{}).
			Return(usecase.JobExport{Filename: "jobs-20260314.xlsx", ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", Body: []byte("PK")}, nil)

		w := httptest.NewRecorder()
		newJobRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/admin/jobs/export", nil))
		expectStatus(t, w, http.StatusOK)
		if w.Header().Get("Content-Disposition") != `attachment; filename="jobs-20260314.xlsx"` || w.Body.String() != "PK" {
			t.Fatalf("unexpected download headers=%v body=%q", w.Header(), w.Body.String())
		}
	})

	t.Run("exporter missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIJobUseCase(ctrl)
		uc.EXPECT().Export(gomock.Any(), gomock.Any()).Return(usecase.JobExport{}, usecase.ErrExportUnavailable)

		w := httptest.NewRecorder()
		newJobRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/admin/jobs/export", nil))
		expectStatus(t, w, http.StatusServiceUnavailable)
	})
}
