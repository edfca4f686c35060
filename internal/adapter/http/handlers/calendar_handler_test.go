package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"appraisal_booking/internal/adapter/http/handlers/mocks"
	"appraisal_booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCalendarHandler_CreateEvent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.ISchedulingUseCase) *gin.Engine {
		r := gin.New()
		r.POST("/v1/calendar/events", NewCalendarHandler(uc).CreateEvent)
		return r
	}

	t.Run("success returns the event id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISchedulingUseCase(ctrl)
		start := time.Date(2026, 3, 14, 14, 0, 0, 0, time.UTC)
		uc.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, req usecase.ScheduleRequest) (usecase.ScheduledEvent, error) {
			if req.Address != "12 Main St" || len(req.ServiceNames) != 1 || req.ServiceNames[0] != "Appraisal Report" {
				t.Errorf("unexpected request %+v", req)
			}
			return usecase.ScheduledEvent{EventID: "evt-1", Start: start, End: start.Add(30 * time.Minute)}, nil
		})

		w := doJSON(newRouter(uc), http.MethodPost, "/v1/calendar/events",
			`{"formData":{"firstName":"Ana","email":"ana@example.com","address":"12 Main St","services":["appraisal"],"date":"2026-03-14","time":"10:00 AM"}}`)
		expectStatus(t, w, http.StatusOK)
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["eventId"] != "evt-1" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("missing schedule field is 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISchedulingUseCase(ctrl)
		uc.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).Return(usecase.ScheduledEvent{}, usecase.ErrMissingScheduleField)

		w := doJSON(newRouter(uc), http.MethodPost, "/v1/calendar/events", `{"formData":{"date":"2026-03-14"}}`)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("auth failure is 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISchedulingUseCase(ctrl)
		uc.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).Return(usecase.ScheduledEvent{}, usecase.ErrCalendarAuth)

		w := doJSON(newRouter(uc), http.MethodPost, "/v1/calendar/events", `{"formData":{"date":"2026-03-14","time":"10:00 AM","address":"x"}}`)
		expectStatus(t, w, http.StatusInternalServerError)
		if errorCode(t, w) != "CALENDAR_AUTH_FAILED" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}
