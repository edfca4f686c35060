package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	request "appraisal_booking/internal/adapter/http/dto/request"
	response "appraisal_booking/internal/adapter/http/dto/response"
	"appraisal_booking/internal/usecase"
	"appraisal_booking/pkg"

	"github.com/gin-gonic/gin"
)

// JobHandler backs the admin jobs screens.
type JobHandler struct {
	usecase usecase.IJobUseCase
}

func NewJobHandler(uc usecase.IJobUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

func (h *JobHandler) ListJobs(c *gin.Context) {
	q, ok := listQuery(c)
	if !ok {
		return
	}
	jobs, err := h.usecase.List(c.Request.Context(), q)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJobs(jobs, q.Limit, q.Offset))
}

func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	var payload request.JobCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_JOB", "Invalid job payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateStatus accepts any status value; staff correct mistakes by moving jobs backwards.
func (h *JobHandler) UpdateStatus(c *gin.Context) {
	var payload request.JobStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_JOB_STATUS", "Invalid job status", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), payload.Status)
	if err != nil {
		log.Printf("[job][handler] update status failed job_id=%s status=%s err=%v", c.Param("id"), payload.Status, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *JobHandler) UpdateAmounts(c *gin.Context) {
	var payload request.JobAmountsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Invalid amount", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateAmounts(c.Request.Context(), c.Param("id"), payload.QuotedAmount, payload.FinalAmount)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ExportJobs streams the filtered listing as a spreadsheet download.
func (h *JobHandler) ExportJobs(c *gin.Context) {
	q, ok := listQuery(c)
	if !ok {
		return
	}
	export, err := h.usecase.Export(c.Request.Context(), q)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+export.Filename+`"`)
	c.Data(http.StatusOK, export.ContentType, export.Body)
}

func listQuery(c *gin.Context) (usecase.JobListQuery, bool) {
	q := usecase.JobListQuery{Status: c.Query("status"), ServiceType: c.Query("service_type")}
	for _, p := range []struct {
		name string
		dst  *int
	}{{"limit", &q.Limit}, {"offset", &q.Offset}} {
		raw := c.Query(p.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid "+p.name, http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return usecase.JobListQuery{}, false
		}
		*p.dst = n
	}
	return q, true
}

func mapJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID):
		return pkg.NewDomainErrorSimple("INVALID_JOB_ID", "Invalid job id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidJobStatus):
		return pkg.NewDomainErrorSimple("INVALID_JOB_STATUS", "Invalid job status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidJobService):
		return pkg.NewDomainErrorSimple("INVALID_SERVICE_TYPE", "Invalid service type", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Invalid amount", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidJob):
		return pkg.NewDomainErrorSimple("INVALID_JOB", "Client name and property address are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrExportUnavailable):
		return pkg.NewDomainError("EXPORT_UNAVAILABLE", "Export is not configured", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
