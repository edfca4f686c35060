package routes

import (
	"appraisal_booking/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathAdmin         = "/admin"
	PathJobs          = "/jobs"
	PathPayments      = "/payments"
	PathDashboard     = "/dashboard"
	PathDiscountCodes = "/discount-codes"
)

// addAdminRoutes mounts the back-office API behind the admin JWT check.
func addAdminRoutes(rg *gin.RouterGroup, h *Handlers) {
	admin := rg.Group(PathAdmin, middleware.AdminAuth(h.JWTSecret, h.AdminRole))

	jobs := admin.Group(PathJobs)
	if h.Job != nil {
		jobs.GET("", h.Job.ListJobs)
		jobs.GET("/export", h.Job.ExportJobs)
		jobs.GET("/:id", h.Job.GetJob)
		jobs.POST("", h.Job.CreateJob)
		jobs.PATCH("/:id/status", h.Job.UpdateStatus)
		jobs.PATCH("/:id/amounts", h.Job.UpdateAmounts)
	}
	if h.InvoicePayment != nil {
		jobs.POST("/:id"+PathPayments, h.InvoicePayment.CreatePaymentForJob)
		jobs.GET("/:id"+PathPayments, h.InvoicePayment.ListPaymentsForJob)
		jobs.GET("/:id"+PathPayments+"/latest", h.InvoicePayment.GetLatestPaymentForJob)
		admin.GET(PathPayments+"/:payment_id", h.InvoicePayment.GetPayment)
	}

	if h.Dashboard != nil {
		admin.GET(PathDashboard, h.Dashboard.GetMetrics)
	}

	if h.Pricing != nil {
		admin.PUT("/pricing", h.Pricing.UpsertPrice)
		codes := admin.Group(PathDiscountCodes)
		codes.GET("", h.Pricing.ListDiscountCodes)
		codes.POST("", h.Pricing.CreateDiscountCode)
		codes.PATCH("/:code/deactivate", h.Pricing.DeactivateDiscountCode)
	}
}
