package routes

import (
	"net/http"

	"appraisal_booking/internal/adapter/http/dto/response"
	"appraisal_booking/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathPing      = "/ping"
	PathAddresses = "/addresses"
	PathQuotes    = "/quotes"
	PathCalendar  = "/calendar"
	PathContact   = "/contact"
	PathBookings  = "/bookings"
	PathReviews   = "/reviews"
	PathPricing   = "/pricing"

	// Paths the existing frontend already posts to.
	PathFunctions = "/functions/v1"
)

// Rate limit buckets, one per public function.
const (
	fnPropertyLookup = "property-lookup"
	fnCalculateQuote = "calculate-quote"
	fnCalendarEvent  = "create-calendar-event"
	fnContact        = "send-contact-email"
	fnBooking        = "book-appointment"
)

// Ping godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.PingResponse
// @Router       /v1/ping [get]
func ping(c *gin.Context) {
	c.JSON(http.StatusOK, response.PingResponse{Message: "pong"})
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, ping)
}

// addFunctionRoutes mounts the calendar and contact handlers under their serverless
// function names. They share rate-limit buckets with the /v1 routes.
func addFunctionRoutes(r *gin.Engine, h *Handlers) {
	limit := func(fn string) gin.HandlerFunc { return middleware.RateLimit(h.RateLimiter, fn) }
	fns := r.Group(PathFunctions)

	if h.Calendar != nil {
		fns.POST("/"+fnCalendarEvent, limit(fnCalendarEvent), h.Calendar.CreateEvent)
	}
	if h.Contact != nil {
		fns.POST("/"+fnContact, limit(fnContact), h.Contact.Submit)
	}
}

func addPublicRoutes(rg *gin.RouterGroup, h *Handlers) {
	limit := func(fn string) gin.HandlerFunc { return middleware.RateLimit(h.RateLimiter, fn) }

	if h.Address != nil {
		rg.POST(PathAddresses+"/search", limit(fnPropertyLookup), h.Address.Search)
	}
	if h.Quote != nil {
		rg.POST(PathQuotes, limit(fnCalculateQuote), h.Quote.Quote)
	}
	if h.Calendar != nil {
		rg.POST(PathCalendar+"/events", limit(fnCalendarEvent), h.Calendar.CreateEvent)
	}
	if h.Contact != nil {
		rg.POST(PathContact, limit(fnContact), h.Contact.Submit)
	}
	if h.Booking != nil {
		rg.POST(PathBookings, limit(fnBooking), h.Booking.Book)
	}
	if h.Reviews != nil {
		rg.GET(PathReviews, h.Reviews.GetReviews)
	}
	if h.Pricing != nil {
		rg.GET(PathPricing, h.Pricing.ListPrices)
	}
}
