package routes

import (
	"context"
	"log"

	"appraisal_booking/internal/adapter/http/handlers"
	"appraisal_booking/internal/adapter/persistence/repository"
	"appraisal_booking/internal/config"
	"appraisal_booking/internal/infrastructure/calendar"
	"appraisal_booking/internal/infrastructure/database"
	"appraisal_booking/internal/infrastructure/email"
	"appraisal_booking/internal/infrastructure/export"
	"appraisal_booking/internal/infrastructure/payments"
	"appraisal_booking/internal/infrastructure/propertylookup"
	"appraisal_booking/internal/infrastructure/reviews"
	"appraisal_booking/internal/usecase"
	"appraisal_booking/internal/usecase/interfaces"
)

// Handlers is everything the router needs. Fields left nil by the caller are not routed.
type Handlers struct {
	Address        *handlers.AddressHandler
	Quote          *handlers.QuoteHandler
	Calendar       *handlers.CalendarHandler
	Contact        *handlers.ContactHandler
	Booking        *handlers.BookingHandler
	Reviews        *handlers.ReviewsHandler
	Pricing        *handlers.PricingHandler
	Job            *handlers.JobHandler
	Dashboard      *handlers.DashboardHandler
	InvoicePayment *handlers.InvoicePaymentHandler

	RateLimiter    usecase.IRateLimitUseCase
	JWTSecret      string
	AdminRole      string
	TrustedProxies []string
}

// buildHandlers connects every backing service it can reach. A missing or unreachable
// service is logged and left nil; the use cases report it per request.
func buildHandlers(ctx context.Context, cfg *config.Config) (*Handlers, func()) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var (
		jobRepo      interfaces.IJobRepository
		primaryRead  interfaces.IJobReader
		fallbackRead interfaces.IJobReader
		pricingRepo  interfaces.IServicePricingRepository
		discountRepo interfaces.IDiscountCodeRepository
		rateRepo     interfaces.IRateLimitRepository
	)
	primary, fallback, err := database.ConnectFromConfig(ctx, cfg.Database)
	if err != nil {
		log.Printf("[routes] postgres not available; jobs, pricing and rate limiting disabled err=%v", err)
	} else {
		closers = append(closers, func() { _ = primary.Close() })
		jobs := repository.NewJobPostgresRepository(primary.DB)
		jobRepo, primaryRead = jobs, jobs
		pricingRepo = repository.NewServicePricingPostgresRepository(primary.DB)
		discountRepo = repository.NewDiscountCodePostgresRepository(primary.DB)
		rateRepo = repository.NewRateLimitPostgresRepository(primary.DB)
		if fallback != nil {
			closers = append(closers, func() { _ = fallback.Close() })
			fallbackRead = repository.NewJobPostgresRepository(fallback.DB)
		}
	}

	var (
		idempotencyRepo interfaces.IIdempotencyRepository
		paymentRepo     interfaces.IInvoicePaymentRepository
	)
	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS, cfg.DynamoDB)
	if err != nil {
		log.Printf("[routes] dynamodb not available; idempotency and invoice payments disabled err=%v", err)
	} else {
		idempotencyRepo = repository.NewIdempotencyDynamoRepository(ddb, cfg.DynamoDB.IdempotencyTable)
		paymentRepo = repository.NewInvoicePaymentDynamoRepository(ddb, cfg.DynamoDB.PaymentsTable)
	}

	var lookup interfaces.IPropertyLookup
	if c, err := propertylookup.NewClient(cfg.PropertyLookup.BaseURL, cfg.PropertyLookup.APIKey, cfg.PropertyLookup.Timeout); err != nil {
		log.Printf("[routes] property lookup not configured err=%v", err)
	} else {
		lookup = c
	}

	var calendarGateway interfaces.ICalendarGateway
	gc, err := calendar.NewGoogleCalendarGateway(ctx, calendar.Config{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RefreshToken: cfg.Google.RefreshToken,
		CalendarID:   cfg.Google.CalendarID,
	})
	if err != nil {
		log.Printf("[routes] google calendar not configured err=%v", err)
	} else {
		calendarGateway = gc
	}

	var mailer interfaces.IMailer
	if m, err := email.NewResendMailer(cfg.Resend.APIKey, cfg.Resend.From, ""); err != nil {
		log.Printf("[routes] resend mailer not configured err=%v", err)
	} else {
		mailer = m
	}

	var reviewsProvider interfaces.IReviewsProvider
	if p, err := reviews.NewPlacesProvider(cfg.Google.PlacesAPIKey, cfg.Google.PlacesQuery, "", 0); err != nil {
		log.Printf("[routes] google places not configured; serving configured reviews err=%v", err)
	} else {
		reviewsProvider = p
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago.AccessToken, cfg.PaymentGateway.Mock)
	if err != nil {
		log.Printf("[routes] mercado pago gateway not configured err=%v", err)
	} else {
		paymentGateway = mpGateway
	}

	quoteUseCase := usecase.NewQuoteUseCase(pricingRepo, discountRepo)
	schedulingUseCase := usecase.NewSchedulingUseCase(calendarGateway, usecase.SchedulingOptions{
		Location:       cfg.Booking.Location(),
		Duration:       cfg.Booking.EventDuration,
		BusinessName:   cfg.Booking.BusinessName,
		OrganizerEmail: cfg.Resend.StaffEmail,
	})
	notificationUseCase := usecase.NewNotificationUseCase(mailer, usecase.NotificationOptions{
		BusinessName: cfg.Booking.BusinessName,
		StaffEmail:   cfg.Resend.StaffEmail,
	})

	addressUseCase := usecase.NewAddressUseCase(lookup, usecase.NewDebouncer(cfg.PropertyLookup.Debounce))
	contactUseCase := usecase.NewContactUseCase(quoteUseCase, schedulingUseCase, notificationUseCase, jobRepo)
	bookingUseCase := usecase.NewBookingUseCase(quoteUseCase, schedulingUseCase, notificationUseCase, jobRepo, idempotencyRepo,
		usecase.BookingOptions{IdempotencyTTL: cfg.Booking.IdempotencyTTL})
	reviewsUseCase := usecase.NewReviewsUseCase(reviewsProvider, cfg.Reviews.Fallback, cfg.Reviews.CacheTTL)
	pricingUseCase := usecase.NewPricingAdminUseCase(quoteUseCase, pricingRepo, discountRepo)
	jobUseCase := usecase.NewJobUseCase(jobRepo, export.NewXLSXExporter())
	dashboardUseCase := usecase.NewDashboardUseCase(primaryRead, fallbackRead)
	invoicePaymentUseCase := usecase.NewInvoicePaymentUseCase(paymentRepo, jobRepo, paymentGateway, usecase.InvoicePaymentOptions{
		Mock:            cfg.PaymentGateway.Mock,
		AccessToken:     cfg.MercadoPago.AccessToken,
		TestPayerEmail:  cfg.MercadoPago.TestPayerEmail,
		TestPayerUserID: cfg.MercadoPago.TestPayerUserID,
	})

	var limiter usecase.IRateLimitUseCase
	if rateRepo != nil {
		limiter = usecase.NewRateLimitUseCase(rateRepo, cfg.RateLimit.Window, cfg.RateLimit.MaxRequests)
	}

	return &Handlers{
		Address:        handlers.NewAddressHandler(addressUseCase),
		Quote:          handlers.NewQuoteHandler(quoteUseCase),
		Calendar:       handlers.NewCalendarHandler(schedulingUseCase),
		Contact:        handlers.NewContactHandler(contactUseCase),
		Booking:        handlers.NewBookingHandler(bookingUseCase),
		Reviews:        handlers.NewReviewsHandler(reviewsUseCase),
		Pricing:        handlers.NewPricingHandler(pricingUseCase),
		Job:            handlers.NewJobHandler(jobUseCase),
		Dashboard:      handlers.NewDashboardHandler(dashboardUseCase),
		InvoicePayment: handlers.NewInvoicePaymentHandler(invoicePaymentUseCase),
		RateLimiter:    limiter,
		JWTSecret:      cfg.Auth.JWTSecret,
		AdminRole:      cfg.Auth.AdminRole,
		TrustedProxies: cfg.Server.TrustedProxies,
	}, cleanup
}
