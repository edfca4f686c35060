package handlers

import (
	"errors"
	"log"
	"net/http"

	request "appraisal_booking/internal/adapter/http/dto/request"
	response "appraisal_booking/internal/adapter/http/dto/response"
	"appraisal_booking/internal/usecase"
	"appraisal_booking/pkg"

	"github.com/gin-gonic/gin"
)

// PricingHandler serves the public price table and the admin pricing screens.
type PricingHandler struct {
	usecase usecase.IPricingAdminUseCase
}

func NewPricingHandler(uc usecase.IPricingAdminUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc}
}

// ListPrices
//
// @Summary  Effective price table
// @Tags     public
// @Produce  json
// @Success  200 {object} response.PriceTableResponse
// @Router   /v1/pricing [get]
func (h *PricingHandler) ListPrices(c *gin.Context) {
	c.JSON(http.StatusOK, response.PriceTableResponse{Prices: h.usecase.ListPrices(c.Request.Context())})
}

func (h *PricingHandler) UpsertPrice(c *gin.Context) {
	var payload request.ServicePriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	saved, err := h.usecase.UpsertPrice(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[pricing][handler] upsert failed service=%s tier=%s err=%v", payload.ServiceID, payload.TierName, err)
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *PricingHandler) ListDiscountCodes(c *gin.Context) {
	codes, err := h.usecase.ListDiscountCodes(c.Request.Context())
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, codes)
}

func (h *PricingHandler) CreateDiscountCode(c *gin.Context) {
	var payload request.DiscountCodeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateDiscountCode(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[pricing][handler] create discount failed code=%s err=%v", payload.Code, err)
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *PricingHandler) DeactivateDiscountCode(c *gin.Context) {
	updated, err := h.usecase.DeactivateDiscountCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, updated)
}

func mapPricingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnknownService), errors.Is(err, usecase.ErrInvalidPricingTier), errors.Is(err, usecase.ErrInvalidPrice):
		return pkg.NewDomainErrorSimple("INVALID_PRICE", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDiscountCode):
		return pkg.NewDomainErrorSimple("INVALID_DISCOUNT_CODE", "Invalid discount code", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDiscountCodeExists):
		return pkg.NewDomainErrorSimple("DISCOUNT_CODE_EXISTS", "Discount code already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrDiscountCodeNotFound):
		return pkg.NewDomainErrorSimple("DISCOUNT_CODE_NOT_FOUND", "Discount code not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPricingNotConfigured):
		return pkg.NewDomainError("PRICING_NOT_CONFIGURED", "Pricing store is not configured", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
