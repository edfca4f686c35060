package handlers

import (
	"net/http"
	"strings"

	request "appraisal_booking/internal/adapter/http/dto/request"
	"appraisal_booking/internal/usecase"
	"appraisal_booking/pkg"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// Quote prices the selected services. Square footage falls back to the county record.
//
// @Summary  Price a selection of services
// @Tags     public
// @Accept   json
// @Produce  json
// @Param    body body request.QuoteRequest true "services"
// @Success  200 {object} pricing.Quote
// @Failure  400 {object} pkg.HTTPError
// @Router   /v1/quotes [post]
func (h *QuoteHandler) Quote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil || len(payload.Services) == 0 {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "At least one service is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	sqft := payload.SquareFootage
	if sqft <= 0 {
		if p, err := request.DecodeProperty(payload.PropertyData); err == nil && p != nil {
			sqft = p.CountyData.SquareFootage
		}
	}

	q := h.usecase.Quote(c.Request.Context(), usecase.QuoteInput{
		Services:      payload.Services,
		SquareFootage: sqft,
		DiscountCode:  strings.TrimSpace(payload.DiscountCode),
	})
	c.JSON(http.StatusOK, q)
}
