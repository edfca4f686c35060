package handlers

import (
	"net/http"

	"appraisal_booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReviewsHandler struct {
	usecase usecase.IReviewsUseCase
}

func NewReviewsHandler(uc usecase.IReviewsUseCase) *ReviewsHandler {
	return &ReviewsHandler{usecase: uc}
}

// GetReviews always answers 200. Check source to tell live reviews from the fallback list.
//
// @Summary  Google rating and latest reviews
// @Tags     public
// @Produce  json
// @Success  200 {object} entities.ReviewSummary
// @Router   /v1/reviews [get]
func (h *ReviewsHandler) GetReviews(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Reviews(c.Request.Context()))
}
