package handlers

import (
	"net/http"
	"strings"

	request "appraisal_booking/internal/adapter/http/dto/request"
	"appraisal_booking/internal/usecase"
	"appraisal_booking/pkg"

	"github.com/gin-gonic/gin"
)

const headerSessionID = "X-Session-ID"

// AddressHandler proxies the property-records lookup for the quote form autocomplete.
type AddressHandler struct {
	usecase usecase.IAddressUseCase
}

func NewAddressHandler(uc usecase.IAddressUseCase) *AddressHandler {
	return &AddressHandler{usecase: uc}
}

// Search answers 200 even when the lookup fails; the body carries the error flag.
//
// @Summary  Search property records by address fragment
// @Tags     public
// @Accept   json
// @Produce  json
// @Param    body body request.AddressSearchRequest true "query"
// @Success  200 {object} usecase.AddressSearchResult
// @Router   /v1/addresses/search [post]
func (h *AddressHandler) Search(c *gin.Context) {
	var payload request.AddressSearchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, h.usecase.Search(c.Request.Context(), sessionKey(c, payload.SessionID), payload.Query))
}

// sessionKey scopes debouncing to one browser tab. Callers that send no session id get
// an empty key and are not debounced; several users can share one address.
func sessionKey(c *gin.Context, bodyID string) string {
	if v := strings.TrimSpace(c.GetHeader(headerSessionID)); v != "" {
		return v
	}
	return strings.TrimSpace(bodyID)
}
