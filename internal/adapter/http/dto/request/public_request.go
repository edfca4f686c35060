package request

import (
	"encoding/json"
	"strings"

	"appraisal_booking/internal/usecase"
)

type AddressSearchRequest struct {
	Query     string `json:"query"`
	SessionID string `json:"sessionId"`
}

type QuoteRequest struct {
	Services      []string        `json:"services" binding:"required"`
	SquareFootage int             `json:"squareFootage"`
	DiscountCode  string          `json:"discountCode"`
	PropertyData  json.RawMessage `json:"propertyData" swaggertype:"object"`
}

type CalendarEventRequest struct {
	FormData     FormData        `json:"formData"`
	PropertyData json.RawMessage `json:"propertyData" swaggertype:"object"`
}

type ServiceRequestData struct {
	FormData     FormData        `json:"formData"`
	PropertyData json.RawMessage `json:"propertyData" swaggertype:"object"`
}

type ContactRequest struct {
	FirstName          string              `json:"firstName"`
	LastName           string              `json:"lastName"`
	Email              string              `json:"email"`
	Phone              string              `json:"phone"`
	Message            string              `json:"message"`
	IsServiceRequest   bool                `json:"isServiceRequest"`
	ServiceRequestData *ServiceRequestData `json:"serviceRequestData"`
}

func (r ContactRequest) ToInput() (usecase.ContactInput, error) {
	in := usecase.ContactInput{
		Client:           FormData{FirstName: r.FirstName, LastName: r.LastName, Email: r.Email, Phone: r.Phone}.Client(),
		Message:          strings.TrimSpace(r.Message),
		IsServiceRequest: r.IsServiceRequest,
	}
	if r.ServiceRequestData == nil {
		return in, nil
	}

	f := r.ServiceRequestData.FormData
	property, err := DecodeProperty(r.ServiceRequestData.PropertyData)
	if err != nil {
		return usecase.ContactInput{}, err
	}
	in.ServiceRequest = &usecase.ServiceRequestData{
		Services:       f.Services,
		SquareFootage:  f.SquareFootage,
		DiscountCode:   strings.TrimSpace(f.DiscountCode),
		Property:       property,
		Address:        f.ResolveAddress(property),
		Schedule:       f.Schedule(),
		ReferralSource: strings.TrimSpace(f.ReferralSource),
	}
	if property != nil {
		in.ServiceRequest.PropertyData = r.ServiceRequestData.PropertyData
	}
	return in, nil
}

// BookingRequest may carry the idempotency key in the body when the client cannot set
// headers; the Idempotency-Key header wins.
type BookingRequest struct {
	IdempotencyKey string          `json:"idempotencyKey"`
	FormData       FormData        `json:"formData"`
	PropertyData   json.RawMessage `json:"propertyData" swaggertype:"object"`
}

func (r BookingRequest) ToInput(headerKey string) (usecase.BookingInput, error) {
	property, err := DecodeProperty(r.PropertyData)
	if err != nil {
		return usecase.BookingInput{}, err
	}
	key := strings.TrimSpace(headerKey)
	if key == "" {
		key = strings.TrimSpace(r.IdempotencyKey)
	}
	f := r.FormData
	in := usecase.BookingInput{
		IdempotencyKey: key,
		Client:         f.Client(),
		Services:       f.Services,
		SquareFootage:  f.SquareFootage,
		DiscountCode:   strings.TrimSpace(f.DiscountCode),
		Property:       property,
		Address:        f.ResolveAddress(property),
		Schedule:       f.Schedule(),
		ReferralSource: strings.TrimSpace(f.ReferralSource),
		Notes:          strings.TrimSpace(f.Notes),
	}
	if property != nil {
		in.PropertyData = r.PropertyData
	}
	return in, nil
}
