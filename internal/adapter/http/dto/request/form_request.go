package request

import (
	"encoding/json"
	"strings"

	"appraisal_booking/internal/domain/entities"
)

// FormData is the quote form as the site submits it. The calendar, contact and booking
// endpoints all accept it.
type FormData struct {
	FirstName      string   `json:"firstName"`
	LastName       string   `json:"lastName"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Address        string   `json:"address"`
	Services       []string `json:"services"`
	SquareFootage  int      `json:"squareFootage"`
	DiscountCode   string   `json:"discountCode"`
	Date           string   `json:"date"`
	Time           string   `json:"time"`
	Notes          string   `json:"notes"`
	ReferralSource string   `json:"referralSource"`
}

func (f FormData) Client() entities.ClientInfo {
	return entities.ClientInfo{
		FirstName: strings.TrimSpace(f.FirstName),
		LastName:  strings.TrimSpace(f.LastName),
		Email:     strings.TrimSpace(f.Email),
		Phone:     strings.TrimSpace(f.Phone),
	}
}

func (f FormData) Schedule() entities.Schedule {
	return entities.Schedule{Date: strings.TrimSpace(f.Date), Time: strings.TrimSpace(f.Time)}
}

// ResolveAddress prefers the typed address and falls back to the selected property record.
func (f FormData) ResolveAddress(p *entities.PropertyRecord) string {
	if v := strings.TrimSpace(f.Address); v != "" {
		return v
	}
	if p != nil {
		return p.FullAddress()
	}
	return ""
}

// DecodeProperty reads the selected property record. The raw payload is kept as-is for
// storage since the lookup service adds fields over time.
func DecodeProperty(raw json.RawMessage) (*entities.PropertyRecord, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return nil, nil
	}
	var p entities.PropertyRecord
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
