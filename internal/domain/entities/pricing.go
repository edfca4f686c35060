package entities

import "time"

// ServicePrice is one row of the service_pricing table.
type ServicePrice struct {
	ID        int64   `json:"id" db:"id"`
	ServiceID string  `json:"service_id" db:"service_id"`
	TierName  string  `json:"tier_name" db:"tier_name"`
	Price     float64 `json:"price" db:"price"`
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFlat       DiscountType = "flat"
)

// DiscountCode has no expiry; Active is the only validity flag.
type DiscountCode struct {
	ID            int64        `json:"id" db:"id"`
	Code          string       `json:"code" db:"code"`
	DiscountType  DiscountType `json:"discount_type" db:"discount_type"`
	DiscountValue float64      `json:"discount_value" db:"discount_value"`
	Active        bool         `json:"active" db:"active"`
	CreatedAt     time.Time    `json:"created_at" db:"created_at"`
}
