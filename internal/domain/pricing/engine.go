// Package pricing computes quote line items from the service price table.
//
// The service_pricing table is the only source of prices. The defaults below are used
// for (service, tier) pairs the table does not define, never as a parallel rule set.
package pricing

import (
	"math"
	"sort"
	"strings"

	"appraisal_booking/internal/domain/entities"
)

const (
	TierBase     = "base"
	TierUpTo2000 = "up_to_2000"
	TierUpTo3000 = "up_to_3000"
	TierUpTo4000 = "up_to_4000"
	TierOver4000 = "over_4000"
)

var serviceNames = map[string]string{
	string(entities.ServiceAppraisal):         "Appraisal Report",
	string(entities.ServicePhotography):       "Professional Photography",
	string(entities.ServiceFloorPlans):        "Floor Plans",
	string(entities.ServiceVirtualTour):       "Virtual Tour",
	string(entities.ServiceAerialPhotography): "Aerial Photography",
}

// Table maps service_id -> tier_name -> price.
type Table map[string]map[string]float64

func DefaultTable() Table {
	return Table{
		string(entities.ServiceAppraisal): {
			TierUpTo2000: 450,
			TierUpTo3000: 525,
			TierUpTo4000: 600,
			TierOver4000: 700,
		},
		string(entities.ServicePhotography):       {TierBase: 250},
		string(entities.ServiceFloorPlans):        {TierBase: 150},
		string(entities.ServiceVirtualTour):       {TierBase: 200},
		string(entities.ServiceAerialPhotography): {TierBase: 275},
	}
}

// NewTable overlays the persisted rows on top of the defaults.
func NewTable(rows []entities.ServicePrice) Table {
	t := DefaultTable()
	for _, r := range rows {
		sid := normalizeID(r.ServiceID)
		tier := normalizeID(r.TierName)
		if sid == "" || tier == "" {
			continue
		}
		if _, ok := t[sid]; !ok {
			t[sid] = map[string]float64{}
		}
		t[sid][tier] = r.Price
	}
	return t
}

func (t Table) Price(serviceID, tier string) (float64, bool) {
	tiers, ok := t[normalizeID(serviceID)]
	if !ok {
		return 0, false
	}
	p, ok := tiers[normalizeID(tier)]
	return p, ok
}

// Rows flattens the table in a stable order for display.
func (t Table) Rows() []entities.ServicePrice {
	out := make([]entities.ServicePrice, 0, len(t)*2)
	for sid, tiers := range t {
		for tier, price := range tiers {
			out = append(out, entities.ServicePrice{ServiceID: sid, TierName: tier, Price: price})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ServiceID != out[j].ServiceID {
			return out[i].ServiceID < out[j].ServiceID
		}
		return out[i].Price < out[j].Price
	})
	return out
}

// AppraisalTier picks the living-area tier. Unknown area (<= 0) uses the smallest tier.
func AppraisalTier(sqft int) string {
	switch {
	case sqft <= 2000:
		return TierUpTo2000
	case sqft <= 3000:
		return TierUpTo3000
	case sqft <= 4000:
		return TierUpTo4000
	default:
		return TierOver4000
	}
}

type LineItem struct {
	ServiceID string  `json:"service_id"`
	Name      string  `json:"name"`
	Tier      string  `json:"tier,omitempty"`
	Price     float64 `json:"price"`
}

type Quote struct {
	LineItems       []LineItem `json:"line_items"`
	Subtotal        float64    `json:"subtotal"`
	DiscountCode    string     `json:"discount_code,omitempty"`
	DiscountApplied bool       `json:"discount_applied"`
	DiscountAmount  float64    `json:"discount_amount"`
	Total           float64    `json:"total"`
}

// Calculate prices the selected services in order. Unknown services price at 0 and are
// kept in the output. Duplicate identifiers are priced once.
func Calculate(table Table, services []string, sqft int, discount *entities.DiscountCode) Quote {
	if table == nil {
		table = DefaultTable()
	}

	q := Quote{LineItems: make([]LineItem, 0, len(services))}
	seen := make(map[string]bool, len(services))
	for _, raw := range services {
		sid := normalizeID(raw)
		if sid == "" || seen[sid] {
			continue
		}
		seen[sid] = true

		item := LineItem{ServiceID: sid, Name: ServiceName(sid)}
		if sid == string(entities.ServiceAppraisal) {
			item.Tier = AppraisalTier(sqft)
		} else {
			item.Tier = TierBase
		}
		if p, ok := table.Price(sid, item.Tier); ok {
			item.Price = roundCents(p)
		}
		q.LineItems = append(q.LineItems, item)
		q.Subtotal += item.Price
	}
	q.Subtotal = roundCents(q.Subtotal)

	if discount != nil && discount.Active {
		// A code with an unrecognised type reduces nothing and is reported as not applied.
		q.DiscountAmount = DiscountAmount(q.Subtotal, discount)
		if q.DiscountAmount > 0 || knownDiscountType(discount.DiscountType) {
			q.DiscountCode = strings.ToUpper(strings.TrimSpace(discount.Code))
			q.DiscountApplied = true
		}
	}
	q.Total = roundCents(q.Subtotal - q.DiscountAmount)
	return q
}

func knownDiscountType(t entities.DiscountType) bool {
	return t == entities.DiscountPercentage || t == entities.DiscountFlat
}

// DiscountAmount never exceeds the subtotal and is never negative.
func DiscountAmount(subtotal float64, d *entities.DiscountCode) float64 {
	if d == nil || !d.Active || subtotal <= 0 {
		return 0
	}
	var amount float64
	switch d.DiscountType {
	case entities.DiscountPercentage:
		pct := math.Min(math.Max(d.DiscountValue, 0), 100)
		amount = subtotal * pct / 100
	case entities.DiscountFlat:
		amount = math.Max(d.DiscountValue, 0)
	}
	return roundCents(math.Min(amount, subtotal))
}

func ServiceName(serviceID string) string {
	sid := normalizeID(serviceID)
	if n, ok := serviceNames[sid]; ok {
		return n
	}
	return serviceID
}

func normalizeID(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
