package entities

import (
	"encoding/json"

	"github.com/spf13/cast"
)

// PropertyRecord is one candidate returned by the property-records lookup.
//
// The lookup service returns county/tax fields under countyData. CountyRaw keeps that
// object exactly as received and is what gets serialized back out; CountyData is a typed
// view of the fields used by pricing and the confirmation email. A field with an
// unexpected type is left at its zero value instead of failing the record.
type PropertyRecord struct {
	ID         string
	Address    string
	City       string
	State      string
	Zip        string
	CountyData CountyData
	CountyRaw  json.RawMessage
}

type CountyData struct {
	County           string  `json:"county,omitempty"`
	Municipality     string  `json:"municipality,omitempty"`
	OwnerName        string  `json:"ownerName,omitempty"`
	LastSalePrice    float64 `json:"lastSalePrice,omitempty"`
	LastSaleDate     string  `json:"lastSaleDate,omitempty"`
	YearBuilt        int     `json:"yearBuilt,omitempty"`
	Block            string  `json:"block,omitempty"`
	Lot              string  `json:"lot,omitempty"`
	Qualifier        string  `json:"qualifier,omitempty"`
	Acreage          float64 `json:"acreage,omitempty"`
	SquareFootage    int     `json:"squareFootage,omitempty"`
	PropertyClass    string  `json:"propertyClass,omitempty"`
	AssessedValue    float64 `json:"assessedValue,omitempty"`
	AnnualTaxes      float64 `json:"annualTaxes,omitempty"`
	IsAbsenteeOwner  bool    `json:"isAbsenteeOwner,omitempty"`
	IsCorporateOwned bool    `json:"isCorporateOwned,omitempty"`
}

type propertyRecordJSON struct {
	ID         string          `json:"id,omitempty"`
	Address    string          `json:"address"`
	City       string          `json:"city"`
	State      string          `json:"state"`
	Zip        string          `json:"zip"`
	CountyData json.RawMessage `json:"countyData"`
}

func (p PropertyRecord) MarshalJSON() ([]byte, error) {
	county := p.CountyRaw
	if len(county) == 0 {
		typed, err := json.Marshal(p.CountyData)
		if err != nil {
			return nil, err
		}
		county = typed
	}
	return json.Marshal(propertyRecordJSON{
		ID:         p.ID,
		Address:    p.Address,
		City:       p.City,
		State:      p.State,
		Zip:        p.Zip,
		CountyData: county,
	})
}

// UnmarshalJSON only fails when the record itself is not a JSON object.
func (p *PropertyRecord) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*p = PropertyRecord{
		ID:      looseString(fields["id"]),
		Address: looseString(fields["address"]),
		City:    looseString(fields["city"]),
		State:   looseString(fields["state"]),
		Zip:     looseString(fields["zip"]),
	}
	if raw, ok := fields["countyData"]; ok && string(raw) != "null" {
		p.CountyRaw = append(json.RawMessage(nil), raw...)
		p.CountyData = decodeCountyData(raw)
	}
	return nil
}

func decodeCountyData(raw json.RawMessage) CountyData {
	var f map[string]any
	if err := json.Unmarshal(raw, &f); err != nil {
		return CountyData{}
	}
	return CountyData{
		County:           cast.ToString(f["county"]),
		Municipality:     cast.ToString(f["municipality"]),
		OwnerName:        cast.ToString(f["ownerName"]),
		LastSalePrice:    cast.ToFloat64(f["lastSalePrice"]),
		LastSaleDate:     cast.ToString(f["lastSaleDate"]),
		YearBuilt:        cast.ToInt(f["yearBuilt"]),
		Block:            cast.ToString(f["block"]),
		Lot:              cast.ToString(f["lot"]),
		Qualifier:        cast.ToString(f["qualifier"]),
		Acreage:          cast.ToFloat64(f["acreage"]),
		SquareFootage:    cast.ToInt(f["squareFootage"]),
		PropertyClass:    cast.ToString(f["propertyClass"]),
		AssessedValue:    cast.ToFloat64(f["assessedValue"]),
		AnnualTaxes:      cast.ToFloat64(f["annualTaxes"]),
		IsAbsenteeOwner:  cast.ToBool(f["isAbsenteeOwner"]),
		IsCorporateOwned: cast.ToBool(f["isCorporateOwned"]),
	}
}

func looseString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	return cast.ToString(v)
}

// FullAddress renders "street, city, state zip" skipping empty parts.
func (p PropertyRecord) FullAddress() string {
	out := p.Address
	if p.City != "" {
		if out != "" {
			out += ", "
		}
		out += p.City
	}
	stateZip := p.State
	if p.Zip != "" {
		if stateZip != "" {
			stateZip += " "
		}
		stateZip += p.Zip
	}
	if stateZip != "" {
		if out != "" {
			out += ", "
		}
		out += stateZip
	}
	return out
}
