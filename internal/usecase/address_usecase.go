package usecase

import (
	"context"
	"log"
	"strings"
	"unicode/utf8"

	"appraisal_booking/internal/domain/entities"
	"appraisal_booking/internal/usecase/interfaces"
)

const (
	MinAddressQueryLength = 3
	MaxAddressResults     = 5
)

// AddressSearchResult never carries an error value: lookup failures only set Error.
type AddressSearchResult struct {
	Properties []entities.PropertyRecord `json:"properties"`
	Error      bool                      `json:"error"`
	Superseded bool                      `json:"superseded,omitempty"`
}

type IAddressUseCase interface {
	Search(ctx context.Context, sessionKey, query string) AddressSearchResult
}

type AddressUseCase struct {
	lookup    interfaces.IPropertyLookup
	debouncer *Debouncer
}

var _ IAddressUseCase = (*AddressUseCase)(nil)

func NewAddressUseCase(lookup interfaces.IPropertyLookup, debouncer *Debouncer) *AddressUseCase {
	return &AddressUseCase{lookup: lookup, debouncer: debouncer}
}

func (u *AddressUseCase) Search(ctx context.Context, sessionKey, query string) AddressSearchResult {
	query = strings.TrimSpace(query)
	empty := AddressSearchResult{Properties: []entities.PropertyRecord{}}

	if utf8.RuneCountInString(query) < MinAddressQueryLength {
		// A shorter query clears the suggestion list and drops any pending lookup.
		if u.debouncer != nil && sessionKey != "" {
			u.debouncer.Cancel(sessionKey)
		}
		return empty
	}
	if u.lookup == nil {
		log.Printf("[address][usecase] property lookup not configured")
		empty.Error = true
		return empty
	}

	var records []entities.PropertyRecord
	run := func(ctx context.Context) error {
		var err error
		records, err = u.lookup.Search(ctx, query, MaxAddressResults)
		return err
	}

	var (
		superseded bool
		err        error
	)
	if u.debouncer != nil {
		superseded, err = u.debouncer.Do(ctx, sessionKey, run)
	} else {
		err = run(ctx)
	}

	if superseded {
		log.Printf("[address][usecase] lookup superseded session=%s", sessionKey)
		empty.Superseded = true
		return empty
	}
	if err != nil {
		log.Printf("[address][usecase] lookup failed session=%s query_len=%d err=%v", sessionKey, len(query), err)
		empty.Error = true
		return empty
	}

	if len(records) > MaxAddressResults {
		records = records[:MaxAddressResults]
	}
	if records == nil {
		records = []entities.PropertyRecord{}
	}
	log.Printf("[address][usecase] lookup success session=%s results=%d", sessionKey, len(records))
	return AddressSearchResult{Properties: records}
}
