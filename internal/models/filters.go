package models

import "time"

// DateRange bounds a filter window. Both ends are optional; a nil end means
// unbounded on that side. From is an exact instant while To is widened to the
// end of its calendar day when filtering.
type DateRange struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

// IsUnbounded returns true when neither end of the range is set
func (r DateRange) IsUnbounded() bool {
	return r.From == nil && r.To == nil
}

// FilterCriteria contains the three independent filter axes for transaction
// queries. An empty Types or CategoryIDs slice means "no restriction on this
// axis", never "match nothing".
type FilterCriteria struct {
	DateRange   DateRange `json:"dateRange"`
	Types       []string  `json:"types"`
	CategoryIDs []string  `json:"categoryIds"`
}
