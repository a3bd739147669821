package domain

import "time"

type DurationUnit string

const (
	DurationUnitHour  DurationUnit = "hour"
	DurationUnitDay   DurationUnit = "day"
	DurationUnitWeek  DurationUnit = "week"
	DurationUnitMonth DurationUnit = "month"
)

func (u DurationUnit) Valid() bool {
	switch u {
	case DurationUnitHour, DurationUnitDay, DurationUnitWeek, DurationUnitMonth:
		return true
	}
	return false
}

// Label returns the display label used in pricing rule names.
func (u DurationUnit) Label() string {
	switch u {
	case DurationUnitHour:
		return "Hour"
	case DurationUnitDay:
		return "Day"
	case DurationUnitWeek:
		return "Week"
	case DurationUnitMonth:
		return "Month"
	}
	return ""
}

// PricingRule is a per-category, per-duration-unit list price. One rule per
// (category, duration unit) pair. Advisory data only: the contract's
// unit-price suggestion reads the bike's own rental price fields, not this
// table.
type PricingRule struct {
	ID           int32        `json:"id"`
	Name         string       `json:"name"` // derived, see DisplayName
	CategoryID   int32        `json:"category_id"`
	CategoryName string       `json:"category_name,omitempty"` // populated on reads for display
	DurationUnit DurationUnit `json:"duration_unit"`
	Price        float64      `json:"price"`
	Active       bool         `json:"active"`
	CreatedOn    time.Time    `json:"created_on"`
	UpdatedOn    time.Time    `json:"updated_on"`
}

// DisplayName derives the rule's label, e.g. "City - Day".
func (r *PricingRule) DisplayName() string {
	if r.CategoryName == "" || !r.DurationUnit.Valid() {
		return "New Pricing"
	}
	return r.CategoryName + " - " + r.DurationUnit.Label()
}

func (r *PricingRule) Validate() error {
	if r.CategoryID == 0 {
		return &ValidationError{Field: "category_id", Reason: "category is required"}
	}
	if !r.DurationUnit.Valid() {
		return &ValidationError{Field: "duration_unit", Reason: "must be one of hour, day, week, month"}
	}
	if r.Price < 0 {
		return &ValidationError{Field: "price", Reason: "price must be positive"}
	}
	return nil
}
