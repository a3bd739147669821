package domain

import "time"

type ContractStatus string

const (
	ContractStatusDraft     ContractStatus = "draft"
	ContractStatusConfirmed ContractStatus = "confirmed"
	ContractStatusOngoing   ContractStatus = "ongoing"
	ContractStatusReturned  ContractStatus = "returned"
	ContractStatusCancelled ContractStatus = "cancelled"
)

// Terminal reports whether no further transition is allowed from s.
func (s ContractStatus) Terminal() bool {
	return s == ContractStatusReturned || s == ContractStatusCancelled
}

// ContractNumberPending is the sentinel meaning "no contract number assigned
// yet"; the store replaces it with the next contract number sequence value.
const ContractNumberPending = "New"

// DefaultDeposit is the deposit pre-filled on new contracts.
const DefaultDeposit = 100.0

// RentalContract binds a customer, a bike, a time window and a computed
// price. Duration and total price are derived from start/end/duration
// unit/unit price and are never mutated independently.
type RentalContract struct {
	ID               int32          `json:"id"`
	Number           string         `json:"number"` // unique, sequence-assigned
	CustomerID       int32          `json:"customer_id"`
	BikeID           int32          `json:"bike_id"`
	StartDate        time.Time      `json:"start_date"`
	EndDate          time.Time      `json:"end_date"`
	ActualReturnDate *time.Time     `json:"actual_return_date,omitempty"`
	DurationUnit     DurationUnit   `json:"duration_unit"`
	Duration         float64        `json:"duration"` // derived
	UnitPrice        float64        `json:"unit_price"`
	TotalPrice       float64        `json:"total_price"` // derived
	Deposit          float64        `json:"deposit"`
	Status           ContractStatus `json:"status"`
	Notes            string         `json:"notes"`
	CreatedOn        time.Time      `json:"created_on"`
	UpdatedOn        time.Time      `json:"updated_on"`
}

// Validate enforces the contract's field-level invariants on every
// create/update. The overlap invariant is enforced by the store, which can
// hold the bike row lock while it checks.
func (c *RentalContract) Validate() error {
	if c.CustomerID == 0 {
		return &ValidationError{Field: "customer_id", Reason: "customer is required"}
	}
	if c.BikeID == 0 {
		return &ValidationError{Field: "bike_id", Reason: "bike is required"}
	}
	if !c.DurationUnit.Valid() {
		return &ValidationError{Field: "duration_unit", Reason: "must be one of hour, day, week, month"}
	}
	if c.StartDate.IsZero() || c.EndDate.IsZero() {
		return &ValidationError{Field: "end_date", Reason: "start and end dates are required"}
	}
	if !c.EndDate.After(c.StartDate) {
		return &ValidationError{Field: "end_date", Reason: "end date must be after start date"}
	}
	if c.UnitPrice < 0 {
		return &ValidationError{Field: "unit_price", Reason: "unit price must be positive"}
	}
	return nil
}

// Overlaps reports whether the [start, end) windows of both contracts
// intersect.
func (c *RentalContract) Overlaps(other *RentalContract) bool {
	return c.StartDate.Before(other.EndDate) && c.EndDate.After(other.StartDate)
}
