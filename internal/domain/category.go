package domain

import "time"

// Category groups bikes and supplies default pricing tiers via pricing rules.
type Category struct {
	ID          int32  `json:"id"`
	Code        string `json:"code"` // globally unique
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
	// BikeCount is derived: number of bikes referencing this category.
	BikeCount int32     `json:"bike_count"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

func (c *Category) Validate() error {
	if c.Code == "" {
		return &ValidationError{Field: "code", Reason: "code is required"}
	}
	if c.Name == "" {
		return &ValidationError{Field: "name", Reason: "name is required"}
	}
	return nil
}
