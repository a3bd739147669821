package domain

import "time"

// Customer is the shop's contact record a contract points at.
type Customer struct {
	ID        int32     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Notes     string    `json:"notes"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

func (c *Customer) Validate() error {
	if c.Name == "" {
		return &ValidationError{Field: "name", Reason: "name is required"}
	}
	return nil
}
