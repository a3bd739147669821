package domain_test

import (
	"testing"
	"time"

	"bikeshop-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func window(startDay, endDay int) *domain.RentalContract {
	return &domain.RentalContract{
		StartDate: time.Date(2024, 1, startDay, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, endDay, 0, 0, 0, 0, time.UTC),
	}
}

func TestRentalContract_Overlaps(t *testing.T) {
	assert.True(t, window(1, 5).Overlaps(window(4, 8)))
	assert.True(t, window(4, 8).Overlaps(window(1, 5)))
	assert.True(t, window(1, 10).Overlaps(window(3, 4)))

	// Touching windows do not overlap: the interval is half-open.
	assert.False(t, window(1, 5).Overlaps(window(5, 8)))
	assert.False(t, window(5, 8).Overlaps(window(1, 5)))
	assert.False(t, window(1, 2).Overlaps(window(3, 4)))
}

func TestRentalContract_Validate(t *testing.T) {
	valid := func() *domain.RentalContract {
		c := window(1, 3)
		c.CustomerID = 3
		c.BikeID = 2
		c.DurationUnit = domain.DurationUnitDay
		c.UnitPrice = 20
		return c
	}

	assert.NoError(t, valid().Validate())

	c := valid()
	c.EndDate = c.StartDate
	err := c.Validate()
	assert.True(t, domain.IsValidationError(err))
	assert.Contains(t, err.Error(), "end date must be after start date")

	c = valid()
	c.DurationUnit = "fortnight"
	assert.True(t, domain.IsValidationError(c.Validate()))

	c = valid()
	c.UnitPrice = -1
	assert.True(t, domain.IsValidationError(c.Validate()))
}

func TestContractStatus_Terminal(t *testing.T) {
	assert.False(t, domain.ContractStatusDraft.Terminal())
	assert.False(t, domain.ContractStatusConfirmed.Terminal())
	assert.False(t, domain.ContractStatusOngoing.Terminal())
	assert.True(t, domain.ContractStatusReturned.Terminal())
	assert.True(t, domain.ContractStatusCancelled.Terminal())
}
