package domain

import "time"

type BikeStatus string

const (
	BikeStatusAvailable   BikeStatus = "available"
	BikeStatusRented      BikeStatus = "rented"
	BikeStatusMaintenance BikeStatus = "maintenance"
	BikeStatusSold        BikeStatus = "sold"
	BikeStatusRetired     BikeStatus = "retired"
)

// BikeReferencePending is the sentinel meaning "no reference assigned yet";
// the store replaces it with the next value of the bike reference sequence.
const BikeReferencePending = "New"

type FrameSize string

const (
	FrameSizeXS FrameSize = "xs"
	FrameSizeS  FrameSize = "s"
	FrameSizeM  FrameSize = "m"
	FrameSizeL  FrameSize = "l"
	FrameSizeXL FrameSize = "xl"
)

// Bike is a single trackable bike in inventory.
type Bike struct {
	ID          int32     `json:"id"`
	Reference   string    `json:"reference"` // globally unique, immutable after assignment
	CategoryID  int32     `json:"category_id"`
	Name        string    `json:"name"`
	Brand       string    `json:"brand"`
	Model       string    `json:"model"`
	FrameSize   FrameSize `json:"frame_size"`
	WheelSize   string    `json:"wheel_size"` // inches, e.g. "27.5"
	Color       string    `json:"color"`
	WeightKg    float64   `json:"weight_kg"`
	Year        int32     `json:"year"`
	Description string    `json:"description"`

	PurchasePrice float64 `json:"purchase_price"`
	SalePrice     float64 `json:"sale_price"`

	AvailableForRent bool    `json:"available_for_rent"`
	RentalPriceHour  float64 `json:"rental_price_hour"`
	RentalPriceDay   float64 `json:"rental_price_day"`
	RentalPriceWeek  float64 `json:"rental_price_week"`
	RentalPriceMonth float64 `json:"rental_price_month"`

	Status BikeStatus `json:"status"`

	// Derived from the contract set; refreshed on reads and after contract
	// writes, and swept periodically by the rollup job.
	ActiveContractID *int32 `json:"active_contract_id,omitempty"`
	RentalCount      int32  `json:"rental_count"`

	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// RentalPriceFor returns the bike's own rental price for the given unit.
func (b *Bike) RentalPriceFor(unit DurationUnit) float64 {
	switch unit {
	case DurationUnitHour:
		return b.RentalPriceHour
	case DurationUnitDay:
		return b.RentalPriceDay
	case DurationUnitWeek:
		return b.RentalPriceWeek
	case DurationUnitMonth:
		return b.RentalPriceMonth
	}
	return 0
}

// Validate enforces the monetary invariants on every create/update.
func (b *Bike) Validate() error {
	if b.Name == "" {
		return &ValidationError{Field: "name", Reason: "name is required"}
	}
	if b.CategoryID == 0 {
		return &ValidationError{Field: "category_id", Reason: "category is required"}
	}
	if b.Brand == "" {
		return &ValidationError{Field: "brand", Reason: "brand is required"}
	}
	if b.Model == "" {
		return &ValidationError{Field: "model", Reason: "model is required"}
	}
	if b.PurchasePrice < 0 {
		return &ValidationError{Field: "purchase_price", Reason: "prices must be positive"}
	}
	if b.SalePrice < 0 {
		return &ValidationError{Field: "sale_price", Reason: "prices must be positive"}
	}
	for _, p := range []struct {
		field string
		value float64
	}{
		{"rental_price_hour", b.RentalPriceHour},
		{"rental_price_day", b.RentalPriceDay},
		{"rental_price_week", b.RentalPriceWeek},
		{"rental_price_month", b.RentalPriceMonth},
	} {
		if p.value < 0 {
			return &ValidationError{Field: p.field, Reason: "rental prices must be positive"}
		}
	}
	return nil
}
