package service

import (
	"context"
	"time"

	"bikeshop-backend/internal/domain"
)

type CatalogService interface {
	AddBike(ctx context.Context, bike *domain.Bike, changedBy string) error
	GetBike(ctx context.Context, id int32) (*domain.Bike, error)
	UpdateBike(ctx context.Context, bike *domain.Bike, changedBy string) error
	ArchiveBike(ctx context.Context, id int32, changedBy string) error
	SetAvailable(ctx context.Context, id int32, changedBy string) error
	SetMaintenance(ctx context.Context, id int32, changedBy string) error
	ListBikes(ctx context.Context, categoryID int32, status domain.BikeStatus, page, pageSize int32) ([]domain.Bike, int32, error)
	ListBikeRentals(ctx context.Context, bikeID int32) ([]domain.RentalContract, error)
}

type CategoryService interface {
	CreateCategory(ctx context.Context, category *domain.Category) error
	GetCategory(ctx context.Context, id int32) (*domain.Category, error)
	UpdateCategory(ctx context.Context, category *domain.Category) error
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

type PricingService interface {
	CreateRule(ctx context.Context, rule *domain.PricingRule) error
	GetRule(ctx context.Context, id int32) (*domain.PricingRule, error)
	UpdateRule(ctx context.Context, rule *domain.PricingRule) error
	ListRules(ctx context.Context, categoryID int32) ([]domain.PricingRule, error)
}

type CustomerService interface {
	CreateCustomer(ctx context.Context, customer *domain.Customer) error
	GetCustomer(ctx context.Context, id int32) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer *domain.Customer) error
	ListCustomers(ctx context.Context, query string, page, pageSize int32) ([]domain.Customer, int32, error)
}

type ContractService interface {
	CreateContract(ctx context.Context, contract *domain.RentalContract, changedBy string) error
	UpdateContract(ctx context.Context, contract *domain.RentalContract, changedBy string) error
	GetContract(ctx context.Context, id int32) (*domain.RentalContract, error)
	ListContracts(ctx context.Context, status domain.ContractStatus, page, pageSize int32) ([]domain.RentalContract, int32, error)

	// SuggestUnitPrice pre-fills the unit price from the bike's own rental
	// price fields for the chosen unit. Advisory only.
	SuggestUnitPrice(ctx context.Context, bikeID int32, unit domain.DurationUnit) (float64, error)

	Confirm(ctx context.Context, id int32, changedBy string) (*domain.RentalContract, error)
	Start(ctx context.Context, id int32, changedBy string) (*domain.RentalContract, error)
	Return(ctx context.Context, id int32, changedBy string) (*domain.RentalContract, error)
	Cancel(ctx context.Context, id int32, changedBy string) (*domain.RentalContract, error)
}

// InvoiceService drafts the outbound billing record when a contract is
// returned.
type InvoiceService interface {
	DraftInvoice(ctx context.Context, invoiceDate time.Time) (*domain.CustomerInvoice, error)
}

type EmailService interface {
	SendContractConfirmation(ctx context.Context, email, customerName, bikeName, contractNumber string, start, end time.Time) error
	SendReturnReceipt(ctx context.Context, email, customerName, bikeName, contractNumber string, totalPrice float64) error
	SendReturnReminder(ctx context.Context, email, customerName, bikeName, contractNumber string, endDate time.Time) error
}
