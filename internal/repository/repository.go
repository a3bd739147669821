package repository

import (
	"context"
	"time"

	"bikeshop-backend/internal/domain"
)

// Named sequences backing reference assignment. Each is its own source of
// truth; collisions are impossible by construction.
const (
	SequenceBikeReference  = "bike_reference_seq"
	SequenceContractNumber = "contract_number_seq"
)

type BikeRepository interface {
	Create(ctx context.Context, bike *domain.Bike) error
	GetByID(ctx context.Context, id int32) (*domain.Bike, error)
	GetByReference(ctx context.Context, reference string) (*domain.Bike, error)
	Update(ctx context.Context, bike *domain.Bike) error
	UpdateStatus(ctx context.Context, id int32, status domain.BikeStatus) error
	List(ctx context.Context, categoryID int32, status domain.BikeStatus, page, pageSize int32) ([]domain.Bike, int32, error)

	// RefreshRollups recomputes the bike's derived active-contract and
	// rental-count columns from the contract set.
	RefreshRollups(ctx context.Context, bikeID int32) error
	// RefreshAllRollups is the sweep variant; returns rows touched.
	RefreshAllRollups(ctx context.Context) (int64, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id int32) (*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	List(ctx context.Context) ([]domain.Category, error)
}

type PricingRepository interface {
	Create(ctx context.Context, rule *domain.PricingRule) error
	GetByID(ctx context.Context, id int32) (*domain.PricingRule, error)
	Update(ctx context.Context, rule *domain.PricingRule) error
	List(ctx context.Context, categoryID int32) ([]domain.PricingRule, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int32) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	List(ctx context.Context, query string, page, pageSize int32) ([]domain.Customer, int32, error)
}

type ContractRepository interface {
	// Create and Update run inside a transaction that locks the bike row
	// before the overlap check, so the non-overlap invariant holds
	// post-commit even under concurrent writers.
	Create(ctx context.Context, contract *domain.RentalContract) error
	Update(ctx context.Context, contract *domain.RentalContract) error
	// UpdateWithBikeStatus writes the contract and the bike's status in the
	// same transaction (state machine side effects).
	UpdateWithBikeStatus(ctx context.Context, contract *domain.RentalContract, bikeStatus domain.BikeStatus) error

	GetByID(ctx context.Context, id int32) (*domain.RentalContract, error)
	GetByNumber(ctx context.Context, number string) (*domain.RentalContract, error)
	List(ctx context.Context, status domain.ContractStatus, page, pageSize int32) ([]domain.RentalContract, int32, error)
	ListByBike(ctx context.Context, bikeID int32) ([]domain.RentalContract, error)
	ListByCustomer(ctx context.Context, customerID int32) ([]domain.RentalContract, error)
	// ListOngoingEndingBetween feeds the return-reminder job.
	ListOngoingEndingBetween(ctx context.Context, from, to time.Time) ([]domain.RentalContract, error)

	FirstOngoingByBike(ctx context.Context, bikeID int32) (*domain.RentalContract, error)
	CountByBike(ctx context.Context, bikeID int32) (int32, error)
}

// SequenceRepository is the named monotonic sequence generator used for
// bike references and contract numbers.
type SequenceRepository interface {
	Next(ctx context.Context, name string) (int64, error)
}

type AuditLogRepository interface {
	Record(ctx context.Context, entries []domain.ChangeEntry) error
	ListByEntity(ctx context.Context, entity string, entityID int32) ([]domain.ChangeEntry, error)
}

// AccountingRepository is the accounting collaborator contract: it accepts
// a drafted invoice and persists a billing document. Nothing further is
// assumed about it.
type AccountingRepository interface {
	CreateInvoice(ctx context.Context, invoice *domain.CustomerInvoice) error
}
