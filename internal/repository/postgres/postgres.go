package postgres

import (
	"database/sql"
	"errors"

	"bikeshop-backend/internal/domain"
	"bikeshop-backend/internal/repository"

	"github.com/lib/pq"
)

// Store aggregates every repository over a single database handle.
type Store struct {
	db *sql.DB
	repository.BikeRepository
	repository.CategoryRepository
	repository.PricingRepository
	repository.CustomerRepository
	repository.ContractRepository
	repository.SequenceRepository
	repository.AuditLogRepository
	repository.AccountingRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                   db,
		BikeRepository:       NewBikeRepository(db),
		CategoryRepository:   NewCategoryRepository(db),
		PricingRepository:    NewPricingRepository(db),
		CustomerRepository:   NewCustomerRepository(db),
		ContractRepository:   NewContractRepository(db),
		SequenceRepository:   NewSequenceRepository(db),
		AuditLogRepository:   NewAuditLogRepository(db),
		AccountingRepository: NewAccountingRepository(db),
	}
}

const uniqueViolationCode = "23505"

// mapUnique translates a Postgres unique violation into the domain
// uniqueness error for the given field, so callers see the offending field
// and value instead of a driver error.
func mapUnique(err error, field, value string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
		return &domain.UniquenessError{Field: field, Value: value}
	}
	return err
}

// mapNotFound translates sql.ErrNoRows into domain.ErrNotFound.
func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}
