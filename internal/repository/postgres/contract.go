package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bikeshop-backend/internal/domain"
	"bikeshop-backend/internal/repository"
)

type contractRepository struct {
	db *sql.DB
}

func NewContractRepository(db *sql.DB) repository.ContractRepository {
	return &contractRepository{db: db}
}

const contractColumns = `id, number, customer_id, bike_id, start_date, end_date, actual_return_date,
	duration_unit, duration, unit_price, total_price, deposit, status, notes, created_on, updated_on`

func scanContract(row interface{ Scan(...any) error }) (*domain.RentalContract, error) {
	c := &domain.RentalContract{}
	err := row.Scan(&c.ID, &c.Number, &c.CustomerID, &c.BikeID, &c.StartDate, &c.EndDate, &c.ActualReturnDate,
		&c.DurationUnit, &c.Duration, &c.UnitPrice, &c.TotalPrice, &c.Deposit, &c.Status, &c.Notes, &c.CreatedOn, &c.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// guardOverlap enforces the non-overlap invariant for contracts entering or
// staying in confirmed/ongoing. The bike row is locked first so the
// check-and-write is atomic against concurrent writers; the invariant holds
// post-commit, not just at check time.
func guardOverlap(ctx context.Context, tx *sql.Tx, c *domain.RentalContract) error {
	if c.Status != domain.ContractStatusConfirmed && c.Status != domain.ContractStatusOngoing {
		return nil
	}

	var bikeName string
	err := tx.QueryRowContext(ctx, `SELECT name FROM bikes WHERE id = $1 FOR UPDATE`, c.BikeID).Scan(&bikeName)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.ValidationError{Field: "bike_id", Reason: "bike does not exist"}
	}
	if err != nil {
		return err
	}

	// Half-open interval test: start < other.end AND end > other.start.
	var conflictNumber string
	err = tx.QueryRowContext(ctx, `SELECT number FROM rental_contracts
		WHERE bike_id = $1 AND id <> $2
		  AND status IN ('confirmed', 'ongoing')
		  AND start_date < $3 AND end_date > $4
		LIMIT 1`, c.BikeID, c.ID, c.EndDate, c.StartDate).Scan(&conflictNumber)
	if err == nil {
		return &domain.ValidationError{
			Field:  "bike_id",
			Reason: fmt.Sprintf("bike %s is already rented for this period (conflicts with contract %s)", bikeName, conflictNumber),
		}
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	return nil
}

func (r *contractRepository) Create(ctx context.Context, c *domain.RentalContract) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := guardOverlap(ctx, tx, c); err != nil {
		return err
	}

	query := `INSERT INTO rental_contracts (number, customer_id, bike_id, start_date, end_date, actual_return_date,
	            duration_unit, duration, unit_price, total_price, deposit, status, notes, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	          RETURNING id`
	now := time.Now()
	err = tx.QueryRowContext(ctx, query, c.Number, c.CustomerID, c.BikeID, c.StartDate, c.EndDate, c.ActualReturnDate,
		c.DurationUnit, c.Duration, c.UnitPrice, c.TotalPrice, c.Deposit, c.Status, c.Notes, now, now).Scan(&c.ID)
	if err != nil {
		return mapUnique(err, "number", c.Number)
	}
	c.CreatedOn = now
	c.UpdatedOn = now

	return tx.Commit()
}

const contractUpdateSet = `customer_id=$1, bike_id=$2, start_date=$3, end_date=$4, actual_return_date=$5,
	duration_unit=$6, duration=$7, unit_price=$8, total_price=$9, deposit=$10, status=$11, notes=$12, updated_on=$13`

func updateContract(ctx context.Context, tx *sql.Tx, c *domain.RentalContract) error {
	res, err := tx.ExecContext(ctx, `UPDATE rental_contracts SET `+contractUpdateSet+` WHERE id=$14`,
		c.CustomerID, c.BikeID, c.StartDate, c.EndDate, c.ActualReturnDate,
		c.DurationUnit, c.Duration, c.UnitPrice, c.TotalPrice, c.Deposit, c.Status, c.Notes, time.Now(), c.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *contractRepository) Update(ctx context.Context, c *domain.RentalContract) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := guardOverlap(ctx, tx, c); err != nil {
		return err
	}
	if err := updateContract(ctx, tx, c); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *contractRepository) UpdateWithBikeStatus(ctx context.Context, c *domain.RentalContract, bikeStatus domain.BikeStatus) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := guardOverlap(ctx, tx, c); err != nil {
		return err
	}
	if err := updateContract(ctx, tx, c); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `UPDATE bikes SET status=$1, updated_on=$2 WHERE id=$3`, bikeStatus, time.Now(), c.BikeID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}

	// Keep the bike's derived columns in step within the same transaction.
	_, err = tx.ExecContext(ctx, `UPDATE bikes SET `+refreshRollupsSet+` WHERE id = $1`, c.BikeID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *contractRepository) GetByID(ctx context.Context, id int32) (*domain.RentalContract, error) {
	query := `SELECT ` + contractColumns + ` FROM rental_contracts WHERE id = $1`
	c, err := scanContract(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapNotFound(err)
	}
	return c, nil
}

func (r *contractRepository) GetByNumber(ctx context.Context, number string) (*domain.RentalContract, error) {
	query := `SELECT ` + contractColumns + ` FROM rental_contracts WHERE number = $1`
	c, err := scanContract(r.db.QueryRowContext(ctx, query, number))
	if err != nil {
		return nil, mapNotFound(err)
	}
	return c, nil
}

func (r *contractRepository) List(ctx context.Context, status domain.ContractStatus, page, pageSize int32) ([]domain.RentalContract, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + contractColumns + ` FROM rental_contracts WHERE 1=1`

	args := []interface{}{}
	argIdx := 1
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") AS sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY start_date DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var contracts []domain.RentalContract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, 0, err
		}
		contracts = append(contracts, *c)
	}
	return contracts, count, rows.Err()
}

func (r *contractRepository) listWhere(ctx context.Context, where string, args ...interface{}) ([]domain.RentalContract, error) {
	query := `SELECT ` + contractColumns + ` FROM rental_contracts WHERE ` + where + ` ORDER BY start_date DESC`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contracts []domain.RentalContract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, *c)
	}
	return contracts, rows.Err()
}

func (r *contractRepository) ListByBike(ctx context.Context, bikeID int32) ([]domain.RentalContract, error) {
	return r.listWhere(ctx, `bike_id = $1`, bikeID)
}

func (r *contractRepository) ListByCustomer(ctx context.Context, customerID int32) ([]domain.RentalContract, error) {
	return r.listWhere(ctx, `customer_id = $1`, customerID)
}

func (r *contractRepository) ListOngoingEndingBetween(ctx context.Context, from, to time.Time) ([]domain.RentalContract, error) {
	return r.listWhere(ctx, `status = 'ongoing' AND end_date >= $1 AND end_date < $2`, from, to)
}

func (r *contractRepository) FirstOngoingByBike(ctx context.Context, bikeID int32) (*domain.RentalContract, error) {
	query := `SELECT ` + contractColumns + ` FROM rental_contracts WHERE bike_id = $1 AND status = 'ongoing' ORDER BY id LIMIT 1`
	c, err := scanContract(r.db.QueryRowContext(ctx, query, bikeID))
	if err != nil {
		return nil, mapNotFound(err)
	}
	return c, nil
}

func (r *contractRepository) CountByBike(ctx context.Context, bikeID int32) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rental_contracts WHERE bike_id = $1`, bikeID).Scan(&count)
	return count, err
}
