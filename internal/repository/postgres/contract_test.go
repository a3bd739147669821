package postgres_test

import (
	"context"
	"testing"
	"time"

	"bikeshop-backend/internal/domain"
	"bikeshop-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func draftContract() *domain.RentalContract {
	return &domain.RentalContract{
		Number:       "RENT-00001",
		CustomerID:   3,
		BikeID:       2,
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		DurationUnit: domain.DurationUnitDay,
		Duration:     2,
		UnitPrice:    20,
		TotalPrice:   40,
		Deposit:      100,
		Status:       domain.ContractStatusDraft,
	}
}

func TestContractRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewContractRepository(db)
	ctx := context.Background()

	t.Run("Draft Skips Overlap Check", func(t *testing.T) {
		c := draftContract()

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO rental_contracts").
			WithArgs(c.Number, c.CustomerID, c.BikeID, c.StartDate, c.EndDate, nil,
				c.DurationUnit, c.Duration, c.UnitPrice, c.TotalPrice, c.Deposit, c.Status, c.Notes,
				sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectCommit()

		err := repo.Create(ctx, c)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), c.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Confirmed Rejects Overlapping Window", func(t *testing.T) {
		c := draftContract()
		c.Status = domain.ContractStatusConfirmed

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT name FROM bikes WHERE id = \$1 FOR UPDATE`).
			WithArgs(c.BikeID).
			WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("City Cruiser"))
		mock.ExpectQuery("SELECT number FROM rental_contracts").
			WithArgs(c.BikeID, c.ID, c.EndDate, c.StartDate).
			WillReturnRows(sqlmock.NewRows([]string{"number"}).AddRow("RENT-00009"))
		mock.ExpectRollback()

		err := repo.Create(ctx, c)
		assert.True(t, domain.IsValidationError(err))
		assert.Contains(t, err.Error(), "RENT-00009")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Confirmed Without Conflict Commits", func(t *testing.T) {
		c := draftContract()
		c.Status = domain.ContractStatusConfirmed

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT name FROM bikes WHERE id = \$1 FOR UPDATE`).
			WithArgs(c.BikeID).
			WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("City Cruiser"))
		mock.ExpectQuery("SELECT number FROM rental_contracts").
			WithArgs(c.BikeID, c.ID, c.EndDate, c.StartDate).
			WillReturnRows(sqlmock.NewRows([]string{"number"}))
		mock.ExpectQuery("INSERT INTO rental_contracts").
			WithArgs(c.Number, c.CustomerID, c.BikeID, c.StartDate, c.EndDate, nil,
				c.DurationUnit, c.Duration, c.UnitPrice, c.TotalPrice, c.Deposit, c.Status, c.Notes,
				sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
		mock.ExpectCommit()

		err := repo.Create(ctx, c)
		assert.NoError(t, err)
		assert.Equal(t, int32(5), c.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate Number", func(t *testing.T) {
		c := draftContract()

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO rental_contracts").
			WillReturnError(&pq.Error{Code: "23505"})
		mock.ExpectRollback()

		err := repo.Create(ctx, c)
		assert.True(t, domain.IsUniquenessError(err))
		var uErr *domain.UniquenessError
		assert.ErrorAs(t, err, &uErr)
		assert.Equal(t, "number", uErr.Field)
		assert.Equal(t, "RENT-00001", uErr.Value)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown Bike", func(t *testing.T) {
		c := draftContract()
		c.Status = domain.ContractStatusConfirmed
		c.BikeID = 99

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT name FROM bikes WHERE id = \$1 FOR UPDATE`).
			WithArgs(c.BikeID).
			WillReturnRows(sqlmock.NewRows([]string{"name"}))
		mock.ExpectRollback()

		err := repo.Create(ctx, c)
		assert.True(t, domain.IsValidationError(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestContractRepository_UpdateWithBikeStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewContractRepository(db)
	ctx := context.Background()

	c := draftContract()
	c.ID = 1
	c.Status = domain.ContractStatusOngoing

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT name FROM bikes WHERE id = \$1 FOR UPDATE`).
		WithArgs(c.BikeID).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("City Cruiser"))
	mock.ExpectQuery("SELECT number FROM rental_contracts").
		WithArgs(c.BikeID, c.ID, c.EndDate, c.StartDate).
		WillReturnRows(sqlmock.NewRows([]string{"number"}))
	mock.ExpectExec("UPDATE rental_contracts SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE bikes SET status=\$1`).
		WithArgs(domain.BikeStatusRented, sqlmock.AnyArg(), c.BikeID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE bikes SET active_contract_id").
		WithArgs(c.BikeID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = repo.UpdateWithBikeStatus(ctx, c, domain.BikeStatusRented)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContractRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewContractRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "number", "customer_id", "bike_id", "start_date", "end_date", "actual_return_date",
			"duration_unit", "duration", "unit_price", "total_price", "deposit", "status", "notes", "created_on", "updated_on"}).
			AddRow(1, "RENT-00001", 3, 2, time.Now(), time.Now(), nil, "day", 2.0, 20.0, 40.0, 100.0, "draft", "", time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM rental_contracts WHERE id = \\$1").
			WithArgs(int32(1)).
			WillReturnRows(rows)

		contract, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, "RENT-00001", contract.Number)
		assert.Equal(t, domain.ContractStatusDraft, contract.Status)
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM rental_contracts WHERE id = \\$1").
			WithArgs(int32(9)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByID(ctx, 9)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestContractRepository_ListOngoingEndingBetween(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewContractRepository(db)
	ctx := context.Background()

	from := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	rows := sqlmock.NewRows([]string{"id", "number", "customer_id", "bike_id", "start_date", "end_date", "actual_return_date",
		"duration_unit", "duration", "unit_price", "total_price", "deposit", "status", "notes", "created_on", "updated_on"}).
		AddRow(1, "RENT-00001", 3, 2, time.Now(), from.Add(12*time.Hour), nil, "day", 2.0, 20.0, 40.0, 100.0, "ongoing", "", time.Now(), time.Now())

	mock.ExpectQuery("SELECT (.+) FROM rental_contracts WHERE status = 'ongoing'").
		WithArgs(from, to).
		WillReturnRows(rows)

	contracts, err := repo.ListOngoingEndingBetween(ctx, from, to)
	assert.NoError(t, err)
	assert.Len(t, contracts, 1)
	assert.Equal(t, "RENT-00001", contracts[0].Number)
}
