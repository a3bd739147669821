package postgres_test

import (
	"context"
	"testing"

	"bikeshop-backend/internal/domain"
	"bikeshop-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestPricingRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewPricingRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rule := &domain.PricingRule{
			CategoryID:   1,
			DurationUnit: domain.DurationUnitDay,
			Price:        20,
			Active:       true,
		}

		mock.ExpectQuery("INSERT INTO rental_pricing").
			WithArgs(rule.CategoryID, rule.DurationUnit, rule.Price, rule.Active, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		err := repo.Create(ctx, rule)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), rule.ID)
	})

	t.Run("Duplicate Category Unit Pair", func(t *testing.T) {
		rule := &domain.PricingRule{
			CategoryID:   1,
			DurationUnit: domain.DurationUnitDay,
			Price:        25,
		}

		mock.ExpectQuery("INSERT INTO rental_pricing").
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(ctx, rule)
		assert.True(t, domain.IsUniquenessError(err))
		var uErr *domain.UniquenessError
		assert.ErrorAs(t, err, &uErr)
		assert.Equal(t, "category_id,duration_unit", uErr.Field)
		assert.Equal(t, "1/day", uErr.Value)
	})
}

func TestCategoryRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewCategoryRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		category := &domain.Category{Code: "city", Name: "City", Active: true}

		mock.ExpectQuery("INSERT INTO bike_categories").
			WithArgs(category.Code, category.Name, category.Description, category.Active, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		err := repo.Create(ctx, category)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), category.ID)
	})

	t.Run("Duplicate Code", func(t *testing.T) {
		category := &domain.Category{Code: "city", Name: "City Bikes"}

		mock.ExpectQuery("INSERT INTO bike_categories").
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(ctx, category)
		assert.True(t, domain.IsUniquenessError(err))
		var uErr *domain.UniquenessError
		assert.ErrorAs(t, err, &uErr)
		assert.Equal(t, "code", uErr.Field)
		assert.Equal(t, "city", uErr.Value)
	})
}
