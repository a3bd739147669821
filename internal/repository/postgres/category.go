package postgres

import (
	"context"
	"database/sql"
	"time"

	"bikeshop-backend/internal/domain"
	"bikeshop-backend/internal/repository"
)

type categoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

// bike_count is derived from the bikes table on every read.
const categorySelect = `SELECT c.id, c.code, c.name, c.description, c.active,
	(SELECT count(*) FROM bikes b WHERE b.category_id = c.id) AS bike_count,
	c.created_on, c.updated_on
	FROM bike_categories c`

func (r *categoryRepository) Create(ctx context.Context, c *domain.Category) error {
	query := `INSERT INTO bike_categories (code, name, description, active, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query, c.Code, c.Name, c.Description, c.Active, now, now).Scan(&c.ID)
	if err != nil {
		return mapUnique(err, "code", c.Code)
	}
	c.CreatedOn = now
	c.UpdatedOn = now
	return nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id int32) (*domain.Category, error) {
	c := &domain.Category{}
	err := r.db.QueryRowContext(ctx, categorySelect+` WHERE c.id = $1`, id).
		Scan(&c.ID, &c.Code, &c.Name, &c.Description, &c.Active, &c.BikeCount, &c.CreatedOn, &c.UpdatedOn)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return c, nil
}

func (r *categoryRepository) Update(ctx context.Context, c *domain.Category) error {
	query := `UPDATE bike_categories SET code=$1, name=$2, description=$3, active=$4, updated_on=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query, c.Code, c.Name, c.Description, c.Active, time.Now(), c.ID)
	if err != nil {
		return mapUnique(err, "code", c.Code)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *categoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx, categorySelect+` ORDER BY c.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Code, &c.Name, &c.Description, &c.Active, &c.BikeCount, &c.CreatedOn, &c.UpdatedOn); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
