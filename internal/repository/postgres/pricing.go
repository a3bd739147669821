package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"bikeshop-backend/internal/domain"
	"bikeshop-backend/internal/repository"
)

type pricingRepository struct {
	db *sql.DB
}

func NewPricingRepository(db *sql.DB) repository.PricingRepository {
	return &pricingRepository{db: db}
}

const pricingSelect = `SELECT p.id, p.category_id, c.name, p.duration_unit, p.price, p.active, p.created_on, p.updated_on
	FROM rental_pricing p
	JOIN bike_categories c ON c.id = p.category_id`

func (r *pricingRepository) pairValue(rule *domain.PricingRule) string {
	return fmt.Sprintf("%d/%s", rule.CategoryID, rule.DurationUnit)
}

func (r *pricingRepository) Create(ctx context.Context, rule *domain.PricingRule) error {
	query := `INSERT INTO rental_pricing (category_id, duration_unit, price, active, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query, rule.CategoryID, rule.DurationUnit, rule.Price, rule.Active, now, now).Scan(&rule.ID)
	if err != nil {
		return mapUnique(err, "category_id,duration_unit", r.pairValue(rule))
	}
	rule.CreatedOn = now
	rule.UpdatedOn = now
	return nil
}

func (r *pricingRepository) GetByID(ctx context.Context, id int32) (*domain.PricingRule, error) {
	rule := &domain.PricingRule{}
	err := r.db.QueryRowContext(ctx, pricingSelect+` WHERE p.id = $1`, id).
		Scan(&rule.ID, &rule.CategoryID, &rule.CategoryName, &rule.DurationUnit, &rule.Price, &rule.Active, &rule.CreatedOn, &rule.UpdatedOn)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return rule, nil
}

func (r *pricingRepository) Update(ctx context.Context, rule *domain.PricingRule) error {
	query := `UPDATE rental_pricing SET category_id=$1, duration_unit=$2, price=$3, active=$4, updated_on=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query, rule.CategoryID, rule.DurationUnit, rule.Price, rule.Active, time.Now(), rule.ID)
	if err != nil {
		return mapUnique(err, "category_id,duration_unit", r.pairValue(rule))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *pricingRepository) List(ctx context.Context, categoryID int32) ([]domain.PricingRule, error) {
	query := pricingSelect
	args := []interface{}{}
	if categoryID != 0 {
		query += ` WHERE p.category_id = $1`
		args = append(args, categoryID)
	}
	query += ` ORDER BY p.category_id, p.duration_unit`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []domain.PricingRule
	for rows.Next() {
		var rule domain.PricingRule
		if err := rows.Scan(&rule.ID, &rule.CategoryID, &rule.CategoryName, &rule.DurationUnit, &rule.Price, &rule.Active, &rule.CreatedOn, &rule.UpdatedOn); err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, rows.Err()
}
