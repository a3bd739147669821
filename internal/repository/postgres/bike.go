package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"bikeshop-backend/internal/domain"
	"bikeshop-backend/internal/repository"
)

type bikeRepository struct {
	db *sql.DB
}

func NewBikeRepository(db *sql.DB) repository.BikeRepository {
	return &bikeRepository{db: db}
}

const bikeColumns = `id, reference, category_id, name, brand, model, frame_size, wheel_size, color,
	weight_kg, year, description, purchase_price, sale_price, available_for_rent,
	rental_price_hour, rental_price_day, rental_price_week, rental_price_month,
	status, active_contract_id, rental_count, created_on, updated_on`

func scanBike(row interface{ Scan(...any) error }) (*domain.Bike, error) {
	b := &domain.Bike{}
	err := row.Scan(&b.ID, &b.Reference, &b.CategoryID, &b.Name, &b.Brand, &b.Model, &b.FrameSize, &b.WheelSize, &b.Color,
		&b.WeightKg, &b.Year, &b.Description, &b.PurchasePrice, &b.SalePrice, &b.AvailableForRent,
		&b.RentalPriceHour, &b.RentalPriceDay, &b.RentalPriceWeek, &b.RentalPriceMonth,
		&b.Status, &b.ActiveContractID, &b.RentalCount, &b.CreatedOn, &b.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bikeRepository) Create(ctx context.Context, b *domain.Bike) error {
	query := `INSERT INTO bikes (reference, category_id, name, brand, model, frame_size, wheel_size, color,
	            weight_kg, year, description, purchase_price, sale_price, available_for_rent,
	            rental_price_hour, rental_price_day, rental_price_week, rental_price_month, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
	          RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query, b.Reference, b.CategoryID, b.Name, b.Brand, b.Model, b.FrameSize, b.WheelSize, b.Color,
		b.WeightKg, b.Year, b.Description, b.PurchasePrice, b.SalePrice, b.AvailableForRent,
		b.RentalPriceHour, b.RentalPriceDay, b.RentalPriceWeek, b.RentalPriceMonth, b.Status, now, now).Scan(&b.ID)
	if err != nil {
		return mapUnique(err, "reference", b.Reference)
	}
	b.CreatedOn = now
	b.UpdatedOn = now
	return nil
}

func (r *bikeRepository) GetByID(ctx context.Context, id int32) (*domain.Bike, error) {
	query := `SELECT ` + bikeColumns + ` FROM bikes WHERE id = $1`
	b, err := scanBike(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapNotFound(err)
	}
	return b, nil
}

func (r *bikeRepository) GetByReference(ctx context.Context, reference string) (*domain.Bike, error) {
	query := `SELECT ` + bikeColumns + ` FROM bikes WHERE reference = $1`
	b, err := scanBike(r.db.QueryRowContext(ctx, query, reference))
	if err != nil {
		return nil, mapNotFound(err)
	}
	return b, nil
}

func (r *bikeRepository) Update(ctx context.Context, b *domain.Bike) error {
	// The reference is immutable after assignment and is never updated here.
	query := `UPDATE bikes SET category_id=$1, name=$2, brand=$3, model=$4, frame_size=$5, wheel_size=$6, color=$7,
	            weight_kg=$8, year=$9, description=$10, purchase_price=$11, sale_price=$12, available_for_rent=$13,
	            rental_price_hour=$14, rental_price_day=$15, rental_price_week=$16, rental_price_month=$17,
	            status=$18, updated_on=$19
	          WHERE id=$20`
	res, err := r.db.ExecContext(ctx, query, b.CategoryID, b.Name, b.Brand, b.Model, b.FrameSize, b.WheelSize, b.Color,
		b.WeightKg, b.Year, b.Description, b.PurchasePrice, b.SalePrice, b.AvailableForRent,
		b.RentalPriceHour, b.RentalPriceDay, b.RentalPriceWeek, b.RentalPriceMonth,
		b.Status, time.Now(), b.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *bikeRepository) UpdateStatus(ctx context.Context, id int32, status domain.BikeStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE bikes SET status=$1, updated_on=$2 WHERE id=$3`, status, time.Now(), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *bikeRepository) List(ctx context.Context, categoryID int32, status domain.BikeStatus, page, pageSize int32) ([]domain.Bike, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + bikeColumns + ` FROM bikes WHERE 1=1`

	args := []interface{}{}
	argIdx := 1
	if categoryID != 0 {
		query += fmt.Sprintf(" AND category_id = $%d", argIdx)
		args = append(args, categoryID)
		argIdx++
	}
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

	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var bikes []domain.Bike
	for rows.Next() {
		b, err := scanBike(rows)
		if err != nil {
			return nil, 0, err
		}
		bikes = append(bikes, *b)
	}
	return bikes, count, rows.Err()
}

const refreshRollupsSet = `active_contract_id = (
	SELECT c.id FROM rental_contracts c
	WHERE c.bike_id = bikes.id AND c.status = 'ongoing'
	ORDER BY c.id LIMIT 1
), rental_count = (
	SELECT count(*) FROM rental_contracts c WHERE c.bike_id = bikes.id
)`

func (r *bikeRepository) RefreshRollups(ctx context.Context, bikeID int32) error {
	_, err := r.db.ExecContext(ctx, `UPDATE bikes SET `+refreshRollupsSet+` WHERE id = $1`, bikeID)
	return err
}

func (r *bikeRepository) RefreshAllRollups(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE bikes SET `+refreshRollupsSet)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
