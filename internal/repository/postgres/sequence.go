package postgres

import (
	"context"
	"database/sql"

	"bikeshop-backend/internal/repository"
)

type sequenceRepository struct {
	db *sql.DB
}

func NewSequenceRepository(db *sql.DB) repository.SequenceRepository {
	return &sequenceRepository{db: db}
}

// Next atomically increments and returns the named Postgres sequence.
// nextval never hands out the same value twice, across transactions or
// connections, which makes the sequence the single source of truth for
// reference assignment.
func (r *sequenceRepository) Next(ctx context.Context, name string) (int64, error) {
	var value int64
	err := r.db.QueryRowContext(ctx, `SELECT nextval($1)`, name).Scan(&value)
	return value, err
}
