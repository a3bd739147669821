package postgres

import (
	"context"
	"database/sql"

	"bikeshop-backend/internal/domain"
	"bikeshop-backend/internal/repository"
)

type auditLogRepository struct {
	db *sql.DB
}

func NewAuditLogRepository(db *sql.DB) repository.AuditLogRepository {
	return &auditLogRepository{db: db}
}

func (r *auditLogRepository) Record(ctx context.Context, entries []domain.ChangeEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO change_log (id, entity, entity_id, field, old_value, new_value, changed_by, changed_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, e.ID, e.Entity, e.EntityID, e.Field, e.OldValue, e.NewValue, e.ChangedBy, e.ChangedOn); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *auditLogRepository) ListByEntity(ctx context.Context, entity string, entityID int32) ([]domain.ChangeEntry, error) {
	query := `SELECT id, entity, entity_id, field, old_value, new_value, changed_by, changed_on
		FROM change_log WHERE entity = $1 AND entity_id = $2 ORDER BY changed_on DESC`
	rows, err := r.db.QueryContext(ctx, query, entity, entityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.ChangeEntry
	for rows.Next() {
		var e domain.ChangeEntry
		if err := rows.Scan(&e.ID, &e.Entity, &e.EntityID, &e.Field, &e.OldValue, &e.NewValue, &e.ChangedBy, &e.ChangedOn); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
