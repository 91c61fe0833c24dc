package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fekuna/omnipos-site-service/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindByTenant(ctx context.Context, tenantID string) (*model.SettingsRecord, error) {
	var record model.SettingsRecord
	query := `SELECT id, tenant_id, business_type, document, created_at, updated_at FROM site_settings WHERE tenant_id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &record, query, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// Upsert writes the whole document. The row id and created_at of an existing
// tenant row are left untouched.
func (r *PGRepository) Upsert(ctx context.Context, record *model.SettingsRecord) error {
	query := `
        INSERT INTO site_settings (id, tenant_id, business_type, document, created_at, updated_at)
        VALUES (:id, :tenant_id, :business_type, :document, :created_at, :updated_at)
        ON CONFLICT (tenant_id) DO UPDATE
        SET business_type = EXCLUDED.business_type,
            document = EXCLUDED.document,
            updated_at = EXCLUDED.updated_at
    `
	_, err := r.DB.NamedExecContext(ctx, query, record)
	return err
}
