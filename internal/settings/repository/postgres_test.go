package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fekuna/omnipos-site-service/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*PGRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPGRepository(sqlx.NewDb(db, "pgx")), mock
}

func TestPGRepository_FindByTenant(t *testing.T) {
	repo, mock := newMockRepo(t)
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "tenant_id", "business_type", "document", "created_at", "updated_at"}).
		AddRow("rec-1", "t1", "plumber", []byte(`{"businessType":"plumber"}`), created, created)
	mock.ExpectQuery(regexp.QuoteMeta("FROM site_settings WHERE tenant_id = $1")).
		WithArgs("t1").
		WillReturnRows(rows)

	got, err := repo.FindByTenant(context.Background(), "t1")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "rec-1", got.ID)
	assert.Equal(t, "plumber", got.BusinessType)
	assert.JSONEq(t, `{"businessType":"plumber"}`, string(got.Document))
	assert.Equal(t, created, got.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepository_FindByTenantMissing(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM site_settings WHERE tenant_id = $1")).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	got, err := repo.FindByTenant(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepository_FindByTenantError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("FROM site_settings").WillReturnError(errors.New("conn reset"))

	_, err := repo.FindByTenant(context.Background(), "t1")
	assert.ErrorContains(t, err, "conn reset")
}

func TestPGRepository_Upsert(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (tenant_id) DO UPDATE")).
		WithArgs("rec-1", "t1", "hvac", sqlmock.AnyArg(), now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Upsert(context.Background(), &model.SettingsRecord{
		BaseModel:    model.BaseModel{ID: "rec-1", CreatedAt: now, UpdatedAt: now},
		TenantID:     "t1",
		BusinessType: "hvac",
		Document:     []byte(`{"businessType":"hvac"}`),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
