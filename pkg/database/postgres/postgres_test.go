package postgres

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{Host: "db", Port: "5432", User: "u", Password: "p", DBName: "site", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=site sslmode=disable", cfg.DSN())
}

func TestMigrate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS site_settings").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, Migrate(sqlx.NewDb(db, "pgx")))
	assert.NoError(t, mock.ExpectationsWereMet())
}
