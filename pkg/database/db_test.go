package database

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/salesdesk/config"
)

func openTemp(t *testing.T) config.DatabaseConfig {
	t.Helper()
	return config.DatabaseConfig{Driver: "sqlite", DSN: filepath.Join(t.TempDir(), "test.db")}
}

func TestSQLiteDSNEnablesForeignKeys(t *testing.T) {
	assert.Equal(t, "sales.db?_foreign_keys=on", sqliteDSN("sales.db"))
	assert.Equal(t, "sales.db?_fk=1", sqliteDSN("sales.db?_fk=1"))
	assert.Equal(t, "sales.db?_busy_timeout=500&_foreign_keys=on", sqliteDSN("sales.db?_busy_timeout=500"))
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(config.DatabaseConfig{Driver: "oracle", DSN: "x"})
	assert.ErrorContains(t, err, "unsupported DB_DRIVER")
}

func TestOpenSQLite(t *testing.T) {
	db, err := Open(openTemp(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	var fk int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&fk).Error)
	assert.Equal(t, 1, fk)
}

func TestConstraintClassificationOnSQLite(t *testing.T) {
	db, err := Open(openTemp(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, db.Exec("CREATE TABLE parents (id INTEGER PRIMARY KEY, code TEXT UNIQUE)").Error)
	require.NoError(t, db.Exec("CREATE TABLE children (id INTEGER PRIMARY KEY, parent_id INTEGER REFERENCES parents(id))").Error)
	require.NoError(t, db.Exec("INSERT INTO parents (id, code) VALUES (1, 'a')").Error)

	dup := db.Exec("INSERT INTO parents (id, code) VALUES (2, 'a')").Error
	require.Error(t, dup)
	assert.True(t, IsUniqueViolation(fmt.Errorf("wrapped: %w", dup)))
	assert.False(t, IsForeignKeyViolation(dup))

	orphan := db.Exec("INSERT INTO children (parent_id) VALUES (99)").Error
	require.Error(t, orphan)
	assert.True(t, IsForeignKeyViolation(orphan))
	assert.False(t, IsUniqueViolation(orphan))
}

func TestConstraintClassificationOtherDrivers(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	assert.True(t, IsUniqueViolation(&mysql.MySQLError{Number: 1062}))
	assert.True(t, IsForeignKeyViolation(&mysql.MySQLError{Number: 1452}))

	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsForeignKeyViolation(errors.New("disk I/O error")))
}

func TestOpenClosesPoolWhenCallbacksFail(t *testing.T) {
	var opened *gorm.DB
	registerCallbacks = func(db *gorm.DB) error {
		opened = db
		return errors.New("callback registration failed")
	}
	t.Cleanup(func() { registerCallbacks = instrument })

	db, err := Open(openTemp(t))
	require.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), "register callbacks")

	require.NotNil(t, opened)
	sqlDB, err := opened.DB()
	require.NoError(t, err)
	assert.EqualError(t, sqlDB.Ping(), "sql: database is closed")
}
