package migrations_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/salesdesk/config"
	_ "github.com/shashiranjanraj/salesdesk/database/migrations"
	"github.com/shashiranjanraj/salesdesk/database/schema"
	"github.com/shashiranjanraj/salesdesk/pkg/database"
	"github.com/shashiranjanraj/salesdesk/pkg/migration"
)

func TestRegisteredMigrationsBuildSchema(t *testing.T) {
	ctx := context.Background()
	db, err := database.Open(config.DatabaseConfig{Driver: "sqlite", DSN: filepath.Join(t.TempDir(), "mig.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	runner := migration.New(db, migration.WithOutput(&bytes.Buffer{}))
	require.NoError(t, runner.Run())
	assert.True(t, schema.Verify(ctx, db).OK())

	require.NoError(t, runner.Rollback())
	assert.Len(t, schema.Verify(ctx, db).MissingTables, len(schema.Required))
}
