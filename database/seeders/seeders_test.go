package seeders_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/salesdesk/app/repositories"
	"github.com/shashiranjanraj/salesdesk/config"
	"github.com/shashiranjanraj/salesdesk/database/schema"
	"github.com/shashiranjanraj/salesdesk/database/seeders"
	"github.com/shashiranjanraj/salesdesk/pkg/database"
)

func TestRunAllSeedsCatalogueOnce(t *testing.T) {
	ctx := context.Background()
	db, err := database.Open(config.DatabaseConfig{Driver: "sqlite", DSN: filepath.Join(t.TempDir(), "seed.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, schema.Bootstrap(ctx, db))

	var out bytes.Buffer
	require.NoError(t, seeders.RunAll(db, &out))
	require.NoError(t, seeders.RunAll(db, &out))
	assert.Contains(t, out.String(), "Running seeder: catalogue")

	products, err := repositories.NewProductRepository(db).All(ctx)
	require.NoError(t, err)
	require.Len(t, products, len(seeders.Catalogue))
	assert.Equal(t, "Bread", products[0].Name)
}
