package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withFiles(t *testing.T, appJSON, dotEnv string) {
	t.Helper()
	_ = Load()

	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "app.json")
	envPath := filepath.Join(dir, ".env")
	if appJSON != "" {
		require.NoError(t, os.WriteFile(jsonPath, []byte(appJSON), 0o600))
	}
	if dotEnv != "" {
		require.NoError(t, os.WriteFile(envPath, []byte(dotEnv), 0o600))
	}

	require.NoError(t, loadFromFiles(jsonPath, envPath))
	t.Cleanup(func() {
		mu.Lock()
		values = defaultValues()
		mu.Unlock()
	})
}

func TestDefaults(t *testing.T) {
	withFiles(t, "", "")

	assert.Equal(t, "sqlite", DatabaseDriver())
	assert.Equal(t, "sales.db", DatabaseDSN())
	assert.Equal(t, DatabaseConfig{Driver: "sqlite", DSN: "sales.db"}, Database())
}

func TestDotEnvOverridesAppJSON(t *testing.T) {
	withFiles(t,
		`{"db_path": "from-json.db", "app_env": "staging", "ignored": 5}`,
		"# comment\nDB_PATH=\"from-env.db\"\nnot a pair\n",
	)

	assert.Equal(t, "from-env.db", DatabaseDSN())
	assert.Equal(t, "staging", AppEnv())
}

func TestProcessEnvWins(t *testing.T) {
	withFiles(t, "", "DB_PATH=from-file.db\n")
	t.Setenv("DB_PATH", "/tmp/override.db")

	assert.Equal(t, "/tmp/override.db", Database().DSN)
}

func TestDSNOverrideAndDrivers(t *testing.T) {
	withFiles(t, "", "DB_DRIVER=postgres\n")
	assert.Equal(t, "postgres", DatabaseDriver())
	assert.Equal(t, defaultPostgresDSN, DatabaseDSN())

	t.Setenv("DATABASE_DSN", "postgres://example/sales")
	assert.Equal(t, "postgres://example/sales", DatabaseDSN())
}

func TestUnknownDriverFallsBackToSQLite(t *testing.T) {
	withFiles(t, "", "DB_DRIVER=oracle\n")
	assert.Equal(t, "sqlite", DatabaseDriver())
}

func TestMalformedAppJSON(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "app.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte("{"), 0o600))

	err := loadFromFiles(jsonPath, filepath.Join(dir, "missing.env"))
	assert.ErrorContains(t, err, "decode")
}
