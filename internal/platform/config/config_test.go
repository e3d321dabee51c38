package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_DSN", "")
	t.Setenv("SEARCH_REQUIRE_FILTER", "")
	t.Setenv("DB_QUERY_TIMEOUT", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Empty(t, cfg.DBDSN)
	assert.True(t, cfg.SearchRequireFilter)
	assert.Equal(t, 5*time.Second, cfg.DBQueryTimeout)
	assert.Equal(t, 10, cfg.DBMaxOpenConns)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SEARCH_REQUIRE_FILTER", "false")
	t.Setenv("DB_QUERY_TIMEOUT", "2s")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.False(t, cfg.SearchRequireFilter)
	assert.Equal(t, 2*time.Second, cfg.DBQueryTimeout)
}

func TestLoad_DotEnvFile(t *testing.T) {
	// t.Setenv registra la restauración; después lo quitamos para que godotenv lo cargue.
	t.Setenv("COLUMNS_FILE", "")
	os.Unsetenv("COLUMNS_FILE")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("COLUMNS_FILE=/etc/columnas.yaml\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/etc/columnas.yaml", cfg.ColumnsFile)
}
