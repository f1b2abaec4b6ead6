package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// unset clears an env var for the test while keeping t.Setenv's restore.
func unset(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadDefaults(t *testing.T) {
	unset(t, "PORT")
	unset(t, "DATABASE_URL")
	unset(t, "DATABASE_NAME")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8000", cfg.Port)
	require.Equal(t, "", cfg.DatabaseURL)
	require.Equal(t, "bespoke_cakes", cfg.DatabaseName)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9001")
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "cakes_test")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "9001", cfg.Port)
	require.Equal(t, "mongodb://localhost:27017", cfg.DatabaseURL)
	require.Equal(t, "cakes_test", cfg.DatabaseName)
}
