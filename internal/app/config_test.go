package app

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/AlexLPinheiro/SistemaLoja/internal/testing/guard"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("CSRF_SECRET", "segredo-de-teste")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, ":8080", cfg.AppAddr)
	assert.Equal(t, "http://127.0.0.1:8000/api", cfg.APIBaseURL)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigRequiresCSRFSecret(t *testing.T) {
	os.Unsetenv("CSRF_SECRET")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestIsProduction(t *testing.T) {
	t.Setenv("CSRF_SECRET", "segredo-de-teste")
	t.Setenv("APP_ENV", "production")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}

func TestInTestModeHonorsGuard(t *testing.T) {
	// The blank guard import above sets the flag before anything runs.
	RefreshTestMode()
	assert.True(t, InTestMode())
}
