package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"port": 8080,
		"database_url": "postgres://localhost/careergpt",
		"rate_limit_rps": 2.5,
		"fetch_timeout_seconds": 15,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "postgres://localhost/careergpt", cfg.DatabaseURL)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, 15, cfg.FetchTimeoutSeconds)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_PortRange(t *testing.T) {
	cfg := &Config{Port: 70000}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "'port'")
}

func TestValidate_NegativeValues(t *testing.T) {
	cfg := &Config{FetchTimeoutSeconds: -1}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "non-negative")

	cfg = &Config{RateLimitRPS: -0.5}
	err = cfg.Validate()
	assert.Error(t, err)
}

func TestValidate_MissingBanksFile(t *testing.T) {
	cfg := &Config{BanksPath: "/nonexistent/banks.json"}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "question banks file not found")
}

func TestValidate_Defaults(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate())
}

func TestFromEnv_FillsEmptyFields(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://env/db")
	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg := &Config{DatabaseURL: "postgres://file/db"}
	require.NoError(t, cfg.FromEnv())

	assert.Equal(t, 9090, cfg.Port)
	// File value wins over environment
	assert.Equal(t, "postgres://file/db", cfg.DatabaseURL)
	assert.Equal(t, "env-key", cfg.GeminiAPIKey)
}

func TestFromEnv_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	cfg := &Config{}
	err := cfg.FromEnv()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid PORT")
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{Port: 8080}
	defaults := Config{
		Port:        3000,
		DatabaseURL: "postgres://default/db",
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, 8080, merged.Port)
	assert.Equal(t, "postgres://default/db", merged.DatabaseURL)
	// Rate limit defaults apply when neither side sets them
	assert.Equal(t, 5.0, merged.RateLimitRPS)
	assert.Equal(t, 10, merged.RateLimitBurst)
}
