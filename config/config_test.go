package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetApplicationConfig_Defaults(t *testing.T) {
	t.Setenv("ENV_PATH", filepath.Join(t.TempDir(), "missing.env"))

	v, err := InitConfig()
	require.NoError(t, err)

	cfg, err := GetApplicationConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "tts-utils", cfg.Name)
	assert.Equal(t, "pt-BR", cfg.Locale)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "0.0.0.0:9090", cfg.Address())
	assert.Equal(t, 4, cfg.DatasetConfig.Workers)
	assert.True(t, cfg.DatasetConfig.Lowercase)
	assert.False(t, cfg.IsProduction())
	assert.Empty(t, cfg.Stages())
}

func TestGetApplicationConfig_FromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.env")
	content := "ENVIRONMENT=production\nPORT=8081\nLOCALE=en-US\nNORMALIZERS=currency<|||>punctuation\nDATASET__WORKERS=8\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("ENV_PATH", path)

	v, err := InitConfig()
	require.NoError(t, err)

	cfg, err := GetApplicationConfig(v)
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, "en-US", cfg.Locale)
	assert.Equal(t, []string{"currency", "punctuation"}, cfg.Stages())
	assert.Equal(t, 8, cfg.DatasetConfig.Workers)
}

func TestGetApplicationConfig_Invalid(t *testing.T) {
	v := viper.NewWithOptions(viper.KeyDelimiter("__"))
	setDefault(v)
	v.Set("ENVIRONMENT", "staging")

	_, err := GetApplicationConfig(v)
	assert.Error(t, err)
}
