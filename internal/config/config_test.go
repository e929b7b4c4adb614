package config

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		envServerAddress, envCatalogBaseURL, envJWTSecretKey, envSessionExpire,
		envRequestTimeout, envDetailConcurrency, envLogLevel,
	} {
		t.Setenv(key, "") // пустое значение считается незаданным
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.ServerAddress)
	assert.Equal(t, "https://frontend-take-home-service.fetch.com", cfg.CatalogBaseURL)
	assert.Equal(t, time.Hour, cfg.SessionExpire)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 10, cfg.DetailConcurrency)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.GeneratedSecret)

	key, err := base64.StdEncoding.DecodeString(cfg.JWTSecretKey)
	require.NoError(t, err)
	assert.Len(t, key, 32)
}

func TestLoadConfig_EnvOverridesFlags(t *testing.T) {
	clearEnv(t)
	secret := base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))
	t.Setenv(envServerAddress, ":9090")
	t.Setenv(envCatalogBaseURL, "http://catalog.local/")
	t.Setenv(envJWTSecretKey, secret)
	t.Setenv(envSessionExpire, "30m")
	t.Setenv(envRequestTimeout, "3s")
	t.Setenv(envDetailConcurrency, "4")
	t.Setenv(envLogLevel, "debug")

	cfg, err := LoadConfig([]string{"-a", "localhost:7070", "-request-timeout", "1s"})
	require.NoError(t, err)

	assert.Equal(t, "localhost:9090", cfg.ServerAddress)
	assert.Equal(t, "http://catalog.local", cfg.CatalogBaseURL)
	assert.Equal(t, secret, cfg.JWTSecretKey)
	assert.False(t, cfg.GeneratedSecret)
	assert.Equal(t, 30*time.Minute, cfg.SessionExpire)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 4, cfg.DetailConcurrency)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_Invalid(t *testing.T) {
	validSecret := base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))

	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{name: "короткий ключ", env: map[string]string{envJWTSecretKey: base64.StdEncoding.EncodeToString([]byte("short"))}},
		{name: "ключ не base64", env: map[string]string{envJWTSecretKey: "%%%"}},
		{name: "кривая длительность", env: map[string]string{envSessionExpire: "soon"}},
		{name: "нулевой таймаут", env: map[string]string{envRequestTimeout: "0s"}},
		{name: "параллелизм не число", env: map[string]string{envDetailConcurrency: "many"}},
		{name: "параллелизм ноль", env: map[string]string{envDetailConcurrency: "0"}},
		{name: "адрес каталога без схемы", env: map[string]string{envCatalogBaseURL: "catalog.local"}},
		{name: "неизвестный флаг", args: []string{"-unknown"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(envJWTSecretKey, validSecret)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadConfig(tt.args)
			assert.Error(t, err)
		})
	}
}
