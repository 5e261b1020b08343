package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"geocoder": map[string]any{
			"apiKey":        "",
			"ratePerSecond": 5,
		},
		"geoCache": map[string]any{
			"backend": "postgres",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "GEOCODER_APIKEY", want: "geocoder.apiKey"},
		{envKey: "GEOCODER_RATEPERSECOND", want: "geocoder.ratePerSecond"},
		{envKey: "GEOCACHE_BACKEND", want: "geoCache.backend"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_YAMLWithEnvOverride(t *testing.T) {
	dir := t.TempDir()
	yamlBody := `
env:
  env: test
  serviceName: foodcart
http:
  port: 8080
  timeouts:
    readTimeout: 5s
geocoder:
  baseUrl: https://geocode.example.test/1.x
  apiKey: from-file
  timeout: 3s
  ratePerSecond: 5
  burst: 2
geoCache:
  backend: memory
resolver:
  workers: 4
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(yamlBody), 0o600))
	t.Chdir(dir)
	t.Setenv("GEOCODER_APIKEY", "from-env")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "foodcart", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	require.NotNil(t, cfg.Geocoder)
	assert.Equal(t, "from-env", cfg.Geocoder.APIKey)
	assert.Equal(t, 3*time.Second, cfg.Geocoder.Timeout)
	assert.InDelta(t, 5.0, cfg.Geocoder.RatePerSecond, 1e-9)
	require.NotNil(t, cfg.GeoCache)
	assert.Equal(t, "memory", cfg.GeoCache.Backend)
	require.NotNil(t, cfg.Resolver)
	assert.Equal(t, 4, cfg.Resolver.Workers)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}
