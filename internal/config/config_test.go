package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, AuthSchemePlaceholder, cfg.Auth.Scheme)
	assert.Equal(t, DefaultSecret, cfg.Auth.Secret)
	assert.Equal(t, 3600, cfg.Auth.ExpireSeconds)
	assert.Equal(t, PointsSourceDemo, cfg.Achievements.Source)
	assert.Equal(t, 1860, cfg.Achievements.DemoPoints)
	assert.Empty(t, cfg.Database.URL)
	assert.Empty(t, cfg.File)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
server:
  port: "9000"
  mode: release
database:
  url: "sqlite://portal.db"
  name: portal
auth:
  scheme: jwt
  secret: a-very-long-secret-for-release-mode-tokens
achievements:
  source: database
config:
  watch: true
`)
	t.Setenv("PORT", "9100")
	t.Setenv("DATABASE_NAME", "from-env")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "sqlite://portal.db", cfg.Database.URL)
	assert.Equal(t, "from-env", cfg.Database.Name)
	assert.Equal(t, AuthSchemeJWT, cfg.Auth.Scheme)
	assert.Equal(t, PointsSourceDatabase, cfg.Achievements.Source)
	assert.True(t, cfg.Watch.Watch)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), cfg.File)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"scheme":      "auth:\n  scheme: oauth\n",
		"mode":        "server:\n  mode: staging\n",
		"source":      "achievements:\n  source: redis\n",
		"expiry":      "auth:\n  expire_seconds: 0\n",
		"points":      "achievements:\n  demo_points: -5\n",
		"weak secret": "server:\n  mode: release\nauth:\n  scheme: jwt\n  secret: short\n",
		"bad yaml":    "server: [\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, content)
			_, err := LoadConfig(dir)
			assert.Error(t, err)
		})
	}
}

func TestEnvSelectsAuthScheme(t *testing.T) {
	t.Setenv("AUTH_SCHEME", "jwt")
	t.Setenv("AUTH_SECRET", "env-secret")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, AuthSchemeJWT, cfg.Auth.Scheme)
	assert.Equal(t, "env-secret", cfg.Auth.Secret)
}
