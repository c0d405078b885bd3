package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, EnvDevelopment, cfg.Server.Env)
	assert.True(t, cfg.Server.IsDevelopment())
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.TrustedOrigins)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, TokenFormatJWT, cfg.Auth.TokenFormat)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenDuration)
	assert.Equal(t, uint32(3), cfg.Auth.Argon2.Time)
	assert.Equal(t, uint32(64*1024), cfg.Auth.Argon2.Memory)
	assert.Equal(t, uint8(4), cfg.Auth.Argon2.Threads)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected func(*Config)
	}{
		{
			name: "server overrides",
			envVars: map[string]string{
				"SERVER_PORT":     "9090",
				"APP_ENV":         "prod",
				"TRUSTED_ORIGINS": "https://a.example,https://b.example",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "9090", cfg.Server.Port)
				assert.False(t, cfg.Server.IsDevelopment())
				assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.TrustedOrigins)
			},
		},
		{
			name: "auth overrides",
			envVars: map[string]string{
				"JWT_SECRET":            "top-secret",
				"AUTH_TOKEN_FORMAT":     "paseto",
				"ACCESS_TOKEN_DURATION": "5m",
				"ARGON2_MEMORY":         "1024",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "top-secret", cfg.Auth.JWTSecret)
				assert.Equal(t, TokenFormatPaseto, cfg.Auth.TokenFormat)
				assert.Equal(t, 5*time.Minute, cfg.Auth.AccessTokenDuration)
				assert.Equal(t, uint32(1024), cfg.Auth.Argon2.Memory)
			},
		},
		{
			name: "database overrides",
			envVars: map[string]string{
				"DB_DRIVER":       "memory",
				"DB_HOST":         "db.internal",
				"DB_AUTO_MIGRATE": "false",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, DriverMemory, cfg.Database.Driver)
				assert.Equal(t, "db.internal", cfg.Database.Host)
				assert.False(t, cfg.Database.AutoMigrate)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			require.NoError(t, err)
			tt.expected(cfg)
		})
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "unknown env", key: "APP_ENV", val: "staging"},
		{name: "unknown driver", key: "DB_DRIVER", val: "mysql"},
		{name: "unknown token format", key: "AUTH_TOKEN_FORMAT", val: "saml"},
		{name: "non-positive ttl", key: "ACCESS_TOKEN_DURATION", val: "0s"},
		{name: "unparsable duration", key: "SERVER_READ_TIMEOUT", val: "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestLoad_MissingSecretIsNotFatal(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.Auth.JWTSecret)
}

func TestDatabaseConfig_ConnectionString(t *testing.T) {
	c := DatabaseConfig{Host: "h", Port: "1", User: "u", Password: "p", DBName: "d", SSLMode: "disable"}
	assert.Equal(t, "host=h port=1 user=u password=p dbname=d sslmode=disable", c.ConnectionString())
}
