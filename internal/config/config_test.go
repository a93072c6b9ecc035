package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "dbcontas", cfg.Database.DBName)
	assert.Equal(t, "http://localhost:5000", cfg.Prediction.URL)
	assert.Equal(t, 5*time.Second, cfg.Prediction.Timeout)
	assert.Equal(t, "http://localhost:3000", cfg.CORS.AllowedOrigin)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PREDICTION_URL", "http://ml:5000")
	t.Setenv("PREDICTION_TIMEOUT", "2s")
	t.Setenv("LOG_FORMAT", "text")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "http://ml:5000", cfg.Prediction.URL)
	assert.Equal(t, 2*time.Second, cfg.Prediction.Timeout)
	assert.Equal(t, "text", cfg.Logger.Format)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := Load()
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "empty port", mutate: func(c *Config) { c.Server.Port = "" }},
		{name: "empty db host", mutate: func(c *Config) { c.Database.Host = "" }},
		{name: "empty db name", mutate: func(c *Config) { c.Database.DBName = "" }},
		{name: "empty prediction url", mutate: func(c *Config) { c.Prediction.URL = "" }},
		{name: "zero prediction timeout", mutate: func(c *Config) { c.Prediction.Timeout = 0 }},
		{name: "bad log level", mutate: func(c *Config) { c.Logger.Level = "verbose" }},
		{name: "bad log format", mutate: func(c *Config) { c.Logger.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "postgres",
		Password: "secret",
		DBName:   "dbcontas",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=secret dbname=dbcontas sslmode=disable",
		cfg.DSN(),
	)
}
