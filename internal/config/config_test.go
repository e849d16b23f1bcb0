package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("testdata-does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "soilcard", cfg.MongoDB.DBName)
	assert.Equal(t, "Delhi", cfg.Weather.DefaultCity)
	assert.Equal(t, "gemini-pro", cfg.AI.Model)
	assert.Equal(t, []string{"admin@greencoders.com"}, cfg.Auth.AdminEmails)
	assert.Equal(t, "0 6 * * *", cfg.Snapshot.CronSchedule)
}

func TestValidateRejectsMissingFields(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	cfg.Server.Port = ""
	assert.Error(t, cfg.Validate())

	cfg, _ = Load("")
	cfg.MongoDB.URI = ""
	assert.Error(t, cfg.Validate())

	cfg, _ = Load("")
	cfg.Auth.AdminEmails = nil
	assert.Error(t, cfg.Validate())

	var nilCfg *Config
	assert.Error(t, nilCfg.Validate())
}

func TestAdminEmailListSplitting(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", "a@x.com, b@y.com ,,c@z.com")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, []string{"a@x.com", "b@y.com", "c@z.com"}, cfg.Auth.AdminEmails)
}
