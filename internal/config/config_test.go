package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig()
	require.NoError(t, err)

	assert.Equal(t, "/blogs-api/v1", cfg.APIPrefix)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 10*time.Minute, cfg.ResetTokenTTL)
	assert.True(t, cfg.CookieSecure)
	assert.False(t, cfg.ConcealUnknownEmail)
	assert.Equal(t, "log", cfg.MailTransport)
	assert.Equal(t, "local", cfg.StorageType)
}

func TestParseConfigFromEnv(t *testing.T) {
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("COOKIE_SECURE", "false")
	t.Setenv("AUTH_CONCEAL_UNKNOWN_EMAIL", "true")
	t.Setenv("MAIL_TRANSPORT", "smtp")

	cfg, err := ParseConfig()
	require.NoError(t, err)

	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.CookieSecure)
	assert.True(t, cfg.ConcealUnknownEmail)
	assert.Equal(t, "smtp", cfg.MailTransport)
}

func TestParseConfigRejectsBadDuration(t *testing.T) {
	t.Setenv("RESET_TOKEN_TTL", "soon")

	_, err := ParseConfig()
	assert.Error(t, err)
}
