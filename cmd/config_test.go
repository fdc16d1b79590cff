package cmd

import (
	"testing"
	"time"

	"storefront/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	config, err := ConfigFromEnv(env(map[string]string{
		"DB_USER":    "shop",
		"DB_NAME":    "storefront",
		"JWT_SECRET": "secret",
	}))
	require.NoError(t, err)

	assert.Equal(t, "8080", config.HTTPPort)
	assert.Equal(t, 587, config.SMTPPort)
	assert.Equal(t, 24*time.Hour, config.JWTTTL)
	assert.Equal(t, 10*time.Minute, config.RegistrationCodeTTL)
	assert.Equal(t, jobs.DefaultOverdueSchedule, config.OverdueSchedule)
	assert.Equal(t, "order.changed", config.KafkaOrderChangedTopic)
	assert.Empty(t, config.KafkaBrokers())
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	config, err := ConfigFromEnv(env(map[string]string{
		"HTTP_PORT":             "9000",
		"DB_HOST":               "db",
		"DB_PORT":               "6543",
		"DB_USER":               "shop",
		"DB_PASSWORD":           "p@ss word",
		"DB_NAME":               "storefront",
		"DB_SSLMODE":            "require",
		"KAFKA_HOST":            "k1:9092, k2:9092,",
		"SMTP_PORT":             "2525",
		"JWT_SECRET":            "secret",
		"JWT_TTL":               "1h",
		"REGISTRATION_CODE_TTL": "5m",
		"OVERDUE_SCHEDULE":      "*/15 * * * *",
	}))
	require.NoError(t, err)

	assert.Equal(t, "9000", config.HTTPPort)
	assert.Equal(t, 2525, config.SMTPPort)
	assert.Equal(t, time.Hour, config.JWTTTL)
	assert.Equal(t, 5*time.Minute, config.RegistrationCodeTTL)
	assert.Equal(t, "*/15 * * * *", config.OverdueSchedule)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, config.KafkaBrokers())
	assert.Equal(t, "postgres://shop:p%40ss%20word@db:6543/storefront?sslmode=require", config.DSN())
}

func TestConfigFromEnv_Errors(t *testing.T) {
	_, err := ConfigFromEnv(env(map[string]string{
		"SMTP_PORT": "smtp",
		"JWT_TTL":   "forever",
	}))
	require.Error(t, err)

	assert.ErrorContains(t, err, "missing required settings: DB_NAME, DB_USER, JWT_SECRET")
	assert.ErrorContains(t, err, "SMTP_PORT")
	assert.ErrorContains(t, err, "JWT_TTL")
}
