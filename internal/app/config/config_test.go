package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInternalConfigDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	cfg, err := NewInternalConfig()
	require.NoError(t, err)

	assert.Equal(t, "/v1", cfg.App.EndpointPrefix)
	assert.Equal(t, 24, cfg.Notification.ReminderWindowInHours)
	assert.Equal(t, 30, cfg.Inventory.ExpiryWarningDays)
	assert.Contains(t, cfg.Attachment.AllowedContentTypes, "application/pdf")
	assert.Equal(t, "resources/rbac_model.conf", cfg.RBAC.ModelPath)
}

func TestNewInternalConfigFromEnv(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("JWT_EXP_TIME_IN_HOUR", "2")
	t.Setenv("NOTIFICATION_REMINDER_CRON_SPEC", "@hourly")
	t.Setenv("STATISTICS_CACHE_TTL_IN_MINUTES", "1")

	cfg, err := NewInternalConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, 2, cfg.JWT.ExpTimeInHour)
	assert.Equal(t, "@hourly", cfg.Notification.ReminderCronSpec)
	assert.Equal(t, 1, cfg.Statistics.CacheTTLInMinutes)
}

func TestNewDriverConfigFromEnv(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("MONGODB_HOST", "mongo.internal")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("SMTP_PORT", "587")

	cfg, err := NewDriverConfig()
	require.NoError(t, err)

	assert.Equal(t, "mongo.internal", cfg.MongoDB.Host)
	assert.Equal(t, "dental_clinic", cfg.MongoDB.DbName)
	assert.True(t, cfg.Kafka.Enabled)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 587, cfg.SMTP.Port)
}

func TestNewDriverConfigMissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", "does-not-exist.yaml")

	_, err := NewDriverConfig()
	assert.Error(t, err)
}
