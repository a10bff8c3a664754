package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func init() {
	godotenv.Load()
}

// newViper builds a reader over the optional file named by CONFIG_PATH and
// the environment. Nested keys map to env names by replacing dots with
// underscores, so "app.port" is read from APP_PORT.
func newViper() (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	registerDefaults(v)

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file, path = %s, err = %s", path, err.Error())
		}
	}
	return v, nil
}

func NewDriverConfig() (*DriverConfig, error) {
	v, err := newViper()
	if err != nil {
		return nil, err
	}

	cfg := new(DriverConfig)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal driver config: %w", err)
	}
	return cfg, nil
}

func NewInternalConfig() (*InternalConfig, error) {
	v, err := newViper()
	if err != nil {
		return nil, err
	}

	cfg := new(InternalConfig)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal internal config: %w", err)
	}
	return cfg, nil
}

func registerDefaults(v *viper.Viper) {
	// drivers
	v.SetDefault("mongodb.host", "localhost")
	v.SetDefault("mongodb.port", "27017")
	v.SetDefault("mongodb.username", "dental")
	v.SetDefault("mongodb.password", "dental")
	v.SetDefault("mongodb.db_name", "dental_clinic")
	v.SetDefault("mongodb.replica_set", "rs0")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.output_file_name", "logger.log")
	v.SetDefault("logger.output_error_file_name", "logger_error.log")

	v.SetDefault("rabbitmq.host", "localhost")
	v.SetDefault("rabbitmq.port", "5672")
	v.SetDefault("rabbitmq.username", "guest")
	v.SetDefault("rabbitmq.password", "guest")

	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.client_id", "dental-clinic-service")
	v.SetDefault("kafka.topic", "clinic.events")

	v.SetDefault("minio.host", "localhost")
	v.SetDefault("minio.port", "9000")
	v.SetDefault("minio.username", "minioadmin")
	v.SetDefault("minio.password", "minioadmin")
	v.SetDefault("minio.use_ssl", false)
	v.SetDefault("minio.bucket_name", "patient-attachments")

	v.SetDefault("smtp.host", "localhost")
	v.SetDefault("smtp.port", 2525)
	v.SetDefault("smtp.username", "")
	v.SetDefault("smtp.password", "")
	v.SetDefault("smtp.email_sender", "no-reply@dental.local")

	// application
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("app.version", "v1.0")
	v.SetDefault("app.address", "localhost")
	v.SetDefault("app.timezone", "UTC")
	v.SetDefault("app.endpoint_prefix", "/v1")
	v.SetDefault("app.max_requests", 20)
	v.SetDefault("app.shutdown_timeout_in_seconds", 10)
	v.SetDefault("app.request_body_limit_in_megabyte", 12)
	v.SetDefault("app.login_rate_per_second", 1)
	v.SetDefault("app.login_burst", 5)
	v.SetDefault("app.login_block_duration_in_minutes", 5)
	v.SetDefault("app.max_failed_logins", 5)
	v.SetDefault("app.failed_login_window_in_minutes", 15)

	v.SetDefault("jwt.secret", "change-me")
	v.SetDefault("jwt.exp_time_in_hour", 12)

	v.SetDefault("rbac.model_path", "resources/rbac_model.conf")
	v.SetDefault("rbac.policy_path", "resources/rbac_policy.csv")

	v.SetDefault("attachment.max_upload_size_in_mb", 10)
	v.SetDefault("attachment.allowed_content_types", []string{"image/jpeg", "image/png", "application/pdf", "application/dicom"})
	v.SetDefault("attachment.presigned_url_expiry_in_minutes", 15)

	v.SetDefault("notification.queue", "clinic_notifications")
	v.SetDefault("notification.consumer_enabled", true)
	v.SetDefault("notification.reminder_window_in_hours", 24)
	v.SetDefault("notification.reminder_cron_spec", "@every 15m")
	v.SetDefault("notification.inventory_recipient", "inventory@dental.local")

	v.SetDefault("inventory.low_stock_cron_spec", "0 7 * * *")
	v.SetDefault("inventory.expiry_cron_spec", "30 7 * * *")
	v.SetDefault("inventory.expiry_warning_days", 30)

	v.SetDefault("statistics.cache_ttl_in_minutes", 5)
	v.SetDefault("statistics.top_treatments_limit", 10)

	v.SetDefault("worker.lock_ttl_in_seconds", 300)
}
