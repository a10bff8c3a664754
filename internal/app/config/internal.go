package config

type InternalConfig struct {
	App          App             `mapstructure:"app"`
	JWT          AppJWT          `mapstructure:"jwt"`
	RBAC         AppRBAC         `mapstructure:"rbac"`
	Attachment   AppAttachment   `mapstructure:"attachment"`
	Notification AppNotification `mapstructure:"notification"`
	Inventory    AppInventory    `mapstructure:"inventory"`
	Statistics   AppStatistics   `mapstructure:"statistics"`
	Worker       AppWorker       `mapstructure:"worker"`
}

type App struct {
	Env                         string `mapstructure:"env"`
	Port                        string `mapstructure:"port"`
	Version                     string `mapstructure:"version"`
	Address                     string `mapstructure:"address"`
	Timezone                    string `mapstructure:"timezone"`
	EndpointPrefix              string `mapstructure:"endpoint_prefix"`
	MaxRequests                 int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds    int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestBodyLimitInMegabyte  int    `mapstructure:"request_body_limit_in_megabyte"`
	LoginRatePerSecond          int    `mapstructure:"login_rate_per_second"`
	LoginBurst                  int    `mapstructure:"login_burst"`
	LoginBlockDurationInMinutes int    `mapstructure:"login_block_duration_in_minutes"`
	MaxFailedLogins             int    `mapstructure:"max_failed_logins"`
	FailedLoginWindowInMinutes  int    `mapstructure:"failed_login_window_in_minutes"`
}

type AppJWT struct {
	Secret        string `mapstructure:"secret"`
	ExpTimeInHour int    `mapstructure:"exp_time_in_hour"`
}

type AppRBAC struct {
	ModelPath  string `mapstructure:"model_path"`
	PolicyPath string `mapstructure:"policy_path"`
}

type AppAttachment struct {
	MaxUploadSizeInMB           int64    `mapstructure:"max_upload_size_in_mb"`
	AllowedContentTypes         []string `mapstructure:"allowed_content_types"`
	PresignedURLExpiryInMinutes int      `mapstructure:"presigned_url_expiry_in_minutes"`
}

type AppNotification struct {
	Queue                 string `mapstructure:"queue"`
	ConsumerEnabled       bool   `mapstructure:"consumer_enabled"`
	ReminderWindowInHours int    `mapstructure:"reminder_window_in_hours"`
	// ReminderCronSpec defines the cron expression for the reminder worker (e.g., "@every 15m")
	ReminderCronSpec   string `mapstructure:"reminder_cron_spec"`
	InventoryRecipient string `mapstructure:"inventory_recipient"`
}

type AppInventory struct {
	LowStockCronSpec  string `mapstructure:"low_stock_cron_spec"`
	ExpiryCronSpec    string `mapstructure:"expiry_cron_spec"`
	ExpiryWarningDays int    `mapstructure:"expiry_warning_days"`
}

type AppStatistics struct {
	CacheTTLInMinutes  int `mapstructure:"cache_ttl_in_minutes"`
	TopTreatmentsLimit int `mapstructure:"top_treatments_limit"`
}

type AppWorker struct {
	LockTTLInSeconds int `mapstructure:"lock_ttl_in_seconds"`
}
