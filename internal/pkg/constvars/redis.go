package constvars

const (
	RedisKeyBranchList        = "branches:list"
	RedisKeySessionFormat     = "session:%s"
	RedisKeyFailedLoginGroup  = "login:failed"
	RedisKeyStatisticsFormat  = "statistics:%s:%s:%s"
	RedisKeyReminderWorker    = "worker:appointment_reminder:leader"
	RedisKeyStockAlertWorker  = "worker:stock_alert:leader"
	RedisKeyExpiryAlertWorker = "worker:batch_expiry:leader"
)
