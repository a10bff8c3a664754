package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingSessionDataKey        = "session_data"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration"
	LoggingQueueKey              = "queue"
	LoggingTopicKey              = "topic"
	LoggingEventTypeKey          = "event_type"
	LoggingNotificationTypeKey   = "notification_type"
	LoggingUserIDKey             = "user_id"
	LoggingRoleKey               = "role"
	LoggingBranchIDKey           = "branch_id"
	LoggingPatientIDKey          = "patient_id"
	LoggingAppointmentIDKey      = "appointment_id"
	LoggingInvoiceIDKey          = "invoice_id"
	LoggingProductIDKey          = "product_id"
	LoggingWithdrawalIDKey       = "withdrawal_id"
	LoggingAmountKey             = "amount"
	LoggingQuantityKey           = "quantity"
	LoggingCountKey              = "count"
	LoggingObjectKey             = "object_key"
	LoggingStatusKey             = "status"
	LoggingJobKey                = "job"
	LoggingCronSpecKey           = "cron_spec"
)
