package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email":        "must be a valid email",
	"min":          "must be at least %s",
	"max":          "must be at most %s",
	"len":          "must be %s characters long",
	"oneof":        "must be one of [%s]",
	"gt":           "must be greater than %s",
	"gte":          "must be greater than or equal to %s",
	"lt":           "must be less than %s",
	"lte":          "must be less than or equal to %s",
	"gtfield":      "must be after %s",
	"dive":         "contains an invalid item",
	"password":     "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"phone_number": "phone number must contain 8 to 15 digits with an optional leading '+'",
	"object_id":    "must be a valid object ID",
	"tooth_number": "must be a valid FDI tooth number (11-48, 51-85) or 0 for the whole mouth",
	"branch_code":  "must contain 2 to 10 uppercase letters or digits",
	"datetime":     "must follow the format %s",
	"ne":           "must not be %s",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"len":      true,
	"gt":       true,
	"gte":      true,
	"lt":       true,
	"lte":      true,
	"gtfield":  true,
	"oneof":    true,
	"datetime": true,
	"ne":       true,
}

// Error messages for clients
const (
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientAccountInactive               = "your account is deactivated, please contact the administrator"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidID                     = "the given %s is not a valid ID"
	ErrClientNotFound                      = "%s not found"
	ErrClientAlreadyExists                 = "%s already exists"
	ErrClientInvalidFile                   = "the file you uploaded does not meet the specified standards"
	ErrClientTooManyRequests               = "too many requests, please try again later"
	ErrClientAppointmentOverlap            = "the dentist already has an appointment in this time range"
	ErrClientAppointmentInvalidTransition  = "appointment cannot move from %s to %s"
	ErrClientAppointmentNotEditable        = "completed or cancelled appointments cannot be changed"
	ErrClientAppointmentNotDeletable       = "only scheduled appointments can be deleted"
	ErrClientInvalidTimeRange              = "end time must be after start time"
	ErrClientNotDentist                    = "the selected staff member is not an active dentist"
	ErrClientInvoiceNotPayable             = "invoice with status %s cannot receive payments"
	ErrClientInvoiceNotCancellable         = "invoice is already cancelled"
	ErrClientDiscountExceedsSubtotal       = "discount cannot exceed the invoice subtotal"
	ErrClientInsufficientCredit            = "patient credit balance is not sufficient"
	ErrClientInsufficientStock             = "insufficient stock for product %s"
	ErrClientWithdrawalNotPending          = "withdrawal request has already been reviewed"
	ErrClientDocumentChanged               = "%s was changed by another request, reload it and try again"
	ErrClientSameBranchTransfer            = "source and destination branch must be different"
	ErrClientNegativeStock                 = "stock quantity cannot go negative"
	ErrClientInvalidToothNumber            = "tooth number must follow FDI notation"
	ErrClientTreatmentPriceMissing         = "unit price is required for items without a treatment"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotParseTime          = "cannot parse time into the given format"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevFailedToHashPassword     = "failed to hash password"
	ErrDevInvalidCredentials       = "invalid credentials"
	ErrDevAccountInactive          = "account is deactivated"
	ErrDevDocumentNotFound         = "%s document not found"
	ErrDevDocumentAlreadyExists    = "%s document already exists"
	ErrDevBusinessRuleViolated     = "business rule violated: %s"

	// SMTP
	ErrDevSMTPSendEmail = "failed to send email via SMTP client hostname %s"

	// Validation messages
	ErrDevValidationFailed     = "validation failed"
	ErrDevFileValidationFailed = "file validation failed"
	ErrDevURLParamIDValidation = "parameter %s validation failed"
	ErrDevQueryParamValidation = "query parameter %s validation failed"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalid          = "invalid token"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthInvalidSession        = "invalid session"
	ErrDevAuthPermissionDenied      = "permission denied for role %s on %s %s"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthEnforce               = "failed to evaluate authorization policy"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed when do delete document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"
	ErrDevDBFailedToCountDocuments   = "failed when counting documents on database"
	ErrDevDBFailedToAggregate        = "failed when running aggregation on database"
	ErrDevDBFailedToStartSession     = "failed to start database session"
	ErrDevDBTransactionFailed        = "database transaction failed"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"

	// Minio messages
	ErrDevMinioFailedToCreateObject          = "failed to create object into minio storage with bucket name '%s'"
	ErrDevMinioFailedToGetObjectPresignedURL = "failed to get object URL from minio storage with bucket name '%s'"

	// Redis messages
	ErrDevRedisSetData        = "failed to SET data into redis"
	ErrDevRedisGetData        = "failed to GET data from redis"
	ErrDevRedisDeleteData     = "failed to DELETE data from redis"
	ErrDevRedisIncrementValue = "failed to INCR data in redis"
	ErrDevRedisSetNX          = "failed to SETNX data into redis"
	ErrDevRedisExpire         = "failed to EXPIRE key in redis"
	ErrDevRedisUnlock         = "failed to release redis lock"

	// Messaging messages
	ErrDevRabbitMQPublishMessage = "failed to publish message into rabbitmq queue %s"
	ErrDevKafkaPublishMessage    = "failed to publish message into kafka topic %s"

	// Report messages
	ErrDevReportBuildWorkbook = "failed to build report workbook"

	// Server messages
	ErrDevServerProcess          = "server failed to process something related to machine system"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServerParseSessionData = "failed to parse session data"
	ErrDevServerPanicRecovered   = "panic recovered while serving request"
	ErrDevRequestLimitExceeded   = "request limit exceeded"
)
