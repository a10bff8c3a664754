package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "DNTL_SVC_"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
	AppDefaultPage         = 1
	AppDefaultPageSize     = 10
	AppMaxPageSize         = 100
)

const (
	RoleAdmin            = "admin"
	RoleDentist          = "dentist"
	RoleReceptionist     = "receptionist"
	RoleInventoryManager = "inventory_manager"
)

const (
	PatientFileNumberFormat = "P-%s-%s"
	InvoiceNumberFormat     = "INV-%s-%s"
)
