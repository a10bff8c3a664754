package constvars

const (
	URLParamUserID        = "user_id"
	URLParamBranchID      = "branch_id"
	URLParamPatientID     = "patient_id"
	URLParamAppointmentID = "appointment_id"
	URLParamFindingID     = "finding_id"
	URLParamTreatmentID   = "treatment_id"
	URLParamInvoiceID     = "invoice_id"
	URLParamProductID     = "product_id"
	URLParamWithdrawalID  = "withdrawal_id"
	URLParamAttachmentID  = "attachment_id"
)

const (
	URLQueryParamSearch    = "search"
	URLQueryParamPage      = "page"
	URLQueryParamPageSize  = "page_size"
	URLQueryParamRole      = "role"
	URLQueryParamStatus    = "status"
	URLQueryParamBranchID  = "branch_id"
	URLQueryParamPatientID = "patient_id"
	URLQueryParamDentistID = "dentist_id"
	URLQueryParamProductID = "product_id"
	URLQueryParamFrom      = "from"
	URLQueryParamTo        = "to"
	URLQueryParamDays      = "days"
)
