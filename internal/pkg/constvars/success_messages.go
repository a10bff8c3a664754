package constvars

const (
	ResponseUnknown = "unknown"

	LoginSuccess  = "successfully login"
	LogoutSuccess = "successfully logout"

	GetProfileSuccessMessage = "get profile successfully"

	CreateUserSuccessMessage     = "user created successfully"
	UpdateUserSuccessMessage     = "user updated successfully"
	DeactivateUserSuccessMessage = "user deactivated successfully"
	GetUsersSuccessMessage       = "get users successfully"

	CreateBranchSuccessMessage = "branch created successfully"
	UpdateBranchSuccessMessage = "branch updated successfully"
	DeleteBranchSuccessMessage = "branch deleted successfully"
	GetBranchSuccessMessage    = "get branch successfully"
	GetBranchesSuccessMessage  = "get branches successfully"

	CreatePatientSuccessMessage        = "patient created successfully"
	UpdatePatientSuccessMessage        = "patient updated successfully"
	DeletePatientSuccessMessage        = "patient deleted successfully"
	GetPatientSuccessMessage           = "get patient successfully"
	GetPatientsSuccessMessage          = "get patients successfully"
	UploadAttachmentSuccessMessage     = "attachment uploaded successfully"
	GetAttachmentURLSuccessMessage     = "get attachment url successfully"
	GetPatientCreditSuccessMessage     = "get patient credit successfully"
	DepositCreditSuccessMessage        = "credit deposited successfully"
	WithdrawCreditSuccessMessage       = "credit withdrawn successfully"
	GetCreditHistorySuccessMessage     = "get credit history successfully"
	GetDentalChartSuccessMessage       = "get dental chart successfully"
	CreateAppointmentSuccessMessage    = "appointment created successfully"
	UpdateAppointmentSuccessMessage    = "appointment updated successfully"
	ChangeAppointmentStatusMessage     = "appointment status changed successfully"
	DeleteAppointmentSuccessMessage    = "appointment deleted successfully"
	GetAppointmentSuccessMessage       = "get appointment successfully"
	GetAppointmentsSuccessMessage      = "get appointments successfully"
	CreateFindingSuccessMessage        = "medical finding created successfully"
	UpdateFindingSuccessMessage        = "medical finding updated successfully"
	DeleteFindingSuccessMessage        = "medical finding deleted successfully"
	GetFindingSuccessMessage           = "get medical finding successfully"
	GetFindingsSuccessMessage          = "get medical findings successfully"
	CreateTreatmentSuccessMessage      = "treatment created successfully"
	UpdateTreatmentSuccessMessage      = "treatment updated successfully"
	DeleteTreatmentSuccessMessage      = "treatment deleted successfully"
	GetTreatmentSuccessMessage         = "get treatment successfully"
	GetTreatmentsSuccessMessage        = "get treatments successfully"
	CreateInvoiceSuccessMessage        = "invoice created successfully"
	RecordPaymentSuccessMessage        = "payment recorded successfully"
	CancelInvoiceSuccessMessage        = "invoice cancelled successfully"
	GetInvoiceSuccessMessage           = "get invoice successfully"
	GetInvoicesSuccessMessage          = "get invoices successfully"
	CreateProductSuccessMessage        = "product created successfully"
	UpdateProductSuccessMessage        = "product updated successfully"
	DeleteProductSuccessMessage        = "product deleted successfully"
	GetProductSuccessMessage           = "get product successfully"
	GetProductsSuccessMessage          = "get products successfully"
	ReceiveStockSuccessMessage         = "stock received successfully"
	AdjustStockSuccessMessage          = "stock adjusted successfully"
	TransferStockSuccessMessage        = "stock transferred successfully"
	GetStocksSuccessMessage            = "get stocks successfully"
	GetLowStocksSuccessMessage         = "get low stocks successfully"
	GetBatchesSuccessMessage           = "get batches successfully"
	GetStockMovementsSuccessMessage    = "get stock movements successfully"
	CreateWithdrawalSuccessMessage     = "withdrawal request created successfully"
	ApproveWithdrawalSuccessMessage    = "withdrawal request approved successfully"
	RejectWithdrawalSuccessMessage     = "withdrawal request rejected successfully"
	GetWithdrawalSuccessMessage        = "get withdrawal request successfully"
	GetWithdrawalsSuccessMessage       = "get withdrawal requests successfully"
	GetStatisticsSummarySuccessMessage = "get statistics summary successfully"
)
