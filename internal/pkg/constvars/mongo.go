package constvars

const (
	MongoCollectionUsers              = "users"
	MongoCollectionBranches           = "branches"
	MongoCollectionPatients           = "patients"
	MongoCollectionAppointments       = "appointments"
	MongoCollectionMedicalFindings    = "medical_findings"
	MongoCollectionTreatments         = "treatments"
	MongoCollectionInvoices           = "invoices"
	MongoCollectionCreditEntries      = "credit_entries"
	MongoCollectionProducts           = "products"
	MongoCollectionBatches            = "batches"
	MongoCollectionStocks             = "stocks"
	MongoCollectionStockMovements     = "stock_movements"
	MongoCollectionWithdrawalRequests = "withdrawal_requests"
)
