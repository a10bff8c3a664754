package constvars

const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

const (
	InvoiceStatusUnpaid        = "unpaid"
	InvoiceStatusPartiallyPaid = "partially_paid"
	InvoiceStatusPaid          = "paid"
	InvoiceStatusCancelled     = "cancelled"
)

const (
	PaymentMethodCash      = "cash"
	PaymentMethodCard      = "card"
	PaymentMethodTransfer  = "transfer"
	PaymentMethodInsurance = "insurance"
	PaymentMethodCredit    = "credit"
)

const (
	CreditEntryDeposit     = "deposit"
	CreditEntryOverpayment = "overpayment"
	CreditEntryApplied     = "applied"
	CreditEntryRefund      = "refund"
	CreditEntryWithdrawal  = "withdrawal"
)

const (
	StockMovementReceive     = "receive"
	StockMovementWithdraw    = "withdraw"
	StockMovementTransferOut = "transfer_out"
	StockMovementTransferIn  = "transfer_in"
	StockMovementAdjust      = "adjust"
)

const (
	WithdrawalStatusPending  = "pending"
	WithdrawalStatusApproved = "approved"
	WithdrawalStatusRejected = "rejected"
)

const (
	FindingTypeCaries      = "caries"
	FindingTypeFilling     = "filling"
	FindingTypeExtraction  = "extraction"
	FindingTypeRootCanal   = "root_canal"
	FindingTypeCrown       = "crown"
	FindingTypeImplant     = "implant"
	FindingTypePeriodontal = "periodontal"
	FindingTypeOther       = "other"
)

const (
	NotificationTypeAppointmentReminder = "appointment_reminder"
	NotificationTypeLowStock            = "low_stock"
	NotificationTypeBatchExpiry         = "batch_expiry"
)

const (
	EventAppointmentStatusChanged = "appointment.status_changed"
	EventInvoiceCreated           = "invoice.created"
	EventInvoicePaymentRecorded   = "invoice.payment_recorded"
	EventInvoicePaid              = "invoice.paid"
	EventInvoiceCancelled         = "invoice.cancelled"
	EventStockMoved               = "stock.moved"
	EventWithdrawalApproved       = "withdrawal.approved"
)

// AppointmentStatusTransitions lists the statuses reachable from each status.
var AppointmentStatusTransitions = map[string][]string{
	AppointmentStatusScheduled: {AppointmentStatusConfirmed, AppointmentStatusCompleted, AppointmentStatusCancelled},
	AppointmentStatusConfirmed: {AppointmentStatusCompleted, AppointmentStatusCancelled},
	AppointmentStatusCompleted: {},
	AppointmentStatusCancelled: {},
}
